package contract

import (
	"strings"

	"github.com/gaborage/paramspec/rule"
)

// Type names a value type a contract can check for. The names follow the
// dry-schema type vocabulary.
type Type string

const (
	String   Type = "string"
	Integer  Type = "integer"
	Float    Type = "float"
	Decimal  Type = "decimal"
	Bool     Type = "bool"
	Date     Type = "date"
	Time     Type = "time"
	DateTime Type = "date_time"
	Array    Type = "array"
	Hash     Type = "hash"
	Nil      Type = "nil"
	Any      Type = "any"
)

var typePredicates = map[Type]string{
	String:   "str?",
	Integer:  "int?",
	Float:    "float?",
	Decimal:  "decimal?",
	Bool:     "bool?",
	Date:     "date?",
	Time:     "time?",
	DateTime: "date_time?",
	Array:    "array?",
	Hash:     "hash?",
	Nil:      "nil?",
	Any:      "any?",
}

var typeAliases = map[string]Type{
	"str":     String,
	"int":     Integer,
	"boolean": Bool,
}

// Predicate returns the type-check predicate for t. Unknown types get a
// predicate named after the type itself.
func (t Type) Predicate() rule.Predicate {
	if name, ok := typePredicates[t]; ok {
		return rule.Pred(name)
	}
	return rule.Pred(string(t) + "?")
}

// Known reports whether t is part of the built-in vocabulary.
func (t Type) Known() bool {
	_, ok := typePredicates[t]
	return ok
}

// ParseType converts a type symbol such as ":string" or "int" into a Type.
// The second result is false for names outside the built-in vocabulary; the
// returned Type still carries the name so it can be printed.
func ParseType(s string) (Type, bool) {
	name := strings.TrimPrefix(strings.TrimSpace(s), ":")
	if alias, ok := typeAliases[name]; ok {
		return alias, true
	}
	t := Type(name)
	return t, t.Known()
}

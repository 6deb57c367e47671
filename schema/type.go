package schema

import (
	"regexp"

	"github.com/gaborage/paramspec/rule"
)

// Type is the coarse semantic type inferred for a field.
type Type string

const (
	TypeString        Type = "string"
	TypeInteger       Type = "integer"
	TypeFloat         Type = "float"
	TypeDecimal       Type = "decimal"
	TypeBoolean       Type = "boolean"
	TypeDate          Type = "date"
	TypeTime          Type = "time"
	TypeArray         Type = "array"
	TypeHash          Type = "hash"
	TypeArrayOfHashes Type = "array_of_hashes"
)

// DefaultType is inferred when no type matcher applies.
const DefaultType = TypeString

// IsScalar reports whether values of t are bare values rather than collections.
// Unknown types count as scalars.
func (t Type) IsScalar() bool {
	switch t {
	case TypeArray, TypeHash, TypeArrayOfHashes:
		return false
	default:
		return true
	}
}

// typeMatcher recognises one type. predicates are matched against structured
// predicate nodes; pattern is matched against the text of opaque nodes and
// against whole printed rules in TypeOfText.
type typeMatcher struct {
	typ        Type
	predicates []string
	pattern    *regexp.Regexp
	structural func(rule.Rule) bool
}

// typeMatchers is ordered: the first match wins. array_of_hashes must be
// tested before array.
var typeMatchers = []typeMatcher{
	{typ: TypeInteger, predicates: []string{"int?"}, pattern: regexp.MustCompile(`int\?`)},
	{typ: TypeDate, predicates: []string{"date?"}, pattern: regexp.MustCompile(`date\?`)},
	{typ: TypeTime, predicates: []string{"time?", "date_time?"}, pattern: regexp.MustCompile(`time\?`)},
	{typ: TypeFloat, predicates: []string{"float?"}, pattern: regexp.MustCompile(`float\?`)},
	{typ: TypeDecimal, predicates: []string{"decimal?"}, pattern: regexp.MustCompile(`decimal\?`)},
	{typ: TypeBoolean, predicates: []string{"bool?"}, pattern: regexp.MustCompile(`bool\?`)},
	{typ: TypeArrayOfHashes, pattern: regexp.MustCompile(`array\? AND each\(hash\?`), structural: isArrayOfHashes},
	{typ: TypeArray, predicates: []string{"array?"}, pattern: regexp.MustCompile(`array\?`)},
	{typ: TypeHash, predicates: []string{"hash?"}, pattern: regexp.MustCompile(`hash\?`)},
}

// TypeOf infers the semantic type of a field from its rule tree.
func TypeOf(r rule.Rule) Type {
	for i := range typeMatchers {
		if typeMatchers[i].matches(r) {
			return typeMatchers[i].typ
		}
	}
	return DefaultType
}

// TypeOfText infers the semantic type from a printed rule such as
// "key?(:tags) AND key[tags](array? AND each(hash?))".
func TypeOfText(s string) Type {
	for i := range typeMatchers {
		if typeMatchers[i].pattern.MatchString(s) {
			return typeMatchers[i].typ
		}
	}
	return DefaultType
}

func (m *typeMatcher) matches(r rule.Rule) bool {
	return rule.Any(r, func(n rule.Rule) bool {
		switch node := n.(type) {
		case rule.Opaque:
			return m.pattern.MatchString(node.Text)
		case rule.Predicate:
			for _, name := range m.predicates {
				if node.Name == name {
					return true
				}
			}
		}
		if m.structural != nil {
			return m.structural(n)
		}
		return false
	})
}

// isArrayOfHashes matches a conjunction where array? is directly followed by
// an each(...) whose first check is hash?.
func isArrayOfHashes(n rule.Rule) bool {
	and, ok := n.(rule.And)
	if !ok {
		return false
	}
	for i := 0; i+1 < len(and.Rules); i++ {
		p, ok := and.Rules[i].(rule.Predicate)
		if !ok || p.Name != "array?" {
			continue
		}
		each, ok := and.Rules[i+1].(rule.Each)
		if !ok {
			continue
		}
		if first, ok := rule.First(each.Rule); ok {
			if fp, ok := first.(rule.Predicate); ok && fp.Name == "hash?" {
				return true
			}
		}
	}
	return false
}

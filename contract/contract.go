// Package contract describes validation contracts: named collections of
// per-field predicate trees. Contracts can be declared with a small builder
// DSL, derived from tagged Go structs, or loaded from YAML contract files.
package contract

import (
	"github.com/gaborage/paramspec/rule"
)

// Contract exposes the named rules of a validation contract.
type Contract interface {
	// Name returns the fully-qualified contract name, e.g. "Api::V1::UserCreateContract".
	Name() string
	// Rules returns one entry per field in declaration order.
	Rules() []NamedRule
}

// Described is implemented by contracts that carry their own field
// descriptions, such as struct contracts with doc tags.
type Described interface {
	Descriptions() map[string]string
}

// NamedRule pairs a field name with its predicate tree.
type NamedRule struct {
	Name string
	Rule rule.Rule
}

// Definition is the Contract produced by Define, FromStruct and Parse.
type Definition struct {
	name         string
	rules        []NamedRule
	descriptions map[string]string
}

var _ Contract = (*Definition)(nil)
var _ Described = (*Definition)(nil)

// Name implements Contract.
func (d *Definition) Name() string {
	return d.name
}

// Rules implements Contract. The returned slice is a copy.
func (d *Definition) Rules() []NamedRule {
	out := make([]NamedRule, len(d.rules))
	copy(out, d.rules)
	return out
}

// Rule returns the rule declared for name.
func (d *Definition) Rule(name string) (rule.Rule, bool) {
	for _, nr := range d.rules {
		if nr.Name == name {
			return nr.Rule, true
		}
	}
	return nil, false
}

// Descriptions implements Described.
func (d *Definition) Descriptions() map[string]string {
	out := make(map[string]string, len(d.descriptions))
	for k, v := range d.descriptions {
		out[k] = v
	}
	return out
}

// Define declares a contract through the builder DSL:
//
//	contract.Define("UserCreateContract", func(s *contract.Builder) {
//		s.Required("name").Filled(contract.String)
//		s.Optional("email").Maybe(contract.String)
//	})
func Define(name string, fn func(s *Builder)) *Definition {
	b := &Builder{}
	if fn != nil {
		fn(b)
	}
	return &Definition{name: name, rules: b.build()}
}

// Builder collects key declarations for Define. Declaring the same key twice
// replaces the earlier rule and keeps its original position.
type Builder struct {
	keys []*KeyBuilder
}

// Required declares a key that must be present.
func (b *Builder) Required(name string) *KeyBuilder {
	return b.key(name, true)
}

// Optional declares a key whose checks only apply when it is present.
func (b *Builder) Optional(name string) *KeyBuilder {
	return b.key(name, false)
}

func (b *Builder) key(name string, required bool) *KeyBuilder {
	kb := &KeyBuilder{name: name, required: required}
	for i, existing := range b.keys {
		if existing.name == name {
			b.keys[i] = kb
			return kb
		}
	}
	b.keys = append(b.keys, kb)
	return kb
}

func (b *Builder) build() []NamedRule {
	out := make([]NamedRule, 0, len(b.keys))
	for _, kb := range b.keys {
		out = append(out, NamedRule{Name: kb.name, Rule: kb.rule()})
	}
	return out
}

// KeyBuilder sets the value checks of one declared key.
type KeyBuilder struct {
	name     string
	required bool
	body     rule.Rule
}

// Filled requires a non-empty value, optionally of type t.
func (k *KeyBuilder) Filled(t ...Type) *KeyBuilder {
	if len(t) == 0 {
		k.body = rule.Pred("filled?")
		return k
	}
	k.body = rule.Conj(t[0].Predicate(), rule.Pred("filled?"))
	return k
}

// Maybe accepts nil or a value of type t.
func (k *KeyBuilder) Maybe(t Type) *KeyBuilder {
	k.body = rule.Disj(Nil.Predicate(), t.Predicate())
	return k
}

// Value requires a value of type t.
func (k *KeyBuilder) Value(t Type) *KeyBuilder {
	k.body = t.Predicate()
	return k
}

// Array requires an array whose members are of type t.
func (k *KeyBuilder) Array(t Type) *KeyBuilder {
	k.body = rule.Conj(Array.Predicate(), rule.Each{Rule: t.Predicate()})
	return k
}

// ArrayOf requires an array of hashes shaped by the nested declarations.
func (k *KeyBuilder) ArrayOf(fn func(s *Builder)) *KeyBuilder {
	k.body = rule.Conj(Array.Predicate(), rule.Each{Rule: nested(fn)})
	return k
}

// Hash requires a hash, shaped by the nested declarations when fn is not nil.
func (k *KeyBuilder) Hash(fn func(s *Builder)) *KeyBuilder {
	k.body = nested(fn)
	return k
}

// Rule sets a custom predicate tree as the value check.
func (k *KeyBuilder) Rule(r rule.Rule) *KeyBuilder {
	k.body = r
	return k
}

func (k *KeyBuilder) rule() rule.Rule {
	presence := rule.HasKey(k.name)
	if k.body == nil {
		if k.required {
			return presence
		}
		return rule.Implication{Left: presence, Right: rule.Key{Name: k.name, Rule: Any.Predicate()}}
	}

	value := rule.Key{Name: k.name, Rule: k.body}
	if k.required {
		return rule.Conj(presence, value)
	}
	return rule.Implication{Left: presence, Right: value}
}

func nested(fn func(s *Builder)) rule.Rule {
	if fn == nil {
		return Hash.Predicate()
	}
	b := &Builder{}
	fn(b)
	children := b.build()
	rules := make([]rule.Rule, 0, len(children))
	for _, c := range children {
		rules = append(rules, c.Rule)
	}
	return rule.Conj(Hash.Predicate(), rule.Set{Rules: rules})
}

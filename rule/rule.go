// Package rule models the predicate tree that a validation contract attaches
// to each of its fields. The printed form of every node follows the notation
// used by dry-logic so contracts written in that style read the same here.
package rule

import (
	"strings"
)

// Rule is a node of a predicate tree.
type Rule interface {
	String() string
	isRule()
}

// Predicate is a leaf check such as str?, filled? or key?(:name).
type Predicate struct {
	Name string
	Args []string
}

// And is a conjunction; all branches must hold.
type And struct {
	Rules []Rule
}

// Or is a disjunction; at least one branch must hold.
type Or struct {
	Rules []Rule
}

// Implication applies Right only when Left holds. Contracts use it to express
// "validate only if the key is present".
type Implication struct {
	Left  Rule
	Right Rule
}

// Key scopes Rule to the value stored under Name.
type Key struct {
	Name string
	Rule Rule
}

// Each applies Rule to every element of a collection.
type Each struct {
	Rule Rule
}

// Set groups the rules of a nested schema.
type Set struct {
	Rules []Rule
}

// Opaque holds a predicate expression that could not be decomposed into
// structured nodes. Text is kept verbatim.
type Opaque struct {
	Text string
}

func (Predicate) isRule()   {}
func (And) isRule()         {}
func (Or) isRule()          {}
func (Implication) isRule() {}
func (Key) isRule()         {}
func (Each) isRule()        {}
func (Set) isRule()         {}
func (Opaque) isRule()      {}

func (p Predicate) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	return p.Name + "(" + strings.Join(p.Args, ", ") + ")"
}

func (a And) String() string { return join(a.Rules, " AND ") }

func (o Or) String() string { return join(o.Rules, " OR ") }

func (i Implication) String() string {
	return str(i.Left) + " THEN " + str(i.Right)
}

func (k Key) String() string {
	return "key[" + k.Name + "](" + str(k.Rule) + ")"
}

func (e Each) String() string { return "each(" + str(e.Rule) + ")" }

func (s Set) String() string { return "set(" + join(s.Rules, ", ") + ")" }

func (o Opaque) String() string { return o.Text }

func join(rules []Rule, sep string) string {
	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		parts = append(parts, str(r))
	}
	return strings.Join(parts, sep)
}

func str(r Rule) string {
	if r == nil {
		return ""
	}
	return r.String()
}

// Pred builds a Predicate.
func Pred(name string, args ...string) Predicate {
	return Predicate{Name: name, Args: args}
}

// HasKey builds the key?(:name) presence predicate.
func HasKey(name string) Predicate {
	return Pred("key?", ":"+name)
}

// Conj builds a conjunction from rules, flattening nested conjunctions.
func Conj(rules ...Rule) And {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if nested, ok := r.(And); ok {
			out = append(out, nested.Rules...)
			continue
		}
		out = append(out, r)
	}
	return And{Rules: out}
}

// Disj builds a disjunction.
func Disj(rules ...Rule) Or {
	return Or{Rules: rules}
}

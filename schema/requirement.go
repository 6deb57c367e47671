package schema

import "github.com/gaborage/paramspec/rule"

// IsOptional reports whether r only applies when its key is present: r is an
// implication, or a conjunction with an implication as a direct branch.
func IsOptional(r rule.Rule) bool {
	switch n := r.(type) {
	case rule.Implication:
		return true
	case rule.And:
		for _, branch := range n.Rules {
			if _, ok := branch.(rule.Implication); ok {
				return true
			}
		}
	}
	return false
}

// IsRequired is the inverse of IsOptional.
func IsRequired(r rule.Rule) bool {
	return !IsOptional(r)
}

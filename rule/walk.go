package rule

// Visitor is called for every node reached by Walk. Returning false stops
// the walk.
type Visitor func(r Rule) bool

// Walk visits r and its descendants depth-first, left to right.
// It reports whether the walk ran to completion.
func Walk(r Rule, visit Visitor) bool {
	if r == nil {
		return true
	}
	if !visit(r) {
		return false
	}

	switch n := r.(type) {
	case And:
		return walkAll(n.Rules, visit)
	case Or:
		return walkAll(n.Rules, visit)
	case Set:
		return walkAll(n.Rules, visit)
	case Implication:
		return Walk(n.Left, visit) && Walk(n.Right, visit)
	case Key:
		return Walk(n.Rule, visit)
	case Each:
		return Walk(n.Rule, visit)
	}
	return true
}

func walkAll(rules []Rule, visit Visitor) bool {
	for _, r := range rules {
		if !Walk(r, visit) {
			return false
		}
	}
	return true
}

// Any reports whether match holds for at least one node under r.
func Any(r Rule, match func(Rule) bool) bool {
	found := false
	Walk(r, func(n Rule) bool {
		if match(n) {
			found = true
			return false
		}
		return true
	})
	return found
}

// First returns the first Predicate or Opaque leaf under r in walk order.
func First(r Rule) (Rule, bool) {
	var leaf Rule
	Walk(r, func(n Rule) bool {
		switch n.(type) {
		case Predicate, Opaque:
			leaf = n
			return false
		}
		return true
	})
	return leaf, leaf != nil
}

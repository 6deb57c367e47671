package contract

import (
	"fmt"
	"sort"
)

// Registry holds contracts by name in registration order.
type Registry struct {
	order  []string
	byName map[string]Contract
}

// NewRegistry creates a registry preloaded with contracts.
// It panics on duplicate names, which indicates a programming error.
func NewRegistry(contracts ...Contract) *Registry {
	r := &Registry{byName: make(map[string]Contract, len(contracts))}
	for _, c := range contracts {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds c. Registering a second contract with the same name fails.
func (r *Registry) Register(c Contract) error {
	name := c.Name()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: duplicate contract name %q", ErrInvalidContract, name)
	}
	r.byName[name] = c
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the contract registered under name.
func (r *Registry) Lookup(name string) (Contract, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, name)
	}
	return c, nil
}

// Names returns contract names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// SortedNames returns contract names in lexical order.
func (r *Registry) SortedNames() []string {
	out := r.Names()
	sort.Strings(out)
	return out
}

// Len returns the number of registered contracts.
func (r *Registry) Len() int {
	return len(r.order)
}

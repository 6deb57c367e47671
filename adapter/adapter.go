// Package adapter renders a schema into the parameter declarations of a
// target web framework.
package adapter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gaborage/paramspec/schema"
)

// Name identifies an adapter.
type Name string

const (
	// Grape renders Grape-style params documentation hashes.
	Grape Name = "grape"
	// Rails renders strong-parameters permit lists.
	Rails Name = "rails"
)

// DefaultParamType is the Grape documentation param_type used when none is given.
const DefaultParamType = "body"

// ErrUnsupportedAdapter is matched by every UnsupportedAdapterError.
var ErrUnsupportedAdapter = errors.New("unsupported adapter")

// UnsupportedAdapterError names an adapter that is not registered.
type UnsupportedAdapterError struct {
	Name Name
}

func (e *UnsupportedAdapterError) Error() string {
	return fmt.Sprintf("adapter '%s' not supported", e.Name)
}

// Is reports whether target is ErrUnsupportedAdapter.
func (e *UnsupportedAdapterError) Is(target error) bool {
	return target == ErrUnsupportedAdapter
}

// Options carries per-call adapter settings. Adapters ignore options they do
// not understand.
type Options struct {
	ParamType string
}

// Output is the framework-shaped result of an adapter.
type Output interface {
	// Adapter names the adapter that produced the output.
	Adapter() Name
}

// Adapter renders a schema.
type Adapter interface {
	Name() Name
	Render(s *schema.Schema, opts Options) Output
}

var registry = map[Name]Adapter{
	Grape: GrapeAdapter{},
	Rails: RailsAdapter{},
}

// Lookup returns the registered adapter called name.
func Lookup(name Name) (Adapter, error) {
	a, ok := registry[name]
	if !ok {
		return nil, &UnsupportedAdapterError{Name: name}
	}
	return a, nil
}

// Names lists the registered adapter names in lexical order.
func Names() []Name {
	out := make([]Name, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

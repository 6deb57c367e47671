package adapter

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/gaborage/paramspec/schema"
)

// Container is the empty collection a nested permit entry allows.
type Container string

const (
	ContainerArray Container = "array"
	ContainerHash  Container = "hash"
)

// PermitList is a strong-parameters permit list: scalar names followed, when
// any non-scalar field exists, by one mapping of collection fields.
//
//	["name", "age", {"tags": [], "metadata": {}}]
type PermitList struct {
	scalars []string
	nested  []nestedPermit
}

type nestedPermit struct {
	name      string
	container Container
}

var _ Output = (*PermitList)(nil)

// Adapter implements Output.
func (*PermitList) Adapter() Name { return Rails }

// Scalars returns the bare names in declaration order.
func (p *PermitList) Scalars() []string {
	out := make([]string, len(p.scalars))
	copy(out, p.scalars)
	return out
}

// Nested returns the trailing mapping's entries, or nil when there is none.
func (p *PermitList) Nested() map[string]Container {
	if len(p.nested) == 0 {
		return nil
	}
	out := make(map[string]Container, len(p.nested))
	for _, n := range p.nested {
		out[n.name] = n.container
	}
	return out
}

// NestedKeys returns the trailing mapping's keys in declaration order.
func (p *PermitList) NestedKeys() []string {
	out := make([]string, 0, len(p.nested))
	for _, n := range p.nested {
		out = append(out, n.name)
	}
	return out
}

// HasNested reports whether the trailing mapping is present.
func (p *PermitList) HasNested() bool {
	return len(p.nested) > 0
}

// Len returns the number of list elements, counting the trailing mapping as one.
func (p *PermitList) Len() int {
	if p.HasNested() {
		return len(p.scalars) + 1
	}
	return len(p.scalars)
}

// Items returns the list as generic values: strings for scalar names and a
// map[string]any holding []any{} or map[string]any{} per collection field.
func (p *PermitList) Items() []any {
	items := make([]any, 0, p.Len())
	for _, s := range p.scalars {
		items = append(items, s)
	}
	if p.HasNested() {
		m := make(map[string]any, len(p.nested))
		for _, n := range p.nested {
			m[n.name] = n.container.empty()
		}
		items = append(items, m)
	}
	return items
}

func (c Container) empty() any {
	if c == ContainerArray {
		return []any{}
	}
	return map[string]any{}
}

// MarshalJSON writes the list with the trailing mapping in declaration order.
func (p *PermitList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, s := range p.scalars {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	if p.HasNested() {
		if len(p.scalars) > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for i, n := range p.nested {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := json.Marshal(n.name)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
			if n.container == ContainerArray {
				buf.WriteString(":[]")
			} else {
				buf.WriteString(":{}")
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalYAML writes the list with the trailing mapping in declaration order.
func (p *PermitList) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, s := range p.scalars {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
	}
	if p.HasNested() {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, n := range p.nested {
			val := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle}
			if n.container == ContainerArray {
				val = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.name}, val)
		}
		seq.Content = append(seq.Content, m)
	}
	return seq, nil
}

// RailsAdapter renders strong-parameters permit lists.
type RailsAdapter struct{}

// Name implements Adapter.
func (RailsAdapter) Name() Name { return Rails }

// Render implements Adapter. Options are not used.
func (a RailsAdapter) Render(s *schema.Schema, _ Options) Output {
	return a.Permit(s)
}

// Permit builds the typed result. Arrays permit an empty list; hashes and
// arrays of hashes permit an empty hash.
func (RailsAdapter) Permit(s *schema.Schema) *PermitList {
	out := &PermitList{}
	for _, f := range s.Fields() {
		switch f.Type {
		case schema.TypeArray:
			out.nested = append(out.nested, nestedPermit{name: f.Name, container: ContainerArray})
		case schema.TypeHash, schema.TypeArrayOfHashes:
			out.nested = append(out.nested, nestedPermit{name: f.Name, container: ContainerHash})
		default:
			out.scalars = append(out.scalars, f.Name)
		}
	}
	return out
}

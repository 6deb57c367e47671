// Package schema turns a validation contract into an ordered list of field
// records: name, inferred type, required flag and an optional description.
package schema

import (
	"github.com/gaborage/paramspec/contract"
	"github.com/gaborage/paramspec/logger"
)

// Field describes one contract key. An empty Description means none was found.
type Field struct {
	Name        string `json:"name" yaml:"name"`
	Type        Type   `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsRequired reports whether the key must be present.
func (f Field) IsRequired() bool {
	return f.Required
}

// IsOptional is the inverse of IsRequired.
func (f Field) IsOptional() bool {
	return !f.Required
}

// Schema is an ordered, immutable set of fields.
type Schema struct {
	name   string
	fields []Field
}

// New creates a schema from fields in the given order.
func New(name string, fields []Field) *Schema {
	cp := make([]Field, len(fields))
	copy(cp, fields)
	return &Schema{name: name, fields: cp}
}

// Name returns the name of the contract the schema was built from.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the field called name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// DescriptionSource maps a contract name to field descriptions keyed by field
// name. Sources return an empty or nil map when nothing is known.
type DescriptionSource func(contractName string) map[string]string

// Builder builds schemas from contracts.
type Builder struct {
	descriptions DescriptionSource
	log          logger.Logger
}

// NewBuilder creates a Builder. Both arguments may be nil.
func NewBuilder(descriptions DescriptionSource, log logger.Logger) *Builder {
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{descriptions: descriptions, log: log.Component("schema")}
}

// FromContract builds a schema with a throwaway Builder.
func FromContract(c contract.Contract, descriptions DescriptionSource) *Schema {
	return NewBuilder(descriptions, nil).Build(c)
}

// Build produces one field per contract rule. Descriptions from the source
// take precedence over descriptions the contract carries itself.
func (b *Builder) Build(c contract.Contract) *Schema {
	descriptions := b.lookup(c)

	rules := c.Rules()
	fields := make([]Field, 0, len(rules))
	var optional []string
	for _, nr := range rules {
		if IsOptional(nr.Rule) {
			optional = append(optional, nr.Name)
		}
		fields = append(fields, Field{
			Name:        nr.Name,
			Type:        TypeOf(nr.Rule),
			Required:    IsRequired(nr.Rule),
			Description: descriptions[nr.Name],
		})
	}

	b.log.Debug().
		Str("contract", c.Name()).
		Int("fields", len(fields)).
		Int("descriptions", len(descriptions)).
		Strs("optional", optional).
		Msg("Schema built")

	return &Schema{name: c.Name(), fields: fields}
}

func (b *Builder) lookup(c contract.Contract) map[string]string {
	merged := make(map[string]string)
	if d, ok := c.(contract.Described); ok {
		for k, v := range d.Descriptions() {
			merged[k] = v
		}
	}
	if b.descriptions != nil {
		for k, v := range b.descriptions(c.Name()) {
			merged[k] = v
		}
	}
	return merged
}

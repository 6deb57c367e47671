package adapter

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/gaborage/paramspec/schema"
)

// GrapeType is the type a Grape params declaration names.
type GrapeType string

const (
	GrapeString        GrapeType = "String"
	GrapeInteger       GrapeType = "Integer"
	GrapeFloat         GrapeType = "Float"
	GrapeBoolean       GrapeType = "Grape::API::Boolean"
	GrapeDate          GrapeType = "Date"
	GrapeTime          GrapeType = "Time"
	GrapeArray         GrapeType = "Array"
	GrapeHash          GrapeType = "Hash"
	GrapeArrayOfHashes GrapeType = "[Hash]"
)

var grapeTypes = map[schema.Type]GrapeType{
	schema.TypeString:        GrapeString,
	schema.TypeInteger:       GrapeInteger,
	schema.TypeFloat:         GrapeFloat,
	schema.TypeDecimal:       GrapeFloat,
	schema.TypeBoolean:       GrapeBoolean,
	schema.TypeDate:          GrapeDate,
	schema.TypeTime:          GrapeTime,
	schema.TypeArray:         GrapeArray,
	schema.TypeHash:          GrapeHash,
	schema.TypeArrayOfHashes: GrapeArrayOfHashes,
}

// GrapeTypeFor maps a schema type; unknown types map to GrapeString.
func GrapeTypeFor(t schema.Type) GrapeType {
	if gt, ok := grapeTypes[t]; ok {
		return gt
	}
	return GrapeString
}

// Documentation is the documentation hash of a Grape param.
type Documentation struct {
	ParamType string `json:"param_type" yaml:"param_type"`
}

// GrapeParam is one entry of a Grape params declaration.
type GrapeParam struct {
	Type          GrapeType     `json:"type" yaml:"type"`
	Desc          string        `json:"desc" yaml:"desc"`
	Required      bool          `json:"required" yaml:"required"`
	Documentation Documentation `json:"documentation" yaml:"documentation"`
}

// GrapeParams maps field names to params, keeping declaration order.
type GrapeParams struct {
	names  []string
	params map[string]GrapeParam
}

var _ Output = (*GrapeParams)(nil)

// Adapter implements Output.
func (*GrapeParams) Adapter() Name { return Grape }

// Keys returns field names in declaration order.
func (p *GrapeParams) Keys() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Get returns the param declared for name.
func (p *GrapeParams) Get(name string) (GrapeParam, bool) {
	gp, ok := p.params[name]
	return gp, ok
}

// Len returns the number of params.
func (p *GrapeParams) Len() int { return len(p.names) }

// Map returns the params as a plain map.
func (p *GrapeParams) Map() map[string]GrapeParam {
	out := make(map[string]GrapeParam, len(p.params))
	for k, v := range p.params {
		out[k] = v
	}
	return out
}

// MarshalJSON writes a JSON object with keys in declaration order.
func (p *GrapeParams) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.params[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes a YAML mapping with keys in declaration order.
func (p *GrapeParams) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range p.names {
		var val yaml.Node
		if err := val.Encode(p.params[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&val,
		)
	}
	return node, nil
}

// GrapeAdapter renders Grape params documentation.
type GrapeAdapter struct{}

// Name implements Adapter.
func (GrapeAdapter) Name() Name { return Grape }

// Render implements Adapter.
func (a GrapeAdapter) Render(s *schema.Schema, opts Options) Output {
	return a.Params(s, opts.ParamType)
}

// Params builds the typed result. An empty paramType selects DefaultParamType.
// Fields without a description, including an empty one, get Humanize(name).
func (GrapeAdapter) Params(s *schema.Schema, paramType string) *GrapeParams {
	if paramType == "" {
		paramType = DefaultParamType
	}

	fields := s.Fields()
	out := &GrapeParams{
		names:  make([]string, 0, len(fields)),
		params: make(map[string]GrapeParam, len(fields)),
	}
	for _, f := range fields {
		desc := f.Description
		if desc == "" {
			desc = Humanize(f.Name)
		}
		out.names = append(out.names, f.Name)
		out.params[f.Name] = GrapeParam{
			Type:          GrapeTypeFor(f.Type),
			Desc:          desc,
			Required:      f.IsRequired(),
			Documentation: Documentation{ParamType: paramType},
		}
	}
	return out
}

// Humanize turns a field name into a default description: underscores become
// spaces, everything is lowercased and the first letter upper-cased.
// "published_at" becomes "Published at".
func Humanize(name string) string {
	s := strings.ToLower(strings.ReplaceAll(name, "_", " "))
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

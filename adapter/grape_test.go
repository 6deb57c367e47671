package adapter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gaborage/paramspec/schema"
	"github.com/gaborage/paramspec/testing/fixtures"
)

func TestGrapeParamsFullTypes(t *testing.T) {
	params := GrapeAdapter{}.Params(schema.FromContract(fixtures.FullTypesContract(), nil), "")

	expected := map[string]GrapeType{
		"title":        GrapeString,
		"count":        GrapeInteger,
		"price":        GrapeFloat,
		"amount":       GrapeFloat,
		"published_at": GrapeDate,
		"starts_at":    GrapeTime,
		"active":       GrapeBoolean,
		"tags":         GrapeArray,
		"metadata":     GrapeHash,
		"notes":        GrapeString,
	}
	require.Equal(t, len(expected), params.Len())
	for name, want := range expected {
		p, ok := params.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, want, p.Type, name)
		assert.Equal(t, DefaultParamType, p.Documentation.ParamType, name)
	}

	title, _ := params.Get("title")
	assert.Equal(t, "Title", title.Desc)
	assert.True(t, title.Required)

	publishedAt, _ := params.Get("published_at")
	assert.Equal(t, "Published at", publishedAt.Desc)

	notes, _ := params.Get("notes")
	assert.False(t, notes.Required)
}

func TestGrapeParamsNested(t *testing.T) {
	params := GrapeAdapter{}.Params(schema.FromContract(fixtures.NestedContract(), nil), "query")

	assert.Equal(t, []string{"customer_id", "line_items", "shipping", "coupon_codes"}, params.Keys())

	lineItems, _ := params.Get("line_items")
	assert.Equal(t, GrapeArrayOfHashes, lineItems.Type)
	assert.True(t, lineItems.Required)
	assert.Equal(t, "query", lineItems.Documentation.ParamType)

	shipping, _ := params.Get("shipping")
	assert.Equal(t, GrapeHash, shipping.Type)
	assert.False(t, shipping.Required)
}

func TestGrapeParamsPrefersDescriptions(t *testing.T) {
	s := schema.New("C", []schema.Field{
		{Name: "user_name", Type: schema.TypeString, Required: true, Description: "Login handle"},
		{Name: "user_id", Type: schema.TypeInteger, Required: true},
	})

	params := GrapeAdapter{}.Params(s, "form")

	name, _ := params.Get("user_name")
	assert.Equal(t, GrapeParam{
		Type:          GrapeString,
		Desc:          "Login handle",
		Required:      true,
		Documentation: Documentation{ParamType: "form"},
	}, name)
	id, _ := params.Get("user_id")
	assert.Equal(t, "User id", id.Desc)
}

func TestGrapeParamsHumanizesEmptyDescription(t *testing.T) {
	s := schema.FromContract(
		fixtures.SimpleContract(),
		func(string) map[string]string { return map[string]string{"email": ""} },
	)

	email, ok := GrapeAdapter{}.Params(s, "").Get("email")
	require.True(t, ok)
	assert.Equal(t, "Email", email.Desc)
}

func TestGrapeParamsMarshalKeepsOrder(t *testing.T) {
	s := schema.New("C", []schema.Field{
		{Name: "zeta", Type: schema.TypeBoolean, Required: true},
		{Name: "alpha", Type: schema.TypeString},
	})
	params := GrapeAdapter{}.Params(s, "")

	b, err := json.Marshal(params)
	require.NoError(t, err)
	assert.Equal(t,
		`{"zeta":{"type":"Grape::API::Boolean","desc":"Zeta","required":true,"documentation":{"param_type":"body"}},`+
			`"alpha":{"type":"String","desc":"Alpha","required":false,"documentation":{"param_type":"body"}}}`,
		string(b))

	y, err := yaml.Marshal(params)
	require.NoError(t, err)
	assert.Equal(t, `zeta:
    type: Grape::API::Boolean
    desc: Zeta
    required: true
    documentation:
        param_type: body
alpha:
    type: String
    desc: Alpha
    required: false
    documentation:
        param_type: body
`, string(y))
}

func TestGrapeParamsEmptySchema(t *testing.T) {
	params := GrapeAdapter{}.Params(schema.New("Empty", nil), "")

	assert.Equal(t, 0, params.Len())
	assert.Empty(t, params.Map())
	b, err := json.Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))
}

func TestGrapeTypeForUnknown(t *testing.T) {
	assert.Equal(t, GrapeString, GrapeTypeFor(schema.Type("uuid")))
	assert.Equal(t, GrapeFloat, GrapeTypeFor(schema.TypeDecimal))
}

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"title":        "Title",
		"published_at": "Published at",
		"HTTP_Method":  "Http method",
		"_private":     " private",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Humanize(in), in)
	}
}

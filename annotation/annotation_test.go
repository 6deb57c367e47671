package annotation

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaborage/paramspec/logger"
	"github.com/gaborage/paramspec/testing/fixtures"
)

func TestUnderscore(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"UserContract", "user_contract"},
		{"Api::V1::UserCreateContract", "api/v1/user_create_contract"},
		{"HTTPRequestContract", "http_request_contract"},
		{"contracts.OrderCreate", "contracts/order_create"},
		{"billing/InvoiceContract", "billing/invoice_contract"},
		{"Item2Contract", "item2_contract"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Underscore(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	lines := strings.Split(fixtures.AnnotatedContractYAML, "\n")

	got := Parse(lines)

	assert.Equal(t, map[string]string{
		"name": "The user's full name",
		"tags": "Labels attached to the user",
	}, got)
}

func TestParseGoSource(t *testing.T) {
	src := `package contracts

var OrderCreate = contract.Define("Orders::OrderCreate", func(s *contract.Builder) {
	// @customer_id = Customer placing the order
	s.Required("customer_id").Filled(contract.Integer)
	// not an annotation
	s.Optional("note").Maybe(contract.String)
	//@total=  Grand total including tax
	s.Required("total").Filled(contract.Decimal)
})
`
	got := Parse(strings.Split(src, "\n"))

	assert.Equal(t, map[string]string{
		"customer_id": "Customer placing the order",
		"total":       "Grand total including tax",
	}, got)
}

func TestParseOnlyLooksOneLineBack(t *testing.T) {
	lines := []string{
		"  required(:first).filled(:string)",
		"  # @second = Spread over",
		"  #   two lines",
		"  - required(:second).filled(:string)",
		"  # @third = Right above",
		"  - required(:third).filled(:string)",
	}

	assert.Equal(t, map[string]string{"third": "Right above"}, Parse(lines))
	assert.Empty(t, Parse(nil))
}

func TestParseWhitespaceAnnotationIsEmpty(t *testing.T) {
	lines := []string{
		"params:",
		"  # @note =    ",
		"  - optional(:note).maybe(:string)",
	}

	got := Parse(lines)

	desc, ok := got["note"]
	assert.True(t, ok)
	assert.Empty(t, desc)
}

func TestFileSourceDescriptions(t *testing.T) {
	fsys := fstest.MapFS{
		"api/contracts/api/v1/user_create_contract.yaml": {Data: []byte(fixtures.AnnotatedContractYAML)},
		"contracts/api/v1/user_create_contract.yaml/x":   {Data: []byte("directory, not a file")},
		"models/order_contract.yaml":                     {Data: []byte("  # @id = Order id\n  - required(:id).filled(:integer)\n")},
	}

	var buf bytes.Buffer
	src := NewFSSource(fsys, nil, logger.NewWithWriter(&buf, "debug", false))

	path, ok := src.Find("Api::V1::UserCreateContract")
	require.True(t, ok)
	assert.Equal(t, "api/contracts/api/v1/user_create_contract.yaml", path)

	got := src.Descriptions("Api::V1::UserCreateContract")
	assert.Equal(t, "The user's full name", got["name"])
	assert.Len(t, got, 2)
	assert.Contains(t, buf.String(), "Annotations extracted")

	assert.Equal(t, map[string]string{"id": "Order id"}, src.Descriptions("OrderContract"))
	assert.Empty(t, src.Descriptions("MissingContract"))
	assert.Empty(t, src.Descriptions(""))
}

func TestFileSourcePatternOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"first/user.yaml":  {Data: []byte("# @a = from first\nrequired(:a)\n")},
		"second/user.yaml": {Data: []byte("# @a = from second\nrequired(:a)\n")},
	}

	src := NewFSSource(fsys, []string{"missing/%s.yaml", "first/%s.yaml", "second/%s.yaml"}, nil)
	assert.Equal(t, map[string]string{"a": "from first"}, src.Descriptions("User"))

	src = NewFSSource(fsys, []string{"second/%s.yaml", "first/%s.yaml"}, nil)
	assert.Equal(t, map[string]string{"a": "from second"}, src.Descriptions("User"))
}

func TestFileSourceWithoutRoot(t *testing.T) {
	src := NewFileSource("", nil, nil)

	_, ok := src.Find("UserContract")
	assert.False(t, ok)
	assert.Empty(t, src.Descriptions("UserContract"))
}

func TestFileSourceOnDisk(t *testing.T) {
	root := t.TempDir()
	fixtures.WriteContractFile(t, root, "contracts/api/v1/user_create_contract.yaml", fixtures.AnnotatedContractYAML)

	src := NewFileSource(root, nil, nil)
	got := src.Descriptions("Api::V1::UserCreateContract")

	assert.Equal(t, "Labels attached to the user", got["tags"])
	_, found := got["age"]
	assert.False(t, found, "annotation separated by a blank line is not attached")
	_, found = got["email"]
	assert.False(t, found, "annotation naming another field is ignored")
}

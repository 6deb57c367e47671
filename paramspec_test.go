package paramspec

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaborage/paramspec/adapter"
	"github.com/gaborage/paramspec/config"
	"github.com/gaborage/paramspec/contract"
	"github.com/gaborage/paramspec/logger"
	testconsts "github.com/gaborage/paramspec/testing"
	"github.com/gaborage/paramspec/testing/fixtures"
	"github.com/gaborage/paramspec/testing/mocks"
)

func TestNewDefaults(t *testing.T) {
	r := New()
	assert.Equal(t, adapter.Grape, r.DefaultAdapter())

	out, err := r.From(fixtures.SimpleContract())
	require.NoError(t, err)

	params, ok := out.(*adapter.GrapeParams)
	require.True(t, ok)
	name, _ := params.Get("name")
	assert.Equal(t, adapter.GrapeParam{
		Type:          adapter.GrapeString,
		Desc:          "Name",
		Required:      true,
		Documentation: adapter.Documentation{ParamType: "body"},
	}, name)
}

func TestFromOverrideDoesNotChangeDefault(t *testing.T) {
	r := New()

	out, err := r.From(fixtures.FullTypesContract(), WithAdapter(adapter.Rails))
	require.NoError(t, err)

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, `["title","count","price","amount","published_at","starts_at","active","notes",{"tags":[],"metadata":{}}]`, string(b))
	assert.Equal(t, adapter.Grape, r.DefaultAdapter())

	out, err = r.From(fixtures.FullTypesContract())
	require.NoError(t, err)
	assert.Equal(t, adapter.Grape, out.Adapter())
}

func TestFromParamType(t *testing.T) {
	r := New(WithDefaultParamType("form"))

	out, err := r.From(fixtures.SimpleContract())
	require.NoError(t, err)
	age, _ := out.(*adapter.GrapeParams).Get("age")
	assert.Equal(t, "form", age.Documentation.ParamType)

	out, err = r.From(fixtures.SimpleContract(), WithParamType("query"))
	require.NoError(t, err)
	age, _ = out.(*adapter.GrapeParams).Get("age")
	assert.Equal(t, "query", age.Documentation.ParamType)
}

func TestFromUnsupportedAdapter(t *testing.T) {
	r := New()

	out, err := r.From(fixtures.SimpleContract(), WithAdapter("sinatra"))

	assert.Nil(t, out)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnsupportedAdapter)
	var unsupported *adapter.UnsupportedAdapterError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, adapter.Name("sinatra"), unsupported.Name)
	assert.Contains(t, err.Error(), "sinatra")
}

func TestSetDefaultAdapter(t *testing.T) {
	r := New()
	r.SetDefaultAdapter(adapter.Rails)
	assert.Equal(t, adapter.Rails, r.DefaultAdapter())

	out, err := r.From(fixtures.SimpleContract())
	require.NoError(t, err)
	assert.Equal(t, adapter.Rails, out.Adapter())

	r.SetDefaultAdapter("padrino")
	_, err = r.From(fixtures.SimpleContract())
	assert.EqualError(t, err, "adapter 'padrino' not supported")

	out, err = r.From(fixtures.SimpleContract(), WithAdapter(adapter.Grape))
	require.NoError(t, err)
	assert.Equal(t, adapter.Grape, out.Adapter())
}

func TestConfigure(t *testing.T) {
	r := New().Configure(func(r *Resolver) {
		r.SetDefaultAdapter(adapter.Rails)
	})
	assert.Equal(t, adapter.Rails, r.DefaultAdapter())
}

func TestForLegacyForm(t *testing.T) {
	r := New()

	out, err := r.For(adapter.Rails, fixtures.NestedContract(), WithAdapter(adapter.Grape))
	require.NoError(t, err)

	permit, ok := out.(*adapter.PermitList)
	require.True(t, ok)
	assert.Equal(t, []string{"customer_id"}, permit.Scalars())

	_, err = r.For("hanami", fixtures.NestedContract())
	assert.ErrorIs(t, err, adapter.ErrUnsupportedAdapter)
}

func TestDescriptionsFlowIntoOutput(t *testing.T) {
	src := &mocks.MockDescriptionSource{}
	src.On("Descriptions", testconsts.SimpleContractName).
		Return(map[string]string{"age": "Age in years"})

	var buf bytes.Buffer
	r := New(
		WithDescriptions(src.Descriptions),
		WithLogger(logger.NewWithWriter(&buf, testconsts.TestLoggerLevelDebug, false)),
	)

	out, err := r.From(fixtures.SimpleContract())
	require.NoError(t, err)

	age, _ := out.(*adapter.GrapeParams).Get("age")
	assert.Equal(t, "Age in years", age.Desc)
	email, _ := out.(*adapter.GrapeParams).Get("email")
	assert.Equal(t, "Email", email.Desc)
	assert.Contains(t, buf.String(), "Params resolved")
	src.AssertExpectations(t)
}

func TestSchema(t *testing.T) {
	s := New().Schema(fixtures.OptionalFieldsContract())

	assert.Equal(t, testconsts.OptionalFieldsContractName, s.Name())
	assert.Equal(t, 3, s.Len())
}

func TestNewFromConfig(t *testing.T) {
	root := t.TempDir()
	fixtures.WriteContractFile(t, root, "contracts/api/v1/user_create_contract.yaml", fixtures.AnnotatedContractYAML)

	cfg, err := config.LoadBytes([]byte("params:\n  adapter: grape\n  paramtype: query\ndescriptions:\n  root: " + root + "\n"))
	require.NoError(t, err)

	r := NewFromConfig(cfg, nil)
	assert.Equal(t, adapter.Grape, r.DefaultAdapter())

	c, err := contract.Parse([]byte(fixtures.AnnotatedContractYAML))
	require.NoError(t, err)

	out, err := r.From(c)
	require.NoError(t, err)

	params := out.(*adapter.GrapeParams)
	name, _ := params.Get("name")
	assert.Equal(t, "The user's full name", name.Desc)
	assert.Equal(t, "query", name.Documentation.ParamType)
	age, _ := params.Get("age")
	assert.Equal(t, "Age", age.Desc)
	email, _ := params.Get("email")
	assert.Equal(t, "Email", email.Desc)
}

package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaborage/paramspec/schema"
	"github.com/gaborage/paramspec/testing/fixtures"
)

func TestLookup(t *testing.T) {
	grape, err := Lookup(Grape)
	require.NoError(t, err)
	assert.Equal(t, Grape, grape.Name())

	rails, err := Lookup(Rails)
	require.NoError(t, err)
	assert.Equal(t, Rails, rails.Name())
}

func TestLookupUnsupported(t *testing.T) {
	a, err := Lookup("sinatra")

	assert.Nil(t, a)
	require.Error(t, err)
	assert.Equal(t, "adapter 'sinatra' not supported", err.Error())
	assert.ErrorIs(t, err, ErrUnsupportedAdapter)

	var unsupported *UnsupportedAdapterError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, Name("sinatra"), unsupported.Name)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []Name{Grape, Rails}, Names())
}

func TestRenderDispatch(t *testing.T) {
	s := schema.FromContract(fixtures.OptionalFieldsContract(), nil)

	tests := []struct {
		name Name
		opts Options
	}{
		{name: Grape, opts: Options{ParamType: "query"}},
		{name: Rails, opts: Options{ParamType: "ignored"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			a, err := Lookup(tt.name)
			require.NoError(t, err)

			out := a.Render(s, tt.opts)
			assert.Equal(t, tt.name, out.Adapter())

			switch v := out.(type) {
			case *GrapeParams:
				p, ok := v.Get("nickname")
				require.True(t, ok)
				assert.Equal(t, "query", p.Documentation.ParamType)
				assert.False(t, p.Required)
			case *PermitList:
				assert.Equal(t, []string{"name", "nickname", "age"}, v.Scalars())
			default:
				t.Fatalf("unexpected output %T", out)
			}
		})
	}
}

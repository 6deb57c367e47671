package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaborage/paramspec/contract"
	testconsts "github.com/gaborage/paramspec/testing"
)

// SimpleContract declares two required scalars and one optional scalar.
func SimpleContract() *contract.Definition {
	return contract.Define(testconsts.SimpleContractName, func(s *contract.Builder) {
		s.Required("name").Filled(contract.String)
		s.Required("age").Filled(contract.Integer)
		s.Optional("email").Maybe(contract.String)
	})
}

// FullTypesContract declares one field per supported type.
func FullTypesContract() *contract.Definition {
	return contract.Define(testconsts.FullTypesContractName, func(s *contract.Builder) {
		s.Required("title").Filled(contract.String)
		s.Required("count").Filled(contract.Integer)
		s.Required("price").Filled(contract.Float)
		s.Required("amount").Filled(contract.Decimal)
		s.Required("published_at").Filled(contract.Date)
		s.Required("starts_at").Filled(contract.Time)
		s.Required("active").Filled(contract.Bool)
		s.Required("tags").Filled(contract.Array)
		s.Required("metadata").Filled(contract.Hash)
		s.Optional("notes").Maybe(contract.String)
	})
}

// OptionalFieldsContract declares scalars only, most of them optional.
func OptionalFieldsContract() *contract.Definition {
	return contract.Define(testconsts.OptionalFieldsContractName, func(s *contract.Builder) {
		s.Required("name").Filled(contract.String)
		s.Optional("nickname").Maybe(contract.String)
		s.Optional("age").Maybe(contract.Integer)
	})
}

// NestedContract mixes scalars with an array of hashes and a nested hash.
func NestedContract() *contract.Definition {
	return contract.Define(testconsts.NestedContractName, func(s *contract.Builder) {
		s.Required("customer_id").Filled(contract.Integer)
		s.Required("line_items").ArrayOf(func(item *contract.Builder) {
			item.Required("sku").Filled(contract.String)
			item.Optional("gift_note").Maybe(contract.String)
		})
		s.Optional("shipping").Hash(func(addr *contract.Builder) {
			addr.Required("street").Filled(contract.String)
		})
		s.Optional("coupon_codes").Array(contract.String)
	})
}

// AnnotatedContractYAML is a contract file whose fields carry @name annotations.
// The "age" annotation is separated by a blank line and must not be found.
const AnnotatedContractYAML = `contract: Api::V1::UserCreateContract
params:
  # @name = The user's full name
  - required(:name).filled(:string)

  # @age = Age in years

  - required(:age).filled(:integer)
  # @nickname = Something else entirely
  - optional(:email).maybe(:string)
  # @tags =   Labels attached to the user
  - optional(:tags).array(:string)
`

// WriteContractFile writes content under root at the relative path rel and
// returns the absolute path.
func WriteContractFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

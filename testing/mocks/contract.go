package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/gaborage/paramspec/contract"
)

// MockContract provides a testify-based mock implementation of contract.Contract.
//
// Example usage:
//
//	c := &mocks.MockContract{}
//	c.On("Name").Return("UserContract")
//	c.On("Rules").Return([]contract.NamedRule{{Name: "id", Rule: rule.HasKey("id")}})
type MockContract struct {
	mock.Mock
}

var _ contract.Contract = (*MockContract)(nil)

// Name implements contract.Contract
func (m *MockContract) Name() string {
	args := m.Called()
	return args.String(0)
}

// Rules implements contract.Contract
func (m *MockContract) Rules() []contract.NamedRule {
	args := m.Called()
	if rules := args.Get(0); rules != nil {
		return rules.([]contract.NamedRule)
	}
	return nil
}

// MockDescriptionSource records description lookups by contract name.
type MockDescriptionSource struct {
	mock.Mock
}

// Descriptions matches the schema.DescriptionSource signature; pass
// m.Descriptions wherever a source is expected.
func (m *MockDescriptionSource) Descriptions(contractName string) map[string]string {
	args := m.Called(contractName)
	if d := args.Get(0); d != nil {
		return d.(map[string]string)
	}
	return nil
}

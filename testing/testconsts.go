package testing

// Logger Constants
// Common logger levels used across test files.
const (
	// TestLoggerLevelDebug is the debug log level used in most tests
	TestLoggerLevelDebug = "debug"
	// TestLoggerLevelDisabled completely disables logging in tests
	TestLoggerLevelDisabled = "disabled"
)

// Contract Names
// Names of the contracts provided by the fixtures package.
const (
	SimpleContractName         = "SimpleContract"
	FullTypesContractName      = "FullTypesContract"
	OptionalFieldsContractName = "OptionalFieldsContract"
	NestedContractName         = "Api::V1::OrderCreateContract"
)

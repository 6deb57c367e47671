// Package testing provides testing utilities for paramspec.
//
// # Mocks
//
// The mocks subpackage provides testify-based mock implementations of the
// contract.Contract interface and of description sources, so facade and
// schema behaviour can be asserted call by call.
//
// # Fixtures
//
// The fixtures subpackage provides ready-made contracts covering every
// supported field type, required and optional keys, and annotated contract
// files for description extraction.
//
// # Usage
//
//	import (
//		"github.com/gaborage/paramspec/testing/mocks"
//		"github.com/gaborage/paramspec/testing/fixtures"
//	)
package testing

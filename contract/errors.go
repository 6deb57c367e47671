package contract

import (
	"errors"
	"fmt"
)

var (
	// ErrContractNotFound is returned when a registry has no contract under a name.
	ErrContractNotFound = errors.New("contract not found")
	// ErrInvalidContract is returned when a contract cannot be built from its source.
	ErrInvalidContract = errors.New("invalid contract")
)

// ParseError reports a contract file line that could not be read.
type ParseError struct {
	Source string // file path or "<bytes>"
	Line   int    // 1-based line of the offending declaration, 0 when unknown
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %q", e.Source, e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidContract.
func (e *ParseError) Unwrap() error {
	return ErrInvalidContract
}

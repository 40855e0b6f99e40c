package toolchain

import "fmt"

// LegacyParseError reports a failure of the legacy parser. Err is the
// original legacy error.
type LegacyParseError struct {
	Err error
}

func (e *LegacyParseError) Error() string {
	return fmt.Sprintf("failed to parse legacy toolchain-file variant: %v", e.Err)
}

func (e *LegacyParseError) Unwrap() error {
	return e.Err
}

// StructuredParseError reports a failure of the TOML parser. Err is the
// original *structured.ParseError.
type StructuredParseError struct {
	Err error
}

func (e *StructuredParseError) Error() string {
	return fmt.Sprintf("failed to parse TOML toolchain-file variant: %v", e.Err)
}

func (e *StructuredParseError) Unwrap() error {
	return e.Err
}

// FallbackError carries both failures of a fallback strategy, in the order
// they were attempted.
type FallbackError struct {
	First      error
	FallbackTo error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("both original and fallback parse attempts failed: failed to parse: '%v' and failed to fallback on '%v'", e.First, e.FallbackTo)
}

func (e *FallbackError) Unwrap() []error {
	return []error{e.First, e.FallbackTo}
}

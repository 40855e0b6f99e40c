// Package toolchain parses toolchain files in either the legacy single-line
// format or the TOML format, optionally falling back from one to the other.
//
// Parsing is pure: callers supply content already read from disk and receive
// a File or an error from the LegacyParseError, StructuredParseError and
// FallbackError family.
package toolchain

import (
	"fmt"

	"github.com/danmuck/toolchainfile/internal/toolchain/legacy"
	"github.com/danmuck/toolchainfile/internal/toolchain/structured"
)

// File is a parsed toolchain file of either variant.
type File struct {
	variant    Variant
	legacy     legacy.File
	structured structured.File
}

func LegacyFile(f legacy.File) File {
	return File{variant: Legacy, legacy: f}
}

func StructuredFile(f structured.File) File {
	return File{variant: Structured, structured: f}
}

func (f File) Variant() Variant {
	return f.variant
}

func (f File) Legacy() (legacy.File, bool) {
	return f.legacy, f.variant == Legacy
}

func (f File) Structured() (structured.File, bool) {
	return f.structured, f.variant == Structured
}

// Parser parses content according to Strategy. The legacy format is parsed
// leniently unless StrictLegacy is set.
type Parser struct {
	Strategy     Strategy
	StrictLegacy bool
}

func NewParser(strategy Strategy) Parser {
	return Parser{Strategy: strategy}
}

// Parse parses content with the given strategy and a lenient legacy parser.
func Parse(content string, strategy Strategy) (File, error) {
	return NewParser(strategy).Parse(content)
}

func (p Parser) Parse(content string) (File, error) {
	file, err := p.parseWith(p.Strategy.First(), content)
	if err == nil {
		return file, nil
	}
	fallbackTo, ok := p.Strategy.FallbackTo()
	if !ok {
		return File{}, err
	}
	file, fallbackErr := p.parseWith(fallbackTo, content)
	if fallbackErr != nil {
		return File{}, &FallbackError{First: err, FallbackTo: fallbackErr}
	}
	return file, nil
}

func (p Parser) parseWith(v Variant, content string) (File, error) {
	switch v {
	case Legacy:
		parser := legacy.NewParser(content)
		if p.StrictLegacy {
			parser = legacy.StrictParser(content)
		}
		f, err := parser.Parse()
		if err != nil {
			return File{}, &LegacyParseError{Err: err}
		}
		return LegacyFile(f), nil
	case Structured:
		f, err := structured.Parse(content)
		if err != nil {
			return File{}, &StructuredParseError{Err: err}
		}
		return StructuredFile(f), nil
	default:
		return File{}, fmt.Errorf("unknown toolchain file variant: %v", v)
	}
}

// Package legacy parses the single-line toolchain file format: a bare channel
// specifier such as "nightly-2021-01-21" or an absolute path to a toolchain.
package legacy

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrIsEmpty               = errors.New("legacy: toolchain file is empty")
	ErrInvalidEncodingStrict = errors.New("legacy: content is not US-ASCII and lenient encoding is disabled")
	ErrInvalidUTF8           = errors.New("legacy: content is not valid UTF-8")
)

// TooManyLinesError reports content that does not fit on exactly one line.
type TooManyLinesError struct {
	Lines int
}

func (e *TooManyLinesError) Error() string {
	return fmt.Sprintf("legacy: expected a single line containing the toolchain specifier but found %d lines", e.Lines)
}

// Parser parses legacy toolchain file content.
type Parser struct {
	content string

	// The published format is US-ASCII without BOM. A lenient parser also
	// accepts UTF-8, which is how most of these files are saved in practice.
	strict bool
}

// NewParser returns a parser which leniently accepts UTF-8 content.
func NewParser(content string) Parser {
	return Parser{content: content}
}

// StrictParser returns a parser which only accepts US-ASCII content.
func StrictParser(content string) Parser {
	return Parser{content: content, strict: true}
}

// Parse parses content leniently.
func Parse(content string) (File, error) {
	return NewParser(content).Parse()
}

// ParseStrict parses content, rejecting anything outside US-ASCII.
func ParseStrict(content string) (File, error) {
	return StrictParser(content).Parse()
}

func (p Parser) Parse() (File, error) {
	if p.strict && !isASCII(p.content) {
		return File{}, ErrInvalidEncodingStrict
	}
	if !p.strict && !utf8.ValidString(p.content) {
		return File{}, ErrInvalidUTF8
	}

	content := strings.TrimSpace(p.content)
	if content == "" {
		return File{}, ErrIsEmpty
	}

	if n := countLines(content); n != 1 {
		return File{}, &TooManyLinesError{Lines: n}
	}

	if filepath.IsAbs(content) {
		return File{channel: PathChannel(content)}, nil
	}
	return File{channel: SpecChannel(content)}, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// countLines counts '\n' separated lines of trimmed content. A lone '\r' does
// not end a line.
func countLines(content string) int {
	return strings.Count(content, "\n") + 1
}

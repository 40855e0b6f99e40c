// Package structured parses the TOML toolchain file format:
//
//	[toolchain]
//	channel = "nightly-2020-07-10"
//	components = ["rustfmt", "rustc-dev"]
//	targets = ["wasm32-unknown-unknown"]
//	profile = "minimal"
//
// The [toolchain] table holds either a single path key or the spec keys above.
package structured

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	ErrMissingToolchain = errors.New("missing table `toolchain`")
	ErrAmbiguousSection = errors.New("table `toolchain` sets both `path` and toolchain spec keys")
)

// ParseError wraps the decoder diagnostic for content that is not a valid
// TOML toolchain file.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("structured: unable to parse toolchain file: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var specKeys = []string{"channel", "components", "targets", "profile"}

type pathDocument struct {
	Toolchain struct {
		Path string `toml:"path"`
	} `toml:"toolchain"`
}

type specDocument struct {
	Toolchain struct {
		Channel    string   `toml:"channel"`
		Components []string `toml:"components"`
		Targets    []string `toml:"targets"`
		Profile    string   `toml:"profile"`
	} `toml:"toolchain"`
}

// Parser parses TOML toolchain file content.
type Parser struct {
	content string
}

func NewParser(content string) Parser {
	return Parser{content: content}
}

func FromBytes(content []byte) Parser {
	return Parser{content: string(content)}
}

func Parse(content string) (File, error) {
	return NewParser(content).Parse()
}

func ParseBytes(content []byte) (File, error) {
	return FromBytes(content).Parse()
}

// Parse tries the path shape first and falls back to the spec shape.
func (p Parser) Parse() (File, error) {
	var pd pathDocument
	meta, err := toml.Decode(p.content, &pd)
	if err == nil && meta.IsDefined("toolchain", "path") {
		for _, key := range specKeys {
			if meta.IsDefined("toolchain", key) {
				return File{}, &ParseError{Err: ErrAmbiguousSection}
			}
		}
		return NewFile(PathSection(NewToolchainPath(pd.Toolchain.Path))), nil
	}

	var sd specDocument
	meta, err = toml.Decode(p.content, &sd)
	if err != nil {
		return File{}, &ParseError{Err: err}
	}
	if !meta.IsDefined("toolchain") {
		return File{}, &ParseError{Err: ErrMissingToolchain}
	}

	var opts []SpecOption
	if meta.IsDefined("toolchain", "channel") {
		opts = append(opts, WithChannel(sd.Toolchain.Channel))
	}
	if meta.IsDefined("toolchain", "components") {
		opts = append(opts, WithComponents(sd.Toolchain.Components...))
	}
	if meta.IsDefined("toolchain", "targets") {
		opts = append(opts, WithTargets(sd.Toolchain.Targets...))
	}
	if meta.IsDefined("toolchain", "profile") {
		opts = append(opts, WithProfile(sd.Toolchain.Profile))
	}
	return NewFile(SpecSection(NewToolchainSpec(opts...))), nil
}

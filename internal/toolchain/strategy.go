package toolchain

import (
	"fmt"
	"strings"
)

// Variant identifies one toolchain file format.
type Variant uint8

const (
	Legacy Variant = iota + 1
	Structured
)

func (v Variant) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case Structured:
		return "structured"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// ParseVariant maps a format name to its Variant. "toml" is accepted as an
// alias for the structured format.
func ParseVariant(raw string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "legacy":
		return Legacy, nil
	case "structured", "toml":
		return Structured, nil
	default:
		return 0, fmt.Errorf("unknown toolchain file variant: %q", raw)
	}
}

// Strategy selects which format to parse, or which format to try first and
// which to fall back to.
type Strategy struct {
	first      Variant
	fallbackTo Variant
}

func Only(v Variant) Strategy {
	return Strategy{first: v}
}

func Fallback(first, fallbackTo Variant) Strategy {
	return Strategy{first: first, fallbackTo: fallbackTo}
}

func (s Strategy) First() Variant {
	return s.first
}

func (s Strategy) FallbackTo() (Variant, bool) {
	return s.fallbackTo, s.fallbackTo != 0
}

func (s Strategy) String() string {
	if to, ok := s.FallbackTo(); ok {
		return s.first.String() + "," + to.String()
	}
	return s.first.String()
}

// ParseStrategy reads "legacy", "structured" or a comma separated pair such
// as "legacy,structured".
func ParseStrategy(raw string) (Strategy, error) {
	parts := strings.Split(raw, ",")
	if len(parts) > 2 {
		return Strategy{}, fmt.Errorf("invalid parse strategy %q: at most two variants", raw)
	}
	first, err := ParseVariant(parts[0])
	if err != nil {
		return Strategy{}, fmt.Errorf("invalid parse strategy %q: %w", raw, err)
	}
	if len(parts) == 1 {
		return Only(first), nil
	}
	to, err := ParseVariant(parts[1])
	if err != nil {
		return Strategy{}, fmt.Errorf("invalid parse strategy %q: %w", raw, err)
	}
	return Fallback(first, to), nil
}

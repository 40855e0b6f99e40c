package toolchain

import "testing"

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{
		"legacy":            Only(Legacy),
		"structured":        Only(Structured),
		"toml":              Only(Structured),
		"legacy,structured": Fallback(Legacy, Structured),
		" TOML , legacy ":   Fallback(Structured, Legacy),
		"structured,legacy": Fallback(Structured, Legacy),
	}
	for raw, want := range cases {
		got, err := ParseStrategy(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: got=%v want=%v", raw, got, want)
		}
	}
}

func TestParseStrategyRejectsInvalid(t *testing.T) {
	for _, raw := range []string{"", "yaml", "legacy,", "legacy,structured,legacy"} {
		if _, err := ParseStrategy(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestStrategyString(t *testing.T) {
	if s := Fallback(Legacy, Structured).String(); s != "legacy,structured" {
		t.Fatalf("unexpected strategy string: %q", s)
	}
	if s := Only(Structured).String(); s != "structured" {
		t.Fatalf("unexpected strategy string: %q", s)
	}
	if _, ok := Only(Legacy).FallbackTo(); ok {
		t.Fatalf("expected no fallback for Only strategy")
	}
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/toolchainfile/internal/config"
	"github.com/danmuck/toolchainfile/internal/testutil/testlog"
	"github.com/danmuck/toolchainfile/internal/toolchain"
	"github.com/danmuck/toolchainfile/internal/toolchain/legacy"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunLegacyFile(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	want := writeFile(t, dir, "rust-toolchain", "1.70.0\n")

	parsed, path, err := run(config.Default(), options{dir: dir})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if path != want {
		t.Fatalf("unexpected path: %q", path)
	}

	var buf bytes.Buffer
	if err := render(&buf, path, parsed); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, line := range []string{"variant:    legacy", "channel:    1.70.0", "release:    1.70.0"} {
		if !strings.Contains(out, line) {
			t.Fatalf("missing %q in output:\n%s", line, out)
		}
	}
}

func TestRunTomlWithoutExtension(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	writeFile(t, dir, "rust-toolchain", `[toolchain]
channel = "nightly-2020-07-10"
components = ["rustfmt", "rustc-dev"]
targets = ["wasm32-unknown-unknown"]
profile = "minimal"
`)

	parsed, path, err := run(config.Default(), options{dir: dir})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var buf bytes.Buffer
	if err := render(&buf, path, parsed); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, line := range []string{
		"variant:    structured",
		"channel:    nightly-2020-07-10",
		"components: rustfmt, rustc-dev",
		"targets:    wasm32-unknown-unknown",
		"profile:    minimal",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("missing %q in output:\n%s", line, out)
		}
	}
	if strings.Contains(out, "release:") {
		t.Fatalf("unexpected release for nightly channel:\n%s", out)
	}
}

func TestRunTomlFileRejectsLegacyContent(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "rust-toolchain.toml", "stable\n")

	_, _, err := run(config.Default(), options{file: path})
	var structuredErr *toolchain.StructuredParseError
	if !errors.As(err, &structuredErr) {
		t.Fatalf("expected StructuredParseError, got %v", err)
	}
}

func TestRunStrictFlag(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "rust-toolchain", "\uFEFFstable\n")

	if _, _, err := run(config.Default(), options{file: path}); err != nil {
		t.Fatalf("lenient run: %v", err)
	}
	_, _, err := run(config.Default(), options{file: path, strategy: "legacy", strict: true})
	if !errors.Is(err, legacy.ErrInvalidEncodingStrict) {
		t.Fatalf("expected ErrInvalidEncodingStrict, got %v", err)
	}
}

func TestRunConfiguredStrategy(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "rust-toolchain", "[toolchain]\nchannel = \"stable\"\n")

	cfg := config.Default()
	cfg.Strategy = toolchain.Only(toolchain.Legacy)
	_, _, err := run(cfg, options{file: path})
	var lines *legacy.TooManyLinesError
	if !errors.As(err, &lines) || lines.Lines != 2 {
		t.Fatalf("expected TooManyLinesError(2), got %v", err)
	}
}

func TestRunNoFile(t *testing.T) {
	testlog.Start(t)
	cfg := config.Default()
	cfg.SearchParents = false
	if _, _, err := run(cfg, options{dir: t.TempDir()}); err == nil {
		t.Fatalf("expected not found error")
	}
}

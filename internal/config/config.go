package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/toolchainfile/internal/toolchain"
)

const (
	LegacyFileName     = "rust-toolchain"
	StructuredFileName = "rust-toolchain.toml"
)

// Config controls how toolchainctl finds and parses a toolchain file. A zero
// Strategy means the strategy follows from the file name.
type Config struct {
	Strategy      toolchain.Strategy
	StrictLegacy  bool
	FileNames     []string
	SearchParents bool
}

type fileConfig struct {
	Strategy      string   `toml:"strategy"`
	StrictLegacy  bool     `toml:"strict_legacy"`
	FileNames     []string `toml:"file_names"`
	SearchParents bool     `toml:"search_parents"`
}

func Default() Config {
	return Config{
		FileNames:     []string{LegacyFileName, StructuredFileName},
		SearchParents: true,
	}
}

// Load reads path and applies the keys it defines on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if meta.IsDefined("strategy") {
		s, err := toolchain.ParseStrategy(raw.Strategy)
		if err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
		cfg.Strategy = s
	}
	if meta.IsDefined("strict_legacy") {
		cfg.StrictLegacy = raw.StrictLegacy
	}
	if meta.IsDefined("file_names") {
		cfg.FileNames = normalizeNames(raw.FileNames)
	}
	if meta.IsDefined("search_parents") {
		cfg.SearchParents = raw.SearchParents
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if to, ok := cfg.Strategy.FallbackTo(); ok && to == cfg.Strategy.First() {
		return fmt.Errorf("strategy falls back to the variant it starts with: %s", to)
	}
	if len(cfg.FileNames) == 0 {
		return fmt.Errorf("file_names must list at least one name")
	}
	for i, name := range cfg.FileNames {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("file_names[%d] must be a bare file name: %q", i, name)
		}
	}
	return nil
}

func normalizeNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, name := range in {
		v := strings.TrimSpace(name)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

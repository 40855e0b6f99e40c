package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(Template), 0o644)
}

const Template = `# Derived from the file name when unset: rust-toolchain.toml is parsed as
# structured, rust-toolchain as legacy falling back to structured.
# strategy = "legacy,structured"
strict_legacy = false
file_names = ["rust-toolchain", "rust-toolchain.toml"]
search_parents = true
`

// Package locate finds a project's toolchain file on disk and reads it for
// the toolchain parser.
package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/toolchainfile/internal/toolchain"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("locate: no toolchain file found")

// Find returns the first of names present in dir, then in each parent of dir
// when searchParents is set. Within one directory the earlier name wins.
func Find(dir string, names []string, searchParents bool) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("locate: resolve %s: %w", dir, err)
	}
	for {
		found := ""
		for _, name := range names {
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return "", fmt.Errorf("locate: stat %s: %w", path, err)
			}
			if info.IsDir() {
				continue
			}
			if found != "" {
				log.Warn().Str("using", found).Str("ignored", path).Msg("locate: multiple toolchain files in one directory")
				continue
			}
			found = path
		}
		if found != "" {
			log.Debug().Str("path", found).Msg("locate: toolchain file found")
			return found, nil
		}

		parent := filepath.Dir(dir)
		if !searchParents || parent == dir {
			return "", fmt.Errorf("%w in %s", ErrNotFound, dir)
		}
		dir = parent
	}
}

// StrategyFor returns the parse strategy suited to a toolchain file name.
// Files ending in .toml only hold the TOML format; other names may hold
// either.
func StrategyFor(path string) toolchain.Strategy {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toolchain.Only(toolchain.Structured)
	}
	return toolchain.Fallback(toolchain.Legacy, toolchain.Structured)
}

// Read returns the content of path and the strategy suited to its name.
func Read(path string) (string, toolchain.Strategy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", toolchain.Strategy{}, fmt.Errorf("locate: read %s: %w", path, err)
	}
	return string(data), StrategyFor(path), nil
}

package main

import (
	"flag"
	"os"

	"github.com/danmuck/toolchainfile/internal/config"
	"github.com/danmuck/toolchainfile/internal/locate"
	"github.com/danmuck/toolchainfile/internal/logging"
	"github.com/danmuck/toolchainfile/internal/toolchain"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "toolchainctl config path (defaults when empty)")
	strategy := flag.String("strategy", "", "override parse strategy: legacy|structured|legacy,structured|structured,legacy")
	strict := flag.Bool("strict", false, "reject non US-ASCII legacy files")
	dir := flag.String("dir", ".", "project directory to search for a toolchain file")
	file := flag.String("file", "", "parse this toolchain file instead of searching")
	initPath := flag.String("init", "", "write a config template to this path and exit")
	force := flag.Bool("force", false, "overwrite an existing config template")
	flag.Parse()

	logging.ConfigureRuntime("toolchainctl")

	if *initPath != "" {
		if err := config.WriteTemplate(*initPath, *force); err != nil {
			log.Fatal().Err(err).Msg("write config template")
		}
		log.Info().Str("path", *initPath).Msg("wrote config template")
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
		log.Info().Str("path", *configPath).Msg("loaded config")
	}

	opts := options{
		dir:      *dir,
		file:     *file,
		strategy: *strategy,
		strict:   *strict,
	}
	parsed, path, err := run(cfg, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse toolchain file")
	}
	log.Debug().Str("path", path).Stringer("variant", parsed.Variant()).Msg("parsed toolchain file")

	if err := render(os.Stdout, path, parsed); err != nil {
		log.Fatal().Err(err).Msg("failed to write summary")
	}
}

type options struct {
	dir      string
	file     string
	strategy string
	strict   bool
}

// run locates and parses the toolchain file. An explicit strategy from the
// command line or config wins over the one derived from the file name.
func run(cfg config.Config, opts options) (toolchain.File, string, error) {
	path := opts.file
	if path == "" {
		found, err := locate.Find(opts.dir, cfg.FileNames, cfg.SearchParents)
		if err != nil {
			return toolchain.File{}, "", err
		}
		path = found
	}

	content, strategy, err := locate.Read(path)
	if err != nil {
		return toolchain.File{}, path, err
	}
	if opts.strategy != "" {
		strategy, err = toolchain.ParseStrategy(opts.strategy)
		if err != nil {
			return toolchain.File{}, path, err
		}
	} else if cfg.Strategy != (toolchain.Strategy{}) {
		strategy = cfg.Strategy
	}

	parser := toolchain.Parser{
		Strategy:     strategy,
		StrictLegacy: cfg.StrictLegacy || opts.strict,
	}
	parsed, err := parser.Parse(content)
	if err != nil {
		return toolchain.File{}, path, err
	}
	return parsed, path, nil
}

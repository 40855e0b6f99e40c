package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/toolchainfile/internal/toolchain"
	"github.com/danmuck/toolchainfile/internal/toolchain/structured"
)

func render(w io.Writer, path string, file toolchain.File) error {
	lines := []string{
		fmt.Sprintf("file:       %s", path),
		fmt.Sprintf("variant:    %s", file.Variant()),
	}

	if lf, ok := file.Legacy(); ok {
		if p, ok := lf.Path(); ok {
			lines = append(lines, fmt.Sprintf("path:       %s", p))
		}
		if spec, ok := lf.Spec(); ok {
			lines = append(lines, fmt.Sprintf("channel:    %s", spec))
			lines = appendVersion(lines, structured.Channel(spec))
		}
	}

	if sf, ok := file.Structured(); ok {
		section := sf.Toolchain()
		if p, ok := section.Path(); ok {
			lines = append(lines, fmt.Sprintf("path:       %s", p.Path()))
		}
		if spec, ok := section.Spec(); ok {
			if c, ok := spec.Channel(); ok {
				lines = append(lines, fmt.Sprintf("channel:    %s", c.Name()))
				lines = appendVersion(lines, c)
			}
			if cs, ok := spec.Components(); ok {
				names := make([]string, 0, len(cs))
				for _, c := range cs {
					names = append(names, c.Name())
				}
				lines = append(lines, fmt.Sprintf("components: %s", strings.Join(names, ", ")))
			}
			if ts, ok := spec.Targets(); ok {
				names := make([]string, 0, len(ts))
				for _, t := range ts {
					names = append(names, t.Name())
				}
				lines = append(lines, fmt.Sprintf("targets:    %s", strings.Join(names, ", ")))
			}
			if p, ok := spec.Profile(); ok {
				lines = append(lines, fmt.Sprintf("profile:    %s", p.Name()))
			}
		}
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func appendVersion(lines []string, c structured.Channel) []string {
	if v, ok := c.Version(); ok {
		return append(lines, fmt.Sprintf("release:    %s", v))
	}
	return lines
}

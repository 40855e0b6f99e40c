package structured

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

type encodedFile struct {
	Toolchain encodedSection `toml:"toolchain"`
}

type encodedSection struct {
	Path       *string   `toml:"path,omitempty"`
	Channel    *string   `toml:"channel,omitempty"`
	Components *[]string `toml:"components,omitempty"`
	Targets    *[]string `toml:"targets,omitempty"`
	Profile    *string   `toml:"profile,omitempty"`
}

// Encode renders f as a TOML toolchain file which parses back to f.
func (f File) Encode() ([]byte, error) {
	var out encodedFile
	if p, ok := f.toolchain.Path(); ok {
		path := p.Path()
		out.Toolchain.Path = &path
	} else if spec, ok := f.toolchain.Spec(); ok {
		if c, ok := spec.Channel(); ok {
			name := c.Name()
			out.Toolchain.Channel = &name
		}
		if cs, ok := spec.Components(); ok {
			names := make([]string, 0, len(cs))
			for _, c := range cs {
				names = append(names, c.Name())
			}
			out.Toolchain.Components = &names
		}
		if ts, ok := spec.Targets(); ok {
			names := make([]string, 0, len(ts))
			for _, t := range ts {
				names = append(names, t.Name())
			}
			out.Toolchain.Targets = &names
		}
		if p, ok := spec.Profile(); ok {
			name := p.Name()
			out.Toolchain.Profile = &name
		}
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("structured: encode toolchain file: %w", err)
	}
	return data, nil
}

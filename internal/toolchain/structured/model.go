package structured

import "github.com/blang/semver/v4"

// File is a parsed TOML toolchain file.
type File struct {
	toolchain Section
}

func NewFile(section Section) File {
	return File{toolchain: section}
}

func (f File) Toolchain() Section {
	return f.toolchain
}

// Section is the [toolchain] table. Exactly one of Path or Spec is set.
type Section struct {
	path *ToolchainPath
	spec *ToolchainSpec
}

func PathSection(path ToolchainPath) Section {
	return Section{path: &path}
}

func SpecSection(spec ToolchainSpec) Section {
	return Section{spec: &spec}
}

func (s Section) Path() (ToolchainPath, bool) {
	if s.path == nil {
		return ToolchainPath{}, false
	}
	return *s.path, true
}

func (s Section) Spec() (ToolchainSpec, bool) {
	if s.spec == nil {
		return ToolchainSpec{}, false
	}
	return *s.spec, true
}

// ToolchainPath points at a locally installed toolchain.
type ToolchainPath struct {
	path string
}

func NewToolchainPath(path string) ToolchainPath {
	return ToolchainPath{path: path}
}

func (p ToolchainPath) Path() string {
	return p.path
}

// ToolchainSpec selects a toolchain by channel. Every field is optional, and
// a present but empty list differs from an absent one.
type ToolchainSpec struct {
	channel    *Channel
	components []Component
	targets    []Target
	profile    *Profile

	hasComponents bool
	hasTargets    bool
}

// SpecOption sets one field of a ToolchainSpec.
type SpecOption func(*ToolchainSpec)

func WithChannel(name string) SpecOption {
	return func(s *ToolchainSpec) {
		c := Channel(name)
		s.channel = &c
	}
}

func WithComponents(names ...string) SpecOption {
	return func(s *ToolchainSpec) {
		s.components = make([]Component, 0, len(names))
		for _, name := range names {
			s.components = append(s.components, Component(name))
		}
		s.hasComponents = true
	}
}

func WithTargets(names ...string) SpecOption {
	return func(s *ToolchainSpec) {
		s.targets = make([]Target, 0, len(names))
		for _, name := range names {
			s.targets = append(s.targets, Target(name))
		}
		s.hasTargets = true
	}
}

func WithProfile(name string) SpecOption {
	return func(s *ToolchainSpec) {
		p := Profile(name)
		s.profile = &p
	}
}

func NewToolchainSpec(opts ...SpecOption) ToolchainSpec {
	var spec ToolchainSpec
	for _, opt := range opts {
		opt(&spec)
	}
	return spec
}

func (s ToolchainSpec) Channel() (Channel, bool) {
	if s.channel == nil {
		return "", false
	}
	return *s.channel, true
}

func (s ToolchainSpec) Components() ([]Component, bool) {
	if !s.hasComponents {
		return nil, false
	}
	return append([]Component{}, s.components...), true
}

func (s ToolchainSpec) Targets() ([]Target, bool) {
	if !s.hasTargets {
		return nil, false
	}
	return append([]Target{}, s.targets...), true
}

func (s ToolchainSpec) Profile() (Profile, bool) {
	if s.profile == nil {
		return "", false
	}
	return *s.profile, true
}

// Channel names a toolchain release, e.g. "stable" or "nightly-2020-07-10".
type Channel string

func (c Channel) Name() string { return string(c) }

// Version reports the release version when the channel names a numbered
// release such as "1.37.0" or "1.70".
func (c Channel) Version() (semver.Version, bool) {
	v, err := semver.ParseTolerant(string(c))
	if err != nil {
		return semver.Version{}, false
	}
	return v, true
}

type Component string

func (c Component) Name() string { return string(c) }

type Target string

func (t Target) Name() string { return string(t) }

type Profile string

func (p Profile) Name() string { return string(p) }

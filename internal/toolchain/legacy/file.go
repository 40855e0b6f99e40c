package legacy

type channelKind uint8

const (
	kindSpec channelKind = iota + 1
	kindPath
)

// Channel is the toolchain named by a legacy file: either a channel
// specification or an absolute path to a toolchain installation.
type Channel struct {
	kind  channelKind
	value string
}

func PathChannel(path string) Channel {
	return Channel{kind: kindPath, value: path}
}

func SpecChannel(spec string) Channel {
	return Channel{kind: kindSpec, value: spec}
}

func (c Channel) IsPath() bool {
	return c.kind == kindPath
}

func (c Channel) Path() (string, bool) {
	if c.kind != kindPath {
		return "", false
	}
	return c.value, true
}

func (c Channel) Spec() (string, bool) {
	if c.kind != kindSpec {
		return "", false
	}
	return c.value, true
}

func (c Channel) String() string {
	return c.value
}

// File is a parsed legacy toolchain file.
type File struct {
	channel Channel
}

func NewFile(channel Channel) File {
	return File{channel: channel}
}

func (f File) Channel() Channel {
	return f.channel
}

// Path returns the toolchain path when the file names a path rather than a
// channel specification.
func (f File) Path() (string, bool) {
	return f.channel.Path()
}

// Spec returns the channel specification when the file does not name a path.
func (f File) Spec() (string, bool) {
	return f.channel.Spec()
}

package distro

// Info identifies the running Linux distribution.
type Info struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Unknown is used when no release descriptor could be read.
var Unknown = Info{ID: "unknown", Name: "Unknown"}

// Variant is a banner family.
type Variant int

const (
	Unsupported Variant = iota
	Arch
	Ubuntu
	Manjaro
)

func (v Variant) String() string {
	switch v {
	case Arch:
		return "arch"
	case Ubuntu:
		return "ubuntu"
	case Manjaro:
		return "manjaro"
	default:
		return "unsupported"
	}
}

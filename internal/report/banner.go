package report

import (
	"embed"
	"fmt"

	"github.com/fatih/color"
	"github.com/hiveden/hivefetch/internal/distro"
)

// UnsupportedNotice is printed to standard output when no banner exists.
const UnsupportedNotice = "Distro currently not supported!"

//go:embed banners/*.txt
var bannerFS embed.FS

type banner struct {
	file  string
	color color.Attribute
}

var banners = map[distro.Variant]banner{
	distro.Arch:    {file: "banners/arch.txt", color: color.FgGreen},
	distro.Ubuntu:  {file: "banners/ubuntu.txt", color: color.FgRed},
	distro.Manjaro: {file: "banners/manjaro.txt", color: color.FgGreen},
}

// Art returns the ASCII art for a variant. ok is false for Unsupported.
func Art(v distro.Variant) (art string, ok bool) {
	b, ok := banners[v]
	if !ok {
		return "", false
	}
	data, err := bannerFS.ReadFile(b.file)
	if err != nil {
		panic(fmt.Sprintf("report: missing embedded banner %s", b.file))
	}
	return string(data), true
}

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/hiveden/hivefetch/internal/distro"
	"github.com/hiveden/hivefetch/internal/hw"
	"gopkg.in/yaml.v2"
)

// LabelWidth is the padded width of "Label:" columns.
const LabelWidth = 12

// Options controls the report layout.
type Options struct {
	Fields []Field
	Color  ColorMode
}

// Renderer writes the banner to Err and the report to Out.
type Renderer struct {
	Out      io.Writer
	Err      io.Writer
	fields   []Field
	errColor bool
	label    *color.Color
	accent   *color.Color
}

// NewRenderer returns a Renderer. A nil Fields list means DefaultFields.
func NewRenderer(out, errOut io.Writer, opts Options) *Renderer {
	fields := opts.Fields
	if len(fields) == 0 {
		fields = DefaultFields
	}

	outColor := colorizes(out, opts.Color)
	return &Renderer{
		Out:      out,
		Err:      errOut,
		fields:   fields,
		errColor: colorizes(errOut, opts.Color),
		label:    paint(color.New(color.FgCyan, color.Bold), outColor),
		accent:   paint(color.New(color.FgGreen, color.Bold), outColor),
	}
}

// Render writes the banner followed by the report.
func (r *Renderer) Render(v distro.Variant, s hw.Snapshot, d distro.Info) error {
	if err := r.Banner(v); err != nil {
		return err
	}
	return r.Report(s, d)
}

// Banner writes the ASCII art for v to Err, or the unsupported notice to Out.
func (r *Renderer) Banner(v distro.Variant) error {
	art, ok := Art(v)
	if !ok {
		_, err := fmt.Fprintln(r.Out, UnsupportedNotice)
		return err
	}

	c := paint(color.New(banners[v].color, color.Bold), r.errColor)
	_, err := fmt.Fprintln(r.Err, c.Sprint(strings.TrimRight(art, "\n")))
	return err
}

// Report writes the configured fields to Out.
func (r *Renderer) Report(s hw.Snapshot, d distro.Info) error {
	var b strings.Builder
	for _, f := range r.fields {
		b.WriteString(r.line(f, s, d))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.Out, b.String())
	return err
}

func (r *Renderer) line(f Field, s hw.Snapshot, d distro.Info) string {
	switch f {
	case FieldTitle:
		return r.accent.Sprint(s.Username) + "@" + r.accent.Sprint(s.Hostname)
	case FieldDivider:
		return strings.Repeat("-", utf8.RuneCountInString(s.Username)+1+utf8.RuneCountInString(s.Hostname))
	}

	return r.label.Sprint(fmt.Sprintf("%-*s", LabelWidth, fieldLabels[f]+":")) + Value(f, s, d)
}

// Value formats the text shown for a labelled field.
func Value(f Field, s hw.Snapshot, d distro.Info) string {
	switch f {
	case FieldUptime:
		hours, minutes := hw.SplitUptime(s.Uptime)
		return fmt.Sprintf("%dhrs, %dmin", hours, minutes)
	case FieldKernel:
		return s.Kernel
	case FieldDistro:
		return d.Name
	case FieldCPU:
		return fmt.Sprintf("%s (%d cores)", s.CPU, s.Cores)
	case FieldMemory:
		return fmt.Sprintf("%dMiB / %dMiB", hw.KiBToMiB(s.MemoryUsedKiB), hw.KiBToMiB(s.MemoryTotalKiB))
	case FieldDisk:
		return fmt.Sprintf("%dGiB / %dGiB", hw.BytesToGiB(s.DiskUsed), hw.BytesToGiB(s.DiskTotal))
	case FieldPackages:
		return count(s.Packages)
	case FieldContainers:
		return count(s.Containers)
	}
	return ""
}

func count(n int) string {
	if n < 0 {
		return hw.Unknown
	}
	return strconv.Itoa(n)
}

type document struct {
	Banner   string      `yaml:"banner"`
	Distro   distro.Info `yaml:"distro"`
	Snapshot hw.Snapshot `yaml:"system"`
}

// YAML writes a machine-readable form of the report to Out.
func (r *Renderer) YAML(v distro.Variant, s hw.Snapshot, d distro.Info) error {
	data, err := yaml.Marshal(&document{Banner: v.String(), Distro: d, Snapshot: s})
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = r.Out.Write(data)
	return err
}

// Package fetch runs one collect, resolve and render pass.
package fetch

import (
	"context"
	"io"
	"log"

	"github.com/hiveden/hivefetch/internal/config"
	"github.com/hiveden/hivefetch/internal/distro"
	"github.com/hiveden/hivefetch/internal/hw"
	"github.com/hiveden/hivefetch/internal/report"
)

// Runner holds everything needed for a single report.
type Runner struct {
	Collector *hw.Collector
	Renderer  *report.Renderer
	OSRelease []string
	Format    string
	Logger    *log.Logger
}

// New builds a Runner from settings. Optional counters on the collector are
// left for the caller to attach.
func New(probe hw.Probe, s config.Settings, out, errOut io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Runner{
		Collector: hw.NewCollector(probe, logger),
		Renderer:  report.NewRenderer(out, errOut, report.Options{Fields: s.Fields, Color: s.Color}),
		OSRelease: s.OSRelease,
		Format:    s.Format,
		Logger:    logger,
	}
}

// Run performs one pass. Only write errors are returned.
func (r *Runner) Run(ctx context.Context) error {
	snapshot := r.Collector.Collect(ctx)
	info := distro.Load(r.Logger, r.OSRelease...)
	variant := distro.Resolve(info.ID)

	r.Logger.Printf("distro %q resolved to banner %s", info.ID, variant)

	if r.Format == config.FormatYAML {
		return r.Renderer.YAML(variant, snapshot, info)
	}
	return r.Renderer.Render(variant, snapshot, info)
}

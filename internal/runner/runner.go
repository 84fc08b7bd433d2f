// Package runner executes one search: load the source, match, render.
package runner

import (
	"time"

	"github.com/standardbeagle/minigrep/internal/config"
	"github.com/standardbeagle/minigrep/internal/debug"
	mgerrors "github.com/standardbeagle/minigrep/internal/errors"
	"github.com/standardbeagle/minigrep/internal/matcher"
	"github.com/standardbeagle/minigrep/internal/render"
	"github.com/standardbeagle/minigrep/internal/source"
)

// Loader provides the content for a source identifier
type Loader interface {
	Load(id string) (*source.Source, error)
}

// Renderer presents a finished report
type Renderer interface {
	Render(rep render.Report) error
}

// Runner wires a loader and a renderer around the match engine
type Runner struct {
	loader   Loader
	renderer Renderer
}

// New creates a runner
func New(loader Loader, renderer Renderer) *Runner {
	return &Runner{loader: loader, renderer: renderer}
}

// Run performs the search described by cfg. The source is loaded completely
// before matching starts; load failures are returned before the engine runs.
func (r *Runner) Run(cfg config.SearchConfig) (matcher.Result, error) {
	src, err := r.loader.Load(cfg.Source())
	if err != nil {
		return nil, err
	}

	engine := matcher.New(cfg)

	start := time.Now()
	result := engine.Run(src.Content)
	lineCount := matcher.CountLines(src.Content)
	debug.LogSearch("%s search for %q: %d of %d lines matched in %v\n",
		engine.Mode(), cfg.Query(), len(result), lineCount, time.Since(start))

	rep := render.Report{
		Query:         cfg.Query(),
		Source:        cfg.Source(),
		CaseSensitive: cfg.CaseSensitive(),
		Mode:          engine.Mode(),
		LineCount:     lineCount,
		ContentHash:   src.FastHash,
		Matches:       result,
	}
	if err := r.renderer.Render(rep); err != nil {
		return result, mgerrors.NewResourceError("write", "output", err)
	}

	return result, nil
}

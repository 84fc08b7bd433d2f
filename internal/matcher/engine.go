package matcher

import (
	"github.com/standardbeagle/minigrep/internal/config"
)

// Mode names the algorithm an Engine runs
type Mode string

const (
	ModeCaseSensitive   Mode = "case-sensitive"
	ModeCaseInsensitive Mode = "case-insensitive"
	ModeUnicodeFold     Mode = "unicode-fold"
)

// Engine binds a resolved SearchConfig to one search algorithm.
// It is immutable and may be shared between goroutines.
type Engine struct {
	query  string
	mode   Mode
	search SearchFunc
}

// New selects the algorithm for cfg
func New(cfg config.SearchConfig) *Engine {
	e := &Engine{query: cfg.Query()}

	switch {
	case cfg.CaseSensitive():
		e.mode, e.search = ModeCaseSensitive, Search
	case cfg.Folding() == config.FoldUnicode:
		e.mode, e.search = ModeUnicodeFold, SearchFolded
	default:
		e.mode, e.search = ModeCaseInsensitive, SearchCaseInsensitive
	}

	return e
}

// Mode reports the selected algorithm
func (e *Engine) Mode() Mode {
	return e.mode
}

// Run searches content with the configured query
func (e *Engine) Run(content []byte) Result {
	return e.search(e.query, content)
}

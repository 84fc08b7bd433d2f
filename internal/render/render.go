// Package render writes search results for people and for programs.
package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/standardbeagle/minigrep/internal/config"
	"github.com/standardbeagle/minigrep/internal/matcher"
)

// Options controls rendering
type Options struct {
	Format      string // config.FormatText, FormatJSON or FormatCount
	LineNumbers bool
	Header      bool
}

// OptionsFromConfig copies the output section of the project config
func OptionsFromConfig(out config.Output) Options {
	return Options{
		Format:      out.Format,
		LineNumbers: out.LineNumbers,
		Header:      out.Header,
	}
}

// Report is everything one run produced
type Report struct {
	Query         string
	Source        string
	CaseSensitive bool
	Mode          matcher.Mode
	LineCount     int
	ContentHash   uint64
	Matches       matcher.Result
}

// Renderer writes reports to a single writer
type Renderer struct {
	w    io.Writer
	opts Options
}

// New creates a renderer writing to w
func New(w io.Writer, opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = config.FormatText
	}
	return &Renderer{w: w, opts: opts}
}

// Render writes the report in the configured format
func (r *Renderer) Render(rep Report) error {
	bw := bufio.NewWriter(r.w)

	var err error
	switch r.opts.Format {
	case config.FormatJSON:
		err = r.renderJSON(bw, rep)
	case config.FormatCount:
		_, err = fmt.Fprintf(bw, "%d\n", len(rep.Matches))
	case config.FormatText:
		err = r.renderText(bw, rep)
	default:
		return fmt.Errorf("unknown output format %q", r.opts.Format)
	}
	if err != nil {
		return err
	}

	return bw.Flush()
}

// renderText prints the banner, then every match preceded by a blank line
func (r *Renderer) renderText(w *bufio.Writer, rep Report) error {
	if r.opts.Header {
		if _, err := fmt.Fprintf(w, "Searching for %s in file %s\n", rep.Query, rep.Source); err != nil {
			return err
		}
	}

	for _, line := range rep.Matches {
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		if r.opts.LineNumbers {
			if _, err := fmt.Fprintf(w, "%d:", line.Number); err != nil {
				return err
			}
		}
		if _, err := w.Write(line.Bytes); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return nil
}

type jsonMatch struct {
	Line  int    `json:"line"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type jsonReport struct {
	Query         string      `json:"query"`
	Source        string      `json:"source"`
	CaseSensitive bool        `json:"case_sensitive"`
	Mode          string      `json:"mode"`
	ContentHash   string      `json:"content_hash"`
	LineCount     int         `json:"line_count"`
	MatchCount    int         `json:"match_count"`
	Matches       []jsonMatch `json:"matches"`
}

func (r *Renderer) renderJSON(w io.Writer, rep Report) error {
	out := jsonReport{
		Query:         rep.Query,
		Source:        rep.Source,
		CaseSensitive: rep.CaseSensitive,
		Mode:          string(rep.Mode),
		ContentHash:   fmt.Sprintf("%016x", rep.ContentHash),
		LineCount:     rep.LineCount,
		MatchCount:    len(rep.Matches),
		Matches:       make([]jsonMatch, 0, len(rep.Matches)),
	}
	for _, line := range rep.Matches {
		out.Matches = append(out.Matches, jsonMatch{
			Line:  line.Number,
			Start: line.Start,
			End:   line.End,
			Text:  line.Text(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Package source loads the text a search runs over. The whole source is
// read into memory before any matching starts, and the buffer is never
// modified afterwards.
package source

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/minigrep/internal/config"
	"github.com/standardbeagle/minigrep/internal/debug"
	mgerrors "github.com/standardbeagle/minigrep/internal/errors"
	"github.com/standardbeagle/minigrep/pkg/pathutil"
)

// StdinID is the source identifier that reads standard input
const StdinID = "-"

// Source is a fully loaded, read-only text buffer
type Source struct {
	ID       string // identifier as given on the command line
	Content  []byte
	FastHash uint64 // xxhash of Content
}

// Size returns the content length in bytes
func (s *Source) Size() int {
	return len(s.Content)
}

// Loader reads sources subject to the size and exclusion policy
type Loader struct {
	maxSize int64
	exclude []string
	root    string // exclude patterns are relative to this directory
	stdin   io.Reader
}

// NewLoader creates a loader from the source section of the project config.
// stdin is read when the identifier is "-".
func NewLoader(cfg config.Source, stdin io.Reader) *Loader {
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxFileSize
	}
	root, _ := os.Getwd()
	return &Loader{
		maxSize: maxSize,
		exclude: cfg.Exclude,
		root:    root,
		stdin:   stdin,
	}
}

// Load reads id fully into memory. Every failure is a ResourceError.
func (l *Loader) Load(id string) (*Source, error) {
	var (
		content []byte
		err     error
	)

	if id == StdinID {
		content, err = l.readStdin()
	} else {
		content, err = l.readFile(id)
	}
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(content) {
		return nil, mgerrors.NewResourceError("decode", id, mgerrors.ErrInvalidEncoding)
	}

	src := &Source{
		ID:       id,
		Content:  content,
		FastHash: xxhash.Sum64(content),
	}
	debug.LogSource("loaded %s: %d bytes, hash %016x\n", id, src.Size(), src.FastHash)
	return src, nil
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if pattern, ok := l.excluded(path); ok {
		return nil, mgerrors.NewResourceError("policy", path,
			fmt.Errorf("%w (%s)", mgerrors.ErrExcluded, pattern))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, mgerrors.NewResourceError("stat", path, err)
	}
	if info.IsDir() {
		return nil, mgerrors.NewResourceError("stat", path, fmt.Errorf("is a directory"))
	}
	if info.Size() > l.maxSize {
		return nil, mgerrors.NewResourceError("policy", path,
			fmt.Errorf("%w: %d bytes > %d", mgerrors.ErrTooLarge, info.Size(), l.maxSize))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, mgerrors.NewResourceError("read", path, err)
	}
	return content, nil
}

func (l *Loader) readStdin() ([]byte, error) {
	if l.stdin == nil {
		return nil, mgerrors.NewResourceError("open", StdinID, os.ErrInvalid)
	}

	// One extra byte tells "exactly at the limit" from "over it"
	content, err := io.ReadAll(io.LimitReader(l.stdin, l.maxSize+1))
	if err != nil {
		return nil, mgerrors.NewResourceError("read", StdinID, err)
	}
	if int64(len(content)) > l.maxSize {
		return nil, mgerrors.NewResourceError("policy", StdinID,
			fmt.Errorf("%w: more than %d bytes", mgerrors.ErrTooLarge, l.maxSize))
	}
	return content, nil
}

// excluded reports the first exclude pattern matching path. Patterns are
// tried against the path relative to the working directory and against the
// base name.
func (l *Loader) excluded(path string) (string, bool) {
	if len(l.exclude) == 0 {
		return "", false
	}

	candidates := pathutil.MatchCandidates(path, l.root)
	for _, pattern := range l.exclude {
		for _, candidate := range candidates {
			matched, err := doublestar.Match(pattern, candidate)
			if err != nil {
				debug.LogSource("bad exclude pattern %q: %v\n", pattern, err)
				break
			}
			if matched {
				return pattern, true
			}
		}
	}
	return "", false
}

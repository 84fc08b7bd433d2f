package config

import (
	"github.com/standardbeagle/minigrep/internal/debug"
	mgerrors "github.com/standardbeagle/minigrep/internal/errors"
)

// CaseOrigin records which input decided the case policy
type CaseOrigin string

const (
	CaseFromFlag    CaseOrigin = "flag"
	CaseFromEnv     CaseOrigin = "env"
	CaseFromFile    CaseOrigin = "config file"
	CaseFromDefault CaseOrigin = "default"
)

// ResolveInput gathers everything the resolver may consult
type ResolveInput struct {
	Args          []string // positional arguments: query, source
	IgnoreCase    bool     // --ignore-case was given
	CaseSensitive bool     // --case-sensitive was given
	UnicodeFold   bool     // --unicode-fold was given
	Env           Environment
	File          *Config // nil means Default()
}

// Resolve builds the one SearchConfig for this run
func Resolve(in ResolveInput) (SearchConfig, error) {
	switch len(in.Args) {
	case 0:
		return SearchConfig{}, mgerrors.MissingArgument("query", "didn't get a query string")
	case 1:
		return SearchConfig{}, mgerrors.MissingArgument("source", "didn't get a file name")
	case 2:
	default:
		return SearchConfig{}, mgerrors.NewConfigError("args", in.Args[2], mgerrors.ErrUnexpectedArg)
	}

	file := in.File
	if file == nil {
		file = Default()
	}

	caseSensitive, origin, err := ResolveCaseSensitivity(in, file)
	if err != nil {
		return SearchConfig{}, err
	}

	fold, err := ParseFoldMode(file.Search.Fold)
	if err != nil {
		return SearchConfig{}, mgerrors.NewConfigError("search.fold", file.Search.Fold, mgerrors.ErrInvalidValue)
	}
	if in.UnicodeFold {
		fold = FoldUnicode
	}

	cfg, err := NewSearchConfig(in.Args[0], in.Args[1], caseSensitive, WithFolding(fold))
	if err != nil {
		return SearchConfig{}, err
	}

	debug.LogConfig("resolved %s (case policy from %s)\n", cfg, origin)
	return cfg, nil
}

// ResolveCaseSensitivity decides the case policy. Precedence, highest first:
// explicit flag, CASE_INSENSITIVE in the environment, config file, default.
//
// The environment signal keeps its historical polarity: search ignores case
// by default, and setting CASE_INSENSITIVE (to anything, even "") makes it
// case SENSITIVE. The name reads backwards; it is kept because scripts rely
// on it.
func ResolveCaseSensitivity(in ResolveInput, file *Config) (bool, CaseOrigin, error) {
	if in.IgnoreCase && in.CaseSensitive {
		return false, "", mgerrors.NewConfigError("flags", "--ignore-case --case-sensitive", mgerrors.ErrConflictingFlags)
	}

	switch {
	case in.CaseSensitive:
		return true, CaseFromFlag, nil
	case in.IgnoreCase:
		return false, CaseFromFlag, nil
	}

	if _, ok := in.Env.Lookup(CaseInsensitiveEnv); ok {
		return true, CaseFromEnv, nil
	}

	if file != nil && file.Search.CaseSensitive != nil {
		return *file.Search.CaseSensitive, CaseFromFile, nil
	}

	return false, CaseFromDefault, nil
}

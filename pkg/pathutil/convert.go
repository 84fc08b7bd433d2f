// Package pathutil converts source paths into the forms exclude patterns are
// matched against.
//
// Patterns in the config are written relative to the directory minigrep runs
// in ("vendor/**", "*.png"), while sources arrive as whatever the user typed.
// This package is the conversion layer between the two.
package pathutil

import (
	"path/filepath"
	"strings"
)

// ToRelative converts an absolute path to relative based on a root directory.
// Falls back to the original path if conversion fails or path is already relative.
//
// Examples:
//   - ToRelative("/home/user/project/docs/poem.txt", "/home/user/project") → "docs/poem.txt"
//   - ToRelative("/other/location/poem.txt", "/home/user/project") → "/other/location/poem.txt" (outside root)
//   - ToRelative("docs/poem.txt", "/home/user/project") → "docs/poem.txt" (already relative)
func ToRelative(absPath, rootDir string) string {
	if absPath == "" || rootDir == "" {
		return absPath
	}

	if !filepath.IsAbs(absPath) {
		return absPath
	}

	absPath = filepath.Clean(absPath)
	rootDir = filepath.Clean(rootDir)

	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		// Different volumes on Windows
		return absPath
	}

	// Outside the root the absolute path is clearer
	if strings.HasPrefix(relPath, "..") {
		return absPath
	}

	return relPath
}

// ToPattern returns path in doublestar form: cleaned, slash separated, with
// any volume name and leading slash removed.
func ToPattern(path string) string {
	if path == "" {
		return ""
	}
	clean := filepath.Clean(path)
	clean = strings.TrimPrefix(clean, filepath.VolumeName(clean))
	clean = filepath.ToSlash(clean)
	return strings.TrimPrefix(clean, "/")
}

// MatchCandidates lists the forms of path an exclude pattern is tried
// against, most specific first: relative to rootDir, then the base name.
// Duplicates are dropped.
func MatchCandidates(path, rootDir string) []string {
	if path == "" {
		return nil
	}

	rel := ToPattern(ToRelative(path, rootDir))
	base := filepath.Base(path)
	if rel == base {
		return []string{rel}
	}
	return []string{rel, base}
}

// Package matcher implements line oriented substring search over an
// in-memory buffer. All functions are pure: they never copy or modify the
// content and keep no state between calls, so they are safe for concurrent
// use on independent inputs.
package matcher

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Line is a matched line. Bytes is a view into the searched content, not a
// copy, and stays valid for as long as the caller keeps the content alive.
type Line struct {
	Number int // 1-based line number in the source
	Start  int // byte offset of the first byte of the line
	End    int // byte offset one past the last byte (terminator excluded)
	Bytes  []byte
}

// Text returns the line as a string.
// Note: This allocates. Use Bytes for zero-copy access.
func (l Line) Text() string {
	return string(l.Bytes)
}

// Result is the ordered list of matched lines, in source order
type Result []Line

// Texts returns the matched lines as strings
func (r Result) Texts() []string {
	out := make([]string, 0, len(r))
	for _, l := range r {
		out = append(out, l.Text())
	}
	return out
}

// Numbers returns the 1-based line numbers of the matches
func (r Result) Numbers() []int {
	out := make([]int, 0, len(r))
	for _, l := range r {
		out = append(out, l.Number)
	}
	return out
}

// SearchFunc is the shape shared by every search algorithm
type SearchFunc func(query string, content []byte) Result

// Search returns every line of content that contains query as an exact,
// case-sensitive substring. An empty query matches every line.
func Search(query string, content []byte) Result {
	q := []byte(query)
	return collect(content, func(line []byte) bool {
		return bytes.Contains(line, q)
	})
}

// SearchCaseInsensitive returns every line whose lower-cased form contains
// the lower-cased query. Returned lines reference the original bytes.
func SearchCaseInsensitive(query string, content []byte) Result {
	q := bytes.ToLower([]byte(query))
	qASCII := isASCII(q)

	return collect(content, func(line []byte) bool {
		if isASCII(line) {
			// A lowered ASCII line can never contain a non-ASCII query
			if !qASCII {
				return false
			}
			return containsFoldASCII(line, q)
		}
		return bytes.Contains(bytes.ToLower(line), q)
	})
}

// SearchFolded is SearchCaseInsensitive with full Unicode case folding, so
// that for example "STRASSE" matches "straße".
func SearchFolded(query string, content []byte) Result {
	// Casers are stateful; each call owns its own.
	caser := cases.Fold()
	q := caser.Bytes([]byte(query))

	return collect(content, func(line []byte) bool {
		return bytes.Contains(caser.Bytes(line), q)
	})
}

func collect(content []byte, match func(line []byte) bool) Result {
	var out Result
	scanner := NewLineScanner(content)
	for scanner.Scan() {
		line := scanner.Bytes()
		if !match(line) {
			continue
		}
		out = append(out, Line{
			Number: scanner.LineNumber(),
			Start:  scanner.Offset(),
			End:    scanner.EndOffset(),
			Bytes:  line,
		})
	}
	return out
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// containsFoldASCII reports whether lowerQuery occurs in line when line is
// lower-cased. Both must be ASCII; lowerQuery must already be lower case.
func containsFoldASCII(line, lowerQuery []byte) bool {
	n := len(lowerQuery)
	if n == 0 {
		return true
	}
	for i := 0; i+n <= len(line); i++ {
		j := 0
		for j < n && toLowerASCII(line[i+j]) == lowerQuery[j] {
			j++
		}
		if j == n {
			return true
		}
	}
	return false
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

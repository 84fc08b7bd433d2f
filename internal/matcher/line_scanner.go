package matcher

import (
	"bytes"
)

// LineScanner walks a buffer one line at a time without allocating.
// Lines are terminated by '\n'; a '\r' directly before the terminator is
// stripped. A trailing terminator does not produce an extra empty line, and
// an empty buffer has no lines at all.
//
//	s := NewLineScanner(content)
//	for s.Scan() {
//	    process(s.LineNumber(), s.Bytes())
//	}
type LineScanner struct {
	data    []byte
	start   int // first byte of the current line
	end     int // one past its last byte, terminator excluded
	pos     int // where the next Scan starts
	lineNum int
	done    bool
}

// NewLineScanner returns a scanner positioned before the first line
func NewLineScanner(data []byte) *LineScanner {
	return &LineScanner{data: data}
}

// Scan moves to the next line and reports whether there was one
func (ls *LineScanner) Scan() bool {
	if ls.done || ls.pos >= len(ls.data) {
		ls.done = true
		return false
	}

	ls.start = ls.pos
	ls.lineNum++

	idx := bytes.IndexByte(ls.data[ls.pos:], '\n')
	if idx < 0 {
		// unterminated final line
		ls.end = len(ls.data)
		ls.pos = len(ls.data)
	} else {
		ls.end = ls.pos + idx
		ls.pos = ls.pos + idx + 1
	}

	// CRLF
	if ls.end > ls.start && ls.data[ls.end-1] == '\r' {
		ls.end--
	}

	return true
}

// Bytes returns the current line as a view into the scanned content.
// The view's capacity is clipped to the line so appending to it can never
// write into the following bytes of the buffer.
func (ls *LineScanner) Bytes() []byte {
	if ls.start > len(ls.data) || ls.end > len(ls.data) {
		return nil
	}
	return ls.data[ls.start:ls.end:ls.end]
}

// Text copies the current line into a string
func (ls *LineScanner) Text() string {
	return string(ls.Bytes())
}

// LineNumber is the 1-based number of the current line
func (ls *LineScanner) LineNumber() int {
	return ls.lineNum
}

// Offset is the byte offset where the current line starts
func (ls *LineScanner) Offset() int {
	return ls.start
}

// EndOffset is the byte offset just past the current line, before any
// terminator
func (ls *LineScanner) EndOffset() int {
	return ls.end
}

// Reset rewinds to the start of the buffer
func (ls *LineScanner) Reset() {
	*ls = LineScanner{data: ls.data}
}

// CountLines counts the number of lines in content without allocation,
// using the same rules as LineScanner.
func CountLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	n := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] == '\n' {
		return n
	}
	return n + 1
}

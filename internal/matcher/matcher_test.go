package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_OneResult(t *testing.T) {
	query := "duct"
	contents := "Rust:\nsafe, fast, productive.\nPick three."

	assert.Equal(t, []string{"safe, fast, productive."}, Search(query, []byte(contents)).Texts())
}

func TestSearch_CaseSensitive(t *testing.T) {
	query := "duct"
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

	assert.Equal(t, []string{"safe, fast, productive."}, Search(query, []byte(contents)).Texts())
}

func TestSearchCaseInsensitive(t *testing.T) {
	query := "rUsT"
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."

	assert.Equal(t, []string{"Rust:", "Trust me."}, SearchCaseInsensitive(query, []byte(contents)).Texts())
}

// edgeCases are shared by every algorithm; none of them depend on case
var edgeCases = []struct {
	name    string
	query   string
	content string
	want    []string
}{
	{"empty content", "x", "", []string{}},
	{"empty content empty query", "", "", []string{}},
	{"empty query matches every line", "", "a\n\nb\n", []string{"a", "", "b"}},
	{"query longer than any line", "abcdef", "abc\ndef", []string{}},
	{"query equal to whole line", "pick three.", "rust\npick three.\n", []string{"pick three."}},
	{"no match across line break", "ab", "a\nb", []string{}},
	{"no match across CRLF", "a\r\nb", "a\r\nb", []string{}},
	{"duplicate lines returned in order", "go", "go\nstop\ngo\n", []string{"go", "go"}},
	{"trailing newline adds no line", "", "only\n", []string{"only"}},
	{"CRLF stripped from views", "x", "x1\r\nx2\r\n", []string{"x1", "x2"}},
	{"multiple hits on one line counted once", "a", "aaaa\n", []string{"aaaa"}},
}

func TestSearch_EdgeCases(t *testing.T) {
	algorithms := map[string]SearchFunc{
		"sensitive":   Search,
		"insensitive": SearchCaseInsensitive,
		"folded":      SearchFolded,
	}

	for name, fn := range algorithms {
		for _, tc := range edgeCases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, fn(tc.query, []byte(tc.content)).Texts())
			})
		}
	}
}

func TestSearch_LineMetadata(t *testing.T) {
	content := []byte("alpha\r\nbeta\ngamma beta")
	result := Search("beta", content)

	require.Len(t, result, 2)
	assert.Equal(t, []int{2, 3}, result.Numbers())

	assert.Equal(t, 7, result[0].Start)
	assert.Equal(t, 11, result[0].End)
	assert.Equal(t, "beta", string(content[result[0].Start:result[0].End]))
	assert.Equal(t, "gamma beta", result[1].Text())
}

func TestSearch_ViewsAreZeroCopy(t *testing.T) {
	content := []byte("one\ntwo\nthree")
	result := Search("t", content)

	require.Len(t, result, 2)
	for _, line := range result {
		require.NotEmpty(t, line.Bytes)
		assert.Same(t, &content[line.Start], &line.Bytes[0], "line %d should alias the content buffer", line.Number)
	}
}

func TestSearch_DoesNotMutateContent(t *testing.T) {
	original := "Hello World\nHELLO again\n"
	content := []byte(original)

	Search("Hello", content)
	SearchCaseInsensitive("hello", content)
	SearchFolded("HELLO", content)

	assert.Equal(t, original, string(content))
}

func TestSearchCaseInsensitive_ReturnsOriginalText(t *testing.T) {
	content := []byte("\u00c0B \u00dcber\nnothing\n\u00fcBER alles")
	result := SearchCaseInsensitive("\u00fcber", content)

	assert.Equal(t, []string{"\u00c0B \u00dcber", "\u00fcBER alles"}, result.Texts())
}

func TestSearchCaseInsensitive_Unicode(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		content string
		want    []string
	}{
		{"greek", "\u03a3\u039f\u03a6\u038a\u0391", "\u03c3\u03bf\u03c6\u03af\u03b1\nsophia", []string{"\u03c3\u03bf\u03c6\u03af\u03b1"}},
		{"cyrillic", "привет", "ПРИВЕТ мир\nhello", []string{"ПРИВЕТ мир"}},
		{"non-ascii query against ascii lines", "\u00e9", "e\nE\n\u00c9cole", []string{"\u00c9cole"}},
		{"ascii query against mixed line", "cafe", "CAFE cr\u00e8me\ncaf\u00e9", []string{"CAFE cr\u00e8me"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchCaseInsensitive(tt.query, []byte(tt.content)).Texts())
		})
	}
}

func TestSearchFolded(t *testing.T) {
	content := []byte("Stra\u00dfe\nSTRASSE\nstreet")

	// Simple lower-casing keeps ß distinct from ss
	assert.Equal(t, []string{"STRASSE"}, SearchCaseInsensitive("strasse", content).Texts())

	// Full folding maps ß to ss
	assert.Equal(t, []string{"Stra\u00dfe", "STRASSE"}, SearchFolded("strasse", content).Texts())
	assert.Equal(t, []string{"Stra\u00dfe", "STRASSE"}, SearchFolded("STRA\u00dfE", content).Texts())
}

func TestContainsFoldASCII(t *testing.T) {
	tests := []struct {
		line, query string
		want        bool
	}{
		{"Hello", "hello", true},
		{"HELLO", "llo", true},
		{"Hel", "hello", false},
		{"abc", "", true},
		{"", "", true},
		{"", "a", false},
		{"[]^_`", "[]^_`", true}, // punctuation between the letter ranges is not folded
		{"@", "`", false},
	}

	for _, tt := range tests {
		if got := containsFoldASCII([]byte(tt.line), []byte(tt.query)); got != tt.want {
			t.Errorf("containsFoldASCII(%q, %q) = %v, want %v", tt.line, tt.query, got, tt.want)
		}
	}
}

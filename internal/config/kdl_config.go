package config

import (
	"fmt"
	"strconv"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/standardbeagle/minigrep/internal/debug"
)

// applyKDL parses a .minigrep.kdl document onto cfg:
//
//	search {
//	    case_sensitive true
//	    fold "unicode"
//	}
//	source {
//	    max_file_size "10MB"
//	    exclude "**/*.png" "**/*.jpg"
//	}
//	output {
//	    format "json"
//	    line_numbers true
//	    header false
//	}
//
// Exclude patterns add to those already in cfg; every other key replaces.
func applyKDL(cfg *Config, content string) error {
	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "search":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "case_sensitive":
					if b, ok := arg[bool](cn); ok {
						cfg.Search.CaseSensitive = &b
					}
				case "fold":
					if s, ok := arg[string](cn); ok {
						cfg.Search.Fold = s
					}
				default:
					debug.LogConfig("ignoring unknown key search.%s\n", nodeName(cn))
				}
			}
		case "source":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "max_file_size":
					if v, ok := intArg(cn); ok {
						cfg.Source.MaxFileSize = v
					}
					if s, ok := arg[string](cn); ok {
						sz, err := parseSize(s)
						if err != nil {
							return fmt.Errorf("invalid source.max_file_size %q: %w", s, err)
						}
						cfg.Source.MaxFileSize = sz
					}
				case "exclude":
					cfg.Source.Exclude = append(cfg.Source.Exclude, stringArgs(cn)...)
				default:
					debug.LogConfig("ignoring unknown key source.%s\n", nodeName(cn))
				}
			}
		case "output":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "format":
					if s, ok := arg[string](cn); ok {
						cfg.Output.Format = s
					}
				case "line_numbers":
					if b, ok := arg[bool](cn); ok {
						cfg.Output.LineNumbers = b
					}
				case "header":
					if b, ok := arg[bool](cn); ok {
						cfg.Output.Header = b
					}
				default:
					debug.LogConfig("ignoring unknown key output.%s\n", nodeName(cn))
				}
			}
		default:
			debug.LogConfig("ignoring unknown section %s\n", nodeName(n))
		}
	}

	return nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

// arg returns the first argument of n when it holds a T
func arg[T any](n *document.Node) (T, bool) {
	var zero T
	if n == nil || len(n.Arguments) == 0 {
		return zero, false
	}
	v, ok := n.Arguments[0].Value.(T)
	return v, ok
}

// intArg accepts both integer and float literals
func intArg(n *document.Node) (int64, bool) {
	if v, ok := arg[int64](n); ok {
		return v, true
	}
	if f, ok := arg[float64](n); ok {
		return int64(f), true
	}
	return 0, false
}

// stringArgs accepts the inline form (exclude "a" "b") and the block form
// (exclude { "a"; "b" }), where each string is a child node name
func stringArgs(n *document.Node) []string {
	var out []string
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, child := range n.Children {
		if s, ok := arg[string](child); ok {
			out = append(out, s)
			continue
		}
		if child.Name != nil {
			if s, ok := child.Name.Value.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

var sizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// parseSize reads a byte count with an optional unit: "4096", "500KB", "10mb"
func parseSize(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	multiplier := int64(1)
	for _, u := range sizeUnits {
		if rest, ok := strings.CutSuffix(s, u.suffix); ok {
			s, multiplier = rest, u.multiplier
			break
		}
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return n * multiplier, nil
}

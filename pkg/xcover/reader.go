package xcover

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadProblem parses Knuth's textual exact-cover format. The first
// significant line lists the primary items; a '|' on that line separates
// them from the secondary items and enables colored tokens, exactly as
// the format's own examples use it. Every following line is one option of
// whitespace-separated tokens. Before the header, blank lines and lines
// starting with '|' or '/' are comments.
//
//	| the dodecahedron problem
//	v00 v01 v02 | e00 e01
//	v00 e00:A e01:B
//	...
func ReadProblem(r io.Reader) (*Problem, error) {
	options, cfg, err := parseProblemText(r)
	if err != nil {
		return nil, err
	}
	return NewProblemWithConfig(options, cfg)
}

// ReadProblemFile reads a Knuth-format problem from path.
func ReadProblemFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := ReadProblem(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func parseProblemText(r io.Reader) ([][]string, *Config, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	cfg := &Config{}
	options := [][]string{}
	header := false
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if !header {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || trimmed[0] == '|' || trimmed[0] == '/' {
				continue
			}
			primary, secondary, found := strings.Cut(trimmed, "|")
			cfg.Primary = strings.Fields(primary)
			if found {
				cfg.Secondary = strings.Fields(secondary)
				if cfg.Secondary == nil {
					cfg.Secondary = []string{}
				}
				cfg.Colored = true
			}
			if len(cfg.Primary) == 0 {
				return nil, nil, fmt.Errorf("xcover: line %d: no primary items declared", lineno)
			}
			header = true
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		options = append(options, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if !header {
		return nil, nil, fmt.Errorf("xcover: missing item declaration line")
	}
	return options, cfg, nil
}

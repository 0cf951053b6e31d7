package xcover

import (
	"fmt"
	"strings"
)

// Verify independently re-checks a claimed solution against the raw
// options: every primary item covered exactly once, every secondary item
// covered at most once or by occurrences that all agree on one color. It
// shares no code with the search engine beyond the normalizer, so it can
// vouch for the engine's output in tests and tooling. Errors wrap
// ErrNotExactCover.
func Verify(solution []int, options [][]string, cfg *Config) error {
	p, err := NewProblemWithConfig(options, cfg)
	if err != nil {
		return err
	}
	return p.VerifySolution(solution)
}

// VerifySolution re-checks a claimed solution against the problem's
// original options. See Verify.
func (p *Problem) VerifySolution(solution []int) error {
	chosen := make(map[int]bool, len(solution))
	counts := make([]int, len(p.items))
	colors := make([]string, len(p.items))

	for _, o := range solution {
		if o < 0 || o >= len(p.options) {
			return fmt.Errorf("%w: option index %d out of range", ErrNotExactCover, o)
		}
		if chosen[o] {
			return fmt.Errorf("%w: option %d chosen twice", ErrNotExactCover, o)
		}
		chosen[o] = true

		for _, tok := range p.options[o] {
			name, label := tok, ""
			if p.cfg.Colored {
				if cut := strings.IndexByte(tok, ':'); cut >= 0 {
					name, label = tok[:cut], tok[cut+1:]
				}
			}
			i, ok := p.itemIndex[name]
			if !ok {
				return fmt.Errorf("%w: option %d references unknown item %q", ErrNotExactCover, o, name)
			}
			if i < p.nPrimary {
				counts[i]++
				continue
			}
			if label == "" {
				counts[i]++
				continue
			}
			switch colors[i] {
			case "":
				colors[i] = label
				counts[i]++
			case label:
				// further occurrences of the agreed color are free
			default:
				return fmt.Errorf("%w: secondary item %q colored both %q and %q",
					ErrNotExactCover, name, colors[i], label)
			}
		}
	}

	for i := 0; i < p.nPrimary; i++ {
		if counts[i] != 1 {
			return fmt.Errorf("%w: primary item %q covered %d times", ErrNotExactCover, p.items[i], counts[i])
		}
	}
	for i := p.nPrimary; i < len(p.items); i++ {
		if counts[i] > 1 {
			return fmt.Errorf("%w: secondary item %q covered %d times", ErrNotExactCover, p.items[i], counts[i])
		}
	}
	return nil
}

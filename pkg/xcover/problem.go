package xcover

import (
	"fmt"
	"strconv"
	"strings"
)

// Heuristic selects the branching rule used to pick the next item to
// cover.
type Heuristic int

const (
	// HeuristicMRV picks the uncovered primary item with the fewest
	// active options, ties broken by smallest item index. This is the
	// default and defines the canonical enumeration order.
	HeuristicMRV Heuristic = iota

	// HeuristicLeftmost picks the uncovered primary item with the
	// smallest index regardless of how many options remain.
	HeuristicLeftmost
)

// Config controls input normalization and search behavior. The zero value
// infers all items as primary, parses no colors, drops duplicate-item
// options, and branches by MRV.
type Config struct {
	// Primary lists the primary items explicitly, in index order.
	// When nil, primary items are inferred from the options: every
	// non-secondary token, in first-appearance order.
	Primary []string

	// Secondary lists the secondary items explicitly, in index order.
	// When nil and Primary is given, tokens outside Primary are
	// inferred as secondary in first-appearance order; when both are
	// nil there are no secondary items. A non-nil empty slice declares
	// "no secondary items" explicitly, enabling unknown-item checking.
	Secondary []string

	// Colored enables color labels: a token "x:RED" names secondary
	// item "x" with color "RED", split at the first colon. When false,
	// a colon is part of the identifier.
	Colored bool

	// Strict turns a duplicate-item option into an eager
	// DuplicateItemError instead of dropping the option.
	Strict bool

	// Heuristic selects the branching rule. HeuristicMRV when zero.
	Heuristic Heuristic
}

// Problem is a normalized, immutable XCC instance. All mutable search
// state lives in the iterators created from it, so a Problem may be
// enumerated any number of times and shared between goroutines.
//
// Internally the options are flattened into node tables in CSR layout:
// node n is one (option, item) occurrence, optPtr brackets each option's
// nodes, and nodeOpt maps a node back to its (dense) option. Solutions
// always report the original input indices, so dropped duplicate-item
// options leave no gaps visible to the caller.
type Problem struct {
	cfg     Config
	options [][]string // original input, including dropped options

	items     []string // primary [0,P) then secondary [P,P+S)
	itemIndex map[string]int
	nPrimary  int

	// colorNames[i][c-1] is the label of color id c on secondary item i.
	// Color ids are interned per item in first-appearance order.
	colorNames [][]string

	nodeItem  []int32
	nodeColor []int32
	nodeOpt   []int32
	optPtr    []int32
	optIDs    []int // dense option index -> original input index

	rejected []DuplicateItemError
}

// NewProblem normalizes options with a zero Config: all items primary,
// no colors.
func NewProblem(options [][]string) (*Problem, error) {
	return NewProblemWithConfig(options, nil)
}

// NewProblemWithConfig normalizes options under cfg. All input errors are
// detected here, before any search begins; a returned Problem is always
// searchable. A nil cfg behaves like the zero Config.
func NewProblemWithConfig(options [][]string, cfg *Config) (*Problem, error) {
	p := &Problem{options: options}
	if cfg != nil {
		p.cfg = *cfg
	}

	names, labels, err := p.splitTokens()
	if err != nil {
		return nil, err
	}
	if err := p.buildItemTable(names); err != nil {
		return nil, err
	}
	kept, err := p.screenOptions(names, labels)
	if err != nil {
		return nil, err
	}
	if err := p.buildNodes(kept, names, labels); err != nil {
		return nil, err
	}
	return p, nil
}

// FromMatrix builds a Problem from a boolean incidence matrix: rows are
// options, columns are items, and every item is primary and untinted.
// Rows must all have the same width. Solutions refer to row indices.
func FromMatrix(matrix [][]bool) (*Problem, error) {
	width := 0
	if len(matrix) > 0 {
		width = len(matrix[0])
	}
	options := make([][]string, len(matrix))
	for r, row := range matrix {
		if len(row) != width {
			return nil, fmt.Errorf("xcover: matrix row %d has %d columns, want %d", r, len(row), width)
		}
		for c, set := range row {
			if set {
				options[r] = append(options[r], strconv.Itoa(c))
			}
		}
	}
	primary := make([]string, width)
	for c := range primary {
		primary[c] = strconv.Itoa(c)
	}
	return NewProblemWithConfig(options, &Config{Primary: primary, Secondary: []string{}})
}

// splitTokens separates every token into an item name and an optional
// color label. Labels exist only in colored mode.
func (p *Problem) splitTokens() (names, labels [][]string, err error) {
	names = make([][]string, len(p.options))
	labels = make([][]string, len(p.options))
	for oi, opt := range p.options {
		names[oi] = make([]string, len(opt))
		labels[oi] = make([]string, len(opt))
		for k, tok := range opt {
			name, label := tok, ""
			if p.cfg.Colored {
				if cut := strings.IndexByte(tok, ':'); cut >= 0 {
					name, label = tok[:cut], tok[cut+1:]
					if label == "" {
						return nil, nil, fmt.Errorf("xcover: option %d token %q has an empty color label", oi, tok)
					}
				}
			}
			if name == "" {
				return nil, nil, fmt.Errorf("xcover: option %d contains an empty item identifier", oi)
			}
			names[oi][k] = name
			labels[oi][k] = label
		}
	}
	return names, labels, nil
}

// buildItemTable decides which items exist and whether each is primary or
// secondary, then assigns dense indices: primary items first, secondary
// items after.
func (p *Problem) buildItemTable(names [][]string) error {
	secondarySet := make(map[string]bool, len(p.cfg.Secondary))
	for _, s := range p.cfg.Secondary {
		secondarySet[s] = true
	}

	var primary []string
	if p.cfg.Primary != nil {
		primary = dedupe(p.cfg.Primary)
		for _, name := range primary {
			if secondarySet[name] {
				return fmt.Errorf("xcover: item %q declared both primary and secondary", name)
			}
		}
	} else {
		seen := make(map[string]bool)
		for _, opt := range names {
			for _, name := range opt {
				if !seen[name] && !secondarySet[name] {
					seen[name] = true
					primary = append(primary, name)
				}
			}
		}
	}

	var secondary []string
	switch {
	case p.cfg.Secondary != nil:
		secondary = dedupe(p.cfg.Secondary)
	case p.cfg.Primary != nil:
		// Only primary was declared: remaining tokens are secondary.
		primarySet := make(map[string]bool, len(primary))
		for _, name := range primary {
			primarySet[name] = true
		}
		seen := make(map[string]bool)
		for _, opt := range names {
			for _, name := range opt {
				if !seen[name] && !primarySet[name] {
					seen[name] = true
					secondary = append(secondary, name)
				}
			}
		}
	}

	p.nPrimary = len(primary)
	p.items = make([]string, 0, len(primary)+len(secondary))
	p.items = append(p.items, primary...)
	p.items = append(p.items, secondary...)
	p.itemIndex = make(map[string]int, len(p.items))
	for i, name := range p.items {
		if _, dup := p.itemIndex[name]; dup {
			return fmt.Errorf("xcover: item %q declared both primary and secondary", name)
		}
		p.itemIndex[name] = i
	}
	p.colorNames = make([][]string, len(p.items))
	return nil
}

// screenOptions validates each option and returns the indices of those
// that survive. Unknown items (when both item lists are explicit) and
// colors on primary items are eager errors; an option repeating an item
// is dropped and recorded, or rejected outright under Strict.
func (p *Problem) screenOptions(names, labels [][]string) ([]int, error) {
	kept := make([]int, 0, len(p.options))
	seen := make(map[int]int) // item -> last option index that used it

	for oi := range p.options {
		dup := ""
		for k, name := range names[oi] {
			i, ok := p.itemIndex[name]
			if !ok {
				// Inference covers every token, so a miss can only
				// happen when both item lists were explicit.
				return nil, &UnknownItemError{Option: oi, Token: p.options[oi][k]}
			}
			if labels[oi][k] != "" && i < p.nPrimary {
				return nil, &ColorOnPrimaryError{Option: oi, Item: name}
			}
			if prev, used := seen[i]; used && prev == oi {
				dup = name
				break
			}
			seen[i] = oi
		}
		if dup != "" {
			if p.cfg.Strict {
				return nil, &DuplicateItemError{Option: oi, Item: dup}
			}
			p.rejected = append(p.rejected, DuplicateItemError{Option: oi, Item: dup})
			continue
		}
		kept = append(kept, oi)
	}
	return kept, nil
}

// buildNodes flattens the kept options into the CSR node tables, interns
// color labels, and checks that every primary item is coverable.
func (p *Problem) buildNodes(kept []int, names, labels [][]string) error {
	total := 0
	for _, oi := range kept {
		total += len(names[oi])
	}

	p.optIDs = kept
	p.optPtr = make([]int32, len(kept)+1)
	p.nodeItem = make([]int32, 0, total)
	p.nodeColor = make([]int32, 0, total)
	p.nodeOpt = make([]int32, 0, total)

	colorIDs := make([]map[string]int32, len(p.items))

	for dense, oi := range kept {
		p.optPtr[dense] = int32(len(p.nodeItem))
		for k, name := range names[oi] {
			i := p.itemIndex[name]
			var c int32
			if label := labels[oi][k]; label != "" {
				if colorIDs[i] == nil {
					colorIDs[i] = make(map[string]int32)
				}
				c = colorIDs[i][label]
				if c == 0 {
					p.colorNames[i] = append(p.colorNames[i], label)
					c = int32(len(p.colorNames[i]))
					colorIDs[i][label] = c
				}
			}
			p.nodeItem = append(p.nodeItem, int32(i))
			p.nodeColor = append(p.nodeColor, c)
			p.nodeOpt = append(p.nodeOpt, int32(dense))
		}
	}
	p.optPtr[len(kept)] = int32(len(p.nodeItem))

	// Every primary item must be coverable. A problem with no options at
	// all is merely degenerate (it enumerates zero solutions), not
	// malformed, so the check applies only when options were supplied.
	if len(p.options) > 0 {
		covered := make([]bool, p.nPrimary)
		for _, it := range p.nodeItem {
			if int(it) < p.nPrimary {
				covered[it] = true
			}
		}
		for i, ok := range covered {
			if !ok {
				return &EmptyPrimaryError{Item: p.items[i]}
			}
		}
	}
	return nil
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// NumPrimary returns the number of primary items.
func (p *Problem) NumPrimary() int { return p.nPrimary }

// NumSecondary returns the number of secondary items.
func (p *Problem) NumSecondary() int { return len(p.items) - p.nPrimary }

// NumOptions returns the number of options in the original input,
// including any dropped for repeating an item.
func (p *Problem) NumOptions() int { return len(p.options) }

// ItemName returns the token for item index i (primary items occupy
// [0, NumPrimary)).
func (p *Problem) ItemName(i int) string { return p.items[i] }

// OptionTokens returns the original tokens of input option i.
func (p *Problem) OptionTokens(i int) []string { return p.options[i] }

// Rejected returns the duplicate-item options dropped during
// normalization, in input order. Empty under Strict (a duplicate would
// have failed construction).
func (p *Problem) Rejected() []DuplicateItemError { return p.rejected }

// Config returns the configuration the problem was normalized with.
func (p *Problem) Config() Config { return p.cfg }

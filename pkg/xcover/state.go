package xcover

// The search state is a set of sparse-set partner arrays: cells holds the
// node ids of every (option, item) occurrence grouped by item, and pos
// holds each node's current position inside its item's block. The first
// active[i] entries of item i's block are live; everything past that is
// hidden. Hiding a node swaps it with the last live entry and shrinks the
// active length, so hide and unhide are O(1) and the multiset of a block
// never changes.
//
// Every mutation pushes one fixed-size record on the trail. Undo pops
// records LIFO and reverses each one, swap-back included, so the arrays
// are restored byte-identically and the active-prefix order seen when an
// item was selected is stable across backtracking.

type trailKind uint8

const (
	trailSwap    trailKind = iota // node x swapped out from position y
	trailLen                      // item x's active length was y
	trailColor                    // secondary item x was assigned a color
	trailConsume                  // secondary item x was consumed
	trailPurify                   // node x was marked purified
	trailCover                    // primary item x was marked covered
)

type trailEntry struct {
	kind trailKind
	x, y int32
}

// state owns all mutable data for one enumeration over a Problem.
type state struct {
	p *Problem

	cells  []int32 // node ids grouped per item
	pos    []int32 // node -> current position in cells
	start  []int32 // item -> offset of its block in cells
	active []int32 // item -> live prefix length

	color    []int32 // secondary item -> assigned color id, 0 = unassigned
	consumed []bool  // secondary item -> consumed by an uncolored occurrence
	purified []bool  // node -> occurrence no longer constrains its item

	covered  []bool // primary item -> covered
	nCovered int

	trail  []trailEntry
	chosen []int32 // dense option indices, bottom of the stack first

	stats Stats
}

func newState(p *Problem) *state {
	nItems := len(p.items)
	nNodes := len(p.nodeItem)

	s := &state{
		p:        p,
		cells:    make([]int32, nNodes),
		pos:      make([]int32, nNodes),
		start:    make([]int32, nItems),
		active:   make([]int32, nItems),
		color:    make([]int32, nItems),
		consumed: make([]bool, nItems),
		purified: make([]bool, nNodes),
		covered:  make([]bool, p.nPrimary),
		trail:    make([]trailEntry, 0, 2*nNodes+4*nItems),
		chosen:   make([]int32, 0, p.nPrimary),
	}

	for _, it := range p.nodeItem {
		s.active[it]++
	}
	var off int32
	for i := range s.start {
		s.start[i] = off
		off += s.active[i]
	}
	fill := make([]int32, nItems)
	for nd, it := range p.nodeItem {
		loc := s.start[it] + fill[it]
		s.cells[loc] = int32(nd)
		s.pos[nd] = loc
		fill[it]++
	}
	return s
}

// mark returns the current trail depth for a later undoTo.
func (s *state) mark() int { return len(s.trail) }

// selectItem returns the next primary item to branch on, or -1 when every
// primary item is covered (a solution). MRV scans ascending item indices
// with a strict comparison, which pins the smallest-index tie-break.
func (s *state) selectItem() int32 {
	if s.nCovered == s.p.nPrimary {
		return -1
	}
	if s.p.cfg.Heuristic == HeuristicLeftmost {
		for i := int32(0); int(i) < s.p.nPrimary; i++ {
			if !s.covered[i] {
				return i
			}
		}
	}
	best := int32(-1)
	bestLen := int32(1<<31 - 1)
	for i := int32(0); int(i) < s.p.nPrimary; i++ {
		if s.covered[i] {
			continue
		}
		if s.active[i] < bestLen {
			best, bestLen = i, s.active[i]
		}
	}
	return best
}

// removeNode swaps node nd out of its item's active prefix and shrinks
// the prefix. The caller guarantees nd is currently active.
func (s *state) removeNode(nd int32) {
	it := s.p.nodeItem[nd]
	loc := s.pos[nd]
	end := s.start[it] + s.active[it] - 1
	last := s.cells[end]
	s.cells[loc] = last
	s.cells[end] = nd
	s.pos[last] = loc
	s.pos[nd] = end
	s.active[it]--
	s.trail = append(s.trail, trailEntry{kind: trailSwap, x: nd, y: loc})
}

// hideOption removes every active occurrence of dense option o except the
// one on item skip, whose block is handled by the caller.
func (s *state) hideOption(o int32, skip int32) {
	for nd := s.p.optPtr[o]; nd < s.p.optPtr[o+1]; nd++ {
		it := s.p.nodeItem[nd]
		if it == skip {
			continue
		}
		if s.pos[nd] >= s.start[it]+s.active[it] {
			continue // already hidden, or its item is spent
		}
		s.removeNode(nd)
	}
}

// consumeItem hides every active option of item it other than the one
// that owns node self, then zeroes the item's active length. This is the
// primary-item cover; an uncolored secondary occurrence consumes its item
// the same way.
func (s *state) consumeItem(it int32, self int32) {
	base := s.start[it]
	n := s.active[it]
	for k := int32(0); k < n; k++ {
		nd := s.cells[base+k]
		if nd == self {
			continue
		}
		s.hideOption(s.p.nodeOpt[nd], it)
	}
	s.trail = append(s.trail, trailEntry{kind: trailLen, x: it, y: n})
	s.active[it] = 0
}

// purify commits secondary item it to color c for the option owning node
// self: same-color occurrences are marked purified so they impose no
// further constraint through it, other-color options are hidden entirely,
// and the item's active length drops to zero.
func (s *state) purify(it int32, c int32, self int32) {
	base := s.start[it]
	n := s.active[it]
	for k := int32(0); k < n; k++ {
		nd := s.cells[base+k]
		if nd == self {
			continue
		}
		if s.p.nodeColor[nd] == c {
			s.purified[nd] = true
			s.trail = append(s.trail, trailEntry{kind: trailPurify, x: nd})
		} else {
			s.hideOption(s.p.nodeOpt[nd], it)
		}
	}
	s.color[it] = c
	s.trail = append(s.trail, trailEntry{kind: trailColor, x: it})
	s.trail = append(s.trail, trailEntry{kind: trailLen, x: it, y: n})
	s.active[it] = 0
}

// tryCover commits dense option o as the next chosen option: every
// primary item in o is covered, every secondary item is consumed (no
// color), committed (new color), or checked (existing color). It returns
// false on a color conflict; the trail has advanced either way, and the
// caller rolls back to its mark on failure.
func (s *state) tryCover(o int32) bool {
	s.stats.Covers++
	for nd := s.p.optPtr[o]; nd < s.p.optPtr[o+1]; nd++ {
		it := s.p.nodeItem[nd]
		c := s.p.nodeColor[nd]
		if int(it) < s.p.nPrimary {
			s.consumeItem(it, nd)
			s.covered[it] = true
			s.nCovered++
			s.trail = append(s.trail, trailEntry{kind: trailCover, x: it})
			continue
		}
		if s.purified[nd] {
			continue
		}
		if c == 0 {
			s.consumeItem(it, nd)
			s.consumed[it] = true
			s.trail = append(s.trail, trailEntry{kind: trailConsume, x: it})
			continue
		}
		switch s.color[it] {
		case 0:
			s.purify(it, c, nd)
		case c:
			// compatible with the committed color
		default:
			s.stats.Conflicts++
			return false
		}
	}
	return true
}

// undoTo pops trail records back to mark and reverses each one. Because
// every record is self-inverse and the trail is strictly LIFO, the state
// afterwards is identical to the state when mark was taken.
func (s *state) undoTo(mark int) {
	for len(s.trail) > mark {
		e := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		switch e.kind {
		case trailSwap:
			nd := e.x
			it := s.p.nodeItem[nd]
			s.active[it]++
			cur := s.pos[nd]
			other := s.cells[e.y]
			s.cells[e.y] = nd
			s.cells[cur] = other
			s.pos[nd] = e.y
			s.pos[other] = cur
		case trailLen:
			s.active[e.x] = e.y
		case trailColor:
			s.color[e.x] = 0
		case trailConsume:
			s.consumed[e.x] = false
		case trailPurify:
			s.purified[e.x] = false
		case trailCover:
			s.covered[e.x] = false
			s.nCovered--
		}
	}
}

// solution copies the chosen stack, translating dense option indices back
// to the caller's input indices.
func (s *state) solution() []int {
	out := make([]int, len(s.chosen))
	for i, o := range s.chosen {
		out[i] = s.p.optIDs[o]
	}
	return out
}

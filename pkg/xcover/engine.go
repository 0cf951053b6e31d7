package xcover

// search runs the Algorithm C recursion from the current state, invoking
// yield once per solution found. It returns false as soon as the consumer
// stops the enumeration, and true when the subtree is exhausted, in which
// case the trail has been fully unwound to its depth on entry.
//
// The loop reads the k-th active cell of the chosen item afresh on every
// iteration: tryCover permutes the arrays, but undoTo restores them
// exactly, so the prefix order observed here is the order at the moment
// the item was selected, as the canonical enumeration order requires.
func (s *state) search(yield func([]int) bool) bool {
	s.stats.Nodes++
	if d := len(s.chosen); d > s.stats.MaxDepth {
		s.stats.MaxDepth = d
	}

	it := s.selectItem()
	if it < 0 {
		s.stats.Solutions++
		return yield(s.solution())
	}
	if s.active[it] == 0 {
		return true // dead end: an uncovered primary item has no options left
	}

	base := s.start[it]
	n := s.active[it]
	for k := int32(0); k < n; k++ {
		o := s.p.nodeOpt[s.cells[base+k]]
		mark := s.mark()
		if !s.tryCover(o) {
			s.undoTo(mark)
			continue
		}
		s.chosen = append(s.chosen, o)
		if !s.search(yield) {
			return false
		}
		s.chosen = s.chosen[:len(s.chosen)-1]
		s.undoTo(mark)
	}
	return true
}

package xcover

import "iter"

// Solutions returns a lazy sequence over every solution of the problem,
// in canonical order. Each yielded slice is freshly allocated and lists
// the chosen options by their input indices, in the order the engine
// selected them. Breaking out of the range abandons the search with no
// further work.
//
// Every call builds a private search state, so the sequence is restartable
// from the beginning (and only from the beginning): ranging twice yields
// identical sequences.
func (p *Problem) Solutions() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		newState(p).search(yield)
	}
}

// All collects up to max solutions (all of them when max <= 0).
func (p *Problem) All(max int) [][]int {
	var out [][]int
	for sol := range p.Solutions() {
		out = append(out, sol)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}

// Iter is the pull form of Solutions: the engine suspends between
// solutions and resumes on each Next. An Iter is single-pass and owns its
// search state exclusively; create a new one to enumerate again.
type Iter struct {
	st   *state
	next func() ([]int, bool)
	stop func()
}

// Iter starts a new enumeration in pull style.
func (p *Problem) Iter() *Iter {
	s := newState(p)
	seq := iter.Seq[[]int](func(yield func([]int) bool) {
		s.search(yield)
	})
	next, stop := iter.Pull(seq)
	return &Iter{st: s, next: next, stop: stop}
}

// Next resumes the search until the next solution is found (returned with
// ok true) or the space is exhausted (ok false on this and every later
// call).
func (it *Iter) Next() ([]int, bool) {
	return it.next()
}

// Stop abandons the enumeration and releases the suspended engine. It is
// safe to call after exhaustion, and more than once.
func (it *Iter) Stop() {
	it.stop()
}

// Stats returns a snapshot of the search counters. Call it between Next
// calls or after exhaustion; the engine must be suspended.
func (it *Iter) Stats() Stats {
	return it.st.stats
}

// Covers enumerates the exact covers of options, mirroring the
// all-arguments entry point: primary and secondary may be nil to infer
// item classifications, and colored enables "item:COLOR" tokens on
// secondary items. Input errors surface here, before any iteration.
func Covers(options [][]string, primary, secondary []string, colored bool) (iter.Seq[[]int], error) {
	p, err := NewProblemWithConfig(options, &Config{
		Primary:   primary,
		Secondary: secondary,
		Colored:   colored,
	})
	if err != nil {
		return nil, err
	}
	return p.Solutions(), nil
}

// CoversBool enumerates the exact covers of a boolean incidence matrix
// (rows are options, columns are primary items). Each solution lists row
// indices.
func CoversBool(matrix [][]bool) (iter.Seq[[]int], error) {
	p, err := FromMatrix(matrix)
	if err != nil {
		return nil, err
	}
	return p.Solutions(), nil
}

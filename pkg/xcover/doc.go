// Package xcover solves exact cover with colors (XCC) problems using
// Donald Knuth's Algorithm C, the "dancing cells" formulation.
//
// An XCC problem consists of primary items (each must be covered exactly
// once), secondary items (each may be covered at most once, or several
// times if every occurrence agrees on a color), and options, where each
// option is a set of items and an occurrence of a secondary item may carry
// a color label such as "x:RED". A solution is a set of options that
// covers every primary item exactly once and is color-consistent on every
// secondary item.
//
// # Architecture Overview
//
// The package separates the immutable problem definition from the mutable
// search state:
//
//	Problem (immutable after construction):
//	  - Dense item and color tables built by the input normalizer
//	  - Flat node tables in CSR layout: one node per (option, item)
//	    occurrence, with option boundaries in a pointer array
//	  - Shared by every enumeration over the same input
//
//	search state (one per enumeration):
//	  - Contiguous per-item cell arrays partitioned into an active prefix
//	    and a hidden suffix, with a reverse index from node to position
//	  - Secondary color assignments and purification marks
//	  - A LIFO trail of fixed-size undo records
//
// Covering an option hides competing options by swapping their cells past
// the active-length marker of each affected item; nothing is ever spliced
// or reallocated. Every swap, length change, color assignment, and
// purification mark is recorded on the trail, so backtracking restores the
// state exactly, including cell order. This is the dancing-cells variant
// of Knuth's dancing links: observationally equivalent, but laid out in
// contiguous arrays that stay cache-resident during the search.
//
// Branching uses the MRV (minimum remaining values) heuristic: the
// uncovered primary item with the fewest active options is chosen, ties
// broken by smallest item index. Options for the chosen item are tried in
// active-prefix order. Together these rules make the enumeration order
// canonical and deterministic.
//
// # Enumerating Solutions
//
// Solutions are produced lazily, one at a time:
//
//	p, err := xcover.NewProblem([][]string{
//		{"a", "d", "g"}, {"b", "c", "f"}, {"a", "d", "f"}, {"b", "g"},
//	})
//	if err != nil { ... }
//	for sol := range p.Solutions() {
//		fmt.Println(sol) // option indices in selection order
//	}
//
// The pull form suspends the engine between solutions:
//
//	it := p.Iter()
//	defer it.Stop()
//	for {
//		sol, ok := it.Next()
//		if !ok {
//			break
//		}
//		...
//	}
//
// Each iterator owns a private search state; enumerating the same Problem
// twice yields identical sequences. The engine is single-threaded and
// allocation-free on the search path once the state is built.
//
// Beyond plain enumeration, BuildZDD runs Knuth's Algorithm Z to compress
// the entire solution family into a zero-suppressed decision diagram,
// which Count evaluates without enumerating individual solutions.
//
// Thread safety: a Problem is immutable and may be shared freely; each
// Iter (and each range over Solutions) must be driven by one goroutine at
// a time.
package xcover

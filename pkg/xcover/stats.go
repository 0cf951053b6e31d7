package xcover

// Stats reports counters accumulated by one enumeration. All counting
// happens on plain fields of the private search state, so the search path
// stays free of locks and allocation; read the snapshot from Iter.Stats
// between calls to Next, or after the enumeration finishes.
type Stats struct {
	// Nodes is the number of search-tree nodes visited.
	Nodes int64
	// Covers is the number of attempted option covers.
	Covers int64
	// Conflicts is the number of covers rejected by a color conflict.
	Conflicts int64
	// Solutions is the number of solutions yielded so far.
	Solutions int64
	// MaxDepth is the deepest solution stack reached.
	MaxDepth int
}

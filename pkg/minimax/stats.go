package minimax

// Counters of a single search, reset on every 'Search' call
type SearchStats struct {
	nodes     uint64
	leaves    uint64
	terminals uint64
	cutoffs   uint64
	maxdepth  int
}

// Number of positions visited, including the root
func (s *SearchStats) Nodes() uint64 {
	return s.nodes
}

// Number of positions rated statically at the depth limit
func (s *SearchStats) Leaves() uint64 {
	return s.leaves
}

// Number of finished games reached by the search
func (s *SearchStats) Terminals() uint64 {
	return s.terminals
}

// Number of times the remaining siblings were skipped by the beta cutoff
func (s *SearchStats) Cutoffs() uint64 {
	return s.cutoffs
}

func (s *SearchStats) MaxDepth() int {
	return s.maxdepth
}

func (s *SearchStats) visit(depth int) {
	s.nodes++
	s.maxdepth = max(s.maxdepth, depth)
}

func (s *SearchStats) reset() {
	*s = SearchStats{}
}

/*package search finds a covering of the pyramid by depth-first search over
the catalog's buckets.

Level c of the search picks one placement from bucket c. A placement is
only tried if it is disjoint from the union of the placements above it, and
the search succeeds at level 9 if that union is the full pyramid.
*/
package search

import (
	"errors"

	"github.com/phil-mansfield/pyramid"
	"github.com/phil-mansfield/pyramid/catalog"
)

// ErrNoSolution is returned by Solve when no covering exists.
var ErrNoSolution = errors.New("No solution found.")

// Stats counts the work done by a search.
type Stats struct {
	// Visited is the number of candidate placements examined.
	Visited int64
	// Placed is the number of candidates which were disjoint from the
	// placements above them and were recursed into.
	Placed int64
}

// Solver searches a Catalog for a complete, non-overlapping placement.
type Solver struct {
	buckets [pyramid.ClassCount][]pyramid.Mask
	// shared[c] is true if bucket c holds the same sequence as bucket c-1.
	shared [pyramid.ClassCount]bool

	breakSymmetry bool
	choices       [pyramid.ClassCount]int
	stats         Stats
}

// NewSolver creates a Solver over the given catalog. If breakSymmetry is
// true, consecutive levels which draw from identical buckets are forced to
// choose increasing indices. This finds the same first solution as the
// plain search, since the first solution found by the plain search is
// already increasing on those levels.
func NewSolver(cat *catalog.Catalog, breakSymmetry bool) *Solver {
	s := &Solver{breakSymmetry: breakSymmetry}
	for c := range s.buckets {
		s.buckets[c] = cat.Bucket(c).Masks()
		if c > 0 {
			s.shared[c] = cat.Bucket(c).Equal(cat.Bucket(c - 1))
		}
	}
	return s
}

// Solve runs the search and returns the first solution found in
// depth-first order, or ErrNoSolution.
func (s *Solver) Solve() (*pyramid.Solution, error) {
	s.stats = Stats{}
	s.choices = [pyramid.ClassCount]int{}

	if !s.search(0, 0, 0) {
		return nil, ErrNoSolution
	}

	sol := &pyramid.Solution{Choices: s.choices}
	for c, idx := range s.choices {
		sol.Masks[c] = s.buckets[c][idx]
	}
	return sol, nil
}

// Stats returns the work done by the most recent call to Solve.
func (s *Solver) Stats() Stats { return s.stats }

// search tries every candidate at the given level, starting from index
// start, which does not collide with prev.
func (s *Solver) search(level int, prev pyramid.Mask, start int) bool {
	if level == pyramid.ClassCount {
		return prev == pyramid.Full
	}

	bucket := s.buckets[level]
	for idx := start; idx < len(bucket); idx++ {
		pos := bucket[idx]
		s.stats.Visited++
		if prev&pos != 0 {
			continue
		}
		s.stats.Placed++

		if s.search(level+1, prev|pos, s.nextStart(level, idx)) {
			s.choices[level] = idx
			return true
		}
	}

	return false
}

// nextStart returns the index the level below should start scanning from.
func (s *Solver) nextStart(level, idx int) int {
	next := level + 1
	if s.breakSymmetry && next < pyramid.ClassCount && s.shared[next] {
		return idx + 1
	}
	return 0
}

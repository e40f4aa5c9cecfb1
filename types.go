/*package pyramid contains the types shared by the pyramid puzzle solver.

The puzzle is a tetrahedral stack of 35 unit spheres which must be covered
exactly by nine rigid planar pieces. Subsets of the stack are stored as
35-bit masks, one bit per lattice point.
*/
package pyramid

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// PointCount is the number of lattice points in the stack.
	PointCount = 35
	// ClassCount is the number of pieces (and search levels).
	ClassCount = 9

	// Full is the mask with every lattice point occupied.
	Full Mask = (1 << PointCount) - 1
)

// Mask is a set of lattice points. Bit i is set if point i is occupied.
type Mask uint64

// NewMask returns the mask containing exactly the given points.
func NewMask(idxs ...int) Mask {
	var m Mask
	for _, i := range idxs {
		m |= 1 << uint(i)
	}
	return m
}

// Count returns the number of occupied points.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Has returns true if point i is occupied.
func (m Mask) Has(i int) bool { return m&(1<<uint(i)) != 0 }

// Overlaps returns true if the two masks share a point.
func (m Mask) Overlaps(n Mask) bool { return m&n != 0 }

// Points returns the occupied points in increasing order.
func (m Mask) Points() []int {
	idxs := make([]int, 0, m.Count())
	for x := uint64(m); x != 0; x &= x - 1 {
		idxs = append(idxs, bits.TrailingZeros64(x))
	}
	return idxs
}

func (m Mask) String() string {
	pts := m.Points()
	strs := make([]string, len(pts))
	for i, p := range pts {
		strs[i] = fmt.Sprintf("%d", p)
	}
	return "{" + strings.Join(strs, ",") + "}"
}

// Solution is a complete placement: one chosen mask per piece class.
type Solution struct {
	// Choices[c] is the index of the chosen mask within bucket c.
	Choices [ClassCount]int
	// Masks[c] is the chosen mask itself.
	Masks [ClassCount]Mask
}

// Occupancy returns the piece number (class + 1) which covers each lattice
// point. Uncovered points are 0. If masks overlap, later classes win.
func (sol *Solution) Occupancy() [PointCount]int {
	occ := [PointCount]int{}
	for c, m := range sol.Masks {
		for _, p := range m.Points() {
			if p < PointCount {
				occ[p] = c + 1
			}
		}
	}
	return occ
}

// Check returns an error if the solution does not cover the stack exactly
// with one triangle and eight four-point pieces.
func (sol *Solution) Check() error {
	var union Mask
	total := 0

	for c, m := range sol.Masks {
		want := 4
		if c == 0 {
			want = 3
		}
		if n := m.Count(); n != want {
			return fmt.Errorf(
				"Piece %d covers %d points, but must cover %d.", c+1, n, want,
			)
		}

		if union.Overlaps(m) {
			return fmt.Errorf(
				"Piece %d overlaps an earlier piece at %v.", c+1, union&m,
			)
		}

		union |= m
		total += m.Count()
	}

	if union != Full {
		return fmt.Errorf(
			"Pieces cover %d of %d points; missing %v.",
			total, PointCount, Full&^union,
		)
	}

	return nil
}

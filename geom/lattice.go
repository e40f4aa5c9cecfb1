/*package geom contains the fixed geometry of the pyramid and routines for
recognizing piece shapes within it.

Coordinates are truncated to five decimal places. All comparisons against
them are made with tolerances much wider than that truncation, so float64
arithmetic is required but nothing finer.
*/
package geom

import (
	"math"

	"github.com/phil-mansfield/pyramid"
)

// Vec is a three dimensional position.
type Vec [3]float64

// Distance returns the Euclidean distance between two vectors.
func (v *Vec) Distance(u *Vec) float64 {
	dx, dy, dz := v[0]-u[0], v[1]-u[1], v[2]-u[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

const (
	// PlaneCount is the number of coplanar groups.
	PlaneCount = 21
	// planeWidth is the row width of Planes. Short groups repeat their
	// last index.
	planeWidth = 15
)

// Coords gives the position of every lattice point. Layer k (of sizes 15,
// 10, 6, 3, 1) sits at height k*sqrt(2/3) and uses unit triangular spacing.
var Coords = [pyramid.PointCount]Vec{
	// z = 0
	{0.0, 0.0, 0.0},
	{1.0, 0.0, 0.0},
	{2.0, 0.0, 0.0},
	{3.0, 0.0, 0.0},
	{4.0, 0.0, 0.0},
	{0.5, 0.866, 0.0},
	{1.5, 0.866, 0.0},
	{2.5, 0.866, 0.0},
	{3.5, 0.866, 0.0},
	{1.0, 1.732, 0.0},
	{2.0, 1.732, 0.0},
	{3.0, 1.732, 0.0},
	{1.5, 2.598, 0.0},
	{2.5, 2.598, 0.0},
	{2.0, 3.464, 0.0},
	// z = 1
	{0.5, 0.28867, 0.8165},
	{1.5, 0.28867, 0.8165},
	{2.5, 0.28867, 0.8165},
	{3.5, 0.28867, 0.8165},
	{1.0, 1.15467, 0.8165},
	{2.0, 1.15467, 0.8165},
	{3.0, 1.15467, 0.8165},
	{1.5, 2.02067, 0.8165},
	{2.5, 2.02067, 0.8165},
	{2.0, 2.88667, 0.8165},
	// z = 2
	{1.0, 0.57734, 1.633},
	{2.0, 0.57734, 1.633},
	{3.0, 0.57734, 1.633},
	{1.5, 1.44334, 1.633},
	{2.5, 1.44334, 1.633},
	{2.0, 2.30934, 1.633},
	// z = 3
	{1.5, 0.86601, 2.4495},
	{2.5, 0.86601, 2.4495},
	{2.0, 1.73201, 2.4495},
	// z = 4
	{2.0, 1.15468, 3.266},
}

// Planes lists every group of lattice points which share a plane and are
// large enough to hold a piece. Rows are padded by repeating their last
// index, so they must be treated as sets.
var Planes = [PlaneCount][planeWidth]int{
	// horizontal layers
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	{15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 24, 24, 24, 24, 24},
	{25, 26, 27, 28, 29, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	// the three sloped faces and the planes parallel to them
	{0, 5, 9, 12, 14, 15, 19, 22, 24, 25, 28, 30, 31, 33, 34},
	{1, 6, 10, 13, 16, 20, 23, 26, 29, 32, 32, 32, 32, 32, 32},
	{2, 7, 11, 17, 21, 27, 27, 27, 27, 27, 27, 27, 27, 27, 27},
	{0, 1, 2, 3, 4, 15, 16, 17, 18, 25, 26, 27, 31, 32, 34},
	{5, 6, 7, 8, 19, 20, 21, 28, 29, 33, 33, 33, 33, 33, 33},
	{9, 10, 11, 22, 23, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{4, 8, 11, 13, 14, 18, 21, 23, 24, 27, 29, 30, 32, 33, 34},
	{3, 7, 10, 12, 17, 20, 22, 26, 28, 31, 31, 31, 31, 31, 31},
	{2, 6, 9, 16, 19, 25, 25, 25, 25, 25, 25, 25, 25, 25, 25},
	// square-packed planes, three orientations
	{5, 6, 7, 8, 15, 16, 17, 18, 18, 18, 18, 18, 18, 18, 18},
	{9, 10, 11, 19, 20, 21, 25, 26, 27, 27, 27, 27, 27, 27, 27},
	{12, 13, 22, 23, 28, 29, 31, 32, 32, 32, 32, 32, 32, 32, 32},
	{1, 6, 10, 13, 15, 19, 22, 24, 24, 24, 24, 24, 24, 24, 24},
	{2, 7, 11, 16, 20, 23, 25, 28, 30, 30, 30, 30, 30, 30, 30},
	{3, 8, 17, 21, 26, 29, 31, 33, 33, 33, 33, 33, 33, 33, 33},
	{3, 7, 10, 12, 18, 21, 23, 24, 24, 24, 24, 24, 24, 24, 24},
	{2, 6, 9, 17, 20, 22, 27, 29, 30, 30, 30, 30, 30, 30, 30},
	{1, 5, 16, 19, 26, 28, 32, 33, 33, 33, 33, 33, 33, 33, 33},
}

// planeMasks holds Planes as point sets.
var planeMasks [PlaneCount]pyramid.Mask

func init() {
	for i := range Planes {
		planeMasks[i] = pyramid.NewMask(Planes[i][:]...)
	}
}

// Distance returns the distance between lattice points i and j.
func Distance(i, j int) float64 {
	return Coords[i].Distance(&Coords[j])
}

// InPlane returns true if every given point is a member of plane p.
func InPlane(p int, idxs ...int) bool {
	m := pyramid.NewMask(idxs...)
	return m&planeMasks[p] == m
}

// IsPlanar returns true if all four points lie inside at least one of the
// coplanar groups.
func IsPlanar(i, j, k, l int) bool {
	for p := range planeMasks {
		if InPlane(p, i, j, k, l) {
			return true
		}
	}
	return false
}

/*package catalog builds the candidate placements for each puzzle piece.

Each of the nine pieces has its own Bucket. Bucket 0 holds the triangular
base piece, which is given explicitly. The remaining buckets are filled by
scanning every four point subset of the lattice and sorting the planar ones
by shape. The fifth shape belongs to four identical pieces, so each of its
placements is copied into buckets 5 through 8.
*/
package catalog

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/pyramid"
	"github.com/phil-mansfield/pyramid/geom"
)

var (
	// Sizes gives the capacity of each piece's bucket.
	Sizes = [pyramid.ClassCount]int{5, 384, 336, 96, 168, 96, 96, 96, 96}

	// Triangles are the placements allowed for the three-point base piece.
	Triangles = [][3]int{
		{0, 1, 2},
		{1, 2, 3},
		{5, 6, 7},
		{9, 10, 11},
		{19, 20, 21},
	}
)

// Catalog holds the candidate placements of every piece.
type Catalog struct {
	Buckets [pyramid.ClassCount]*Bucket
}

// New creates a Catalog with empty buckets.
func New() *Catalog {
	cat := &Catalog{}
	for c := range cat.Buckets {
		cat.Buckets[c] = NewBucket(Sizes[c])
	}
	return cat
}

// Build creates a Catalog and fills every bucket using the given shape
// classifier.
func Build(cl *geom.Classifier) *Catalog {
	cat := New()
	cat.Init()
	cat.Generate(cl)
	return cat
}

// Init fills bucket 0 with the base piece's placements.
func (cat *Catalog) Init() {
	for _, t := range Triangles {
		cat.Buckets[0].Append(pyramid.NewMask(t[0], t[1], t[2]))
	}
}

// Classes returns the piece classes that a given four-point shape fills.
func Classes(shape int) []int {
	if shape == geom.FingerprintCount-1 {
		return []int{5, 6, 7, 8}
	}
	return []int{shape + 1}
}

// Add appends a placement of the given shape to every bucket which accepts
// that shape.
func (cat *Catalog) Add(shape int, m pyramid.Mask) {
	for _, c := range Classes(shape) {
		cat.Buckets[c].Append(m)
	}
}

// Generate scans all increasing four-tuples of lattice points and adds every
// planar tuple that matches a piece shape. Buckets are filled in
// lexicographic tuple order.
func (cat *Catalog) Generate(cl *geom.Classifier) {
	n := pyramid.PointCount
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					if !geom.IsPlanar(i, j, k, l) {
						continue
					}
					if shape, ok := cl.Classify(i, j, k, l); ok {
						cat.Add(shape, pyramid.NewMask(i, j, k, l))
					}
				}
			}
		}
	}
}

// Bucket returns the bucket of piece class c.
func (cat *Catalog) Bucket(c int) *Bucket { return cat.Buckets[c] }

// Lens returns the number of candidates in every bucket.
func (cat *Catalog) Lens() [pyramid.ClassCount]int {
	lens := [pyramid.ClassCount]int{}
	for c, b := range cat.Buckets {
		lens[c] = b.Len()
	}
	return lens
}

// Summary is a one-line description of bucket fill levels, for logging.
func (cat *Catalog) Summary() string {
	parts := make([]string, len(cat.Buckets))
	for c, b := range cat.Buckets {
		parts[c] = fmt.Sprintf("%d:%d/%d", c, b.Len(), b.Cap())
	}
	return strings.Join(parts, " ")
}

package geom

import (
	"math"
)

const (
	// FingerprintCount is the number of distinct four-point piece shapes.
	FingerprintCount = 5

	// DefaultTolerance is the per-distance tolerance used when matching
	// fingerprints.
	DefaultTolerance = 0.01
	// DefaultMaxDiameter is the largest pairwise distance a candidate can
	// have. No piece is wider than sqrt(7) ~ 2.64575.
	DefaultMaxDiameter = 2.66
)

// Fingerprint is the sorted list of the six pairwise distances between four
// points. Two four point subsets of the lattice are congruent exactly when
// their fingerprints are equal.
type Fingerprint [6]float64

// Fingerprints are the shapes of the four-point pieces. The fifth shape is
// shared by four of the nine pieces.
var Fingerprints = [FingerprintCount]Fingerprint{
	{1.0, 1.0, 1.0, 1.732, 2.0, 2.64575},
	{1.0, 1.0, 1.0, 1.0, 1.732, 2.0},
	{1.0, 1.0, 1.0, 1.732, 1.732, 2.64575},
	{1.0, 1.0, 1.0, 1.732, 1.732, 2.0},
	{1.0, 1.0, 1.0, 1.41421, 2.0, 2.23606},
}

// NewFingerprint computes the fingerprint of lattice points i, j, k, and l.
func NewFingerprint(i, j, k, l int) *Fingerprint {
	fp := &Fingerprint{
		Distance(i, j), Distance(i, k), Distance(i, l),
		Distance(j, k), Distance(j, l), Distance(k, l),
	}
	fp.sort()
	return fp
}

// sort sorts fp in place with an insertion sort.
func (fp *Fingerprint) sort() {
	for i := 1; i < len(fp); i++ {
		for j := i; j > 0 && fp[j] < fp[j-1]; j-- {
			fp[j], fp[j-1] = fp[j-1], fp[j]
		}
	}
}

// Diameter returns the largest distance in the fingerprint.
func (fp *Fingerprint) Diameter() float64 { return fp[len(fp)-1] }

// Matches returns true if every distance in fp is within tol of the
// corresponding distance in ref.
func (fp *Fingerprint) Matches(ref *Fingerprint, tol float64) bool {
	for i := range fp {
		if math.Abs(fp[i]-ref[i]) >= tol {
			return false
		}
	}
	return true
}

// Classifier assigns four-point subsets of the lattice to piece shapes.
type Classifier struct {
	Tolerance, MaxDiameter float64
	Shapes                 []Fingerprint
}

// NewClassifier returns a Classifier for the puzzle's piece shapes.
func NewClassifier(tol, maxDiameter float64) *Classifier {
	return &Classifier{
		Tolerance:   tol,
		MaxDiameter: maxDiameter,
		Shapes:      Fingerprints[:],
	}
}

// DefaultClassifier returns a Classifier with the default tolerances.
func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultTolerance, DefaultMaxDiameter)
}

// Classify returns the index of the first shape matching points i, j, k,
// and l. ok is false if there is no match.
func (c *Classifier) Classify(i, j, k, l int) (shape int, ok bool) {
	fp := NewFingerprint(i, j, k, l)
	if fp.Diameter() > c.MaxDiameter {
		return -1, false
	}

	for m := range c.Shapes {
		if fp.Matches(&c.Shapes[m], c.Tolerance) {
			return m, true
		}
	}
	return -1, false
}

package catalog

import (
	"fmt"

	"github.com/phil-mansfield/pyramid"
)

// Bucket is a fixed-capacity, insertion-ordered list of candidate
// placements for a single piece.
type Bucket struct {
	buf []pyramid.Mask
	idx int
}

// NewBucket creates an empty Bucket which can hold up to size masks.
func NewBucket(size int) *Bucket {
	return &Bucket{make([]pyramid.Mask, size), 0}
}

// Append adds a mask to the end of the bucket. Overfilling a bucket means
// the lattice tables are inconsistent with the bucket sizes, so Append
// panics.
func (b *Bucket) Append(m pyramid.Mask) {
	if b.idx == len(b.buf) {
		panic(fmt.Sprintf(
			"Bucket with capacity %d is full, cannot append %v.",
			len(b.buf), m,
		))
	}
	b.buf[b.idx] = m
	b.idx++
}

// Len returns the number of masks in the bucket.
func (b *Bucket) Len() int { return b.idx }

// Cap returns the maximum number of masks the bucket can hold.
func (b *Bucket) Cap() int { return len(b.buf) }

// At returns the i-th mask added to the bucket.
func (b *Bucket) At(i int) pyramid.Mask { return b.buf[i] }

// Masks returns the contents of the bucket. The slice aliases the bucket.
func (b *Bucket) Masks() []pyramid.Mask { return b.buf[:b.idx] }

// Equal returns true if both buckets hold the same masks in the same order.
func (b *Bucket) Equal(o *Bucket) bool {
	if b.idx != o.idx {
		return false
	}
	for i := 0; i < b.idx; i++ {
		if b.buf[i] != o.buf[i] {
			return false
		}
	}
	return true
}

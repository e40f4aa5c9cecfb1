package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/pyramid"
	"github.com/phil-mansfield/pyramid/geom"
)

func TestBucket(t *testing.T) {
	b := NewBucket(2)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 2, b.Cap())

	b.Append(pyramid.NewMask(0, 1))
	b.Append(pyramid.NewMask(2, 3))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, pyramid.NewMask(2, 3), b.At(1))
	assert.Equal(t, []pyramid.Mask{0x3, 0xc}, b.Masks())

	assert.Panics(t, func() { b.Append(pyramid.NewMask(4)) })
}

func TestBucketEqual(t *testing.T) {
	a, b := NewBucket(3), NewBucket(5)
	assert.True(t, a.Equal(b))

	a.Append(0x1)
	assert.False(t, a.Equal(b))
	b.Append(0x1)
	assert.True(t, a.Equal(b))

	a.Append(0x2)
	b.Append(0x4)
	assert.False(t, a.Equal(b))
}

func TestInit(t *testing.T) {
	cat := New()
	cat.Init()

	expected := []pyramid.Mask{
		pyramid.NewMask(0, 1, 2),
		pyramid.NewMask(1, 2, 3),
		pyramid.NewMask(5, 6, 7),
		pyramid.NewMask(9, 10, 11),
		pyramid.NewMask(19, 20, 21),
	}
	assert.Equal(t, expected, cat.Bucket(0).Masks())
	for c := 1; c < pyramid.ClassCount; c++ {
		assert.Equal(t, 0, cat.Bucket(c).Len())
	}
}

func TestClasses(t *testing.T) {
	assert.Equal(t, []int{1}, Classes(0))
	assert.Equal(t, []int{4}, Classes(3))
	assert.Equal(t, []int{5, 6, 7, 8}, Classes(4))
}

func TestBuild(t *testing.T) {
	cl := geom.DefaultClassifier()
	cat := Build(cl)

	// The fixed tables fill every bucket exactly.
	assert.Equal(t, Sizes, cat.Lens())

	for c := 0; c < pyramid.ClassCount; c++ {
		want := 4
		if c == 0 {
			want = 3
		}
		for i, m := range cat.Bucket(c).Masks() {
			require.Equal(t, want, m.Count(), "class %d, index %d", c, i)
		}
	}

	for c := 6; c < pyramid.ClassCount; c++ {
		assert.True(t, cat.Bucket(5).Equal(cat.Bucket(c)), "class %d", c)
	}
	assert.False(t, cat.Bucket(4).Equal(cat.Bucket(5)))

	first := []pyramid.Mask{
		pyramid.NewMask(0, 1, 2, 7),
		pyramid.NewMask(0, 1, 2, 5),
		pyramid.NewMask(0, 1, 6, 7),
		pyramid.NewMask(0, 1, 6, 9),
		pyramid.NewMask(1, 5, 16, 26),
	}
	for shape, m := range first {
		assert.Equal(t, m, cat.Bucket(shape+1).At(0), "shape %d", shape)
	}
	assert.Equal(t, pyramid.NewMask(30, 32, 33, 34), cat.Bucket(2).At(335))
}

func TestGenerateCompleteness(t *testing.T) {
	cl := geom.DefaultClassifier()
	cat := Build(cl)

	// Rebuild the expected bucket contents by brute force and compare them
	// as sets.
	expected := make([]map[pyramid.Mask]bool, geom.FingerprintCount)
	for m := range expected {
		expected[m] = map[pyramid.Mask]bool{}
	}
	n := pyramid.PointCount
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					if !geom.IsPlanar(i, j, k, l) {
						continue
					}
					fp := geom.NewFingerprint(i, j, k, l)
					for m := range geom.Fingerprints {
						if fp.Matches(&geom.Fingerprints[m], cl.Tolerance) {
							expected[m][pyramid.NewMask(i, j, k, l)] = true
						}
					}
				}
			}
		}
	}

	for m := range expected {
		c := Classes(m)[0]
		got := map[pyramid.Mask]bool{}
		for _, mask := range cat.Bucket(c).Masks() {
			got[mask] = true
		}
		assert.Equal(t, expected[m], got, "shape %d", m)
	}
}

func TestGenerateOverflow(t *testing.T) {
	cat := &Catalog{}
	for c := range cat.Buckets {
		cat.Buckets[c] = NewBucket(Sizes[c] - 1)
	}
	assert.Panics(t, func() { cat.Generate(geom.DefaultClassifier()) })
}

func TestSummary(t *testing.T) {
	cat := New()
	cat.Init()
	assert.Equal(
		t, "0:5/5 1:0/384 2:0/336 3:0/96 4:0/168 5:0/96 6:0/96 7:0/96 8:0/96",
		cat.Summary(),
	)
}

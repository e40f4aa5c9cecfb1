package io

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/phil-mansfield/pyramid"
)

// WriteReport writes the time taken by the search, the index chosen for
// each piece, and the piece covering each lattice point:
//
//	<seconds> sec
//	Choices:
//	<9 indices>
//	<35 piece numbers>
//
// Each list of integers is followed by a single trailing space.
func WriteReport(w io.Writer, elapsed time.Duration, sol *pyramid.Solution) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%.6f sec\n", elapsed.Seconds())
	fmt.Fprintln(bw, "Choices:")
	for _, idx := range sol.Choices {
		fmt.Fprintf(bw, "%d ", idx)
	}
	fmt.Fprintln(bw)

	occ := sol.Occupancy()
	for _, piece := range occ {
		fmt.Fprintf(bw, "%d ", piece)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

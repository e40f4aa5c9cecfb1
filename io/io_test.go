package io

import (
	"bytes"
	"io/ioutil"
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/pyramid"
	"github.com/phil-mansfield/pyramid/geom"
)

func TestExampleSolveFile(t *testing.T) {
	con, err := ParseSolveConfig(ExampleSolveFile)
	require.NoError(t, err)
	assert.Equal(t, &DefaultSolveWrapper().Solve, con)
}

func TestDefaultSolveConfig(t *testing.T) {
	con, err := ReadSolveConfig("")
	require.NoError(t, err)

	assert.Equal(t, geom.DefaultTolerance, con.Tolerance)
	assert.Equal(t, geom.DefaultMaxDiameter, con.MaxDiameter)
	assert.True(t, con.BreakSymmetry)
	assert.False(t, con.ValidPlotFile())
	assert.False(t, con.ValidLogFile())
	assert.False(t, con.ValidProfileDir())

	cl := con.Classifier()
	assert.Equal(t, geom.DefaultClassifier(), cl)
}

func TestParseSolveConfig(t *testing.T) {
	con, err := ParseSolveConfig(`[Solve]
Tolerance = 0.02
MaxDiameter = 3
BreakSymmetry = false
PlotFile = out.png
LogFile = log.out
ProfileDir = prof`)
	require.NoError(t, err)

	assert.Equal(t, 0.02, con.Tolerance)
	assert.Equal(t, 3.0, con.MaxDiameter)
	assert.False(t, con.BreakSymmetry)
	assert.Equal(t, "out.png", con.PlotFile)
	assert.Equal(t, "log.out", con.LogFile)
	assert.Equal(t, "prof", con.ProfileDir)
}

func TestParseSolveConfigErrors(t *testing.T) {
	table := []string{
		"[Solve]\nTolerance = 0",
		"[Solve]\nTolerance = -0.5",
		"[Solve]\nMaxDiameter = 0",
		"[Solve]\nNotAVariable = 1",
		"[Render]\nTolerance = 0.01",
		"[Solve]\nTolerance = wide",
	}

	for i, str := range table {
		_, err := ParseSolveConfig(str)
		assert.Error(t, err, "%d) %q", i+1, str)
	}
}

func TestReadSolveConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "pyramid_config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fname := path.Join(dir, "solve.config")
	err = ioutil.WriteFile(fname, []byte("[Solve]\nTolerance = 0.05\n"), 0644)
	require.NoError(t, err)

	con, err := ReadSolveConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, 0.05, con.Tolerance)
	assert.Equal(t, geom.DefaultMaxDiameter, con.MaxDiameter)

	_, err = ReadSolveConfig(path.Join(dir, "missing.config"))
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	sol := &pyramid.Solution{
		Choices: [pyramid.ClassCount]int{0, 216, 81, 24, 157, 26, 33, 65, 89},
		Masks: [pyramid.ClassCount]pyramid.Mask{
			pyramid.NewMask(0, 1, 2),
			pyramid.NewMask(9, 12, 14, 19),
			pyramid.NewMask(4, 8, 18, 27),
			pyramid.NewMask(3, 7, 20, 22),
			pyramid.NewMask(25, 26, 32, 34),
			pyramid.NewMask(5, 15, 16, 17),
			pyramid.NewMask(6, 10, 13, 24),
			pyramid.NewMask(11, 23, 28, 30),
			pyramid.NewMask(21, 29, 31, 33),
		},
	}

	buf := &bytes.Buffer{}
	err := WriteReport(buf, 1234567*time.Microsecond, sol)
	require.NoError(t, err)

	expected := "1.234567 sec\n" +
		"Choices:\n" +
		"0 216 81 24 157 26 33 65 89 \n" +
		"1 1 1 4 3 6 7 4 3 2 7 8 2 7 2 6 6 6 3 2 4 9 4 8 7 5 5 3 8 9 8 9 5 9 5 \n"
	assert.Equal(t, expected, buf.String())
}

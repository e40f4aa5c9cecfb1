package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/pyramid/geom"
)

const (
	ExampleSolveFile = `[Solve]

# Every parameter is optional. Running pyramid without a config file is the
# same as running it with this file.

#######################
# Shape Recognition   #
#######################

# Tolerance is the largest difference allowed between a candidate's sorted
# pairwise distances and the distances of a piece shape. The reference
# distances are rounded to a few decimal places, so don't set this much
# below the default.
# Tolerance = 0.01

# Candidates wider than MaxDiameter are discarded before their shape is
# checked. The widest piece is sqrt(7) ~ 2.646 across.
# MaxDiameter = 2.66

#######################
# Search              #
#######################

# Pieces 6 through 9 have identical shapes. If BreakSymmetry is true, the
# search only considers their placements in one order. The reported
# solution is the same either way, but the search does less work.
# BreakSymmetry = true

#######################
# Output              #
#######################

# If set, a top-down plot of the solution is written to this file. This
# requires python and matplotlib.
# PlotFile = pyramid.png

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong. A CPU profile is
# written into ProfileDir.
# ProfileDir = prof
# LogFile = log.out`
)

type SharedConfig struct {
	// Optional
	LogFile, ProfileDir string
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileDir() bool {
	return con.ProfileDir != ""
}

type SolveConfig struct {
	SharedConfig

	// Optional
	Tolerance, MaxDiameter float64
	BreakSymmetry          bool
	PlotFile               string
}

type SolveWrapper struct {
	Solve SolveConfig
}

// DefaultSolveWrapper returns a SolveWrapper with every default applied.
func DefaultSolveWrapper() *SolveWrapper {
	con := SolveConfig{}
	con.Tolerance = geom.DefaultTolerance
	con.MaxDiameter = geom.DefaultMaxDiameter
	con.BreakSymmetry = true
	return &SolveWrapper{con}
}

func (con *SolveConfig) ValidTolerance() bool {
	return con.Tolerance > 0
}
func (con *SolveConfig) ValidMaxDiameter() bool {
	return con.MaxDiameter > 0
}
func (con *SolveConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}

// CheckInit returns an error describing the first invalid parameter, if any.
func (con *SolveConfig) CheckInit() error {
	if !con.ValidTolerance() {
		return fmt.Errorf(
			"'Tolerance' must be positive, but is %g.", con.Tolerance,
		)
	} else if !con.ValidMaxDiameter() {
		return fmt.Errorf(
			"'MaxDiameter' must be positive, but is %g.", con.MaxDiameter,
		)
	}
	return nil
}

// Classifier returns the shape classifier described by the config.
func (con *SolveConfig) Classifier() *geom.Classifier {
	return geom.NewClassifier(con.Tolerance, con.MaxDiameter)
}

// ReadSolveConfig reads a [Solve] config file on top of the defaults. An
// empty file name gives the defaults.
func ReadSolveConfig(fname string) (*SolveConfig, error) {
	wrap := DefaultSolveWrapper()
	if fname != "" {
		if err := gcfg.ReadFileInto(wrap, fname); err != nil {
			return nil, err
		}
	}
	return checkSolveWrapper(wrap)
}

// ParseSolveConfig is identical to ReadSolveConfig, but reads the config
// from a string.
func ParseSolveConfig(str string) (*SolveConfig, error) {
	wrap := DefaultSolveWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	return checkSolveWrapper(wrap)
}

func checkSolveWrapper(wrap *SolveWrapper) (*SolveConfig, error) {
	con := &wrap.Solve
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

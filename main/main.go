package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"

	"github.com/phil-mansfield/pyramid/catalog"
	"github.com/phil-mansfield/pyramid/io"
	"github.com/phil-mansfield/pyramid/render"
	"github.com/phil-mansfield/pyramid/search"
)

// FileGroup contains utility files for logging.
type FileGroup struct {
	log *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	// Running with no flags solves the puzzle with the default config.

	var (
		solve, exampleConfig string
		plotFile, profileDir string
	)
	vars := map[string]*string{
		"Solve":         &solve,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&solve, "Solve", "",
		"Configuration file for [Solve] mode. If no mode is given, the "+
			"puzzle is solved with the default configuration.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Solve'.",
	)
	flag.StringVar(
		&plotFile, "Plot", "",
		"Writes a plot of the solution to the given file. Overrides "+
			"'PlotFile'.",
	)
	flag.StringVar(
		&profileDir, "Profile", "",
		"Writes a CPU profile to the given directory. Overrides "+
			"'ProfileDir'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Solve":
		con, err := io.ReadSolveConfig(solve)
		if err != nil { log.Fatal(err.Error()) }

		if plotFile != "" {
			con.PlotFile = plotFile
		}
		if profileDir != "" {
			con.ProfileDir = profileDir
		}

		os.Exit(solveMain(con))

	case "ExampleConfig":
		switch exampleConfig {
		case "Solve":
			fmt.Println(io.ExampleSolveFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Solve'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "Solve", nil
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but pyramid "+
				"only accepts one mode flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// solveMain builds the catalog, runs the search, and writes the report to
// stdout. It returns the process's exit status.
func solveMain(con *io.SolveConfig) int {
	files := &FileGroup{}
	defer files.Close()

	if con.ValidLogFile() {
		lf, err := os.Create(con.LogFile)
		if err != nil { log.Fatal(err.Error()) }
		files.log = lf
		log.SetOutput(lf)
	}

	if con.ValidProfileDir() {
		defer profile.Start(
			profile.CPUProfile, profile.ProfilePath(con.ProfileDir),
			profile.NoShutdownHook, profile.Quiet,
		).Stop()
	}

	log.Printf(
		"Tolerance = %g, MaxDiameter = %g, BreakSymmetry = %v",
		con.Tolerance, con.MaxDiameter, con.BreakSymmetry,
	)

	cat := catalog.Build(con.Classifier())
	log.Printf("Catalog filled: %s", cat.Summary())

	solver := search.NewSolver(cat, con.BreakSymmetry)

	start := time.Now()
	sol, err := solver.Solve()
	elapsed := time.Since(start)

	stats := solver.Stats()
	log.Printf(
		"Search visited %d candidates and placed %d in %s.",
		stats.Visited, stats.Placed, elapsed,
	)

	if err == search.ErrNoSolution {
		fmt.Println(err.Error())
		return 1
	} else if err != nil {
		log.Fatal(err.Error())
	}

	if err := sol.Check(); err != nil {
		log.Fatalf("Search returned an invalid solution: %s", err.Error())
	}

	if err := io.WriteReport(os.Stdout, elapsed, sol); err != nil {
		log.Fatal(err.Error())
	}

	if con.ValidPlotFile() {
		log.Printf("Plotting solution to %s.", con.PlotFile)
		render.PlotSolution(con.PlotFile, sol)
	}

	return 0
}

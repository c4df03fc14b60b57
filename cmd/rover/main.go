package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"marsrover/internal/mission"
	"marsrover/internal/nav"
	"marsrover/internal/rover"
	"marsrover/internal/terrain"
	"marsrover/internal/world"
)

func main() {
	var (
		terrainFile string
		x, y        int
		heading     string
		verbose     bool
		halt        bool
	)
	flag.StringVar(&terrainFile, "terrain", "", "terrain ruleset (.toml or .yaml); built-in P/M/C rules when empty")
	flag.IntVar(&x, "x", 0, "starting column")
	flag.IntVar(&y, "y", 0, "starting row")
	flag.StringVar(&heading, "heading", "N", "starting heading (N, E, S, W)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.BoolVar(&halt, "halt", false, "stop a drive at the first obstacle")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <map file> <mission file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	rules := terrain.Default()
	if terrainFile != "" {
		var err error
		if rules, err = terrain.Load(terrainFile); err != nil {
			log.Fatal("load terrain", "err", err)
		}
	}

	w, err := world.Load(flag.Arg(0), rules)
	if err != nil {
		log.Fatal("load map", "err", err)
	}
	log.Debug("map loaded", "width", w.Width(), "height", w.Height())

	dir, err := nav.ParseHeading(heading)
	if err != nil {
		log.Fatal("bad heading", "err", err)
	}
	start := nav.Coordinate{X: x, Y: y}
	if !w.CanMoveTo(x, y) {
		log.Fatal("starting cell is not passable", "at", start)
	}

	script, err := os.ReadFile(flag.Arg(1))
	if err != nil {
		log.Fatal("read mission", "err", err)
	}
	prog, err := mission.Parse(flag.Arg(1), string(script))
	if err != nil {
		log.Fatal(err)
	}

	opts := []rover.Option{rover.WithLogger(log.Default())}
	if halt {
		opts = append(opts, rover.WithHaltOnObstacle())
	}
	ctx := &mission.Context{Rover: rover.New(start, dir, opts...).SetWorld(w)}

	runErr := prog.Exec(ctx)
	for _, r := range ctx.Reports {
		fmt.Println(r)
	}
	if runErr != nil {
		log.Fatal("mission aborted", "err", runErr)
	}
}

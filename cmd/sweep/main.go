package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweep"
)

type Find struct {
	Engine     string `short:"e" default:"sweep" desc:"Engine: sweep, simple, exact or brute"`
	Comparator string `short:"c" default:"leftof" desc:"Left-of comparator for sweep and simple: leftof or area"`
	Classic    bool   `desc:"Remove both segments of a collision from the active set"`
	EndsFirst  bool   `desc:"Process end events before start events at equal keys"`
	Points     bool   `short:"p" desc:"Print the intersection point of each pair"`
	Check      bool   `desc:"Check that coordinates are in range before sweeping"`
	Verbose    bool   `short:"v" desc:"Log debug output to stderr"`
	Input      string `index:"0" desc:"Input file with one segment x0 y0 x1 y1 per line, stdin if empty"`
}

type Demo struct {
	Engine     string `short:"e" default:"sweep" desc:"Engine: sweep, simple, exact or brute"`
	Comparator string `short:"c" default:"leftof" desc:"Left-of comparator for sweep and simple: leftof or area"`
	Classic    bool   `desc:"Remove both segments of a collision from the active set"`
	Verbose    bool   `short:"v" desc:"Log debug output to stderr"`
}

func main() {
	root := argp.NewCmd(&Find{}, "Find intersecting line segments with a sweep line")
	root.AddCmd(&Demo{}, "demo", "Run the built-in segment sets")
	root.Parse()
	root.PrintHelp()
}

func setVerbose(verbose bool) {
	if verbose {
		sweep.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}

func comparator[T sweep.Number](name string) (sweep.Less[T], error) {
	switch strings.ToLower(name) {
	case "leftof", "":
		return sweep.LeftOf[T], nil
	case "area":
		return sweep.LeftOfArea[T], nil
	}
	return nil, fmt.Errorf("unknown comparator: %s", name)
}

func run[T sweep.Number](segs []sweep.Segment[T], engine, cmp string, opts *sweep.Options) (sweep.Pairs, error) {
	switch strings.ToLower(engine) {
	case "sweep", "":
		less, err := comparator[T](cmp)
		if err != nil {
			return nil, err
		}
		return sweep.NewSweeper(segs, less, nil, nil, opts).Scan(), nil
	case "simple":
		less, err := comparator[T](cmp)
		if err != nil {
			return nil, err
		}
		return sweep.Intersect(segs, less), nil
	case "exact":
		return sweep.Intersections(segs), nil
	case "brute":
		return sweep.BruteForce(segs), nil
	}
	return nil, fmt.Errorf("unknown engine: %s", engine)
}

func inputName(input string) string {
	if input == "" || input == "-" {
		return "stdin"
	}
	return input
}

// readSegments parses segments from the named file, or from stdin for an empty name or -.
func readSegments(input string) ([]sweep.Segment[float64], error) {
	var r io.Reader = os.Stdin
	if input != "" && input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	segs, err := sweep.ParseSegments(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputName(input), err)
	}
	return segs, nil
}

func (cmd *Find) Run() error {
	setVerbose(cmd.Verbose)

	segs, err := readSegments(cmd.Input)
	if err != nil {
		return err
	} else if cmd.Check {
		if err := sweep.CheckRange(segs); err != nil {
			return err
		}
	}

	opts := sweep.DefaultOptions
	if cmd.Classic {
		opts.Policy = sweep.Classic
	}
	opts.EndsFirst = cmd.EndsFirst

	ps, err := run(segs, cmd.Engine, cmd.Comparator, &opts)
	if err != nil {
		return err
	}
	if err := sweep.Fprint(os.Stdout, ps, segs); err != nil {
		return err
	}
	if cmd.Points {
		for _, p := range ps {
			if z, ok := segs[p.A].Intersection(segs[p.B]); ok {
				fmt.Printf("%v at %v\n", p, z)
			} else {
				fmt.Printf("%v does not intersect\n", p)
			}
		}
	}
	return nil
}

func (cmd *Demo) Run() error {
	setVerbose(cmd.Verbose)

	opts := sweep.DefaultOptions
	if cmd.Classic {
		opts.Policy = sweep.Classic
	}
	for _, fixture := range []struct {
		name string
		segs []sweep.Segment[int]
	}{
		{"eight segments", eightSegments},
		{"sixteen segments", sixteenSegments},
	} {
		ps, err := run(fixture.segs, cmd.Engine, cmd.Comparator, &opts)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", fixture.name)
		if err := sweep.Fprint(os.Stdout, ps, fixture.segs); err != nil {
			return err
		}
	}
	return nil
}

var eightSegments = []sweep.Segment[int]{
	sweep.Seg(-14, 6, -10, 3), sweep.Seg(-10, 6, -6, 3),
	sweep.Seg(-4, 2, -6, 4), sweep.Seg(-9, 5, -1, 3),
	sweep.Seg(-2, 4, -4, 3), sweep.Seg(-3, 5, 2, 2),
	sweep.Seg(3, 5, 1, 3), sweep.Seg(-8, 4, -10, 2),
}

var sixteenSegments = []sweep.Segment[int]{
	sweep.Seg(-3, 4, -2, 2), sweep.Seg(-6, 7, -4, 6),
	sweep.Seg(-7, 4, -6, 3), sweep.Seg(-1, 8, -2, 6),
	sweep.Seg(-9, 8, -8, 6), sweep.Seg(-5, 1, -7, 1),
	sweep.Seg(-6, 11, -4, 9), sweep.Seg(-9, 6, -7, 7),
	sweep.Seg(-9, 4, -8, 2), sweep.Seg(-11, 9, -11, 6),
	sweep.Seg(-11, 4, -11, 2), sweep.Seg(-6, 6, -5, 3),
	sweep.Seg(-5, 8, -10, 9), sweep.Seg(-10, 5, -7, 5),
	sweep.Seg(-4, 5, -2, 5), sweep.Seg(-8, 3, -5, 4),
}

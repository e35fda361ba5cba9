// Command bbdump parses a FEN and prints its bitboards and the destination
// set of every piece type.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/render"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

type options struct {
	fen        string
	svgPath    string
	highlight  string
	moves      bool
	cpuprofile string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("bbdump", flag.ContinueOnError)
	o := &options{}
	fs.StringVar(&o.fen, "fen", board.StartFEN, "position to load")
	fs.StringVar(&o.svgPath, "svg", "", "write an SVG diagram to this file")
	fs.StringVar(&o.highlight, "highlight", "", "square whose destinations the SVG highlights, e.g. g1")
	fs.BoolVar(&o.moves, "moves", true, "print the destination set of every piece type")
	fs.StringVar(&o.cpuprofile, "cpuprofile", "", "write cpu profile to file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

func run(args []string, out io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	if o.cpuprofile != "" {
		f, err := os.Create(o.cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", o.cpuprofile)
	}

	pos, err := board.ParseFEN(o.fen, board.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	fmt.Fprint(out, pos)
	fmt.Fprintln(out)
	if err := pos.Dump(out); err != nil {
		return err
	}

	if o.moves {
		if err := printDestinations(out, pos); err != nil {
			return err
		}
	}

	if o.svgPath != "" {
		return writeSVG(o.svgPath, pos, o.highlight)
	}
	return nil
}

// printDestinations prints one titled board per color and piece type.
func printDestinations(out io.Writer, pos *board.Position) error {
	title := cases.Title(language.English)
	for c := board.White; c <= board.Black; c++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			dests, err := pos.Destinations(c, pt)
			if err != nil {
				return err
			}
			name := strings.ReplaceAll(board.NewPiece(pt, c).SetName(), "_", " ")
			fmt.Fprintf(out, "\n%s (%d)\n%s", title.String(name), dests.PopCount(), dests)
		}
	}
	return nil
}

func writeSVG(path string, pos *board.Position, highlight string) error {
	var opts []render.Option
	if highlight != "" {
		sq, err := board.ParseSquare(highlight)
		if err != nil {
			return err
		}
		dests, err := pos.DestinationsFrom(sq.Layout())
		if err != nil {
			return err
		}
		opts = append(opts, render.WithHighlight(dests))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteSVG(f, pos, opts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Wrote %s", path)
	return nil
}

// Command bbterm shows a position in the terminal. Move the cursor with the
// arrow keys and press enter on a piece to highlight its destinations.
package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/storage"
	"github.com/hailam/chessbits/internal/term"
)

var (
	fen   = flag.String("fen", board.StartFEN, "position to show")
	ascii = flag.Bool("ascii", false, "draw FEN letters instead of chess symbols")
	dbDir = flag.String("db", "", "preferences database directory (default: platform data dir)")
)

func main() {
	flag.Parse()

	pos, err := board.ParseFEN(*fen, board.WithLogger(log.Default()))
	if err != nil {
		log.Fatal(err)
	}

	opts := []term.Option{term.WithPreferences(loadPreferences(*dbDir))}
	if *ascii {
		opts = append(opts, term.WithASCII())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	err = term.New(screen, pos, opts...).Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

// loadPreferences reads the window viewer's stored preferences so both
// viewers share theme and orientation. Failures fall back to defaults.
func loadPreferences(dir string) *storage.Preferences {
	var (
		store *storage.Storage
		err   error
	)
	if dir == "" {
		store, err = storage.NewStorage()
	} else {
		store, err = storage.Open(dir)
	}
	if err != nil {
		log.Printf("Warning: Failed to open preferences: %v", err)
		return storage.DefaultPreferences()
	}
	defer store.Close()

	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
	}
	return prefs
}

// chessbits - a bitboard position viewer built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/storage"
	"github.com/hailam/chessbits/internal/ui"
)

var (
	fen   = flag.String("fen", board.StartFEN, "position to show")
	dbDir = flag.String("db", "", "preferences database directory (default: platform data dir)")
)

func main() {
	flag.Parse()

	pos, err := board.ParseFEN(*fen, board.WithLogger(log.Default()))
	if err != nil {
		log.Fatal(err)
	}

	var store *storage.Storage
	if *dbDir == "" {
		store, err = storage.NewStorage()
	} else {
		store, err = storage.Open(*dbDir)
	}
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	viewer := ui.NewViewer(pos, store)

	ebiten.SetWindowSize(viewer.WindowSize())
	ebiten.SetWindowTitle("chessbits")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}

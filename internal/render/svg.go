// Package render draws a Position as an SVG diagram.
package render

import (
	"encoding/base64"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/sprites"
	"github.com/hailam/chessbits/internal/storage"
)

// Options controls the diagram.
type Options struct {
	SquareSize  int
	Flipped     bool
	Coordinates bool
	Theme       storage.Theme
	// Highlight marks destination squares, in board-layout order.
	Highlight board.Bitboard
}

// Option configures WriteSVG.
type Option func(*Options)

// WithHighlight tints every square set in bb.
func WithHighlight(bb board.Bitboard) Option {
	return func(o *Options) { o.Highlight = bb }
}

// WithSquareSize sets the edge of one square in pixels.
func WithSquareSize(n int) Option {
	return func(o *Options) { o.SquareSize = n }
}

// WithPreferences copies theme, orientation, coordinates and size from
// stored viewer preferences.
func WithPreferences(p *storage.Preferences) Option {
	return func(o *Options) {
		o.Theme = p.Theme
		o.Flipped = p.Flipped
		o.Coordinates = p.ShowCoordinates
		o.SquareSize = p.SquareSize
	}
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, nil
}

// WriteSVG writes an 8x8 diagram of pos to w, rank 8 on top unless flipped.
func WriteSVG(w io.Writer, pos *board.Position, opts ...Option) error {
	o := Options{
		SquareSize:  storage.DefaultSquareSize,
		Coordinates: true,
		Theme:       storage.ThemeClassic,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.SquareSize <= 0 {
		return fmt.Errorf("render: invalid square size %d", o.SquareSize)
	}

	pieces, err := pieceLinks()
	if err != nil {
		return err
	}

	pal := PaletteFor(o.Theme)
	size := o.SquareSize * 8
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	canvas.Start(size, size)
	canvas.Title(pos.ToFEN())

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			file, rank := col, 7-row
			if o.Flipped {
				file, rank = 7-col, row
			}
			sq := board.NewSquare(file, rank)
			bit := sq.Layout()
			x, y := col*o.SquareSize, row*o.SquareSize

			fill := pal.Light
			if (file+rank)%2 == 0 {
				fill = pal.Dark
			}
			if o.Highlight.IsSet(bit) {
				canvas.Rect(x, y, o.SquareSize, o.SquareSize,
					`fill="`+pal.Highlight+`"`, `class="highlight"`, `id="`+sq.String()+`"`)
			} else {
				canvas.Rect(x, y, o.SquareSize, o.SquareSize,
					`fill="`+fill+`"`, `id="`+sq.String()+`"`)
			}

			if piece := pos.PieceAt(bit); piece != board.NoPiece {
				canvas.Image(x, y, o.SquareSize, o.SquareSize, pieces[piece],
					`class="piece"`, `data-piece="`+piece.String()+`"`)
			}
		}
	}

	if o.Coordinates {
		writeCoordinates(canvas, o, pal)
	}

	canvas.End()
	return ew.err
}

func writeCoordinates(canvas *svg.SVG, o Options, pal Palette) {
	fontSize := o.SquareSize / 5
	style := fmt.Sprintf("font-family:sans-serif;font-size:%dpx;fill:%s", fontSize, pal.Label)
	for i := 0; i < 8; i++ {
		file, rank := i, 7-i
		if o.Flipped {
			file, rank = 7-i, i
		}
		canvas.Text(i*o.SquareSize+o.SquareSize-fontSize, 8*o.SquareSize-3,
			string(rune('a'+file)), style)
		canvas.Text(2, i*o.SquareSize+fontSize,
			string(rune('1'+rank)), style)
	}
}

// pieceLinks returns a data URI per piece, built from the embedded SVGs.
func pieceLinks() (map[board.Piece]string, error) {
	links := make(map[board.Piece]string, 12)
	for piece := board.WhitePawn; piece < board.NoPiece; piece++ {
		data, err := sprites.SVG(piece)
		if err != nil {
			return nil, err
		}
		links[piece] = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(data)
	}
	return links, nil
}

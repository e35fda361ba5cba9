// Package sprites rasterizes the embedded SVG piece images.
package sprites

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"

	"github.com/hailam/chessbits/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// ErrNoSprite is returned for NoPiece and out-of-range pieces.
var ErrNoSprite = errors.New("sprites: no image for piece")

// pieceFiles maps pieces to their asset file paths.
var pieceFiles = map[board.Piece]string{
	board.WhitePawn:   "assets/pieces/wP.svg",
	board.WhiteKnight: "assets/pieces/wN.svg",
	board.WhiteBishop: "assets/pieces/wB.svg",
	board.WhiteRook:   "assets/pieces/wR.svg",
	board.WhiteQueen:  "assets/pieces/wQ.svg",
	board.WhiteKing:   "assets/pieces/wK.svg",
	board.BlackPawn:   "assets/pieces/bP.svg",
	board.BlackKnight: "assets/pieces/bN.svg",
	board.BlackBishop: "assets/pieces/bB.svg",
	board.BlackRook:   "assets/pieces/bR.svg",
	board.BlackQueen:  "assets/pieces/bQ.svg",
	board.BlackKing:   "assets/pieces/bK.svg",
}

// SVG returns the raw SVG document for a piece.
func SVG(p board.Piece) ([]byte, error) {
	path, ok := pieceFiles[p]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoSprite, p)
	}
	return pieceAssets.ReadFile(path)
}

// Rasterize renders a piece into a size x size RGBA image with anti-aliasing.
func Rasterize(p board.Piece, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sprites: invalid size %d", size)
	}
	data, err := SVG(p)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sprites: parse %s: %w", pieceFiles[p], err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// RasterizeAll renders all twelve pieces at the given size.
func RasterizeAll(size int) (map[board.Piece]*image.RGBA, error) {
	images := make(map[board.Piece]*image.RGBA, len(pieceFiles))
	for piece := range pieceFiles {
		img, err := Rasterize(piece, size)
		if err != nil {
			return nil, err
		}
		images[piece] = img
	}
	return images, nil
}

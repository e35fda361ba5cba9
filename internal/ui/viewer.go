// Package ui implements the bitboard viewer window using Ebitengine.
package ui

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/storage"
	"github.com/hailam/chessbits/internal/view"
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Viewer.Layout and used by the input handler.
var UIScale = 1.0

const (
	toastShort = 2 * time.Second
	toastLong  = 6 * time.Second
)

// Viewer implements ebiten.Game. It shows one position and, after a click on
// a piece, that piece's destination set.
type Viewer struct {
	position  *board.Position
	selection view.Selection

	// Storage may be nil; preferences then live only for the session.
	storage *storage.Storage
	prefs   *storage.Preferences

	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	toasts   *ToastManager

	// HiDPI scaling
	scale float64
}

// NewViewer creates a viewer for pos.
func NewViewer(pos *board.Position, store *storage.Storage) *Viewer {
	v := &Viewer{
		position:  pos,
		selection: view.None,
		storage:   store,
		input:     NewInputHandler(),
		toasts:    NewToastManager(),
		scale:     1.0,
	}

	v.loadPreferences()
	v.renderer = NewRenderer(v.prefs)
	v.panel = NewPanel(v, v.renderer.BoardSize())
	v.checkFirstLaunch()

	return v
}

// loadPreferences loads viewer preferences from storage.
func (v *Viewer) loadPreferences() {
	if v.storage == nil {
		v.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	v.prefs, err = v.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
	}
}

// savePreferences stores preferences and pushes them to the renderer.
func (v *Viewer) savePreferences() {
	v.renderer.Apply(v.prefs)
	if v.storage == nil {
		return
	}
	if err := v.storage.SavePreferences(v.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// checkFirstLaunch shows usage help once.
func (v *Viewer) checkFirstLaunch() {
	if v.storage == nil {
		return
	}

	isFirst, err := v.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}
	if !isFirst {
		return
	}

	v.toasts.Show("Click a piece to see where it can go", ToastInfo, toastLong)
	if err := v.storage.MarkFirstLaunchComplete(); err != nil {
		log.Printf("Warning: Failed to mark first launch complete: %v", err)
	}
}

// WindowSize returns the unscaled window size.
func (v *Viewer) WindowSize() (int, int) {
	size := v.renderer.BoardSize()
	return size + PanelWidth, size
}

// Update handles input.
func (v *Viewer) Update() error {
	v.input.Update()
	v.toasts.Update()

	v.handleKeys()

	if v.panel.HandleInput(v.input) {
		v.updateCursor()
		return nil
	}

	v.handleBoardInput()
	v.updateCursor()

	return nil
}

func (v *Viewer) handleKeys() {
	for _, key := range v.input.JustPressedKeys() {
		switch key {
		case ebiten.KeyF:
			v.FlipAction()
		case ebiten.KeyT:
			v.CycleThemeAction()
		case ebiten.KeyC:
			v.ToggleCoordinatesAction()
		case ebiten.KeyEscape:
			v.selection = view.None
		}
	}
}

// updateCursor sets the cursor shape based on what's being hovered.
func (v *Viewer) updateCursor() {
	mx, my := v.input.MousePosition()
	onPiece := false
	if sq := v.renderer.ScreenToSquare(mx, my); sq != board.NoSquare {
		onPiece = v.position.PieceAt(sq.Layout()) != board.NoPiece
	}

	if onPiece || v.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// handleBoardInput selects the clicked piece, or clears the selection when
// the click lands on an empty square or on the selected piece again.
func (v *Viewer) handleBoardInput() {
	if !v.input.IsLeftJustPressed() {
		return
	}
	mx, my := v.input.MousePosition()
	sq := v.renderer.ScreenToSquare(mx, my)
	if sq == board.NoSquare {
		return
	}

	if v.selection.Active() && v.selection.Square == sq {
		v.selection = view.None
		return
	}

	sel, err := view.Select(v.position, sq)
	if err != nil {
		v.toasts.Show(err.Error(), ToastError, toastShort)
		return
	}
	v.selection = sel
}

// Draw renders the viewer.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderer.SetScale(v.scale)

	screen.Fill(v.renderer.Theme().Background)

	v.renderer.DrawBoard(screen)
	v.renderer.DrawSelection(screen, v.position, v.selection)
	v.renderer.DrawPieces(screen, v.position)

	v.toasts.Draw(screen, v.renderer.BoardSize(), v.scale)
	v.panel.Draw(screen, v.scale)
}

// Layout returns the screen size in device pixels.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Device scale factor: 2.0 on Retina, 1.0 on standard displays
	v.scale = ebiten.Monitor().DeviceScaleFactor()
	if v.scale < 1.0 {
		v.scale = 1.0
	}
	UIScale = v.scale

	w, h := v.WindowSize()
	return int(float64(w) * v.scale), int(float64(h) * v.scale)
}

// FlipAction swaps which side is drawn at the bottom.
func (v *Viewer) FlipAction() {
	v.prefs.Flipped = !v.prefs.Flipped
	v.savePreferences()
}

// CycleThemeAction switches to the next board theme.
func (v *Viewer) CycleThemeAction() {
	v.prefs.Theme = v.prefs.Theme.Next()
	v.savePreferences()
	v.toasts.Show("Theme: "+string(v.prefs.Theme), ToastInfo, toastShort)
}

// ToggleCoordinatesAction shows or hides the rank and file labels.
func (v *Viewer) ToggleCoordinatesAction() {
	v.prefs.ShowCoordinates = !v.prefs.ShowCoordinates
	v.savePreferences()
}

// DefaultsAction restores the default theme, orientation and labels and
// clears the selection. The square size needs a restart to change.
func (v *Viewer) DefaultsAction() {
	size := v.prefs.SquareSize
	v.prefs = storage.DefaultPreferences()
	v.prefs.SquareSize = size
	v.selection = view.None
	v.savePreferences()
}

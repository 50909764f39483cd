package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsMusicToggleJustPressed reports whether the music key was just pressed.
func IsMusicToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

// IsRestartJustPressed reports whether the new game key was just pressed.
func IsRestartJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// Pointer is the position of the mouse or the first touch.
type Pointer struct {
	X, Y float64
	// Inside is false when the mouse is outside the window and no touch is active.
	Inside bool
	// JustPressed is set on the frame the mouse button or the touch went down.
	JustPressed bool
}

// ReadPointer returns the pointer for the current frame. A touch takes
// precedence over the mouse.
func ReadPointer(screenWidth, screenHeight int) Pointer {
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		return Pointer{
			X:           float64(x),
			Y:           float64(y),
			Inside:      true,
			JustPressed: inpututil.TouchPressDuration(touches[0]) == 1,
		}
	}

	x, y := ebiten.CursorPosition()
	return Pointer{
		X:           float64(x),
		Y:           float64(y),
		Inside:      x >= 0 && y >= 0 && x < screenWidth && y < screenHeight,
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

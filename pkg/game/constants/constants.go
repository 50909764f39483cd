package constants

import "time"

const (
	// CubeSize is the edge length of the cube in model units.
	CubeSize float64 = 300
	// CellSize is the edge length of one board cell on the front face.
	CellSize float64 = CubeSize / 3
	// CubeCenterOffsetY moves the cube above the screen center.
	CubeCenterOffsetY float64 = -20
	// LineWidth is the stroke width of the glyphs and the winning line.
	LineWidth float64 = 5

	// ScreenWidth is the default logical screen width.
	ScreenWidth = 520
	// ScreenHeight is the default logical screen height.
	ScreenHeight = 820
)

const (
	// SymbolSteps is the number of steps of the symbol fade-in.
	SymbolSteps = 16
	// SymbolStepDelay is the time between symbol fade-in steps.
	SymbolStepDelay = 12 * time.Millisecond
	// FlipSteps is the number of steps of the cube flip.
	FlipSteps = 30
	// FlipStepDelay is the time between cube flip steps.
	FlipStepDelay = 16 * time.Millisecond
	// ShakeSteps is the number of steps of the win shake.
	ShakeSteps = 20
	// ShakeStepDelay is the time between win shake steps.
	ShakeStepDelay = 30 * time.Millisecond
	// ShakeAmplitude is the initial maximum shake offset in pixels.
	ShakeAmplitude float64 = 12
)

const (
	// OpponentDelay is the pause before the opponent answers a move.
	OpponentDelay = 450 * time.Millisecond
	// ResultGrace is added to the symbol fade-in duration before a result is revealed.
	ResultGrace = 50 * time.Millisecond
)

const (
	// VerifyInterval is the time between verification polls.
	VerifyInterval = 2 * time.Second
	// VerifyMaxAttempts bounds the number of verification polls.
	VerifyMaxAttempts = 90
	// VerifyTimeout bounds a single verification request.
	VerifyTimeout = 5 * time.Second
)

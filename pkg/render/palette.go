package render

import "image/color"

// FaceStyle is how one cube face is painted. A zero StrokeWidth disables the
// outline and a zero GridWidth disables the decorative grid.
type FaceStyle struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	Grid        color.RGBA
	GridWidth   float64
}

type Palette struct {
	// Background is the color behind the cube.
	Background color.RGBA
	// Faces is indexed by FaceKind.
	Faces [faceKindCount]FaceStyle

	GridLine    color.RGBA
	HoverFill   color.RGBA
	HoverStroke color.RGBA
	HoverInner  color.RGBA

	X       color.RGBA
	XGlow   color.RGBA
	O       color.RGBA
	OGlow   color.RGBA
	Win     color.RGBA
	WinGlow color.RGBA

	TextPrimary   color.RGBA
	TextSecondary color.RGBA
	Loss          color.RGBA
	Draw          color.RGBA
	Accent        color.RGBA
}

// GlowBase is the color glow passes fade from.
func (p Palette) GlowBase() color.RGBA {
	return p.Faces[FaceFront].Fill
}

func DefaultPalette() Palette {
	cubeTop := MustHex("#1E2438")
	return Palette{
		Background: MustHex("#0B0E17"),
		Faces: [faceKindCount]FaceStyle{
			FaceFront: {
				Fill: cubeTop,
			},
			FaceBack: {
				Fill:        cubeTop,
				Stroke:      Darken(cubeTop, 0.9),
				StrokeWidth: 2,
			},
			FaceTop: {
				Fill:        MustHex("#1A1F35"),
				Stroke:      MustHex("#2A3555"),
				StrokeWidth: 1,
				Grid:        MustHex("#3A4575"),
				GridWidth:   1,
			},
			FaceBottom: {
				Fill:        MustHex("#121728"),
				Stroke:      MustHex("#222740"),
				StrokeWidth: 1,
				Grid:        MustHex("#2A3050"),
				GridWidth:   1,
			},
			FaceRight: {
				Fill:        MustHex("#151A2A"),
				Stroke:      MustHex("#252A45"),
				StrokeWidth: 1,
				Grid:        MustHex("#2A3055"),
				GridWidth:   1,
			},
			FaceLeft: {
				Fill:        MustHex("#181D30"),
				Stroke:      MustHex("#282D48"),
				StrokeWidth: 1,
				Grid:        MustHex("#303560"),
				GridWidth:   1,
			},
		},
		GridLine:      MustHex("#3D4565"),
		HoverFill:     MustHex("#2A3555"),
		HoverStroke:   MustHex("#7B68EE"),
		HoverInner:    MustHex("#5A4AAA"),
		X:             MustHex("#FF6B9D"),
		XGlow:         MustHex("#FF8FB3"),
		O:             MustHex("#00D4FF"),
		OGlow:         MustHex("#66E5FF"),
		Win:           MustHex("#00E5A0"),
		WinGlow:       MustHex("#66F5C8"),
		TextPrimary:   MustHex("#E8ECF5"),
		TextSecondary: MustHex("#B8C0D8"),
		Loss:          MustHex("#FF6B6B"),
		Draw:          MustHex("#FFD166"),
		Accent:        MustHex("#7B68EE"),
	}
}

package objects

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cbodonnell/tictaccube/client/canvas"
	"github.com/cbodonnell/tictaccube/client/input"
	"github.com/cbodonnell/tictaccube/pkg/session"
)

// CubeObject draws the game cube and forwards the pointer to the session.
type CubeObject struct {
	*BaseObject

	session *session.Session
	canvas  *canvas.Canvas
	pointer func() input.Pointer
	onMove  func()
	inside  bool
}

type NewCubeObjectOptions struct {
	Session *session.Session
	// Pointer reads the pointer for the current frame.
	Pointer func() input.Pointer
	// OnMove is called after the player placed a mark. Optional.
	OnMove func()
	ZIndex int
}

func NewCubeObject(id string, opts NewCubeObjectOptions) *CubeObject {
	onMove := opts.OnMove
	if onMove == nil {
		onMove = func() {}
	}
	return &CubeObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		session:    opts.Session,
		canvas:     canvas.New(),
		pointer:    opts.Pointer,
		onMove:     onMove,
	}
}

func (o *CubeObject) Update() error {
	if o.pointer == nil {
		return nil
	}
	p := o.pointer()
	if !p.Inside {
		if o.inside {
			o.session.PointerLeave()
		}
		o.inside = false
		return nil
	}

	o.inside = true
	o.session.PointerMove(p.X, p.Y)
	if p.JustPressed && o.session.Click(p.X, p.Y) {
		o.onMove()
	}
	return nil
}

func (o *CubeObject) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	o.session.SetViewport(float64(bounds.Dx()), float64(bounds.Dy()))
	o.canvas.SetTarget(screen)
	o.session.Draw(o.canvas)
}

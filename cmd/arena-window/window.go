package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/game"
	"github.com/lixenwraith/arena-fighter/input"
	"github.com/lixenwraith/arena-fighter/render"
	"github.com/lixenwraith/arena-fighter/vmath"
)

const (
	lineHeight      = 16
	messageDuration = 2 * time.Second
	healthBarHeight = 4
)

// commandKeys maps window keys to the shared key vocabulary; steering is polled separately
// Checked in order, so commands pressed on the same frame apply deterministically
var commandKeys = []struct {
	key ebiten.Key
	cmd input.Key
}{
	{ebiten.KeyEnter, input.KeyConfirm},
	{ebiten.KeyEscape, input.KeyBack},
	{ebiten.KeyE, input.KeyShop},
	{ebiten.KeyP, input.KeyPause},
	{ebiten.KeyQ, input.KeyQuit},
	{ebiten.KeyBackquote, input.KeyDebug},
	{ebiten.KeyDigit1, input.KeyBuy1},
	{ebiten.KeyDigit2, input.KeyBuy2},
	{ebiten.KeyDigit3, input.KeyBuy3},
	{ebiten.KeyDigit4, input.KeyBuy4},
}

// window implements ebiten.Game over a session
// Real key-up events make the terminal hold emulation unnecessary here
type window struct {
	sess  *game.Session
	hud   *render.HUD
	frame render.Frame
	debug bool

	message      string
	messageUntil time.Time
}

func newWindow(sess *game.Session, debug bool) *window {
	return &window{sess: sess, hud: render.NewHUD(), debug: debug}
}

func (w *window) Update() error {
	now := time.Now()
	for _, binding := range commandKeys {
		if !inpututil.IsKeyJustPressed(binding.key) {
			continue
		}
		intent := input.IntentFor(binding.cmd)
		if intent.Type == input.IntentNone {
			continue
		}
		out, err := w.sess.Handle(intent)
		if err != nil {
			w.notify(err.Error(), now)
		}
		switch out {
		case game.OutcomeQuit:
			return ebiten.Termination
		case game.OutcomeToggleDebug:
			w.debug = !w.debug
		}
	}

	w.sess.Update(1/float64(ebiten.TPS()), w.frameInput())

	for _, ev := range w.sess.World().Events.Consume() {
		if msg := w.hud.EventMessage(ev); msg != "" {
			w.notify(msg, now)
		}
	}
	return nil
}

func (w *window) frameInput() engine.Input {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	cx, cy := ebiten.CursorPosition()
	aim := vmath.V2(float64(cx), float64(cy)).Add(w.viewOrigin())

	return engine.Input{
		Move: input.MoveVector(
			pressed(ebiten.KeyW, ebiten.KeyK, ebiten.KeyArrowUp),
			pressed(ebiten.KeyS, ebiten.KeyJ, ebiten.KeyArrowDown),
			pressed(ebiten.KeyA, ebiten.KeyH, ebiten.KeyArrowLeft),
			pressed(ebiten.KeyD, ebiten.KeyL, ebiten.KeyArrowRight),
		),
		FireHeld: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Aim:      aim,
	}
}

// viewOrigin is the world point drawn at the window's top-left corner
func (w *window) viewOrigin() vmath.Vec2 {
	world := w.sess.World()
	if world.Camera != nil {
		return world.Camera.Offset()
	}
	return world.Arena.Min
}

func (w *window) notify(msg string, now time.Time) {
	w.message = msg
	w.messageUntil = now.Add(messageDuration)
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)

	if lines := w.hud.MenuLines(w.sess); lines != nil {
		bounds := screen.Bounds()
		top := (bounds.Dy() - len(lines)*lineHeight) / 2
		for i, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, bounds.Dx()/3, top+i*lineHeight)
		}
	} else {
		w.drawFrame(screen)
	}

	if time.Now().Before(w.messageUntil) {
		ebitenutil.DebugPrintAt(screen, w.message, 0, screen.Bounds().Dy()-lineHeight)
	}
}

func (w *window) drawFrame(screen *ebiten.Image) {
	render.Capture(w.sess.World(), w.sess.Currency(), &w.frame)
	f := &w.frame
	origin := f.View.Min

	circle := func(c render.Circle) {
		p := c.Pos.Sub(origin)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(c.Radius), c.Color, true)
	}

	for _, e := range f.Enemies {
		circle(e)
	}
	if f.Boss != nil {
		circle(f.Boss.Circle)
		p := f.Boss.Pos.Sub(origin)
		width := float32(f.Boss.Radius * 2)
		x := float32(p.X - f.Boss.Radius)
		y := float32(p.Y-f.Boss.Radius) - 2*healthBarHeight
		vector.DrawFilledRect(screen, x, y, width, healthBarHeight, color.Gray{Y: 60}, false)
		vector.DrawFilledRect(screen, x, y, width*float32(f.Boss.Health), healthBarHeight, f.Boss.Color, false)
	}
	for _, pr := range f.Projectiles {
		circle(pr)
	}
	circle(f.Player)

	ebitenutil.DebugPrint(screen, w.hud.StatusLine(f.Stats))
	if w.debug {
		ebitenutil.DebugPrintAt(screen, w.hud.DebugLine(f.Stats), 0, lineHeight)
	}
	if w.sess.Paused() {
		b := screen.Bounds()
		ebitenutil.DebugPrintAt(screen, "PAUSED", b.Dx()/2-18, b.Dy()/2)
	}
}

func (w *window) Layout(_, _ int) (int, int) {
	cfg := w.sess.World().Config
	return int(cfg.Screen.Width), int(cfg.Screen.Height)
}

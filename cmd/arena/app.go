package main

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/game"
	"github.com/lixenwraith/arena-fighter/input"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/render"
)

var (
	errQuit  = errors.New("quit")
	errPanic = errors.New("panic")
)

// messageDuration is how long a status message stays on the HUD
const messageDuration = 2 * time.Second

// app owns the terminal front-end: one goroutine polls tcell, the other runs frames
// Only the frame goroutine touches the session
type app struct {
	screen tcell.Screen
	sess   *game.Session
	input  *input.Machine
	buf    *render.RenderBuffer
	hud    *render.HUD
	frame  render.Frame
	proj   render.Projection
	debug  bool

	message      string
	messageUntil time.Time
}

func newApp(screen tcell.Screen, sess *game.Session, debug bool) *app {
	w, h := screen.Size()
	return &app{
		screen: screen,
		sess:   sess,
		input:  input.NewMachine(),
		buf:    render.NewRenderBuffer(w, h),
		hud:    render.NewHUD(),
		proj:   render.FitProjection(render.View(sess.World()), w, h),
		debug:  debug,
	}
}

func (a *app) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 256)

	g.Go(guard("poller", func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil // Screen finalised
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}))

	g.Go(guard("frame loop", func() error {
		// PollEvent returns nil once the screen is finalised, releasing the poller
		defer a.screen.Fini()
		return a.loop(ctx, events)
	}))

	return g.Wait()
}

// guard turns a panic in fn into an error carrying the stack
// recover only works on the panicking goroutine, so each errgroup body needs its own
func guard(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w in %s: %v\n%s", errPanic, name, r, debug.Stack())
			}
		}()
		return fn()
	}
}

func (a *app) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if err := a.handleEvent(ev); err != nil {
				return err
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.tick(now, dt)
		}
	}
}

// tick runs one frame: input, simulation, events, draw
func (a *app) tick(now time.Time, dt float64) {
	a.sess.Update(dt, a.frameInput(now))
	a.drainEvents(now)
	a.draw(now)
}

// frameInput maps the cursor cell through the current view, so the aim tracks a scrolling camera
func (a *app) frameInput(now time.Time) engine.Input {
	w, h := a.buf.Size()
	a.proj = render.FitProjection(render.View(a.sess.World()), w, h)
	return a.input.Frame(now, a.proj.ToWorld)
}

func (a *app) handleEvent(ev tcell.Event) error {
	now := time.Now()
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.buf.Resize(w, h)
		a.screen.Sync()

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.input.Pointer(x, y, ev.Buttons()&tcell.Button1 != 0)

	case *tcell.EventKey:
		intent := a.input.Press(translateKey(ev), now)
		if intent.Type == input.IntentNone {
			return nil
		}
		prev := a.sess.State()
		out, err := a.sess.Handle(intent)
		if err != nil {
			a.notify(err.Error(), now)
		}
		if a.sess.State() != prev {
			a.input.Reset()
		}
		switch out {
		case game.OutcomeQuit:
			return errQuit
		case game.OutcomeToggleDebug:
			a.debug = !a.debug
		}
	}
	return nil
}

func translateKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEnter:
		return input.KeyConfirm
	case tcell.KeyEscape:
		return input.KeyBack
	case tcell.KeyCtrlC:
		return input.KeyQuit
	case tcell.KeyRune:
		return input.KeyForRune(ev.Rune())
	}
	return input.KeyNone
}

func (a *app) drainEvents(now time.Time) {
	for _, ev := range a.sess.World().Events.Consume() {
		if msg := a.hud.EventMessage(ev); msg != "" {
			a.notify(msg, now)
		}
	}
}

func (a *app) notify(msg string, now time.Time) {
	a.message = msg
	a.messageUntil = now.Add(messageDuration)
}

func (a *app) draw(now time.Time) {
	if lines := a.hud.MenuLines(a.sess); lines != nil {
		a.buf.Clear()
		w, h := a.buf.Size()
		top := (h - len(lines)) / 2
		for i, line := range lines {
			left := (w - runewidth.StringWidth(line)) / 2
			a.buf.Text(max(left, 0), top+i, line, render.HUDText)
		}
	} else {
		render.Capture(a.sess.World(), a.sess.Currency(), &a.frame)
		a.proj = a.buf.DrawFrame(&a.frame, a.hud, a.debug)
		if a.sess.Paused() {
			w, h := a.buf.Size()
			a.buf.Text(w/2-3, h/2, "PAUSED", render.HUDText)
		}
	}

	if now.Before(a.messageUntil) {
		_, h := a.buf.Size()
		a.buf.Text(0, h-1, a.message, render.HUDText)
	}

	a.flush()
}

// flush copies the buffer to the tcell screen, skipping wide-rune tails
func (a *app) flush() {
	w, h := a.buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := a.buf.Get(x, y)
			if c.Rune == 0 && x > 0 && runewidth.RuneWidth(a.buf.Get(x-1, y).Rune) == 2 {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(render.TcellColor(c.Fg)).
				Background(render.TcellColor(c.Bg))
			a.screen.SetContent(x, y, r, nil, style)
		}
	}
	a.screen.Show()
}

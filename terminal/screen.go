// Package terminal drives the real terminal through tcell.
//
// Open acquires raw mode and the alternate screen; Close releases them and is safe to call
// from every exit path. Paint is the only place frames become escape sequences, and Pump is
// the only reader of key events.
package terminal

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/snek/input"
	"github.com/lixenwraith/snek/render"
	"github.com/lixenwraith/snek/theme"
)

var (
	// ErrNotTerminal is returned by Open when stdin or stdout is not interactive
	ErrNotTerminal = errors.New("not an interactive terminal")
	// ErrClosed is returned by Paint after Close
	ErrClosed = errors.New("screen closed")
)

// Screen paints frames and reads keys
type Screen struct {
	mu     sync.Mutex
	scr    tcell.Screen
	pulse  *pulse
	closed bool
	once   sync.Once
}

// Open puts the controlling terminal into raw mode on the alternate screen
func Open() (*Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := scr.Init(); err != nil {
		// Init may fail after switching modes
		resetTerminalMode()
		return nil, errors.Wrap(err, "init screen")
	}
	return NewScreen(scr), nil
}

// NewScreen wraps an initialized tcell screen
func NewScreen(scr tcell.Screen) *Screen {
	scr.HideCursor()
	scr.SetStyle(tcell.StyleDefault)
	scr.Clear()
	return &Screen{scr: scr, pulse: newPulse()}
}

// Close restores the terminal; repeated calls are no-ops
func (s *Screen) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		s.scr.Fini()
	})
}

// Size returns the terminal size in columns and rows
func (s *Screen) Size() (cols, rows int) {
	return s.scr.Size()
}

// Redraw forces a full repaint on the next Show
func (s *Screen) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.scr.Sync()
	}
}

// Paint draws f from the top-left corner
func (s *Screen) Paint(f render.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	s.scr.Clear()
	if f.Rows == 0 {
		s.scr.Show()
		return nil
	}

	top := 0
	if f.Header != "" && !f.Bordered {
		drawText(s.scr, 0, 0, f.Header, tcell.StyleDefault.Bold(true))
		top = 1
	}

	for y := 0; y < f.Rows; y++ {
		x := 0
		for cx := 0; cx < f.Cols; cx++ {
			g := f.At(cx, y)
			x = drawText(s.scr, x, top+y, g.Text, styleFor(g.Fg))
		}
	}

	if f.Header != "" && f.Bordered {
		// Stop short of the top-right corner
		limit := runewidth.StringWidth(f.Row(0)) - 1
		drawText(s.scr, theme.CellWidth, 0, runewidth.Truncate(f.Header, limit-theme.CellWidth, ""), tcell.StyleDefault.Bold(true))
	}

	if len(f.Banner) > 0 {
		s.drawBanner(f, top)
	}

	s.scr.Show()
	return nil
}

// drawBanner centers the banner over the field; the first line pulses
func (s *Screen) drawBanner(f render.Frame, top int) {
	width := runewidth.StringWidth(f.Row(0))
	y := top + f.Rows/2 - len(f.Banner)/2
	if y < top {
		y = top
	}

	title := f.BannerColor
	if f.BannerColor.Set && f.AccentColor.Set {
		title = theme.Color{Color: f.BannerColor.BlendLab(f.AccentColor.Color, s.pulse.next(time.Now())).Clamped(), Set: true}
	}

	for i, line := range f.Banner {
		if line == "" {
			continue
		}
		x := (width - runewidth.StringWidth(line)) / 2
		if x < 0 {
			x = 0
		}
		style := styleFor(f.BannerColor)
		if i == 0 {
			style = styleFor(title).Bold(true)
		}
		drawText(s.scr, x, y+i, line, style)
	}
}

// Pump translates key events into queue events until ctx is done or the screen is closed
func (s *Screen) Pump(ctx context.Context, q *input.Queue, keys *input.KeyTable) {
	for {
		ev := s.scr.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if e, ok := keys.Translate(ev); ok {
				q.Push(e)
			}
		case *tcell.EventResize:
			q.Push(input.Do(input.CmdRedraw))
		}
	}
}

// drawText writes text starting at column x and returns the column after it
func drawText(scr tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		scr.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func styleFor(c theme.Color) tcell.Style {
	if !c.Set {
		return tcell.StyleDefault
	}
	r, g, b := c.Clamped().RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellbridge/core"
)

// Screen is a Canvas over a tcell.Screen
type Screen struct {
	scr tcell.Screen
}

// NewScreen initializes the real terminal and registers crash restoration
func NewScreen() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	scr.SetStyle(tcell.StyleDefault)
	scr.HideCursor()
	core.SetCrashRestore(scr.Fini)
	return &Screen{scr: scr}, nil
}

// WrapScreen adopts an initialized tcell.Screen, typically a simulation screen
func WrapScreen(scr tcell.Screen) *Screen {
	return &Screen{scr: scr}
}

// Tcell exposes the underlying screen
func (s *Screen) Tcell() tcell.Screen {
	return s.scr
}

// Size implements Canvas
func (s *Screen) Size() (int, int) {
	return s.scr.Size()
}

// SetCell implements Canvas
func (s *Screen) SetCell(x, y int, c Cell) {
	s.scr.SetContent(x, y, c.Rune, nil, c.Style().Tcell())
}

// Clear blanks the screen
func (s *Screen) Clear() {
	s.scr.Clear()
}

// Show makes pending changes visible
func (s *Screen) Show() {
	s.scr.Show()
}

// Sync forces a full repaint, used after resize
func (s *Screen) Sync() {
	s.scr.Sync()
}

// Fini restores the terminal
func (s *Screen) Fini() {
	core.SetCrashRestore(nil)
	s.scr.Fini()
}

// Events polls the screen on a background goroutine until ctx ends or the screen finalizes
func (s *Screen) Events(ctx context.Context) <-chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	core.Go(func() {
		defer close(ch)
		for {
			ev := s.scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	})
	return ch
}

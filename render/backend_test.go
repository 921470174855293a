package render

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellbridge/bridge"
	"github.com/lixenwraith/cellbridge/engine"
	"github.com/lixenwraith/cellbridge/layout"
	"github.com/lixenwraith/cellbridge/terminal"
)

var quietLogger = log.New(io.Discard)

var (
	panel = layout.Color{R: 0, G: 0, B: 128, A: 255}
	ink   = layout.Color{R: 255, G: 255, B: 0, A: 255}
)

// newTestScene lays out an 80x24 terminal: a bordered panel with padded text
func newTestScene(t *testing.T) (*engine.World, *Backend, *terminal.Buffer) {
	t.Helper()
	world := engine.NewWorld()
	e := bridge.Use(world, bridge.Config{Logger: quietLogger})

	buf := terminal.NewBuffer(80, 24)
	backend := NewBackend(buf, DefaultTheme(), nil, quietLogger)
	if err := backend.Attach(e); err != nil {
		t.Fatalf("attach: %v", err)
	}

	surface := world.CreateEntity()
	engine.GetStore[bridge.Surface](world).Set(surface, bridge.Surface{Width: 40, Height: 24})

	node := world.CreateEntity()
	world.SetParent(node, surface)
	engine.GetStore[bridge.Binding](world).Set(node, bridge.Binding{Layout: func(p *bridge.Pass, _ bridge.Children) {
		p.Element(layout.ElementDeclaration{
			Layout: layout.LayoutConfig{
				Sizing:  layout.Sizing{Width: layout.Grow(), Height: layout.Grow()},
				Padding: layout.PaddingAll(1),
			},
			BackgroundColor: panel,
			Border:          layout.BorderConfig{Width: layout.BorderWidth{Left: 1, Right: 1, Top: 1, Bottom: 1}},
		}, func() {
			p.Text("hi", layout.TextConfig{TextColor: ink, UserData: TextAttr{Bold: true}})
		})
	}})
	return world, backend, buf
}

// TestBackendEndToEnd verifies fill, border, text placement and inherited background
func TestBackendEndToEnd(t *testing.T) {
	world, backend, buf := newTestScene(t)
	world.Progress(16 * time.Millisecond)

	if !backend.Drawn() {
		t.Fatal("Expected frame drawn")
	}

	top := buf.Row(0)
	if want := "┌" + strings.Repeat("─", 78) + "┐"; top != want {
		t.Errorf("Expected top border, got %q", top)
	}
	if got := buf.Cell(0, 23).Rune; got != '└' {
		t.Errorf("Expected bottom-left corner, got %q", got)
	}

	h := buf.Cell(2, 1)
	if h.Rune != 'h' || buf.Cell(3, 1).Rune != 'i' {
		t.Fatalf("Expected text at (2,1), got row %q", buf.Row(1))
	}
	if h.Fg != terminal.ColorFromRGB(255, 255, 0) {
		t.Errorf("Expected yellow fg, got %+v", h.Fg)
	}
	if h.Bg != terminal.ColorFromRGB(0, 0, 128) {
		t.Errorf("Expected inherited panel bg, got %+v", h.Bg)
	}
	if h.Attrs&terminal.AttrBold == 0 {
		t.Error("Expected bold text")
	}

	fill := buf.Cell(10, 10)
	if fill.Rune != ' ' || fill.Bg != terminal.ColorFromRGB(0, 0, 128) || !fill.Fg.IsDefault() {
		t.Errorf("Expected panel fill, got %+v", fill)
	}
	if border := buf.Cell(0, 5); border.Rune != '│' || border.Bg != fill.Bg {
		t.Errorf("Expected border on panel bg, got %+v", border)
	}
}

// TestBackendSkipsClean verifies clean snapshots leave the canvas untouched
func TestBackendSkipsClean(t *testing.T) {
	buf := terminal.NewBuffer(4, 1)
	buf.SetCell(0, 0, terminal.Cell{Rune: 'x'})
	backend := NewBackend(buf, Theme{}, nil, quietLogger)

	backend.Render(&bridge.RenderSnapshot{})
	backend.Render(nil)

	if buf.Cell(0, 0).Rune != 'x' || backend.Drawn() {
		t.Error("Expected canvas untouched for clean snapshot")
	}
}

// TestBackendDimAndBorderStyles verifies alpha dimming and border glyph selection
func TestBackendDimAndBorderStyles(t *testing.T) {
	buf := terminal.NewBuffer(20, 6)
	backend := NewBackend(buf, Theme{}, terminal.NewPalette(terminal.ColorMode256), quietLogger)

	snap := &bridge.RenderSnapshot{Dirty: true, Commands: []layout.RenderCommand{
		rect(0, 0, 2, 3, layout.Color{R: 255, A: 64}),
		{
			Type:        layout.CommandBorder,
			BoundingBox: layout.BoundingBox{X: 0, Y: 0, Width: 2, Height: 2},
			Border:      layout.BorderData{Width: layout.BorderWidth{Top: 2, Left: 1, Right: 1, Bottom: 1}},
		},
		{
			Type:        layout.CommandBorder,
			BoundingBox: layout.BoundingBox{X: 5, Y: 0, Width: 2, Height: 2},
			Border: layout.BorderData{
				Width:        layout.BorderWidth{Top: 1, Left: 1, Right: 1, Bottom: 1},
				CornerRadius: layout.CornerRadius{TopLeft: 1},
				Color:        ink,
			},
		},
		{
			Type:        layout.CommandBorder,
			BoundingBox: layout.BoundingBox{X: 8, Y: 0, Width: 2, Height: 2},
		},
		{Type: layout.CommandImage, BoundingBox: layout.BoundingBox{X: 0, Y: 4, Width: 10, Height: 1}},
	}}
	backend.Render(snap)

	if got := buf.Cell(1, 2); got.Attrs&terminal.AttrDim == 0 || got.Bg.Kind != terminal.ColorKindIndexed {
		t.Errorf("Expected dimmed indexed fill, got %+v", got)
	}
	if got := buf.Cell(0, 0).Rune; got != '╔' {
		t.Errorf("Expected double border for width 2, got %q", got)
	}
	if got := buf.Cell(0, 0); !got.Fg.IsDefault() {
		t.Errorf("Expected default fg for zero border color, got %+v", got.Fg)
	}
	if got := buf.Cell(10, 0); got.Rune != '╭' || got.Fg.IsDefault() {
		t.Errorf("Expected colored rounded corner, got %+v", got)
	}
	if buf.Touched(16, 0) {
		t.Error("Expected zero-width border to draw nothing")
	}
	if buf.Touched(0, 4) {
		t.Error("Expected image command skipped")
	}
}

// TestBackendClipAndScrollbar verifies clipping and the scrollbar thumb position
func TestBackendClipAndScrollbar(t *testing.T) {
	buf := terminal.NewBuffer(12, 6)
	backend := NewBackend(buf, DefaultTheme(), nil, quietLogger)

	box := layout.BoundingBox{X: 0, Y: 0, Width: 5, Height: 4}
	snap := &bridge.RenderSnapshot{
		Dirty: true,
		Commands: []layout.RenderCommand{
			{Type: layout.CommandClipStart, ID: 7, BoundingBox: box},
			{Type: layout.CommandText, BoundingBox: layout.BoundingBox{X: 0, Y: 5, Width: 2, Height: 1},
				Text: layout.TextData{StringContents: "hidden", TextColor: ink}},
			{Type: layout.CommandClipEnd, ID: 7, BoundingBox: box},
		},
		Scroll: []layout.ScrollContainerData{{
			ID:                  7,
			ScrollPosition:      layout.Vector2{Y: -6},
			ContainerDimensions: layout.Dimensions{Width: 5, Height: 4},
			ContentDimensions:   layout.Dimensions{Width: 5, Height: 16},
			Config:              layout.ClipConfig{Vertical: true},
			Found:               true,
		}},
	}
	backend.Render(snap)

	if buf.Touched(0, 5) {
		t.Error("Expected text below the clip to be dropped")
	}
	col := make([]rune, 4)
	for y := range col {
		col[y] = buf.Cell(9, y).Rune
	}
	if string(col) != "││█│" {
		t.Errorf("Expected scrollbar %q, got %q", "││█│", string(col))
	}

	backend.SetTheme(Theme{Scrollbars: false, AspectRatio: 2, AlphaAsDim: true, Border: terminal.Glyphs(terminal.LineHeavy)})
	backend.Render(snap)
	if buf.Touched(9, 2) {
		t.Error("Expected no scrollbar when disabled")
	}
}

// TestPresenterFlushesDrawnFrames verifies the buffer reaches a simulation screen only after drawing
func TestPresenterFlushesDrawnFrames(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(80, 24)

	world, backend, buf := newTestScene(t)
	world.AddSystem(engine.PhasePostFrame, NewPresenter(backend, buf, terminal.WrapScreen(sim)))
	world.Progress(16 * time.Millisecond)

	r, _, _, _ := sim.GetContent(2, 1)
	if r != 'h' {
		t.Errorf("Expected 'h' on screen, got %q", r)
	}
}

// TestSetThemeRemeasuresText verifies a new aspect ratio reaches text widths on the next frame
func TestSetThemeRemeasuresText(t *testing.T) {
	world := engine.NewWorld()
	e := bridge.Use(world, bridge.Config{Logger: quietLogger})

	theme := DefaultTheme()
	theme.AspectRatio = 2
	backend := NewBackend(terminal.NewBuffer(80, 24), theme, nil, quietLogger)
	if err := backend.Attach(e); err != nil {
		t.Fatalf("attach: %v", err)
	}

	surface := world.CreateEntity()
	engine.GetStore[bridge.Surface](world).Set(surface, bridge.Surface{Width: 80, Height: 24})
	node := world.CreateEntity()
	world.SetParent(node, surface)
	engine.GetStore[bridge.Binding](world).Set(node, bridge.Binding{Layout: func(p *bridge.Pass, _ bridge.Children) {
		p.Text("hello world", layout.TextConfig{TextColor: ink})
	}})

	textWidth := func() float32 {
		t.Helper()
		for _, cmd := range e.Snapshot().Commands {
			if cmd.Type == layout.CommandText {
				return cmd.BoundingBox.Width
			}
		}
		t.Fatal("Expected a text command")
		return 0
	}

	world.Progress(16 * time.Millisecond)
	if got, want := textWidth(), MeasureText("hello world", 2).Width; got != want {
		t.Fatalf("Expected width %v at 2:1, got %v", want, got)
	}

	theme.AspectRatio = 1
	backend.SetTheme(theme)
	if n := e.Layout().MeasureTextCacheLen(); n != 0 {
		t.Errorf("Expected empty measure cache after ratio change, got %d entries", n)
	}

	world.Progress(16 * time.Millisecond)
	if got, want := textWidth(), MeasureText("hello world", 1).Width; got != want {
		t.Errorf("Expected width %v at 1:1, got %v", want, got)
	}

	// Same ratio keeps cached sizes
	backend.SetTheme(theme)
	if e.Layout().MeasureTextCacheLen() == 0 {
		t.Error("Expected measure cache kept when ratio is unchanged")
	}
}

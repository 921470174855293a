package main

import (
	"github.com/lixenwraith/cellbridge/bridge"
	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/engine"
	"github.com/lixenwraith/cellbridge/layout"
	"github.com/lixenwraith/cellbridge/render"
)

var (
	colorHeader = layout.Color{R: 40, G: 60, B: 110, A: 255}
	colorPanel  = layout.Color{R: 20, G: 20, B: 28, A: 255}
	colorRowAlt = layout.Color{R: 32, G: 32, B: 44, A: 255}
	colorShade  = layout.Color{R: 0, G: 0, B: 0, A: 96}
	colorBorder = layout.Color{R: 120, G: 140, B: 200, A: 255}
	colorText   = layout.Color{R: 220, G: 220, B: 220, A: 255}
	colorMuted  = layout.Color{R: 140, G: 140, B: 150, A: 255}
	colorAccent = layout.Color{R: 255, G: 200, B: 80, A: 255}
)

var (
	siteList  = bridge.NewSite()
	siteHints = bridge.NewSite()
)

var keyHints = []string{"j/k line", "^D/^U half page", "gg/G ends", "p pause", "q quit"}

type scene struct {
	surface core.Entity
	list    core.Entity
	listID  layout.ElementID

	cols, rows int
}

// buildScene creates a surface holding a header, a scrollable list of row entities and a footer
// The rows sit under an unbound group entity, which is laid out transparently
func buildScene(w *engine.World, rowCount int) *scene {
	bindings := engine.GetStore[bridge.Binding](w)
	s := &scene{surface: w.CreateEntity()}

	app := engine.With(w.NewEntity().ChildOf(s.surface), bindings, bridge.Binding{Layout: appLayout}).Build()

	engine.With(w.NewEntity().ChildOf(app), bindings, bridge.Binding{Layout: s.headerLayout}).Build()

	s.list = engine.With(w.NewEntity().ChildOf(app), bindings, bridge.Binding{Layout: s.listLayout}).Build()
	s.listID = bridge.AutoID(s.list, siteList)

	group := w.NewEntity().ChildOf(s.list).Build()
	for i := range rowCount {
		engine.With(w.NewEntity().ChildOf(group), bindings, bridge.Binding{Layout: rowLayout(i)}).Build()
	}

	engine.With(w.NewEntity().ChildOf(app), bindings, bridge.Binding{Layout: footerLayout}).Build()
	return s
}

// resize converts terminal cells into layout units for the surface
func (s *scene) resize(w *engine.World, cols, rows int, aspect float32) {
	s.cols, s.rows = cols, rows
	if aspect <= 0 {
		aspect = 1
	}
	engine.GetStore[bridge.Surface](w).Set(s.surface, bridge.Surface{
		Width:  float32(cols) / aspect,
		Height: float32(rows),
	})
}

func appLayout(p *bridge.Pass, children bridge.Children) {
	p.Element(layout.ElementDeclaration{
		Layout: layout.LayoutConfig{
			Sizing:    layout.Sizing{Width: layout.Grow(), Height: layout.Grow()},
			Direction: layout.TopToBottom,
		},
		BackgroundColor: colorPanel,
	}, children.Emit)
}

func (s *scene) headerLayout(p *bridge.Pass, _ bridge.Children) {
	data := p.Layout().GetScrollContainerData(s.listID)
	p.Element(layout.ElementDeclaration{
		Layout: layout.LayoutConfig{
			Sizing:         layout.Sizing{Width: layout.Grow(), Height: layout.Fixed(1)},
			Padding:        layout.Padding{Left: 1, Right: 1},
			ChildGap:       2,
			ChildAlignment: layout.ChildAlignment{Y: layout.AlignYCenter},
		},
		BackgroundColor: colorHeader,
	}, func() {
		p.Text("cellbridge", layout.TextConfig{TextColor: colorAccent, UserData: render.TextAttr{Bold: true}})
		if data.Found {
			p.Textf(layout.TextConfig{TextColor: colorText}, "offset %.0f of %.0f",
				-data.ScrollPosition.Y, max(0, data.ContentDimensions.Height-data.ContainerDimensions.Height))
		}
	})
}

func (s *scene) listLayout(p *bridge.Pass, children bridge.Children) {
	p.OpenSite(siteList, layout.ElementDeclaration{
		ID: s.listID,
		Layout: layout.LayoutConfig{
			Sizing:    layout.Sizing{Width: layout.Grow(), Height: layout.Grow()},
			Padding:   layout.PaddingAll(1),
			Direction: layout.TopToBottom,
		},
		Border: layout.BorderConfig{
			Color: colorBorder,
			Width: layout.BorderWidth{Left: 1, Right: 1, Top: 1, Bottom: 1},
		},
		CornerRadius: layout.CornerRadius{TopLeft: 1, TopRight: 1, BottomLeft: 1, BottomRight: 1},
		Clip:         layout.ClipConfig{Vertical: true},
	})
	children.Emit()
	p.Close()
}

func rowLayout(index int) bridge.LayoutFunc {
	return func(p *bridge.Pass, _ bridge.Children) {
		bg := colorPanel
		if index%2 == 1 {
			bg = colorRowAlt
		}
		p.Element(layout.ElementDeclaration{
			Layout: layout.LayoutConfig{
				Sizing:   layout.Sizing{Width: layout.Grow(), Height: layout.Fixed(1)},
				ChildGap: 1,
			},
			BackgroundColor: bg,
		}, func() {
			p.Textf(layout.TextConfig{TextColor: colorMuted}, "%4d", index)
			p.Textf(layout.TextConfig{TextColor: colorText}, "entity %d", p.Entity())
		})
	}
}

func footerLayout(p *bridge.Pass, _ bridge.Children) {
	p.Element(layout.ElementDeclaration{
		Layout: layout.LayoutConfig{
			Sizing:   layout.Sizing{Width: layout.Grow(), Height: layout.Fixed(1)},
			Padding:  layout.Padding{Left: 1, Right: 1},
			ChildGap: 3,
		},
		BackgroundColor: colorShade,
	}, func() {
		for i, hint := range keyHints {
			p.OpenIndexed(siteHints, uint32(i), layout.ElementDeclaration{})
			p.Text(hint, layout.TextConfig{TextColor: colorMuted, UserData: render.TextAttr{Dim: true}})
			p.Close()
		}
	})
}

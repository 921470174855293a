package bridge

import (
	"iter"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/cellbridge/core"
)

// Children is the handle a binding uses to place its entity's children
type Children struct {
	pass   *Pass
	parent core.Entity
}

// Emit lays out the children at the current position in the element tree
// Outside an active pass it logs a warning and does nothing
func (c Children) Emit() {
	if c.pass == nil || !c.pass.active {
		logger := log.Default()
		if c.pass != nil {
			logger = c.pass.logger
		}
		logger.Warn("children emitted outside a layout pass", "parent", c.parent)
		return
	}
	for child := range c.pass.world.Children(c.parent) {
		c.pass.visit(child)
	}
}

// Seq yields the children in hierarchy order without laying them out
func (c Children) Seq() iter.Seq[core.Entity] {
	if c.pass == nil {
		return func(func(core.Entity) bool) {}
	}
	return c.pass.world.Children(c.parent)
}

// Len returns the number of direct children
func (c Children) Len() int {
	if c.pass == nil {
		return 0
	}
	return c.pass.world.ChildCount(c.parent)
}

// Walk lays out root and its descendants depth-first
func (p *Pass) Walk(root core.Entity) {
	p.visit(root)
}

// walkChildren lays out the descendants of parent without visiting parent itself
func (p *Pass) walkChildren(parent core.Entity) {
	for child := range p.world.Children(parent) {
		p.visit(child)
	}
}

func (p *Pass) visit(e core.Entity) {
	prev := p.current
	p.current = e

	if b, ok := p.bindings.Get(e); ok && b.Layout != nil {
		b.Layout(p, Children{pass: p, parent: e})
	} else {
		p.walkChildren(e)
	}

	p.current = prev
}

package layout

// Momentum decay per update and the speed below which it stops
const (
	scrollMomentumDecay = 0.95
	scrollMomentumFloor = 0.1
)

type scrollState struct {
	id            uint32
	position      Vector2
	momentum      Vector2
	containerDims Dimensions
	contentDims   Dimensions
	box           BoundingBox
	config        ClipConfig
	seen          bool
	order         int

	dragPointer  Vector2
	dragPosition Vector2
}

// ScrollContainerData reports the state of one scroll container
type ScrollContainerData struct {
	ID                  uint32
	ScrollPosition      Vector2
	ContainerDimensions Dimensions
	ContentDimensions   Dimensions
	BoundingBox         BoundingBox
	Config              ClipConfig
	Found               bool
}

func (s *scrollState) data() ScrollContainerData {
	return ScrollContainerData{
		ID:                  s.id,
		ScrollPosition:      s.position,
		ContainerDimensions: s.containerDims,
		ContentDimensions:   s.contentDims,
		BoundingBox:         s.box,
		Config:              s.config,
		Found:               true,
	}
}

func (c *Context) findScroll(id uint32) *scrollState {
	for i := range c.scroll {
		if c.scroll[i].id == id {
			return &c.scroll[i]
		}
	}
	return nil
}

// recordScroll refreshes the persistent state of a clip container during placement
// Placement is pre-order, so nested containers get larger order values
func (c *Context) recordScroll(el *element, content Dimensions) {
	s := c.findScroll(el.id)
	if s == nil {
		c.scroll = append(c.scroll, scrollState{id: el.id})
		s = &c.scroll[len(c.scroll)-1]
	}
	s.containerDims = Dimensions{Width: el.dim[0], Height: el.dim[1]}
	s.contentDims = content
	s.box = el.box
	s.config = el.decl.Clip
	s.seen = true
	c.scrollSeq++
	s.order = c.scrollSeq
}

// ScrollOffset returns the scroll position of the open element, zero if it is not a known container
func (c *Context) ScrollOffset() Vector2 {
	if s := c.findScroll(c.CurrentID()); s != nil {
		return s.position
	}
	return Vector2{}
}

// GetScrollContainerData returns the state of the container with the given id
func (c *Context) GetScrollContainerData(id ElementID) ScrollContainerData {
	if s := c.findScroll(id.ID); s != nil {
		return s.data()
	}
	return ScrollContainerData{}
}

// ScrollContainers returns the state of every known container in declaration order
func (c *Context) ScrollContainers() []ScrollContainerData {
	out := make([]ScrollContainerData, 0, len(c.scroll))
	for i := range c.scroll {
		out = append(out, c.scroll[i].data())
	}
	return out
}

// scrollTarget picks the innermost container under the pointer, or the last declared one without a pointer
func (c *Context) scrollTarget() *scrollState {
	var best *scrollState
	for i := range c.scroll {
		s := &c.scroll[i]
		if c.pointerOn && !s.box.ContainsPoint(c.pointer) {
			continue
		}
		if best == nil || s.order > best.order {
			best = s
		}
	}
	return best
}

func (s *scrollState) clamp() {
	maxX := max(0, s.contentDims.Width-s.containerDims.Width)
	maxY := max(0, s.contentDims.Height-s.containerDims.Height)
	s.position.X = clamp32(s.position.X, -maxX, 0)
	s.position.Y = clamp32(s.position.Y, -maxY, 0)
	if s.position.X == 0 || s.position.X == -maxX {
		s.momentum.X = 0
	}
	if s.position.Y == 0 || s.position.Y == -maxY {
		s.momentum.Y = 0
	}
}

// UpdateScrollContainers advances scroll state once per frame
// Positive delta moves the view toward the end of the content, in layout units.
// Containers not laid out since the previous call are forgotten.
func (c *Context) UpdateScrollContainers(enableDrag bool, delta Vector2, dt float32) {
	kept := c.scroll[:0]
	for _, s := range c.scroll {
		if s.seen {
			s.seen = false
			kept = append(kept, s)
		}
	}
	c.scroll = kept

	if len(c.scroll) == 0 {
		c.dragID = 0
		return
	}

	if delta.X != 0 || delta.Y != 0 {
		if s := c.scrollTarget(); s != nil {
			if s.config.Horizontal && s.contentDims.Width > s.containerDims.Width {
				s.position.X -= delta.X
			}
			if s.config.Vertical && s.contentDims.Height > s.containerDims.Height {
				s.position.Y -= delta.Y
			}
			s.momentum = Vector2{}
		}
	}

	if enableDrag && c.pointerOn && c.pointerDn {
		c.drag(dt)
	} else {
		c.dragID = 0
		for i := range c.scroll {
			s := &c.scroll[i]
			if s.momentum == (Vector2{}) {
				continue
			}
			s.position.X += s.momentum.X * dt
			s.position.Y += s.momentum.Y * dt
			s.momentum.X *= scrollMomentumDecay
			s.momentum.Y *= scrollMomentumDecay
			if abs32(s.momentum.X) < scrollMomentumFloor {
				s.momentum.X = 0
			}
			if abs32(s.momentum.Y) < scrollMomentumFloor {
				s.momentum.Y = 0
			}
		}
	}

	for i := range c.scroll {
		c.scroll[i].clamp()
	}
}

func (c *Context) drag(dt float32) {
	if c.dragID == 0 {
		s := c.scrollTarget()
		if s == nil {
			return
		}
		c.dragID = s.id
		s.dragPointer = c.pointer
		s.dragPosition = s.position
		s.momentum = Vector2{}
		return
	}

	s := c.findScroll(c.dragID)
	if s == nil {
		c.dragID = 0
		return
	}
	next := s.position
	if s.config.Horizontal {
		next.X = s.dragPosition.X + (c.pointer.X - s.dragPointer.X)
	}
	if s.config.Vertical {
		next.Y = s.dragPosition.Y + (c.pointer.Y - s.dragPointer.Y)
	}
	if dt > 0 {
		s.momentum = Vector2{X: (next.X - s.position.X) / dt, Y: (next.Y - s.position.Y) / dt}
	}
	s.position = next
}

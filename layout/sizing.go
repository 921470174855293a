package layout

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func floatEqual(a, b float32) bool {
	return abs32(a-b) < epsilon
}

func clamp32(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}

// mainAxis returns 0 for horizontal flow, 1 for vertical
func (el *element) mainAxis() int {
	if el.decl.Layout.Direction == TopToBottom {
		return 1
	}
	return 0
}

func (el *element) sizing(axis int) SizingAxis {
	if el.isText {
		return SizingAxis{Type: SizingFit}
	}
	if axis == 0 {
		return el.decl.Layout.Sizing.Width
	}
	return el.decl.Layout.Sizing.Height
}

func (el *element) padding(axis int) (float32, float32) {
	p := el.decl.Layout.Padding
	if axis == 0 {
		return float32(p.Left), float32(p.Right)
	}
	return float32(p.Top), float32(p.Bottom)
}

func (el *element) clips(axis int) bool {
	if axis == 0 {
		return el.decl.Clip.Horizontal
	}
	return el.decl.Clip.Vertical
}

func (el *element) gaps() float32 {
	if len(el.children) < 2 {
		return 0
	}
	return float32(el.decl.Layout.ChildGap) * float32(len(el.children)-1)
}

// fitAxis computes content-fitted and minimum sizes bottom-up
func (c *Context) fitAxis(idx int, axis int) {
	el := &c.elements[idx]
	if el.isText {
		return
	}
	for _, ch := range el.children {
		c.fitAxis(ch, axis)
	}

	el = &c.elements[idx]
	along := el.mainAxis() == axis
	padStart, padEnd := el.padding(axis)

	var content, minContent float32
	for _, ch := range el.children {
		child := &c.elements[ch]
		if along {
			content += child.dim[axis]
			minContent += child.min[axis]
		} else {
			content = max(content, child.dim[axis])
			minContent = max(minContent, child.min[axis])
		}
	}
	if along {
		content += el.gaps()
		minContent += el.gaps()
	}
	content += padStart + padEnd
	minContent += padStart + padEnd

	s := el.sizing(axis)
	switch s.Type {
	case SizingFixed:
		el.dim[axis] = s.MinMax.Min
		el.min[axis] = s.MinMax.Min
	case SizingPercent:
		el.dim[axis] = 0
		el.min[axis] = 0
	default:
		el.dim[axis] = clamp32(content, s.MinMax.Min, s.MinMax.max())
		if el.clips(axis) {
			// Scrollable axes do not force their parent to grow
			el.min[axis] = s.MinMax.Min
		} else {
			el.min[axis] = min(clamp32(minContent, s.MinMax.Min, s.MinMax.max()), el.dim[axis])
		}
	}
}

// distribute resolves percent, grow and compression top-down
func (c *Context) distribute(idx int, axis int) {
	el := &c.elements[idx]
	if el.isText || len(el.children) == 0 {
		return
	}

	padStart, padEnd := el.padding(axis)
	inner := el.dim[axis] - padStart - padEnd
	along := el.mainAxis() == axis
	gaps := float32(0)
	if along {
		gaps = el.gaps()
	}

	for _, ch := range el.children {
		child := &c.elements[ch]
		if s := child.sizing(axis); s.Type == SizingPercent {
			child.dim[axis] = max(0, (inner-gaps)*s.Percent)
		}
	}

	if along {
		used := gaps
		for _, ch := range el.children {
			used += c.elements[ch].dim[axis]
		}
		remaining := inner - used
		switch {
		case remaining < -epsilon && !el.clips(axis):
			c.compress(el.children, axis, remaining)
		case remaining > epsilon:
			c.expand(el.children, axis, remaining)
		}
	} else {
		for _, ch := range el.children {
			child := &c.elements[ch]
			s := child.sizing(axis)
			switch s.Type {
			case SizingGrow:
				child.dim[axis] = clamp32(inner, s.MinMax.Min, s.MinMax.max())
			case SizingFit:
				if !el.clips(axis) && child.dim[axis] > inner {
					child.dim[axis] = max(child.min[axis], inner)
				}
			}
		}
	}

	for _, ch := range c.elements[idx].children {
		c.distribute(ch, axis)
	}
}

// compress shrinks the largest resizable children first until the deficit is absorbed
func (c *Context) compress(children []int, axis int, remaining float32) {
	buf := c.scratch[:0]
	for _, ch := range children {
		child := &c.elements[ch]
		t := child.sizing(axis).Type
		if (t == SizingFit || t == SizingGrow) && child.dim[axis] > child.min[axis] {
			buf = append(buf, ch)
		}
	}

	for guard := 0; remaining < -epsilon && len(buf) > 0 && guard < 1024; guard++ {
		var largest, second float32
		toAdd := remaining
		for _, ch := range buf {
			size := c.elements[ch].dim[axis]
			if floatEqual(size, largest) {
				continue
			}
			if size > largest {
				second = largest
				largest = size
			}
			if size < largest {
				second = max(second, size)
				toAdd = second - largest
			}
		}
		toAdd = max(toAdd, remaining/float32(len(buf)))

		next := buf[:0]
		for _, ch := range buf {
			child := &c.elements[ch]
			prev := child.dim[axis]
			keep := true
			if floatEqual(prev, largest) {
				child.dim[axis] += toAdd
				if child.dim[axis] <= child.min[axis] {
					child.dim[axis] = child.min[axis]
					keep = false
				}
				remaining -= child.dim[axis] - prev
			}
			if keep {
				next = append(next, ch)
			}
		}
		buf = next
	}
	c.scratch = buf[:0]
}

// expand grows the smallest Grow children first until the surplus is consumed
func (c *Context) expand(children []int, axis int, remaining float32) {
	buf := c.scratch[:0]
	for _, ch := range children {
		if c.elements[ch].sizing(axis).Type == SizingGrow {
			buf = append(buf, ch)
		}
	}

	for guard := 0; remaining > epsilon && len(buf) > 0 && guard < 1024; guard++ {
		smallest, second := maxFloat, maxFloat
		toAdd := remaining
		for _, ch := range buf {
			size := c.elements[ch].dim[axis]
			if floatEqual(size, smallest) {
				continue
			}
			if size < smallest {
				second = smallest
				smallest = size
			}
			if size > smallest {
				second = min(second, size)
				toAdd = second - smallest
			}
		}
		toAdd = min(toAdd, remaining/float32(len(buf)))

		next := buf[:0]
		for _, ch := range buf {
			child := &c.elements[ch]
			prev := child.dim[axis]
			keep := true
			if floatEqual(prev, smallest) {
				limit := child.sizing(axis).MinMax.max()
				child.dim[axis] += toAdd
				if child.dim[axis] >= limit {
					child.dim[axis] = limit
					keep = false
				}
				remaining -= child.dim[axis] - prev
			}
			if keep {
				next = append(next, ch)
			}
		}
		buf = next
	}
	c.scratch = buf[:0]
}

func (el *element) alignOffset(axis int, free float32) float32 {
	if free <= 0 {
		return 0
	}
	a := el.decl.Layout.ChildAlignment
	if axis == 0 {
		switch a.X {
		case AlignXCenter:
			return free / 2
		case AlignXRight:
			return free
		}
		return 0
	}
	switch a.Y {
	case AlignYCenter:
		return free / 2
	case AlignYBottom:
		return free
	}
	return 0
}

// place assigns bounding boxes top-down
func (c *Context) place(idx int, x, y float32) {
	el := &c.elements[idx]
	el.box = BoundingBox{X: x, Y: y, Width: el.dim[0], Height: el.dim[1]}
	if el.isText {
		return
	}

	main := el.mainAxis()
	cross := 1 - main
	padL, padR := el.padding(0)
	padT, padB := el.padding(1)
	origin := [2]float32{x + padL, y + padT}
	inner := [2]float32{el.dim[0] - padL - padR, el.dim[1] - padT - padB}
	gap := float32(el.decl.Layout.ChildGap)

	var content, crossMax float32
	for _, ch := range el.children {
		content += c.elements[ch].dim[main]
		crossMax = max(crossMax, c.elements[ch].dim[cross])
	}
	content += el.gaps()

	var offset Vector2
	if el.decl.Clip.Enabled() {
		var contentDims Dimensions
		if main == 0 {
			contentDims = Dimensions{Width: content + padL + padR, Height: crossMax + padT + padB}
		} else {
			contentDims = Dimensions{Width: crossMax + padL + padR, Height: content + padT + padB}
		}
		c.recordScroll(el, contentDims)
		if el.decl.Clip.Horizontal {
			offset.X = el.decl.Clip.ChildOffset.X
		}
		if el.decl.Clip.Vertical {
			offset.Y = el.decl.Clip.ChildOffset.Y
		}
	}

	cursor := origin[main] + el.alignOffset(main, inner[main]-content)
	children := el.children
	for _, ch := range children {
		child := &c.elements[ch]
		var p [2]float32
		p[main] = cursor
		p[cross] = origin[cross] + el.alignOffset(cross, inner[cross]-child.dim[cross])
		cursor += child.dim[main] + gap
		c.place(ch, p[0]+offset.X, p[1]+offset.Y)
	}
}

func (c *Context) offscreen(b BoundingBox) bool {
	return b.X > c.dims.Width || b.Y > c.dims.Height || b.X+b.Width < 0 || b.Y+b.Height < 0
}

// emit appends render commands depth-first
// Per element: rectangle, clip start, text lines or children, clip end, border
func (c *Context) emit(idx int) {
	el := &c.elements[idx]

	if el.isText {
		c.emitText(el)
		return
	}

	visible := !c.offscreen(el.box)
	decl := &el.decl

	if visible && decl.BackgroundColor.A > 0 {
		c.commands = append(c.commands, RenderCommand{
			BoundingBox: el.box,
			Type:        CommandRectangle,
			ID:          el.id,
			UserData:    decl.UserData,
			Rectangle: RectangleData{
				BackgroundColor: decl.BackgroundColor,
				CornerRadius:    decl.CornerRadius,
			},
		})
	}

	clip := visible && decl.Clip.Enabled()
	if clip {
		c.commands = append(c.commands, RenderCommand{
			BoundingBox: el.box,
			Type:        CommandClipStart,
			ID:          el.id,
			UserData:    decl.UserData,
			Clip:        ClipData{Horizontal: decl.Clip.Horizontal, Vertical: decl.Clip.Vertical},
		})
	}

	for _, ch := range el.children {
		c.emit(ch)
	}

	if clip {
		c.commands = append(c.commands, RenderCommand{
			BoundingBox: el.box,
			Type:        CommandClipEnd,
			ID:          el.id,
			UserData:    decl.UserData,
			Clip:        ClipData{Horizontal: decl.Clip.Horizontal, Vertical: decl.Clip.Vertical},
		})
	}

	if visible && decl.Border.Width.Any() {
		c.commands = append(c.commands, RenderCommand{
			BoundingBox: el.box,
			Type:        CommandBorder,
			ID:          el.id,
			UserData:    decl.UserData,
			Border: BorderData{
				Color:        decl.Border.Color,
				CornerRadius: decl.CornerRadius,
				Width:        decl.Border.Width,
			},
		})
	}
}

func (c *Context) emitText(el *element) {
	cfg := &el.textCfg
	for i, line := range el.lines {
		if line.text == "" {
			continue
		}
		x := el.box.X
		switch cfg.Alignment {
		case TextAlignCenter:
			x += (el.box.Width - line.width) / 2
		case TextAlignRight:
			x += el.box.Width - line.width
		}
		box := BoundingBox{
			X:      x,
			Y:      el.box.Y + float32(i)*el.lineHeight,
			Width:  line.width,
			Height: el.lineHeight,
		}
		if c.offscreen(box) {
			continue
		}
		c.commands = append(c.commands, RenderCommand{
			BoundingBox: box,
			Type:        CommandText,
			ID:          HashNumber(uint32(i), el.id).ID,
			UserData:    cfg.UserData,
			Text: TextData{
				StringContents: line.text,
				TextColor:      cfg.TextColor,
				FontID:         cfg.FontID,
				FontSize:       cfg.FontSize,
				LetterSpacing:  cfg.LetterSpacing,
				LineHeight:     cfg.LineHeight,
			},
		})
	}
}

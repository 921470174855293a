package layout

import (
	"strings"
)

// DefaultMaxElementCount bounds elements per pass at MinMemorySize
const DefaultMaxElementCount = 8192

// DefaultMaxMeasureTextCacheEntries bounds cached text measurements at MinMemorySize
const DefaultMaxMeasureTextCacheEntries = 16384

// Accounted bytes per element and per cached measurement
const (
	elementFootprint = 256
	measureFootprint = 32
)

const epsilon = 0.01

// MinMemorySize returns the smallest memory budget that holds the default capacities
func MinMemorySize() int {
	return DefaultMaxElementCount*elementFootprint + DefaultMaxMeasureTextCacheEntries*measureFootprint
}

// MeasureTextFunc returns the size of a single run of text in layout units
type MeasureTextFunc func(text string, cfg *TextConfig) Dimensions

// Options configures a Context
type Options struct {
	// MemorySize is the capacity budget in bytes; zero selects MinMemorySize
	MemorySize   int
	Dimensions   Dimensions
	ErrorHandler ErrorHandler
}

type textLine struct {
	text  string
	width float32
}

type element struct {
	id       uint32
	decl     ElementDeclaration
	children []int
	dim      [2]float32
	min      [2]float32
	box      BoundingBox

	isText     bool
	text       string
	textCfg    TextConfig
	lines      []textLine
	lineHeight float32
}

type measureKey struct {
	text          string
	fontID        uint16
	fontSize      uint16
	letterSpacing uint16
	lineHeight    uint16
}

// Context is an immediate-mode layout engine
// A pass is bracketed by BeginLayout and EndLayout; elements are declared in between
type Context struct {
	dims         Dimensions
	measureFn    MeasureTextFunc
	errorHandler ErrorHandler

	maxElements int
	maxMeasures int

	measureCache map[measureKey]Dimensions

	elements  []element
	openStack []int
	commands  []RenderCommand
	ids       map[uint32]struct{}
	scratch   []int
	inLayout  bool
	reported  [ErrorInternal + 1]bool

	scroll    []scrollState
	scrollSeq int
	pointer   Vector2
	pointerOn bool
	pointerDn bool
	dragID    uint32
}

const rootElementName = "cellbridge_root"

// NewContext creates a layout context
func NewContext(opts Options) *Context {
	c := &Context{
		dims:         opts.Dimensions,
		errorHandler: opts.ErrorHandler,
		measureCache: make(map[measureKey]Dimensions),
		ids:          make(map[uint32]struct{}),
	}

	mem := opts.MemorySize
	if mem <= 0 {
		mem = MinMemorySize()
	}
	if mem < MinMemorySize() {
		c.report(ErrorArenaCapacityExceeded, "memory size below minimum, capacities reduced")
	}
	scale := float64(mem) / float64(MinMemorySize())
	c.maxElements = max(1, int(float64(DefaultMaxElementCount)*scale))
	c.maxMeasures = max(1, int(float64(DefaultMaxMeasureTextCacheEntries)*scale))
	return c
}

// MaxElementCount returns the per-pass element capacity
func (c *Context) MaxElementCount() int {
	return c.maxElements
}

// SetErrorHandler replaces the error handler
func (c *Context) SetErrorHandler(h ErrorHandler) {
	c.errorHandler = h
}

// SetLayoutDimensions sets the root size for subsequent passes
func (c *Context) SetLayoutDimensions(d Dimensions) {
	c.dims = d
}

// LayoutDimensions returns the current root size
func (c *Context) LayoutDimensions() Dimensions {
	return c.dims
}

// SetMeasureTextFunction installs the text measurement callback
func (c *Context) SetMeasureTextFunction(fn MeasureTextFunc) {
	c.measureFn = fn
}

// ResetMeasureTextCache drops every cached measurement
func (c *Context) ResetMeasureTextCache() {
	clear(c.measureCache)
}

// MeasureTextCacheLen returns the number of cached measurements
func (c *Context) MeasureTextCacheLen() int {
	return len(c.measureCache)
}

// SetPointerState records the pointer used for scroll targeting and dragging
func (c *Context) SetPointerState(pos Vector2, down bool) {
	c.pointer = pos
	c.pointerOn = true
	c.pointerDn = down
}

func (c *Context) report(t ErrorType, text string) {
	if c.errorHandler == nil {
		return
	}
	c.errorHandler(ErrorData{Type: t, Text: text})
}

// reportOnce reports t at most once per pass
func (c *Context) reportOnce(t ErrorType, text string) {
	if c.reported[t] {
		return
	}
	c.reported[t] = true
	c.report(t, text)
}

func (c *Context) newElement() (int, bool) {
	idx := len(c.elements)
	if idx >= c.maxElements {
		c.reportOnce(ErrorElementsCapacityExceeded, "element count exceeds capacity, further elements dropped")
		return -1, false
	}
	if idx < cap(c.elements) {
		c.elements = c.elements[:idx+1]
		el := &c.elements[idx]
		kids, lines := el.children[:0], el.lines[:0]
		*el = element{children: kids, lines: lines}
	} else {
		c.elements = append(c.elements, element{})
	}
	return idx, true
}

// BeginLayout starts a pass; all previously returned commands become invalid
func (c *Context) BeginLayout() {
	c.elements = c.elements[:0]
	c.openStack = c.openStack[:0]
	c.commands = c.commands[:0]
	clear(c.ids)
	c.reported = [ErrorInternal + 1]bool{}
	c.inLayout = true

	root, _ := c.newElement()
	el := &c.elements[root]
	el.id = HashString(rootElementName, 0, 0).ID
	el.decl.Layout.Sizing = Sizing{Width: Fixed(c.dims.Width), Height: Fixed(c.dims.Height)}
	c.openStack = append(c.openStack, root)
}

func (c *Context) top() int {
	if len(c.openStack) == 0 {
		return -1
	}
	return c.openStack[len(c.openStack)-1]
}

// OpenElement opens a child of the current element with a positional id
func (c *Context) OpenElement() {
	if !c.inLayout {
		c.report(ErrorInternal, "OpenElement called outside BeginLayout/EndLayout")
		return
	}
	parent := c.top()
	if parent < 0 {
		c.openStack = append(c.openStack, -1)
		return
	}
	idx, ok := c.newElement()
	if !ok {
		c.openStack = append(c.openStack, -1)
		return
	}
	p := &c.elements[parent]
	c.elements[idx].id = HashNumber(uint32(len(p.children)), p.id).ID
	p.children = append(p.children, idx)
	c.openStack = append(c.openStack, idx)
}

// OpenElementWithID opens a child with an explicit id so ScrollOffset can resolve before configuration
func (c *Context) OpenElementWithID(id ElementID) {
	c.OpenElement()
	if idx := c.top(); idx >= 0 && id.ID != 0 {
		c.assignID(idx, id.ID)
	}
}

func (c *Context) assignID(idx int, id uint32) {
	if _, dup := c.ids[id]; dup {
		c.report(ErrorDuplicateID, "an element with this id was already declared in this pass")
	}
	c.ids[id] = struct{}{}
	c.elements[idx].id = id
}

// ConfigureOpenElement applies a declaration to the most recently opened element
func (c *Context) ConfigureOpenElement(decl ElementDeclaration) {
	idx := c.top()
	if !c.inLayout || idx < 0 {
		return
	}
	el := &c.elements[idx]
	if decl.ID.ID != 0 && decl.ID.ID != el.id {
		c.assignID(idx, decl.ID.ID)
	}
	if s := decl.Layout.Sizing; (s.Width.Type == SizingPercent && s.Width.Percent > 1) ||
		(s.Height.Type == SizingPercent && s.Height.Percent > 1) {
		c.report(ErrorPercentageOver1, "percent sizing must be between 0 and 1")
	}
	c.elements[idx].decl = decl
}

// CloseElement closes the most recently opened element
func (c *Context) CloseElement() {
	if !c.inLayout {
		return
	}
	if len(c.openStack) <= 1 {
		c.report(ErrorUnbalancedClose, "CloseElement called with no open element")
		return
	}
	c.openStack = c.openStack[:len(c.openStack)-1]
}

// Element opens, configures, runs children and closes in one call
func (c *Context) Element(decl ElementDeclaration, children func()) {
	c.OpenElement()
	c.ConfigureOpenElement(decl)
	if children != nil {
		children()
	}
	c.CloseElement()
}

// CurrentID returns the id of the open element, zero if none
func (c *Context) CurrentID() uint32 {
	if idx := c.top(); idx >= 0 {
		return c.elements[idx].id
	}
	return 0
}

// Text adds a text child to the open element
// The string is retained until EndLayout returns and is referenced by the emitted commands
func (c *Context) Text(text string, cfg TextConfig) {
	if !c.inLayout {
		c.report(ErrorInternal, "Text called outside BeginLayout/EndLayout")
		return
	}
	parent := c.top()
	if parent < 0 {
		return
	}
	idx, ok := c.newElement()
	if !ok {
		return
	}
	p := &c.elements[parent]
	el := &c.elements[idx]
	el.id = HashNumber(uint32(len(p.children)), p.id).ID
	p.children = append(p.children, idx)

	el.isText = true
	el.text = text
	el.textCfg = cfg
	c.measureTextElement(el)
}

func (c *Context) measure(text string, cfg *TextConfig) Dimensions {
	if c.measureFn == nil {
		c.reportOnce(ErrorTextMeasurementFunctionNotProvided, "SetMeasureTextFunction must be called before adding text")
		return Dimensions{}
	}
	key := measureKey{
		text:          text,
		fontID:        cfg.FontID,
		fontSize:      cfg.FontSize,
		letterSpacing: cfg.LetterSpacing,
		lineHeight:    cfg.LineHeight,
	}
	if d, ok := c.measureCache[key]; ok {
		return d
	}
	d := c.measureFn(text, cfg)
	if len(c.measureCache) >= c.maxMeasures {
		c.reportOnce(ErrorTextMeasurementCapacityExceeded, "measure cache full, results not cached")
		return d
	}
	// Keys outlive the pass; text may borrow transient memory
	key.text = strings.Clone(text)
	c.measureCache[key] = d
	return d
}

// forEachParagraph visits newline-separated runs of s
func forEachParagraph(s string, fn func(p string)) {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			fn(s)
			return
		}
		fn(s[:i])
		s = s[i+1:]
	}
}

// forEachWord visits space-separated runs of s, including empty runs between adjacent spaces
func forEachWord(s string, fn func(start, end int)) {
	pos := 0
	for {
		end := len(s)
		if i := strings.IndexByte(s[pos:], ' '); i >= 0 {
			end = pos + i
		}
		fn(pos, end)
		if end == len(s) {
			return
		}
		pos = end + 1
	}
}

func (c *Context) measureTextElement(el *element) {
	cfg := &el.textCfg
	var unwrapped, minWidth, lineH float32
	paragraphs := 0

	forEachParagraph(el.text, func(p string) {
		paragraphs++
		d := c.measure(p, cfg)
		unwrapped = max(unwrapped, d.Width)
		lineH = max(lineH, d.Height)
		if cfg.WrapMode == WrapWords {
			forEachWord(p, func(start, end int) {
				minWidth = max(minWidth, c.measure(p[start:end], cfg).Width)
			})
		}
	})

	if cfg.LineHeight > 0 {
		lineH = float32(cfg.LineHeight)
	}
	if lineH <= 0 {
		lineH = 1
	}
	if cfg.WrapMode != WrapWords {
		minWidth = unwrapped
	}

	el.lineHeight = lineH
	el.dim = [2]float32{unwrapped, float32(paragraphs) * lineH}
	el.min = [2]float32{minWidth, el.dim[1]}
}

// wrapText breaks every text element into lines for its resolved width
func (c *Context) wrapText() {
	for i := range c.elements {
		el := &c.elements[i]
		if !el.isText {
			continue
		}
		cfg := &el.textCfg
		width := el.dim[0]
		el.lines = el.lines[:0]

		var space float32
		if cfg.WrapMode == WrapWords {
			space = c.measure(" ", cfg).Width
		}

		forEachParagraph(el.text, func(p string) {
			pw := c.measure(p, cfg).Width
			if cfg.WrapMode != WrapWords || pw <= width+epsilon {
				el.lines = append(el.lines, textLine{text: p, width: pw})
				return
			}
			var lineStart, lastEnd int
			var lineW float32
			first := true
			forEachWord(p, func(start, end int) {
				ww := c.measure(p[start:end], cfg).Width
				switch {
				case first:
					lineStart, lineW, first = start, ww, false
				case lineW+space+ww > width+epsilon:
					el.lines = append(el.lines, textLine{text: p[lineStart:lastEnd], width: lineW})
					lineStart, lineW = start, ww
				default:
					lineW += space + ww
				}
				lastEnd = end
			})
			el.lines = append(el.lines, textLine{text: p[lineStart:lastEnd], width: lineW})
		})

		el.dim[1] = float32(len(el.lines)) * el.lineHeight
		el.min[1] = el.dim[1]
	}
}

// EndLayout resolves sizes and positions and returns the ordered command list
// The slice is reused by the next BeginLayout
func (c *Context) EndLayout() []RenderCommand {
	if !c.inLayout {
		c.report(ErrorInternal, "EndLayout called without BeginLayout")
		return nil
	}
	if len(c.openStack) > 1 {
		c.report(ErrorUnbalancedClose, "elements left open at EndLayout, closing them")
	}
	c.openStack = c.openStack[:0]
	c.inLayout = false

	if len(c.elements) == 0 {
		return c.commands
	}

	c.fitAxis(0, 0)
	c.distribute(0, 0)
	c.wrapText()
	c.fitAxis(0, 1)
	c.distribute(0, 1)
	c.place(0, 0, 0)
	c.emit(0)
	return c.commands
}

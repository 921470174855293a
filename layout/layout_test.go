package layout

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func runeMeasure(text string, _ *TextConfig) Dimensions {
	if text == "" {
		return Dimensions{}
	}
	return Dimensions{Width: float32(utf8.RuneCountInString(text)), Height: 1}
}

func newTestContext(w, h float32) (*Context, *[]ErrorData) {
	var errs []ErrorData
	c := NewContext(Options{
		Dimensions:   Dimensions{Width: w, Height: h},
		ErrorHandler: func(e ErrorData) { errs = append(errs, e) },
	})
	c.SetMeasureTextFunction(runeMeasure)
	return c, &errs
}

func commandTypes(cmds []RenderCommand) []CommandType {
	out := make([]CommandType, len(cmds))
	for i, c := range cmds {
		out[i] = c.Type
	}
	return out
}

var red = Color{R: 255, A: 255}

// TestGrowFillsRemainingSpace verifies fixed and grow siblings share a row
func TestGrowFillsRemainingSpace(t *testing.T) {
	c, _ := newTestContext(80, 24)
	c.BeginLayout()
	c.Element(ElementDeclaration{
		Layout: LayoutConfig{Sizing: Sizing{Width: Grow(), Height: Fixed(3)}},
	}, func() {
		c.Element(ElementDeclaration{
			ID:              ID("left"),
			Layout:          LayoutConfig{Sizing: Sizing{Width: Fixed(10), Height: Grow()}},
			BackgroundColor: red,
		}, nil)
		c.Element(ElementDeclaration{
			ID:              ID("right"),
			Layout:          LayoutConfig{Sizing: Sizing{Width: Grow(), Height: Grow()}},
			BackgroundColor: red,
		}, nil)
	})
	cmds := c.EndLayout()

	if len(cmds) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(cmds))
	}
	want := []BoundingBox{
		{X: 0, Y: 0, Width: 10, Height: 3},
		{X: 10, Y: 0, Width: 70, Height: 3},
	}
	got := []BoundingBox{cmds[0].BoundingBox, cmds[1].BoundingBox}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bounding boxes mismatch (-want +got):\n%s", diff)
	}
	if cmds[0].ID != ID("left").ID {
		t.Errorf("Expected explicit id on first rectangle")
	}
}

// TestFitWithPaddingAndGap verifies content fitting on both axes
func TestFitWithPaddingAndGap(t *testing.T) {
	c, _ := newTestContext(80, 24)
	c.BeginLayout()
	c.Element(ElementDeclaration{
		Layout: LayoutConfig{
			Padding:   PaddingAll(1),
			ChildGap:  1,
			Direction: TopToBottom,
		},
		BackgroundColor: red,
	}, func() {
		c.Text("hello", TextConfig{})
		c.Text("hi", TextConfig{})
	})
	cmds := c.EndLayout()

	if len(cmds) != 3 {
		t.Fatalf("Expected 3 commands, got %d", len(cmds))
	}
	if got := cmds[0].BoundingBox; got != (BoundingBox{Width: 7, Height: 5}) {
		t.Errorf("Expected 7x5 container, got %+v", got)
	}
	if got := cmds[1].BoundingBox; got != (BoundingBox{X: 1, Y: 1, Width: 5, Height: 1}) {
		t.Errorf("Unexpected first text box %+v", got)
	}
	if got := cmds[2].BoundingBox; got != (BoundingBox{X: 1, Y: 3, Width: 2, Height: 1}) {
		t.Errorf("Unexpected second text box %+v", got)
	}
}

// TestCommandOrder verifies rectangle, clip start, children, clip end, border
func TestCommandOrder(t *testing.T) {
	c, _ := newTestContext(40, 10)
	c.BeginLayout()
	c.Element(ElementDeclaration{
		Layout:          LayoutConfig{Sizing: Sizing{Width: Fixed(20), Height: Fixed(5)}},
		BackgroundColor: red,
		Clip:            ClipConfig{Vertical: true},
		Border:          BorderConfig{Color: red, Width: BorderWidth{Left: 1, Right: 1, Top: 1, Bottom: 1}},
	}, func() {
		c.Text("inside", TextConfig{})
	})
	cmds := c.EndLayout()

	want := []CommandType{CommandRectangle, CommandClipStart, CommandText, CommandClipEnd, CommandBorder}
	if diff := cmp.Diff(want, commandTypes(cmds)); diff != "" {
		t.Errorf("Command order mismatch (-want +got):\n%s", diff)
	}
}

// TestTextWrapsWords verifies greedy word wrapping inside a fixed width
func TestTextWrapsWords(t *testing.T) {
	c, _ := newTestContext(80, 24)
	c.BeginLayout()
	c.Element(ElementDeclaration{
		Layout: LayoutConfig{Sizing: Sizing{Width: Fixed(10)}, Direction: TopToBottom},
	}, func() {
		c.Text("hello world again", TextConfig{})
	})
	cmds := c.EndLayout()

	var lines []string
	for _, cmd := range cmds {
		if cmd.Type == CommandText {
			lines = append(lines, cmd.Text.StringContents)
		}
	}
	if diff := cmp.Diff([]string{"hello", "world", "again"}, lines); diff != "" {
		t.Errorf("Wrapped lines mismatch (-want +got):\n%s", diff)
	}
	if cmds[2].BoundingBox.Y != 2 {
		t.Errorf("Expected third line at y=2, got %v", cmds[2].BoundingBox.Y)
	}
}

// TestNewlinesSplitLines verifies explicit line breaks
func TestNewlinesSplitLines(t *testing.T) {
	c, _ := newTestContext(80, 24)
	c.BeginLayout()
	c.Text("one\ntwo", TextConfig{WrapMode: WrapNewlines})
	cmds := c.EndLayout()

	if len(cmds) != 2 {
		t.Fatalf("Expected 2 text commands, got %d", len(cmds))
	}
	if cmds[1].Text.StringContents != "two" || cmds[1].BoundingBox.Y != 1 {
		t.Errorf("Unexpected second line %+v", cmds[1])
	}
}

// TestCenterAlignment verifies free space is split around children
func TestCenterAlignment(t *testing.T) {
	c, _ := newTestContext(20, 5)
	c.BeginLayout()
	c.Element(ElementDeclaration{
		Layout: LayoutConfig{
			Sizing:         Sizing{Width: Grow(), Height: Grow()},
			ChildAlignment: ChildAlignment{X: AlignXCenter, Y: AlignYCenter},
		},
	}, func() {
		c.Text("abcd", TextConfig{})
	})
	cmds := c.EndLayout()

	if len(cmds) != 1 {
		t.Fatalf("Expected 1 command, got %d", len(cmds))
	}
	if got := cmds[0].BoundingBox; got.X != 8 || got.Y != 2 {
		t.Errorf("Expected text at (8,2), got (%v,%v)", got.X, got.Y)
	}
}

// TestPercentSizing verifies percent resolves against the parent inner size
func TestPercentSizing(t *testing.T) {
	c, errs := newTestContext(100, 10)
	c.BeginLayout()
	c.Element(ElementDeclaration{
		Layout:          LayoutConfig{Sizing: Sizing{Width: Percent(0.25), Height: Fixed(1)}},
		BackgroundColor: red,
	}, nil)
	cmds := c.EndLayout()

	if cmds[0].BoundingBox.Width != 25 {
		t.Errorf("Expected width 25, got %v", cmds[0].BoundingBox.Width)
	}

	c.BeginLayout()
	c.Element(ElementDeclaration{Layout: LayoutConfig{Sizing: Sizing{Width: Percent(1.5)}}}, nil)
	c.EndLayout()
	if len(*errs) != 1 || (*errs)[0].Type != ErrorPercentageOver1 {
		t.Errorf("Expected percentage error, got %v", *errs)
	}
}

// TestDuplicateIDReported verifies the error handler sees duplicates
func TestDuplicateIDReported(t *testing.T) {
	c, errs := newTestContext(10, 10)
	c.BeginLayout()
	c.Element(ElementDeclaration{ID: ID("same")}, nil)
	c.Element(ElementDeclaration{ID: ID("same")}, nil)
	c.EndLayout()

	if len(*errs) != 1 || (*errs)[0].Type != ErrorDuplicateID {
		t.Errorf("Expected one duplicate id error, got %v", *errs)
	}
}

// TestMissingMeasureFunction verifies a single report per pass
func TestMissingMeasureFunction(t *testing.T) {
	var errs []ErrorData
	c := NewContext(Options{
		Dimensions:   Dimensions{Width: 10, Height: 10},
		ErrorHandler: func(e ErrorData) { errs = append(errs, e) },
	})
	c.BeginLayout()
	c.Text("a", TextConfig{})
	c.Text("b", TextConfig{})
	c.EndLayout()

	if len(errs) != 1 || errs[0].Type != ErrorTextMeasurementFunctionNotProvided {
		t.Errorf("Expected one measurement error, got %v", errs)
	}
}

// TestElementCapacity verifies overflow is reported and extra elements dropped
func TestElementCapacity(t *testing.T) {
	var errs []ErrorData
	c := NewContext(Options{
		MemorySize:   MinMemorySize() / DefaultMaxElementCount * 4,
		Dimensions:   Dimensions{Width: 10, Height: 10},
		ErrorHandler: func(e ErrorData) { errs = append(errs, e) },
	})
	limit := c.MaxElementCount()
	c.BeginLayout()
	for i := 0; i < limit+5; i++ {
		c.Element(ElementDeclaration{
			Layout:          LayoutConfig{Sizing: Sizing{Width: Fixed(1), Height: Fixed(1)}},
			BackgroundColor: red,
		}, nil)
	}
	cmds := c.EndLayout()

	if len(cmds) != limit-1 {
		t.Errorf("Expected %d rectangles, got %d", limit-1, len(cmds))
	}
	var capacity int
	for _, e := range errs {
		if e.Type == ErrorElementsCapacityExceeded {
			capacity++
		}
	}
	if capacity != 1 {
		t.Errorf("Expected one capacity error, got %d", capacity)
	}
}

// TestOffscreenCulled verifies elements outside the layout produce no commands
func TestOffscreenCulled(t *testing.T) {
	c, _ := newTestContext(10, 2)
	c.BeginLayout()
	c.Element(ElementDeclaration{Layout: LayoutConfig{Direction: TopToBottom}}, func() {
		for i := 0; i < 6; i++ {
			c.Element(ElementDeclaration{
				Layout:          LayoutConfig{Sizing: Sizing{Width: Fixed(1), Height: Fixed(1)}},
				BackgroundColor: red,
			}, nil)
		}
	})
	cmds := c.EndLayout()

	if len(cmds) != 3 {
		t.Errorf("Expected rows 0..2 to survive culling, got %d commands", len(cmds))
	}
}

func scrollList(c *Context, offset Vector2) []RenderCommand {
	c.BeginLayout()
	c.OpenElementWithID(ID("list"))
	if offset == (Vector2{}) {
		offset = c.ScrollOffset()
	}
	c.ConfigureOpenElement(ElementDeclaration{
		ID: ID("list"),
		Layout: LayoutConfig{
			Sizing:    Sizing{Width: Fixed(10), Height: Fixed(5)},
			Direction: TopToBottom,
		},
		Clip: ClipConfig{Vertical: true, ChildOffset: offset},
	})
	for i := 0; i < 20; i++ {
		c.Text("row", TextConfig{})
	}
	c.CloseElement()
	return c.EndLayout()
}

// TestScrollClampsAndOffsets verifies deltas move, clamp and feed back as child offsets
func TestScrollClampsAndOffsets(t *testing.T) {
	c, _ := newTestContext(10, 24)
	scrollList(c, Vector2{})

	c.UpdateScrollContainers(false, Vector2{Y: 3}, 0.016)
	data := c.GetScrollContainerData(ID("list"))
	if !data.Found || data.ScrollPosition.Y != -3 {
		t.Fatalf("Expected position -3, got %+v", data)
	}
	if data.ContentDimensions.Height != 20 || data.ContainerDimensions.Height != 5 {
		t.Errorf("Unexpected dims %+v", data)
	}

	cmds := scrollList(c, Vector2{})
	var lastY float32
	for _, cmd := range cmds {
		if cmd.Type == CommandText {
			lastY = cmd.BoundingBox.Y
		}
	}
	if lastY != 16 {
		t.Errorf("Expected last row shifted to y=16, got %v", lastY)
	}

	c.UpdateScrollContainers(false, Vector2{Y: 10000}, 0.016)
	if got := c.GetScrollContainerData(ID("list")).ScrollPosition.Y; got != -15 {
		t.Errorf("Expected clamp to -15, got %v", got)
	}

	scrollList(c, Vector2{})
	c.UpdateScrollContainers(false, Vector2{Y: -10000}, 0.016)
	if got := c.GetScrollContainerData(ID("list")).ScrollPosition.Y; got != 0 {
		t.Errorf("Expected clamp to 0, got %v", got)
	}
}

// TestScrollPrunesStaleContainers verifies containers vanish when not laid out
func TestScrollPrunesStaleContainers(t *testing.T) {
	c, _ := newTestContext(10, 24)
	scrollList(c, Vector2{})
	c.UpdateScrollContainers(false, Vector2{}, 0)
	c.UpdateScrollContainers(false, Vector2{}, 0)

	if c.GetScrollContainerData(ID("list")).Found {
		t.Error("Expected container to be pruned after a frame without layout")
	}
}

// TestMeasureCacheReset verifies the cache fills and clears
func TestMeasureCacheReset(t *testing.T) {
	c, _ := newTestContext(80, 24)
	c.BeginLayout()
	c.Text("cached words", TextConfig{})
	c.EndLayout()

	if c.MeasureTextCacheLen() == 0 {
		t.Fatal("Expected cached measurements")
	}
	c.ResetMeasureTextCache()
	if c.MeasureTextCacheLen() != 0 {
		t.Errorf("Expected empty cache, got %d", c.MeasureTextCacheLen())
	}
}

// TestHashNumberDistinctOffsets verifies no collisions among small offsets under one seed
func TestHashNumberDistinctOffsets(t *testing.T) {
	seen := make(map[uint32]uint32, 1<<16)
	for off := uint32(0); off < 1<<16; off++ {
		id := HashNumber(off, 0xdeadbeef).ID
		if prev, dup := seen[id]; dup {
			t.Fatalf("Offsets %d and %d collide", prev, off)
		}
		seen[id] = off
	}
}

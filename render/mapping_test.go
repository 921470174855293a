package render

import (
	"testing"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/layout"
)

// TestAspectDifferentialScaling verifies boxes scale width by the aspect ratio and text does not
func TestAspectDifferentialScaling(t *testing.T) {
	box := layout.BoundingBox{X: 10, Y: 3, Width: 100, Height: 5}

	rect := BoxToCells(box, 2)
	if rect != (core.Area{X: 20, Y: 3, Width: 200, Height: 5}) {
		t.Errorf("Expected {20 3 200 5}, got %+v", rect)
	}

	text := TextBoxToCells(box, 2)
	if text != (core.Area{X: 20, Y: 3, Width: 100, Height: 5}) {
		t.Errorf("Expected {20 3 100 5}, got %+v", text)
	}
}

// TestCellsRoundingAndMinimum verifies rounding and the one-cell floor for non-zero sizes
func TestCellsRoundingAndMinimum(t *testing.T) {
	tests := []struct {
		name string
		box  layout.BoundingBox
		want core.Area
	}{
		{"rounds half away", layout.BoundingBox{X: 1.25, Y: 2.5, Width: 3.3, Height: 1.4}, core.Area{X: 3, Y: 3, Width: 7, Height: 1}},
		{"tiny width", layout.BoundingBox{Width: 0.1, Height: 0.2}, core.Area{Width: 1, Height: 1}},
		{"zero stays zero", layout.BoundingBox{X: 4}, core.Area{X: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoxToCells(tt.box, 2); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

// TestMeasureText verifies column widths, line counts and the invalid UTF-8 fallback
func TestMeasureText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want layout.Dimensions
	}{
		{"empty", "", layout.Dimensions{}},
		{"ascii", "abcd", layout.Dimensions{Width: 2, Height: 1}},
		{"wide", "世界", layout.Dimensions{Width: 2, Height: 1}},
		{"lines", "ab\nabcdef\n", layout.Dimensions{Width: 3, Height: 3}},
		{"invalid", "ab\xff\xfe", layout.Dimensions{Width: 2, Height: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeasureText(tt.text, 2); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

// TestTextAttrDecode verifies typed and packed user data
func TestTextAttrDecode(t *testing.T) {
	attr := TextAttr{Bold: true, Italic: true}
	if attr.Pack() != 0x11 {
		t.Errorf("Expected 0x11, got %#x", attr.Pack())
	}
	if UnpackTextAttr(0x11) != attr {
		t.Errorf("Expected %+v, got %+v", attr, UnpackTextAttr(0x11))
	}
	if textAttrOf(attr) != textAttrOf(uint32(0x11)) {
		t.Error("Expected typed and packed forms to agree")
	}
	if textAttrOf("bold") != 0 {
		t.Error("Expected unknown user data to carry no attributes")
	}
}

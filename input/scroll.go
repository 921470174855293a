package input

import (
	"github.com/lixenwraith/cellbridge/layout"
)

// Scroll distances in layout rows
const (
	LineStep     float32 = 1
	HalfPageStep float32 = 12
	JumpStep     float32 = 10000 // clamped by the layout engine
)

// Axis magnitude beyond which arrow input scrolls one line
const axisThreshold float32 = 0.5

// ScrollUpdater advances scroll containers; *layout.Context implements it
type ScrollUpdater interface {
	UpdateScrollContainers(enableDrag bool, delta layout.Vector2, dt float32)
}

// ScrollResolver turns per-frame key state into scroll deltas
// It remembers the previous frame's raw key to detect repeated-key sequences such as gg
type ScrollResolver struct {
	keymap  Keymap
	prevKey rune
}

// NewScrollResolver creates a resolver; a nil keymap selects DefaultKeymap
func NewScrollResolver(km Keymap) *ScrollResolver {
	if km == nil {
		km = DefaultKeymap()
	}
	return &ScrollResolver{keymap: km}
}

// SetKeymap replaces the bindings
func (r *ScrollResolver) SetKeymap(km Keymap) {
	r.keymap = km
}

// PrevKey returns the raw key remembered from the last frame, 0 if none
func (r *ScrollResolver) PrevKey() rune {
	return r.prevKey
}

// Resolve computes this frame's delta and updates the remembered key
// Bound keys take precedence over page keys, which take precedence over the axis
// A nil state yields no delta and keeps the remembered key
func (r *ScrollResolver) Resolve(ks *KeyState) layout.Vector2 {
	if ks == nil {
		return layout.Vector2{}
	}

	var dy float32
	if ks.HasRawKey {
		switch r.keymap[ks.RawKey] {
		case ActionLineDown:
			dy = LineStep
		case ActionLineUp:
			dy = -LineStep
		case ActionHalfPageDown:
			dy = HalfPageStep
		case ActionHalfPageUp:
			dy = -HalfPageStep
		case ActionJumpEnd:
			dy = JumpStep
		case ActionJumpStart:
			if r.prevKey == ks.RawKey {
				dy = -JumpStep
			}
		}
	}

	if dy == 0 {
		switch {
		case ks.PageDown:
			dy = HalfPageStep
		case ks.PageUp:
			dy = -HalfPageStep
		}
	}

	if dy == 0 {
		switch {
		case ks.AxisY > axisThreshold:
			dy = LineStep
		case ks.AxisY < -axisThreshold:
			dy = -LineStep
		}
	}

	if ks.HasRawKey {
		r.prevKey = ks.RawKey
	} else {
		r.prevKey = 0
	}
	return layout.Vector2{Y: dy}
}

// Apply resolves the delta and always advances the scroll containers, even with no input
func (r *ScrollResolver) Apply(ks *KeyState, dt float32, u ScrollUpdater) layout.Vector2 {
	delta := r.Resolve(ks)
	u.UpdateScrollContainers(false, delta, dt)
	return delta
}

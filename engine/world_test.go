package engine

import (
	"slices"
	"testing"
	"time"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/status"
)

// TestGetStoreSingleton verifies one store per component type
func TestGetStoreSingleton(t *testing.T) {
	w := NewWorld()
	if GetStore[testLabel](w) != GetStore[testLabel](w) {
		t.Error("Expected identical store for repeated GetStore calls")
	}
}

// TestChildrenInsertionOrder verifies children iterate in attach order and survive reparenting
func TestChildrenInsertionOrder(t *testing.T) {
	w := NewWorld()
	root := w.CreateEntity()
	other := w.CreateEntity()
	a := w.NewEntity().ChildOf(root).Build()
	b := w.NewEntity().ChildOf(root).Build()
	c := w.NewEntity().ChildOf(root).Build()

	got := slices.Collect(w.Children(root))
	if !slices.Equal(got, []core.Entity{a, b, c}) {
		t.Fatalf("Expected [%d %d %d], got %v", a, b, c, got)
	}

	w.SetParent(b, other)
	got = slices.Collect(w.Children(root))
	if !slices.Equal(got, []core.Entity{a, c}) {
		t.Errorf("Expected b detached, got %v", got)
	}
	if w.Parent(b) != other {
		t.Errorf("Expected parent %d, got %d", other, w.Parent(b))
	}
}

// TestDestroyEntityCascades verifies descendants and their components are removed
func TestDestroyEntityCascades(t *testing.T) {
	w := NewWorld()
	labels := GetStore[testLabel](w)

	root := w.CreateEntity()
	mid := w.NewEntity().ChildOf(root).Build()
	leaf := w.NewEntity().ChildOf(mid).Build()
	keep := w.NewEntity().ChildOf(root).Build()
	for _, e := range []core.Entity{root, mid, leaf, keep} {
		labels.Set(e, testLabel{})
	}

	w.DestroyEntity(mid)

	if w.Alive(mid) || w.Alive(leaf) {
		t.Error("Expected subtree to be destroyed")
	}
	if labels.Has(mid) || labels.Has(leaf) {
		t.Error("Expected subtree components to be removed")
	}
	if !labels.Has(keep) || !w.Alive(keep) {
		t.Error("Expected sibling to survive")
	}
	got := slices.Collect(w.Children(root))
	if !slices.Equal(got, []core.Entity{keep}) {
		t.Errorf("Expected only sibling under root, got %v", got)
	}
}

// TestPipelineOrder verifies phase order then priority order with stable ties
func TestPipelineOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	record := func(name string) func(*World, time.Duration) {
		return func(*World, time.Duration) { order = append(order, name) }
	}

	w.AddSystem(PhaseOnStore, NewSystem("render", 100, record("render")))
	w.AddSystem(PhaseOnStore, NewSystem("publish", 0, record("publish")))
	w.AddSystem(PhasePreStore, NewSystem("layout", 0, record("layout")))
	w.AddSystem(PhaseOnUpdate, NewSystem("scroll-a", 5, record("scroll-a")))
	w.AddSystem(PhaseOnUpdate, NewSystem("scroll-b", 5, record("scroll-b")))
	w.AddSystem(PhaseOnLoad, NewSystem("input", 0, record("input")))

	w.Progress(16 * time.Millisecond)

	want := []string{"input", "scroll-a", "scroll-b", "layout", "publish", "render"}
	if !slices.Equal(order, want) {
		t.Errorf("Expected %v, got %v", want, order)
	}

	reg := MustGetResource[*status.Registry](w.Resources)
	if !reg.Floats.Has("system.layout.ms") {
		t.Error("Expected timing metric for named system")
	}
	if tr := MustGetResource[*TimeResource](w.Resources); tr.FrameNumber != 1 || tr.DeltaTime != 16*time.Millisecond {
		t.Errorf("Expected frame 1 with 16ms delta, got frame %d delta %v", tr.FrameNumber, tr.DeltaTime)
	}
}

// TestLoopStepDelta verifies the loop measures deltas from its clock
func TestLoopStepDelta(t *testing.T) {
	w := NewWorld()
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	loop := NewLoop(w, clock, 0)

	var hooks int
	loop.BeforeFrame(func() { hooks++ })

	if dt := loop.Step(); dt != 0 {
		t.Errorf("Expected zero delta on first step, got %v", dt)
	}
	clock.Advance(20 * time.Millisecond)
	if dt := loop.Step(); dt != 20*time.Millisecond {
		t.Errorf("Expected 20ms delta, got %v", dt)
	}
	if hooks != 2 {
		t.Errorf("Expected 2 hook calls, got %d", hooks)
	}

	reg := MustGetResource[*status.Registry](w.Resources)
	if got := reg.Ints.Get("engine.frames").Load(); got != 2 {
		t.Errorf("Expected 2 frames, got %d", got)
	}
}

// TestIntervalForFPS verifies rate conversion
func TestIntervalForFPS(t *testing.T) {
	if IntervalForFPS(50) != 20*time.Millisecond {
		t.Errorf("Expected 20ms, got %v", IntervalForFPS(50))
	}
	if IntervalForFPS(0) != 0 {
		t.Error("Expected zero interval for zero fps")
	}
}

// TestResourceStore verifies typed lookup
func TestResourceStore(t *testing.T) {
	rs := NewResourceStore()
	type marker struct{ N int }
	AddResource(rs, &marker{N: 7})

	m, ok := GetResource[*marker](rs)
	if !ok || m.N != 7 {
		t.Errorf("Expected marker 7, got %+v ok=%v", m, ok)
	}
	if _, ok := GetResource[*testLabel](rs); ok {
		t.Error("Expected missing resource")
	}
}

// TestSetParentRejectsCycles verifies an ancestor cannot be attached under its own descendant
func TestSetParentRejectsCycles(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()

	if !w.SetParent(b, a) || !w.SetParent(c, b) {
		t.Fatal("Expected acyclic attach to succeed")
	}
	if w.SetParent(a, b) {
		t.Error("Expected direct cycle to be rejected")
	}
	if w.SetParent(a, c) {
		t.Error("Expected indirect cycle to be rejected")
	}
	if w.SetParent(a, a) {
		t.Error("Expected self-parenting to be rejected")
	}
	if w.Parent(a) != core.NoEntity {
		t.Errorf("Expected a to stay a root, got parent %d", w.Parent(a))
	}
	if got := slices.Collect(w.Children(c)); len(got) != 0 {
		t.Errorf("Expected c to have no children, got %v", got)
	}

	w.DestroyEntity(a)
	for _, e := range []core.Entity{a, b, c} {
		if w.Alive(e) {
			t.Errorf("Expected %d destroyed with its root", e)
		}
	}
}

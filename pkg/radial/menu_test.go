package radial

import (
	"testing"
	"time"
)

type fakeRouter struct {
	path    string
	visited []string
}

func (r *fakeRouter) CurrentPath() string { return r.path }

func (r *fakeRouter) GoTo(route string) {
	r.path = route
	r.visited = append(r.visited, route)
}

func newTestMenu(path string, size Size) (*Menu, *fakeRouter, *Window) {
	w := NewWindow(size)
	r := &fakeRouter{path: path}
	return NewMenu(DefaultItems(), Track(w), r, DefaultConfig()), r, w
}

func TestMenuStateMachine(t *testing.T) {
	tests := []struct {
		name    string
		actions func(m *Menu)
		want    State
	}{
		{"initial", func(m *Menu) {}, Closed},
		{"trigger opens", func(m *Menu) { m.Trigger() }, Open},
		{"second trigger closes", func(m *Menu) { m.Trigger(); m.Trigger() }, Closed},
		{"backdrop closes", func(m *Menu) { m.Trigger(); m.Backdrop() }, Closed},
		{"item closes", func(m *Menu) { m.Trigger(); m.Select(2) }, Closed},
		{"backdrop while closed", func(m *Menu) { m.Backdrop() }, Closed},
		{"item while closed", func(m *Menu) { m.Select(1) }, Closed},
		{"reopen after select", func(m *Menu) { m.Trigger(); m.Select(0); m.Trigger() }, Open},
		{"unknown item ignored", func(m *Menu) { m.Trigger(); m.Select(42) }, Open},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestMenu("/", Size{1920, 1080})
			tt.actions(m)
			if got := m.State(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMenuRapidToggle(t *testing.T) {
	m, _, _ := newTestMenu("/", Size{1920, 1080})
	for i := 1; i <= 101; i++ {
		got := m.Trigger()
		want := Closed
		if i%2 == 1 {
			want = Open
		}
		if got != want {
			t.Fatalf("toggle %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestMenuSelectNavigates(t *testing.T) {
	m, r, _ := newTestMenu("/", Size{1920, 1080})

	if _, ok := m.Select(3); ok {
		t.Fatal("select on closed menu should be ignored")
	}

	m.Trigger()
	item, ok := m.Select(3)
	if !ok || item.Route != "/projects" {
		t.Fatalf("expected /projects, got %+v (%v)", item, ok)
	}
	if len(r.visited) != 1 || r.path != "/projects" {
		t.Fatalf("router not updated: %+v", r)
	}

	v := m.View()
	if !v.Items[3].Active {
		t.Fatal("selected item should be active after navigation")
	}
}

func TestActiveExclusivity(t *testing.T) {
	items := append(DefaultItems(), Item{Route: "/projects", Label: "Duplicate"})
	tests := []struct {
		path string
		want int
	}{
		{"/projects", 3},
		{"/", 0},
		{"/contact", 5},
		{"/projects/", -1},
		{"/nowhere", -1},
		{"", -1},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := &fakeRouter{path: tt.path}
			m := NewMenu(items, NewWindow(Size{800, 600}), r, DefaultConfig())
			m.Trigger()

			active := -1
			count := 0
			for _, iv := range m.View().Items {
				if iv.Active {
					active = iv.Index
					count++
				}
			}
			if count > 1 {
				t.Fatalf("expected at most one active item, got %d", count)
			}
			if active != tt.want {
				t.Fatalf("expected active %d, got %d", tt.want, active)
			}
		})
	}
}

func TestViewOpenStagger(t *testing.T) {
	m, _, _ := newTestMenu("/", Size{1920, 1080})
	m.Trigger()
	v := m.View()

	if !v.Open() || !v.Backdrop {
		t.Fatal("expected open view with backdrop")
	}
	if v.Trigger.Icon != IconClose || v.Trigger.Rotation != 45 {
		t.Fatalf("unexpected trigger %+v", v.Trigger)
	}

	wantDelays := []time.Duration{0, 50, 100, 150, 200, 250}
	for i, iv := range v.Items {
		if iv.Motion.Delay != wantDelays[i]*time.Millisecond {
			t.Errorf("item %d: delay %v", i, iv.Motion.Delay)
		}
		if iv.Motion.Scale != 1 || iv.Motion.Opacity != 1 {
			t.Errorf("item %d: expected full scale, got %+v", i, iv.Motion)
		}
		if iv.Motion.X != iv.Position.X || iv.Motion.Y != iv.Position.Y {
			t.Errorf("item %d: motion target %+v differs from position %+v", i, iv.Motion, iv.Position)
		}
	}
}

func TestViewClosedTargetsAnchor(t *testing.T) {
	m, _, _ := newTestMenu("/", Size{1920, 1080})
	m.Trigger()
	m.Trigger()
	v := m.View()

	if v.Open() || v.Backdrop {
		t.Fatal("expected closed view without backdrop")
	}
	if v.Trigger.Icon != IconMenu {
		t.Fatalf("unexpected trigger %+v", v.Trigger)
	}
	for i, iv := range v.Items {
		if iv.Motion.X != 0 || iv.Motion.Y != 0 || iv.Motion.Scale != 0 || iv.Motion.Opacity != 0 {
			t.Errorf("item %d: expected anchor target, got %+v", i, iv.Motion)
		}
	}
}

func TestViewFollowsViewport(t *testing.T) {
	m, _, w := newTestMenu("/", Size{})
	m.Trigger()

	for _, iv := range m.View().Items {
		if iv.Position != (Position{}) {
			t.Fatalf("unmeasured viewport should keep items on the anchor: %+v", iv.Position)
		}
	}

	w.Resize(Size{320, 480})
	last := m.View().Items[5].Position
	if !near(last.Y, -80) {
		t.Fatalf("expected mobile radius 80, got %+v", last)
	}
}

func TestHover(t *testing.T) {
	m, _, _ := newTestMenu("/", Size{1920, 1080})

	m.Hover(1)
	if _, ok := m.Hovered(); ok {
		t.Fatal("hover on closed menu should be ignored")
	}

	m.Trigger()
	m.Hover(1)
	if i, ok := m.Hovered(); !ok || i != 1 {
		t.Fatalf("expected hovered 1, got %d %v", i, ok)
	}
	if !m.View().Items[1].Hovered {
		t.Fatal("view should mark hovered item")
	}

	m.Hover(2)
	m.Unhover(1)
	if i, _ := m.Hovered(); i != 2 {
		t.Fatalf("stale leave cleared hover: got %d", i)
	}

	m.Unhover(2)
	if _, ok := m.Hovered(); ok {
		t.Fatal("expected hover cleared")
	}

	m.Hover(4)
	m.Trigger()
	if _, ok := m.Hovered(); ok {
		t.Fatal("closing should clear hover")
	}
}

func TestMenuItemsFixed(t *testing.T) {
	items := DefaultItems()
	m := NewMenu(items, NewWindow(Size{}), &fakeRouter{}, DefaultConfig())
	items[0].Route = "/mutated"

	if m.Items()[0].Route != "/" {
		t.Fatal("menu items changed after construction")
	}
	got := m.Items()
	got[1].Label = "x"
	if m.Items()[1].Label != "About" {
		t.Fatal("Items exposed internal slice")
	}
}

func TestConfigSweep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArcSweep = 90
	l := cfg.Layout()
	if l.StartAngle != 180 || l.EndAngle != 270 {
		t.Fatalf("unexpected arc %v..%v", l.StartAngle, l.EndAngle)
	}
}

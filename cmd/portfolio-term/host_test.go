package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/portfolio/pkg/radial"
)

func newTestHost(t *testing.T, w, h int) (*host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)

	hst := newHost(screen, termConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(hst.close)
	return hst, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func click(h *host, x, y int) {
	h.handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	h.handle(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

// itemCell returns where item i is drawn on a w×ht screen.
func itemCell(h *host, i, w, ht int) (int, int) {
	v := h.menu.View()
	ax, ay := anchor(v.Corner, v.Inset, w, ht)
	return cell(ax, ay, v.Items[i].Position)
}

func TestHostKeys(t *testing.T) {
	h, _ := newTestHost(t, 80, 24)

	if !h.handle(key('m')) || h.menu.State() != radial.Open {
		t.Fatal("m should open the menu")
	}
	h.handle(key('4'))
	if h.menu.State() != radial.Closed {
		t.Fatal("selecting should close the menu")
	}
	if h.router.CurrentPath() != "/projects" {
		t.Fatalf("expected /projects, got %q", h.router.CurrentPath())
	}

	h.handle(key('2'))
	if h.router.CurrentPath() != "/projects" {
		t.Fatal("selection honoured while closed")
	}

	h.handle(key('m'))
	h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if h.menu.State() != radial.Closed {
		t.Fatal("escape should close the menu")
	}

	h.handle(key('m'))
	h.handle(key('9'))
	if h.menu.State() != radial.Open {
		t.Fatal("out of range selection should be ignored")
	}

	if h.handle(key('q')) {
		t.Fatal("q should quit")
	}
	if h.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Fatal("ctrl-c should quit")
	}
}

func TestHostResize(t *testing.T) {
	h, _ := newTestHost(t, 80, 24)

	if got := h.tracker.Size(); got != (radial.Size{Width: 40, Height: 24}) {
		t.Fatalf("unexpected initial viewport %+v", got)
	}
	h.handle(tcell.NewEventResize(200, 60))
	if got := h.tracker.Size(); got != (radial.Size{Width: 100, Height: 60}) {
		t.Fatalf("resize not tracked, got %+v", got)
	}
}

func TestHostDrawsArc(t *testing.T) {
	h, screen := newTestHost(t, 80, 24)
	h.handle(key('m'))
	h.draw()

	// radius min(12, 0.25*24) = 6 half-columns: first item 12 columns left
	// of the anchor, last item 6 rows above it.
	ax, ay := 75, 21
	tests := []struct {
		index int
		x, y  int
	}{
		{0, ax - 12, ay},
		{5, ax, ay - 6},
	}
	for _, tt := range tests {
		x, y := itemCell(h, tt.index, 80, 24)
		if x != tt.x || y != tt.y {
			t.Errorf("item %d at (%d,%d), want (%d,%d)", tt.index, x, y, tt.x, tt.y)
		}
		r, _, _, _ := screen.GetContent(x, y)
		want := iconRunes[radial.DefaultItems()[tt.index].Icon]
		if r != want {
			t.Errorf("item %d: drew %q, want %q", tt.index, r, want)
		}
	}

	if r, _, _, _ := screen.GetContent(ax, ay); r != iconRunes[radial.IconClose] {
		t.Errorf("trigger shows %q while open", r)
	}
}

func TestHostArcStaysOnScreen(t *testing.T) {
	sizes := [][2]int{{80, 24}, {40, 12}, {200, 60}, {12, 6}}
	for _, sz := range sizes {
		w, ht := sz[0], sz[1]
		h, _ := newTestHost(t, w, ht)
		h.handle(key('m'))
		for i := range radial.DefaultItems() {
			x, y := itemCell(h, i, w, ht)
			if x < 0 || x >= w || y < 0 || y >= ht {
				t.Errorf("%dx%d: item %d off screen at (%d,%d)", w, ht, i, x, y)
			}
		}
	}
}

func TestHostMouse(t *testing.T) {
	h, _ := newTestHost(t, 80, 24)
	h.draw()

	// trigger
	click(h, 75, 21)
	if h.menu.State() != radial.Open {
		t.Fatal("clicking the trigger should open the menu")
	}
	h.draw()

	x, y := itemCell(h, 1, 80, 24)
	h.handle(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	if i, ok := h.menu.Hovered(); !ok || i != 1 {
		t.Fatalf("expected item 1 hovered, got %d %v", i, ok)
	}
	h.handle(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone))
	if _, ok := h.menu.Hovered(); ok {
		t.Fatal("hover not cleared when leaving the item")
	}

	click(h, x, y)
	if h.router.CurrentPath() != "/about" || h.menu.State() != radial.Closed {
		t.Fatalf("click on item: path %q state %v", h.router.CurrentPath(), h.menu.State())
	}

	h.draw()
	click(h, 75, 21)
	h.draw()
	click(h, 2, 2)
	if h.menu.State() != radial.Closed {
		t.Fatal("clicking outside should close the menu")
	}
}

func TestHostActiveHighlight(t *testing.T) {
	h, screen := newTestHost(t, 80, 24)
	h.router.GoTo("/skills")
	h.handle(key('m'))
	h.draw()

	accent := tcell.GetColor(termConfig().AccentColor)
	for i, it := range radial.DefaultItems() {
		x, y := itemCell(h, i, 80, 24)
		_, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		if active := it.Route == "/skills"; active != (bg == accent) {
			t.Errorf("item %d (%s): active=%v but background %v", i, it.Route, active, bg)
		}
	}
}

func TestPageFor(t *testing.T) {
	for _, it := range radial.DefaultItems() {
		pg := pageFor(it.Route)
		if pg.title == "Not found" || len(pg.lines) == 0 {
			t.Errorf("%s: no page", it.Route)
		}
	}
	if pg := pageFor("/nowhere"); pg.title != "Not found" {
		t.Errorf("unknown route rendered %q", pg.title)
	}
}

func TestAnchorCorners(t *testing.T) {
	inset := radial.Inset{Right: 2, Bottom: 2}
	tests := []struct {
		corner radial.Corner
		x, y   int
	}{
		{radial.BottomRight, 75, 21},
		{radial.BottomLeft, 4, 21},
		{radial.TopRight, 75, 2},
		{radial.TopLeft, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			if x, y := anchor(tt.corner, inset, 80, 24); x != tt.x || y != tt.y {
				t.Fatalf("got (%d,%d), want (%d,%d)", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestRunLayout(t *testing.T) {
	var out bytes.Buffer
	err := runLayout([]string{"-width", "1920", "-height", "1080", "-units", "px"}, &out)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, want := range []string{"radius 140", "corner bottom-right", "-121.24", "70.00", "-140.00", "Contact"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := runLayout([]string{"-width", "80", "-height", "24", "-items", "8"}, &out); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.Contains(out.String(), "item 8") {
		t.Errorf("extra items not listed:\n%s", out.String())
	}
}

func TestRunLayoutErrors(t *testing.T) {
	tests := [][]string{
		{"-units", "furlongs", "-width", "10", "-height", "10"},
		{"-items", "-1", "-width", "10", "-height", "10"},
		{"-width", "wide"},
	}
	for _, args := range tests {
		if err := runLayout(args, io.Discard); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

package main

import (
	"log/slog"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/portfolio/pkg/radial"
)

// cellAspect is how many columns make up one layout unit horizontally.
// Terminal cells are about twice as tall as they are wide, so the arc is
// laid out in half-width units and stretched back when drawn.
const cellAspect = 2

// termConfig anchors the menu four columns and two rows from the corner.
// The bottom inset is too small for items below the anchor, so the arc
// is a quarter turn from straight left to straight up.
func termConfig() radial.Config {
	cfg := radial.DefaultConfig()
	cfg.AccentColor = "#5fafff"
	cfg.ArcSweep = 90
	cfg.Inset = radial.Inset{Right: 2, Bottom: 2}
	cfg.Margin = radial.Margin{Left: 1, Top: 1}
	cfg.MaxRadius = 12
	return cfg
}

// cellViewport converts a screen size to layout units.
func cellViewport(w, h int) radial.Size {
	return radial.Size{Width: float64(w) / cellAspect, Height: float64(h)}
}

// termRouter tracks the page being shown. It is only touched from the
// event loop.
type termRouter struct {
	path  string
	trail []string
}

func (r *termRouter) CurrentPath() string { return r.path }

func (r *termRouter) GoTo(route string) {
	r.path = route
	r.trail = append(r.trail, route)
}

// hitBox is a clickable span on one row. index is -1 for the trigger.
type hitBox struct {
	x0, x1, y int
	index     int
}

func (b hitBox) contains(x, y int) bool {
	return y == b.y && x >= b.x0 && x <= b.x1
}

const triggerHit = -1

// host drives a radial.Menu from tcell events.
type host struct {
	screen  tcell.Screen
	window  *radial.Window
	tracker *radial.Tracker
	router  *termRouter
	menu    *radial.Menu
	log     *slog.Logger

	hits    []hitBox
	pressed bool
}

func newHost(screen tcell.Screen, cfg radial.Config, log *slog.Logger) *host {
	w, h := screen.Size()
	window := radial.NewWindow(cellViewport(w, h))
	tracker := radial.Track(window)
	router := &termRouter{path: "/"}

	return &host{
		screen:  screen,
		window:  window,
		tracker: tracker,
		router:  router,
		menu:    radial.NewMenu(radial.DefaultItems(), tracker, router, cfg),
		log:     log,
	}
}

func (h *host) close() {
	h.tracker.Close()
}

// handle applies one event and reports whether the loop should continue.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.window.Resize(cellViewport(w, ht))
		h.log.Debug("resize", "width", w, "height", ht)
		h.screen.Sync()

	case *tcell.EventKey:
		return h.key(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !h.pressed {
			h.click(x, y)
		} else if !down {
			h.hover(x, y)
		}
		h.pressed = down
	}
	return true
}

func (h *host) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		h.menu.Backdrop()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return false
	case r == 'm':
		state := h.menu.Trigger()
		h.log.Debug("menu toggled", "state", state)
	case r >= '1' && r <= '9':
		h.selectItem(int(r - '1'))
	}
	return true
}

func (h *host) selectItem(i int) {
	if item, ok := h.menu.Select(i); ok {
		h.log.Info("navigate", "route", item.Route)
	}
}

func (h *host) hitAt(x, y int) (int, bool) {
	for _, b := range h.hits {
		if b.contains(x, y) {
			return b.index, true
		}
	}
	return 0, false
}

func (h *host) click(x, y int) {
	i, ok := h.hitAt(x, y)
	switch {
	case ok && i == triggerHit:
		h.menu.Trigger()
	case ok:
		h.selectItem(i)
	default:
		h.menu.Backdrop()
	}
}

func (h *host) hover(x, y int) {
	if i, ok := h.hitAt(x, y); ok && i != triggerHit {
		h.menu.Hover(i)
		return
	}
	if i, ok := h.menu.Hovered(); ok {
		h.menu.Unhover(i)
	}
}

// anchor returns the screen cell the menu grows from.
func anchor(corner radial.Corner, inset radial.Inset, w, ht int) (int, int) {
	dx := int(inset.Right) * cellAspect
	dy := int(inset.Bottom)
	x, y := w-1-dx, ht-1-dy
	if corner == radial.BottomLeft || corner == radial.TopLeft {
		x = dx
	}
	if corner == radial.TopRight || corner == radial.TopLeft {
		y = dy
	}
	return x, y
}

func cell(ax, ay int, p radial.Position) (int, int) {
	return ax + int(math.Round(p.X*cellAspect)), ay + int(math.Round(p.Y))
}

var iconRunes = map[radial.Icon]rune{
	radial.IconHome:      '⌂',
	radial.IconUser:      '☺',
	radial.IconZap:       '↯',
	radial.IconRocket:    '↑',
	radial.IconBriefcase: '▣',
	radial.IconMail:      '✉',
	radial.IconMenu:      '≡',
	radial.IconClose:     '×',
}

var (
	stylePage    = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleMuted   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleItem    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	styleTrigger = tcell.StyleDefault.Foreground(tcell.ColorBlack)
)

func (h *host) draw() {
	h.screen.Clear()
	w, ht := h.screen.Size()

	h.drawPage(w, ht)
	h.drawMenu(w, ht)
	h.screen.Show()
}

func (h *host) drawPage(w, ht int) {
	pg := pageFor(h.router.CurrentPath())
	drawText(h.screen, 2, 1, w-2, styleTitle, pg.title)
	row := 3
	for _, line := range pg.lines {
		if row >= ht-1 {
			break
		}
		drawText(h.screen, 2, row, w-2, stylePage, line)
		row++
	}
	drawText(h.screen, 2, ht-1, w-2, styleMuted, "m menu  1-6 go  esc close  q quit")
}

func (h *host) drawMenu(w, ht int) {
	v := h.menu.View()
	accent := tcell.GetColor(v.Accent)
	ax, ay := anchor(v.Corner, v.Inset, w, ht)

	h.hits = h.hits[:0]
	if v.Open() {
		for _, it := range v.Items {
			x, y := cell(ax, ay, it.Position)
			style := styleItem
			if it.Active {
				style = style.Background(accent).Foreground(tcell.ColorBlack)
			}
			if it.Hovered {
				style = style.Reverse(true)
			}
			label := []rune{' ', iconRunes[it.Icon], rune('1' + it.Index)}
			drawRunes(h.screen, x-1, y, w, style, label)
			h.hits = append(h.hits, hitBox{x0: x - 1, x1: x + 1, y: y, index: it.Index})

			if it.Hovered {
				h.drawLabel(x, y, w, ht, it.Label, it.Placement)
			}
		}
	}

	trigger := []rune{' ', iconRunes[v.Trigger.Icon], ' '}
	drawRunes(h.screen, ax-1, ay, w, styleTrigger.Background(accent), trigger)
	h.hits = append(h.hits, hitBox{x0: ax - 1, x1: ax + 1, y: ay, index: triggerHit})
}

func (h *host) drawLabel(x, y, w, ht int, label string, lp radial.LabelPlacement) {
	n := len([]rune(label))
	ly := y - 1
	if lp.Vertical == radial.Below {
		ly = y + 1
	}
	lx := x - n/2
	switch lp.Horizontal {
	case radial.Right:
		lx = x + 2
	case radial.Left:
		lx = x - 2 - n
	}
	if ly < 0 || ly >= ht {
		return
	}
	drawText(h.screen, lx, ly, w, styleTitle, label)
}

func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, text string) {
	drawRunes(s, x, y, maxX, style, []rune(text))
}

func drawRunes(s tcell.Screen, x, y, maxX int, style tcell.Style, rs []rune) {
	for i, r := range rs {
		cx := x + i
		if cx < 0 {
			continue
		}
		if cx >= maxX {
			return
		}
		s.SetContent(cx, y, r, nil, style)
	}
}

// run is the event loop; it returns when the user quits or events stop.
func (h *host) run() {
	h.draw()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		if !h.handle(ev) {
			return
		}
		h.draw()
	}
}

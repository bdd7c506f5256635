package radial

import (
	"sync"
	"time"
)

// DefaultStagger is the delay between consecutive items entering the arc.
const DefaultStagger = 50 * time.Millisecond

// Icon names the glyph a renderer draws for an item.
type Icon string

const (
	IconHome      Icon = "home"
	IconUser      Icon = "user"
	IconZap       Icon = "zap"
	IconRocket    Icon = "rocket"
	IconBriefcase Icon = "briefcase"
	IconMail      Icon = "mail"
	IconMenu      Icon = "menu"
	IconClose     Icon = "close"
)

// Item is a fixed navigation entry.
type Item struct {
	Route string `json:"route"`
	Label string `json:"label"`
	Icon  Icon   `json:"icon"`
}

// DefaultItems is the portfolio's page list in arc order.
func DefaultItems() []Item {
	return []Item{
		{Route: "/", Label: "Home", Icon: IconHome},
		{Route: "/about", Label: "About", Icon: IconUser},
		{Route: "/skills", Label: "Skills", Icon: IconZap},
		{Route: "/projects", Label: "Projects", Icon: IconRocket},
		{Route: "/experience", Label: "Experience", Icon: IconBriefcase},
		{Route: "/contact", Label: "Contact", Icon: IconMail},
	}
}

// Router is the routing collaborator: it knows the current path and navigates.
type Router interface {
	CurrentPath() string
	GoTo(route string)
}

// SizeReader supplies the latest viewport size.
type SizeReader interface {
	Size() Size
}

// Config parameterizes one menu instance.
type Config struct {
	AccentColor string
	Corner      Corner
	// ArcSweep is the spread in degrees; the arc always ends pointing away
	// from the anchored edge.
	ArcSweep float64
	Inset    Inset
	Margin   Margin
	// MaxRadius overrides DefaultMaxRadius when positive.
	MaxRadius float64
	Stagger   time.Duration
}

// DefaultConfig returns the bottom-right portfolio configuration.
func DefaultConfig() Config {
	return Config{
		AccentColor: "#ffffff",
		Corner:      BottomRight,
		ArcSweep:    DefaultEndAngle - DefaultStartAngle,
		Inset:       Inset{Right: DefaultInset, Bottom: DefaultInset},
		Margin:      Margin{Left: DefaultMargin, Top: DefaultMargin},
		MaxRadius:   DefaultMaxRadius,
		Stagger:     DefaultStagger,
	}
}

// Layout derives the arc layout from the configuration.
func (c Config) Layout() Layout {
	l := DefaultLayout()
	l.Corner = c.Corner
	l.Inset = c.Inset
	l.Margin = c.Margin
	if c.ArcSweep > 0 {
		l.StartAngle = l.EndAngle - c.ArcSweep
	}
	if c.MaxRadius > 0 {
		l.MaxRadius = c.MaxRadius
	}
	return l
}

// State is the open/closed state of the menu.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Menu is the radial navigation controller. Hosts forward user events to it
// and render its View; it has no way to be opened other than the trigger.
type Menu struct {
	mu      sync.Mutex
	items   []Item
	cfg     Config
	layout  Layout
	size    SizeReader
	router  Router
	state   State
	hovered int
}

// NewMenu builds a closed menu over a fixed item list.
func NewMenu(items []Item, size SizeReader, router Router, cfg Config) *Menu {
	fixed := make([]Item, len(items))
	copy(fixed, items)
	return &Menu{
		items:   fixed,
		cfg:     cfg,
		layout:  cfg.Layout(),
		size:    size,
		router:  router,
		hovered: -1,
	}
}

// Items returns a copy of the item list.
func (m *Menu) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Menu) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Trigger handles a click on the trigger button.
func (m *Menu) Trigger() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Open {
		m.closeLocked()
	} else {
		m.state = Open
	}
	return m.state
}

// Backdrop handles a click on the backdrop. It only exists while open.
func (m *Menu) Backdrop() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
	return m.state
}

// Select handles a click on item index: it navigates and closes the menu.
// Clicks on hidden or unknown items are ignored.
func (m *Menu) Select(index int) (Item, bool) {
	m.mu.Lock()
	if m.state != Open || index < 0 || index >= len(m.items) {
		m.mu.Unlock()
		return Item{}, false
	}
	item := m.items[index]
	m.closeLocked()
	m.mu.Unlock()

	m.router.GoTo(item.Route)
	return item, true
}

// Hover marks item index as under the pointer.
func (m *Menu) Hover(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Open && index >= 0 && index < len(m.items) {
		m.hovered = index
	}
}

// Unhover clears the hover mark if it still belongs to index.
func (m *Menu) Unhover(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hovered == index {
		m.hovered = -1
	}
}

// Hovered returns the hovered item index, if any.
func (m *Menu) Hovered() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hovered, m.hovered >= 0
}

func (m *Menu) closeLocked() {
	m.state = Closed
	m.hovered = -1
}

// ActiveIndex returns the first item whose route equals path exactly, or -1.
func ActiveIndex(items []Item, path string) int {
	for i, it := range items {
		if it.Route == path {
			return i
		}
	}
	return -1
}

// Motion is the transition target of an item for the current state.
type Motion struct {
	X       float64
	Y       float64
	Scale   float64
	Opacity float64
	Delay   time.Duration
}

// ItemView is everything a renderer needs for one item.
type ItemView struct {
	Item
	Index     int
	Active    bool
	Hovered   bool
	Position  Position
	Motion    Motion
	Placement LabelPlacement
}

// TriggerView describes the trigger button.
type TriggerView struct {
	Icon     Icon
	Rotation float64
}

// View is a render snapshot of the menu.
type View struct {
	State    State
	Accent   string
	Corner   Corner
	Inset    Inset
	Viewport Size
	Backdrop bool
	Trigger  TriggerView
	Items    []ItemView
}

// Open reports whether the snapshot was taken while open.
func (v View) Open() bool { return v.State == Open }

// View renders the current state. Positions are recomputed on every call
// from the tracked viewport; closed items target the anchor.
func (m *Menu) View() View {
	m.mu.Lock()
	state, hovered := m.state, m.hovered
	m.mu.Unlock()

	vp := m.size.Size()
	active := ActiveIndex(m.items, m.router.CurrentPath())

	v := View{
		State:    state,
		Accent:   m.cfg.AccentColor,
		Corner:   m.cfg.Corner,
		Inset:    m.cfg.Inset,
		Viewport: vp,
		Backdrop: state == Open,
		Trigger:  TriggerView{Icon: IconMenu},
		Items:    make([]ItemView, len(m.items)),
	}
	if state == Open {
		v.Trigger = TriggerView{Icon: IconClose, Rotation: 45}
	}

	for i, it := range m.items {
		pos := m.layout.Position(i, len(m.items), vp)
		iv := ItemView{
			Item:      it,
			Index:     i,
			Active:    i == active,
			Hovered:   i == hovered,
			Position:  pos,
			Placement: PlaceLabel(pos),
			Motion:    Motion{Delay: time.Duration(i) * m.cfg.Stagger},
		}
		if state == Open {
			iv.Motion.X, iv.Motion.Y = pos.X, pos.Y
			iv.Motion.Scale, iv.Motion.Opacity = 1, 1
		}
		v.Items[i] = iv
	}
	return v
}

package main

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/pkg/radial"
)

const navCookie = "nav_session"

// Nav actions, used as metric labels and in the nav_events table.
const (
	navOpen     = "open"
	navClose    = "close"
	navBackdrop = "backdrop"
	navSelect   = "select"
	navResize   = "resize"
)

// sessionRouter is the routing collaborator of one visitor: the last page
// they loaded and the route the menu sent them to.
type sessionRouter struct {
	mu   sync.Mutex
	path string
}

func (r *sessionRouter) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

func (r *sessionRouter) GoTo(route string) {
	r.mu.Lock()
	r.path = route
	r.mu.Unlock()
}

// navSession is one visitor's radial menu and the viewport that feeds it.
type navSession struct {
	id       string
	window   *radial.Window
	tracker  *radial.Tracker
	router   *sessionRouter
	menu     *radial.Menu
	lastSeen atomic.Int64
}

func (ns *navSession) touch(t time.Time) {
	ns.lastSeen.Store(t.UnixNano())
}

func (ns *navSession) close() {
	ns.tracker.Close()
}

// navSessions owns every live menu. Idle sessions are evicted by run.
type navSessions struct {
	mu       sync.Mutex
	sessions map[string]*navSession
	items    []radial.Item
	cfg      radial.Config
	ttl      time.Duration
	now      func() time.Time
}

func newNavSessions(items []radial.Item, cfg radial.Config, ttl time.Duration) *navSessions {
	return &navSessions{
		sessions: make(map[string]*navSession),
		items:    items,
		cfg:      cfg,
		ttl:      ttl,
		now:      time.Now,
	}
}

// get returns the session for id, creating a new one when id is unknown.
// The second result reports whether a session was created.
func (n *navSessions) get(id string) (*navSession, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ns, ok := n.sessions[id]; ok {
		ns.touch(n.now())
		return ns, false
	}

	ns := &navSession{
		id:     uuid.NewString(),
		window: radial.NewWindow(radial.Size{}),
		router: &sessionRouter{path: "/"},
	}
	ns.tracker = radial.Track(ns.window)
	ns.menu = radial.NewMenu(n.items, ns.tracker, ns.router, n.cfg)
	ns.touch(n.now())
	n.sessions[ns.id] = ns
	return ns, true
}

func (n *navSessions) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sessions)
}

// evictIdle drops sessions not seen within the TTL and releases their trackers.
func (n *navSessions) evictIdle() int {
	cutoff := n.now().Add(-n.ttl).UnixNano()

	n.mu.Lock()
	var idle []*navSession
	for id, ns := range n.sessions {
		if ns.lastSeen.Load() < cutoff {
			idle = append(idle, ns)
			delete(n.sessions, id)
		}
	}
	n.mu.Unlock()

	for _, ns := range idle {
		ns.close()
	}
	return len(idle)
}

func (n *navSessions) closeAll() {
	n.mu.Lock()
	all := n.sessions
	n.sessions = make(map[string]*navSession)
	n.mu.Unlock()

	for _, ns := range all {
		ns.close()
	}
}

// run evicts idle sessions until ctx is done, then closes the rest.
func (n *navSessions) run(ctx context.Context) error {
	interval := n.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			n.closeAll()
			return nil
		case <-ticker.C:
			if evicted := n.evictIdle(); evicted > 0 {
				slog.Debug("evicted idle nav sessions", "count", evicted, "live", n.Len())
			}
		}
	}
}

// session resolves the visitor's nav session from its cookie.
func (s *app) session(c *gin.Context) *navSession {
	id, _ := c.Cookie(navCookie)
	ns, created := s.nav.get(id)
	if created {
		c.SetCookie(navCookie, ns.id, int(s.cfg.NavSessionTTL.Seconds()), "/", "", false, true)
	}
	return ns
}

func (s *app) recordNav(ns *navSession, action, route string) {
	s.navEvents.Increment(action)
	if action == navResize {
		return
	}
	hashed := s.admin.hash(ns.id)
	s.background(func(ctx context.Context) {
		if err := s.store.RecordNavEvent(ctx, hashed, action, route, time.Now()); err != nil {
			slog.Error("error recording nav event", "action", action, "error", err)
		}
	})
}

// navItemView and navView are the template shapes of radial.View.
type navItemView struct {
	Index      int
	Route      string
	Label      string
	Icon       string
	Active     bool
	Hovered    bool
	Style      template.CSS
	LabelClass string
}

type navView struct {
	Open        bool
	Accent      string
	Corner      string
	AnchorStyle template.CSS
	TriggerIcon string
	TriggerTurn template.CSS
	Items       []navItemView
}

var iconGlyphs = map[radial.Icon]string{
	radial.IconHome:      "⌂",
	radial.IconUser:      "☺",
	radial.IconZap:       "⚡",
	radial.IconRocket:    "🚀",
	radial.IconBriefcase: "💼",
	radial.IconMail:      "✉",
	radial.IconMenu:      "☰",
	radial.IconClose:     "✕",
}

// px rounds an offset to a tenth of a pixel without producing -0.
func px(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0
	}
	return r
}

func toNavView(v radial.View) navView {
	horizontal, vertical := "right", "bottom"
	switch v.Corner {
	case radial.BottomLeft:
		horizontal = "left"
	case radial.TopRight:
		vertical = "top"
	case radial.TopLeft:
		horizontal, vertical = "left", "top"
	}

	out := navView{
		Open:        v.Open(),
		Accent:      v.Accent,
		Corner:      v.Corner.String(),
		AnchorStyle: template.CSS(fmt.Sprintf("%s: %.0fpx; %s: %.0fpx;", horizontal, v.Inset.Right, vertical, v.Inset.Bottom)),
		TriggerIcon: iconGlyphs[v.Trigger.Icon],
		TriggerTurn: template.CSS(fmt.Sprintf("transform: rotate(%.0fdeg);", v.Trigger.Rotation)),
		Items:       make([]navItemView, len(v.Items)),
	}
	for i, it := range v.Items {
		m := it.Motion
		out.Items[i] = navItemView{
			Index:   it.Index,
			Route:   it.Route,
			Label:   it.Label,
			Icon:    iconGlyphs[it.Icon],
			Active:  it.Active,
			Hovered: it.Hovered,
			Style: template.CSS(fmt.Sprintf(
				"transform: translate(%.1fpx, %.1fpx) scale(%g); opacity: %g; transition-delay: %.2fs;",
				px(m.X), px(m.Y), m.Scale, m.Opacity, m.Delay.Seconds())),
			LabelClass: "label-" + it.Placement.Vertical.String() + " label-" + it.Placement.Horizontal.String(),
		}
	}
	return out
}

func (s *app) renderNav(c *gin.Context, ns *navSession) {
	c.HTML(http.StatusOK, "radial-menu.html", toNavView(ns.menu.View()))
}

type viewportForm struct {
	Width  float64 `form:"width" binding:"gte=0,lte=100000"`
	Height float64 `form:"height" binding:"gte=0,lte=100000"`
}

type layoutQuery struct {
	Width  float64 `form:"width" binding:"gte=0,lte=100000"`
	Height float64 `form:"height" binding:"gte=0,lte=100000"`
	Count  *int    `form:"count" binding:"omitempty,gte=0,lte=64"`
}

type layoutPosition struct {
	Index    int     `json:"index"`
	Angle    float64 `json:"angle"`
	OffsetX  float64 `json:"offsetX"`
	OffsetY  float64 `json:"offsetY"`
	Vertical string  `json:"label_vertical"`
	Align    string  `json:"label_horizontal"`
}

func itemIndex(c *gin.Context) (int, bool) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid item index")
		return 0, false
	}
	return i, true
}

func (s *app) setupNavRoutes(r *gin.Engine) {
	nav := r.Group("/nav")

	nav.GET("", func(c *gin.Context) {
		s.renderNav(c, s.session(c))
	})

	nav.POST("/viewport", func(c *gin.Context) {
		var form viewportForm
		if err := c.ShouldBind(&form); err != nil {
			c.String(http.StatusBadRequest, "invalid viewport: %v", err)
			return
		}
		ns := s.session(c)
		ns.window.Resize(radial.Size{Width: form.Width, Height: form.Height})
		s.recordNav(ns, navResize, "")
		s.renderNav(c, ns)
	})

	nav.POST("/toggle", func(c *gin.Context) {
		ns := s.session(c)
		action := navClose
		if ns.menu.Trigger() == radial.Open {
			action = navOpen
		}
		s.recordNav(ns, action, "")
		s.renderNav(c, ns)
	})

	nav.POST("/backdrop", func(c *gin.Context) {
		ns := s.session(c)
		if ns.menu.State() == radial.Open {
			s.recordNav(ns, navBackdrop, "")
		}
		ns.menu.Backdrop()
		s.renderNav(c, ns)
	})

	nav.POST("/select/:index", func(c *gin.Context) {
		i, ok := itemIndex(c)
		if !ok {
			return
		}
		ns := s.session(c)
		if item, ok := ns.menu.Select(i); ok {
			s.recordNav(ns, navSelect, item.Route)
			c.Header("HX-Redirect", item.Route)
		}
		s.renderNav(c, ns)
	})

	nav.POST("/hover/:index", func(c *gin.Context) {
		i, ok := itemIndex(c)
		if !ok {
			return
		}
		ns := s.session(c)
		ns.menu.Hover(i)
		s.renderNav(c, ns)
	})

	nav.POST("/leave/:index", func(c *gin.Context) {
		i, ok := itemIndex(c)
		if !ok {
			return
		}
		ns := s.session(c)
		ns.menu.Unhover(i)
		s.renderNav(c, ns)
	})

	r.GET("/api/nav/layout", func(c *gin.Context) {
		var q layoutQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		count := len(s.nav.items)
		if q.Count != nil {
			count = *q.Count
		}

		layout := s.cfg.Radial.Layout()
		vp := radial.Size{Width: q.Width, Height: q.Height}
		positions := make([]layoutPosition, 0, count)
		for i := 0; i < count; i++ {
			p := layout.Position(i, count, vp)
			lp := radial.PlaceLabel(p)
			positions = append(positions, layoutPosition{
				Index:    i,
				Angle:    layout.Angle(i, count),
				OffsetX:  p.X,
				OffsetY:  p.Y,
				Vertical: lp.Vertical.String(),
				Align:    lp.Horizontal.String(),
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"viewport":  vp,
			"radius":    layout.Radius(vp),
			"corner":    layout.Corner.String(),
			"positions": positions,
		})
	})
}

// admin.go - privacy-conscious visitor tracking and the admin area
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// visitorRetention is how long visitor and nav records are kept.
const visitorRetention = 365 * 24 * time.Hour

// Privacy-conscious visitor record
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"` // hashed, never the raw IP
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PageStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

type RouteStat struct {
	Route      string `json:"route"`
	Selections int64  `json:"selections"`
}

type AdminStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TopPages         []PageStat      `json:"top_pages"`
	MenuOpens        int64           `json:"menu_opens"`
	MenuSelections   int64           `json:"menu_selections"`
	TopSelections    []RouteStat     `json:"top_selections"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// adminAuth holds the per-process admin token and the IP hashing salt.
type adminAuth struct {
	token    string
	salt     string
	username string
	password string
}

func newAdminAuth(username, password string) (*adminAuth, error) {
	token, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("admin token: %w", err)
	}
	salt, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("hashing salt: %w", err)
	}

	slog.Info("admin access available", "path", "/admin/login")
	if gin.Mode() == gin.DebugMode {
		slog.Debug("admin token (dev only)", "token", token)
		if password == "admin123" {
			slog.Warn("using default admin password, set ADMIN_PASSWORD")
		}
	}
	slog.Info("visitor tracking enabled with hashed IP addresses")

	return &adminAuth{token: token, salt: salt, username: username, password: password}, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hash is consistent per input for the lifetime of the process.
func (a *adminAuth) hash(s string) string {
	h := sha256.New()
	h.Write([]byte(s + a.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (a *adminAuth) valid(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

// Middleware to check admin authentication
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// untracked paths never reach the visitors table.
var untrackedPrefixes = []string{
	"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/nav", "/api/", "/metrics", "/healthz",
}

// visitorTracking records page views in the background, honouring DNT.
func (s *app) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		hashed, ua := s.admin.hash(c.ClientIP()), c.GetHeader("User-Agent")
		s.background(func(ctx context.Context) {
			if err := s.store.RecordVisit(ctx, hashed, ua, path, time.Now()); err != nil {
				slog.Error("error recording visitor", "error", err)
			}
		})
		c.Next()
	}
}

// cleanupVisitors removes records older than the retention window.
func (s *app) cleanupVisitors(ctx context.Context) {
	n, err := s.store.CleanupVisitors(ctx, time.Now().Add(-visitorRetention))
	if err != nil {
		slog.Error("error cleaning up old visitor data", "error", err)
		return
	}
	if n > 0 {
		slog.Info("privacy cleanup removed old records", "rows", n)
	}
}

// AdminStats gathers the dashboard numbers.
func (s *Store) AdminStats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}

	counts := []struct {
		dst   *int64
		query string
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE DATE(timestamp) = DATE('now')`},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= datetime('now', '-7 days')`},
		{&stats.MenuOpens, `SELECT COUNT(*) FROM nav_events WHERE action = 'open'`},
		{&stats.MenuSelections, `SELECT COUNT(*) FROM nav_events WHERE action = 'select'`},
	}
	for _, q := range counts {
		if err := s.db.QueryRowContext(ctx, q.query).Scan(q.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views FROM visitors
		GROUP BY path ORDER BY views DESC, path LIMIT 10`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var p PageStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			continue
		}
		stats.TopPages = append(stats.TopPages, p)
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx, `
		SELECT route, COUNT(*) AS n FROM nav_events WHERE action = 'select'
		GROUP BY route ORDER BY n DESC, route LIMIT 10`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var r RouteStat
		if err := rows.Scan(&r.Route, &r.Selections); err != nil {
			continue
		}
		stats.TopSelections = append(stats.TopSelections, r)
	}
	rows.Close()

	stats.RecentVisitors, err = s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RecentVisitors returns the latest visitor records, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VisitorMetric
	for rows.Next() {
		var (
			v  VisitorMetric
			ts any
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			continue
		}
		v.Timestamp = storedTime(ts)
		out = append(out, v)
	}
	return out, rows.Err()
}

// Setup all admin routes
func (s *app) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		s.renderPage(c, http.StatusOK, "privacy.html", gin.H{"title": "Privacy Policy"})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if s.admin.valid(c.PostForm("username"), c.PostForm("password")) {
			c.SetCookie("admin_token", s.admin.token, 3600*24, "/admin", "", false, true)
			slog.Info("admin login successful", "client", s.admin.hash(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		slog.Warn("failed admin login attempt", "client", s.admin.hash(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": "Invalid credentials"})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.admin.middleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.AdminStats(c.Request.Context())
		if err != nil {
			slog.Error("error loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.AdminStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load visitors"})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{"visitors": visitors})
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		s.background(s.cleanupVisitors)
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.AdminStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		slog.Info("admin stats exported", "client", s.admin.hash(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}

package main

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/pkg/logger"
	"github.com/Zachkp/portfolio/pkg/metric"
	"github.com/Zachkp/portfolio/pkg/radial"
	"github.com/Zachkp/portfolio/pkg/server"
)

var version = "dev" // set with -ldflags "-X main.version=..."

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// backgroundTimeout bounds fire-and-forget writes such as visit logging.
const backgroundTimeout = 5 * time.Second

// app wires the portfolio's collaborators together.
type app struct {
	cfg       Config
	store     *Store
	admin     *adminAuth
	nav       *navSessions
	mailer    Mailer
	pageViews metric.Incrementer
	navEvents metric.Incrementer
	bg        sync.WaitGroup
}

func newApp(cfg Config, store *Store, mailer Mailer) (*app, error) {
	admin, err := newAdminAuth(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:       cfg,
		store:     store,
		admin:     admin,
		nav:       newNavSessions(radial.DefaultItems(), cfg.Radial, cfg.NavSessionTTL),
		mailer:    mailer,
		pageViews: metric.Noop{},
		navEvents: metric.Noop{},
	}, nil
}

// background runs fn off the request path; wait drains pending work.
func (s *app) background(fn func(ctx context.Context)) {
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		fn(ctx)
	}()
}

func (s *app) wait() {
	s.bg.Wait()
}

func parseTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// router builds the gin engine. A nil registry disables /metrics.
func (s *app) router(reg *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), s.visitorTracking())
	r.SetHTMLTemplate(parseTemplates())

	static, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(static))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/readyz", func(c *gin.Context) {
		if err := s.store.Ping(c.Request.Context()); err != nil {
			c.String(http.StatusServiceUnavailable, "store unavailable")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	if reg != nil {
		s.pageViews = metric.NewCounter(reg, "portfolio_page_views_total", "Rendered pages by route.", "page")
		s.navEvents = metric.NewCounter(reg, "portfolio_nav_events_total", "Radial menu actions.", "action")
		r.GET("/metrics", gin.WrapH(metric.Handler(reg)))
	}

	s.setupPageRoutes(r)
	s.setupNavRoutes(r)
	s.setupAdminRoutes(r)
	return r
}

func main() {
	logger.SetDefault("portfolio", version)

	if err := run(); err != nil {
		slog.Error("portfolio exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := OpenStore(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	a, err := newApp(cfg, store, newSMTPMailer(cfg.SMTP))
	if err != nil {
		return err
	}
	defer a.wait()

	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	srv := server.New(a.router(reg), server.WithAddr(":"+cfg.Port))

	a.background(a.cleanupVisitors)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Serve(gCtx) })
	g.Go(func() error { return a.nav.run(gCtx) })
	return g.Wait()
}

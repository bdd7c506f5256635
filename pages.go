package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/pkg/content"
)

// renderPage renders a full page with the visitor's radial menu mounted.
// Loading a page is what moves the visitor's current route.
func (s *app) renderPage(c *gin.Context, status int, name string, data gin.H) {
	ns := s.session(c)
	ns.router.GoTo(c.Request.URL.Path)

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	s.pageViews.Increment(route)

	if data == nil {
		data = gin.H{}
	}
	data["path"] = c.Request.URL.Path
	data["nav"] = toNavView(ns.menu.View())
	c.HTML(status, name, data)
}

func (s *app) renderError(c *gin.Context, err error, what string) {
	if errors.Is(err, ErrNotFound) {
		s.renderPage(c, http.StatusNotFound, "not-found.html", gin.H{"title": "Not Found", "what": what})
		return
	}
	slog.Error("error loading page content", "page", c.Request.URL.Path, "error", err)
	s.renderPage(c, http.StatusInternalServerError, "error.html", gin.H{
		"title": "Error",
		"error": "Something went wrong loading " + what + ".",
	})
}

func (s *app) setupPageRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		projects, err := s.store.Projects(c.Request.Context())
		if err != nil {
			s.renderError(c, err, "the home page")
			return
		}
		if len(projects) > 3 {
			projects = projects[:3]
		}
		s.renderPage(c, http.StatusOK, "home.html", gin.H{
			"title":    "Home",
			"tagline":  content.Tagline,
			"projects": projects,
		})
	})

	r.GET("/about", func(c *gin.Context) {
		s.renderPage(c, http.StatusOK, "about.html", gin.H{
			"title":      "About",
			"about":      content.About,
			"highlights": content.Highlights,
		})
	})

	r.GET("/skills", func(c *gin.Context) {
		certs, err := s.store.Certifications(c.Request.Context(), "")
		if err != nil {
			s.renderError(c, err, "skills")
			return
		}
		s.renderPage(c, http.StatusOK, "skills.html", gin.H{
			"title":          "Skills",
			"groups":         content.SkillGroups,
			"certifications": certs,
		})
	})

	r.GET("/projects", func(c *gin.Context) {
		projects, err := s.store.Projects(c.Request.Context())
		if err != nil {
			s.renderError(c, err, "projects")
			return
		}
		s.renderPage(c, http.StatusOK, "projects.html", gin.H{
			"title":    "Projects",
			"projects": projects,
		})
	})

	r.GET("/projects/:id", func(c *gin.Context) {
		p, err := s.store.Project(c.Request.Context(), c.Param("id"))
		if err != nil {
			s.renderError(c, err, "this project")
			return
		}
		s.renderPage(c, http.StatusOK, "project.html", gin.H{
			"title":   p.Title,
			"project": p,
		})
	})

	r.GET("/experience", func(c *gin.Context) {
		exps, err := s.store.Experiences(c.Request.Context())
		if err != nil {
			s.renderError(c, err, "experience")
			return
		}
		s.renderPage(c, http.StatusOK, "experience.html", gin.H{
			"title":       "Experience",
			"experiences": exps,
		})
	})

	r.GET("/experience/:id", func(c *gin.Context) {
		e, err := s.store.Experience(c.Request.Context(), c.Param("id"))
		if err != nil {
			s.renderError(c, err, "this position")
			return
		}
		s.renderPage(c, http.StatusOK, "experience-detail.html", gin.H{
			"title":      e.Position,
			"experience": e,
		})
	})

	r.GET("/contact", func(c *gin.Context) {
		s.renderPage(c, http.StatusOK, "contact.html", gin.H{"title": "Contact"})
	})

	// HTMX fragments
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact-form.html", gin.H{"title": "Contact Me"})
	})

	r.GET("/certifications", func(c *gin.Context) {
		typ := c.Query("type")
		switch typ {
		case "", content.CertGlobal, content.CertGeneral, content.CertCompetition:
		default:
			c.String(http.StatusBadRequest, "unknown certification type %q", typ)
			return
		}
		certs, err := s.store.Certifications(c.Request.Context(), typ)
		if err != nil {
			slog.Error("error loading certifications", "error", err)
			c.String(http.StatusInternalServerError, "failed to load certifications")
			return
		}
		c.HTML(http.StatusOK, "certifications.html", gin.H{"certifications": certs})
	})

	r.POST("/contact", s.handleContact)

	r.NoRoute(func(c *gin.Context) {
		s.renderPage(c, http.StatusNotFound, "not-found.html", gin.H{"title": "Not Found", "what": "this page"})
	})
}

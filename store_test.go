package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/pkg/content"
)

func TestStoreSeed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	projects, err := s.Projects(ctx)
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if len(projects) != len(content.Projects) {
		t.Fatalf("expected %d projects, got %d", len(content.Projects), len(projects))
	}
	if projects[0].ID != content.Projects[0].ID {
		t.Errorf("display order lost: got %q first", projects[0].ID)
	}
	if len(projects[0].Tech) == 0 || len(projects[0].Features) == 0 {
		t.Errorf("list columns not decoded: %+v", projects[0])
	}

	exps, err := s.Experiences(ctx)
	if err != nil {
		t.Fatalf("experiences: %v", err)
	}
	if len(exps) != len(content.Experiences) {
		t.Fatalf("expected %d experiences, got %d", len(content.Experiences), len(exps))
	}
}

func TestStoreReopenDoesNotReseed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		s, err := OpenStore(ctx, path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		projects, err := s.Projects(ctx)
		s.Close()
		if err != nil {
			t.Fatalf("projects: %v", err)
		}
		if len(projects) != len(content.Projects) {
			t.Fatalf("open %d: expected %d projects, got %d", i, len(content.Projects), len(projects))
		}
	}
}

func TestStoreLookups(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		lookup  func() error
		missing bool
	}{
		{"project", func() error { _, err := s.Project(ctx, "cybersec"); return err }, false},
		{"missing project", func() error { _, err := s.Project(ctx, "nope"); return err }, true},
		{"experience", func() error { _, err := s.Experience(ctx, "cisco-aicte"); return err }, false},
		{"missing experience", func() error { _, err := s.Experience(ctx, "nope"); return err }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup()
			if tt.missing {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestStoreCertifications(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	all, err := s.Certifications(ctx, "")
	if err != nil {
		t.Fatalf("certifications: %v", err)
	}
	if len(all) != len(content.Certifications) {
		t.Fatalf("expected %d certifications, got %d", len(content.Certifications), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Date < all[i].Date {
			t.Fatalf("not newest first: %s before %s", all[i-1].Date, all[i].Date)
		}
	}

	global, err := s.Certifications(ctx, content.CertGlobal)
	if err != nil {
		t.Fatalf("certifications: %v", err)
	}
	for _, c := range global {
		if c.Type != content.CertGlobal {
			t.Fatalf("filter leaked %q", c.Type)
		}
	}
	if len(global) != 3 {
		t.Fatalf("expected 3 global certifications, got %d", len(global))
	}
}

func TestStoreCleanupVisitors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	old := now.Add(-400 * 24 * time.Hour)
	if err := s.RecordVisit(ctx, "aaaa", "test", "/", old); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordNavEvent(ctx, "bbbb", navOpen, "", old); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordVisit(ctx, "aaaa", "test", "/about", now); err != nil {
		t.Fatal(err)
	}

	n, err := s.CleanupVisitors(ctx, now.Add(-visitorRetention))
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows removed, got %d", n)
	}

	visitors, err := s.RecentVisitors(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(visitors) != 1 || visitors[0].Path != "/about" {
		t.Fatalf("unexpected survivors %+v", visitors)
	}
}

func TestStoreNavStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	events := []struct{ action, route string }{
		{navOpen, ""},
		{navSelect, "/projects"},
		{navOpen, ""},
		{navSelect, "/projects"},
		{navOpen, ""},
		{navSelect, "/contact"},
		{navClose, ""},
	}
	for _, e := range events {
		if err := s.RecordNavEvent(ctx, "sess", e.action, e.route, now); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := s.AdminStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.MenuOpens != 3 || stats.MenuSelections != 3 {
		t.Fatalf("unexpected counts opens=%d selections=%d", stats.MenuOpens, stats.MenuSelections)
	}
	if len(stats.TopSelections) != 2 || stats.TopSelections[0] != (RouteStat{Route: "/projects", Selections: 2}) {
		t.Fatalf("unexpected top selections %+v", stats.TopSelections)
	}
}

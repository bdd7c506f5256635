package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Zachkp/portfolio/pkg/content"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

// sqliteTime is the timestamp layout stored in every DATETIME column.
// It sorts lexically and is understood by sqlite's date functions.
const sqliteTime = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	tagline TEXT,
	description TEXT,
	long_description TEXT,
	tech TEXT,            -- JSON array
	features TEXT,        -- JSON array
	github TEXT,
	demo TEXT,
	created_at TEXT,
	position INTEGER
);
CREATE TABLE IF NOT EXISTS certifications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	link TEXT,
	type TEXT NOT NULL,
	issuer TEXT,
	date TEXT
);
CREATE TABLE IF NOT EXISTS experiences (
	id TEXT PRIMARY KEY,
	company TEXT NOT NULL,
	position_title TEXT,
	period TEXT,
	location TEXT,
	description TEXT,
	responsibilities TEXT, -- JSON array
	tech TEXT,             -- JSON array
	certificate_name TEXT,
	certificate_link TEXT,
	position INTEGER
);
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,  -- never the raw IP
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS nav_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session TEXT NOT NULL,    -- hashed session id
	action TEXT NOT NULL,
	route TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors(timestamp);
CREATE INDEX IF NOT EXISTS nav_events_action ON nav_events(action);
`

// Store is the sqlite-backed content and statistics store.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the database at path, migrates it and seeds
// empty content tables.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY under load.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.seed(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping is used by the readiness check.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, p := range content.Projects {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projects (id, title, tagline, description, long_description, tech, features, github, demo, created_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Tagline, p.Description, p.LongDescription,
			encodeList(p.Tech), encodeList(p.Features), p.Github, p.Demo, p.CreatedAt, i)
		if err != nil {
			return fmt.Errorf("project %s: %w", p.ID, err)
		}
	}
	for _, c := range content.Certifications {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO certifications (name, link, type, issuer, date) VALUES (?, ?, ?, ?, ?)`,
			c.Name, c.Link, c.Type, c.Issuer, c.Date)
		if err != nil {
			return fmt.Errorf("certification %s: %w", c.Name, err)
		}
	}
	for i, e := range content.Experiences {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO experiences (id, company, position_title, period, location, description, responsibilities, tech, certificate_name, certificate_link, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Company, e.Position, e.Period, e.Location, e.Description,
			encodeList(e.Responsibilities), encodeList(e.Tech), e.CertificateName, e.CertificateLink, i)
		if err != nil {
			return fmt.Errorf("experience %s: %w", e.ID, err)
		}
	}
	return tx.Commit()
}

const projectColumns = `id, title, tagline, description, long_description, tech, features, github, demo, created_at`

func scanProject(row interface{ Scan(...any) error }) (content.Project, error) {
	var (
		p              content.Project
		tech, features string
	)
	err := row.Scan(&p.ID, &p.Title, &p.Tagline, &p.Description, &p.LongDescription,
		&tech, &features, &p.Github, &p.Demo, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	p.Tech = decodeList(tech)
	p.Features = decodeList(features)
	return p, nil
}

// Projects lists projects in display order.
func (s *Store) Projects(ctx context.Context) ([]content.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Project looks a project up by exact id.
func (s *Store) Project(ctx context.Context, id string) (content.Project, error) {
	p, err := scanProject(s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return p, fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	return p, err
}

// Certifications lists certifications newest first, optionally filtered by type.
func (s *Store) Certifications(ctx context.Context, typ string) ([]content.Certification, error) {
	q := `SELECT name, link, type, issuer, date FROM certifications`
	var args []any
	if typ != "" {
		q += ` WHERE type = ?`
		args = append(args, typ)
	}
	q += ` ORDER BY date DESC, name`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Certification
	for rows.Next() {
		var c content.Certification
		if err := rows.Scan(&c.Name, &c.Link, &c.Type, &c.Issuer, &c.Date); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const experienceColumns = `id, company, position_title, period, location, description, responsibilities, tech, certificate_name, certificate_link`

func scanExperience(row interface{ Scan(...any) error }) (content.Experience, error) {
	var (
		e                      content.Experience
		responsibilities, tech string
	)
	err := row.Scan(&e.ID, &e.Company, &e.Position, &e.Period, &e.Location, &e.Description,
		&responsibilities, &tech, &e.CertificateName, &e.CertificateLink)
	if err != nil {
		return e, err
	}
	e.Responsibilities = decodeList(responsibilities)
	e.Tech = decodeList(tech)
	return e, nil
}

func (s *Store) Experiences(ctx context.Context) ([]content.Experience, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+experienceColumns+` FROM experiences ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Experience(ctx context.Context, id string) (content.Experience, error) {
	e, err := scanExperience(s.db.QueryRowContext(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return e, fmt.Errorf("experience %q: %w", id, ErrNotFound)
	}
	return e, err
}

// RecordVisit logs a page view. The caller hashes the IP.
func (s *Store) RecordVisit(ctx context.Context, hashedIP, userAgent, path string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		hashedIP, userAgent, path, at.UTC().Format(sqliteTime))
	return err
}

// RecordNavEvent logs one radial menu action.
func (s *Store) RecordNavEvent(ctx context.Context, session, action, route string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO nav_events (session, action, route, timestamp) VALUES (?, ?, ?, ?)`,
		session, action, route, at.UTC().Format(sqliteTime))
	return err
}

// CleanupVisitors deletes visitor and nav records older than cutoff.
func (s *Store) CleanupVisitors(ctx context.Context, cutoff time.Time) (int64, error) {
	c := cutoff.UTC().Format(sqliteTime)

	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, c)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()

	res, err = s.db.ExecContext(ctx, `DELETE FROM nav_events WHERE timestamp < ?`, c)
	if err != nil {
		return n, err
	}
	m, _ := res.RowsAffected()
	return n + m, nil
}

// storedTime accepts either form the driver may hand back for a DATETIME column.
func storedTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		parsed, _ := time.Parse(sqliteTime, t)
		return parsed
	case []byte:
		parsed, _ := time.Parse(sqliteTime, string(t))
		return parsed
	}
	return time.Time{}
}

func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(items)
	return string(b)
}

func decodeList(s string) []string {
	var out []string
	_ = json.Unmarshal([]byte(s), &out)
	return out
}

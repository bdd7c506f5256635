package main

import (
	"fmt"
	"strings"

	"github.com/Zachkp/portfolio/pkg/content"
)

type page struct {
	title string
	lines []string
}

// pageFor renders the portfolio copy for route as plain lines.
func pageFor(route string) page {
	switch route {
	case "/":
		p := page{title: "Home", lines: []string{content.Tagline, "", "Featured projects"}}
		for _, pr := range content.Projects {
			p.lines = append(p.lines, fmt.Sprintf("  %s: %s", pr.Title, pr.Tagline))
		}
		return p

	case "/about":
		p := page{title: "About Me"}
		for _, line := range strings.Split(content.About, "\n") {
			p.lines = append(p.lines, strings.TrimSpace(line))
		}
		p.lines = append(p.lines, "")
		for _, hl := range content.Highlights {
			p.lines = append(p.lines, hl.Title+": "+hl.Description)
		}
		return p

	case "/skills":
		p := page{title: "Skills"}
		for _, g := range content.SkillGroups {
			p.lines = append(p.lines, g.Title)
			for _, s := range g.Skills {
				p.lines = append(p.lines, fmt.Sprintf("  %-14s %s %d%%", s.Name, bar(s.Level, 20), s.Level))
			}
		}
		p.lines = append(p.lines, "", "Certifications")
		for _, c := range content.Certifications {
			p.lines = append(p.lines, fmt.Sprintf("  %s (%s, %s)", c.Name, c.Issuer, c.Date))
		}
		return p

	case "/projects":
		p := page{title: "Projects"}
		for _, pr := range content.Projects {
			p.lines = append(p.lines, pr.Title, "  "+pr.Description, "  "+strings.Join(pr.Tech, " · "), "")
		}
		return p

	case "/experience":
		p := page{title: "Experience"}
		for _, e := range content.Experiences {
			p.lines = append(p.lines, fmt.Sprintf("%s, %s (%s)", e.Position, e.Company, e.Period))
			for _, r := range e.Responsibilities {
				p.lines = append(p.lines, "  - "+r)
			}
			p.lines = append(p.lines, "")
		}
		return p

	case "/contact":
		return page{title: "Contact", lines: []string{
			"The contact form lives on the web site.",
			"Run the portfolio server and open /contact in a browser.",
		}}
	}
	return page{title: "Not found", lines: []string{"Nothing lives at " + route + "."}}
}

// bar draws level (0-100) as a width-wide gauge.
func bar(level, width int) string {
	filled := level * width / 100
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

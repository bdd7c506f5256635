package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Zachkp/portfolio/pkg/radial"
)

const (
	unitsCells  = "cells"
	unitsPixels = "px"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// runLayout prints the arc positions for a viewport. With no size flags
// the current terminal is measured and the terminal layout is used.
func runLayout(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	fs.SetOutput(stdout)
	width := fs.Float64("width", 0, "viewport width (0 measures the terminal)")
	height := fs.Float64("height", 0, "viewport height (0 measures the terminal)")
	items := fs.Int("items", len(radial.DefaultItems()), "number of menu items")
	units := fs.String("units", unitsCells, "layout units: cells or px")
	corner := fs.String("corner", radial.BottomRight.String(), "anchor corner")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *items < 0 {
		return fmt.Errorf("items must not be negative, got %d", *items)
	}

	var cfg radial.Config
	switch *units {
	case unitsCells:
		cfg = termConfig()
	case unitsPixels:
		cfg = radial.DefaultConfig()
	default:
		return fmt.Errorf("unknown units %q", *units)
	}
	cfg.Corner = radial.ParseCorner(*corner)

	vp := radial.Size{Width: *width, Height: *height}
	if vp.Width == 0 && vp.Height == 0 {
		var err error
		if vp, err = measure(*units); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, renderLayout(cfg.Layout(), vp, *items))
	return nil
}

// measure returns the terminal size in the given units.
func measure(units string) (radial.Size, error) {
	if units == unitsPixels {
		return radial.Size{Width: 1280, Height: 800}, nil
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return radial.Size{}, errors.New("stdout is not a terminal, pass -width and -height")
	}
	return cellViewport(w, h), nil
}

// renderLayout formats one row per item as an aligned table.
func renderLayout(l radial.Layout, vp radial.Size, n int) string {
	names := radial.DefaultItems()
	cols := [][]string{
		{"#"}, {"item"}, {"angle"}, {"x"}, {"y"}, {"label"},
	}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("item %d", i+1)
		if i < len(names) {
			name = names[i].Label
		}
		p := l.Position(i, n, vp)
		lp := radial.PlaceLabel(p)
		row := []string{
			fmt.Sprint(i + 1),
			name,
			fmt.Sprintf("%.1f°", l.Angle(i, n)),
			fmt.Sprintf("%.2f", p.X),
			fmt.Sprintf("%.2f", p.Y),
			lp.Vertical.String() + "/" + lp.Horizontal.String(),
		}
		for c := range cols {
			cols[c] = append(cols[c], row[c])
		}
	}

	rendered := make([]string, len(cols))
	for c, col := range cols {
		cells := make([]string, len(col))
		for r, v := range col {
			if r == 0 {
				cells[r] = cellStyle.Render(headerStyle.Render(v))
				continue
			}
			cells[r] = cellStyle.Render(v)
		}
		align := lipgloss.Right
		if c == 1 || c == 5 {
			align = lipgloss.Left
		}
		rendered[c] = lipgloss.JoinVertical(align, cells...)
	}

	title := titleStyle.Render(fmt.Sprintf("viewport %g×%g  radius %g  corner %s",
		vp.Width, vp.Height, l.Radius(vp), l.Corner))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
	))
}

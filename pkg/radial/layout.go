// Package radial implements a corner-anchored radial navigation menu:
// arc layout, viewport tracking and the open/closed controller.
package radial

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxRadius caps the arc radius regardless of viewport size.
	DefaultMaxRadius = 140.0

	// DefaultStartAngle and DefaultEndAngle bound the arc in degrees.
	// 270 points up from the anchor, 150 toward the lower left.
	DefaultStartAngle = 150.0
	DefaultEndAngle   = 270.0

	// DefaultMargin is the minimum distance kept from the far edges.
	DefaultMargin = 60.0

	// DefaultInset is the anchor distance from the right and bottom edges.
	DefaultInset = 64.0

	minDimensionFraction = 0.25
	edgeFraction         = 0.40
)

// Size is a viewport measurement. The zero value means "not measured yet".
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Measured reports whether the size holds a usable measurement.
func (s Size) Measured() bool {
	return s.Width > 0 && s.Height > 0
}

// Inset is the anchor distance from the edges of its corner.
// Field names follow the default bottom-right corner.
type Inset struct {
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Margin is the minimum distance an item keeps from the edges opposite the anchor.
type Margin struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

// Position is an item offset relative to the anchor, not a screen coordinate.
type Position struct {
	X float64 `json:"offsetX"`
	Y float64 `json:"offsetY"`
}

// Corner selects where the anchor sits.
type Corner int

const (
	BottomRight Corner = iota
	BottomLeft
	TopRight
	TopLeft
)

func (c Corner) String() string {
	switch c {
	case BottomLeft:
		return "bottom-left"
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	default:
		return "bottom-right"
	}
}

// ParseCorner maps a corner name to a Corner. Unknown names yield BottomRight.
func ParseCorner(s string) Corner {
	switch s {
	case "bottom-left":
		return BottomLeft
	case "top-right":
		return TopRight
	case "top-left":
		return TopLeft
	default:
		return BottomRight
	}
}

// Layout places menu items along an arc around an anchor.
// All math is done in the bottom-right frame and mirrored for other corners.
type Layout struct {
	Corner     Corner
	Inset      Inset
	Margin     Margin
	StartAngle float64
	EndAngle   float64
	MaxRadius  float64
}

// DefaultLayout returns the bottom-right layout used by the portfolio.
func DefaultLayout() Layout {
	return Layout{
		Corner:     BottomRight,
		Inset:      Inset{Right: DefaultInset, Bottom: DefaultInset},
		Margin:     Margin{Left: DefaultMargin, Top: DefaultMargin},
		StartAngle: DefaultStartAngle,
		EndAngle:   DefaultEndAngle,
		MaxRadius:  DefaultMaxRadius,
	}
}

// ComputeArcPosition places item index of itemCount with the default layout
// anchored at the given inset.
func ComputeArcPosition(index, itemCount int, viewport Size, inset Inset) Position {
	l := DefaultLayout()
	l.Inset = inset
	return l.Position(index, itemCount, viewport)
}

// Radius returns the arc radius for the viewport.
func (l Layout) Radius(viewport Size) float64 {
	w, h := viewport.Width, viewport.Height
	return math.Min(
		math.Min(l.MaxRadius, minDimensionFraction*math.Min(w, h)),
		math.Min(edgeFraction*w, edgeFraction*h),
	)
}

// Angle returns the angle in degrees for item index of itemCount.
// A single item sits at the start angle.
func (l Layout) Angle(index, itemCount int) float64 {
	steps := math.Max(float64(itemCount-1), 1)
	return l.StartAngle + (l.EndAngle-l.StartAngle)/steps*float64(index)
}

// Position computes the offset of item index of itemCount.
// Items stay on the anchor until the viewport has been measured.
func (l Layout) Position(index, itemCount int, viewport Size) Position {
	if itemCount < 0 {
		panic(fmt.Sprintf("radial: negative item count %d", itemCount))
	}
	if index < 0 || index >= itemCount {
		panic(fmt.Sprintf("radial: index %d out of range for %d items", index, itemCount))
	}
	if !viewport.Measured() {
		return Position{}
	}

	radius := l.Radius(viewport)
	rad := l.Angle(index, itemCount) * math.Pi / 180

	p := Position{
		X: radius * math.Cos(rad),
		Y: radius * math.Sin(rad),
	}
	return l.mirror(l.Clamp(p, viewport))
}

// Clamp pulls a bottom-right frame offset back inside the left and top margins.
// The two axes are corrected independently.
func (l Layout) Clamp(p Position, viewport Size) Position {
	anchorX := viewport.Width - l.Inset.Right
	anchorY := viewport.Height - l.Inset.Bottom

	if anchorX+p.X < l.Margin.Left {
		p.X = l.Margin.Left - anchorX
	}
	if anchorY+p.Y < l.Margin.Top {
		p.Y = l.Margin.Top - anchorY
	}
	return p
}

func (l Layout) mirror(p Position) Position {
	switch l.Corner {
	case BottomLeft:
		p.X = -p.X
	case TopRight:
		p.Y = -p.Y
	case TopLeft:
		p.X, p.Y = -p.X, -p.Y
	}
	return p
}

// VAlign places a hover label above or below its item.
type VAlign int

const (
	Above VAlign = iota
	Below
)

func (v VAlign) String() string {
	if v == Below {
		return "below"
	}
	return "above"
}

// HAlign anchors a hover label horizontally against its item.
type HAlign int

const (
	Center HAlign = iota
	Left
	Right
)

func (h HAlign) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "center"
	}
}

// labelThreshold is the offset beyond which a label leaves the centered slot.
const labelThreshold = 20.0

// LabelPlacement tells the renderer where the hover label goes.
type LabelPlacement struct {
	Vertical   VAlign
	Horizontal HAlign
}

// PlaceLabel keeps the label off the arc and inside the screen edges.
func PlaceLabel(p Position) LabelPlacement {
	lp := LabelPlacement{Vertical: Above, Horizontal: Center}
	if p.Y < -labelThreshold {
		lp.Vertical = Below
	}
	switch {
	case p.X > labelThreshold:
		lp.Horizontal = Right
	case p.X < -labelThreshold:
		lp.Horizontal = Left
	}
	return lp
}

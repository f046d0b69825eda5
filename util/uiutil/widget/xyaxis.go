package widget

import "image"

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Along-axis component of a point (y for vertical).
func (o Orientation) Along(p image.Point) int {
	if o == Vertical {
		return p.Y
	}
	return p.X
}

// Cross-axis component of a point (x for vertical).
func (o Orientation) Cross(p image.Point) int {
	if o == Vertical {
		return p.X
	}
	return p.Y
}

// Builds a point from along/cross components.
func (o Orientation) Point(along, cross int) image.Point {
	if o == Vertical {
		return image.Point{cross, along}
	}
	return image.Point{along, cross}
}

func (o Orientation) AlongPtr(p *image.Point) *int {
	if o == Vertical {
		return &p.Y
	}
	return &p.X
}

func (o Orientation) CrossPtr(p *image.Point) *int {
	if o == Vertical {
		return &p.X
	}
	return &p.Y
}

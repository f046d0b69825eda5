package imageutil

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Fills the closed path through the points.
func FillPolygon(img draw.Image, pts []image.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	pb := polygonBounds(pts)
	if pb.Empty() {
		return
	}
	r := pb.Intersect(img.Bounds())
	if r.Empty() {
		return
	}

	z := vector.NewRasterizer(pb.Dx(), pb.Dy())
	for i, p := range pts {
		x := float32(p.X - pb.Min.X)
		y := float32(p.Y - pb.Min.Y)
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, pb.Dx(), pb.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	DrawUniformMask(img, r, c, mask, r.Min.Sub(pb.Min), draw.Over)
}

func polygonBounds(pts []image.Point) image.Rectangle {
	r := image.Rectangle{pts[0], pts[0]}
	for _, p := range pts[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r
}

package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

func DrawUniformMask(
	dst draw.Image,
	r image.Rectangle,
	c color.Color,
	mask image.Image, mp image.Point,
	op draw.Op,
) {
	if c == nil {
		return
	}
	// improve performance for bgra
	if bgra, ok := dst.(*BGRA); ok {
		dst = &bgra.RGBA
		c = BgraColor(c)
	}
	src := image.NewUniform(c)
	draw.DrawMask(dst, r, src, image.Point{}, mask, mp, op)
}

func DrawUniform(dst draw.Image, r image.Rectangle, c color.Color, op draw.Op) {
	DrawUniformMask(dst, r, c, nil, image.Point{}, op)
}

func FillRectangle(img draw.Image, r image.Rectangle, c color.Color) {
	DrawUniform(img, r, c, draw.Src)
}

//----------

// Returns an image restricted to r. Drawing outside r is discarded.
func SubImage(img draw.Image, r image.Rectangle) draw.Image {
	r = r.Intersect(img.Bounds())
	switch t := img.(type) {
	case *BGRA:
		return t.SubImage(r)
	case *image.RGBA:
		return t.SubImage(r).(*image.RGBA)
	}
	return &clipImage{img, r}
}

type clipImage struct {
	draw.Image
	r image.Rectangle
}

func (ci *clipImage) Bounds() image.Rectangle {
	return ci.r
}

func (ci *clipImage) Set(x, y int, c color.Color) {
	if (image.Point{x, y}).In(ci.r) {
		ci.Image.Set(x, y, c)
	}
}

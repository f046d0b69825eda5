package widget

import (
	"image"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
)

// Pressable with a triangle glyph. Zero rotation points up.
type ArrowButton struct {
	Pressable
	Rotation    float64 // degrees
	ArrowWidth  float64
	ArrowHeight float64
}

func NewArrowButton(ctx ImageContext, rotation float64) *ArrowButton {
	ab := &ArrowButton{Rotation: rotation, ArrowWidth: 10, ArrowHeight: 5}
	ab.ctx = ctx
	return ab
}

// Glyph vertices rotated about the button center, floored to pixels.
func (ab *ArrowButton) Vertices() [3]image.Point {
	b := ab.Bounds
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	m := mathutil.TranslateAff3(mathutil.IdentityAff3(), cx, cy)
	m = mathutil.RotateAff3(m, ab.Rotation)

	w2, h2 := ab.ArrowWidth/2, ab.ArrowHeight/2
	return [3]image.Point{
		mathutil.TransformPointFloor(m, 0, -h2),
		mathutil.TransformPointFloor(m, w2, h2),
		mathutil.TransformPointFloor(m, -w2, h2),
	}
}

func (ab *ArrowButton) Paint() {
	ab.Pressable.Paint()
	if c := ab.ForegroundColor(); c != nil {
		pts := ab.Vertices()
		imageutil.FillPolygon(ab.ctx.Image(), pts[:], c)
	}
}

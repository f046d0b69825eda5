package app

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/jmigpin/scrollview/util/fontutil"
	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Read-only text, one string per line. Paints only the lines that intersect the context image.
type TextView struct {
	widget.ENode
	Pad int

	lines []string
	face  *fontutil.FaceCache
	ctx   widget.ImageContext
}

func NewTextView(ctx widget.ImageContext, face *fontutil.FaceCache) *TextView {
	return &TextView{ctx: ctx, face: face, Pad: 4}
}

func (tv *TextView) SetText(b []byte) {
	s := strings.ReplaceAll(string(b), "\r\n", "\n")
	s = strings.ReplaceAll(s, "\t", "    ")
	s = strings.TrimSuffix(s, "\n")
	tv.lines = strings.Split(s, "\n")
	tv.MarkNeedsPaint()
}

func (tv *TextView) Lines() []string {
	return tv.lines
}

// Size needed to show all the text.
func (tv *TextView) Size() image.Point {
	w := 0
	for _, l := range tv.lines {
		w = mathutil.Biggest(w, font.MeasureString(tv.face, l).Ceil())
	}
	h := len(tv.lines) * tv.face.LineHeight()
	return image.Point{w + 2*tv.Pad, h + 2*tv.Pad}
}

//----------

func (tv *TextView) Paint() {
	img := tv.ctx.Image()
	clip := img.Bounds().Intersect(tv.Bounds)
	if clip.Empty() {
		return
	}
	fg := tv.TreeThemePaletteColor("fg")
	lh := tv.face.LineHeight()
	ascent := tv.face.Metrics().Ascent

	top := tv.Bounds.Min.Y + tv.Pad
	first := mathutil.Biggest(0, (clip.Min.Y-top)/lh)
	for i := first; i < len(tv.lines); i++ {
		y := top + i*lh
		if y >= clip.Max.Y {
			break
		}
		dot := fixed.P(tv.Bounds.Min.X+tv.Pad, y)
		dot.Y += ascent
		tv.drawLine(img, clip, tv.lines[i], dot, fg)
	}
}

func (tv *TextView) drawLine(img draw.Image, clip image.Rectangle, s string, dot fixed.Point26_6, fg color.Color) {
	prev := rune(-1)
	for _, ru := range s {
		if prev >= 0 {
			dot.X += tv.face.Kern(prev, ru)
		}
		dr, mask, maskp, adv, ok := tv.face.Glyph(dot, ru)
		if ok {
			r := dr.Intersect(clip)
			if !r.Empty() {
				mp := maskp.Add(r.Min.Sub(dr.Min))
				imageutil.DrawUniformMask(img, r, fg, mask, mp, draw.Over)
			}
		}
		dot.X += adv
		if dot.X.Floor() >= clip.Max.X {
			break
		}
		prev = ru
	}
}

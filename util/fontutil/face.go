package fontutil

import (
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Parses a truetype font and returns a face with cached glyphs.
func NewFace(ttf []byte, size float64) (*FaceCache, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	opt := &truetype.Options{Size: size, Hinting: font.HintingFull}
	return NewFaceCache(truetype.NewFace(f, opt)), nil
}

func DefaultFace(size float64) *FaceCache {
	fc, err := NewFace(goregular.TTF, size)
	if err != nil {
		panic(err)
	}
	return fc
}

//----------

// Not safe for concurrent use.
type FaceCache struct {
	font.Face
	gc  map[rune]*glyphCache
	gac map[rune]glyphAdvance
}

func NewFaceCache(face font.Face) *FaceCache {
	return &FaceCache{
		Face: face,
		gc:   map[rune]*glyphCache{},
		gac:  map[rune]glyphAdvance{},
	}
}

func (fc *FaceCache) Glyph(dot fixed.Point26_6, ru rune) (
	dr image.Rectangle,
	mask image.Image,
	maskp image.Point,
	advance fixed.Int26_6,
	ok bool,
) {
	gc, ok := fc.gc[ru]
	if !ok {
		gc = newGlyphCache(fc.Face, ru)
		fc.gc[ru] = gc
	}
	p := image.Point{dot.X.Floor(), dot.Y.Floor()}
	return gc.dr.Add(p), gc.mask, gc.maskp, gc.advance, gc.ok
}

func (fc *FaceCache) GlyphAdvance(ru rune) (fixed.Int26_6, bool) {
	ga, ok := fc.gac[ru]
	if !ok {
		ga.advance, ga.ok = fc.Face.GlyphAdvance(ru)
		fc.gac[ru] = ga
	}
	return ga.advance, ga.ok
}

// Line height in pixels.
func (fc *FaceCache) LineHeight() int {
	m := fc.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

//----------

type glyphCache struct {
	dr      image.Rectangle
	mask    image.Image
	maskp   image.Point
	advance fixed.Int26_6
	ok      bool
}

func newGlyphCache(face font.Face, ru rune) *glyphCache {
	var zeroDot fixed.Point26_6
	dr, mask, maskp, adv, ok := face.Glyph(zeroDot, ru)
	gc := &glyphCache{dr: dr, maskp: image.Point{}, advance: adv, ok: ok}
	if ok {
		// the face reuses its mask buffer
		m := image.NewAlpha(image.Rectangle{Max: dr.Size()})
		draw.Draw(m, m.Bounds(), mask, maskp, draw.Src)
		gc.mask = m
	}
	return gc
}

type glyphAdvance struct {
	advance fixed.Int26_6
	ok      bool
}

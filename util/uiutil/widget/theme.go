package widget

import (
	"image/color"

	"github.com/jmigpin/scrollview/util/imageutil"
)

var (
	White color.Color = color.RGBA{255, 255, 255, 255}
	Black color.Color = color.RGBA{0, 0, 0, 255}
)

//----------

// nil is a valid receiver.
type Palette map[string]color.Color

func MakePalette() Palette {
	return make(Palette)
}

func (pal Palette) Copy() Palette {
	pal2 := MakePalette()
	for k, v := range pal {
		pal2[k] = v
	}
	return pal2
}

//----------

func cint(c int) color.RGBA {
	return imageutil.RgbaFromInt(c)
}

// Colors of a desktop browser scrollbar.
var DefaultPalette = Palette{
	"fg": Black,
	"bg": White,

	"scrollbar_bg":            cint(0xf1f1f1),
	"scrollarrow_fg":          cint(0x505050),
	"scrollarrow_fg_active":   White,
	"scrollarrow_fg_disabled": cint(0xa3a3a3),
	"scrollarrow_bg_hover":    cint(0xd2d2d2),
	"scrollarrow_bg_active":   cint(0x787878),
	"scrollhandle_normal":     cint(0xc1c1c1),
	"scrollhandle_hover":      cint(0xa8a8a8),
	"scrollhandle_active":     cint(0x787878),
}

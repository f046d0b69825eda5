package imageutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func RgbaFromInt(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.RGBA{r, g, b, 255}
}

// Ex. usage: xdriver cursors.
func ColorUint16s(c color.Color) (uint16, uint16, uint16, uint16) {
	r, g, b, a := c.RGBA()
	return uint16(r), uint16(g), uint16(b), uint16(a)
}

// Accepts "#rgb", "#rrggbb" or "rrggbb".
func ParseHexColor(s string) (color.RGBA, error) {
	u := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(u) == 3 {
		u = string([]byte{u[0], u[0], u[1], u[1], u[2], u[2]})
	}
	if len(u) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color: %q", s)
	}
	v, err := strconv.ParseUint(u, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color: %q: %w", s, err)
	}
	return RgbaFromInt(int(v)), nil
}

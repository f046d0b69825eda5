package mathutil

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// Affine matrices are row major: (x,y) -> (m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5]).

func IdentityAff3() f64.Aff3 {
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}

// Returns a*b (b is applied first).
func MulAff3(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

func TranslateAff3(m f64.Aff3, x, y float64) f64.Aff3 {
	return MulAff3(m, f64.Aff3{1, 0, x, 0, 1, y})
}

// Rotation in degrees, clockwise on a y-down surface.
func RotateAff3(m f64.Aff3, deg float64) f64.Aff3 {
	sin, cos := sincosDeg(deg)
	return MulAff3(m, f64.Aff3{cos, -sin, 0, sin, cos, 0})
}

func TransformPoint(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// Transforms and floors to pixel coordinates.
func TransformPointFloor(m f64.Aff3, x, y float64) image.Point {
	x2, y2 := TransformPoint(m, x, y)
	return image.Point{int(math.Floor(x2)), int(math.Floor(y2))}
}

// Exact values for right angles keep floored vertices stable.
func sincosDeg(deg float64) (float64, float64) {
	switch math.Mod(deg, 360) {
	case 0:
		return 0, 1
	case 90, -270:
		return 1, 0
	case 180, -180:
		return 0, -1
	case 270, -90:
		return -1, 0
	}
	return math.Sincos(deg * math.Pi / 180)
}

package mathutil

import (
	"image"
	"testing"
)

func TestRotateAff3(t *testing.T) {
	m := IdentityAff3()
	m = TranslateAff3(m, 10, 10)
	m = RotateAff3(m, 90)
	// up vector rotated clockwise points right
	p := TransformPointFloor(m, 0, -4)
	if p != (image.Point{14, 10}) {
		t.Fatal(p)
	}
}

func TestRotateAff3Negative(t *testing.T) {
	m := RotateAff3(IdentityAff3(), -90)
	p := TransformPointFloor(m, 0, -4)
	if p != (image.Point{-4, 0}) {
		t.Fatal(p)
	}
}

func TestTranslateAff3(t *testing.T) {
	m := TranslateAff3(IdentityAff3(), 2.5, -1)
	x, y := TransformPoint(m, 1, 1)
	if x != 3.5 || y != 0 {
		t.Fatal(x, y)
	}
}

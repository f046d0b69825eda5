package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestFillPolygon(t *testing.T) {
	r := image.Rect(0, 0, 20, 20)
	img := image.NewRGBA(r)
	pts := []image.Point{{10, 2}, {18, 18}, {2, 18}}
	FillPolygon(img, pts, color.Black)

	if c := img.RGBAAt(10, 14); c.A != 255 {
		t.Fatalf("inside not filled: %v", c)
	}
	if c := img.RGBAAt(1, 1); c.A != 0 {
		t.Fatalf("outside filled: %v", c)
	}
}

func TestFillPolygonClipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	pts := []image.Point{{-10, -10}, {30, -10}, {-10, 30}}
	FillPolygon(img, pts, color.White)
	if c := img.RGBAAt(0, 0); c.A != 255 {
		t.Fatal(c)
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// collapsed triangle (zero area bounds), must not panic
	FillPolygon(img, []image.Point{{5, 5}, {5, 5}, {5, 5}}, color.White)
	FillPolygon(img, []image.Point{{5, 5}}, color.White)
}

func TestSubImageClips(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	img := NewBGRA(&r)
	sub := SubImage(img, image.Rect(2, 2, 5, 5))
	FillRectangle(sub, image.Rect(0, 0, 10, 10), color.White)

	if c := RgbaColor(img.At(3, 3)); c.A != 255 {
		t.Fatal(c)
	}
	if c := RgbaColor(img.At(6, 6)); c.A != 0 {
		t.Fatal(c)
	}
}

func TestBGRASwapsChannels(t *testing.T) {
	r := image.Rect(0, 0, 1, 1)
	img := NewBGRA(&r)
	img.Set(0, 0, color.RGBA{1, 2, 3, 255})
	if img.Pix[0] != 3 || img.Pix[2] != 1 {
		t.Fatal(img.Pix)
	}
	if c := RgbaColor(img.At(0, 0)); c != (color.RGBA{1, 2, 3, 255}) {
		t.Fatal(c)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#f1f1f1")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{0xf1, 0xf1, 0xf1, 255}) {
		t.Fatal(c)
	}
	c, err = ParseHexColor("fff")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatal(c)
	}
	if _, err := ParseHexColor("#12"); err == nil {
		t.Fatal("expecting error")
	}
}

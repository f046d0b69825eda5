package app

import (
	"image"
	"testing"
)

func TestParseSize(t *testing.T) {
	p, err := ParseSize("800x600")
	if err != nil {
		t.Fatal(err)
	}
	if p != (image.Point{800, 600}) {
		t.Fatal(p)
	}
	p, err = ParseSize("10X20")
	if err != nil || p != (image.Point{10, 20}) {
		t.Fatal(p, err)
	}
	for _, s := range []string{"", "800", "ax600", "0x10", "10x-1"} {
		if _, err := ParseSize(s); err == nil {
			t.Fatalf("expecting error: %q", s)
		}
	}
}

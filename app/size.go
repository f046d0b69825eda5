package app

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Parses "WxH", ex: "800x600".
func ParseSize(s string) (image.Point, error) {
	a := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(a) != 2 {
		return image.Point{}, fmt.Errorf("bad size: %q", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(a[0]))
	if err != nil {
		return image.Point{}, fmt.Errorf("bad size: %w", err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(a[1]))
	if err != nil {
		return image.Point{}, fmt.Errorf("bad size: %w", err)
	}
	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("bad size: %q", s)
	}
	return image.Point{w, h}, nil
}

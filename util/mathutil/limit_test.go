package mathutil

import (
	"math"
	"testing"
)

func TestLimitFloat64(t *testing.T) {
	if v := LimitFloat64(-3, -2, 0); v != -2 {
		t.Fatal(v)
	}
	if v := LimitFloat64(5, -2, 0); v != 0 {
		t.Fatal(v)
	}
	if v := LimitFloat64(-1.5, -2, 0); v != -1.5 {
		t.Fatal(v)
	}
}

func TestNormalize(t *testing.T) {
	if v := Normalize(math.Inf(1)); v != 1 {
		t.Fatal(v)
	}
	if v := Normalize(math.Inf(-1)); v != 0 {
		t.Fatal(v)
	}
	if v := Normalize(math.NaN()); v != 0 {
		t.Fatal(v)
	}
	if v := Normalize(0.25); v != 0.25 {
		t.Fatal(v)
	}
}

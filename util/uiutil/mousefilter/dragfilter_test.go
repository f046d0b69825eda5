package mousefilter

import (
	"image"
	"testing"

	"github.com/jmigpin/scrollview/util/uiutil/event"
)

func TestDragFilter1(t *testing.T) {
	var out []interface{}
	df := NewDragFilter(func(ev interface{}, p image.Point) {
		out = append(out, ev)
	})

	df.Filter(&event.MouseMove{Point: image.Point{1, 1}}, image.Point{1, 1})
	df.Filter(&event.MouseDown{Point: image.Point{1, 1}, Button: event.ButtonLeft}, image.Point{1, 1})
	df.Filter(&event.MouseMove{Point: image.Point{1, 2}}, image.Point{1, 2})
	df.Filter(&event.MouseMove{Point: image.Point{1, 3}}, image.Point{1, 3})
	df.Filter(&event.MouseUp{Point: image.Point{1, 3}, Button: event.ButtonLeft}, image.Point{1, 3})
	df.Filter(&event.MouseMove{Point: image.Point{1, 4}}, image.Point{1, 4})

	if len(out) != 6 {
		t.Fatal(len(out))
	}
	if _, ok := out[2].(*event.MouseDragMove); !ok {
		t.Fatalf("%T", out[2])
	}
	if ev, ok := out[3].(*event.MouseDragMove); !ok || ev.Point.Y != 3 {
		t.Fatalf("%#v", out[3])
	}
	if _, ok := out[5].(*event.MouseMove); !ok {
		t.Fatalf("%T", out[5])
	}
	if df.Pressing() {
		t.Fatal("still pressing")
	}
}

func TestDragFilterOtherButtonUp(t *testing.T) {
	df := NewDragFilter(func(interface{}, image.Point) {})
	df.Filter(&event.MouseDown{Button: event.ButtonLeft}, image.Point{})
	df.Filter(&event.MouseUp{Button: event.ButtonRight}, image.Point{})
	if !df.Pressing() {
		t.Fatal("expecting press to be kept")
	}
}

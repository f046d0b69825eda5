package widget

import (
	"image"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

func newTestVBar(length, width int, content float64) *ScrollBar {
	ctx := newTestImageContext(100, 300)
	sb := NewScrollBar(ctx, Vertical)
	sb.SetBounds(image.Rect(0, 0, width, length))
	sb.SetContentLength(content)
	return sb
}

func countChanges(sb *ScrollBar) *int {
	n := 0
	sb.EvReg.Add(ScrollBarChangeEventId, func(ev interface{}) {
		n++
	})
	return &n
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

//----------

func TestScrollBarClamp(t *testing.T) {
	sb := newTestVBar(200, 17, 1000)
	sb.SetValue(-1000)
	if sb.Value() != -800 {
		t.Fatal(sb.Value())
	}
	_, length := sb.HandleGeometry()
	if !almostEqual(length, 33.2) {
		t.Fatal(length)
	}

	sb.SetValue(50)
	if sb.Value() != 0 {
		t.Fatal(sb.Value())
	}
}

func TestScrollBarPinnedRange(t *testing.T) {
	sb := newTestVBar(200, 17, 100)
	if sb.MaxValue() != -maxValueEpsilon {
		t.Fatal(sb.MaxValue())
	}
	sb.SetValue(-50)
	if sb.Value() != 0 {
		t.Fatal(sb.Value())
	}
	pos, length := sb.HandleGeometry()
	if !almostEqual(length, 166) || !almostEqual(pos, 17) {
		t.Fatal(pos, length)
	}
	if sb.HeadArrow.Enabled() || sb.TailArrow.Enabled() || sb.Handle.Enabled() {
		t.Fatal("expecting disabled controls")
	}

	// range appears
	sb.SetContentLength(400)
	if !sb.HeadArrow.Enabled() || sb.Handle.State() != ButtonNormal {
		t.Fatal(sb.Handle.State())
	}
}

func TestScrollBarDegenerate(t *testing.T) {
	sb := newTestVBar(0, 0, 0)
	pos, length := sb.HandleGeometry()
	if math.IsNaN(pos) || math.IsNaN(length) || math.IsInf(pos, 0) {
		t.Fatal(pos, length)
	}
	sb.SetValue(math.NaN())
	if sb.Value() != 0 {
		t.Fatal(sb.Value())
	}

	// bar shorter than both arrows
	sb = newTestVBar(20, 17, 1000)
	pos, length = sb.HandleGeometry()
	if length != 0 || pos != 17 {
		t.Fatal(pos, length)
	}

	sb.SetContentLength(-10)
	if sb.ContentLength() != 0 {
		t.Fatal(sb.ContentLength())
	}
	sb.SetBarLength(-5)
	sb.SetBarWidth(-5)
	if sb.BarLength() != 0 || sb.BarWidth() != 0 {
		t.Fatal(sb.Bounds)
	}
}

func TestScrollBarValueRoundTrip(t *testing.T) {
	sb := newTestVBar(200, 17, 1000)
	for _, v := range []float64{0, -1, -0.5, -10.7, -799.9, -800, -801, -1e12, 1e12, 3} {
		sb.SetValue(v)
		u := sb.Value()
		if u > 0 || float64(u) < sb.MaxValue() {
			t.Fatalf("%v: %v", v, u)
		}
		sb.SetValue(float64(u))
		if sb.Value() != u {
			t.Fatalf("%v: %v != %v", v, sb.Value(), u)
		}
	}

	// integer limit stays inside the float range
	sb.SetContentLength(1000.5)
	sb.SetValue(-2000)
	if float64(sb.Value()) < sb.MaxValue() || sb.Value() != -800 {
		t.Fatal(sb.Value(), sb.MaxValue())
	}
}

func TestScrollBarHandleMonotonic(t *testing.T) {
	sb := newTestVBar(200, 17, 1000)
	prev := -1.0
	for v := 0; v >= -800; v -= 7 {
		sb.SetValue(float64(v))
		pos, length := sb.HandleGeometry()
		if pos < prev {
			t.Fatalf("value %v: pos %v < %v", v, pos, prev)
		}
		if pos < 17 || pos+length > 183+1e-9 {
			t.Fatalf("value %v: handle outside track: %v %v", v, pos, length)
		}
		prev = pos
	}
}

func TestScrollBarLayout(t *testing.T) {
	sb := newTestVBar(200, 17, 1000)
	if sb.HeadArrow.Bounds != image.Rect(0, 0, 17, 17) ||
		sb.TailArrow.Bounds != image.Rect(0, 183, 17, 200) {
		t.Fatal(spew.Sdump(sb.HeadArrow.Bounds, sb.TailArrow.Bounds))
	}
	if sb.Handle.Bounds != image.Rect(1, 17, 15, 50) {
		t.Fatal(spew.Sdump(sb.Handle.Bounds))
	}
	if sb.HeadArrow.ArrowWidth != 8.5 || sb.HeadArrow.ArrowHeight != 4.25 {
		t.Fatal(sb.HeadArrow.ArrowWidth, sb.HeadArrow.ArrowHeight)
	}

	sb.SetValue(-800)
	if sb.Handle.Bounds.Min != image.Pt(1, 149) {
		t.Fatal(spew.Sdump(sb.Handle.Bounds))
	}
}

func TestScrollBarHorizontal(t *testing.T) {
	ctx := newTestImageContext(300, 100)
	sb := NewScrollBar(ctx, Horizontal)
	sb.SetBounds(image.Rect(10, 50, 210, 67))
	sb.SetContentLength(1000)
	if sb.BarLength() != 200 || sb.BarWidth() != 17 {
		t.Fatal(sb.BarLength(), sb.BarWidth())
	}
	if sb.HeadArrow.Rotation != -90 || sb.TailArrow.Rotation != 90 {
		t.Fatal(sb.HeadArrow.Rotation, sb.TailArrow.Rotation)
	}
	if sb.TailArrow.Bounds != image.Rect(193, 50, 210, 67) {
		t.Fatal(spew.Sdump(sb.TailArrow.Bounds))
	}
	if sb.Handle.Bounds != image.Rect(27, 51, 60, 65) {
		t.Fatal(spew.Sdump(sb.Handle.Bounds))
	}
}

//----------

func TestScrollBarDrag(t *testing.T) {
	sb := newTestVBar(200, 17, 1000)
	n := countChanges(sb)
	ae := NewApplyEvent(nil)

	p := image.Point{8, 20} // inside handle
	ae.Apply(sb, leftDown(p), p)
	if !sb.Dragging() || sb.Handle.State() != ButtonActive {
		t.Fatal(sb.Dragging(), sb.Handle.State())
	}

	p2 := image.Point{8, 30}
	ae.Apply(sb, dragMove(p2), p2)
	if sb.Value() != -60 {
		t.Fatal(sb.Value())
	}
	if *n != 1 {
		t.Fatal(*n)
	}

	// moving outside the bar keeps dragging
	p3 := image.Point{80, 1000}
	ae.Apply(sb, dragMove(p3), p3)
	if sb.Value() != -800 {
		t.Fatal(sb.Value())
	}

	// back to the origin
	ae.Apply(sb, dragMove(p), p)
	if sb.Value() != 0 {
		t.Fatal(sb.Value())
	}

	ae.Apply(sb, leftUp(p3), p3)
	if sb.Dragging() || sb.Handle.State() != ButtonNormal {
		t.Fatal(sb.Dragging(), sb.Handle.State())
	}
	if *n != 3 {
		t.Fatal(*n)
	}
}

func TestScrollBarArrows(t *testing.T) {
	sb := newTestVBar(200, 17, 1000)
	n := countChanges(sb)
	ae := NewApplyEvent(nil)

	click := func(p image.Point) {
		ae.Apply(sb, leftDown(p), p)
		ae.Apply(sb, leftUp(p), p)
	}

	click(image.Point{5, 190}) // tail
	if sb.Value() != -120 || *n != 1 {
		t.Fatal(sb.Value(), *n)
	}
	if sb.TailArrow.State() != ButtonHover {
		t.Fatal(sb.TailArrow.State())
	}
	click(image.Point{5, 5}) // head
	if sb.Value() != 0 || *n != 2 {
		t.Fatal(sb.Value(), *n)
	}
	click(image.Point{5, 5}) // head, already at the start
	if sb.Value() != 0 || *n != 2 {
		t.Fatal(sb.Value(), *n)
	}
}

func TestScrollBarTrackClick(t *testing.T) {
	sb := newTestVBar(200, 17, 1000)
	ae := NewApplyEvent(nil)

	p := image.Point{8, 150} // below the handle
	ae.Apply(sb, leftDown(p), p)
	ae.Apply(sb, leftUp(p), p)
	if sb.Value() != -240 {
		t.Fatal(sb.Value())
	}

	p = image.Point{8, 18} // above the handle
	ae.Apply(sb, leftDown(p), p)
	ae.Apply(sb, leftUp(p), p)
	if sb.Value() != 0 {
		t.Fatal(sb.Value())
	}
}

func TestScrollBarWheel(t *testing.T) {
	sb := newTestVBar(200, 17, 1000)
	sb.SetValue(-100)
	n := countChanges(sb)

	// wheel is the container's job
	ae := NewApplyEvent(nil)
	p := image.Point{8, 100}
	ae.Apply(sb, &event.MouseWheel{Point: p, Delta: image.Point{0, 50}}, p)
	if sb.Value() != -100 || *n != 0 {
		t.Fatal(sb.Value(), *n)
	}

	var got *event.MouseWheel
	sb.wheel = func(ev *event.MouseWheel) { got = ev }
	ev := &event.MouseWheel{Point: p, Delta: image.Point{0, 50}}
	ae.Apply(sb, ev, p)
	if got != ev {
		t.Fatal(got)
	}
}

func TestScrollBarSetValueNoEvent(t *testing.T) {
	sb := newTestVBar(200, 17, 1000)
	n := countChanges(sb)
	sb.SetValue(-300)
	sb.SetValue(-300)
	if *n != 0 {
		t.Fatal(*n)
	}
	sb.changeValue(nil, -300)
	if *n != 0 {
		t.Fatal(*n)
	}
	sb.changeValue(nil, -301)
	if *n != 1 {
		t.Fatal(*n)
	}
}

func TestScrollBarPaint(t *testing.T) {
	ctx := newTestImageContext(17, 200)
	sb := NewScrollBar(ctx, Vertical)
	sb.SetBounds(image.Rect(0, 0, 17, 200))
	sb.SetContentLength(1000)
	sb.PaintMarked()

	c := ctx.img.At(8, 30) // handle
	if !sameColor(c, DefaultPalette["scrollhandle_normal"]) {
		t.Fatal(spew.Sdump(c))
	}
	c = ctx.img.At(8, 100) // track
	if !sameColor(c, DefaultPalette["scrollbar_bg"]) {
		t.Fatal(spew.Sdump(c))
	}
	c = ctx.img.At(8, 8) // head arrow glyph
	if !sameColor(c, DefaultPalette["scrollarrow_fg"]) {
		t.Fatal(spew.Sdump(c))
	}

	// handle moved: old position is repainted with the track color
	sb.SetValue(-800)
	sb.PaintMarked()
	c = ctx.img.At(8, 30)
	if !sameColor(c, DefaultPalette["scrollbar_bg"]) {
		t.Fatal(spew.Sdump(c))
	}
}

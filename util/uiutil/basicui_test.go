package uiutil

import (
	"image"
	"image/draw"
	"testing"

	"github.com/jmigpin/scrollview/util/uiutil/event"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
)

type testWindow struct {
	img    *image.RGBA
	puts   []image.Rectangle
	cursor event.Cursor
	events chan interface{}
}

func newTestWindow() *testWindow {
	return &testWindow{
		img:    image.NewRGBA(image.Rect(0, 0, 1, 1)),
		events: make(chan interface{}, 8),
	}
}

func (w *testWindow) NextEvent() interface{}   { return <-w.events }
func (w *testWindow) Close() error             { return nil }
func (w *testWindow) SetWindowName(string)     {}
func (w *testWindow) Image() draw.Image        { return w.img }
func (w *testWindow) SetCursor(c event.Cursor) { w.cursor = c }
func (w *testWindow) QueryPointer() (image.Point, error) {
	return image.Point{}, nil
}
func (w *testWindow) PutImage(r image.Rectangle) error {
	w.puts = append(w.puts, r)
	return nil
}
func (w *testWindow) ResizeImage(r image.Rectangle) error {
	w.img = image.NewRGBA(r)
	return nil
}

//----------

func newTestUI() (*BasicUI, *testWindow, *widget.ScrollContainer) {
	win := newTestWindow()
	ui := NewBasicUI(win)
	sc := widget.NewScrollContainer(ui, widget.DefaultScrollConfig())
	sc.SetContentSize(image.Point{500, 1000})
	ui.SetRootNode(sc)
	return ui, win, sc
}

func TestBasicUIResizePaint(t *testing.T) {
	ui, win, sc := newTestUI()
	ui.HandleEvent(&event.WindowResize{Rect: image.Rect(0, 0, 300, 200)})
	ui.LayoutMarked()
	if sc.Bounds != image.Rect(0, 0, 300, 200) {
		t.Fatal(sc.Bounds)
	}
	if sc.VBar.ValueLimit() != -817 {
		t.Fatal(sc.VBar.ValueLimit())
	}
	if !ui.PaintMarked() || len(win.puts) != 1 {
		t.Fatal(win.puts)
	}
	if win.puts[0] != image.Rect(0, 0, 300, 200) {
		t.Fatal(win.puts[0])
	}
	// nothing to paint
	if ui.PaintMarked() {
		t.Fatal("not expecting paint")
	}
}

func TestBasicUIInput(t *testing.T) {
	ui, _, sc := newTestUI()
	ui.HandleEvent(&event.WindowResize{Rect: image.Rect(0, 0, 300, 200)})
	ui.LayoutMarked()

	input := func(ev interface{}, p image.Point) {
		ui.HandleEvent(&event.WindowInput{Point: p, Event: ev})
	}

	p := image.Point{100, 100}
	input(&event.MouseWheel{Point: p, Delta: image.Point{0, 50}}, p)
	if sc.ScrollY() != -50 {
		t.Fatal(sc.ScrollY())
	}

	// drag the vertical handle with plain mouse moves
	hb := sc.VBar.Handle.Bounds
	p = hb.Min.Add(image.Point{3, 3})
	input(&event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	p2 := p.Add(image.Point{0, 10})
	input(&event.MouseMove{Point: p2, Buttons: event.MouseButtons(event.ButtonLeft)}, p2)
	input(&event.MouseUp{Point: p2, Button: event.ButtonLeft}, p2)
	if sc.ScrollY() >= -50 {
		t.Fatal(sc.ScrollY())
	}
	if sc.VBar.Value() != sc.ScrollY() {
		t.Fatal(sc.VBar.Value(), sc.ScrollY())
	}
}

func TestBasicUIEventLoop(t *testing.T) {
	ui, win, sc := newTestUI()
	win.events <- &event.WindowResize{Rect: image.Rect(0, 0, 300, 200)}
	ran := false
	ui.RunOnUIThread(func() { ran = true })
	win.events <- &event.WindowClose{}
	ui.EventLoop()
	if sc.Bounds.Empty() || !ran {
		t.Fatal(sc.Bounds, ran)
	}
}

package uiutil

import (
	"image"
	"image/draw"
	"log"
	"time"

	"github.com/jmigpin/scrollview/driver"
	"github.com/jmigpin/scrollview/util/uiutil/event"
	"github.com/jmigpin/scrollview/util/uiutil/mousefilter"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
)

// Window, root node, and the event loop that dispatches input, layouts and paints the marked nodes.
type BasicUI struct {
	DrawFrameRate int // frames per second
	RootNode      widget.Node
	Win           driver.Window

	events    chan interface{}
	applyEv   *widget.ApplyEvent
	dragf     *mousefilter.DragFilter
	lastPaint time.Time
	curCursor event.Cursor
}

// The root node must be set with SetRootNode before running the event loop.
func NewBasicUI(win driver.Window) *BasicUI {
	ui := &BasicUI{
		DrawFrameRate: 37,
		Win:           win,
		events:        make(chan interface{}, 16),
	}
	ui.applyEv = widget.NewApplyEvent(ui)
	ui.dragf = mousefilter.NewDragFilter(func(ev interface{}, p image.Point) {
		ui.applyEv.Apply(ui.RootNode, ev, p)
	})
	return ui
}

func (ui *BasicUI) SetRootNode(root widget.Node) {
	root.Embed().SetWrapperForRoot(root)
	ui.RootNode = root
}

func (ui *BasicUI) Close() error {
	return ui.Win.Close()
}

//----------

// Runs until the window is closed.
func (ui *BasicUI) EventLoop() {
	go func() {
		for {
			ev := ui.Win.NextEvent()
			ui.events <- ev
			if _, ok := ev.(*event.WindowClose); ok {
				return
			}
		}
	}()
	for ev := range ui.events {
		if quit := ui.HandleEvent(ev); quit {
			return
		}
		ui.LayoutMarked()
		ui.PaintIfTime()
	}
}

func (ui *BasicUI) HandleEvent(ev interface{}) (quit bool) {
	switch t := ev.(type) {
	case *event.WindowClose:
		return true
	case *event.WindowResize:
		ui.resize(t.Rect)
	case *event.WindowExpose:
		ui.RootNode.Embed().MarkNeedsPaint()
	case *event.WindowInput:
		ui.dragf.Filter(t.Event, t.Point)
	case *UIRunFuncEvent:
		t.Func()
	case error:
		log.Println(t)
	case struct{}:
		// no op
	default:
		log.Printf("unhandled event: %#v", ev)
	}
	return false
}

func (ui *BasicUI) resize(r image.Rectangle) {
	if err := ui.Win.ResizeImage(r); err != nil {
		log.Println(err)
		return
	}
	en := ui.RootNode.Embed()
	ib := ui.Win.Image().Bounds()
	if !en.Bounds.Eq(ib) {
		en.Bounds = ib
		en.MarkNeedsLayoutAndPaint()
		ui.LayoutMarked()
		ui.updatePointerInside()
	}
}

// Nodes might have moved under the pointer.
func (ui *BasicUI) updatePointerInside() {
	p, err := ui.Win.QueryPointer()
	if err != nil {
		return
	}
	ui.applyEv.Apply(ui.RootNode, nil, p)
}

//----------

func (ui *BasicUI) LayoutMarked() {
	ui.RootNode.LayoutMarked()
}

// Should be called in the event loop after every event.
func (ui *BasicUI) PaintIfTime() {
	now := time.Now()
	d := now.Sub(ui.lastPaint)
	if d >= time.Second/time.Duration(ui.DrawFrameRate) {
		if ui.PaintMarked() {
			ui.lastPaint = now
		}
		return
	}
	if ui.RootNode.Embed().TreeNeedsPaint() && len(ui.events) == 0 {
		// didn't paint to keep the frame rate, iterate the loop again later
		time.AfterFunc(time.Second/time.Duration(ui.DrawFrameRate)-d, ui.EnqueueNoOpEvent)
	}
}

// Paints marked nodes and uploads the union of the painted areas.
func (ui *BasicUI) PaintMarked() (painted bool) {
	r := ui.RootNode.PaintMarked()
	if r.Empty() {
		return false
	}
	if err := ui.Win.PutImage(r); err != nil {
		log.Println(err)
	}
	return true
}

func (ui *BasicUI) EnqueueNoOpEvent() {
	ui.events <- struct{}{}
}

func (ui *BasicUI) RunOnUIThread(f func()) {
	ui.events <- &UIRunFuncEvent{f}
}

//----------

// Implements widget.ImageContext
func (ui *BasicUI) Image() draw.Image {
	return ui.Win.Image()
}

// Implements widget.CursorContext
func (ui *BasicUI) SetCursor(c event.Cursor) {
	if ui.curCursor == c {
		return
	}
	ui.curCursor = c
	ui.Win.SetCursor(c)
}

//----------

type UIRunFuncEvent struct {
	Func func()
}

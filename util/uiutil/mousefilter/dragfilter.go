package mousefilter

import (
	"image"

	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Turns mouse moves that happen while the first pressed button is held into MouseDragMove events. Every move is emitted, in order.
type DragFilter struct {
	pressEv  *event.MouseDown
	emitEvFn func(interface{}, image.Point)
}

func NewDragFilter(emitEvFn func(interface{}, image.Point)) *DragFilter {
	return &DragFilter{emitEvFn: emitEvFn}
}

func (dragf *DragFilter) Filter(ev interface{}, p image.Point) {
	switch t := ev.(type) {
	case *event.MouseDown:
		if dragf.pressEv == nil && !t.Button.IsWheel() {
			dragf.pressEv = t
		}
		dragf.emitEvFn(ev, p)
	case *event.MouseMove:
		if dragf.pressEv != nil {
			ev2 := &event.MouseDragMove{Point: t.Point, Buttons: t.Buttons}
			dragf.emitEvFn(ev2, p)
			return
		}
		dragf.emitEvFn(ev, p)
	case *event.MouseUp:
		if dragf.pressEv != nil && t.Button == dragf.pressEv.Button {
			dragf.pressEv = nil
		}
		dragf.emitEvFn(ev, p)
	default:
		dragf.emitEvFn(ev, p)
	}
}

func (dragf *DragFilter) Pressing() bool {
	return dragf.pressEv != nil
}

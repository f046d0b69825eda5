package widget

import (
	"image"

	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Dispatches input events into a node tree. Nodes that receive a press keep receiving the drag moves and the release, even outside their bounds.
type ApplyEvent struct {
	press AEPressState
	cctx  CursorContext
}

func NewApplyEvent(cctx CursorContext) *ApplyEvent {
	ae := &ApplyEvent{cctx: cctx}
	return ae
}

//----------

func (ae *ApplyEvent) Apply(node Node, ev interface{}, p image.Point) {
	if !ae.press.pressing {
		ae.mouseEnterLeave(node, p)
	}

	switch evt := ev.(type) {
	case nil: // allow running the rest of the function without an event
	case *event.MouseDown:
		if ae.press.pressing {
			ae.runPath(evt, p)
			break
		}
		var path []Node
		ae.depthFirstEv(node, evt, p, &path)
		ae.press = AEPressState{pressing: true, button: evt.Button, path: path}
	case *event.MouseDragMove:
		if ae.press.pressing {
			ae.runPath(evt, p)
		} else {
			ae.depthFirstEv(node, evt, p, nil)
		}
	case *event.MouseUp:
		if !ae.press.pressing {
			ae.depthFirstEv(node, evt, p, nil)
			break
		}
		ae.runPath(evt, p)
		if evt.Button == ae.press.button {
			ae.press = AEPressState{}
			ae.mouseEnterLeave(node, p)
		}
	default:
		// ex: event.MouseMove, event.MouseWheel
		ae.depthFirstEv(node, evt, p, nil)
	}

	ae.setCursor(node, p)
}

func (ae *ApplyEvent) Pressing() bool {
	return ae.press.pressing
}

//----------

func (ae *ApplyEvent) setCursor(node Node, p image.Point) {
	if ae.cctx == nil {
		return
	}
	var c event.Cursor
	if ae.press.pressing && len(ae.press.path) > 0 {
		c = ae.press.path[0].Embed().Cursor
	} else {
		c = ae.treeCursor(node, p)
	}
	ae.cctx.SetCursor(c)
}

func (ae *ApplyEvent) treeCursor(node Node, p image.Point) event.Cursor {
	ne := node.Embed()
	if !p.In(ne.Bounds) {
		return 0
	}
	var c event.Cursor
	ne.IterateWrappersReverse(func(child Node) bool {
		c = ae.treeCursor(child, p)
		return c == 0 // continue while no cursor was set
	})
	if c == 0 {
		c = ne.Cursor
	}
	return c
}

//----------

func (ae *ApplyEvent) mouseEnterLeave(node Node, p image.Point) {
	ae.mouseLeave(node, p) // run leave first
	ae.mouseEnter(node, p)
}

func (ae *ApplyEvent) mouseEnter(node Node, p image.Point) event.Handle {
	ne := node.Embed()

	if !p.In(ne.Bounds) {
		return event.NotHandled
	}

	// execute on childs
	h := event.NotHandled
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.mouseEnter(c, p)
		return h == event.NotHandled
	})

	// execute on node
	if !h {
		if !ne.HasAnyMarks(MarkPointerInside) {
			ne.AddMarks(MarkPointerInside)
			h = ae.runEv(node, &event.MouseEnter{}, p)
		}
	}

	if ne.HasAnyMarks(MarkInBoundsHandlesEvent) {
		h = event.Handled
	}
	return h
}

func (ae *ApplyEvent) mouseLeave(node Node, p image.Point) event.Handle {
	ne := node.Embed()

	// execute on childs
	h := event.NotHandled
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.mouseLeave(c, p)
		return h == event.NotHandled
	})

	// execute on node
	if !h {
		if ne.HasAnyMarks(MarkPointerInside) && !p.In(ne.Bounds) {
			ne.RemoveMarks(MarkPointerInside)
			h = ae.runEv(node, &event.MouseLeave{}, p)
		}
	}
	return h
}

//----------

// Depth first, reverse order. Nodes that run the event are appended to path (deepest first).
func (ae *ApplyEvent) depthFirstEv(node Node, ev interface{}, p image.Point, path *[]Node) event.Handle {
	if !p.In(node.Embed().Bounds) {
		return event.NotHandled
	}

	// execute on childs
	h := event.NotHandled
	node.Embed().IterateWrappersReverse(func(c Node) bool {
		h = ae.depthFirstEv(c, ev, p, path)
		return h == event.NotHandled
	})

	// execute on node
	if !h {
		if path != nil {
			*path = append(*path, node)
		}
		h = ae.runEv(node, ev, p)
	}

	if node.Embed().HasAnyMarks(MarkInBoundsHandlesEvent) {
		h = event.Handled
	}
	return h
}

func (ae *ApplyEvent) runPath(ev interface{}, p image.Point) {
	for _, n := range ae.press.path {
		if ae.runEv(n, ev, p) {
			break
		}
	}
}

func (ae *ApplyEvent) runEv(node Node, ev interface{}, p image.Point) event.Handle {
	return node.OnInputEvent(ev, p)
}

//----------

type AEPressState struct {
	pressing bool
	button   event.MouseButton
	path     []Node
}

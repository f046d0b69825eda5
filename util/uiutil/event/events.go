package event

import (
	"image"
)

//----------

type WindowClose struct{}
type WindowResize struct{ Rect image.Rectangle }
type WindowExpose struct{ Rect image.Rectangle }
type WindowInput struct {
	Point image.Point
	Event interface{}
}

//----------

type Handle bool

const (
	NotHandled Handle = false
	Handled    Handle = true
)

//----------

type MouseEnter struct{}
type MouseLeave struct{}

type MouseDown struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
}
type MouseUp struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
}

// Pointer moved while a button is pressed. Delivered to the nodes that received the press.
type MouseDragMove struct {
	Point   image.Point
	Buttons MouseButtons
}

// Wheel deltas in pixels. Positive Y scrolls towards the end of the content.
type MouseWheel struct {
	Point image.Point
	Delta image.Point
}

//----------

type Cursor int

const (
	NoneCursor Cursor = iota // none means not set
	DefaultCursor
	PointerCursor
	MoveCursor
)

package widget

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

type testImageContext struct {
	img draw.Image
}

func newTestImageContext(w, h int) *testImageContext {
	return &testImageContext{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (ctx *testImageContext) Image() draw.Image {
	return ctx.img
}

//----------

// Fills its bounds and records the input events it receives.
type testNode struct {
	ENode
	ctx    ImageContext
	c      color.Color
	events []interface{}
}

func newTestNode(ctx ImageContext, c color.Color) *testNode {
	return &testNode{ctx: ctx, c: c}
}

func (n *testNode) Paint() {
	imageutil.FillRectangle(n.ctx.Image(), n.Bounds, n.c)
}

func (n *testNode) OnInputEvent(ev interface{}, p image.Point) event.Handle {
	n.events = append(n.events, ev)
	return event.NotHandled
}

//----------

func leftDown(p image.Point) *event.MouseDown {
	return &event.MouseDown{Point: p, Button: event.ButtonLeft}
}
func leftUp(p image.Point) *event.MouseUp {
	return &event.MouseUp{Point: p, Button: event.ButtonLeft}
}
func dragMove(p image.Point) *event.MouseDragMove {
	return &event.MouseDragMove{Point: p, Buttons: event.MouseButtons(event.ButtonLeft)}
}

func sameColor(c1, c2 color.Color) bool {
	return imageutil.RgbaColor(c1) == imageutil.RgbaColor(c2)
}

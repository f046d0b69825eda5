package widget

import (
	"image"

	"github.com/jmigpin/scrollview/util/evreg"
	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

type ScrollConfig struct {
	BarThickness   int
	UnitIncrement  int
	BlockIncrement int
}

func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{BarThickness: 17, UnitIncrement: 120, BlockIncrement: 240}
}

//----------

// Clipped content region with a vertical and a horizontal scrollbar along the right and bottom edges.
// Appended nodes go into the content region, and should paint using ContentContext().
type ScrollContainer struct {
	ENode
	VBar    *ScrollBar
	HBar    *ScrollBar
	Content *ScrollContent

	EvReg evreg.Register // ScrollContainerScrollEventId

	viewport     *scrollViewport
	barThickness int
	reqSize      image.Point // requested content size
	scroll       image.Point // content offset, always <= 0
	clip         image.Rectangle
	contentCtx   *ClipContext
	ctx          ImageContext
}

func NewScrollContainer(ctx ImageContext, cfg ScrollConfig) *ScrollContainer {
	sc := &ScrollContainer{ctx: ctx}
	sc.barThickness = mathutil.Biggest(cfg.BarThickness, 0)
	sc.contentCtx = NewClipContext(ctx, &sc.clip)

	sc.viewport = &scrollViewport{sc: sc}
	sc.Content = &ScrollContent{}
	sc.viewport.Append(sc.Content)

	sc.VBar = NewScrollBar(ctx, Vertical)
	sc.HBar = NewScrollBar(ctx, Horizontal)
	for _, sb := range []*ScrollBar{sc.VBar, sc.HBar} {
		sb.UnitIncrement = cfg.UnitIncrement
		sb.BlockIncrement = cfg.BlockIncrement
	}

	// bars are painted over the content
	sc.EmbedNode.InsertBefore(sc.viewport, nil)
	sc.EmbedNode.InsertBefore(sc.VBar, nil)
	sc.EmbedNode.InsertBefore(sc.HBar, nil)

	// from here, appended nodes go into the content
	sc.SetWrapperForRoot(sc)

	sc.VBar.wheel = sc.wheel
	sc.HBar.wheel = sc.wheel

	sc.VBar.EvReg.Add(ScrollBarChangeEventId, func(ev0 interface{}) {
		ev := ev0.(*ScrollBarChangeEvent)
		sc.setScroll(image.Point{sc.scroll.X, ev.ScrollBar.Value()}, ev.Input)
	})
	sc.HBar.EvReg.Add(ScrollBarChangeEventId, func(ev0 interface{}) {
		ev := ev0.(*ScrollBarChangeEvent)
		sc.setScroll(image.Point{ev.ScrollBar.Value(), sc.scroll.Y}, ev.Input)
	})

	return sc
}

//----------

func (sc *ScrollContainer) InsertBefore(n Node, mark *EmbedNode) {
	sc.Content.InsertBefore(n, mark)
}

func (sc *ScrollContainer) Remove(n Node) {
	sc.Content.Remove(n)
}

// Image context clipped to the viewport.
func (sc *ScrollContainer) ContentContext() ImageContext {
	return sc.contentCtx
}

func (sc *ScrollContainer) BarThickness() int {
	return sc.barThickness
}

//----------

func (sc *ScrollContainer) SetBounds(r image.Rectangle) {
	sc.Bounds = r
	sc.layout()
	sc.MarkNeedsPaint()
}

func (sc *ScrollContainer) Viewport() image.Rectangle {
	return sc.viewport.Bounds
}

// Effective content size, never smaller than the viewport.
func (sc *ScrollContainer) ContentSize() image.Point {
	vs := sc.Bounds.Size()
	return image.Point{
		mathutil.Biggest(sc.reqSize.X, vs.X),
		mathutil.Biggest(sc.reqSize.Y, vs.Y),
	}
}

func (sc *ScrollContainer) SetContentSize(size image.Point) {
	sc.reqSize = size
	sc.layout()
}

//----------

func (sc *ScrollContainer) ScrollX() int {
	return sc.scroll.X
}
func (sc *ScrollContainer) SetScrollX(x int) {
	sc.setScroll(image.Point{x, sc.scroll.Y}, nil)
}

func (sc *ScrollContainer) ScrollY() int {
	return sc.scroll.Y
}
func (sc *ScrollContainer) SetScrollY(y int) {
	sc.setScroll(image.Point{sc.scroll.X, y}, nil)
}

// Content offset relative to the viewport origin.
func (sc *ScrollContainer) Scroll() image.Point {
	return sc.scroll
}

func (sc *ScrollContainer) setScroll(p image.Point, input interface{}) {
	p.X = mathutil.LimitInt(p.X, sc.HBar.ValueLimit(), 0)
	p.Y = mathutil.LimitInt(p.Y, sc.VBar.ValueLimit(), 0)
	changed := p != sc.scroll
	sc.scroll = p

	// mirror without notifications
	sc.HBar.SetValue(float64(p.X))
	sc.VBar.SetValue(float64(p.Y))

	sc.placeContent()

	if changed {
		ev := &ScrollContainerScrollEvent{ScrollContainer: sc, Input: input}
		sc.EvReg.RunCallbacks(ScrollContainerScrollEventId, ev)
	}
}

//----------

func (sc *ScrollContainer) Layout() {
	sc.layout()
}

func (sc *ScrollContainer) layout() {
	b := sc.Bounds
	t := sc.barThickness
	sc.viewport.Bounds = b
	sc.clip = b

	// the bottom right corner square belongs to neither bar
	x0 := mathutil.Biggest(b.Max.X-t, b.Min.X)
	y0 := mathutil.Biggest(b.Max.Y-t, b.Min.Y)
	sc.VBar.SetBounds(image.Rect(x0, b.Min.Y, b.Max.X, y0))
	sc.HBar.SetBounds(image.Rect(b.Min.X, y0, x0, b.Max.Y))

	// range: -(content-viewport)-thickness, the content end clears the bars
	cs := sc.ContentSize()
	sc.VBar.SetContentLength(float64(cs.Y))
	sc.HBar.SetContentLength(float64(cs.X))

	sc.setScroll(sc.scroll, nil)
}

func (sc *ScrollContainer) placeContent() {
	min := sc.viewport.Bounds.Min.Add(sc.scroll)
	r := image.Rectangle{min, min.Add(sc.ContentSize())}
	if r != sc.Content.Bounds {
		sc.Content.Bounds = r
		sc.Content.MarkNeedsLayout()
		sc.viewport.MarkNeedsPaint()
	}
}

//----------

func (sc *ScrollContainer) OnInputEvent(ev interface{}, p image.Point) event.Handle {
	switch evt := ev.(type) {
	case *event.MouseWheel:
		sc.wheel(evt)
		return event.Handled
	}
	return event.NotHandled
}

// Both axes, wherever the wheel happens inside the container.
func (sc *ScrollContainer) wheel(ev *event.MouseWheel) {
	sc.setScroll(sc.scroll.Sub(ev.Delta), ev)
}

//----------

type ScrollContainerScrollEvent struct {
	ScrollContainer *ScrollContainer
	Input           interface{} // nil if set programmatically
}

//----------

// Holds the user nodes. Bounds cover the whole content size, offset by the scroll.
type ScrollContent struct {
	ENode
}

//----------

type scrollViewport struct {
	ENode
	sc *ScrollContainer
}

func (vp *scrollViewport) Layout() {
	vp.sc.placeContent()
}

func (vp *scrollViewport) Paint() {
	c := vp.TreeThemePaletteColor("bg")
	imageutil.FillRectangle(vp.sc.ctx.Image(), vp.Bounds, c)
}

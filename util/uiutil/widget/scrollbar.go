package widget

import (
	"image"
	"math"

	"github.com/jmigpin/scrollview/util/evreg"
	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

const (
	ScrollBarChangeEventId = iota
	ScrollContainerScrollEventId
)

// Keeps a scroll range even when the content fits in the bar.
const maxValueEpsilon = 0.001

// Proportional scrollbar with head/tail arrows and a draggable handle.
// The value is the content offset along the bar axis: it goes from zero (content start) down to ValueLimit().
type ScrollBar struct {
	ENode
	Orientation    Orientation
	UnitIncrement  int // arrow clicks
	BlockIncrement int // track clicks

	HeadArrow *ArrowButton
	TailArrow *ArrowButton
	Handle    *Pressable

	EvReg evreg.Register // ScrollBarChangeEventId

	value         int
	contentLength float64
	drag          *SBDragState // nil when not dragging

	wheel func(*event.MouseWheel) // set by the owning container

	ctx ImageContext
}

func NewScrollBar(ctx ImageContext, o Orientation) *ScrollBar {
	sb := &ScrollBar{ctx: ctx, Orientation: o}
	sb.SetWrapperForRoot(sb) // receive OnChildMarked before having a parent
	sb.UnitIncrement = 120
	sb.BlockIncrement = 240

	rot := 0.0
	if o == Horizontal {
		rot = -90
	}
	sb.HeadArrow = NewArrowButton(ctx, rot)
	sb.TailArrow = NewArrowButton(ctx, rot+180)
	sb.Handle = NewPressable(ctx)
	sb.Append(sb.HeadArrow, sb.TailArrow, sb.Handle)

	sb.AddMarks(MarkInBoundsHandlesEvent)
	sb.OnThemeChange()
	sb.redraw()
	return sb
}

//----------

func (sb *ScrollBar) Value() int {
	return sb.value
}

// Clamps the value into the valid range. Doesn't emit a change event.
func (sb *ScrollBar) SetValue(v float64) {
	sb.value = sb.clampValue(v)
	sb.redraw()
}

// Used by input: emits a change event if the clamped value differs.
func (sb *ScrollBar) changeValue(input interface{}, v float64) {
	old := sb.value
	sb.SetValue(v)
	if sb.value != old {
		ev := &ScrollBarChangeEvent{ScrollBar: sb, Input: input}
		sb.EvReg.RunCallbacks(ScrollBarChangeEventId, ev)
	}
}

func (sb *ScrollBar) clampValue(v float64) int {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Floor(v)
	v = mathutil.LimitFloat64(v, float64(sb.ValueLimit()), 0)
	return int(v)
}

// Lowest valid offset, always negative.
func (sb *ScrollBar) MaxValue() float64 {
	u := float64(sb.BarLength()) - sb.contentLength
	return math.Min(-maxValueEpsilon, u)
}

// Lowest valid integer value. Zero when the content fits in the bar.
func (sb *ScrollBar) ValueLimit() int {
	return int(math.Ceil(sb.MaxValue()))
}

//----------

func (sb *ScrollBar) ContentLength() float64 {
	return sb.contentLength
}

func (sb *ScrollBar) SetContentLength(l float64) {
	if math.IsNaN(l) || l < 0 {
		l = 0
	}
	sb.contentLength = l
	sb.SetValue(float64(sb.value))
}

//----------

func (sb *ScrollBar) BarWidth() int {
	return sb.Orientation.Cross(sb.Bounds.Size())
}

func (sb *ScrollBar) SetBarWidth(w int) {
	size := sb.Bounds.Size()
	*sb.Orientation.CrossPtr(&size) = mathutil.Biggest(w, 0)
	sb.SetBounds(image.Rectangle{sb.Bounds.Min, sb.Bounds.Min.Add(size)})
}

func (sb *ScrollBar) BarLength() int {
	return sb.Orientation.Along(sb.Bounds.Size())
}

func (sb *ScrollBar) SetBarLength(l int) {
	size := sb.Bounds.Size()
	*sb.Orientation.AlongPtr(&size) = mathutil.Biggest(l, 0)
	sb.SetBounds(image.Rectangle{sb.Bounds.Min, sb.Bounds.Min.Add(size)})
}

// The bar length might change the range, the value is clamped again.
func (sb *ScrollBar) SetBounds(r image.Rectangle) {
	sb.Bounds = r
	sb.SetValue(float64(sb.value))
}

//----------

func (sb *ScrollBar) trackLength() float64 {
	bl := float64(sb.BarLength())
	bw := float64(sb.BarWidth())
	return math.Max(0, bl-2*bw)
}

// Ratio of the content that is visible, in [0,1].
func (sb *ScrollBar) visibleRatio() float64 {
	bl := float64(sb.BarLength())
	d := math.Max(sb.contentLength, math.Max(bl, 1))
	return mathutil.Normalize(bl / d)
}

// Handle start and length along the bar, relative to the bar start.
func (sb *ScrollBar) HandleGeometry() (pos, length float64) {
	track := sb.trackLength()
	vr := sb.visibleRatio()
	length = track * vr
	vp := mathutil.Normalize(float64(sb.value) / sb.MaxValue())
	pos = float64(sb.BarWidth()) + track*(1-vr)*vp
	return pos, length
}

// Converts a pixel distance along the track into a value distance.
func (sb *ScrollBar) pixelsToValue(px float64) float64 {
	track := math.Max(1, sb.trackLength())
	return px * sb.contentLength / track
}

//----------

func (sb *ScrollBar) Layout() {
	sb.layoutArrows()
	sb.layoutHandle()
}

func (sb *ScrollBar) redraw() {
	sb.Layout()
	sb.updateEnabled()
	sb.MarkNeedsPaint()
}

func (sb *ScrollBar) layoutArrows() {
	bw := sb.BarWidth()
	bl := sb.BarLength()
	size := image.Point{bw, bw}

	hmin := sb.Bounds.Min
	sb.HeadArrow.Bounds = image.Rectangle{hmin, hmin.Add(size)}.Intersect(sb.Bounds)

	tmin := sb.Bounds.Min.Add(sb.Orientation.Point(bl-bw, 0))
	sb.TailArrow.Bounds = image.Rectangle{tmin, tmin.Add(size)}.Intersect(sb.Bounds)

	for _, a := range []*ArrowButton{sb.HeadArrow, sb.TailArrow} {
		a.ArrowWidth = float64(bw) / 2
		a.ArrowHeight = float64(bw) / 4
		a.MarkNeedsPaint()
	}
}

func (sb *ScrollBar) layoutHandle() {
	pos, length := sb.HandleGeometry()

	bw := float64(sb.BarWidth())
	cross := bw * 0.8
	cpos := (bw - cross) / 2

	min := sb.Orientation.Point(int(math.Floor(pos)), int(math.Floor(cpos)))
	max := sb.Orientation.Point(int(math.Floor(pos+length)), int(math.Floor(cpos+cross)))
	r := image.Rectangle{min, max}.Add(sb.Bounds.Min)
	if r != sb.Handle.Bounds {
		sb.Handle.Bounds = r
		sb.Handle.MarkNeedsPaint()
	}
}

func (sb *ScrollBar) updateEnabled() {
	u := sb.ValueLimit() < 0
	sb.HeadArrow.SetEnabled(u)
	sb.TailArrow.SetEnabled(u)
	sb.Handle.SetEnabled(u)
}

//----------

func (sb *ScrollBar) Paint() {
	c := sb.TreeThemePaletteColor("scrollbar_bg")
	imageutil.FillRectangle(sb.ctx.Image(), sb.Bounds, c)
}

func (sb *ScrollBar) OnChildMarked(child Node, newMarks Marks) {
	// paint the background where the handle was
	if newMarks.HasAny(MarkNeedsPaint) {
		sb.MarkNeedsPaint()
	}
}

func (sb *ScrollBar) OnThemeChange() {
	pc := sb.TreeThemePaletteColor
	bg := pc("scrollbar_bg")
	for _, a := range []*ArrowButton{sb.HeadArrow, sb.TailArrow} {
		a.SetBackgroundColor(ButtonNormal, bg)
		a.SetBackgroundColor(ButtonHover, pc("scrollarrow_bg_hover"))
		a.SetBackgroundColor(ButtonActive, pc("scrollarrow_bg_active"))
		a.SetBackgroundColor(ButtonDisabled, bg)

		fg := pc("scrollarrow_fg")
		a.SetForegroundColor(ButtonNormal, fg)
		a.SetForegroundColor(ButtonHover, fg)
		a.SetForegroundColor(ButtonActive, pc("scrollarrow_fg_active"))
		a.SetForegroundColor(ButtonDisabled, pc("scrollarrow_fg_disabled"))
	}
	h := sb.Handle
	h.SetBackgroundColor(ButtonNormal, pc("scrollhandle_normal"))
	h.SetBackgroundColor(ButtonHover, pc("scrollhandle_hover"))
	h.SetBackgroundColor(ButtonActive, pc("scrollhandle_active"))
	h.SetBackgroundColor(ButtonDisabled, pc("scrollhandle_normal"))
}

//----------

func (sb *ScrollBar) OnInputEvent(ev interface{}, p image.Point) event.Handle {
	switch evt := ev.(type) {
	case *event.MouseDown:
		if evt.Button != event.ButtonLeft {
			break
		}
		switch {
		case p.In(sb.HeadArrow.Bounds):
			if sb.HeadArrow.Enabled() {
				sb.changeValue(evt, float64(sb.value+sb.UnitIncrement))
			}
		case p.In(sb.TailArrow.Bounds):
			if sb.TailArrow.Enabled() {
				sb.changeValue(evt, float64(sb.value-sb.UnitIncrement))
			}
		case p.In(sb.Handle.Bounds):
			sb.drag = &SBDragState{origin: p, value: sb.value}
		default:
			sb.trackClick(evt, p)
		}
	case *event.MouseDragMove:
		if sb.drag != nil {
			sb.dragTo(evt, p)
		}
	case *event.MouseUp:
		if evt.Button == event.ButtonLeft {
			sb.drag = nil
		}
	case *event.MouseWheel:
		if sb.wheel != nil {
			sb.wheel(evt)
		}
	}
	return event.NotHandled
}

func (sb *ScrollBar) trackClick(input interface{}, p image.Point) {
	pos, length := sb.HandleGeometry()
	u := float64(sb.Orientation.Along(p.Sub(sb.Bounds.Min)))
	if u < pos {
		sb.changeValue(input, float64(sb.value+sb.BlockIncrement))
	} else if u > pos+length {
		sb.changeValue(input, float64(sb.value-sb.BlockIncrement))
	}
}

func (sb *ScrollBar) dragTo(input interface{}, p image.Point) {
	delta := sb.Orientation.Along(sb.drag.origin) - sb.Orientation.Along(p)
	vd := math.Trunc(sb.pixelsToValue(float64(delta)))
	sb.changeValue(input, float64(sb.drag.value)+vd)
}

func (sb *ScrollBar) Dragging() bool {
	return sb.drag != nil
}

//----------

type SBDragState struct {
	origin image.Point
	value  int
}

//----------

type ScrollBarChangeEvent struct {
	ScrollBar *ScrollBar
	Input     interface{} // originating input event
}

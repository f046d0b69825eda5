package widget

import (
	"image"
	"image/color"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonActive
	ButtonDisabled
	nButtonStates
)

func (s ButtonState) String() string {
	switch s {
	case ButtonNormal:
		return "normal"
	case ButtonHover:
		return "hover"
	case ButtonActive:
		return "active"
	case ButtonDisabled:
		return "disabled"
	}
	return "?"
}

//----------

// Control with four visual states driven by pointer events. Paints the background color of the current state; embedders paint a foreground on top.
type Pressable struct {
	ENode
	ctx      ImageContext
	state    ButtonState
	disabled bool
	fg, bg   [nButtonStates]color.Color
}

func NewPressable(ctx ImageContext) *Pressable {
	return &Pressable{ctx: ctx}
}

func (p *Pressable) State() ButtonState {
	return p.state
}

func (p *Pressable) Enabled() bool {
	return !p.disabled
}

// The state is recomputed from the pointer position, not restored.
func (p *Pressable) SetEnabled(v bool) {
	if v == !p.disabled {
		return
	}
	p.disabled = !v
	s := ButtonNormal
	if p.HasAnyMarks(MarkPointerInside) {
		s = ButtonHover
	}
	p.setState(s)
}

func (p *Pressable) setState(s ButtonState) {
	if p.disabled {
		s = ButtonDisabled
	}
	if s != p.state {
		p.state = s
		p.MarkNeedsPaint()
	}
}

//----------

func (p *Pressable) SetForegroundColor(s ButtonState, c color.Color) {
	p.fg[s] = c
	p.MarkNeedsPaint()
}

func (p *Pressable) SetBackgroundColor(s ButtonState, c color.Color) {
	p.bg[s] = c
	p.MarkNeedsPaint()
}

func (p *Pressable) ForegroundColor() color.Color {
	return p.fg[p.state]
}

func (p *Pressable) BackgroundColor() color.Color {
	return p.bg[p.state]
}

//----------

func (p *Pressable) Paint() {
	imageutil.FillRectangle(p.ctx.Image(), p.Bounds, p.BackgroundColor())
}

func (p *Pressable) OnInputEvent(ev interface{}, pt image.Point) event.Handle {
	switch t := ev.(type) {
	case *event.MouseEnter:
		if p.state == ButtonNormal {
			p.setState(ButtonHover)
		}
	case *event.MouseLeave:
		if p.state == ButtonHover {
			p.setState(ButtonNormal)
		}
	case *event.MouseDown:
		if p.state == ButtonNormal || p.state == ButtonHover {
			p.setState(ButtonActive)
		}
	case *event.MouseUp:
		if p.state == ButtonActive {
			if t.Point.In(p.Bounds) {
				p.setState(ButtonHover)
			} else {
				p.setState(ButtonNormal)
			}
		}
	}
	return event.NotHandled
}

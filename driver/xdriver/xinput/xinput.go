package xinput

import (
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Translates X pointer events. Wheel buttons become event.MouseWheel.
type XInput struct {
	WheelStep int
}

func NewXInput(wheelStep int) *XInput {
	if wheelStep <= 0 {
		wheelStep = 50
	}
	return &XInput{WheelStep: wheelStep}
}

//----------

// Returns nil if the event should be ignored.
func (xi *XInput) ButtonPress(ev *xproto.ButtonPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	if b.IsWheel() {
		ev2 := &event.MouseWheel{Point: p, Delta: xi.wheelDelta(b)}
		return &event.WindowInput{Point: p, Event: ev2}
	}
	if b == event.ButtonNone {
		return nil
	}
	bs := translateModifiersToEventMouseButtons(ev.State)
	ev2 := &event.MouseDown{Point: p, Button: b, Buttons: bs}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) ButtonRelease(ev *xproto.ButtonReleaseEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	if b.IsWheel() || b == event.ButtonNone {
		return nil // wheel was handled on press
	}
	bs := translateModifiersToEventMouseButtons(ev.State)
	ev2 := &event.MouseUp{Point: p, Button: b, Buttons: bs}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) MotionNotify(ev *xproto.MotionNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	bs := translateModifiersToEventMouseButtons(ev.State)
	ev2 := &event.MouseMove{Point: p, Buttons: bs}
	return &event.WindowInput{Point: p, Event: ev2}
}

//----------

// Positive y scrolls towards the end of the content.
func (xi *XInput) wheelDelta(b event.MouseButton) image.Point {
	s := xi.WheelStep
	switch b {
	case event.ButtonWheelUp:
		return image.Point{0, -s}
	case event.ButtonWheelDown:
		return image.Point{0, s}
	case event.ButtonWheelLeft:
		return image.Point{-s, 0}
	case event.ButtonWheelRight:
		return image.Point{s, 0}
	}
	return image.Point{}
}

//----------

func translateButtonToEventButton(xb xproto.Button) event.MouseButton {
	var b event.MouseButton
	switch xb {
	case 1:
		b = event.ButtonLeft
	case 2:
		b = event.ButtonMiddle
	case 3:
		b = event.ButtonRight
	case 4:
		b = event.ButtonWheelUp
	case 5:
		b = event.ButtonWheelDown
	case 6:
		b = event.ButtonWheelLeft
	case 7:
		b = event.ButtonWheelRight
	}
	return b
}

func translateModifiersToEventMouseButtons(v uint16) event.MouseButtons {
	type pair struct {
		a uint16
		b event.MouseButton
	}
	pairs := []pair{
		{xproto.KeyButMaskButton1, event.ButtonLeft},
		{xproto.KeyButMaskButton2, event.ButtonMiddle},
		{xproto.KeyButMaskButton3, event.ButtonRight},
		{xproto.KeyButMaskButton4, event.ButtonWheelUp},
		{xproto.KeyButMaskButton5, event.ButtonWheelDown},
	}
	var w event.MouseButtons
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= event.MouseButtons(p.b)
		}
	}
	return w
}

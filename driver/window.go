package driver

import (
	"image"
	"image/draw"

	"github.com/jmigpin/scrollview/driver/xdriver"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

type Window interface {
	NextEvent() interface{} // emits events from uiutil/event, or an error
	Close() error

	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	ResizeImage(image.Rectangle) error

	SetCursor(event.Cursor)
	QueryPointer() (image.Point, error)
}

type Options struct {
	Size      image.Point // initial window size
	WheelStep int         // pixels per wheel click
}

func NewWindow(opt *Options) (Window, error) {
	return xdriver.NewWindow(opt.Size, opt.WheelStep)
}

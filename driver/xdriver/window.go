package xdriver

import (
	"image"
	"image/draw"
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollview/driver/xdriver/wimage"
	"github.com/jmigpin/scrollview/driver/xdriver/xcursors"
	"github.com/jmigpin/scrollview/driver/xdriver/xinput"
	"github.com/jmigpin/scrollview/util/uiutil/event"
	"github.com/pkg/errors"
)

type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	Cursors *xcursors.Cursors
	XInput  *xinput.XInput
	WImg    wimage.WImage

	atoms     *atoms
	closeOnce sync.Once
	events    chan interface{}
}

func NewWindow(size image.Point, wheelStep int) (*Window, error) {
	conn, err := xgb.NewConnDisplay(os.Getenv("DISPLAY"))
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}

	// before any concurrent use of the connection
	wimage.Init(conn)

	win := &Window{
		Conn:   conn,
		events: make(chan interface{}, 8),
	}
	win.XInput = xinput.NewXInput(wheelStep)

	if size.X <= 0 || size.Y <= 0 {
		size = image.Point{500, 500}
	}
	if err := win.initialize(size); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}

	go win.eventLoop()

	return win, nil
}

func (win *Window) initialize(size image.Point) error {
	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwEventMask)
	values := []uint32{evMask}

	_ = xproto.CreateWindow(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, uint16(size.X), uint16(size.Y),
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)

	_ = xproto.MapWindow(win.Conn, window)

	a, err := loadAtoms(win.Conn)
	if err != nil {
		return err
	}
	win.atoms = a

	// graphical context
	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, nil)
	if err := c2.Check(); err != nil {
		return err
	}

	win.Cursors = xcursors.NewCursors(win.Conn, win.Window)

	opt := &wimage.Options{
		Conn:       win.Conn,
		Window:     win.Window,
		ScreenInfo: win.Screen,
		GCtx:       win.GCtx,
	}
	img, err := wimage.NewWImage(opt)
	if err != nil {
		return err
	}
	win.WImg = img

	return win.atoms.setupDeleteWindow(win.Conn, win.Window)
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		if err := win.WImg.Close(); err != nil {
			log.Print(err)
		}
		win.Conn.Close()
	})
	return nil
}

//----------

func (win *Window) NextEvent() interface{} {
	return <-win.events
}

func (win *Window) eventLoop() {
	for {
		if !win.handleEvent() {
			return
		}
	}
}

// Returns false when the connection is closed.
func (win *Window) handleEvent() bool {
	ev, xerr := win.Conn.WaitForEvent()
	if ev == nil && xerr == nil {
		win.events <- &event.WindowClose{}
		return false
	}
	if xerr != nil {
		win.events <- error(xerr)
	}
	if ev == nil {
		return true
	}

	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		r := image.Rect(0, 0, int(t.Width), int(t.Height))
		win.events <- &event.WindowResize{Rect: r}
	case xproto.ExposeEvent: // region needs paint
		r := image.Rect(0, 0, int(t.Width), int(t.Height))
		win.events <- &event.WindowExpose{Rect: r}
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent:
	case shm.CompletionEvent:
		win.WImg.PutImageCompleted()

	case xproto.ButtonPressEvent:
		win.sendInput(win.XInput.ButtonPress(&t))
	case xproto.ButtonReleaseEvent:
		win.sendInput(win.XInput.ButtonRelease(&t))
	case xproto.MotionNotifyEvent:
		win.sendInput(win.XInput.MotionNotify(&t))

	case xproto.ClientMessageEvent:
		if win.atoms.isDeleteWindow(&t) {
			win.events <- &event.WindowClose{}
		}
	default:
		log.Printf("unhandled event: %#v", ev)
	}
	return true
}

func (win *Window) sendInput(wi *event.WindowInput) {
	if wi != nil {
		win.events <- wi
	}
}

//----------

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,
		win.atoms.netWMName,
		win.atoms.utf8String,
		8, // format
		uint32(len(b)),
		b)
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}

func (win *Window) PutImage(r image.Rectangle) error {
	return win.WImg.PutImage(r)
}

func (win *Window) ResizeImage(r image.Rectangle) error {
	if r.Eq(win.Image().Bounds()) {
		return nil
	}
	return win.WImg.Resize(r)
}

func (win *Window) QueryPointer() (image.Point, error) {
	cookie := xproto.QueryPointer(win.Conn, win.Window)
	r, err := cookie.Reply()
	if err != nil {
		return image.Point{}, errors.Wrap(err, "query pointer")
	}
	return image.Point{int(r.WinX), int(r.WinY)}, nil
}

func (win *Window) SetCursor(c event.Cursor) {
	if err := win.Cursors.SetEventCursor(c); err != nil {
		log.Print(err)
	}
}

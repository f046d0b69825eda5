package wimage

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollview/util/imageutil"
)

// Copies the image to the window with plain put image requests.
type PixmapWImage struct {
	opt        *Options
	pixId      xproto.Pixmap
	pixCreated bool
	img        *imageutil.BGRA
}

func NewPixmapWImage(opt *Options) (*PixmapWImage, error) {
	wi := &PixmapWImage{opt: opt}
	pixId, err := xproto.NewPixmapId(opt.Conn)
	if err != nil {
		return nil, err
	}
	wi.pixId = pixId

	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *PixmapWImage) Close() error {
	if wi.pixCreated {
		return xproto.FreePixmapChecked(wi.opt.Conn, wi.pixId).Check()
	}
	return nil
}

func (wi *PixmapWImage) Resize(r image.Rectangle) error {
	if wi.pixCreated {
		if err := xproto.FreePixmapChecked(wi.opt.Conn, wi.pixId).Check(); err != nil {
			return err
		}
		wi.pixCreated = false
	}
	err := xproto.CreatePixmapChecked(
		wi.opt.Conn,
		wi.opt.ScreenInfo.RootDepth,
		wi.pixId,
		xproto.Drawable(wi.opt.Window),
		uint16(r.Dx()),
		uint16(r.Dy())).Check()
	if err != nil {
		return err
	}
	wi.pixCreated = true
	wi.img = imageutil.NewBGRA(&r)
	return nil
}

func (wi *PixmapWImage) Image() draw.Image {
	return wi.img
}

func (wi *PixmapWImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}
	rows, err := putImageRows(r.Dx())
	if err != nil {
		return err
	}
	for minY := r.Min.Y; minY < r.Max.Y; minY += rows {
		h := rows
		if minY+h > r.Max.Y {
			h = r.Max.Y - minY
		}
		data := make([]byte, r.Dx()*h*4)
		for y := 0; y < h; y++ {
			i := y * r.Dx() * 4
			j := wi.img.PixOffset(r.Min.X, minY+y)
			copy(data[i:i+r.Dx()*4], wi.img.Pix[j:])
		}
		// unchecked, errors arrive in the event loop
		_ = xproto.PutImage(
			wi.opt.Conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(wi.opt.Window),
			wi.opt.GCtx,
			uint16(r.Dx()), uint16(h),
			int16(r.Min.X), int16(minY),
			0, // left pad, must be 0 for ZPixmap
			wi.opt.ScreenInfo.RootDepth,
			data)
	}
	return nil
}

func (wi *PixmapWImage) PutImageCompleted() {
	panic("pixmapwimage: not expecting async put image completed")
}

//----------

// Number of rows of the given width that fit in one request.
// X max request length is (2^16)*4 bytes.
func putImageRows(width int) (int, error) {
	const headerSize = 28
	maxSize := ((1<<16)*4 - headerSize) / 4 // pixels
	if width <= 0 || width > maxSize {
		return 0, fmt.Errorf("pixmapwimage: bad width: %v (max %v)", width, maxSize)
	}
	return maxSize / width, nil
}

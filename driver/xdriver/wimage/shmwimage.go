package wimage

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/syncutil"
	"github.com/pkg/errors"
)

type ShmWImage struct {
	opt          *Options
	segId        shm.Seg
	seg          *shmSegment
	img          *imageutil.BGRA
	putCompleted *syncutil.WaitForSet
}

func NewShmWImage(opt *Options) (*ShmWImage, error) {
	if initErr != nil {
		return nil, initErr
	}

	wi := &ShmWImage{opt: opt}
	wi.putCompleted = syncutil.NewWaitForSet()

	segId, err := shm.NewSegId(wi.opt.Conn)
	if err != nil {
		return nil, err
	}
	wi.segId = segId

	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *ShmWImage) Close() error {
	return wi.seg.close()
}

func (wi *ShmWImage) Resize(r image.Rectangle) error {
	seg, err := shmOpen(imageutil.BGRASize(&r))
	if err != nil {
		return err
	}
	old := wi.seg
	wi.seg = seg
	wi.img = imageutil.NewBGRAFromBuffer(seg.buf, &r)

	if old != nil {
		// detach to attach the new segment
		_ = shm.Detach(wi.opt.Conn, wi.segId)
		if err := old.close(); err != nil {
			return err
		}
	}

	readOnly := false
	cookie := shm.AttachChecked(wi.opt.Conn, wi.segId, uint32(seg.id), readOnly)
	if err := cookie.Check(); err != nil {
		return errors.Wrap(err, "shm attach")
	}
	return nil
}

func (wi *ShmWImage) Image() draw.Image {
	return wi.img
}

func (wi *ShmWImage) PutImage(r image.Rectangle) error {
	wi.putCompleted.Start(500 * time.Millisecond)
	if err := wi.putImage2(r); err != nil {
		wi.putCompleted.Cancel()
		return err
	}
	// wait for shm.CompletionEvent (PutImageCompleted), returns early on timeout
	if _, err := wi.putCompleted.WaitForSet(); err != nil {
		return errors.Wrap(err, "shm put completed")
	}
	return nil
}

func (wi *ShmWImage) putImage2(r image.Rectangle) error {
	b := wi.img.Bounds()
	c1 := shm.PutImageChecked(
		wi.opt.Conn,
		xproto.Drawable(wi.opt.Window),
		wi.opt.GCtx,
		uint16(b.Dx()), uint16(b.Dy()), // total width/height
		uint16(r.Min.X), uint16(r.Min.Y), uint16(r.Dx()), uint16(r.Dy()), // src x,y,w,h
		int16(r.Min.X), int16(r.Min.Y), // dst x,y
		wi.opt.ScreenInfo.RootDepth,
		xproto.ImageFormatZPixmap,
		1, // send shm.CompletionEvent when done
		wi.segId,
		0) // offset
	return c1.Check()
}

func (wi *ShmWImage) PutImageCompleted() {
	if err := wi.putCompleted.Set(nil); err != nil {
		log.Println(fmt.Errorf("shm put completed: %w", err))
	}
}

//----------

var initErr error

// Called once with the connection before any concurrent use (xgb extension map is not synced).
func Init(conn *xgb.Conn) {
	initErr = shm.Init(conn)
}

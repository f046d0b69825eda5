package widget

import (
	"image"
	"image/draw"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

type ImageContext interface {
	Image() draw.Image
}
type CursorContext interface {
	SetCursor(event.Cursor)
}

//----------

// Image context restricted to a clip rectangle that can change over time.
type ClipContext struct {
	ctx  ImageContext
	clip *image.Rectangle
}

func NewClipContext(ctx ImageContext, clip *image.Rectangle) *ClipContext {
	return &ClipContext{ctx: ctx, clip: clip}
}

func (cc *ClipContext) Image() draw.Image {
	return imageutil.SubImage(cc.ctx.Image(), *cc.clip)
}

package app

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/jmigpin/scrollview/driver"
	"github.com/jmigpin/scrollview/util/fontutil"
	"github.com/jmigpin/scrollview/util/uiutil"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
)

// File viewer: a text view inside a scroll container.
type App struct {
	SC *widget.ScrollContainer
	TV *TextView

	filename string
}

func NewApp(ctx widget.ImageContext, cfg *Config) (*App, error) {
	pal, err := cfg.ThemePalette()
	if err != nil {
		return nil, err
	}
	app := &App{}
	app.SC = widget.NewScrollContainer(ctx, cfg.ScrollConfig())
	app.SC.SetThemePalette(pal)

	face := fontutil.DefaultFace(cfg.Font.Size)
	app.TV = NewTextView(app.SC.ContentContext(), face)
	app.SC.Append(app.TV)
	return app, nil
}

func (app *App) LoadFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to load: %w", err)
	}
	app.filename = filename
	app.TV.SetText(b)
	app.SC.SetContentSize(app.TV.Size())
	return nil
}

func (app *App) Reload() error {
	return app.LoadFile(app.filename)
}

// Vertical scroll position in [0,100].
func (app *App) ScrollPercent() int {
	lim := app.SC.VBar.ValueLimit()
	if lim == 0 {
		return 0
	}
	return app.SC.ScrollY() * 100 / lim
}

func (app *App) title() string {
	return fmt.Sprintf("%s - %d%%", filepath.Base(app.filename), app.ScrollPercent())
}

//----------

// Opens a window and runs until it is closed.
func Run(cfg *Config, filename string, size image.Point) error {
	opt := &driver.Options{Size: size, WheelStep: cfg.Scroll.WheelStep}
	win, err := driver.NewWindow(opt)
	if err != nil {
		return err
	}
	ui := uiutil.NewBasicUI(win)
	defer ui.Close()

	app, err := NewApp(ui, cfg)
	if err != nil {
		return err
	}
	if err := app.LoadFile(filename); err != nil {
		return err
	}
	ui.SetRootNode(app.SC)
	win.SetWindowName(app.title())

	app.SC.EvReg.Add(widget.ScrollContainerScrollEventId, func(ev interface{}) {
		win.SetWindowName(app.title())
	})

	fw, err := NewFileWatcher(filename, func() {
		ui.RunOnUIThread(func() {
			if err := app.Reload(); err != nil {
				log.Println(err)
			}
		})
	})
	if err != nil {
		log.Printf("not watching file: %v", err)
	} else {
		defer fw.Close()
	}

	ui.EventLoop()
	return nil
}

//----------

// Paints the viewer offscreen and saves it as a png.
func Snapshot(cfg *Config, filename string, size image.Point, out string) error {
	ctx := &imageContext{img: image.NewRGBA(image.Rectangle{Max: size})}
	app, err := NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	if err := app.LoadFile(filename); err != nil {
		return err
	}
	app.SC.SetBounds(ctx.img.Bounds())
	app.SC.LayoutTree()
	app.SC.PaintTree()

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, ctx.img); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}

type imageContext struct {
	img draw.Image
}

func (ctx *imageContext) Image() draw.Image {
	return ctx.img
}

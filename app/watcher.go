package app

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Calls onChange when the file is written or replaced. The directory is watched so that editors saving through a rename are noticed.
type FileWatcher struct {
	w        *fsnotify.Watcher
	name     string
	onChange func()
	done     chan struct{}
}

func NewFileWatcher(name string, onChange func()) (*FileWatcher, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w0.Add(filepath.Dir(abs)); err != nil {
		_ = w0.Close()
		return nil, err
	}
	fw := &FileWatcher{
		w:        w0,
		name:     abs,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go fw.eventLoop()
	return fw, nil
}

func (fw *FileWatcher) Close() error {
	err := fw.w.Close()
	<-fw.done
	return err
}

func (fw *FileWatcher) eventLoop() {
	defer close(fw.done)
	for {
		select {
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			log.Printf("filewatcher: %v", err)
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) > 0 {
				fw.onChange()
			}
		}
	}
}

package syncutil

import (
	"fmt"
	"sync"
	"time"
)

// Reusable: each Start() allows one WaitForSet() that returns the value given to Set(), or a timeout error.
//
//	w := NewWaitForSet()
//	w.Start(5 * time.Second)
//	// sync/async call to w.Set(v)
//	v, err := w.WaitForSet()
type WaitForSet struct {
	mu   sync.Mutex
	cond *sync.Cond // signals from set() or timeout

	timer    *time.Timer
	timedOut bool
	waiting  bool

	gotV bool
	v    interface{}
}

func NewWaitForSet() *WaitForSet {
	w := &WaitForSet{}
	w.cond = sync.NewCond(&w.mu)
	return w
}

//----------

func (w *WaitForSet) Start(timeout time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		panic("waitforset: already started")
	}
	w.timedOut = false
	var timer *time.Timer
	timer = time.AfterFunc(timeout, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.timer == timer {
			w.timedOut = true
			w.cond.Signal()
		}
	})
	w.timer = timer
}

func (w *WaitForSet) WaitForSet() (interface{}, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer == nil {
		panic("waitforset: not started")
	}
	if w.waiting {
		panic("waitforset: already waiting")
	}
	w.waiting = true
	defer func() { w.waiting = false }()
	defer w.clearTimer()

	for !w.gotV && !w.timedOut {
		w.cond.Wait()
	}
	if w.gotV {
		v := w.v
		w.gotV, w.v = false, nil
		return v, nil
	}
	return nil, fmt.Errorf("waitforset: timeout")
}

// In case WaitForSet() is not going to be called.
func (w *WaitForSet) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clearTimer()
	w.gotV, w.v = false, nil
}

func (w *WaitForSet) clearTimer() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

//----------

// Fails if not started.
func (w *WaitForSet) Set(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer == nil {
		return fmt.Errorf("waitforset: not waiting for set")
	}
	w.gotV = true
	w.v = v
	w.cond.Signal()
	return nil
}

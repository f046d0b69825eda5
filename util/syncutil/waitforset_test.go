package syncutil

import (
	"testing"
	"time"
)

func TestWaitForSet(t *testing.T) {
	w := NewWaitForSet()
	for i := 0; i < 10; i++ {
		w.Start(time.Second)
		go func(i int) {
			if err := w.Set(i); err != nil {
				t.Error(err)
			}
		}(i)
		v, err := w.WaitForSet()
		if err != nil {
			t.Fatal(err)
		}
		if v.(int) != i {
			t.Fatal(v)
		}
	}
}

func TestWaitForSetTimeout(t *testing.T) {
	w := NewWaitForSet()
	w.Start(20 * time.Millisecond)
	if _, err := w.WaitForSet(); err == nil {
		t.Fatal("expecting timeout")
	}
	// not waiting anymore
	if err := w.Set(1); err == nil {
		t.Fatal("expecting error")
	}
}

func TestWaitForSetCancel(t *testing.T) {
	w := NewWaitForSet()
	w.Start(time.Second)
	w.Cancel()
	if err := w.Set(1); err == nil {
		t.Fatal("expecting error")
	}
}

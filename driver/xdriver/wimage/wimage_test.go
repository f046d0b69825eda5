package wimage

import "testing"

func TestPutImageRows(t *testing.T) {
	n, err := putImageRows(500)
	if err != nil {
		t.Fatal(err)
	}
	if n*500*4 > (1<<16)*4 {
		t.Fatal(n)
	}
	if _, err := putImageRows(0); err == nil {
		t.Fatal("expecting error")
	}
	if _, err := putImageRows(1 << 20); err == nil {
		t.Fatal("expecting error")
	}
}

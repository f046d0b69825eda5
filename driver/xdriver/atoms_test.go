package xdriver

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestIsDeleteWindow(t *testing.T) {
	a := &atoms{wmProtocols: 10, wmDeleteWin: 20}
	ev := &xproto.ClientMessageEvent{
		Format: 32,
		Type:   10,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{20, 0, 0, 0, 0}),
	}
	if !a.isDeleteWindow(ev) {
		t.Fatal("expecting delete window")
	}
	ev.Format = 8
	if a.isDeleteWindow(ev) {
		t.Fatal("bad format")
	}
	ev.Format = 32
	ev.Type = 11
	if a.isDeleteWindow(ev) {
		t.Fatal("bad type")
	}
	ev.Type = 10
	ev.Data = xproto.ClientMessageDataUnionData32New([]uint32{21, 0, 0, 0, 0})
	if a.isDeleteWindow(ev) {
		t.Fatal("other protocol")
	}
}

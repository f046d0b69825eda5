package xdriver

import (
	"encoding/binary"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

type atoms struct {
	wmProtocols xproto.Atom
	wmDeleteWin xproto.Atom
	netWMName   xproto.Atom
	utf8String  xproto.Atom
}

func loadAtoms(conn *xgb.Conn) (*atoms, error) {
	a := &atoms{}
	ptrs := []*xproto.Atom{&a.wmProtocols, &a.wmDeleteWin, &a.netWMName, &a.utf8String}
	names := []string{"WM_PROTOCOLS", "WM_DELETE_WINDOW", "_NET_WM_NAME", "UTF8_STRING"}

	// send all requests before waiting on replies
	cookies := make([]xproto.InternAtomCookie, len(names))
	for i, name := range names {
		cookies[i] = xproto.InternAtom(conn, false, uint16(len(name)), name)
	}
	for i, c := range cookies {
		reply, err := c.Reply()
		if err != nil {
			return nil, errors.Wrapf(err, "atom %v", names[i])
		}
		*ptrs[i] = reply.Atom
	}
	return a, nil
}

//----------

// Asks the window manager to send a client message instead of killing the connection.
// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1
func (a *atoms) setupDeleteWindow(conn *xgb.Conn, win xproto.Window) error {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(a.wmDeleteWin))
	c := xproto.ChangePropertyChecked(conn, xproto.PropModeAppend, win,
		a.wmProtocols, xproto.AtomAtom, 32, 1, data)
	return c.Check()
}

func (a *atoms) isDeleteWindow(ev *xproto.ClientMessageEvent) bool {
	if ev.Type != a.wmProtocols || ev.Format != 32 {
		return false
	}
	for _, u := range ev.Data.Data32 {
		if xproto.Atom(u) == a.wmDeleteWin {
			return true
		}
	}
	return false
}

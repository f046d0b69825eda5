package xcursors

import (
	"testing"

	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

func TestEventCursor(t *testing.T) {
	if EventCursor(event.NoneCursor) != XCNone || EventCursor(event.DefaultCursor) != XCNone {
		t.Fatal("expecting parent cursor")
	}
	if EventCursor(event.PointerCursor) != xcursor.Hand2 {
		t.Fatal(EventCursor(event.PointerCursor))
	}
}

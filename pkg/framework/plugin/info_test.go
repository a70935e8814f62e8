package plugin

import (
	"testing"
)

func TestUIDStable(t *testing.T) {
	info := Info{ID: "com.volki9000.monitorsend"}

	a := info.UID()
	b := info.UID()
	if a != b {
		t.Error("UID not stable across calls")
	}

	var zero [16]byte
	if a == zero {
		t.Error("UID should not be all zero")
	}
}

func TestUIDDistinctPerID(t *testing.T) {
	a := Info{ID: "com.volki9000.monitorsend"}.UID()
	b := Info{ID: "com.volki9000.other"}.UID()
	if a == b {
		t.Error("different IDs produced the same UID")
	}
}

package state

import (
	"bytes"
	"math"
	"testing"

	"github.com/volki9000/monitorsend/pkg/framework/param"
)

func testRegistry() *param.Registry {
	r := param.NewRegistry()
	r.Add(
		param.SkewedGain(0, "FOH", -144, 12, -24, 12).Build(),
		param.SkewedGain(1, "Axel", -144, 12, -24, 12).Build(),
	)
	return r
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src := testRegistry()
	src.Get(0).SetValue(0.25)
	src.Get(1).SetValue(0.75)

	var buf bytes.Buffer
	if err := NewManager(src).Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := testRegistry()
	if err := NewManager(dst).Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := dst.Get(0).GetValue(); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("param 0 = %f, want 0.25", got)
	}
	if got := dst.Get(1).GetValue(); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("param 1 = %f, want 0.75", got)
	}
}

func TestLoadUnknownParameterIgnored(t *testing.T) {
	src := param.NewRegistry()
	src.Add(
		param.SkewedGain(0, "FOH", -144, 12, -24, 12).Build(),
		param.SkewedGain(99, "Ghost", -144, 12, -24, 12).Build(),
	)
	src.Get(99).SetValue(0.9)

	var buf bytes.Buffer
	if err := NewManager(src).Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := testRegistry()
	if err := NewManager(dst).Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadRejectsBadHeader(t *testing.T) {
	dst := testRegistry()
	err := NewManager(dst).Load(bytes.NewReader([]byte("NOTMONSND-DATA")))
	if err == nil {
		t.Error("expected error for bad magic header")
	}
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	src := testRegistry()
	m := NewManager(src)
	m.version = 2

	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := NewManager(testRegistry()).Load(&buf); err == nil {
		t.Error("expected error for newer state version")
	}
}

func TestLoadTruncatedState(t *testing.T) {
	src := testRegistry()
	var buf bytes.Buffer
	if err := NewManager(src).Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	truncated := buf.Bytes()[:buf.Len()-4]
	if err := NewManager(testRegistry()).Load(bytes.NewReader(truncated)); err == nil {
		t.Error("expected error for truncated state")
	}
}

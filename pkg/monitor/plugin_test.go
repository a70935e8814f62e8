package monitor

import (
	"bytes"
	"math"
	"testing"
)

func TestPluginInfo(t *testing.T) {
	info := Plugin{}.Info()

	if info.ID != "com.volki9000.monitorsend" {
		t.Errorf("ID = %q", info.ID)
	}
	if info.Name != "Monitoring Sender" {
		t.Errorf("Name = %q", info.Name)
	}

	var zero [16]byte
	if info.UID() == zero {
		t.Error("UID must not be zero")
	}
}

func TestCreateProcessor(t *testing.T) {
	proc := Plugin{}.CreateProcessor()

	if got := proc.Parameters().Count(); got != int32(NumSends) {
		t.Errorf("parameter count = %d, want %d", got, NumSends)
	}
	if got := proc.Buses().AuxOutputs(); len(got) != int(NumSends) {
		t.Errorf("aux output count = %d, want %d", len(got), NumSends)
	}
	if got := proc.LatencySamples(); got != 0 {
		t.Errorf("latency = %d, want 0", got)
	}
	if got := proc.TailSamples(); got != 0 {
		t.Errorf("tail = %d, want 0", got)
	}
	if err := proc.SetActive(true); err != nil {
		t.Errorf("SetActive: %v", err)
	}
	proc.Reset() // must not panic; there is nothing to clear
}

func TestStateRoundTripThroughHostMechanism(t *testing.T) {
	src := NewEngine()
	src.Params().SetGainDB(SendAxel, 6)
	src.Params().SetGainDB(SendVolki, -24)

	var buf bytes.Buffer
	if err := NewStateManager(src).Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := NewEngine()
	if err := NewStateManager(dst).Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := dst.Params().Amplitude(SendAxel); math.Abs(got-1.9952623) > 1e-4 {
		t.Errorf("Axel amplitude = %g", got)
	}
	if got := dst.Params().Amplitude(SendVolki); math.Abs(got-0.063095734) > 1e-4 {
		t.Errorf("Volki amplitude = %g", got)
	}
	if got := dst.Params().Amplitude(SendFOH); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("FOH amplitude = %g, want untouched unity", got)
	}
}

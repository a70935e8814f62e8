package monitor

import (
	"errors"
	"math"
	"testing"

	"github.com/volki9000/monitorsend/pkg/framework/param"
)

func TestSendNamesAndKeys(t *testing.T) {
	want := []string{"FOH", "Axel", "Sebi", "Volki"}

	if NumSends != 4 {
		t.Fatalf("NumSends = %d, want 4", NumSends)
	}

	p := NewParams()
	for s := Send(0); s < NumSends; s++ {
		if s.String() != want[s] {
			t.Errorf("Send(%d).String() = %q, want %q", s, s.String(), want[s])
		}
		prm := p.Gain(s)
		if prm == nil {
			t.Fatalf("Gain(%v) is nil", s)
		}
		if prm.Name != want[s] {
			t.Errorf("parameter name = %q, want %q", prm.Name, want[s])
		}
		if prm.ID != uint32(s) {
			t.Errorf("parameter ID = %d, want %d", prm.ID, s)
		}
	}

	if Send(-1).String() != "invalid" || Send(NumSends).String() != "invalid" {
		t.Error("out-of-range sends should stringify as invalid")
	}
}

func TestDefaultsAreUnityGain(t *testing.T) {
	p := NewParams()

	for s := Send(0); s < NumSends; s++ {
		if got := p.Amplitude(s); math.Abs(got-1.0) > 1e-9 {
			t.Errorf("%v default amplitude = %g, want 1.0", s, got)
		}
		if got := p.Gain(s).Display(); got != "0.00 dB" {
			t.Errorf("%v default display = %q, want \"0.00 dB\"", s, got)
		}
	}
}

func TestAmplitudeMonotonic(t *testing.T) {
	p := NewParams()
	prm := p.Gain(SendFOH)

	prev := math.Inf(-1)
	for i := 0; i <= 200; i++ {
		prm.SetValue(float64(i) / 200)
		cur := p.Amplitude(SendFOH)
		if cur < prev {
			t.Fatalf("amplitude not monotonic at n=%f: %g < %g", float64(i)/200, cur, prev)
		}
		prev = cur
	}
}

func TestSetGainDBClamps(t *testing.T) {
	p := NewParams()

	p.SetGainDB(SendAxel, 6.0)
	if got := p.Amplitude(SendAxel); math.Abs(got-1.9952623) > 1e-4 {
		t.Errorf("amplitude after 6 dB = %g", got)
	}

	// Above the +12 dB ceiling clamps to the ceiling.
	p.SetGainDB(SendAxel, 40.0)
	if got := p.Amplitude(SendAxel); math.Abs(got-3.9810717) > 1e-4 {
		t.Errorf("amplitude after 40 dB = %g, want ceiling", got)
	}

	// Below the floor clamps to the floor.
	p.SetGainDB(SendAxel, -300.0)
	if got := p.Amplitude(SendAxel); got > 1e-7 {
		t.Errorf("amplitude after -300 dB = %g, want ~0", got)
	}
}

func TestTextEntryRejectsGarbage(t *testing.T) {
	p := NewParams()
	prm := p.Gain(SendSebi)
	prm.SetPlainValue(0.5)
	before := prm.GetValue()

	err := prm.SetFromString("not a level")
	if !errors.Is(err, param.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if prm.GetValue() != before {
		t.Error("rejected input must leave the value unchanged")
	}
}

func TestSnapshot(t *testing.T) {
	p := NewParams()
	p.SetGainDB(SendFOH, 0)
	p.SetGainDB(SendAxel, 6)
	p.SetGainDB(SendSebi, -144)
	p.SetGainDB(SendVolki, -24)

	var got [NumSends]float32
	p.Snapshot(&got)

	want := [NumSends]float64{1.0, 1.9952623, 6.3095734e-8, 0.063095734}
	for i := range want {
		if math.Abs(float64(got[i])-want[i]) > 1e-4 {
			t.Errorf("snapshot[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

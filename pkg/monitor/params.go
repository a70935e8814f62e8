// Package monitor implements a monitoring send stage: one stereo input
// distributed to the main output unchanged and to four auxiliary stereo
// sends, each with its own gain.
package monitor

import (
	"github.com/volki9000/monitorsend/pkg/dsp/gain"
	"github.com/volki9000/monitorsend/pkg/framework/param"
)

// Send identifies one auxiliary monitor destination.
type Send int

// The four send destinations, in bus order.
const (
	SendFOH Send = iota
	SendAxel
	SendSebi
	SendVolki
	NumSends
)

var sendNames = [NumSends]string{"FOH", "Axel", "Sebi", "Volki"}

// String returns the send's display name, which doubles as its stable
// parameter key and aux bus name.
func (s Send) String() string {
	if s < 0 || s >= NumSends {
		return "invalid"
	}
	return sendNames[s]
}

// SendNames returns the send display names in bus order.
func SendNames() []string {
	return sendNames[:]
}

// Gain range shared by every send control. The skew anchor span puts its
// midpoint (-6 dB) at the control's half position, so most of the travel
// covers the musically useful region around unity instead of the floor.
const (
	MinGainDB   = -144.0
	MaxGainDB   = 12.0
	AnchorMinDB = -24.0
	AnchorMaxDB = 12.0
)

// Params owns the four send gain controls. Audio-thread reads go through
// Snapshot; writes come only from the host's automation/UI layer via the
// registry.
type Params struct {
	registry *param.Registry
	sends    [NumSends]*param.Parameter
}

// NewParams creates the send controls at their default of unity gain.
func NewParams() *Params {
	p := &Params{registry: param.NewRegistry()}

	for s := Send(0); s < NumSends; s++ {
		prm := param.SkewedGain(uint32(s), s.String(),
			MinGainDB, MaxGainDB, AnchorMinDB, AnchorMaxDB).Build()
		p.sends[s] = prm
		p.registry.Add(prm)
	}

	return p
}

// Registry returns the underlying parameter registry.
func (p *Params) Registry() *param.Registry {
	return p.registry
}

// Gain returns the control for one send.
func (p *Params) Gain(s Send) *param.Parameter {
	return p.sends[s]
}

// Amplitude returns the current linear amplitude of one send.
func (p *Params) Amplitude(s Send) float64 {
	return p.sends[s].GetPlainValue()
}

// SetGainDB sets a send's level from a decibel value, clamped to the
// control's range.
func (p *Params) SetGainDB(s Send, db float64) {
	p.sends[s].SetPlainValue(gain.DbToLinear(db))
}

// Snapshot reads all four amplitudes into dst. The engine calls this once
// at the start of each block so every sample within the block sees a
// consistent gain.
func (p *Params) Snapshot(dst *[NumSends]float32) {
	for i, prm := range p.sends {
		dst[i] = float32(prm.GetPlainValue())
	}
}

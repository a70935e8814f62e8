package monitor

import (
	"github.com/volki9000/monitorsend/pkg/dsp/gain"
	"github.com/volki9000/monitorsend/pkg/framework/bus"
	"github.com/volki9000/monitorsend/pkg/framework/param"
	"github.com/volki9000/monitorsend/pkg/framework/process"
)

// Engine distributes each input block to the main output unchanged and to
// the four send buses scaled by their current gains. It holds no audio
// state of its own: the only mutable inputs are the send gains (read once
// per block) and the processing setup (replaced on renegotiation).
type Engine struct {
	params *Params
	buses  *bus.Configuration
	setup  process.Setup
}

// NewEngine creates an engine with default parameters and the fixed
// monitor-send bus layout.
func NewEngine() *Engine {
	return &Engine{
		params: NewParams(),
		buses:  bus.NewMonitorSend(SendNames()...),
		setup:  process.DefaultSetup(),
	}
}

// Initialize stores the host-negotiated setup. The configuration is always
// accepted.
func (e *Engine) Initialize(setup process.Setup) error {
	e.setup = setup
	return nil
}

// Setup returns the current processing configuration.
func (e *Engine) Setup() process.Setup {
	return e.setup
}

// Reset is a no-op: there is no per-voice or filter state to clear.
func (e *Engine) Reset() {}

// SetActive is called when processing starts or stops; nothing to do.
func (e *Engine) SetActive(active bool) error { return nil }

// Params returns the send gain controls.
func (e *Engine) Params() *Params {
	return e.params
}

// Parameters returns the parameter registry.
func (e *Engine) Parameters() *param.Registry {
	return e.params.Registry()
}

// Buses returns the declared bus layout.
func (e *Engine) Buses() *bus.Configuration {
	return e.buses
}

// LatencySamples returns 0; the engine is a plain multiply.
func (e *Engine) LatencySamples() int32 { return 0 }

// TailSamples returns 0.
func (e *Engine) TailSamples() int32 { return 0 }

// ProcessAudio runs one block: pass the input through to the main output
// and write input scaled by the block-start gain snapshot to every send.
// In offline mode (bounce/export) the engine does no work.
func (e *Engine) ProcessAudio(ctx *process.Context) process.Status {
	if e.setup.Mode == process.ModeOffline {
		return process.StatusNormal
	}

	var gains [NumSends]float32
	e.params.Snapshot(&gains)

	ctx.PassThrough()

	numSends := int(NumSends)
	if ctx.NumAuxOutputs() < numSends {
		numSends = ctx.NumAuxOutputs()
	}

	for d := 0; d < numSends; d++ {
		out := ctx.AuxOutput(d)

		numChannels := ctx.NumInputChannels()
		if len(out) < numChannels {
			numChannels = len(out)
		}

		for ch := 0; ch < numChannels; ch++ {
			gain.ApplyBufferTo(ctx.Input[ch], gains[d], out[ch])
		}
	}

	return process.StatusNormal
}

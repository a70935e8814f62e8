package plugin

import (
	"github.com/volki9000/monitorsend/pkg/framework/bus"
	"github.com/volki9000/monitorsend/pkg/framework/param"
	"github.com/volki9000/monitorsend/pkg/framework/process"
)

// Processor is the contract the host integration layer drives once per
// audio block on the real-time thread.
type Processor interface {
	// Initialize stores the negotiated processing setup. It is called
	// again with a fresh Setup whenever the host renegotiates; returning
	// nil accepts the configuration.
	Initialize(setup process.Setup) error

	// Reset clears any per-transport state. Stateless processors no-op.
	Reset()

	// ProcessAudio processes one block. No allocation, locking or
	// blocking is allowed here.
	ProcessAudio(ctx *process.Context) process.Status

	// Parameters returns the parameter registry.
	Parameters() *param.Registry

	// Buses returns the declared bus layout.
	Buses() *bus.Configuration

	// SetActive is called when processing starts or stops.
	SetActive(active bool) error

	// LatencySamples returns the processing latency in samples.
	LatencySamples() int32

	// TailSamples returns the tail length in samples.
	TailSamples() int32
}

// Plugin couples identity metadata with a processor factory.
type Plugin interface {
	Info() Info
	CreateProcessor() Processor
}

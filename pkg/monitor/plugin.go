package monitor

import (
	"github.com/volki9000/monitorsend/pkg/framework/plugin"
	"github.com/volki9000/monitorsend/pkg/framework/state"
)

// Plugin describes the monitoring sender to a host integration layer.
type Plugin struct{}

// Info returns the plugin identity.
func (Plugin) Info() plugin.Info {
	return plugin.Info{
		ID:       "com.volki9000.monitorsend",
		Name:     "Monitoring Sender",
		Version:  "1.0.0",
		Vendor:   "volki9000",
		Category: "Fx|Tools",
		URL:      "https://github.com/volki9000/monitorsend",
		Email:    "https://github.com/volki9000",
	}
}

// CreateProcessor creates a fresh engine instance.
func (Plugin) CreateProcessor() plugin.Processor {
	return NewEngine()
}

// NewStateManager returns the generic parameter snapshot codec for an
// engine, used by the host's save/restore calls.
func NewStateManager(e *Engine) *state.Manager {
	return state.NewManager(e.Parameters())
}

var _ plugin.Plugin = Plugin{}
var _ plugin.Processor = (*Engine)(nil)

package process

// Mode describes how the host is driving the processor.
type Mode int32

const (
	// ModeRealtime is the normal live processing mode.
	ModeRealtime Mode = iota
	// ModeOffline is used for non-real-time rendering (export/bounce).
	ModeOffline
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeRealtime:
		return "realtime"
	case ModeOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Status is the result of one processing block.
type Status int32

const (
	// StatusNormal reports a completed block, including designed no-ops.
	StatusNormal Status = iota
)

// Setup carries the host-negotiated processing configuration: sample rate,
// block size bounds and the processing mode. The host hands over a new
// Setup whenever the configuration is renegotiated; processors replace
// their copy wholesale and never mutate individual fields.
type Setup struct {
	SampleRate   float64
	MinBlockSize int32
	MaxBlockSize int32
	Mode         Mode
}

// DefaultSetup returns the configuration assumed before the host calls
// Initialize.
func DefaultSetup() Setup {
	return Setup{
		SampleRate:   44100,
		MinBlockSize: 0,
		MaxBlockSize: 1024,
		Mode:         ModeRealtime,
	}
}

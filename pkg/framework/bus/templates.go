package bus

// NewMonitorSend builds the fixed layout of a monitoring send stage: one
// main stereo input, one main stereo output carrying the unmodified input,
// and one auxiliary stereo output per named send destination. No auxiliary
// inputs.
func NewMonitorSend(sendNames ...string) *Configuration {
	b := NewBuilder().
		WithStereoInput("Stereo In").
		WithStereoOutput("Same As Input")

	for _, name := range sendNames {
		b.WithStereoAuxOutput(name)
	}

	return b.MustBuild()
}

// Package process provides the audio processing context and the
// host-negotiated processing configuration.
package process

// Context carries the audio buffers for one processing block. Buffers are
// channel-major ([channel][sample]) and owned by the host; processors only
// write into them and never allocate frames of their own.
type Context struct {
	// Input is the main input bus.
	Input [][]float32
	// Output is the main output bus. The host may hand over the input
	// slices here for in-place processing.
	Output [][]float32
	// Aux holds the auxiliary output buses, one [][]float32 per bus.
	Aux [][][]float32

	SampleRate float64
}

// NumSamples returns the number of samples in the current block.
func (c *Context) NumSamples() int {
	if len(c.Input) > 0 && len(c.Input[0]) > 0 {
		return len(c.Input[0])
	}
	if len(c.Output) > 0 && len(c.Output[0]) > 0 {
		return len(c.Output[0])
	}
	return 0
}

// NumInputChannels returns the number of main input channels.
func (c *Context) NumInputChannels() int {
	return len(c.Input)
}

// NumOutputChannels returns the number of main output channels.
func (c *Context) NumOutputChannels() int {
	return len(c.Output)
}

// NumAuxOutputs returns the number of auxiliary output buses.
func (c *Context) NumAuxOutputs() int {
	return len(c.Aux)
}

// AuxOutput returns the channel buffers of one auxiliary output bus, or
// nil for an out-of-range index.
func (c *Context) AuxOutput(index int) [][]float32 {
	if index < 0 || index >= len(c.Aux) {
		return nil
	}
	return c.Aux[index]
}

// PassThrough copies the main input to the main output. Channel counts and
// buffer lengths are clamped to the shorter side; copying onto the same
// slice is harmless, so in-place hosts cost nothing here.
func (c *Context) PassThrough() {
	numChannels := c.NumInputChannels()
	if c.NumOutputChannels() < numChannels {
		numChannels = c.NumOutputChannels()
	}

	for ch := 0; ch < numChannels; ch++ {
		copy(c.Output[ch], c.Input[ch])
	}
}

// ClearAux zeroes every auxiliary output buffer.
func (c *Context) ClearAux() {
	for _, bus := range c.Aux {
		for ch := range bus {
			for i := range bus[ch] {
				bus[ch][i] = 0
			}
		}
	}
}

// ProcessChannels runs fn once per main channel pair, clamped to the
// smaller of the input and output channel counts.
func (c *Context) ProcessChannels(fn func(ch int, input, output []float32)) {
	numChannels := c.NumInputChannels()
	if c.NumOutputChannels() < numChannels {
		numChannels = c.NumOutputChannels()
	}

	for ch := 0; ch < numChannels; ch++ {
		fn(ch, c.Input[ch], c.Output[ch])
	}
}

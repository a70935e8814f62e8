package param

// Builder provides a fluent API for creating parameters
type Builder struct {
	param *Parameter
}

// New creates a new parameter builder
func New(id uint32, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:        id,
			Name:      name,
			ShortName: name,
			rng:       LinearRange{Min: 0, Max: 1},
			Flags:     CanAutomate,
		},
	}
}

// ShortName sets the short name
func (b *Builder) ShortName(name string) *Builder {
	b.param.ShortName = name
	return b
}

// Range sets a linear plain-value range
func (b *Builder) Range(min, max float64) *Builder {
	b.param.rng = LinearRange{Min: min, Max: max}
	return b
}

// WithRange sets an arbitrary normalized-to-plain mapping
func (b *Builder) WithRange(r Range) *Builder {
	b.param.rng = r
	return b
}

// Default sets the default value (in plain range, not normalized)
func (b *Builder) Default(value float64) *Builder {
	b.param.DefaultValue = b.param.rng.Unmap(value)
	return b
}

// Unit sets the unit string
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Steps sets the number of discrete steps
func (b *Builder) Steps(count int32) *Builder {
	b.param.StepCount = count
	return b
}

// Flags sets parameter flags
func (b *Builder) Flags(flags uint32) *Builder {
	b.param.Flags = flags
	return b
}

// ReadOnly marks the parameter as read-only
func (b *Builder) ReadOnly() *Builder {
	b.param.Flags |= IsReadOnly
	b.param.Flags &^= CanAutomate
	return b
}

// Hidden marks the parameter as hidden
func (b *Builder) Hidden() *Builder {
	b.param.Flags |= IsHidden
	return b
}

// Formatter sets custom value formatting and parsing
func (b *Builder) Formatter(format func(float64) string, parse func(string) (float64, error)) *Builder {
	b.param.formatFunc = format
	b.param.parseFunc = parse
	return b
}

// Build returns the configured parameter, initialized to its default value
func (b *Builder) Build() *Parameter {
	b.param.SetValue(b.param.DefaultValue)
	return b.param
}

// SkewedGain creates a builder for a gain control stored as linear
// amplitude with a decibel display. The bounds and the anchor span are in
// decibels; the anchor span's midpoint lands at the control's half
// position. The default is unity gain.
func SkewedGain(id uint32, name string, minDB, maxDB, anchorMinDB, anchorMaxDB float64) *Builder {
	return New(id, name).
		WithRange(GainRange(minDB, maxDB, anchorMinDB, anchorMaxDB)).
		Default(1.0).
		Unit("dB").
		Formatter(GainToDbFormatter(2), GainFromDbParser())
}

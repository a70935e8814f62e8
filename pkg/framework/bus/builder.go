package bus

import (
	"fmt"
)

// Builder provides a fluent API for building bus configurations
type Builder struct {
	config *Configuration
}

// NewBuilder creates a new bus configuration builder
func NewBuilder() *Builder {
	return &Builder{config: &Configuration{}}
}

// WithAudioInput adds a main audio input bus
func (b *Builder) WithAudioInput(name string, channels int32) *Builder {
	b.config.buses = append(b.config.buses, Info{
		Direction:    DirectionInput,
		ChannelCount: channels,
		Name:         name,
		BusType:      TypeMain,
		IsActive:     true,
	})
	return b
}

// WithAudioOutput adds a main audio output bus
func (b *Builder) WithAudioOutput(name string, channels int32) *Builder {
	b.config.buses = append(b.config.buses, Info{
		Direction:    DirectionOutput,
		ChannelCount: channels,
		Name:         name,
		BusType:      TypeMain,
		IsActive:     true,
	})
	return b
}

// WithAuxOutput adds an auxiliary audio output bus
func (b *Builder) WithAuxOutput(name string, channels int32) *Builder {
	b.config.buses = append(b.config.buses, Info{
		Direction:    DirectionOutput,
		ChannelCount: channels,
		Name:         name,
		BusType:      TypeAux,
		IsActive:     true,
	})
	return b
}

// WithStereoInput is a convenience method for adding a stereo main input
func (b *Builder) WithStereoInput(name string) *Builder {
	return b.WithAudioInput(name, 2)
}

// WithStereoOutput is a convenience method for adding a stereo main output
func (b *Builder) WithStereoOutput(name string) *Builder {
	return b.WithAudioOutput(name, 2)
}

// WithStereoAuxOutput is a convenience method for adding a stereo aux output
func (b *Builder) WithStereoAuxOutput(name string) *Builder {
	return b.WithAuxOutput(name, 2)
}

// Validate checks if the configuration is valid
func (b *Builder) Validate() error {
	hasMainOutput := false
	for _, bus := range b.config.buses {
		if bus.Direction == DirectionOutput && bus.BusType == TypeMain {
			hasMainOutput = true
			break
		}
	}
	if !hasMainOutput {
		return fmt.Errorf("configuration must have at least one main output bus")
	}

	for _, bus := range b.config.buses {
		if bus.ChannelCount <= 0 {
			return fmt.Errorf("invalid channel count %d for bus %s", bus.ChannelCount, bus.Name)
		}
		if bus.ChannelCount > 32 {
			return fmt.Errorf("channel count %d exceeds maximum of 32 for bus %s", bus.ChannelCount, bus.Name)
		}
	}

	return nil
}

// Build returns the built configuration or an error
func (b *Builder) Build() (*Configuration, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.config, nil
}

// MustBuild returns the built configuration or panics on error
func (b *Builder) MustBuild() *Configuration {
	config, err := b.Build()
	if err != nil {
		panic(err)
	}
	return config
}

// Package bus provides the declarative audio bus layout of a plugin.
package bus

// Direction represents the bus direction
type Direction int32

const (
	// DirectionInput represents an input bus
	DirectionInput Direction = 0
	// DirectionOutput represents an output bus
	DirectionOutput Direction = 1
)

// Type represents the bus type
type Type int32

const (
	// TypeMain represents a main bus
	TypeMain Type = 0
	// TypeAux represents an auxiliary bus
	TypeAux Type = 1
)

// Info contains the configuration of a single audio bus
type Info struct {
	Direction    Direction
	ChannelCount int32
	Name         string
	BusType      Type
	IsActive     bool
}

// Configuration is an ordered list of audio buses
type Configuration struct {
	buses []Info
}

// Count returns the number of buses for a direction
func (c *Configuration) Count(direction Direction) int32 {
	count := int32(0)
	for _, b := range c.buses {
		if b.Direction == direction {
			count++
		}
	}
	return count
}

// Get returns the bus at index within a direction, or nil
func (c *Configuration) Get(direction Direction, index int32) *Info {
	i := int32(0)
	for j := range c.buses {
		if c.buses[j].Direction == direction {
			if i == index {
				return &c.buses[j]
			}
			i++
		}
	}
	return nil
}

// MainInput returns the first main input bus, or nil
func (c *Configuration) MainInput() *Info {
	return c.first(DirectionInput, TypeMain)
}

// MainOutput returns the first main output bus, or nil
func (c *Configuration) MainOutput() *Info {
	return c.first(DirectionOutput, TypeMain)
}

// AuxOutputs returns the auxiliary output buses in declaration order
func (c *Configuration) AuxOutputs() []Info {
	var out []Info
	for _, b := range c.buses {
		if b.Direction == DirectionOutput && b.BusType == TypeAux {
			out = append(out, b)
		}
	}
	return out
}

// SetActive activates or deactivates the bus at index within a direction
func (c *Configuration) SetActive(direction Direction, index int32, active bool) bool {
	if b := c.Get(direction, index); b != nil {
		b.IsActive = active
		return true
	}
	return false
}

func (c *Configuration) first(direction Direction, busType Type) *Info {
	for j := range c.buses {
		if c.buses[j].Direction == direction && c.buses[j].BusType == busType {
			return &c.buses[j]
		}
	}
	return nil
}

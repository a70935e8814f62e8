// Package param implements the plugin parameter model: lock-free value
// storage, normalized/plain range mapping and display-text round trips.
package param

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// ErrInvalidInput is returned when display text cannot be parsed back into
// a parameter value. The parameter keeps its previous value.
var ErrInvalidInput = errors.New("param: invalid input")

// Parameter represents a plugin parameter.
//
// The normalized value lives in an atomic cell so the audio thread can read
// it without locks while the controller/automation thread writes it. A read
// observes either the previous or the new value, never a torn one.
type Parameter struct {
	ID           uint32
	Name         string
	ShortName    string
	Unit         string
	DefaultValue float64 // normalized
	StepCount    int32
	Flags        uint32
	UnitID       int32

	rng Range

	value uint64 // float64 bits, accessed atomically

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Flags for parameters
const (
	CanAutomate     uint32 = 1 << 0
	IsReadOnly      uint32 = 1 << 1
	IsWrapAround    uint32 = 1 << 2
	IsList          uint32 = 1 << 3
	IsHidden        uint32 = 1 << 4
	IsProgramChange uint32 = 1 << 15
	IsBypass        uint32 = 1 << 16
)

// GetValue returns the current normalized value (0-1).
func (p *Parameter) GetValue() float64 {
	return math.Float64frombits(atomic.LoadUint64(&p.value))
}

// SetValue sets the normalized value, clamped to [0,1].
func (p *Parameter) SetValue(value float64) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	atomic.StoreUint64(&p.value, math.Float64bits(value))
}

// Range returns the parameter's normalized-to-plain mapping.
func (p *Parameter) Range() Range {
	return p.rng
}

// GetPlainValue converts the current normalized value to a plain value.
func (p *Parameter) GetPlainValue() float64 {
	return p.rng.Map(p.GetValue())
}

// SetPlainValue sets the value from a plain value, clamped to the range.
func (p *Parameter) SetPlainValue(plain float64) {
	p.SetValue(p.rng.Unmap(plain))
}

// Normalize converts a plain value to a normalized one.
func (p *Parameter) Normalize(plain float64) float64 {
	return p.rng.Unmap(plain)
}

// Denormalize converts a normalized value to a plain one.
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.rng.Map(normalized)
}

// FormatValue returns the display string for a normalized value.
func (p *Parameter) FormatValue(normalized float64) string {
	plain := p.Denormalize(normalized)

	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}

	if p.StepCount > 0 {
		return fmt.Sprintf("%.0f", plain)
	}
	return fmt.Sprintf("%.2f", plain)
}

// Display returns the display string for the current value.
func (p *Parameter) Display() string {
	return p.FormatValue(p.GetValue())
}

// ParseValue parses display text into a normalized value. The result is
// clamped to the parameter's range. Text that does not parse yields an
// error wrapping ErrInvalidInput and leaves nothing changed; callers decide
// whether to store the returned value.
func (p *Parameter) ParseValue(str string) (float64, error) {
	if p.parseFunc != nil {
		plain, err := p.parseFunc(str)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidInput, str)
		}
		return p.Normalize(plain), nil
	}

	plain, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, str)
	}
	return p.Normalize(plain), nil
}

// SetFromString parses display text and stores the result. On parse failure
// the current value is retained and the error reported to the caller.
func (p *Parameter) SetFromString(str string) error {
	normalized, err := p.ParseValue(str)
	if err != nil {
		return err
	}
	p.SetValue(normalized)
	return nil
}

package param

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/volki9000/monitorsend/pkg/dsp/gain"
)

// GainToDbFormatter returns a formatter that renders a linear amplitude as
// a decibel string with the given number of decimals, e.g. "-6.02 dB".
// Non-positive amplitudes render as negative infinity.
func GainToDbFormatter(decimals int) func(float64) string {
	return func(amplitude float64) string {
		if amplitude <= 0 {
			return "-∞ dB"
		}
		return fmt.Sprintf("%.*f dB", decimals, gain.LinearToDb(amplitude))
	}
}

// GainFromDbParser returns a parser for decibel strings that yields a
// linear amplitude. It accepts the "dB" unit suffix in any case and the
// infinity spellings produced by GainToDbFormatter.
func GainFromDbParser() func(string) (float64, error) {
	return func(str string) (float64, error) {
		s := strings.TrimSpace(str)
		if strings.Contains(s, "∞") || strings.Contains(strings.ToLower(s), "-inf") {
			return 0, nil
		}

		lower := strings.ToLower(s)
		if strings.HasSuffix(lower, "db") {
			s = strings.TrimSpace(s[:len(s)-2])
		}

		db, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("not a decibel value: %q", str)
		}
		return gain.DbToLinear(db), nil
	}
}

// DecibelFormatter formats a plain decibel value (for parameters whose
// plain range already is in dB).
func DecibelFormatter(db float64) string {
	return fmt.Sprintf("%.1f dB", db)
}

// DecibelParser parses a plain decibel string.
func DecibelParser(str string) (float64, error) {
	s := strings.TrimSpace(str)
	lower := strings.ToLower(s)
	if strings.HasSuffix(lower, "db") {
		s = strings.TrimSpace(s[:len(s)-2])
	}
	return strconv.ParseFloat(s, 64)
}

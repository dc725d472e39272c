// Package format provides textual rendering helpers for report fields.
package format

import (
	"math"
	"strconv"
)

// OptionalIndex renders a possibly-absent device index. Absent values render
// as the literal "None" rather than being elided.
func OptionalIndex(v *int) string {
	if v == nil {
		return "None"
	}
	return strconv.Itoa(*v)
}

// SampleRate renders a sample rate, keeping one decimal place for integral
// values ("44100.0") and the shortest exact form otherwise.
func SampleRate(rate float64) string {
	if rate == math.Trunc(rate) && !math.IsInf(rate, 0) {
		return strconv.FormatFloat(rate, 'f', 1, 64)
	}
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

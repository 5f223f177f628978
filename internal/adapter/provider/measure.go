package provider

import "math"

// Finite returns v, or 0 when v is NaN or infinite. Request bodies are JSON
// and JSON has no encoding for non-finite numbers.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Package money rounds amounts to the two decimal places the NUMERIC(10,2)
// columns keep.
package money

import "math"

// Round returns amount rounded to the nearest cent.
func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}

package pricing

import "math"

// RoundPrice rounds a submitted price to the stored integer amount.
// Ties round half away from zero: 100.5 -> 101, -2.5 -> -3.
func RoundPrice(price float64) int64 {
	return int64(math.Round(price))
}

// AdjustPrice applies a uniform percentage change to a stored price.
// The result always rounds up, for negative percentages too, so a
// discounted price never drops below its exact value (no underpricing).
// AdjustPrice(p, 0) == p and AdjustPrice(p, -100) == 0.
func AdjustPrice(price int64, percent float64) int64 {
	return int64(math.Ceil(float64(price) * (1 + percent/100)))
}

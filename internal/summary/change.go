package summary

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentageChange returns the signed change from previous to current in
// percent. A zero baseline yields 0 when current is also zero and 100
// otherwise, so the result is always finite.
func PercentageChange(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}

	cur := decimal.NewFromInt(current)
	prev := decimal.NewFromInt(previous)
	return cur.Sub(prev).Div(prev.Abs()).Mul(hundred).InexactFloat64()
}

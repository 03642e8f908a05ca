// Package marketdata supplies zero-rate quotes to the pricing functions.
package marketdata

import (
	"fmt"
	"math"

	"github.com/meenmo/fixedincome/bond"
)

// ZeroRateFeed supplies simple zero rates by payment time in years.
type ZeroRateFeed interface {
	RateAt(tenorYears float64) (float64, bool)
}

// tenorTolerance absorbs float noise in tenor keys (e.g., monthly payment
// times built as multiples of 1/12).
const tenorTolerance = 1e-9

// MapZeroRateFeed is a static map-backed feed for development and testing,
// keyed by tenor in years.
type MapZeroRateFeed struct {
	rates map[float64]float64
}

func NewMapZeroRateFeed(rates map[float64]float64) *MapZeroRateFeed {
	return &MapZeroRateFeed{rates: rates}
}

func (m *MapZeroRateFeed) RateAt(tenorYears float64) (float64, bool) {
	if r, ok := m.rates[tenorYears]; ok {
		return r, true
	}
	for k, r := range m.rates {
		if math.Abs(k-tenorYears) <= tenorTolerance {
			return r, true
		}
	}
	return 0, false
}

// CurveFor builds the positional zero curve for a bond's payment schedule
// from a feed. Every payment time must have a quote; a missing tenor is an
// error rather than an interpolation.
func CurveFor(feed ZeroRateFeed, b bond.Bond) (bond.ZeroCurve, error) {
	sched, err := bond.BuildSchedule(b)
	if err != nil {
		return nil, fmt.Errorf("CurveFor: %w", err)
	}

	curve := make(bond.ZeroCurve, len(sched.Times))
	for i, t := range sched.Times {
		r, ok := feed.RateAt(t)
		if !ok {
			return nil, fmt.Errorf("CurveFor: no zero rate quoted for payment time %v years", t)
		}
		curve[i] = r
	}
	return curve, nil
}

package bond

import (
	"fmt"
	"math"

	"github.com/meenmo/fixedincome/rates"
	"github.com/meenmo/fixedincome/utils"
)

// PriceFromCurve prices the bond off a term structure of per-period simple
// zero rates, one rate per payment period. The curve length must equal the
// bond's payment count; a mismatch surfaces as *LengthMismatchError, never a
// silent truncation.
//
// The result is rounded to 4 decimals.
func PriceFromCurve(b Bond, zeroRates ZeroCurve) (float64, error) {
	sched, err := BuildSchedule(b)
	if err != nil {
		return 0, fmt.Errorf("PriceFromCurve: %w", err)
	}
	if len(zeroRates) != len(sched.Times) {
		return 0, fmt.Errorf("PriceFromCurve: %w", &LengthMismatchError{Want: len(sched.Times), Got: len(zeroRates)})
	}

	var price float64
	for i, t := range sched.Times {
		df, err := rates.DiscountFactor(1.0, t, zeroRates[i])
		if err != nil {
			return 0, fmt.Errorf("PriceFromCurve: period %d: %w", i+1, err)
		}
		price += sched.Amounts[i] * df
	}
	return utils.RoundTo(price, 4), nil
}

// PriceFromYield prices the bond off a single flat yield compounded at the
// bond's payment frequency: cash flow i is discounted by
// (1 + y/freq)^(-t_i*freq).
//
// The result is returned at full precision. Duration depends on an unrounded
// price; round for display with utils.RoundTo if needed.
func PriceFromYield(b Bond, yield float64) (float64, error) {
	sched, err := BuildSchedule(b)
	if err != nil {
		return 0, fmt.Errorf("PriceFromYield: %w", err)
	}

	freq := float64(b.PaymentFrequency)
	base := 1.0 + yield/freq
	if base <= 0 {
		return 0, fmt.Errorf("PriceFromYield: %w", &rates.DomainError{
			Op:     "PriceFromYield",
			Reason: fmt.Sprintf("1 + yield/freq must be positive (yield=%v, freq=%d)", yield, b.PaymentFrequency),
		})
	}

	var price float64
	for i, t := range sched.Times {
		price += sched.Amounts[i] * math.Pow(base, -t*freq)
	}
	return price, nil
}

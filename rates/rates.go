// Package rates provides the discounting and rate-convention primitives used
// by the bond package: simple-rate discount factors, conversion between
// simple and periodically-compounded rates, and single-cashflow present value.
//
// All rates are decimals (e.g., 0.05 for 5%), all tenors are in years.
package rates

import (
	"fmt"
	"math"

	"github.com/meenmo/fixedincome/utils"
)

// DomainError reports an input outside the mathematical domain of an
// operation (division by zero in discounting, a real-valued power with a
// non-positive base, and so on).
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return e.Op + ": " + e.Reason
}

// DiscountFactor returns the price of a zero-coupon bond paying face at
// tenor years, discounted at a simple rate:
//
//	face / (1 + rate*tenor)
//
// Compounded rates must be converted via CompoundedToSimple before calling;
// no compounded-discounting variant is exposed here.
func DiscountFactor(face, tenor, rate float64) (float64, error) {
	den := 1.0 + rate*tenor
	if den == 0 {
		return 0, &DomainError{
			Op:     "DiscountFactor",
			Reason: fmt.Sprintf("1 + rate*tenor is zero (rate=%v, tenor=%v)", rate, tenor),
		}
	}
	return face / den, nil
}

// SimpleToCompounded converts a simple rate over t years into the equivalent
// rate compounded freq times per year:
//
//	((1 + simple*t)^(1/(t*freq)) - 1) * freq
func SimpleToCompounded(simple, t float64, freq int) (float64, error) {
	tf := t * float64(freq)
	if tf <= 0 {
		return 0, &DomainError{
			Op:     "SimpleToCompounded",
			Reason: fmt.Sprintf("t*freq must be positive (t=%v, freq=%d)", t, freq),
		}
	}
	grown, err := pow("SimpleToCompounded", 1.0+simple*t, 1.0/tf)
	if err != nil {
		return 0, err
	}
	return (grown - 1.0) * float64(freq), nil
}

// CompoundedToSimple converts a rate compounded freq times per year into the
// equivalent simple rate over t years:
//
//	((1 + comp/freq)^(t*freq) - 1) / t
//
// It is the exact algebraic inverse of SimpleToCompounded for matching
// (t, freq).
func CompoundedToSimple(comp, t float64, freq int) (float64, error) {
	tf := t * float64(freq)
	if tf <= 0 {
		return 0, &DomainError{
			Op:     "CompoundedToSimple",
			Reason: fmt.Sprintf("t*freq must be positive (t=%v, freq=%d)", t, freq),
		}
	}
	grown, err := pow("CompoundedToSimple", 1.0+comp/float64(freq), tf)
	if err != nil {
		return 0, err
	}
	return (grown - 1.0) / t, nil
}

// PresentValue discounts a single cash flow cf paid at tau years back at a
// simple rate, rounded to 4 decimals. The rounding is a display convention;
// intermediate sums elsewhere keep full precision.
func PresentValue(cf, simpleRate, tau float64) (float64, error) {
	df, err := DiscountFactor(1.0, tau, simpleRate)
	if err != nil {
		return 0, fmt.Errorf("PresentValue: %w", err)
	}
	return utils.RoundTo(df*cf, 4), nil
}

// pow is math.Pow with the real-valued domain checked: a non-positive base
// with a non-integral exponent, or a non-finite result, surfaces as a
// DomainError.
func pow(op string, base, exp float64) (float64, error) {
	if base <= 0 && exp != math.Trunc(exp) {
		return 0, &DomainError{
			Op:     op,
			Reason: fmt.Sprintf("non-positive base %v with non-integral exponent %v", base, exp),
		}
	}
	v := math.Pow(base, exp)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &DomainError{
			Op:     op,
			Reason: fmt.Sprintf("%v^%v is not finite", base, exp),
		}
	}
	return v, nil
}

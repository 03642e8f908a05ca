package bond

import (
	"fmt"
	"math"
)

// paymentCountTolerance is the residual allowed between tenor*frequency and
// the nearest integer. Plain truncation would drop a period when the product
// lands just under an integer (e.g., 1.9999999999 instead of 2).
const paymentCountTolerance = 1e-9

// Validate checks the bond's terms. It returns an *InvalidBondError for
// non-positive face value, tenor, or frequency, or a negative coupon rate.
func (b Bond) Validate() error {
	switch {
	case b.FaceValue <= 0:
		return &InvalidBondError{Reason: fmt.Sprintf("face value must be positive, got %v", b.FaceValue)}
	case b.TenorYears <= 0:
		return &InvalidBondError{Reason: fmt.Sprintf("tenor must be positive, got %v years", b.TenorYears)}
	case b.PaymentFrequency <= 0:
		return &InvalidBondError{Reason: fmt.Sprintf("payment frequency must be positive, got %d", b.PaymentFrequency)}
	case b.AnnualCouponRate < 0:
		return &InvalidBondError{Reason: fmt.Sprintf("coupon rate must not be negative, got %v", b.AnnualCouponRate)}
	}
	return nil
}

// PaymentCount returns the number of coupon periods, rounding tenor*frequency
// to the nearest integer within paymentCountTolerance. A residual beyond the
// tolerance means the tenor is not a whole number of periods and is rejected
// rather than silently truncated.
func (b Bond) PaymentCount() (int, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	raw := b.TenorYears * float64(b.PaymentFrequency)
	n := math.Round(raw)
	if n < 1 || math.Abs(raw-n) > paymentCountTolerance {
		return 0, &InvalidBondError{
			Reason: fmt.Sprintf("tenor %v years at frequency %d is not a whole number of periods (%v)", b.TenorYears, b.PaymentFrequency, raw),
		}
	}
	return int(n), nil
}

// CouponAmount returns the per-period coupon payment, coupon*face/frequency.
func (b Bond) CouponAmount() float64 {
	return b.AnnualCouponRate * b.FaceValue / float64(b.PaymentFrequency)
}

// BuildSchedule expands the bond's terms into its cash-flow schedule.
//
// Payment i (0-based) falls at (i+1)/frequency years and pays the per-period
// coupon; the final payment additionally returns the face value.
func BuildSchedule(b Bond) (Schedule, error) {
	count, err := b.PaymentCount()
	if err != nil {
		return Schedule{}, fmt.Errorf("BuildSchedule: %w", err)
	}

	coupon := b.CouponAmount()
	times := make([]float64, count)
	amounts := make([]float64, count)
	for i := 0; i < count; i++ {
		times[i] = float64(i+1) / float64(b.PaymentFrequency)
		amounts[i] = coupon
	}
	amounts[count-1] += b.FaceValue

	return Schedule{Times: times, Amounts: amounts}, nil
}

package bond

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/fixedincome/calendar"
	"github.com/meenmo/fixedincome/rates"
	"github.com/meenmo/fixedincome/utils"
)

// DatedSchedule maps the bond's year-fraction schedule onto calendar dates.
//
// Payment dates are generated EDATE-style from the settlement date in
// 12/frequency month steps and business-day adjusted (Modified Following) on
// the given calendar. The frequency must divide 12 so each period is a whole
// number of months.
func DatedSchedule(b Bond, settlement time.Time, cal calendar.CalendarID) ([]Cashflow, error) {
	count, err := b.PaymentCount()
	if err != nil {
		return nil, fmt.Errorf("DatedSchedule: %w", err)
	}
	if 12%b.PaymentFrequency != 0 {
		return nil, fmt.Errorf("DatedSchedule: %w", &InvalidBondError{
			Reason: fmt.Sprintf("frequency %d does not divide 12 months", b.PaymentFrequency),
		})
	}

	months := 12 / b.PaymentFrequency
	coupon := b.CouponAmount()
	out := make([]Cashflow, count)
	for i := 0; i < count; i++ {
		cf := Cashflow{
			Date:   calendar.Adjust(cal, utils.AddMonth(settlement, months*(i+1))),
			Coupon: coupon,
		}
		if i == count-1 {
			cf.Principal = b.FaceValue
		}
		out[i] = cf
	}
	return out, nil
}

// YearFractions converts dated cash flows back into year-fraction payment
// times from the settlement date under the given day count.
func YearFractions(settlement time.Time, cfs []Cashflow, dc utils.DayCount) []float64 {
	out := make([]float64, len(cfs))
	for i, cf := range cfs {
		out[i] = utils.YearFraction(settlement, cf.Date, dc)
	}
	return out
}

// PriceCashflows computes the dirty price of dated cash flows at a flat
// yield compounded freq times per year, discounting each flow over its
// day-count year fraction from settlement. Flows on or before settlement are
// skipped. The result is returned at full precision.
func PriceCashflows(cfs []Cashflow, settlement time.Time, yield float64, freq int, dc utils.DayCount) (float64, error) {
	if freq <= 0 {
		return 0, fmt.Errorf("PriceCashflows: frequency must be positive, got %d", freq)
	}
	f := float64(freq)
	base := 1.0 + yield/f
	if base <= 0 {
		return 0, fmt.Errorf("PriceCashflows: %w", &rates.DomainError{
			Op:     "PriceCashflows",
			Reason: fmt.Sprintf("1 + yield/freq must be positive (yield=%v, freq=%d)", yield, freq),
		})
	}

	var price float64
	for _, cf := range cfs {
		if !cf.Date.After(settlement) {
			continue
		}
		t := utils.YearFraction(settlement, cf.Date, dc)
		price += cf.Amount() * math.Pow(base, -t*f)
	}
	return price, nil
}

// Package bond prices fixed-coupon bullet bonds and computes their duration
// measures from a cash-flow schedule, either against a per-period zero curve
// (simple rates) or a single flat compounded yield.
//
// Everything here is a pure function of its inputs. There is no shared state,
// so all operations are safe to call concurrently.
package bond

import "time"

// Bond describes a fixed-coupon bullet bond. It is a value object; construct
// it once and pass it by value.
type Bond struct {
	// FaceValue is the principal repaid at maturity, in currency units.
	FaceValue float64
	// TenorYears is the total life of the bond in years.
	TenorYears float64
	// AnnualCouponRate is the annual coupon as a decimal (e.g., 0.05 for 5%).
	AnnualCouponRate float64
	// PaymentFrequency is the number of coupon payments per year.
	PaymentFrequency int
}

// Schedule is a bond's cash-flow schedule in year-fraction time.
//
// Times and Amounts are positionally aligned and equal in length. Times are
// strictly increasing; the final amount includes the face value.
type Schedule struct {
	Times   []float64
	Amounts []float64
}

// ZeroCurve is an ordered sequence of per-period simple discount rates,
// positionally aligned with a bond's Schedule: entry i discounts the cash
// flow at Times[i]. Its length must equal the bond's payment count.
type ZeroCurve []float64

// Stats aggregates the yield-based valuation and sensitivity measures of a
// bond. All fields are rounded to 4 decimals for display consistency.
type Stats struct {
	Price            float64
	MacaulayDuration float64
	ModifiedDuration float64
}

// Cashflow is a single dated cash payment for a bond.
//
// Amounts are in currency units (e.g., EUR), not price-per-100.
type Cashflow struct {
	Date      time.Time
	Coupon    float64
	Principal float64
}

func (c Cashflow) Amount() float64 {
	return c.Coupon + c.Principal
}

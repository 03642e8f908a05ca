package bond_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/meenmo/fixedincome/bond"
	"github.com/meenmo/fixedincome/calendar"
	"github.com/meenmo/fixedincome/utils"
)

func TestDatedSchedule_SemiAnnual(t *testing.T) {
	t.Parallel()

	b := bond.Bond{FaceValue: 100, TenorYears: 2, AnnualCouponRate: 0.06, PaymentFrequency: 2}
	settlement := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	cfs, err := bond.DatedSchedule(b, settlement, calendar.Weekend)
	if err != nil {
		t.Fatalf("DatedSchedule error: %v", err)
	}
	if len(cfs) != 4 {
		t.Fatalf("expected 4 cash flows, got %d", len(cfs))
	}

	prev := settlement
	for i, cf := range cfs {
		if !cf.Date.After(prev) {
			t.Fatalf("dates not strictly increasing at %d: %s", i, cf.Date.Format("2006-01-02"))
		}
		if !calendar.IsBusinessDay(calendar.Weekend, cf.Date) {
			t.Fatalf("cash flow %d falls on a non-business day: %s", i, cf.Date.Format("2006-01-02"))
		}
		if math.Abs(cf.Coupon-3.0) > 1e-12 {
			t.Fatalf("coupon mismatch at %d: got %v want 3", i, cf.Coupon)
		}
		prev = cf.Date
	}

	if cfs[3].Principal != 100 {
		t.Fatalf("final principal mismatch: got %v want 100", cfs[3].Principal)
	}
	for i := 0; i < 3; i++ {
		if cfs[i].Principal != 0 {
			t.Fatalf("unexpected principal at %d: %v", i, cfs[i].Principal)
		}
	}
}

func TestDatedSchedule_FrequencyMustDivideYear(t *testing.T) {
	t.Parallel()

	b := bond.Bond{FaceValue: 100, TenorYears: 1, AnnualCouponRate: 0.05, PaymentFrequency: 5}

	_, err := bond.DatedSchedule(b, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), calendar.Weekend)
	if err == nil {
		t.Fatal("expected error for frequency 5")
	}
	var invalidErr *bond.InvalidBondError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected *InvalidBondError, got %T: %v", err, err)
	}
}

func TestPriceCashflows_SingleFlow(t *testing.T) {
	t.Parallel()

	settlement := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	cfs := []bond.Cashflow{
		{Date: settlement.AddDate(1, 0, 0), Coupon: 5, Principal: 100},
	}

	// Exactly 365 days out under ACT/365F, so t = 1 and the price is
	// 105 / (1 + y).
	price, err := bond.PriceCashflows(cfs, settlement, 0.05, 1, utils.Act365F)
	if err != nil {
		t.Fatalf("PriceCashflows error: %v", err)
	}
	if math.Abs(price-105.0/1.05) > 1e-9 {
		t.Fatalf("price mismatch: got %v want %v", price, 105.0/1.05)
	}
}

func TestPriceCashflows_SkipsPastFlows(t *testing.T) {
	t.Parallel()

	settlement := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	cfs := []bond.Cashflow{
		{Date: settlement.AddDate(-1, 0, 0), Coupon: 5},
		{Date: settlement, Coupon: 5},
		{Date: settlement.AddDate(1, 0, 0), Coupon: 5, Principal: 100},
	}

	price, err := bond.PriceCashflows(cfs, settlement, 0.05, 1, utils.Act365F)
	if err != nil {
		t.Fatalf("PriceCashflows error: %v", err)
	}
	if math.Abs(price-105.0/1.05) > 1e-9 {
		t.Fatalf("past/settlement flows should be skipped: got %v want %v", price, 105.0/1.05)
	}
}

func TestYearFractions(t *testing.T) {
	t.Parallel()

	settlement := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	cfs := []bond.Cashflow{
		{Date: settlement.AddDate(0, 0, 182), Coupon: 3},
		{Date: settlement.AddDate(0, 0, 365), Coupon: 3, Principal: 100},
	}

	taus := bond.YearFractions(settlement, cfs, utils.Act365F)
	if len(taus) != 2 {
		t.Fatalf("expected 2 year fractions, got %d", len(taus))
	}
	if math.Abs(taus[0]-182.0/365.0) > 1e-12 {
		t.Fatalf("taus[0] mismatch: got %v", taus[0])
	}
	if math.Abs(taus[1]-1.0) > 1e-12 {
		t.Fatalf("taus[1] mismatch: got %v", taus[1])
	}
}

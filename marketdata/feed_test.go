package marketdata_test

import (
	"math"
	"strings"
	"testing"

	"github.com/meenmo/fixedincome/bond"
	"github.com/meenmo/fixedincome/marketdata"
)

func TestCurveFor_AlignsWithSchedule(t *testing.T) {
	t.Parallel()

	b := bond.Bond{FaceValue: 100, TenorYears: 2, AnnualCouponRate: 0.06, PaymentFrequency: 2}
	feed := marketdata.NewMapZeroRateFeed(map[float64]float64{
		0.5: 0.0450,
		1.0: 0.0480,
		1.5: 0.0505,
		2.0: 0.0525,
	})

	curve, err := marketdata.CurveFor(feed, b)
	if err != nil {
		t.Fatalf("CurveFor error: %v", err)
	}
	if len(curve) != 4 {
		t.Fatalf("expected 4 rates, got %d", len(curve))
	}
	want := []float64{0.0450, 0.0480, 0.0505, 0.0525}
	for i, r := range want {
		if math.Abs(curve[i]-r) > 1e-12 {
			t.Fatalf("curve[%d] mismatch: got %v want %v", i, curve[i], r)
		}
	}

	// The aligned curve must be accepted by the pricer without a length error.
	if _, err := bond.PriceFromCurve(b, curve); err != nil {
		t.Fatalf("PriceFromCurve error: %v", err)
	}
}

func TestCurveFor_MissingTenor(t *testing.T) {
	t.Parallel()

	b := bond.Bond{FaceValue: 100, TenorYears: 2, AnnualCouponRate: 0.06, PaymentFrequency: 2}
	feed := marketdata.NewMapZeroRateFeed(map[float64]float64{
		0.5: 0.0450,
		1.0: 0.0480,
		2.0: 0.0525, // 1.5y missing
	})

	_, err := marketdata.CurveFor(feed, b)
	if err == nil {
		t.Fatal("expected error for missing tenor")
	}
	if !strings.Contains(err.Error(), "1.5") {
		t.Fatalf("error should name the missing tenor: %v", err)
	}
}

func TestMapZeroRateFeed_Tolerance(t *testing.T) {
	t.Parallel()

	feed := marketdata.NewMapZeroRateFeed(map[float64]float64{
		0.5 + 1e-12: 0.03,
	})

	r, ok := feed.RateAt(0.5)
	if !ok {
		t.Fatal("expected tolerance lookup to succeed")
	}
	if r != 0.03 {
		t.Fatalf("rate mismatch: got %v", r)
	}

	if _, ok := feed.RateAt(0.75); ok {
		t.Fatal("expected miss for unquoted tenor")
	}
}

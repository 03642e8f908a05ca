package bonds_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/fixedincome/bond"
	"github.com/meenmo/fixedincome/instruments/bonds"
)

func TestPresets_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		b        bond.Bond
		wantFreq int
	}{
		{"annual", bonds.AnnualBullet(100, 5, 0.06), 1},
		{"semiannual", bonds.SemiAnnualBullet(100, 10, 0.04), 2},
		{"quarterly", bonds.QuarterlyBullet(1000, 2, 0.08), 4},
		{"zero coupon", bonds.ZeroCoupon(100, 5), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.b.Validate())
			require.Equal(t, tc.wantFreq, tc.b.PaymentFrequency)
		})
	}
}

func TestZeroCoupon_AllValueAtMaturity(t *testing.T) {
	t.Parallel()

	sched, err := bond.BuildSchedule(bonds.ZeroCoupon(100, 5))
	require.NoError(t, err)
	require.Len(t, sched.Amounts, 5)

	for i := 0; i < 4; i++ {
		require.Zero(t, sched.Amounts[i])
	}
	require.Equal(t, 100.0, sched.Amounts[4])
	require.Equal(t, 5.0, sched.Times[4])
}

func TestCashflowCents_Conversion(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	in := []bonds.CashflowCents{
		{Date: date, CouponCents: 250, PrincipalCents: 0},
		{Date: date.AddDate(1, 0, 0), CouponCents: 250, PrincipalCents: 10000},
	}

	out := bonds.ToCashflows(in)
	require.Len(t, out, 2)
	require.Equal(t, 2.5, out[0].Coupon)
	require.Zero(t, out[0].Principal)
	require.Equal(t, 102.5, out[1].Amount())
	require.True(t, out[1].Date.Equal(date.AddDate(1, 0, 0)))
}

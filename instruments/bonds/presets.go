package bonds

import "github.com/meenmo/fixedincome/bond"

// Preset constructors for the common bullet structures. Coupon rates are
// decimals (0.05 for 5%), tenors in years.

// AnnualBullet is a fixed-coupon bond paying once a year.
func AnnualBullet(face, tenorYears, couponRate float64) bond.Bond {
	return bond.Bond{
		FaceValue:        face,
		TenorYears:       tenorYears,
		AnnualCouponRate: couponRate,
		PaymentFrequency: 1,
	}
}

// SemiAnnualBullet is a fixed-coupon bond paying twice a year.
func SemiAnnualBullet(face, tenorYears, couponRate float64) bond.Bond {
	return bond.Bond{
		FaceValue:        face,
		TenorYears:       tenorYears,
		AnnualCouponRate: couponRate,
		PaymentFrequency: 2,
	}
}

// QuarterlyBullet is a fixed-coupon bond paying four times a year.
func QuarterlyBullet(face, tenorYears, couponRate float64) bond.Bond {
	return bond.Bond{
		FaceValue:        face,
		TenorYears:       tenorYears,
		AnnualCouponRate: couponRate,
		PaymentFrequency: 4,
	}
}

// ZeroCoupon pays only the face value at maturity. The schedule builder
// still treats it as an annual bond so the final (and only meaningful)
// payment lands at the tenor.
func ZeroCoupon(face, tenorYears float64) bond.Bond {
	return bond.Bond{
		FaceValue:        face,
		TenorYears:       tenorYears,
		AnnualCouponRate: 0,
		PaymentFrequency: 1,
	}
}

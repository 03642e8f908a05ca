package bond

import "fmt"

// InvalidBondError reports bond terms the schedule builder cannot work with:
// non-positive face, tenor, or frequency, a negative coupon rate, or a tenor
// that does not yield a whole number of payment periods.
type InvalidBondError struct {
	Reason string
}

func (e *InvalidBondError) Error() string {
	return "invalid bond: " + e.Reason
}

// LengthMismatchError reports a zero curve whose length does not equal the
// bond's payment count. The curve is never truncated or padded.
type LengthMismatchError struct {
	Want int // payment count
	Got  int // curve length
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("zero curve has %d rates, bond has %d payments", e.Got, e.Want)
}

// Package cliio holds the I/O plumbing shared by the bondcalc subcommands:
// JSON input loading, the bond input schema, and verbose logging setup.
package cliio

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/meenmo/fixedincome/bond"
)

// BondInput is the JSON schema for a bond's terms.
//
// Conventions:
// - coupon rate is a decimal (e.g., 0.05 means 5%)
// - tenor is in years, frequency in payments per year
type BondInput struct {
	FaceValue        float64 `json:"face_value"`
	TenorYears       float64 `json:"tenor_years"`
	AnnualCouponRate float64 `json:"annual_coupon_rate"`
	PaymentFrequency int     `json:"payment_frequency"`
}

func (in BondInput) Bond() bond.Bond {
	return bond.Bond{
		FaceValue:        in.FaceValue,
		TenorYears:       in.TenorYears,
		AnnualCouponRate: in.AnnualCouponRate,
		PaymentFrequency: in.PaymentFrequency,
	}
}

// ReadInput loads the JSON document from the path when set, otherwise from
// stdin.
func ReadInput(stdin io.Reader, path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

// StdinIsTTY reports whether stdin is an interactive terminal, in which case
// a subcommand with no -input flag should print usage instead of blocking.
func StdinIsTTY(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// NewLogger builds the diagnostics logger. Output goes to stderr so it never
// mixes with the JSON result on stdout; verbose lifts the level to Debug.
func NewLogger(stderr io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

package price

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/meenmo/fixedincome/bond"
	"github.com/meenmo/fixedincome/cmd/bondcalc/internal/cliio"
	"github.com/meenmo/fixedincome/instruments/bonds"
	"github.com/meenmo/fixedincome/utils"
)

// PricingInput defines the JSON input schema for bond pricing.
//
// Exactly one of zero_rates, yield, and cashflows selects the mode:
// - zero_rates: per-period simple rates, one per payment, positionally aligned
// - yield: a flat rate compounded at the bond's payment frequency
// - cashflows: dated flows priced dirty at yield; settlement is required,
//   day_count defaults to ACT/365F, and only payment_frequency of the bond
//   terms applies (yield must be set alongside)
type PricingInput struct {
	cliio.BondInput

	ZeroRates []float64 `json:"zero_rates,omitempty"`
	Yield     *float64  `json:"yield,omitempty"`

	Settlement string        `json:"settlement,omitempty"`
	DayCount   string        `json:"day_count,omitempty"`
	Cashflows  []CashflowRow `json:"cashflows,omitempty"`
}

// CashflowRow mirrors the cashflow feed format where coupon and principal are
// integer minor units (e.g., cents for EUR).
type CashflowRow struct {
	Date           string `json:"date"`
	CouponCents    int64  `json:"coupon_cents"`
	PrincipalCents int64  `json:"principal_cents"`
}

type PricingOutput struct {
	Price float64 `json:"price"`
	Mode  string  `json:"mode,omitempty"` // "curve", "yield" or "dated"
	Error string  `json:"error,omitempty"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("price", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON input path (optional; if set, ignores stdin)")
	verbose := fs.Bool("v", false, "Verbose diagnostics on stderr")
	help := fs.Bool("h", false, "Show help")
	fs.BoolVar(help, "help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stderr)
		return 0
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" && cliio.StdinIsTTY(stdin) {
		usage(stderr)
		return 2
	}

	logger := cliio.NewLogger(stderr, *verbose)

	inputBytes, err := cliio.ReadInput(stdin, path)
	if err != nil {
		return writeError(stdout, fmt.Sprintf("failed to read input: %v", err))
	}

	var input PricingInput
	if err := json.Unmarshal(inputBytes, &input); err != nil {
		return writeError(stdout, fmt.Sprintf("failed to parse JSON input: %v", err))
	}

	output, err := calculate(input, logger)
	if err != nil {
		return writeError(stdout, err.Error())
	}

	outputBytes, _ := json.Marshal(output)
	fmt.Fprintln(stdout, string(outputBytes))
	return 0
}

func calculate(input PricingInput, logger *logrus.Logger) (*PricingOutput, error) {
	hasCurve := len(input.ZeroRates) > 0
	hasYield := input.Yield != nil

	if len(input.Cashflows) > 0 {
		if hasCurve {
			return nil, fmt.Errorf("cashflows cannot be combined with zero_rates")
		}
		if !hasYield {
			return nil, fmt.Errorf("yield is required with cashflows")
		}
		return calculateDated(input, logger)
	}

	b := input.Bond()
	if err := b.Validate(); err != nil {
		return nil, err
	}

	if hasCurve == hasYield {
		return nil, fmt.Errorf("set exactly one of zero_rates, yield, and cashflows")
	}

	if hasCurve {
		logger.Debugf("pricing off zero curve: %d rates, tenor=%v freq=%d", len(input.ZeroRates), b.TenorYears, b.PaymentFrequency)
		p, err := bond.PriceFromCurve(b, bond.ZeroCurve(input.ZeroRates))
		if err != nil {
			return nil, err
		}
		return &PricingOutput{Price: p, Mode: "curve"}, nil
	}

	logger.Debugf("pricing off flat yield %v, tenor=%v freq=%d", *input.Yield, b.TenorYears, b.PaymentFrequency)
	p, err := bond.PriceFromYield(b, *input.Yield)
	if err != nil {
		return nil, err
	}
	return &PricingOutput{Price: utils.RoundTo(p, 4), Mode: "yield"}, nil
}

func calculateDated(input PricingInput, logger *logrus.Logger) (*PricingOutput, error) {
	if input.PaymentFrequency <= 0 {
		return nil, fmt.Errorf("payment_frequency is required with cashflows")
	}
	settlement, err := time.Parse("2006-01-02", input.Settlement)
	if err != nil {
		return nil, fmt.Errorf("invalid settlement: %v", err)
	}
	dc := utils.DayCount(strings.TrimSpace(input.DayCount))
	if dc == "" {
		dc = utils.Act365F
	}

	rows := make([]bonds.CashflowCents, 0, len(input.Cashflows))
	for _, r := range input.Cashflows {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid cashflow date %q: %v", r.Date, err)
		}
		rows = append(rows, bonds.CashflowCents{
			Date:           d,
			CouponCents:    r.CouponCents,
			PrincipalCents: r.PrincipalCents,
		})
	}

	logger.Debugf("pricing %d dated cashflows: settlement=%s yield=%v freq=%d day_count=%s",
		len(rows), input.Settlement, *input.Yield, input.PaymentFrequency, dc)

	p, err := bond.PriceCashflows(bonds.ToCashflows(rows), settlement, *input.Yield, input.PaymentFrequency, dc)
	if err != nil {
		return nil, err
	}
	return &PricingOutput{Price: utils.RoundTo(p, 4), Mode: "dated"}, nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  bondcalc price < input.json")
	fmt.Fprintln(w, "  bondcalc price -input /path/to/input.json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read a bond and a zero curve, a flat yield, or dated cashflows")
	fmt.Fprintln(w, "(with settlement and yield) as JSON, output the price (4 decimals)")
	fmt.Fprintln(w, "as JSON to stdout.")
}

func writeError(stdout io.Writer, msg string) int {
	output := PricingOutput{Error: msg}
	outputBytes, _ := json.Marshal(output)
	fmt.Fprintln(stdout, string(outputBytes))
	return 1
}

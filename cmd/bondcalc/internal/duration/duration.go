package duration

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/meenmo/fixedincome/bond"
	"github.com/meenmo/fixedincome/cmd/bondcalc/internal/cliio"
)

// StatsInput defines the JSON input schema for duration statistics.
//
// yield is a flat rate compounded at the bond's payment frequency,
// as a decimal (e.g., 0.05 for 5%).
type StatsInput struct {
	cliio.BondInput

	Yield float64 `json:"yield"`
}

type StatsOutput struct {
	Price            float64 `json:"price"`
	MacaulayDuration float64 `json:"macaulay_duration"`
	ModifiedDuration float64 `json:"modified_duration"`
	Error            string  `json:"error,omitempty"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("duration", flag.ContinueOnError)
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

	var input StatsInput
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

func calculate(input StatsInput, logger *logrus.Logger) (*StatsOutput, error) {
	b := input.Bond()
	if err := b.Validate(); err != nil {
		return nil, err
	}

	logger.Debugf("duration stats: tenor=%v freq=%d coupon=%v yield=%v", b.TenorYears, b.PaymentFrequency, b.AnnualCouponRate, input.Yield)

	stats, err := bond.Statistics(b, input.Yield)
	if err != nil {
		return nil, err
	}
	return &StatsOutput{
		Price:            stats.Price,
		MacaulayDuration: stats.MacaulayDuration,
		ModifiedDuration: stats.ModifiedDuration,
	}, nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  bondcalc duration < input.json")
	fmt.Fprintln(w, "  bondcalc duration -input /path/to/input.json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read a bond and a flat yield as JSON, output price, Macaulay")
	fmt.Fprintln(w, "duration, and modified duration (4 decimals) as JSON to stdout.")
}

func writeError(stdout io.Writer, msg string) int {
	output := StatsOutput{Error: msg}
	outputBytes, _ := json.Marshal(output)
	fmt.Fprintln(stdout, string(outputBytes))
	return 1
}

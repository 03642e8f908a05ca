package convert

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/meenmo/fixedincome/cmd/bondcalc/internal/cliio"
	"github.com/meenmo/fixedincome/rates"
)

// ConvertInput defines the JSON input schema for rate conversion.
//
// direction is "simple_to_compounded" or "compounded_to_simple"; rate is a
// decimal, tenor in years, frequency in compounding periods per year.
type ConvertInput struct {
	Rate       float64 `json:"rate"`
	TenorYears float64 `json:"tenor_years"`
	Frequency  int     `json:"frequency"`
	Direction  string  `json:"direction"`
}

type ConvertOutput struct {
	Rate  float64 `json:"rate"`
	Error string  `json:"error,omitempty"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
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

	var input ConvertInput
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

func calculate(input ConvertInput, logger *logrus.Logger) (*ConvertOutput, error) {
	logger.Debugf("converting %s: rate=%v tenor=%v freq=%d", input.Direction, input.Rate, input.TenorYears, input.Frequency)

	var (
		out float64
		err error
	)
	switch strings.ToLower(strings.TrimSpace(input.Direction)) {
	case "simple_to_compounded":
		out, err = rates.SimpleToCompounded(input.Rate, input.TenorYears, input.Frequency)
	case "compounded_to_simple":
		out, err = rates.CompoundedToSimple(input.Rate, input.TenorYears, input.Frequency)
	default:
		return nil, fmt.Errorf("invalid direction %q (use simple_to_compounded or compounded_to_simple)", input.Direction)
	}
	if err != nil {
		return nil, err
	}
	return &ConvertOutput{Rate: out}, nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  bondcalc convert < input.json")
	fmt.Fprintln(w, "  bondcalc convert -input /path/to/input.json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert between simple and periodically-compounded rates.")
}

func writeError(stdout io.Writer, msg string) int {
	output := ConvertOutput{Error: msg}
	outputBytes, _ := json.Marshal(output)
	fmt.Fprintln(stdout, string(outputBytes))
	return 1
}

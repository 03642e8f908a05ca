package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/fixedincome/cmd/bondcalc/internal/convert"
	"github.com/meenmo/fixedincome/cmd/bondcalc/internal/duration"
	"github.com/meenmo/fixedincome/cmd/bondcalc/internal/price"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "price":
		return price.Run(args[1:], stdin, stdout, stderr)
	case "duration":
		return duration.Run(args[1:], stdin, stdout, stderr)
	case "convert":
		return convert.Run(args[1:], stdin, stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bondcalc <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  price     Bond price from a zero curve or a flat yield")
	fmt.Fprintln(w, "  duration  Macaulay/modified duration and price at a flat yield")
	fmt.Fprintln(w, "  convert   Simple <-> compounded rate conversion")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `bondcalc <command> -h` for command-specific help.")
}

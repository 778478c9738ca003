package main

import (
	"flag"
	"fmt"
	"io"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

const usageHeader = `Usage: booltable [flags]

Prints the truth table of equations such as "A AND (B OR C) = Z", read from -e or one per
line from stdin. Operators share one precedence level and group to the right. The output
variable must be the last token: "A = B C" is rejected.

Flags:
`

type cliConfig struct {
	Equation  string
	Format    string
	Program   bool
	Classify  bool
	SuitePath string
	Output    string
	Save      bool
	MaxInputs int
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("booltable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageHeader)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Equation, "e", "", "Evaluate a single equation and exit")
	fs.StringVar(&cfg.Format, "format", formatMarkdown, "Output format: markdown or json")
	fs.BoolVar(&cfg.Program, "program", false, "Print the compiled stack program before the table")
	fs.BoolVar(&cfg.Classify, "classify", false, "Print whether the equation is a tautology, contradiction or contingent")
	fs.StringVar(&cfg.SuitePath, "suite", "", "Run an equation suite YAML file and exit")
	fs.StringVar(&cfg.Output, "output", "", "Also write the suite summary as JSON to this path")
	fs.BoolVar(&cfg.Save, "save", false, "Store every evaluation in the backend selected by STORAGE_TYPE")
	fs.IntVar(&cfg.MaxInputs, "max-inputs", 0, "Reject equations with more input variables (0 = evaluator limit)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Format != formatMarkdown && cfg.Format != formatJSON {
		return cfg, fmt.Errorf("unknown format %q, expected %s or %s", cfg.Format, formatMarkdown, formatJSON)
	}
	if cfg.MaxInputs < 0 {
		return cfg, fmt.Errorf("max-inputs must not be negative")
	}
	return cfg, nil
}

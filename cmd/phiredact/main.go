package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/scrubworks/phiredact"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	output := flag.String("o", "", "output file path (single input only)")
	configPath := flag.String("c", "", "config file path")
	flag.Usage = usage
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		usage()
		os.Exit(2)
	}
	if *output != "" && len(inputs) > 1 {
		fmt.Fprintln(os.Stderr, "error: -o cannot be combined with multiple inputs")
		os.Exit(2)
	}

	if *configPath == "" {
		*configPath = os.Getenv("PHIREDACT_CONFIG")
	}

	// Each workbook is an independent run: one file failing does not stop
	// the batch, and cannot corrupt another file's output.
	failures := 0
	for _, input := range inputs {
		result, err := phiredact.Redact(input, *output, *configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", input, err)
			failures++
			continue
		}
		fmt.Printf("Redacted file: %s\n", result.OutputPath)
		fmt.Printf("Report: %s\n", result.ReportPath)
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: phiredact [flags] <input.xlsx> [more inputs...]

Redacts PHI from Excel workbooks and writes a detection report.

Flags:
  -o path   output file path (only with a single input)
  -c path   config file path (default: built-in configuration,
            or PHIREDACT_CONFIG from the environment / .env)
`)
}

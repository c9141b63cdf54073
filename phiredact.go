// Package phiredact detects and redacts PHI in spreadsheet workbooks: a
// pattern-based entity analyzer plus column-name heuristics, with span
// merging, confidence thresholds, and an audit trail of every replacement.
package phiredact

import (
	"github.com/scrubworks/phiredact/core"
)

// Result summarizes a completed workbook redaction.
type Result struct {
	OutputPath string
	ReportPath string
	Detections []core.Detection
}

// Redact runs the full pipeline over one workbook: load config (or defaults
// when configPath is empty), detect and redact, save the output workbook, and
// write the detection report next to it.
func Redact(inputPath, outputPath, configPath string) (*Result, error) {
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	engine, err := core.NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	defer engine.Close()

	out, report, err := engine.RedactWorkbook(inputPath, outputPath)
	if err != nil {
		return nil, err
	}

	return &Result{
		OutputPath: out,
		ReportPath: report,
		Detections: engine.Detections(),
	}, nil
}

// RedactText runs the per-cell pipeline over a single string, without any
// workbook involved. Useful for spot checks and for serving the engine over
// other transports.
func RedactText(text, configPath string) (string, error) {
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return "", err
	}

	engine, err := core.NewEngine(cfg)
	if err != nil {
		return "", err
	}
	defer engine.Close()

	redacted, _, err := engine.RedactCell(text)
	if err != nil {
		return "", err
	}
	return redacted, nil
}

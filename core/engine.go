package core

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// defaultLogPath is where the run logger writes unless overridden.
const defaultLogPath = "redaction.log"

// columnPHIType tags whole-column redactions in the detection log.
const columnPHIType = "COLUMN_PHI"

// Detection is one audit record: where something was redacted and what it
// was classified as. Only the length of the original value is recorded,
// never its content.
type Detection struct {
	Sheet          string
	Row            int
	Column         int
	EntityType     string
	Confidence     float64
	OriginalLength int
}

// Engine redacts PHI from spreadsheet workbooks. It holds an immutable
// configuration, the analyzer compiled from it, and the detection log of the
// current run.
//
// An Engine is not safe for concurrent RedactWorkbook calls: the detection
// log is reset at the start of each run and appended to throughout it.
type Engine struct {
	cfg        *Config
	analyzer   Analyzer
	log        *RunLogger
	detections []Detection
}

// NewEngine builds an engine with the built-in pattern analyzer. The
// analyzer registry is compiled here, from the config; a bad config fails
// construction rather than the first cell.
func NewEngine(cfg *Config) (*Engine, error) {
	return NewEngineWithAnalyzer(cfg, nil)
}

// NewEngineWithAnalyzer builds an engine around a caller-supplied analyzer,
// letting an NER-backed recognizer replace the pattern registry. A nil
// analyzer falls back to the built-in PatternAnalyzer.
func NewEngineWithAnalyzer(cfg *Config, analyzer Analyzer) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if analyzer == nil {
		var err error
		analyzer, err = NewPatternAnalyzer(cfg)
		if err != nil {
			return nil, err
		}
	}
	return &Engine{
		cfg:      cfg,
		analyzer: analyzer,
		log:      NewRunLogger(defaultLogPath),
	}, nil
}

// UpdateConfig replaces the engine's configuration and rebuilds the analyzer
// from it. Pure reconstruction: nothing compiled from the old config
// survives.
func (e *Engine) UpdateConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	analyzer, err := NewPatternAnalyzer(cfg)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.analyzer = analyzer
	return nil
}

// Config returns the engine's active configuration.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Detections returns the detection log of the most recent run.
func (e *Engine) Detections() []Detection {
	return e.detections
}

// RedactWorkbook loads the input workbook, redacts every sheet, saves the
// result, and writes the detection report. It returns the output and report
// paths.
//
// If outputPath is empty it is derived as <input base><output_suffix>.xlsx.
// Both the workbook save and the report save are wrapped in a backup/restore
// cycle: an existing file at the target path is renamed to a .backup sibling
// first, deleted after a successful save, and restored if the save fails.
func (e *Engine) RedactWorkbook(inputPath, outputPath string) (string, string, error) {
	e.detections = nil
	e.log.Event("run_start", map[string]string{"input": inputPath})

	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + e.cfg.OutputSuffix + ".xlsx"
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return "", "", newEngineError(CategoryInput, "failed to open workbook %s: %w", inputPath, err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		if err := e.redactSheet(f, sheet); err != nil {
			return "", "", err
		}
	}

	if err := e.replaceWithBackup(outputPath, func() error {
		return f.SaveAs(outputPath)
	}); err != nil {
		return "", "", newEngineError(CategoryOutput, "failed to save workbook %s: %w", outputPath, err)
	}

	reportPath := reportPathFor(outputPath)
	if err := e.replaceWithBackup(reportPath, func() error {
		return writeReport(reportPath, inputPath, outputPath, e.detections)
	}); err != nil {
		return "", "", newEngineError(CategoryOutput, "failed to write report %s: %w", reportPath, err)
	}

	e.log.Event("run_complete", map[string]string{
		"output":     outputPath,
		"report":     reportPath,
		"detections": strconv.Itoa(len(e.detections)),
	})
	return outputPath, reportPath, nil
}

// redactSheet classifies the sheet's columns from its header row and routes
// every cell: flagged columns are replaced wholesale below the header,
// everything else that holds text goes through per-cell detection.
// Detection records append in row-major order, matching iteration exactly.
func (e *Engine) redactSheet(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return newEngineError(CategoryInput, "failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil
	}

	flags := classifyColumns(rows[0], e.cfg.ColumnRedactionHints)
	for i, flagged := range flags {
		if flagged {
			e.log.Event("column_flagged", map[string]string{
				"sheet":  sheet,
				"column": strconv.Itoa(i + 1),
				"header": rows[0][i],
			})
		}
	}

	for rowIdx, row := range rows {
		rowNum := rowIdx + 1
		for colIdx, value := range row {
			colNum := colIdx + 1
			if value == "" {
				continue
			}

			if colIdx < len(flags) && flags[colIdx] && rowNum > 1 {
				// Deterministic column policy, not a probabilistic match.
				e.detections = append(e.detections, Detection{
					Sheet:          sheet,
					Row:            rowNum,
					Column:         colNum,
					EntityType:     columnPHIType,
					Confidence:     1.0,
					OriginalLength: len(value),
				})
				if err := e.setCell(f, sheet, colNum, rowNum, Anonymize(value, columnPHIType, e.cfg.AnonymizationStrategy)); err != nil {
					return err
				}
				continue
			}

			isText, err := e.isTextCell(f, sheet, colNum, rowNum)
			if err != nil {
				return err
			}
			if !isText {
				continue
			}

			redacted, merged, err := e.RedactCell(value)
			if err != nil {
				return err
			}
			for _, s := range merged {
				e.detections = append(e.detections, Detection{
					Sheet:          sheet,
					Row:            rowNum,
					Column:         colNum,
					EntityType:     s.EntityType,
					Confidence:     s.Score,
					OriginalLength: s.End - s.Start,
				})
			}
			if redacted != value {
				if err := e.setCell(f, sheet, colNum, rowNum, redacted); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// isTextCell reports whether a cell holds a string value. Numbers, booleans,
// dates, and formulas pass through span-level scanning untouched.
func (e *Engine) isTextCell(f *excelize.File, sheet string, col, row int) (bool, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, newEngineError(CategoryInput, "bad cell coordinates (%d, %d): %w", col, row, err)
	}
	ct, err := f.GetCellType(sheet, cell)
	if err != nil {
		return false, newEngineError(CategoryInput, "failed to read cell %s!%s: %w", sheet, cell, err)
	}
	return ct == excelize.CellTypeSharedString || ct == excelize.CellTypeInlineString, nil
}

func (e *Engine) setCell(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return newEngineError(CategoryOutput, "bad cell coordinates (%d, %d): %w", col, row, err)
	}
	if err := f.SetCellStr(sheet, cell, value); err != nil {
		return newEngineError(CategoryOutput, "failed to write cell %s!%s: %w", sheet, cell, err)
	}
	return nil
}

// replaceWithBackup runs write() under the backup discipline: an existing
// file at path is renamed aside first, removed on success, restored on
// failure. Backup cleanup is best-effort and only logged; the write error is
// what propagates.
func (e *Engine) replaceWithBackup(path string, write func() error) error {
	backup := path + ".backup"
	haveBackup := false

	if _, err := os.Stat(path); err == nil {
		os.Remove(backup)
		if err := os.Rename(path, backup); err != nil {
			e.log.Event("backup_failed", map[string]string{"path": path, "error": err.Error()})
		} else {
			haveBackup = true
			e.log.Event("backup_created", map[string]string{"path": backup})
		}
	}

	if err := write(); err != nil {
		if haveBackup {
			if rerr := os.Rename(backup, path); rerr != nil {
				e.log.Event("restore_failed", map[string]string{"path": path, "error": rerr.Error()})
			} else {
				e.log.Event("backup_restored", map[string]string{"path": path})
			}
		}
		return err
	}

	if haveBackup {
		if err := os.Remove(backup); err != nil {
			e.log.Event("backup_cleanup_failed", map[string]string{"path": backup, "error": err.Error()})
		}
	}
	return nil
}

// Close releases the engine's run logger.
func (e *Engine) Close() {
	e.log.Close()
}

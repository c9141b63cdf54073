package core

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// reportPathFor derives the detection report path from the redacted workbook
// path.
func reportPathFor(outputPath string) string {
	if strings.HasSuffix(outputPath, ".xlsx") {
		return strings.TrimSuffix(outputPath, ".xlsx") + "_report.csv"
	}
	return outputPath + "_report.csv"
}

// writeReport serializes the detection log as CSV. One shared timestamp per
// run; confidence formatted to two decimals; never any original cell content.
func writeReport(path, inputPath, outputPath string, detections []Detection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"Timestamp", "Input_File", "Output_File", "Sheet",
		"Row", "Column", "Entity_Type", "Confidence",
	}); err != nil {
		f.Close()
		return err
	}

	timestamp := time.Now().Format(time.RFC3339)
	for _, d := range detections {
		record := []string{
			timestamp,
			filepath.Base(inputPath),
			filepath.Base(outputPath),
			d.Sheet,
			strconv.Itoa(d.Row),
			strconv.Itoa(d.Column),
			d.EntityType,
			fmt.Sprintf("%.2f", d.Confidence),
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package phiredact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRedactTextDefaults(t *testing.T) {
	out, err := RedactText("My email is jane.doe@example.com", "")
	require.NoError(t, err)

	assert.Equal(t, "My email is <EMAIL_ADDRESS>", out)
}

func TestRedactTextBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("anonymization_strategy: scramble\n"), 0644))

	_, err := RedactText("anything", path)
	assert.Error(t, err)
}

func TestRedactWorkbookEndToEnd(t *testing.T) {
	dir := t.TempDir()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Patient_Name"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Comment"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Maria Gonzalez"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "SSN is 123-45-6789"))
	input := filepath.Join(dir, "intake.xlsx")
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("confidence_threshold: 0.5\n"), 0644))

	result, err := Redact(input, "", configPath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "intake_redacted.xlsx"), result.OutputPath)
	assert.FileExists(t, result.ReportPath)
	assert.NotEmpty(t, result.Detections)

	out, err := excelize.OpenFile(result.OutputPath)
	require.NoError(t, err)
	defer out.Close()

	name, err := out.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "<COLUMN_PHI>", name)

	comment, err := out.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "SSN is <US_SSN>", comment)
}

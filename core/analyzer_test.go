package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T) *PatternAnalyzer {
	t.Helper()
	a, err := NewPatternAnalyzer(DefaultConfig())
	require.NoError(t, err)
	return a
}

func analyze(t *testing.T, a *PatternAnalyzer, text string) []EntitySpan {
	t.Helper()
	spans, err := a.Analyze(text, DefaultConfig().EnabledEntities, "en", 0)
	require.NoError(t, err)
	return spans
}

func spanTexts(text string, spans []EntitySpan, entityType string) []string {
	var out []string
	for _, s := range spans {
		if s.EntityType == entityType {
			out = append(out, text[s.Start:s.End])
		}
	}
	return out
}

func TestAnalyzerEmail(t *testing.T) {
	a := newTestAnalyzer(t)
	text := "reach me at jane.doe@example.com please"

	spans := analyze(t, a, text)

	assert.Contains(t, spanTexts(text, spans, "EMAIL_ADDRESS"), "jane.doe@example.com")
}

func TestAnalyzerSSN(t *testing.T) {
	a := newTestAnalyzer(t)
	text := "SSN 123-45-6789 on file"

	spans := analyze(t, a, text)

	assert.Contains(t, spanTexts(text, spans, "US_SSN"), "123-45-6789")
}

func TestAnalyzerMRN(t *testing.T) {
	a := newTestAnalyzer(t)
	text := "record AB123456 opened"

	spans := analyze(t, a, text)

	texts := spanTexts(text, spans, "MEDICAL_RECORD_NUMBER")
	require.Len(t, texts, 1)
	assert.Equal(t, "AB123456", texts[0])
}

// A context word near a match boosts its score, capped at 1.0.
func TestAnalyzerContextBoost(t *testing.T) {
	a := newTestAnalyzer(t)

	plain := analyze(t, a, "value AB123456 here")
	boosted := analyze(t, a, "MRN: AB123456 here")

	var plainScore, boostedScore float64
	for _, s := range plain {
		if s.EntityType == "MEDICAL_RECORD_NUMBER" {
			plainScore = s.Score
		}
	}
	for _, s := range boosted {
		if s.EntityType == "MEDICAL_RECORD_NUMBER" {
			boostedScore = s.Score
		}
	}

	assert.Equal(t, 0.8, plainScore)
	assert.Greater(t, boostedScore, plainScore)
	assert.LessOrEqual(t, boostedScore, 1.0)
}

func TestAnalyzerDoctorTitle(t *testing.T) {
	a := newTestAnalyzer(t)

	for _, text := range []string{
		"seen by Dr. Kovacs today",
		"seen by doctor Ruiz-Ortega today",
	} {
		spans := analyze(t, a, text)

		var found bool
		for _, s := range spans {
			if s.EntityType == "PERSON" && s.Score >= 0.9 {
				found = true
			}
		}
		assert.True(t, found, "no high-confidence PERSON span in %q", text)
	}
}

func TestAnalyzerCommonNames(t *testing.T) {
	a := newTestAnalyzer(t)
	text := "follow up with fatima next week"

	spans := analyze(t, a, text)

	// Case-insensitive whole-word match at fixed 0.65.
	texts := spanTexts(text, spans, "PERSON")
	assert.Contains(t, texts, "fatima")
}

func TestAnalyzerPhoneVariants(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		text string
		want string
	}{
		{"call (555) 123-4567 now", "(555) 123-4567"},
		{"call 555-123-4567 now", "555-123-4567"},
		{"call +1-555-123-4567 now", "+1-555-123-4567"},
		{"call 555-1234 now", "555-1234"},
		{"phone: 5551234567", "phone: 5551234567"},
	}

	for _, tt := range tests {
		spans := analyze(t, a, tt.text)
		assert.Contains(t, spanTexts(tt.text, spans, "PHONE_NUMBER"), tt.want, "text %q", tt.text)
	}
}

// Only requested entity types come back.
func TestAnalyzerEntityFilter(t *testing.T) {
	a := newTestAnalyzer(t)
	text := "jane.doe@example.com or 555-123-4567"

	spans, err := a.Analyze(text, []string{"EMAIL_ADDRESS"}, "en", 0)
	require.NoError(t, err)

	require.NotEmpty(t, spans)
	for _, s := range spans {
		assert.Equal(t, "EMAIL_ADDRESS", s.EntityType)
	}
}

// The analyzer honors its threshold argument as an optimization.
func TestAnalyzerThreshold(t *testing.T) {
	a := newTestAnalyzer(t)
	text := "maybe 555-1234 is a phone"

	low, err := a.Analyze(text, []string{"PHONE_NUMBER"}, "en", 0.1)
	require.NoError(t, err)
	high, err := a.Analyze(text, []string{"PHONE_NUMBER"}, "en", 0.99)
	require.NoError(t, err)

	assert.NotEmpty(t, low)
	assert.GreaterOrEqual(t, len(low), len(high))
}

// Custom recognizers can be switched off wholesale.
func TestAnalyzerCustomDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomRecognizers.Enabled = false
	a, err := NewPatternAnalyzer(cfg)
	require.NoError(t, err)

	spans, err := a.Analyze("record AB123456", cfg.EnabledEntities, "en", 0)
	require.NoError(t, err)

	assert.Empty(t, spanTexts("record AB123456", spans, "MEDICAL_RECORD_NUMBER"))
}

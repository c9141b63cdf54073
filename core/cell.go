package core

import "strings"

// RedactCell runs one cell's text through the detection pipeline and returns
// the redacted text plus the merged spans that were replaced. The order is
// fixed: analyze, artifact filter, threshold filter, merge, splice.
//
// Splicing walks merged spans in descending start order so each replacement
// leaves earlier offsets in the original text valid.
func (e *Engine) RedactCell(text string) (string, []EntitySpan, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil, nil
	}

	threshold := e.cfg.ConfidenceThreshold
	spans, err := e.analyzer.Analyze(text, e.cfg.EnabledEntities, "en", threshold)
	if err != nil {
		return "", nil, &EngineError{Category: CategoryRecognition, Err: err}
	}
	if len(spans) == 0 {
		return text, nil, nil
	}

	spans = validSpans(text, spans)
	spans = FilterArtifacts(text, spans)
	spans = filterByScore(spans, threshold)
	merged := MergeSpans(spans)

	redacted := text
	for i := len(merged) - 1; i >= 0; i-- {
		s := merged[i]
		replacement := Anonymize(text[s.Start:s.End], s.EntityType, e.cfg.AnonymizationStrategy)
		redacted = redacted[:s.Start] + replacement + redacted[s.End:]
	}

	return redacted, merged, nil
}

// validSpans drops spans violating 0 <= start < end <= len(text). A swapped
// external analyzer must not be able to panic the splice.
func validSpans(text string, spans []EntitySpan) []EntitySpan {
	var kept []EntitySpan
	for _, s := range spans {
		if s.Start < 0 || s.End <= s.Start || s.End > len(text) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

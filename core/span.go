package core

import (
	"sort"
	"strings"
)

// EntitySpan is a detected entity over a half-open character range
// [Start, End) of some text, tagged with a type and a confidence score.
type EntitySpan struct {
	Start      int
	End        int
	EntityType string
	Score      float64
}

// artifactChars are structural delimiters from serialized data. A span whose
// matched text contains one of these almost certainly crossed a JSON boundary
// rather than landing on a genuine PHI token.
const artifactChars = `"{}[]:`

// FilterArtifacts drops spans whose matched substring contains structured-data
// punctuation. It must run before MergeSpans so a mis-scoped span cannot drag
// a legitimate neighbor into a merged range.
func FilterArtifacts(text string, spans []EntitySpan) []EntitySpan {
	var valid []EntitySpan
	for _, s := range spans {
		if strings.ContainsAny(text[s.Start:s.End], artifactChars) {
			continue
		}
		valid = append(valid, s)
	}
	return valid
}

// MergeSpans resolves a set of possibly overlapping spans into a minimal
// non-overlapping cover, sorted by start position.
//
// Spans are sorted by (start ascending, end descending) so that when two
// spans share a start the wider one becomes current first and cannot be
// truncated by a narrower one. Adjacent spans (next.Start == current.End)
// are merged too, so two detections with no separating text never produce
// two back-to-back replacement tokens.
//
// The merged span keeps the entity type of whichever span became current
// first and the maximum score of everything folded into it.
func MergeSpans(spans []EntitySpan) []EntitySpan {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]EntitySpan, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	merged := make([]EntitySpan, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if next.Start <= current.End {
			if next.End > current.End {
				current.End = next.End
			}
			if next.Score > current.Score {
				current.Score = next.Score
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged
}

// filterByScore drops spans scoring below threshold. This is the single
// authoritative threshold application; any threshold the analyzer itself
// honors is only an optimization.
func filterByScore(spans []EntitySpan, threshold float64) []EntitySpan {
	var kept []EntitySpan
	for _, s := range spans {
		if s.Score >= threshold {
			kept = append(kept, s)
		}
	}
	return kept
}

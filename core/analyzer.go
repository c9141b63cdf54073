package core

import (
	"regexp"
	"strings"
)

// Analyzer is the entity recognition port. Implementations return raw entity
// spans over text; the engine filters, merges, and redacts them. The built-in
// PatternAnalyzer is regex-based; an NER-backed implementation can be swapped
// in without touching the rest of the pipeline.
type Analyzer interface {
	Analyze(text string, entities []string, language string, scoreThreshold float64) ([]EntitySpan, error)
}

// Pattern pairs a compiled regex with the fixed confidence assigned to its
// matches.
type Pattern struct {
	Name  string
	Regex *regexp.Regexp
	Score float64
}

// PatternRecognizer detects one entity type through one or more patterns.
// Context words found near a match boost its confidence.
type PatternRecognizer struct {
	Name     string
	Entity   string
	Patterns []Pattern
	Context  []string
}

// Context-boost parameters: a context word within contextWindow bytes of a
// match raises its score by contextBoost, capped at 1.0.
const (
	contextBoost  = 0.35
	contextWindow = 50
)

// PatternAnalyzer is a closed, config-driven registry of pattern recognizers.
// The registry is compiled once at construction; replacing the configuration
// means building a new analyzer.
type PatternAnalyzer struct {
	recognizers []PatternRecognizer
}

// NewPatternAnalyzer compiles the recognizer registry for the given config:
// the base entity patterns plus, when enabled, the custom recognizer set.
func NewPatternAnalyzer(cfg *Config) (*PatternAnalyzer, error) {
	recognizers := baseRecognizers()

	if cfg.CustomRecognizers.Enabled {
		custom, err := customRecognizers(cfg)
		if err != nil {
			return nil, err
		}
		recognizers = append(recognizers, custom...)
	}

	return &PatternAnalyzer{recognizers: recognizers}, nil
}

// Analyze runs every registered recognizer whose entity type was requested
// and returns the raw (unmerged, possibly overlapping) spans. The threshold
// is honored here as an optimization; the engine re-applies it
// authoritatively after context boosting and filtering.
func (a *PatternAnalyzer) Analyze(text string, entities []string, language string, scoreThreshold float64) ([]EntitySpan, error) {
	wanted := make(map[string]bool, len(entities))
	for _, e := range entities {
		wanted[e] = true
	}
	lower := strings.ToLower(text)

	var spans []EntitySpan
	for _, rec := range a.recognizers {
		if len(entities) > 0 && !wanted[rec.Entity] {
			continue
		}
		for _, p := range rec.Patterns {
			for _, loc := range p.Regex.FindAllStringIndex(text, -1) {
				score := p.Score
				if hasNearbyContext(lower, loc[0], loc[1], rec.Context) {
					score += contextBoost
					if score > 1.0 {
						score = 1.0
					}
				}
				if score < scoreThreshold {
					continue
				}
				spans = append(spans, EntitySpan{
					Start:      loc[0],
					End:        loc[1],
					EntityType: rec.Entity,
					Score:      score,
				})
			}
		}
	}
	return spans, nil
}

// hasNearbyContext reports whether any context word appears within
// contextWindow bytes around [start, end) of the lowercased text.
func hasNearbyContext(lower string, start, end int, context []string) bool {
	if len(context) == 0 {
		return false
	}
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(lower) {
		to = len(lower)
	}
	window := lower[from:to]
	for _, word := range context {
		if strings.Contains(window, word) {
			return true
		}
	}
	return false
}

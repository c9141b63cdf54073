package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Strategy selects how a detected value is rewritten.
type Strategy string

const (
	// StrategyReplace rewrites every value of a given entity type to the
	// same fixed placeholder. Irreversible and non-unique.
	StrategyReplace Strategy = "replace"

	// StrategyHash rewrites a value to a placeholder carrying a short stable
	// digest of the original text, so repeated occurrences of the same value
	// stay correlatable across cells without being revealed. The digest is
	// for audit correlation only, not a cryptographic guarantee.
	StrategyHash Strategy = "hash"
)

// Anonymize converts a detected value into its replacement token.
func Anonymize(text, entityType string, strategy Strategy) string {
	if strategy == StrategyHash {
		sum := sha256.Sum256([]byte(text))
		return fmt.Sprintf("<%s_%s>", entityType, hex.EncodeToString(sum[:])[:8])
	}
	return fmt.Sprintf("<%s>", entityType)
}

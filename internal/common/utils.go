// Package common holds small helpers shared by the CLI actions.
package common

import (
	"crypto/sha256"
	"fmt"
)

// ContentHash computes the SHA256 hash of content and returns it as a hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// RunKey derives the cache key for an analyze run from its effective inputs.
// Top-k participates because it changes the graph model, not just the counts.
func RunKey(vocabText, researchText string, topK int) string {
	return ContentHash(fmt.Appendf(nil, "%s\x00%s\x00%d", vocabText, researchText, topK))
}

// ShortHash truncates a content hash for display in tables and logs.
func ShortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12]
}

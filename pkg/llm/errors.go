package llm

import (
	"errors"
	"strings"
)

// Generation failures are surfaced to callers as one of these sentinels so the
// pipeline can pick the matching canned user message. Retrieval-side errors
// never reach this taxonomy.
var (
	// ErrRateLimited signals the backend rejected the call due to throttling.
	ErrRateLimited = errors.New("llm: rate limited")

	// ErrInvalidInput signals the backend rejected the request payload
	// (malformed image, oversized prompt, unsupported content).
	ErrInvalidInput = errors.New("llm: invalid input")
)

// Classify maps a provider HTTP failure to the matching sentinel, or nil when
// the failure has no dedicated category. Body inspection mirrors the upstream
// error strings, which are not stable enough to parse structurally.
func Classify(statusCode int, body string) error {
	lower := strings.ToLower(body)
	switch {
	case statusCode == 429 || strings.Contains(lower, "rate_limit"):
		return ErrRateLimited
	case statusCode == 400 || strings.Contains(lower, "invalid"):
		return ErrInvalidInput
	default:
		return nil
	}
}

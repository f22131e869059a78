package llm

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       error
	}{
		{"429 status", 429, "", ErrRateLimited},
		{"rate_limit in body", 500, `{"error":{"code":"rate_limit_exceeded"}}`, ErrRateLimited},
		{"400 status", 400, "", ErrInvalidInput},
		{"invalid in body", 422, `{"error":"invalid image format"}`, ErrInvalidInput},
		{"rate limit outranks invalid", 429, "invalid", ErrRateLimited},
		{"plain server error", 500, "internal error", nil},
		{"success range unused", 200, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.statusCode, tt.body); got != tt.want {
				t.Errorf("Classify(%d, %q) = %v, want %v", tt.statusCode, tt.body, got, tt.want)
			}
		})
	}
}

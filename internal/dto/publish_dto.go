package dto

import "github.com/google/uuid"

// EmbedDocumentMessage is the ingest queue payload. Kind selects the target
// collection so one worker serves both manual chunks and common issues.
type EmbedDocumentMessage struct {
	Kind string    `json:"kind"` // "manual" | "issue"
	Id   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

const (
	EmbedKindManual = "manual"
	EmbedKindIssue  = "issue"
)

// ChatProcessedMessage is published after every handled chat turn and
// persisted asynchronously for usage analysis.
type ChatProcessedMessage struct {
	CallerId      string `json:"caller_id"`
	Category      string `json:"category"`
	Message       string `json:"message"`
	ResponseChars int    `json:"response_chars"`
	DurationMs    int64  `json:"duration_ms"`
}

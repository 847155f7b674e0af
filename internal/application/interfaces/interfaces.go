package interfaces

import (
	"context"

	"github.com/hireline/screener-backend/internal/application/dto"
)

// ChatModel is a single-turn completion call against an LLM provider.
type ChatModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// TextExtractor turns a resume document on disk into plain text.
type TextExtractor interface {
	ExtractFile(path string) (string, error)
}

// CandidateSource loads candidate records for the dashboard queries.
type CandidateSource interface {
	Load(ctx context.Context) ([]dto.CandidateRecord, error)
}

// CandidateSink persists extracted records outside the CSV, e.g. Postgres.
type CandidateSink interface {
	Upsert(ctx context.Context, rec dto.CandidateRecord) error
}

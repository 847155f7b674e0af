package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hireline/screener-backend/internal/application/dto"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id              uuid PRIMARY KEY,
	resume_filename text NOT NULL UNIQUE,
	candidate_name  text NOT NULL,
	email           text NOT NULL DEFAULT '',
	overall_score   double precision NOT NULL DEFAULT 0,
	payload         jsonb NOT NULL,
	created_at      timestamptz NOT NULL DEFAULT now(),
	updated_at      timestamptz NOT NULL DEFAULT now()
)`

// CandidateRepo persists candidate records in Postgres. The full record
// lives in a jsonb payload so schema churn in the extraction fields never
// needs a migration, with the columns the dashboard filters on broken out.
type CandidateRepo struct {
	pool *pgxpool.Pool
}

func NewCandidateRepo(ctx context.Context, cfg Config) (*CandidateRepo, error) {
	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	return &CandidateRepo{pool: pool}, nil
}

func (r *CandidateRepo) Upsert(ctx context.Context, rec dto.CandidateRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record %s: %w", rec.ResumeFilename, err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO candidates (id, resume_filename, candidate_name, email, overall_score, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (resume_filename) DO UPDATE SET
			candidate_name = EXCLUDED.candidate_name,
			email          = EXCLUDED.email,
			overall_score  = EXCLUDED.overall_score,
			payload        = EXCLUDED.payload,
			updated_at     = now()`,
		uuid.New(), rec.ResumeFilename, rec.CandidateName, rec.Email, rec.OverallScore, payload)
	if err != nil {
		return fmt.Errorf("upserting %s: %w", rec.ResumeFilename, err)
	}
	return nil
}

func (r *CandidateRepo) Load(ctx context.Context) ([]dto.CandidateRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT payload FROM candidates ORDER BY overall_score DESC`)
	if err != nil {
		return nil, fmt.Errorf("loading candidates: %w", err)
	}
	defer rows.Close()

	var recs []dto.CandidateRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var rec dto.CandidateRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decoding candidate payload: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *CandidateRepo) Close() {
	r.pool.Close()
}

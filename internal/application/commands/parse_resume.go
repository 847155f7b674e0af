package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/hireline/screener-backend/internal/application/dto"
	"github.com/hireline/screener-backend/internal/application/errs"
	"github.com/hireline/screener-backend/internal/application/interfaces"
	"github.com/hireline/screener-backend/internal/infra/client"
)

const parseAttempts = 3

// ParseResume sends one resume's text to the model and decodes the structured
// candidate record out of the reply.
type ParseResume struct {
	model interfaces.ChatModel
	gate  *RateGate
	sleep func(time.Duration)
}

func NewParseResume(model interfaces.ChatModel, gate *RateGate) *ParseResume {
	return &ParseResume{
		model: model,
		gate:  gate,
		sleep: time.Sleep,
	}
}

func (c *ParseResume) Execute(ctx context.Context, filename, resumeText string) (*dto.CandidateRecord, error) {
	prompt := buildPrompt(filename, resumeText)
	var lastErr error

	for attempt := 1; attempt <= parseAttempts; attempt++ {
		if c.gate != nil {
			c.gate.Wait()
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slog.Info("sending resume to model", "file", filename, "model", c.model.Name(), "attempt", attempt)

		raw, err := c.model.Complete(ctx, prompt)
		if err != nil {
			lastErr = err
			if errs.IsRetryable(err) && attempt < parseAttempts {
				wait := time.Duration(10*attempt) * time.Second
				slog.Warn("provider error, backing off", "file", filename, "wait", wait, "err", err)
				c.sleep(wait)
				continue
			}
			return nil, err
		}

		rec, err := decodeRecord(raw)
		if err != nil {
			lastErr = errs.ValidationError{Err: err}
			if attempt < parseAttempts {
				// some models need the literal field list spelled out
				slog.Warn("response failed validation, retrying with strict prompt", "file", filename, "err", err)
				prompt = buildPrompt(filename, resumeText) + strictSuffix()
				continue
			}
			return nil, lastErr
		}

		normalizeRecord(rec, filename)
		return rec, nil
	}
	return nil, lastErr
}

func decodeRecord(raw string) (*dto.CandidateRecord, error) {
	clean := client.CleanJSON(raw)
	if clean == "" {
		return nil, fmt.Errorf("empty response from model")
	}
	var rec dto.CandidateRecord
	if err := json.Unmarshal([]byte(clean), &rec); err != nil {
		return nil, fmt.Errorf("json unmarshal error: %w", err)
	}
	if strings.TrimSpace(rec.CandidateName) == "" {
		return nil, fmt.Errorf("missing candidate_name in response")
	}
	return &rec, nil
}

// normalizeRecord pins the filename to the actual file and fills in
// overall_score when the model leaves it out.
func normalizeRecord(rec *dto.CandidateRecord, filename string) {
	rec.ResumeFilename = filename
	if rec.OverallScore > 0 {
		return
	}
	sum := 0
	for _, s := range rec.AggregateScores() {
		sum += s
	}
	if sum > 0 {
		mean := float64(sum) / 6.0
		rec.OverallScore = math.Round(mean*10) / 10
	}
}

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hireline/screener-backend/internal/application/consts"
	"github.com/hireline/screener-backend/internal/application/dto"
	"github.com/hireline/screener-backend/internal/application/interfaces"
	"github.com/hireline/screener-backend/internal/infra/scan"
	"github.com/hireline/screener-backend/internal/infra/store"
)

const (
	defaultWorkers = 4
	saveEvery      = 20
)

// ExtractBatch runs the extraction pipeline over every resume under a
// directory: discover documents, skip ones already in the output CSV, fan the
// rest out to a worker pool, and checkpoint results as they come in.
type ExtractBatch struct {
	parser    *ParseResume
	extractor interfaces.TextExtractor
	sink      interfaces.CandidateSink
}

// NewExtractBatch wires the batch command. sink may be nil when no database
// is configured.
func NewExtractBatch(parser *ParseResume, extractor interfaces.TextExtractor, sink interfaces.CandidateSink) *ExtractBatch {
	return &ExtractBatch{
		parser:    parser,
		extractor: extractor,
		sink:      sink,
	}
}

type outcome struct {
	path string
	rec  *dto.CandidateRecord
	err  error
}

func (c *ExtractBatch) Execute(ctx context.Context, req dto.ExtractBatchRequest) (*dto.ExtractBatchSummary, error) {
	runID := uuid.New().String()
	out := req.OutputFile
	tmp := out + ".tmp"
	errorsFile := store.ErrorsFile(out)

	results, processed := loadExisting(out, tmp)
	if len(processed) > 0 {
		slog.Info("resuming from existing output", "run", runID, "already_processed", len(processed))
	}

	docs, err := scan.FindResumeDocs(req.Directory)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", req.Directory, err)
	}

	queue := make([]string, 0, len(docs))
	for _, path := range docs {
		if !processed[filepath.Base(path)] {
			queue = append(queue, path)
		}
	}
	if req.Sample > 0 {
		remaining := req.Sample - len(processed)
		if remaining < 0 {
			remaining = 0
		}
		if len(queue) > remaining {
			queue = queue[:remaining]
		}
	}

	summary := &dto.ExtractBatchSummary{
		RunID:      runID,
		Found:      len(docs),
		Skipped:    len(docs) - len(queue),
		Attempted:  len(queue),
		OutputFile: out,
	}
	slog.Info("starting extraction", "run", runID,
		"found", len(docs), "already_processed", len(processed), "to_process", len(queue))

	if len(queue) == 0 {
		slog.Info("no new resumes to process", "run", runID)
		return summary, nil
	}

	workers := req.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	jobs := make(chan string)
	outcomes := make(chan outcome)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := ctx.Err(); err != nil {
					outcomes <- outcome{path: path, err: err}
					continue
				}
				rec, err := c.processOne(ctx, path)
				outcomes <- outcome{path: path, rec: rec, err: err}
			}
		}()
	}
	go func() {
		for _, path := range queue {
			jobs <- path
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var report []dto.ExtractionError
	completed := 0
	for o := range outcomes {
		completed++
		filename := filepath.Base(o.path)

		if o.err != nil {
			summary.Failed++
			report = append(report, dto.ExtractionError{
				ResumeFilename: filename,
				DocumentPath:   o.path,
				ErrorTime:      time.Now().Format("2006-01-02 15:04:05"),
				ErrorReason:    o.err.Error(),
			})
			slog.Warn("resume failed", "run", runID, "file", filename, "err", o.err)
		} else {
			summary.Succeeded++
			results = append(results, *o.rec)
			if c.sink != nil {
				if err := c.sink.Upsert(ctx, *o.rec); err != nil {
					slog.Warn("database upsert failed", "file", filename, "err", err)
				}
			}
			slog.Info("resume processed", "run", runID, "file", filename,
				"progress", fmt.Sprintf("%d/%d", completed, len(queue)))
		}

		if completed%saveEvery == 0 {
			if err := store.WriteRecords(tmp, results); err != nil {
				slog.Warn("failed to save intermediate results", "err", err)
			}
			if err := store.WriteErrors(errorsFile, report); err != nil {
				slog.Warn("failed to save error report", "err", err)
			}
		}
	}

	if ctx.Err() != nil {
		// save what we have before bailing out
		interrupted := out + ".interrupted"
		if err := store.WriteRecords(interrupted, results); err == nil {
			slog.Info("partial results saved", "file", interrupted)
		}
		return summary, ctx.Err()
	}

	if len(results) > 0 {
		if err := store.WriteRecords(out, results); err != nil {
			return summary, fmt.Errorf("saving results: %w", err)
		}
		_ = os.Remove(tmp)
	}
	if err := store.WriteErrors(errorsFile, report); err != nil {
		slog.Warn("failed to save error report", "err", err)
	}
	if len(report) > 0 {
		summary.ErrorsFile = errorsFile
	}
	if summary.Attempted > 0 {
		rate := float64(summary.Succeeded) / float64(summary.Attempted) * 100
		summary.SuccessRate = math.Round(rate*10) / 10
	}

	slog.Info("extraction finished", "run", runID, "attempted", summary.Attempted,
		"succeeded", summary.Succeeded, "failed", summary.Failed, "output", out)
	return summary, nil
}

func (c *ExtractBatch) processOne(ctx context.Context, path string) (*dto.CandidateRecord, error) {
	text, err := c.extractor.ExtractFile(path)
	if err != nil {
		return nil, fmt.Errorf("text extraction error: %w", err)
	}
	if len(strings.TrimSpace(text)) < consts.MinResumeTextLen {
		return nil, fmt.Errorf("little or no text extracted, might be an image-based PDF")
	}
	rec, err := c.parser.Execute(ctx, filepath.Base(path), text)
	if err != nil {
		return nil, fmt.Errorf("model parsing error: %w", err)
	}
	return rec, nil
}

// loadExisting reads prior results from the output CSV, falling back to the
// checkpoint file of an interrupted run.
func loadExisting(out, tmp string) ([]dto.CandidateRecord, map[string]bool) {
	processed := make(map[string]bool)
	for _, path := range []string{out, tmp} {
		recs, err := store.ReadRecords(path)
		if err != nil {
			continue
		}
		for _, r := range recs {
			processed[r.ResumeFilename] = true
		}
		return recs, processed
	}
	return nil, processed
}

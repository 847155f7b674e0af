package query

import (
	"context"
	"strings"

	"github.com/hireline/screener-backend/internal/application/dto"
	"github.com/hireline/screener-backend/internal/application/interfaces"
)

// VerifyDataset runs the data-quality checks the dashboard surfaces on its
// stats panel: how many rows carry usable scores, emails and names, plus a
// top-5 preview.
type VerifyDataset struct {
	source interfaces.CandidateSource
}

func NewVerifyDataset(source interfaces.CandidateSource) *VerifyDataset {
	return &VerifyDataset{source: source}
}

func (q *VerifyDataset) Query(ctx context.Context) (*dto.DatasetReport, error) {
	recs, err := q.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.DatasetReport{Records: len(recs)}
	for _, r := range recs {
		if r.OverallScore > 0 {
			report.ValidScores++
		}
		if strings.TrimSpace(r.Email) != "" {
			report.ValidEmails++
		}
		if strings.TrimSpace(r.CandidateName) != "" {
			report.ValidNames++
		}
	}

	sortRecords(recs, dto.CandidateSort{Key: "overall_score"})
	if len(recs) > 5 {
		recs = recs[:5]
	}
	report.Top = recs
	return report, nil
}

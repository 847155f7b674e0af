package query

import (
	"context"
	"sort"
	"strings"

	"github.com/hireline/screener-backend/internal/application/dto"
	"github.com/hireline/screener-backend/internal/application/interfaces"
)

// ListCandidates filters and orders the candidate dataset for the dashboard.
type ListCandidates struct {
	source interfaces.CandidateSource
}

func NewListCandidates(source interfaces.CandidateSource) *ListCandidates {
	return &ListCandidates{source: source}
}

func (q *ListCandidates) Query(ctx context.Context, filter dto.CandidateFilter, order dto.CandidateSort) ([]dto.CandidateRecord, error) {
	recs, err := q.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]dto.CandidateRecord, 0, len(recs))
	for _, r := range recs {
		if matches(r, filter) {
			filtered = append(filtered, r)
		}
	}
	sortRecords(filtered, order)
	return filtered, nil
}

// TopCandidates ranks the best n candidates by overall score.
type TopCandidates struct {
	source interfaces.CandidateSource
}

func NewTopCandidates(source interfaces.CandidateSource) *TopCandidates {
	return &TopCandidates{source: source}
}

func (q *TopCandidates) Query(ctx context.Context, n int) ([]dto.CandidateRecord, error) {
	recs, err := q.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	sortRecords(recs, dto.CandidateSort{Key: "overall_score"})
	if n > 0 && len(recs) > n {
		recs = recs[:n]
	}
	return recs, nil
}

func matches(r dto.CandidateRecord, f dto.CandidateFilter) bool {
	if f.MinScore > 0 && r.OverallScore < f.MinScore {
		return false
	}
	if f.JobLevel != "" && !strings.EqualFold(r.EstimatedJobLevel, f.JobLevel) {
		return false
	}
	if f.MaxUniversityTier > 0 && (r.UniversityTier == 0 || r.UniversityTier > f.MaxUniversityTier) {
		return false
	}
	if f.MaxCompanyTier > 0 && (r.CompanyTier == 0 || r.CompanyTier > f.MaxCompanyTier) {
		return false
	}
	if f.Country != "" && !strings.EqualFold(r.Country, f.Country) {
		return false
	}
	if f.MinExperience > 0 && r.ProgrammingExperienceYears < f.MinExperience {
		return false
	}
	if f.Search != "" && !searchMatch(r, f.Search) {
		return false
	}
	return true
}

func searchMatch(r dto.CandidateRecord, term string) bool {
	term = strings.ToLower(term)
	haystacks := []string{
		r.CandidateName, r.Email, r.CompaniesWorked,
		r.BachelorsUniversity, r.GraduateUniversity,
		r.AWSServicesExperience, r.DatabaseTechnologies,
		r.AIToolsExperience, r.LLMAPIExperience, r.AutonomyIndicators,
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), term) {
			return true
		}
	}
	return false
}

// sortRecords orders by the given column. Unknown keys fall back to
// overall_score. Numeric keys default to descending, name to ascending,
// order.Ascending flips that.
func sortRecords(recs []dto.CandidateRecord, order dto.CandidateSort) {
	key := order.Key
	if key == "" {
		key = "overall_score"
	}

	if key == "candidate_name" {
		sort.SliceStable(recs, func(i, j int) bool {
			less := strings.ToLower(recs[i].CandidateName) < strings.ToLower(recs[j].CandidateName)
			if order.Ascending {
				return less
			}
			return !less
		})
		return
	}

	val := numericKey(key)
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := val(recs[i]), val(recs[j])
		if a == b {
			// stable tie-break so rankings don't jitter between loads
			return recs[i].ResumeFilename < recs[j].ResumeFilename
		}
		if order.Ascending {
			return a < b
		}
		return a > b
	})
}

func numericKey(key string) func(dto.CandidateRecord) float64 {
	switch key {
	case "academic_strength":
		return func(r dto.CandidateRecord) float64 { return float64(r.AcademicStrength) }
	case "cs_strength":
		return func(r dto.CandidateRecord) float64 { return float64(r.CSStrength) }
	case "industry_strength":
		return func(r dto.CandidateRecord) float64 { return float64(r.IndustryStrength) }
	case "fullstack_strength":
		return func(r dto.CandidateRecord) float64 { return float64(r.FullstackStrength) }
	case "opensource_strength":
		return func(r dto.CandidateRecord) float64 { return float64(r.OpensourceStrength) }
	case "accomplishments_strength":
		return func(r dto.CandidateRecord) float64 { return float64(r.AccomplishmentsStrength) }
	case "programming_experience_years":
		return func(r dto.CandidateRecord) float64 { return r.ProgrammingExperienceYears }
	case "ai_experience_years":
		return func(r dto.CandidateRecord) float64 { return r.AIExperienceYears }
	case "university_tier":
		return func(r dto.CandidateRecord) float64 { return float64(r.UniversityTier) }
	case "company_tier":
		return func(r dto.CandidateRecord) float64 { return float64(r.CompanyTier) }
	case "bachelors_gpa":
		return func(r dto.CandidateRecord) float64 { return r.BachelorsGPA }
	default:
		return func(r dto.CandidateRecord) float64 { return r.OverallScore }
	}
}

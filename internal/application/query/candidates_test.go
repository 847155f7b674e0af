package query

import (
	"context"
	"testing"

	"github.com/hireline/screener-backend/internal/application/dto"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	recs []dto.CandidateRecord
	err  error
}

func (s stubSource) Load(_ context.Context) ([]dto.CandidateRecord, error) {
	return s.recs, s.err
}

func fixtures() []dto.CandidateRecord {
	return []dto.CandidateRecord{
		{
			ResumeFilename: "ann_resume.pdf", CandidateName: "Ann Park", Email: "ann@example.com",
			EstimatedJobLevel: "PMTS", Country: "USA", UniversityTier: 1, CompanyTier: 1,
			ProgrammingExperienceYears: 12, CompaniesWorked: "Google, Stripe",
			OverallScore: 9.2,
		},
		{
			ResumeFilename: "bob_resume.pdf", CandidateName: "Bob Smith", Email: "bob@example.com",
			EstimatedJobLevel: "MTS", Country: "Canada", UniversityTier: 3, CompanyTier: 2,
			ProgrammingExperienceYears: 3, CompaniesWorked: "Shopify",
			DatabaseTechnologies: "PostgreSQL, Redis",
			OverallScore:         7.5,
		},
		{
			ResumeFilename: "cat_resume.pdf", CandidateName: "Cat Jones", Email: "",
			EstimatedJobLevel: "AMTS", Country: "USA", UniversityTier: 0, CompanyTier: 5,
			ProgrammingExperienceYears: 1,
			OverallScore:               4.0,
		},
	}
}

func Test_ListCandidates_Default_Sort_Is_Score_Descending(t *testing.T) {
	SUT := NewListCandidates(stubSource{recs: fixtures()})

	got, err := SUT.Query(context.Background(), dto.CandidateFilter{}, dto.CandidateSort{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "Ann Park", got[0].CandidateName)
	require.Equal(t, "Bob Smith", got[1].CandidateName)
	require.Equal(t, "Cat Jones", got[2].CandidateName)
}

func Test_ListCandidates_Filters_By_Min_Score(t *testing.T) {
	SUT := NewListCandidates(stubSource{recs: fixtures()})

	got, err := SUT.Query(context.Background(), dto.CandidateFilter{MinScore: 7}, dto.CandidateSort{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		require.GreaterOrEqual(t, r.OverallScore, 7.0)
	}
}

func Test_ListCandidates_Filters_By_Job_Level_Case_Insensitive(t *testing.T) {
	SUT := NewListCandidates(stubSource{recs: fixtures()})

	got, err := SUT.Query(context.Background(), dto.CandidateFilter{JobLevel: "pmts"}, dto.CandidateSort{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Ann Park", got[0].CandidateName)
}

func Test_ListCandidates_Tier_Filter_Excludes_Unknown_Tier(t *testing.T) {
	SUT := NewListCandidates(stubSource{recs: fixtures()})

	// university_tier 0 means unknown, a tier cap must not admit it
	got, err := SUT.Query(context.Background(), dto.CandidateFilter{MaxUniversityTier: 3}, dto.CandidateSort{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		require.NotEqual(t, "Cat Jones", r.CandidateName)
	}
}

func Test_ListCandidates_Search_Spans_Companies_And_Skills(t *testing.T) {
	SUT := NewListCandidates(stubSource{recs: fixtures()})

	byCompany, err := SUT.Query(context.Background(), dto.CandidateFilter{Search: "stripe"}, dto.CandidateSort{})
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	require.Equal(t, "Ann Park", byCompany[0].CandidateName)

	bySkill, err := SUT.Query(context.Background(), dto.CandidateFilter{Search: "postgres"}, dto.CandidateSort{})
	require.NoError(t, err)
	require.Len(t, bySkill, 1)
	require.Equal(t, "Bob Smith", bySkill[0].CandidateName)
}

func Test_ListCandidates_Sorts_By_Name_Ascending(t *testing.T) {
	SUT := NewListCandidates(stubSource{recs: fixtures()})

	got, err := SUT.Query(context.Background(), dto.CandidateFilter{},
		dto.CandidateSort{Key: "candidate_name", Ascending: true})
	require.NoError(t, err)
	require.Equal(t, "Ann Park", got[0].CandidateName)
	require.Equal(t, "Cat Jones", got[2].CandidateName)
}

func Test_ListCandidates_Sorts_By_Experience(t *testing.T) {
	SUT := NewListCandidates(stubSource{recs: fixtures()})

	got, err := SUT.Query(context.Background(), dto.CandidateFilter{},
		dto.CandidateSort{Key: "programming_experience_years", Ascending: true})
	require.NoError(t, err)
	require.Equal(t, "Cat Jones", got[0].CandidateName)
	require.Equal(t, "Ann Park", got[2].CandidateName)
}

func Test_TopCandidates_Ranks_By_Score(t *testing.T) {
	SUT := NewTopCandidates(stubSource{recs: fixtures()})

	got, err := SUT.Query(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Ann Park", got[0].CandidateName)
	require.Equal(t, "Bob Smith", got[1].CandidateName)
}

func Test_VerifyDataset_Counts_Quality_And_Previews_Top(t *testing.T) {
	SUT := NewVerifyDataset(stubSource{recs: fixtures()})

	report, err := SUT.Query(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, report.Records)
	require.Equal(t, 3, report.ValidScores)
	require.Equal(t, 2, report.ValidEmails)
	require.Equal(t, 3, report.ValidNames)
	require.Len(t, report.Top, 3)
	require.Equal(t, "Ann Park", report.Top[0].CandidateName)
}

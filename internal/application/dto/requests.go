package dto

// ExtractBatchRequest configures one extraction run over a directory tree.
type ExtractBatchRequest struct {
	Directory  string
	OutputFile string
	// Sample caps the number of resumes parsed this run, 0 means all.
	Sample  int
	Workers int
}

// ExtractBatchSummary reports how a run went.
type ExtractBatchSummary struct {
	RunID       string  `json:"run_id"`
	Found       int     `json:"found"`
	Skipped     int     `json:"skipped"`
	Attempted   int     `json:"attempted"`
	Succeeded   int     `json:"succeeded"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
	OutputFile  string  `json:"output_file"`
	ErrorsFile  string  `json:"errors_file,omitempty"`
}

// SyncBucketRequest downloads resume objects under Prefix into DestDir.
type SyncBucketRequest struct {
	Prefix  string
	DestDir string
}

// CandidateFilter narrows the candidate list. Zero values mean "no constraint".
type CandidateFilter struct {
	MinScore          float64
	JobLevel          string
	MaxUniversityTier int
	MaxCompanyTier    int
	Country           string
	MinExperience     float64
	Search            string
}

// CandidateSort orders the candidate list.
type CandidateSort struct {
	// Key is a CSV column name, e.g. "overall_score" or "candidate_name".
	Key       string
	Ascending bool
}

// DatasetReport summarizes the quality of a candidate dataset.
type DatasetReport struct {
	Records     int               `json:"records"`
	ValidScores int               `json:"valid_scores"`
	ValidEmails int               `json:"valid_emails"`
	ValidNames  int               `json:"valid_names"`
	Top         []CandidateRecord `json:"top"`
}

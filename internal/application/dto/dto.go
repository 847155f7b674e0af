package dto

// CandidateRecord is the structured profile a model extracts from one resume.
// JSON names double as the CSV column names, so the dashboard and any
// downstream tooling see the same schema everywhere.
type CandidateRecord struct {
	// Basic candidate information
	ResumeFilename string `json:"resume_filename"`
	CandidateName  string `json:"candidate_name"`
	Email          string `json:"email"`
	GithubLink     string `json:"github_link"`
	LinkedinLink   string `json:"linkedin_link"`
	Country        string `json:"country"`
	City           string `json:"city"`

	// Education
	CollegeEducationYears int     `json:"college_education_years"`
	HighestDegree         string  `json:"highest_degree"`
	BachelorsUniversity   string  `json:"bachelors_university"`
	GraduateUniversity    string  `json:"graduate_university"`
	UniversityTier        int     `json:"university_tier"`
	OverallWorldRanking   int     `json:"overall_world_ranking"`
	CSWorldRanking        int     `json:"cs_world_ranking"`
	BachelorsGPA          float64 `json:"bachelors_gpa"`
	MastersGPA            float64 `json:"masters_gpa"`

	// Work experience
	EstimatedJobLevel          string  `json:"estimated_job_level"`
	ProgrammingExperienceYears float64 `json:"programming_experience_years"`
	AIExperienceYears          float64 `json:"ai_experience_years"`
	CompaniesWorked            string  `json:"companies_worked"`
	CompanyTier                int     `json:"company_tier"`
	CSInternships              int     `json:"cs_internships"`

	// Skill levels, 1-5
	JavascriptSkillLevel int     `json:"javascript_skill_level"`
	PythonSkillLevel     int     `json:"python_skill_level"`
	CloudSkillLevel      int     `json:"cloud_skill_level"`
	LLMSkillLevel        int     `json:"llm_skill_level"`
	CloudExperienceYears float64 `json:"cloud_experience_years"`
	LLMExperienceYears   float64 `json:"llm_experience_years"`

	ReactStrength      int `json:"react_strength"`
	TypescriptStrength int `json:"typescript_strength"`
	NextjsStrength     int `json:"nextjs_strength"`
	APIDesignStrength  int `json:"api_design_strength"`
	TailwindStrength   int `json:"tailwind_strength"`
	GitStrength        int `json:"git_strength"`
	AgileStrength      int `json:"agile_strength"`

	AWSServicesExperience string `json:"aws_services_experience"`
	DatabaseTechnologies  string `json:"database_technologies"`
	AIToolsExperience     string `json:"ai_tools_experience"`
	LLMAPIExperience      string `json:"llm_api_experience"`

	// Work style
	StartupExperienceStrength int    `json:"startup_experience_strength"`
	OpenSourceStrength        int    `json:"open_source_strength"`
	LeadershipStrength        int    `json:"leadership_strength"`
	AutonomyIndicators        string `json:"autonomy_indicators"`

	// CS fundamentals
	AlgorithmsStrength   int `json:"algorithms_strength"`
	SystemDesignStrength int `json:"system_design_strength"`

	// Experience-relative aggregate scores, 1-10
	AcademicStrength        int     `json:"academic_strength"`
	CSStrength              int     `json:"cs_strength"`
	IndustryStrength        int     `json:"industry_strength"`
	FullstackStrength       int     `json:"fullstack_strength"`
	OpensourceStrength      int     `json:"opensource_strength"`
	AccomplishmentsStrength int     `json:"accomplishments_strength"`
	OverallScore            float64 `json:"overall_score"`

	// Accomplishments
	Accomplishment1 string `json:"accomplishment_1"`
	Accomplishment2 string `json:"accomplishment_2"`
	Accomplishment3 string `json:"accomplishment_3"`
}

// AggregateScores returns the six experience-relative scores used for overall_score.
func (r CandidateRecord) AggregateScores() []int {
	return []int{
		r.AcademicStrength,
		r.CSStrength,
		r.IndustryStrength,
		r.FullstackStrength,
		r.OpensourceStrength,
		r.AccomplishmentsStrength,
	}
}

// ExtractionError is one row in the errors report written next to the output CSV.
type ExtractionError struct {
	ResumeFilename string `json:"resume_filename"`
	DocumentPath   string `json:"pdf_path"`
	ErrorTime      string `json:"error_time"`
	ErrorReason    string `json:"error_reason"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

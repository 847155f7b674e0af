package store

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hireline/screener-backend/internal/application/dto"
)

// Columns is the canonical CSV schema, in write order. The dashboard, the
// resume support on restart and the strict extraction prompt all key off it.
var Columns = []string{
	"resume_filename", "candidate_name", "email", "github_link", "linkedin_link",
	"country", "city", "estimated_job_level", "programming_experience_years", "ai_experience_years",
	"college_education_years", "highest_degree", "bachelors_university", "graduate_university",
	"university_tier", "overall_world_ranking", "cs_world_ranking", "bachelors_gpa", "masters_gpa",
	"companies_worked", "company_tier",
	"javascript_skill_level", "python_skill_level", "cloud_skill_level", "llm_skill_level",
	"cs_internships", "cloud_experience_years", "llm_experience_years",
	"react_strength", "typescript_strength", "nextjs_strength", "api_design_strength",
	"tailwind_strength", "git_strength", "agile_strength",
	"aws_services_experience", "database_technologies", "ai_tools_experience", "llm_api_experience",
	"startup_experience_strength", "open_source_strength", "leadership_strength", "autonomy_indicators",
	"algorithms_strength", "system_design_strength",
	"academic_strength", "cs_strength", "industry_strength", "fullstack_strength",
	"opensource_strength", "accomplishments_strength", "overall_score",
	"accomplishment_1", "accomplishment_2", "accomplishment_3",
}

var errorColumns = []string{"resume_filename", "pdf_path", "error_time", "error_reason"}

var floatColumns = map[string]bool{
	"programming_experience_years": true,
	"ai_experience_years":          true,
	"bachelors_gpa":                true,
	"masters_gpa":                  true,
	"cloud_experience_years":       true,
	"llm_experience_years":         true,
	"overall_score":                true,
}

var intColumns = map[string]bool{
	"college_education_years": true, "university_tier": true,
	"overall_world_ranking": true, "cs_world_ranking": true, "company_tier": true,
	"javascript_skill_level": true, "python_skill_level": true,
	"cloud_skill_level": true, "llm_skill_level": true, "cs_internships": true,
	"react_strength": true, "typescript_strength": true, "nextjs_strength": true,
	"api_design_strength": true, "tailwind_strength": true,
	"git_strength": true, "agile_strength": true,
	"startup_experience_strength": true, "open_source_strength": true,
	"leadership_strength": true, "algorithms_strength": true, "system_design_strength": true,
	"academic_strength": true, "cs_strength": true, "industry_strength": true,
	"fullstack_strength": true, "opensource_strength": true, "accomplishments_strength": true,
}

// ErrorsFile derives the errors report path from the output path,
// candidates.csv -> candidates_errors.csv.
func ErrorsFile(output string) string {
	if strings.HasSuffix(output, ".csv") {
		return strings.TrimSuffix(output, ".csv") + "_errors.csv"
	}
	return output + "_errors.csv"
}

// WriteRecords writes the full candidate CSV, header included.
func WriteRecords(path string, recs []dto.CandidateRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range recs {
		row, err := recordToRow(rec)
		if err != nil {
			return err
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", rec.ResumeFilename, err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadRecords loads a candidate CSV. Columns are matched by header name, so
// CSVs with reordered or missing columns still load, absent values zeroed.
func ReadRecords(path string) ([]dto.CandidateRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	recs := make([]dto.CandidateRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec, err := rowToRecord(header, row)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// WriteErrors writes the extraction error report. No-op for an empty report.
func WriteErrors(path string, report []dto.ExtractionError) error {
	if len(report) == 0 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(errorColumns); err != nil {
		return err
	}
	for _, e := range report {
		if err := w.Write([]string{e.ResumeFilename, e.DocumentPath, e.ErrorTime, e.ErrorReason}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func recordToRow(rec dto.CandidateRecord) ([]string, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshaling record %s: %w", rec.ResumeFilename, err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	row := make([]string, len(Columns))
	for i, col := range Columns {
		switch v := fields[col].(type) {
		case string:
			row[i] = v
		case float64:
			if intColumns[col] {
				row[i] = strconv.Itoa(int(v))
			} else {
				row[i] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		case nil:
			row[i] = ""
		default:
			row[i] = fmt.Sprintf("%v", v)
		}
	}
	return row, nil
}

func rowToRecord(header, row []string) (dto.CandidateRecord, error) {
	fields := make(map[string]any, len(header))
	for i, col := range header {
		if i >= len(row) {
			break
		}
		val := strings.TrimSpace(row[i])
		switch {
		case floatColumns[col]:
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				f = 0
			}
			fields[col] = f
		case intColumns[col]:
			n, err := strconv.Atoi(val)
			if err != nil {
				// some tools write ints as "4.0"
				if f, ferr := strconv.ParseFloat(val, 64); ferr == nil {
					n = int(f)
				}
			}
			fields[col] = n
		default:
			fields[col] = row[i]
		}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return dto.CandidateRecord{}, err
	}
	var rec dto.CandidateRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return dto.CandidateRecord{}, fmt.Errorf("decoding row: %w", err)
	}
	return rec, nil
}

// FileSource serves dashboard queries straight from a CSV on disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) FileSource {
	return FileSource{Path: path}
}

func (s FileSource) Load(_ context.Context) ([]dto.CandidateRecord, error) {
	return ReadRecords(s.Path)
}

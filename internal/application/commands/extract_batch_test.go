package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hireline/screener-backend/internal/application/dto"
	"github.com/hireline/screener-backend/internal/infra/store"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	texts map[string]string
	errs  map[string]error
}

func (e *fakeExtractor) ExtractFile(path string) (string, error) {
	base := filepath.Base(path)
	if err := e.errs[base]; err != nil {
		return "", err
	}
	return e.texts[base], nil
}

type captureSink struct {
	records []dto.CandidateRecord
}

func (s *captureSink) Upsert(_ context.Context, rec dto.CandidateRecord) error {
	s.records = append(s.records, rec)
	return nil
}

func writeResumes(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("placeholder"), 0o644))
	}
}

func longText(seed string) string {
	return seed + " " + strings.Repeat("software engineer with production experience ", 5)
}

func Test_ExtractBatch_Processes_Directory_And_Writes_CSV(t *testing.T) {
	dir := t.TempDir()
	writeResumes(t, dir, "ann_resume.txt", "bob_resume.txt", "notes.txt")

	extractor := &fakeExtractor{texts: map[string]string{
		"ann_resume.txt": longText("ann"),
		"bob_resume.txt": longText("bob"),
	}}
	model := &fakeModel{steps: []step{{reply: validReply}}}
	sink := &captureSink{}
	out := filepath.Join(t.TempDir(), "candidates.csv")

	batch := NewExtractBatch(NewParseResume(model, nil), extractor, sink)
	summary, err := batch.Execute(context.Background(), dto.ExtractBatchRequest{
		Directory:  dir,
		OutputFile: out,
		Workers:    2,
	})
	require.NoError(t, err)

	// notes.txt has no "resume" in the name, so only two documents qualify
	require.Equal(t, 2, summary.Found)
	require.Equal(t, 2, summary.Attempted)
	require.Equal(t, 2, summary.Succeeded)
	require.Equal(t, 0, summary.Failed)
	require.Equal(t, 100.0, summary.SuccessRate)
	require.Empty(t, summary.ErrorsFile)

	recs, err := store.ReadRecords(out)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Len(t, sink.records, 2)
	require.NoFileExists(t, out+".tmp")
}

func Test_ExtractBatch_Records_Failures_In_Error_Report(t *testing.T) {
	dir := t.TempDir()
	writeResumes(t, dir, "ann_resume.txt", "scan_resume.pdf")

	extractor := &fakeExtractor{texts: map[string]string{
		"ann_resume.txt":  longText("ann"),
		"scan_resume.pdf": "tiny", // below the minimum usable text length
	}}
	model := &fakeModel{steps: []step{{reply: validReply}}}
	out := filepath.Join(t.TempDir(), "candidates.csv")

	batch := NewExtractBatch(NewParseResume(model, nil), extractor, nil)
	summary, err := batch.Execute(context.Background(), dto.ExtractBatchRequest{
		Directory:  dir,
		OutputFile: out,
	})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Succeeded)
	require.Equal(t, 1, summary.Failed)
	require.Equal(t, 50.0, summary.SuccessRate)
	require.Equal(t, store.ErrorsFile(out), summary.ErrorsFile)

	data, err := os.ReadFile(summary.ErrorsFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "scan_resume.pdf")
	require.Contains(t, string(data), "image-based PDF")
}

func Test_ExtractBatch_Skips_Resumes_Already_In_Output(t *testing.T) {
	dir := t.TempDir()
	writeResumes(t, dir, "ann_resume.txt", "bob_resume.txt")

	out := filepath.Join(t.TempDir(), "candidates.csv")
	prior := dto.CandidateRecord{ResumeFilename: "ann_resume.txt", CandidateName: "Ann Park", OverallScore: 8.1}
	require.NoError(t, store.WriteRecords(out, []dto.CandidateRecord{prior}))

	extractor := &fakeExtractor{texts: map[string]string{
		"bob_resume.txt": longText("bob"),
	}}
	model := &fakeModel{steps: []step{{reply: validReply}}}

	batch := NewExtractBatch(NewParseResume(model, nil), extractor, nil)
	summary, err := batch.Execute(context.Background(), dto.ExtractBatchRequest{
		Directory:  dir,
		OutputFile: out,
	})
	require.NoError(t, err)
	require.Equal(t, 2, summary.Found)
	require.Equal(t, 1, summary.Skipped)
	require.Equal(t, 1, summary.Attempted)
	require.Equal(t, 1, summary.Succeeded)

	// prior record survives alongside the new one
	recs, err := store.ReadRecords(out)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	names := []string{recs[0].ResumeFilename, recs[1].ResumeFilename}
	require.Contains(t, names, "ann_resume.txt")
	require.Contains(t, names, "bob_resume.txt")
}

func Test_ExtractBatch_Sample_Caps_The_Queue(t *testing.T) {
	dir := t.TempDir()
	writeResumes(t, dir, "a_resume.txt", "b_resume.txt", "c_resume.txt")

	extractor := &fakeExtractor{texts: map[string]string{
		"a_resume.txt": longText("a"),
		"b_resume.txt": longText("b"),
		"c_resume.txt": longText("c"),
	}}
	model := &fakeModel{steps: []step{{reply: validReply}}}
	out := filepath.Join(t.TempDir(), "candidates.csv")

	batch := NewExtractBatch(NewParseResume(model, nil), extractor, nil)
	summary, err := batch.Execute(context.Background(), dto.ExtractBatchRequest{
		Directory:  dir,
		OutputFile: out,
		Sample:     2,
	})
	require.NoError(t, err)
	require.Equal(t, 3, summary.Found)
	require.Equal(t, 2, summary.Attempted)
	require.Equal(t, 2, summary.Succeeded)
}

func Test_ExtractBatch_No_New_Resumes_Is_A_NoOp(t *testing.T) {
	dir := t.TempDir()
	writeResumes(t, dir, "ann_resume.txt")

	out := filepath.Join(t.TempDir(), "candidates.csv")
	prior := dto.CandidateRecord{ResumeFilename: "ann_resume.txt", CandidateName: "Ann Park"}
	require.NoError(t, store.WriteRecords(out, []dto.CandidateRecord{prior}))

	model := &fakeModel{steps: []step{{err: context.Canceled}}}
	batch := NewExtractBatch(NewParseResume(model, nil), &fakeExtractor{}, nil)
	summary, err := batch.Execute(context.Background(), dto.ExtractBatchRequest{
		Directory:  dir,
		OutputFile: out,
	})
	require.NoError(t, err)
	require.Equal(t, 0, summary.Attempted)
	require.Equal(t, 1, summary.Skipped)
	require.Empty(t, model.prompts)
}

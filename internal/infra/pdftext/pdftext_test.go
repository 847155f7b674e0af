package pdftext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ExtractFile_Reads_Plain_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ann_resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Ann Park\nSoftware Engineer"), 0o644))

	text, err := New().ExtractFile(path)
	require.NoError(t, err)
	require.Equal(t, "Ann Park\nSoftware Engineer", text)
}

func Test_ExtractFile_Rejects_Unsupported_Extension(t *testing.T) {
	_, err := New().ExtractFile("resume.rtf")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported file type")
}

func Test_SalvageText_Recovers_Show_Text_Operands(t *testing.T) {
	stream := []byte(`BT /F1 12 Tf (Ann Park) Tj (Engineer \(backend\)) Tj ET`)
	require.Equal(t, "Ann Park Engineer (backend)", salvageText(stream))
}

func Test_SalvageText_Unescapes_Backslashes(t *testing.T) {
	stream := []byte(`(C:\\projects) Tj`)
	require.Equal(t, `C:\projects`, salvageText(stream))
}

func Test_SalvageText_Empty_For_Compressed_Streams(t *testing.T) {
	require.Equal(t, "", salvageText([]byte("x\x9c\x01binary garbage")))
}

func Test_ScanURIs_Finds_Link_Annotations(t *testing.T) {
	data := []byte(`<< /Type /Annot /A << /S /URI /URI (https://github.com/annpark) >> >>` +
		`<< /A << /URI (https://linkedin.com/in/annpark) >> >>` +
		`<< /A << /URI (mailto:ann@example.com) >> >>` +
		`<< /A << /URI (https://github.com/annpark) >> >>`)

	uris := scanURIs(data)
	// mailto is skipped, the duplicate github link collapses
	require.Equal(t, []string{"https://github.com/annpark", "https://linkedin.com/in/annpark"}, uris)
}

func Test_ExtractPDF_Salvages_And_Labels_Links(t *testing.T) {
	// not a valid PDF structure, so the structured reader fails and the
	// salvage pass picks up the raw operands
	raw := `%PDF-1.4
(Ann Park) Tj (Backend Engineer) Tj
<< /A << /S /URI /URI (https://github.com/annpark) >> >>
<< /A << /URI (https://annpark.dev) >> >>`
	path := filepath.Join(t.TempDir(), "ann_resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	text, err := New().ExtractFile(path)
	require.NoError(t, err)
	require.Contains(t, text, "Ann Park Backend Engineer")
	require.Contains(t, text, "GitHub: https://github.com/annpark")
	require.Contains(t, text, "Link: https://annpark.dev")
}

func Test_ExtractPDF_Fails_When_Nothing_Recoverable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan_resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 binary only"), 0o644))

	_, err := New().ExtractFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to extract text")
}

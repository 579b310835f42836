package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stagingDirs returns temp dirs left behind by the exporter.
func stagingDirs(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "resume-export-*"))
	require.NoError(t, err)
	return matches
}

func TestExportSuccess(t *testing.T) {
	before := len(stagingDirs(t))

	var stagedURL string
	e := &Exporter{
		printPDF: func(_ context.Context, url string) ([]byte, error) {
			stagedURL = url
			// The staged file must exist while printing runs.
			path := strings.TrimPrefix(url, "file://")
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(content), "<html>")
			return []byte("%PDF-1.4 fake"), nil
		},
	}

	pdf, filename, err := e.Export(context.Background(), "<html><body>hi</body></html>", "My Resume")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), pdf)
	assert.Equal(t, "My-Resume.pdf", filename)
	assert.True(t, strings.HasSuffix(stagedURL, "/index.html"))

	assert.Len(t, stagingDirs(t), before, "staging dir must be removed after success")
}

func TestExportCleansUpOnFailure(t *testing.T) {
	before := len(stagingDirs(t))

	e := &Exporter{
		printPDF: func(_ context.Context, _ string) ([]byte, error) {
			return nil, fmt.Errorf("chrome crashed")
		},
	}

	_, _, err := e.Export(context.Background(), "<html></html>", "resume")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chrome crashed")

	assert.Len(t, stagingDirs(t), before, "staging dir must be removed after failure")
}

func TestExportEmptyDocument(t *testing.T) {
	e := New()

	_, _, err := e.Export(context.Background(), "   \n", "resume")
	require.Error(t, err)

	var targetErr *TargetError
	require.ErrorAs(t, err, &targetErr)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "resume", "resume.pdf"},
		{"spaces become dashes", "My Great Resume", "My-Great-Resume.pdf"},
		{"unsafe characters dropped", "rés/umé?.doc", "rsumdoc.pdf"},
		{"empty falls back", "", "resume.pdf"},
		{"only unsafe falls back", "///???", "resume.pdf"},
		{"surrounding dashes trimmed", " - resume - ", "resume.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Filename(tt.input))
		})
	}
}

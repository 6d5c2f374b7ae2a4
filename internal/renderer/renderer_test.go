package renderer

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lechnerc77/github-pr-analytics/internal/domain"
)

func sampleReport() *domain.RepositoryReport {
	return &domain.RepositoryReport{
		RepositoryName: "acme/widgets",
		WindowStart:    time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		WindowEnd:      time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		PullRequests: []domain.PullRequestReport{
			{Number: 1, Title: "One", TimeToMergeMinutes: 120, LinesAdded: 30, LinesDeleted: 20},
			{Number: 2, Title: "Two", TimeToMergeMinutes: 150, LinesAdded: 60, LinesDeleted: 40},
			{Number: 3, Title: "Three", TimeToMergeMinutes: 180, LinesAdded: 100, LinesDeleted: 50},
		},
		AverageTimeToMerge:      150,
		MinTimeToMerge:          120,
		MaxTimeToMerge:          180,
		DeviationMinFromAverage: 30,
		DeviationMaxFromAverage: 30,
		AverageLinesChanged:     100,
		MinLinesChanged:         50,
		MaxLinesChanged:         150,
	}
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expected     Format
		expectNotice bool
	}{
		{name: "console is recognized", input: "console", expected: FormatConsole},
		{name: "json is recognized", input: "json", expected: FormatJSON},
		{name: "csv is recognized", input: "CSV", expected: FormatCSV},
		{name: "empty input selects the default silently", input: "", expected: FormatConsole},
		{name: "invalid input falls back to console with a notice", input: "xml", expected: FormatConsole, expectNotice: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.New(&buf, "", 0)

			format := ParseFormat(tc.input, logger)

			assert.Equal(t, tc.expected, format)
			if tc.expectNotice {
				assert.Contains(t, buf.String(), "falling back to console")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, []*domain.RepositoryReport{sampleReport()}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2, "expected exactly header plus one data row")

	assert.Equal(t, "repository_name,starttime,endtime,number_of_prs,average_time_to_merge,min_time_to_merge,max_time_to_merge,average_lines_changed,min_lines_changed,max_lines_Changed", lines[0])

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 10)
	assert.Equal(t, "acme/widgets", fields[0])
	assert.Equal(t, "2026-08-23", fields[1])
	assert.Equal(t, "2026-08-30", fields[2])
	assert.Equal(t, "3", fields[3], "number_of_prs must match the qualifying set")
	assert.Equal(t, "150.00", fields[4])
	assert.Equal(t, "120.00", fields[5])
	assert.Equal(t, "180.00", fields[6])
	assert.Equal(t, "100", fields[7])
	assert.Equal(t, "50", fields[8])
	assert.Equal(t, "150", fields[9])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, []*domain.RepositoryReport{sampleReport()}))

	// Pretty-printed output.
	assert.True(t, strings.HasPrefix(buf.String(), "[\n  {"))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	entry := decoded[0]
	assert.Equal(t, "acme/widgets", entry["repositoryName"])
	assert.Equal(t, float64(150), entry["averageTimeToMerge"])
	assert.Equal(t, float64(100), entry["averageLinesChanged"])
	prs, ok := entry["pullRequests"].([]interface{})
	require.True(t, ok)
	assert.Len(t, prs, 3)
}

func TestWriteConsole(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeConsole(&buf, []*domain.RepositoryReport{sampleReport()}))

	out := buf.String()
	assert.Contains(t, out, "Repository: acme/widgets")
	assert.Contains(t, out, "Merged pull requests: 3")
	assert.Contains(t, out, "Average time to merge: 150.00 minutes (2.50 hours)")
	assert.Contains(t, out, "Min/Max time to merge: 120.00 / 180.00 minutes")
	assert.Contains(t, out, "Lines changed: avg 100, min 50, max 150")
	assert.Contains(t, out, "#2")
}

func TestWriteConsole_EmptyReport(t *testing.T) {
	report := &domain.RepositoryReport{
		RepositoryName: "acme/empty",
		WindowStart:    time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		WindowEnd:      time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		PullRequests:   []domain.PullRequestReport{},
	}

	var buf bytes.Buffer
	require.NoError(t, writeConsole(&buf, []*domain.RepositoryReport{report}))

	out := buf.String()
	assert.Contains(t, out, "Merged pull requests: 0")
	assert.NotContains(t, out, "Average time to merge")
}

func TestRenderer_Render_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "output.json")
	csvPath := filepath.Join(dir, "output.csv")
	logger := log.New(io.Discard, "", 0)
	reports := []*domain.RepositoryReport{sampleReport()}

	r := NewRenderer(io.Discard, jsonPath, csvPath, logger)

	require.NoError(t, r.Render(reports, FormatJSON))
	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"repositoryName": "acme/widgets"`)

	require.NoError(t, r.Render(reports, FormatCSV))
	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "acme/widgets,2026-08-23,2026-08-30,3,")
}

func TestRenderer_Render_FileError(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	r := NewRenderer(io.Discard, filepath.Join(t.TempDir(), "missing", "output.json"), "", logger)

	err := r.Render([]*domain.RepositoryReport{sampleReport()}, FormatJSON)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

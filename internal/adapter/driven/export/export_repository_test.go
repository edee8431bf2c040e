package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
)

func sampleAnalysis() entity.CostAnalysis {
	return entity.CostAnalysis{
		Comparison: []entity.ComparisonEntry{
			{ServiceName: "EC2", Current: 120, Previous: 100, Change: 20, PercentChange: 20, PercentDefined: true},
			{ServiceName: "Amazon Bedrock", Current: 30, Previous: 0, Change: 30},
		},
		Table: entity.CostTable{
			"2024-05": {"EC2": 100},
			"2024-06": {"EC2": 120, "Amazon Bedrock": 30},
		},
		CurrentMonth:  "2024-06",
		PreviousMonth: "2024-05",
		AccountID:     "123456789012",
	}
}

func TestExportToJSON(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportToJSON(sampleAnalysis(), "report", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "report_"))
	assert.True(t, strings.HasSuffix(path, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.CostAnalysis
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2024-06", decoded.CurrentMonth)
	assert.Len(t, decoded.Comparison, 2)
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportToCSV(sampleAnalysis(), "report", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "EC2,$120.00,$100.00,$20.00,20.00%")
	assert.Contains(t, content, "Amazon Bedrock,$30.00,$0.00,$30.00,N/A")
	assert.Contains(t, content, "2024-05,$100.00")
	assert.Contains(t, content, "2024-06,$150.00")
}

func TestExportToPDF(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportToPDF(sampleAnalysis(), "2024-05: $100.00\n", "report", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateFilename_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := generateFilename("report", dir, "csv")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

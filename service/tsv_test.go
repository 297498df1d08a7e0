package service

import (
	"strings"
	"testing"

	"github.com/AnTengye/accreditation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertUSDate(t *testing.T) {
	tests := map[string]string{
		"6/30/25":    "2025-06-30",
		"12/31/24":   "2024-12-31",
		"01/05/2026": "2026-01-05",
		" 3/1/25 ":   "2025-03-01",
		"":           "",
		"2025-06-30": "",
		"aa/bb/cc":   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ConvertUSDate(in), in)
	}
}

func tsvRow(cols ...string) string {
	return strings.Join(cols, "\t")
}

func TestParseTSV(t *testing.T) {
	input := strings.Join([]string{
		tsvRow("Yes", "1/10/24", "80%", "No", "", "Scheduled", "3/3/25",
			"Engineering", "Computer Science", "King Saud University", "Bachelor", "Accredited", "1/1/20", "6/30/25"),
		"",
		tsvRow("short", "line"),
		tsvRow("", "", "", "", "", "", "",
			"Health", "Nursing", "Qassim University", "Master", "", "9/1/21", ""),
	}, "\n")

	result, err := ParseTSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Contracts, 2)
	assert.Equal(t, []int{3}, result.InvalidLines)

	first := result.Contracts[0]
	assert.Equal(t, "King Saud University", first.University)
	assert.Equal(t, "Engineering", first.Management)
	assert.Equal(t, "Computer Science", first.Program)
	assert.Equal(t, "80%", first.Progress)
	assert.Equal(t, "Scheduled", first.VisitScheduled)
	assert.Equal(t, "2024-01-10", first.DocDate.String())
	assert.Equal(t, "2025-03-03", first.VisitDate.String())
	assert.Equal(t, "2025-06-30", first.EndDate.String())
	assert.Equal(t, model.BucketH1_2025, ClassifyDateBucket(first.EndDate))

	second := result.Contracts[1]
	assert.False(t, second.EndDate.Valid)
	assert.Equal(t, model.BucketUnknown, ClassifyDateBucket(second.EndDate))
}

func TestParseTSVEmpty(t *testing.T) {
	result, err := ParseTSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, result.Contracts)
	assert.Empty(t, result.InvalidLines)
}

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altin/fault-finder/internal/dataset"
	"github.com/altin/fault-finder/internal/model"
)

func strPtr(s string) *string { return &s }

func TestResultsPlain(t *testing.T) {
	results := []model.FaultRecord{
		{Brand: "Vaillant", FaultCode: "F22", Model: "ecoTEC", FaultCause: strPtr("Low water pressure")},
		{Brand: "Worcester", FaultCode: "E9", Model: "Greenstar"},
	}

	var buf bytes.Buffer
	require.NoError(t, Results(&buf, results, false, 0))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2, "plain output has no summary or header")
	assert.Equal(t, []string{"Vaillant", "F22", "ecoTEC", "Low water pressure", "-"}, strings.Split(lines[0], "\t"))
	assert.Equal(t, []string{"Worcester", "E9", "Greenstar", "-", "-"}, strings.Split(lines[1], "\t"))
}

func TestResultsTerminal(t *testing.T) {
	results := []model.FaultRecord{{Brand: "Baxi", FaultCode: "E110", Model: "Duo-tec"}}

	var buf bytes.Buffer
	require.NoError(t, Results(&buf, results, true, 120))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Exact match found\n"), out)
	assert.Contains(t, out, "BRAND")
	assert.Contains(t, out, "E110")
}

func TestResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Results(&buf, []model.FaultRecord{}, true, 80))
	assert.Equal(t, "No results\n", buf.String())

	buf.Reset()
	require.NoError(t, Results(&buf, nil, false, 0))
	assert.Empty(t, buf.String())
}

func TestBrands(t *testing.T) {
	counts := []dataset.BrandCount{{Brand: "Baxi", Count: 4}, {Brand: "Alpha", Count: 1}}

	var buf bytes.Buffer
	require.NoError(t, Brands(&buf, counts, false, 0))
	assert.Equal(t, "Baxi\t4\nAlpha\t1\n", buf.String())

	buf.Reset()
	require.NoError(t, Brands(&buf, counts, true, 80))
	assert.Contains(t, buf.String(), "5 fault codes across 2 brands")
}

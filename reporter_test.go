package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateReporter(t *testing.T) {
	reporter := newRateReporter(RandomModuleName)
	reporter.start()

	for _, v := range []int{1, 2, 3, 4, 5, 6} {
		reporter.mark([]int{v})
	}
	reporter.fail()

	report := reporter.stop()
	assert.Equal(t, RandomModuleName, report.Module)
	assert.Equal(t, int64(6), report.Operations)
	assert.Equal(t, int64(1), report.Errors)
	assert.InDelta(t, 3.5, report.OutputMean, 1e-9)
	assert.Equal(t, int64(1), report.OutputMin)
	assert.Equal(t, int64(6), report.OutputMax)

	filename := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, reporter.writeCSV(filename))

	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "count", rows[0][1])
	last := rows[len(rows)-1]
	assert.Equal(t, "6", last[1])
	assert.Equal(t, "1", last[6])
}

func TestRateReporterStopWithoutStart(t *testing.T) {
	reporter := newRateReporter(RotateModuleName)
	reporter.mark([]int{3, 1, 2})

	report := reporter.stop()
	assert.Equal(t, int64(1), report.Operations)
	assert.Equal(t, int64(3), report.OutputMax)
}

func TestRateReporterWriteCSVError(t *testing.T) {
	reporter := newRateReporter(RotateModuleName)
	reporter.stop()
	assert.Error(t, reporter.writeCSV(filepath.Join(t.TempDir(), "missing", "report.csv")))
}

package logging

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evosim/internal/ga"
)

func stats(mean float64) ga.Statistics {
	return ga.Statistics{
		Size:          10,
		MinFitness:    0,
		MaxFitness:    mean * 2,
		MeanFitness:   mean,
		MedianFitness: mean,
		StdDevFitness: 1,
	}
}

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "runs")
	var out bytes.Buffer
	l, err := NewLogger(filepath.Join(dir, "run.csv"), filepath.Join(dir, "run.jsonl"), &out)
	require.NoError(t, err)
	require.NoError(t, l.Init())
	return l, &out, dir
}

func TestLogGenerationWritesFiles(t *testing.T) {
	l, out, dir := newTestLogger(t)

	require.NoError(t, l.LogGeneration(1, stats(1.5), true))
	require.NoError(t, l.LogGeneration(2, stats(2.5), false))
	require.NoError(t, l.Close())

	assert.Contains(t, out.String(), "Gen    1")
	assert.NotContains(t, out.String(), "Gen    2")

	f, err := os.Open(filepath.Join(dir, "run.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "generation", rows[0][0])
	assert.Equal(t, []string{"2", "10", "0.00", "5.00", "2.5000", "2.50", "1.0000"}, rows[2])

	jf, err := os.Open(filepath.Join(dir, "run.jsonl"))
	require.NoError(t, err)
	defer jf.Close()

	var summaries []GenerationSummary
	scanner := bufio.NewScanner(jf)
	for scanner.Scan() {
		var s GenerationSummary
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &s))
		summaries = append(summaries, s)
	}
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].Generation)
	assert.Equal(t, 1.5, summaries[0].MeanFitness)
	assert.Equal(t, 10, summaries[1].Size)
}

func TestLogTop(t *testing.T) {
	l, out, _ := newTestLogger(t)
	defer l.Close()

	for gen, mean := range []float64{1, 4, 2, 3} {
		require.NoError(t, l.LogGeneration(gen+1, stats(mean), false))
	}
	l.LogTop(2)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Top 2")
	assert.True(t, strings.HasPrefix(lines[2], "2 "), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "4 "), lines[3])
	assert.Len(t, l.History(), 4)
}

func TestLogGenerationWithoutInit(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()
	l, err := NewLogger(filepath.Join(dir, "a.csv"), filepath.Join(dir, "a.jsonl"), &out)
	require.NoError(t, err)

	require.NoError(t, l.LogGeneration(1, stats(1), false))
	assert.Len(t, l.History(), 1)
	assert.NoError(t, l.Close())
}

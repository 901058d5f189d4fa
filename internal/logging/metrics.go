package logging

import (
	"cmp"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/gosuri/uitable"

	"evosim/internal/ga"
)

// Logger writes per-generation metrics to CSV, JSONL and the console
type Logger struct {
	csvPath     string
	jsonPath    string
	out         io.Writer
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	history     []GenerationSummary
	initialized bool
}

// NewLogger creates a new logger. Console output goes to out.
func NewLogger(csvPath, jsonPath string, out io.Writer) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
		out:      out,
	}

	// Ensure directories exist
	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// Init creates the log files and writes the CSV header
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return fmt.Errorf("create csv log: %w", err)
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{
		"generation", "size", "min_fitness", "max_fitness",
		"mean_fitness", "median_fitness", "stddev_fitness",
	}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}
	l.csvWriter.Flush()

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create json log: %w", err)
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *Logger) Close() error {
	var firstErr error
	if l.csvWriter != nil {
		l.csvWriter.Flush()
		firstErr = l.csvWriter.Error()
	}
	for _, f := range []*os.File{l.csvFile, l.jsonFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// GenerationSummary is one generation's fitness statistics
type GenerationSummary struct {
	Generation int `json:"generation"`
	ga.Statistics
}

// History returns every summary logged so far
func (l *Logger) History() []GenerationSummary {
	return l.history
}

// LogGeneration records a finished generation. The console line is
// written only when verbose is set.
func (l *Logger) LogGeneration(gen int, stats ga.Statistics, verbose bool) error {
	summary := GenerationSummary{Generation: gen, Statistics: stats}
	l.history = append(l.history, summary)

	if verbose {
		fmt.Fprintf(l.out, "Gen %4d | Min: %6.1f | Max: %6.1f | Mean: %6.2f | Median: %6.1f | Std: %6.2f\n",
			gen, stats.MinFitness, stats.MaxFitness, stats.MeanFitness, stats.MedianFitness, stats.StdDevFitness)
	}

	if !l.initialized {
		return nil
	}

	row := []string{
		strconv.Itoa(gen),
		strconv.Itoa(stats.Size),
		fmt.Sprintf("%.2f", stats.MinFitness),
		fmt.Sprintf("%.2f", stats.MaxFitness),
		fmt.Sprintf("%.4f", stats.MeanFitness),
		fmt.Sprintf("%.2f", stats.MedianFitness),
		fmt.Sprintf("%.4f", stats.StdDevFitness),
	}
	if err := l.csvWriter.Write(row); err != nil {
		return err
	}
	l.csvWriter.Flush()
	if err := l.csvWriter.Error(); err != nil {
		return err
	}

	line, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	_, err = l.jsonFile.Write(append(line, '\n'))
	return err
}

// LogTop prints the k generations with the highest mean fitness as a table
func (l *Logger) LogTop(k int) {
	top := slices.Clone(l.history)
	slices.SortStableFunc(top, func(a, b GenerationSummary) int {
		return cmp.Compare(b.MeanFitness, a.MeanFitness)
	})
	if k > len(top) {
		k = len(top)
	}

	table := uitable.New()
	table.MaxColWidth = 12
	table.AddRow("GEN", "MIN", "MAX", "MEAN", "MEDIAN", "STDDEV")
	for _, s := range top[:k] {
		table.AddRow(
			s.Generation,
			fmt.Sprintf("%.1f", s.MinFitness),
			fmt.Sprintf("%.1f", s.MaxFitness),
			fmt.Sprintf("%.2f", s.MeanFitness),
			fmt.Sprintf("%.1f", s.MedianFitness),
			fmt.Sprintf("%.2f", s.StdDevFitness),
		)
	}
	fmt.Fprintf(l.out, "  Top %d generations by mean fitness:\n", k)
	fmt.Fprintln(l.out, table)
}

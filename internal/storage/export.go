package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"sort"
	"strconv"
)

type runExport struct {
	Meta   RunMetadata          `json:"meta"`
	Times  []float64            `json:"times"`
	Series map[string][]float64 `json:"series"`
	Grid   [][]float64          `json:"grid,omitempty"`
}

// ExportJSONStdout writes a saved run, including its frame series and final
// density field, to stdout as indented JSON.
func (s *Store) ExportJSONStdout(runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	times, series, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}
	grid, err := s.LoadGrid(runID)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{Meta: *meta, Times: times, Series: series, Grid: grid})
}

// ExportCSVStdout writes a saved run's frame series to stdout as CSV.
func (s *Store) ExportCSVStdout(runID string) error {
	times, series, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, names...)); err != nil {
		return err
	}
	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, name := range names {
			row = append(row, strconv.FormatFloat(series[name][i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

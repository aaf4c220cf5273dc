package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"fluidlab/internal/fluid"
	"fluidlab/internal/sim"
)

// Store persists simulation runs under a data directory. Each run gets its
// own subdirectory holding metadata.json, the per-frame metric series as
// frames.csv, and the final density field as grid.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Init      string             `json:"init"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Frames    int                `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(init string, width, height int, dt, duration float64, seed int64, result *sim.Result, final *fluid.Grid) (string, error) {
	runID := fmt.Sprintf("%s_%d", init, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Width:     width,
		Height:    height,
		Init:      init,
		Seed:      seed,
		Dt:        dt,
		Duration:  duration,
		Frames:    result.Frames,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeFrames(runDir, result); err != nil {
		return "", err
	}

	if final != nil {
		if err := s.writeGrid(runDir, final); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) writeFrames(runDir string, result *sim.Result) error {
	f, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	names := make([]string, 0, len(result.Series))
	for name := range result.Series {
		names = append(names, name)
	}
	sort.Strings(names)

	header := append([]string{"time"}, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range result.Times {
		row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		for _, name := range names {
			row = append(row, strconv.FormatFloat(result.Series[name][i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeGrid(runDir string, g *fluid.Grid) error {
	f, err := os.Create(filepath.Join(runDir, "grid.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		row := make([]string, g.W)
		for x := 0; x < g.W; x++ {
			row[x] = strconv.FormatFloat(cells[y*g.W+x].Density, 'f', 6, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrames reads back the per-frame metric series of a saved run.
func (s *Store) LoadFrames(runID string) ([]float64, map[string][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 1 {
		return []float64{}, map[string][]float64{}, nil
	}

	names := records[0][1:]
	times := make([]float64, 0, len(records)-1)
	series := make(map[string][]float64, len(names))

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != len(names)+1 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		for j, name := range names {
			val, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				val = 0
			}
			series[name] = append(series[name], val)
		}
	}

	return times, series, nil
}

// LoadGrid reads back the final density field of a saved run as rows of
// densities.
func (s *Store) LoadGrid(runID string) ([][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "grid.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, 0, len(records))
	for _, record := range records {
		row := make([]float64, 0, len(record))
		for _, field := range record {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("bad grid value %q: %w", field, err)
			}
			row = append(row, val)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

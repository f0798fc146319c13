// Package series provides the time-series data the chart renders:
// loading and saving in JSON and CSV, synthetic demo generators, and
// resampling of the visible window into chart columns.
package series

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Series is one named sequence of samples. Times are optional for
// rendering but preserved through load/save round trips.
type Series struct {
	Name   string    `json:"name"`
	Times  []float64 `json:"times,omitempty"`
	Values []float64 `json:"values"`
}

func (s *Series) Len() int { return len(s.Values) }

// Load reads a series from path, dispatching on the file extension
// (.json or .csv).
func Load(path string) (*Series, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported series format: %s", path)
	}
}

func LoadJSON(path string) (*Series, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Series
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(s.Values) == 0 {
		return nil, fmt.Errorf("%s: empty series", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &s, nil
}

// LoadCSV reads time,value rows. A non-numeric first row is treated
// as a header.
func LoadCSV(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	s := &Series{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("%s: row %d has %d columns, want 2", path, i+1, len(row))
		}
		t, errT := strconv.ParseFloat(row[0], 64)
		v, errV := strconv.ParseFloat(row[1], 64)
		if errT != nil || errV != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("%s: bad row %d", path, i+1)
		}
		s.Times = append(s.Times, t)
		s.Values = append(s.Values, v)
	}
	if len(s.Values) == 0 {
		return nil, fmt.Errorf("%s: empty series", path)
	}
	return s, nil
}

func (s *Series) SaveJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func (s *Series) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "value"}); err != nil {
		return err
	}
	for i, v := range s.Values {
		t := float64(i)
		if i < len(s.Times) {
			t = s.Times[i]
		}
		row := []string{
			strconv.FormatFloat(t, 'f', 6, 64),
			strconv.FormatFloat(v, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Window resamples the fraction [startFrac, endFrac) of the series
// into cols values by linear interpolation, for rendering one chart
// frame. Fractions outside [0,1] are clamped.
func (s *Series) Window(startFrac, endFrac float64, cols int) []float64 {
	if cols <= 0 || len(s.Values) == 0 {
		return nil
	}
	startFrac = clampFrac(startFrac)
	endFrac = clampFrac(endFrac)
	if endFrac < startFrac {
		startFrac, endFrac = endFrac, startFrac
	}

	out := make([]float64, cols)
	last := float64(len(s.Values) - 1)
	span := endFrac - startFrac
	for i := 0; i < cols; i++ {
		frac := startFrac
		if cols > 1 {
			frac = startFrac + span*float64(i)/float64(cols-1)
		}
		out[i] = s.at(frac * last)
	}
	return out
}

// at linearly interpolates the value at a fractional sample index.
func (s *Series) at(idx float64) float64 {
	if idx <= 0 {
		return s.Values[0]
	}
	if idx >= float64(len(s.Values)-1) {
		return s.Values[len(s.Values)-1]
	}
	lo := int(idx)
	frac := idx - float64(lo)
	return s.Values[lo] + frac*(s.Values[lo+1]-s.Values[lo])
}

func clampFrac(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

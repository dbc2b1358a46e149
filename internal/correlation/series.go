package correlation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names of a year-indexed series file
const (
	ColYear  = "year"
	ColValue = "value"
)

// Series is one named year-indexed sequence of observations. Years are
// kept sorted ascending with their values aligned by index.
type Series struct {
	Name   string    `json:"name"`
	Years  []int     `json:"years"`
	Values []float64 `json:"values"`
}

// Len returns the number of observations
func (s Series) Len() int {
	return len(s.Years)
}

// Align inner-joins two series on year, returning the paired values in
// ascending year order. Years present in only one series are discarded.
func Align(a, b Series) (x, y []float64) {
	bByYear := make(map[int]float64, b.Len())
	for i, year := range b.Years {
		bByYear[year] = b.Values[i]
	}

	var years []int
	aByYear := make(map[int]float64, a.Len())
	for i, year := range a.Years {
		if _, ok := bByYear[year]; ok {
			aByYear[year] = a.Values[i]
			years = append(years, year)
		}
	}
	sort.Ints(years)

	x = make([]float64, len(years))
	y = make([]float64, len(years))
	for i, year := range years {
		x[i] = aByYear[year]
		y[i] = bByYear[year]
	}
	return x, y
}

// seriesTypes pins the column types of a year/value file
var seriesTypes = map[string]series.Type{
	ColYear:  series.Int,
	ColValue: series.Float,
}

// Load reads one two-column year/value CSV into a Series named after
// the file.
func Load(path string) (Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("failed to open series: %w", err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(file,
		dataframe.HasHeader(true),
		dataframe.WithTypes(seriesTypes),
	)
	if df.Err != nil {
		return Series{}, fmt.Errorf("failed to parse series %s: %w", path, df.Err)
	}

	for _, col := range []string{ColYear, ColValue} {
		if !contains(df.Names(), col) {
			return Series{}, fmt.Errorf("series %s: missing column %s", path, col)
		}
	}

	yearsFloat := df.Col(ColYear).Float()
	values := df.Col(ColValue).Float()
	years := make([]int, len(yearsFloat))
	for i, y := range yearsFloat {
		years[i] = int(y)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s := Series{Name: name, Years: years, Values: values}
	s.sortByYear()
	return s, nil
}

// LoadDir loads every .csv file in the directory as an independent
// series, ordered by name for deterministic pairing.
func LoadDir(dir string) ([]Series, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read series directory: %w", err)
	}

	var all []Series
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		s, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		all = append(all, s)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no series files found in %s", dir)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (s *Series) sortByYear() {
	idx := make([]int, len(s.Years))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return s.Years[idx[i]] < s.Years[idx[j]] })

	years := make([]int, len(idx))
	values := make([]float64, len(idx))
	for i, j := range idx {
		years[i] = s.Years[j]
		values[i] = s.Values[j]
	}
	s.Years, s.Values = years, values
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

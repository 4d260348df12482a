// Package csv loads bar data from comma separated files with the
// column layout: timestamp (epoch ms), open, high, low, close, volume.
// Column mapping and type coercion happens here so the core engine
// only ever sees validated bars.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tradekit/backtester/data"
)

var errWrongColumnCount = errors.New("expected 6 columns: timestamp,open,high,low,close,volume")

// LoadBarsFromFile reads bars from the file at path. A single header
// row is tolerated and skipped when its first field is not numeric.
func LoadBarsFromFile(path string) ([]data.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadBars(f)
}

// LoadBars reads bars from r until EOF.
func LoadBars(r io.Reader) ([]data.Bar, error) {
	reader := csv.NewReader(r)
	var out []data.Bar
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if len(row) != 6 {
			return nil, fmt.Errorf("%w, received %v on line %v", errWrongColumnCount, len(row), line)
		}
		if line == 1 {
			if _, err = strconv.ParseInt(row[0], 10, 64); err != nil {
				// header row
				continue
			}
		}
		b, err := parseBar(row)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func parseBar(row []string) (data.Bar, error) {
	var b data.Bar
	var err error
	if b.Time, err = strconv.ParseInt(row[0], 10, 64); err != nil {
		return b, fmt.Errorf("invalid timestamp %q: %w", row[0], err)
	}
	fields := []struct {
		name string
		dest *float64
	}{
		{"open", &b.Open},
		{"high", &b.High},
		{"low", &b.Low},
		{"close", &b.Close},
		{"volume", &b.Volume},
	}
	for i := range fields {
		*fields[i].dest, err = strconv.ParseFloat(row[i+1], 64)
		if err != nil {
			return b, fmt.Errorf("invalid %v %q: %w", fields[i].name, row[i+1], err)
		}
	}
	return b, nil
}

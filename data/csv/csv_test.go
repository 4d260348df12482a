package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `timestamp,open,high,low,close,volume
1600000000000,100,101,99,100.5,1000
1600000060000,100.5,102,100,101.5,1100
1600000120000,101.5,101.6,100.2,100.4,900
`

func TestLoadBars(t *testing.T) {
	bars, err := LoadBars(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Len(t, bars, 3)
	assert.Equal(t, int64(1600000000000), bars[0].Time)
	assert.Equal(t, 100.0, bars[0].Open)
	assert.Equal(t, 900.0, bars[2].Volume)
}

func TestLoadBarsNoHeader(t *testing.T) {
	bars, err := LoadBars(strings.NewReader("1600000000000,100,101,99,100.5,1000\n"))
	require.NoError(t, err)
	require.Len(t, bars, 1)
}

func TestLoadBarsBadColumnCount(t *testing.T) {
	_, err := LoadBars(strings.NewReader("1600000000000,100,101\n"))
	assert.ErrorIs(t, err, errWrongColumnCount)
}

func TestLoadBarsBadValue(t *testing.T) {
	_, err := LoadBars(strings.NewReader("1600000000000,100,oops,99,100.5,1000\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid high")
}

func TestLoadBarsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))
	bars, err := LoadBarsFromFile(path)
	require.NoError(t, err)
	assert.Len(t, bars, 3)

	_, err = LoadBarsFromFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

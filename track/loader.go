package track

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const utf8BOM = "\ufeff"

// Load reads a track table from disk. Files ending in .gpx are read as GPX,
// everything else as comma-separated text.
func Load(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".gpx") {
		return LoadGPX(path)
	}
	return LoadCSV(path)
}

// LoadCSV opens a comma-separated file with a header row.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses comma-separated text. The first record is the header and
// every later record must have the same number of fields.
func ReadCSV(r io.Reader) (*Table, error) {
	csvr := csv.NewReader(r)
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, ErrNoHeader
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], utf8BOM)
	}
	return &Table{Columns: head, Rows: rec[1:]}, nil
}

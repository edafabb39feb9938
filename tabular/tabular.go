// Package tabular reads processed per-source CSV files in fixed-size row
// chunks. Preprocessing guarantees the columns already match the declared
// column configuration for a source; this package only deals in rows.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Row is one CSV record keyed by column name. Empty string means null.
type Row map[string]string

// ReadChunks streams path in chunks of at most size rows, invoking fn with a
// sequential chunk index for each. A size of zero or less reads the whole
// file as a single chunk. Any error from fn aborts the read.
func ReadChunks(path string, size int, fn func(chunk int, rows []Row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return fmt.Errorf("file %q is empty", path)
	} else if err != nil {
		return fmt.Errorf("could not read header of %q: %v", path, err)
	}

	chunk := 0
	var rows []Row
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		err := fn(chunk, rows)
		chunk++
		rows = nil
		return err
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("could not read row from %q: %v", path, err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
		if size > 0 && len(rows) >= size {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}

// ScanColumn streams every value of a single column. It is used for the
// watermark pass, which only needs the date column of each source.
func ScanColumn(path, column string, fn func(value string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("could not read header of %q: %v", path, err)
	}
	idx := -1
	for i, col := range header {
		if col == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("column %q not found in %q", column, path)
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("could not read row from %q: %v", path, err)
		}
		if idx < len(rec) {
			fn(rec[idx])
		}
	}
}

// FileSize reports the size of path in bytes.
func FileSize(path string) (int64, error) {
	st, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}

package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/hoursreport/internal/domain"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
)

// LoadFile reads a CSV export from disk.
func LoadFile(path string) ([]domain.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rerr.WithOp(rerr.Wrapf(err, rerr.KindInput, "opening %s", path), "import")
	}
	defer f.Close()
	return Read(f, filepath.Base(path))
}

// Read parses a CSV export. The whole file is rejected when any row is
// malformed; the error lists every bad row by its line in the file. Quotes
// follow RFC 4180: a quoted field must close before the next comma, and a
// literal quote inside a field is written as "". name labels error messages.
func Read(r io.Reader, name string) ([]domain.Session, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, rerr.Inputf("%s is empty", name)
	}
	if err != nil {
		return nil, rerr.Wrapf(err, rerr.KindInput, "reading %s header", name)
	}
	cols, err := ResolveColumns(header)
	if err != nil {
		return nil, rerr.WithField(rerr.Wrapf(err, rerr.KindInput, "%s", name), "header")
	}

	var (
		sessions []domain.Session
		rowErrs  []RowError
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, parseRowError(err))
			continue
		}
		if blank(record) {
			continue
		}
		line, _ := cr.FieldPos(0)
		s, errs := convertRow(record, cols, line)
		for _, e := range errs {
			rowErrs = append(rowErrs, RowError{Line: line, Err: e})
		}
		if len(errs) == 0 {
			sessions = append(sessions, s)
		}
	}

	if len(rowErrs) > 0 {
		return nil, rejectFile(name, rowErrs)
	}
	return sessions, nil
}

// ScanDir lists the *.csv files in dir sorted by name.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, rerr.Wrapf(err, rerr.KindInput, "reading data dir %s", dir)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// parseRowError reports a record the csv reader could not split. The reader
// resumes on the next line, so later rows are still checked.
func parseRowError(err error) RowError {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return RowError{Line: perr.StartLine, Err: fmt.Errorf("column %d: %w", perr.Column, perr.Err)}
	}
	return RowError{Err: err}
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

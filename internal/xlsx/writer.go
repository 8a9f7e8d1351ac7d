// Package xlsx writes layout workbooks to .xlsx files with excelize.
package xlsx

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/alexanderramin/hoursreport/internal/layout"
	"github.com/alexanderramin/hoursreport/internal/logger"
)

// Writer builds and persists workbooks.
type Writer struct {
	// Retries is the number of extra save attempts after a failure, for
	// targets briefly locked by a spreadsheet application.
	Retries    int
	RetryDelay time.Duration
	Log        *logger.Logger

	rename func(oldpath, newpath string) error
}

// NewWriter returns a writer with the given retry policy.
func NewWriter(retries int, delay time.Duration, log *logger.Logger) *Writer {
	if log == nil {
		log = logger.Nop()
	}
	return &Writer{Retries: max(retries, 0), RetryDelay: delay, Log: log, rename: os.Rename}
}

// Build converts a workbook model into an excelize file. The blank default
// sheet of a new file becomes the first layout sheet, so no "Sheet1" is
// left behind. The caller closes the returned file.
func (w *Writer) Build(wb *layout.Workbook) (*excelize.File, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil, rerr.Layoutf("workbook has no sheets")
	}

	f := excelize.NewFile()
	styles := newStyleCache(f)

	for i, s := range wb.Sheets {
		var err error
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), s.Name)
		} else {
			_, err = f.NewSheet(s.Name)
		}
		if err != nil {
			f.Close()
			return nil, rerr.Wrapf(err, rerr.KindLayout, "creating sheet %q", s.Name)
		}
		if err := writeSheet(f, styles, s); err != nil {
			f.Close()
			return nil, rerr.WithField(rerr.Wrapf(err, rerr.KindLayout, "writing sheet %q", s.Name), s.Name)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, styles *styleCache, s *layout.Sheet) error {
	name := s.Name

	for _, c := range s.Cells() {
		cell, err := excelize.CoordinatesToCellName(c.Col, c.Row)
		if err != nil {
			return err
		}
		if c.Value != nil {
			if err := f.SetCellValue(name, cell, c.Value); err != nil {
				return err
			}
		}
		if c.Style == (layout.Style{}) {
			continue
		}
		id, err := styles.id(c.Style)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(name, cell, cell, id); err != nil {
			return err
		}
	}

	for _, m := range s.Merges {
		from, err := excelize.CoordinatesToCellName(m.From.Col, m.From.Row)
		if err != nil {
			return err
		}
		to, err := excelize.CoordinatesToCellName(m.To.Col, m.To.Row)
		if err != nil {
			return err
		}
		if err := f.MergeCell(name, from, to); err != nil {
			return err
		}
	}

	for col, width := range s.ColWidths {
		letter, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, letter, letter, width); err != nil {
			return err
		}
	}
	for row, height := range s.RowHeights {
		if err := f.SetRowHeight(name, row, height); err != nil {
			return err
		}
	}

	if s.TabColor != "" {
		tab := s.TabColor
		if err := f.SetSheetProps(name, &excelize.SheetPropsOptions{TabColorRGB: &tab}); err != nil {
			return err
		}
	}
	if !s.ShowGridLines {
		show := false
		if err := f.SetSheetView(name, 0, &excelize.ViewOptions{ShowGridLines: &show}); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo builds the workbook and streams it to out.
func (w *Writer) WriteTo(wb *layout.Workbook, out io.Writer) error {
	f, err := w.Build(wb)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(out); err != nil {
		return rerr.Wrap(err, rerr.KindPersistence, "writing workbook")
	}
	return nil
}

// Save builds the workbook and writes it to path through a temp file in the
// same directory, retrying failed attempts. Cancellation is honoured between
// attempts.
func (w *Writer) Save(ctx context.Context, wb *layout.Workbook, path string) error {
	f, err := w.Build(wb)
	if err != nil {
		return err
	}
	defer f.Close()

	log := logger.C(ctx, w.Log)
	attempts := 1 + w.Retries
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return rerr.WithOp(rerr.Wrapf(ctx.Err(), rerr.KindPersistence, "saving %s", path), "persist")
			case <-time.After(w.RetryDelay):
			}
		}
		if err := ctx.Err(); err != nil {
			return rerr.WithOp(rerr.Wrapf(err, rerr.KindPersistence, "saving %s", path), "persist")
		}

		lastErr = w.writeAtomic(f, path)
		if lastErr == nil {
			log.Debug().Str("path", path).Int("attempt", i+1).Msg("workbook saved")
			return nil
		}
		log.Warn().Err(lastErr).Str("path", path).Int("attempt", i+1).Int("attempts", attempts).Msg("save failed")
	}
	return rerr.WithOp(rerr.Wrapf(lastErr, rerr.KindPersistence, "saving %s after %d attempt(s)", path, attempts), "persist")
}

func (w *Writer) writeAtomic(f *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".hoursreport-*.xlsx.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return err
	}

	rename := w.rename
	if rename == nil {
		rename = os.Rename
	}
	if err := rename(tmpPath, path); err != nil {
		return err
	}
	success = true
	return nil
}

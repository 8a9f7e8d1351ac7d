package importer

import (
	"fmt"

	rerr "github.com/alexanderramin/hoursreport/internal/errors"
)

// RowError is a problem with one data row.
type RowError struct {
	Line int // 1-based line in the file where the row starts
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// rejectFile turns the collected row problems into a single input error.
func rejectFile(name string, rowErrs []RowError) error {
	errs := make([]error, len(rowErrs))
	for i, e := range rowErrs {
		errs[i] = e
	}
	return rerr.WithOp(
		rerr.List(rerr.KindInput, fmt.Sprintf("%s has malformed rows", name), errs),
		"import")
}

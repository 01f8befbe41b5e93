package ordnung

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kvendingoldo/ordnung/format"
	"github.com/kvendingoldo/ordnung/validate"
)

var (
	// ErrFormatDetection is returned when a document cannot be
	// classified as either format.
	ErrFormatDetection = format.ErrDetect

	// ErrLoad covers syntax failures and empty sources, with the
	// underlying cause preserved.
	ErrLoad = errors.New("load error")

	// ErrSave covers render and write failures.
	ErrSave = errors.New("save error")

	// ErrValidation means canonicalization provably lost or altered
	// data. It is fatal for the document it occurred on.
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries the structural validator's full report.
type ValidationError struct {
	Path   string
	Report []validate.Discrepancy
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Report)+1)
	lines = append(lines, fmt.Sprintf("%s: %s: %d discrepancies",
		ErrValidation, e.Path, len(e.Report)))
	for _, d := range e.Report {
		lines = append(lines, "  "+d.String())
	}
	return strings.Join(lines, "\n")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

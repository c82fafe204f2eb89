package blend

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput reports mismatched shapes, channel counts or pyramid lengths.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDimensionUnderflow reports a pyramid depth that would reduce an
	// image below its usable footprint.
	ErrDimensionUnderflow = errors.New("dimension underflow")
)

func invalidInput(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

func dimensionUnderflow(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDimensionUnderflow, format, args...)
}

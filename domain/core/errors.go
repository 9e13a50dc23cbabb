package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Input schema and parse errors
	ErrMissingColumn  = errors.New("required column missing")
	ErrBadCount       = errors.New("count cell is not a non-negative integer")
	ErrDuplicateLabel = errors.New("duplicate measurement label")

	// Dataset boundary errors
	ErrEmptyDataset = errors.New("dataset contains no records")

	// Output errors
	ErrExportFailed = errors.New("figure export failed")
)

// Error constructors with context
func NewSchemaError(missing []string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
}

func NewParseError(row int, cell string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: row %d value %q: %v", ErrBadCount, row, cell, err)
	}
	return fmt.Errorf("%w: row %d value %q", ErrBadCount, row, cell)
}

func NewDuplicateLabelError(label string, row int) error {
	return fmt.Errorf("%w: %q at row %d", ErrDuplicateLabel, label, row)
}

func NewExportError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrExportFailed, path, err)
}

// Error checking helpers
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

func IsParseError(err error) bool {
	return errors.Is(err, ErrBadCount)
}

func IsLoadError(err error) bool {
	return errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrBadCount) ||
		errors.Is(err, ErrDuplicateLabel)
}

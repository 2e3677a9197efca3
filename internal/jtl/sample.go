// Package jtl reads load-test result logs in the JMeter CSV (.jtl) layout.
package jtl

import "errors"

// Column names read from the header row. Matching is case-sensitive.
const (
	ColumnLabel        = "label"
	ColumnElapsed      = "elapsed"
	ColumnResponseCode = "responseCode"
	ColumnSuccess      = "success"
)

// RequiredColumns lists the columns every input must carry, in lookup order.
var RequiredColumns = []string{ColumnLabel, ColumnElapsed, ColumnResponseCode, ColumnSuccess}

var (
	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("input is empty")
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("missing required column")
	// ErrInvalidValue is returned when a field cannot be interpreted.
	ErrInvalidValue = errors.New("invalid value")
)

// Sample is one HTTP sample from the result log
type Sample struct {
	Label        string
	Elapsed      float64 // milliseconds
	ResponseCode string
	Success      bool
	Line         int // 1-based line in the input, header is line 1
}

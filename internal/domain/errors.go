package domain

import "errors"

// Pipeline failures are reported by wrapping one of these sentinels; match
// them with errors.Is.
var (
	// ErrDataLoad means the dataset could not be opened or read.
	ErrDataLoad = errors.New("data load failed")
	// ErrSchema means a required column is missing from the dataset header.
	ErrSchema = errors.New("dataset schema mismatch")
	// ErrDataInsufficient means a regression was requested on fewer than two
	// distinct years.
	ErrDataInsufficient = errors.New("insufficient data for regression")
	// ErrOutputWrite means a rendered chart could not be written.
	ErrOutputWrite = errors.New("output write failed")
)

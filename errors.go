package dataset

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrNotFound means the csv file does not exist at read time.
	ErrNotFound = xerrors.New("csv file not found")
	// ErrNoTarget means a split was requested without a configured target column.
	ErrNoTarget = xerrors.New("target column not specified")
)

/*
MissingColumnsError means one or more configured columns are absent from the loaded csv
*/
type MissingColumnsError struct {
	Missing   []string // configured columns absent from the csv
	Available []string // columns the csv actually has
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("columns not found in csv: %v, available: %v", e.Missing, e.Available)
}

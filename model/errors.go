package model

import "fmt"

// ParseError reports a malformed user-supplied date, time, or side value.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// UnknownTeamError reports a short code with no entry in the reference dataset.
type UnknownTeamError struct {
	Code string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("unknown team code %q", e.Code)
}

// DataError reports a malformed or unreadable local dataset or state file.
type DataError struct {
	Path string
	Err  error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("bad data in %s: %v", e.Path, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

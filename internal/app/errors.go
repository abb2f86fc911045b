package app

import "fmt"

// TerminalSizeError means the terminal is too small for the two panes.
type TerminalSizeError struct {
	Rows, Cols       int
	MinRows, MinCols int
}

func (e *TerminalSizeError) Error() string {
	if e.Rows < e.MinRows {
		return fmt.Sprintf("terminal has less than %d lines", e.MinRows)
	}
	return fmt.Sprintf("terminal has less than %d cols", e.MinCols)
}

// InstallError means the chosen theme could not be made the default.
type InstallError struct {
	Theme string
	Err   error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("could not install theme '%s': %v", e.Theme, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

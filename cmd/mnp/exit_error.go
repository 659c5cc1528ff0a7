package main

import "fmt"

// exitError carries a process exit code out of a RunE handler.
type exitError struct {
	Code int
	Err  error
}

func (e *exitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *exitError) Unwrap() error {
	return e.Err
}

// failed wraps err so that main exits with status 1.
func failed(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{Code: 1, Err: err}
}

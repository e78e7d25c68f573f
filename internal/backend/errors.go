package backend

import (
	"errors"
	"fmt"
)

// ErrRequestFailed is the only failure the client surfaces. It covers
// transport errors, non-2xx statuses and replies that are not valid JSON or
// do not match the expected shape.
type ErrRequestFailed struct {
	Endpoint   string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *ErrRequestFailed) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request %s failed (status %d): %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request %s failed: %v", e.Endpoint, e.Err)
}

func (e *ErrRequestFailed) Unwrap() error { return e.Err }

// StatusOf returns the HTTP status recorded on err, or 0.
func StatusOf(err error) int {
	var rf *ErrRequestFailed
	if errors.As(err, &rf) {
		return rf.StatusCode
	}
	return 0
}

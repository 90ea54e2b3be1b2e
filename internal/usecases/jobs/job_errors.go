package jobs

import "errors"

var (
	// ErrJobNotFound is returned when the job ID does not exist.
	ErrJobNotFound = errors.New("background job not found")

	// ErrJobNotRunning is returned when a cancel request hits a job that
	// already reached a terminal state.
	ErrJobNotRunning = errors.New("background job is not running")
)

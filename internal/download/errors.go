package download

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyURL is returned when the request has a blank URL. No process is spawned.
	ErrEmptyURL = errors.New("url is empty")

	// ErrBusy is returned when a download is already in flight
	ErrBusy = errors.New("a download is already running")
)

// LaunchError reports that the external tool could not be started
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

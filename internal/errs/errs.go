// Package errs collects errors from deferred cleanup funcs without losing
// the error that caused the unwind.
package errs

import (
	"fmt"
	"testing"

	"go.uber.org/multierr"
)

// Capture runs errF and folds any error it returns into *err, wrapping it
// with msg if msg is not empty. Intended for deferred cleanup:
//
//	defer errs.Capture(&mErr, f.Close, "close output file")
//
// If *err is already non-nil the cleanup error is appended as a multierr
// rather than replacing it.
func Capture(err *error, errF func() error, msg string) {
	fErr := errF()
	if fErr == nil {
		return
	}
	if msg != "" {
		fErr = fmt.Errorf(msg+": %w", fErr)
	}
	multierr.AppendInto(err, fErr)
}

// CaptureT reports any error returned by errF through t.Error, wrapping it
// with msg if msg is not empty.
func CaptureT(t *testing.T, errF func() error, msg string) {
	t.Helper()
	err := errF()
	if err == nil {
		return
	}
	if msg == "" {
		t.Error(err)
		return
	}
	t.Errorf(msg+": %s", err)
}

// Package errkind defines the error kinds surfaced at configuration time by
// the lens-correction core. Runtime sampling failures (a source coordinate
// falling outside the image, a projection hitting an out-of-domain trig
// argument) are not represented here: they are recovered locally by the
// interpolator and never reach the caller as an error.
package errkind

import "github.com/pkg/errors"

// IllegalArgument wraps a configuration-time parameter that is out of range,
// e.g. a negative focal length, a non-positive Lanczos radius, or a view
// with zero width or height.
type IllegalArgument struct {
	cause error
}

// NewIllegalArgument builds an IllegalArgument from a formatted message.
func NewIllegalArgument(format string, args ...interface{}) *IllegalArgument {
	return &IllegalArgument{cause: errors.Errorf(format, args...)}
}

// WrapIllegalArgument attaches the IllegalArgument kind to an existing error.
func WrapIllegalArgument(err error, msg string) *IllegalArgument {
	return &IllegalArgument{cause: errors.Wrap(err, msg)}
}

func (e *IllegalArgument) Error() string { return e.cause.Error() }
func (e *IllegalArgument) Unwrap() error { return e.cause }

// NotImplemented marks a requested combination (storage x interpolator x
// queue kind) that has no implementation. Unsupported geometry-conversion
// pairings are reported as IllegalArgument.
type NotImplemented struct {
	cause error
}

// NewNotImplemented builds a NotImplemented from a formatted message.
func NewNotImplemented(format string, args ...interface{}) *NotImplemented {
	return &NotImplemented{cause: errors.Errorf(format, args...)}
}

func (e *NotImplemented) Error() string { return e.cause.Error() }
func (e *NotImplemented) Unwrap() error { return e.cause }

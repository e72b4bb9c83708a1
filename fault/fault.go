package fault

import (
	"go.uber.org/zap"

	"github.com/wippyai/csnappy/errors"
)

// Status is the foreign-visible result of invoking local code. Values are
// part of the C contract and must not be renumbered.
type Status int32

const (
	StatusOK    Status = 0 // callback completed
	StatusError Status = 1 // callback returned an error
	StatusPanic Status = 2 // callback panicked; panic intercepted at the boundary
)

// String returns the status name for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	case StatusPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Contain runs fn and flattens its outcome into a Status that is safe to
// return across the foreign boundary. A panic inside fn is recovered, logged,
// and reported as StatusPanic together with a structured error carrying the
// panic value; fn's own error becomes StatusError. The returned error is for
// the local caller only and never crosses the boundary.
func Contain(op string, fn func() error) (status Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("panic intercepted at foreign boundary",
				zap.String("op", op),
				zap.Any("panic", r))
			status = StatusPanic
			err = errors.BoundaryFault(op, r)
		}
	}()

	if ferr := fn(); ferr != nil {
		return StatusError, ferr
	}
	return StatusOK, nil
}

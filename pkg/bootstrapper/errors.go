package bootstrapper

import "github.com/pkg/errors"

var ErrStrategyMustBeSet = errors.New("strategy must be set")

// InvalidStateError is returned when the bootstrapper is used out of its
// lifecycle order.
type InvalidStateError string

func (e InvalidStateError) Error() string {
	return "invalid bootstrapper state: " + string(e)
}

const (
	errNotInitialized     = InvalidStateError("not initialized")
	errAlreadyInitialized = InvalidStateError("already initialized")
	errClosed             = InvalidStateError("closed")
	errBusy               = InvalidStateError("already running or shutting down")
)

var _ error = InvalidStateError("")

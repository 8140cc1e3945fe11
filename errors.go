package consumable

import (
	"errors"

	"github.com/lif0/go-consumable/internal"
)

// ErrPoisoned is returned by every SharedCollection operation once an operation panicked while
// holding the lock. Use errors.Is(err, ErrPoisoned) to detect this case.
var ErrPoisoned = internal.ErrPoisoned

// PoisonedError is the concrete error behind ErrPoisoned. Value holds the original panic value.
type PoisonedError = internal.PoisonedError

// ErrNotInitialized is returned when a zero SharedCollection is used. Create one with NewShared.
var ErrNotInitialized = errors.New("shared collection is not initialized")

// ErrPollerStarted is returned when Poller.Run is called more than once.
var ErrPollerStarted = errors.New("poller already started")

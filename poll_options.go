package consumable

import (
	"log"
	"time"
)

const defaultPollInterval = 100 * time.Millisecond

type pollConfig struct {
	interval time.Duration
	triggers []<-chan struct{}
	logger   *log.Logger
}

type PollOption func(*pollConfig)

// WithInterval sets how often the poller consumes when no trigger fires.
// If not specified, the default interval is 100 milliseconds.
func WithInterval(interval time.Duration) PollOption {
	if interval <= 0 {
		panic("poll interval can't be <= 0")
	}
	return func(c *pollConfig) {
		c.interval = interval
	}
}

// WithTrigger adds channels that make the poller consume right away on every receive,
// without waiting for the next tick. Producers can use it to signal new records.
//
// Example:
//
//	ready := make(chan struct{}, 1)
//	p := consumable.NewPoller(c, "+CSQ", handle, consumable.WithTrigger(ready))
func WithTrigger(chs ...<-chan struct{}) PollOption {
	return func(c *pollConfig) {
		c.triggers = append(c.triggers, chs...)
	}
}

// WithLogger sets the logger used to report handler failures. Defaults to log.Default().
func WithLogger(logger *log.Logger) PollOption {
	return func(c *pollConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newDefaultPollConfig() *pollConfig {
	config := &pollConfig{}
	WithInterval(defaultPollInterval)(config)
	WithLogger(log.Default())(config)

	return config
}

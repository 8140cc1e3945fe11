package consumable

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lif0/pkg/concurrency/chanx"
	"github.com/lif0/pkg/utils/errx"
)

// HandlerFunc receives every non-empty batch a Poller consumes. The batch is owned by the handler.
type HandlerFunc func(ctx context.Context, batch *Collection) error

// Poller repeatedly consumes one pattern from a Consumer and hands the batches to a handler.
//
// Consume itself never waits for data; Poller is the waiting loop around it. Handler errors
// are logged and collected, they do not stop the loop.
//
// Poller implements the GracefulShutdown(ctx) error contract of github.com/lif0/go-gracefully,
// so it can be registered there directly.
type Poller struct {
	src     Consumer
	pattern string
	handle  HandlerFunc
	cfg     *pollConfig

	started  atomic.Bool
	status   atomic.Int32
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	runErr   error

	mu   sync.Mutex
	errs errx.MultiError
}

// NewPoller creates a Poller that consumes pattern from src. Call Run to start it.
func NewPoller(src Consumer, pattern string, handle HandlerFunc, opts ...PollOption) *Poller {
	if src == nil {
		panic("consumer can't be nil")
	}
	if handle == nil {
		panic("handler can't be nil")
	}

	c := newDefaultPollConfig()
	for _, opt := range opts {
		opt(c)
	}

	return &Poller{
		src:     src,
		pattern: pattern,
		handle:  handle,
		cfg:     c,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		errs:    errx.MultiError{},
	}
}

// Run polls until ctx is canceled or Stop is called, then consumes one last time and returns.
//
// A non-nil error means the source failed (e.g. its storage is poisoned); the loop stops
// without the final drain in that case.
func (p *Poller) Run(ctx context.Context) error {
	if !p.started.CompareAndSwap(false, true) {
		return ErrPollerStarted
	}

	p.runErr = p.run(ctx)
	p.status.Store(int32(StatusStopped))
	close(p.done)

	return p.runErr
}

func (p *Poller) run(ctx context.Context) error {
	// FanIn forwarders live until ctx is done, so they must not outlive Run.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.status.Store(int32(StatusRunning))

	var trigger <-chan struct{}
	if len(p.cfg.triggers) > 0 {
		trigger = chanx.FanIn(ctx, p.cfg.triggers...)
	}

	tick := time.NewTicker(p.cfg.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return p.drain(context.WithoutCancel(ctx))
		case <-p.stop:
			return p.drain(ctx)
		case _, ok := <-trigger:
			if !ok {
				trigger = nil
				continue
			}
		case <-tick.C:
		}

		if err := p.poll(ctx); err != nil {
			return err
		}
	}
}

// Stop asks Run to drain and return. It does not wait; use GracefulShutdown for that.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

// GracefulShutdown stops the poller and waits until the final batch has been handled.
//
// If Run was never called, the remaining matching records are consumed and handled here.
// The returned error joins the source error, if any, with all collected handler errors.
func (p *Poller) GracefulShutdown(ctx context.Context) error {
	p.Stop()

	if p.started.CompareAndSwap(false, true) {
		p.runErr = p.drain(ctx)
		p.status.Store(int32(StatusStopped))
		close(p.done)
	}

	select {
	case <-p.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	errs := p.Errors()
	return errors.Join(p.runErr, errs.MaybeUnwrap())
}

// Done is closed once the poller has stopped.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

// Errors returns a copy of the handler errors collected so far.
func (p *Poller) Errors() errx.MultiError {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.errs)
}

// Status reports the lifecycle state. It is StatusIdle until Run or GracefulShutdown is called.
func (p *Poller) Status() Status {
	return Status(p.status.Load())
}

func (p *Poller) drain(ctx context.Context) error {
	p.status.Store(int32(StatusDraining))
	return p.poll(ctx)
}

func (p *Poller) poll(ctx context.Context) error {
	batch, err := p.src.Consume(p.pattern)
	if err != nil {
		return fmt.Errorf("consume %q: %w", p.pattern, err)
	}
	if batch == nil {
		return nil
	}

	if err := p.handle(ctx, batch); err != nil {
		p.cfg.logger.Printf("consumable: handler failed for %d records matching %q: %v\n", batch.Len(), p.pattern, err)

		p.mu.Lock()
		p.errs.Append(err)
		p.mu.Unlock()
	}

	return nil
}

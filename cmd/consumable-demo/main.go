// Command consumable-demo runs producers that append records to one shared collection
// while a poller consumes them by prefix. It stops when every producer is done or on
// SIGINT/SIGTERM, draining what is left before exiting.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lif0/go-gracefully"
	"golang.org/x/sync/errgroup"

	"github.com/lif0/go-consumable"
)

func main() {
	var (
		producers = flag.Int("producers", 2, "number of producer goroutines")
		records   = flag.Int("records", 99, "records added by every producer")
		pattern   = flag.String("pattern", "Produced", "prefix the consumer takes out")
		interval  = flag.Duration("interval", 100*time.Millisecond, "consumer poll interval")
	)
	flag.Parse()

	finished := make(chan struct{}, 1)
	gracefully.SetShutdownTrigger(context.Background(),
		gracefully.WithSysSignal(),
		gracefully.WithUserChanSignal(finished),
	)

	store := consumable.NewShared(nil)

	var consumed atomic.Int64
	poller := consumable.NewPoller(store.Clone(), *pattern, func(_ context.Context, batch *consumable.Collection) error {
		consumed.Add(int64(batch.Len()))
		log.Printf("consumed %d records: %v\n", batch.Len(), batch)
		return nil
	}, consumable.WithInterval(*interval))
	gracefully.MustRegister(poller)

	go func() {
		if err := poller.Run(context.Background()); err != nil {
			log.Printf("poller stopped: %v\n", err)
		}
	}()

	var g errgroup.Group
	for range *producers {
		h := store.Clone()
		id := uuid.New()
		g.Go(func() error {
			for n := 1; n <= *records; n++ {
				if err := h.Add(fmt.Sprintf("Produced: %d by %s", n, id)); err != nil {
					return fmt.Errorf("producer %s: %w", id, err)
				}
				time.Sleep(time.Duration(n) * time.Millisecond)
			}
			return nil
		})
	}

	go func() {
		if err := g.Wait(); err != nil {
			log.Println(err)
		}
		finished <- struct{}{}
	}()

	gracefully.WaitShutdown()
	if !gracefully.GlobalError().IsEmpty() {
		log.Println(gracefully.GlobalError().MaybeUnwrap().Error())
	}

	total := *producers * *records
	left, _ := store.Len()
	log.Printf("done: %d of %d records consumed, %d left\n", consumed.Load(), total, left)
}

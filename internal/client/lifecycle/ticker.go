package lifecycle

import (
	"context"
	"time"
)

// Clock returns the current instant. time.Now satisfies it.
type Clock func() time.Time

// Ticker re-renders a countdown in the background. Create it with
// StartCountdown and release it with Stop (or by cancelling the parent
// context).
type Ticker struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// StartCountdown calls onTick with the current countdown text immediately
// and then every interval. It stops on its own right after delivering
// EndedText, and otherwise when ctx is cancelled or Stop is called.
//
// onTick runs on the ticker goroutine and must not call Stop.
func StartCountdown(ctx context.Context, now Clock, end time.Time, interval time.Duration, onTick func(text string)) *Ticker {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = time.Second
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		tick := time.NewTicker(interval)
		defer tick.Stop()

		for {
			text := CountdownText(now(), end)
			onTick(text)
			if text == EndedText {
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-tick.C:
			}
		}
	}()

	return t
}

// Stop cancels the ticker and waits for its goroutine to exit, so no
// onTick call happens after Stop returns. It is safe to call more than once.
func (t *Ticker) Stop() {
	t.cancel()
	<-t.done
}

// Done is closed when the ticker goroutine has exited.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}

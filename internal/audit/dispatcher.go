package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/inshape-booking/internal/models"
)

const (
	queueSize     = 100
	recordTimeout = 5 * time.Second
)

// Dispatcher records attempts on a background worker so a slow sink never
// holds up a booking response.
type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan models.BookingAttempt

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan models.BookingAttempt, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		if err := d.sink.Record(ctx, &ev); err != nil {
			d.log.Error("audit error", zap.Error(err), zap.String("request_id", ev.RequestID))
		}
		cancel()
	}
}

// Dispatch never blocks; when the queue is full or the dispatcher is
// closed the attempt is dropped.
func (d *Dispatcher) Dispatch(ev models.BookingAttempt) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", zap.String("request_id", ev.RequestID))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("request_id", ev.RequestID))
	}
}

// Close stops accepting attempts and waits for queued ones to be written,
// or for ctx to expire. It is safe to call more than once.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

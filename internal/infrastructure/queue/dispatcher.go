package queue

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeaid/care-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the email, guaranteeing per-user event ordering.
type Dispatcher struct {
	workers []chan ports.AuditEvent
	sink    ports.AuditSink
	log     zerolog.Logger
	onDrop  func(ports.AuditEvent)

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

type Option func(*Dispatcher)

// WithDropHandler is called for every event discarded because its shard is full.
func WithDropHandler(fn func(ports.AuditEvent)) Option {
	return func(d *Dispatcher) { d.onDrop = fn }
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.AuditSink, log zerolog.Logger, opts ...Option) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuditEvent, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEvent, channelBuffer)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start launches all worker goroutines.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Publish hands an event to the worker responsible for its email. It never
// blocks: when the shard is full or the dispatcher is closed the event is dropped.
func (d *Dispatcher) Publish(event ports.AuditEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(event, "dispatcher closed")
		return
	}

	select {
	case d.workers[d.shardIndex(event.Email)] <- event:
	default:
		d.drop(event, "shard full")
	}
}

// Close stops accepting events and waits for queued ones to be written, or
// for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) drop(event ports.AuditEvent, reason string) {
	d.log.Warn().
		Str("type", string(event.Type)).
		Str("email", event.Email).
		Str("reason", reason).
		Msg("audit event dropped")
	if d.onDrop != nil {
		d.onDrop(event)
	}
}

func (d *Dispatcher) runWorker(id int, ch <-chan ports.AuditEvent) {
	defer d.wg.Done()
	for event := range ch {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.sink.Write(ctx, event); err != nil {
			d.log.Error().Err(err).
				Str("type", string(event.Type)).
				Str("email", event.Email).
				Int("worker_id", id).
				Msg("audit write failed")
		}
		cancel()
	}
}

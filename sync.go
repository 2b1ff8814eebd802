package lazy

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Options configures a Sync.
type Options struct {
	// Name identifies the value in logs.
	Name string

	// Logger receives load and panic events. Defaults to discarding.
	Logger *slog.Logger

	// Metrics counts loads, hits and panics. Defaults to
	// AtomicMetricsCollector.
	Metrics MetricsCollector
}

// Sync is a Value that is safe for concurrent use. Concurrent first reads
// call the initializer once; the other readers wait for it to return.
//
// Calling Get on the same Sync from inside its initializer deadlocks.
type Sync[T any] struct {
	mu      sync.Mutex
	done    atomic.Bool
	fn      func() T
	v       T
	name    string
	logger  *slog.Logger
	metrics MetricsCollector
}

func NewSync[T any](fn func() T) (*Sync[T], error) {
	return NewSyncWithOptions(fn, Options{})
}

func NewSyncWithOptions[T any](fn func() T, opts Options) (*Sync[T], error) {
	if fn == nil {
		return nil, ErrNilInitializer
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Metrics == nil {
		opts.Metrics = new(AtomicMetricsCollector)
	}

	return &Sync[T]{
		fn:      fn,
		name:    opts.Name,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}, nil
}

func MustSync[T any](fn func() T) *Sync[T] {
	s, err := NewSync(fn)
	if err != nil {
		panic(err)
	}

	return s
}

// Get returns the cached value, calling the initializer if no read has
// completed it yet. A panicking initializer leaves the value unloaded.
func (s *Sync[T]) Get() T {
	if s.done.Load() {
		s.metrics.IncHits()
		return s.v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have loaded it while we waited.
	if s.done.Load() {
		s.metrics.IncHits()
		return s.v
	}

	s.load()

	return s.v
}

func (s *Sync[T]) IsLoaded() bool {
	return s.done.Load()
}

func (s *Sync[T]) Peek() (T, bool) {
	if !s.done.Load() {
		var zero T
		return zero, false
	}

	return s.v, true
}

// Metrics returns the collector used by s.
func (s *Sync[T]) Metrics() MetricsCollector {
	return s.metrics
}

func (s *Sync[T]) load() {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.metrics.IncPanics()
			s.logger.Error("lazy",
				slog.String("event", "panic"),
				slog.String("name", s.name),
				slog.Any("panic", r),
				slog.Duration("took", time.Since(start)))

			panic(r)
		}
	}()

	res := s.fn()
	s.v = res
	s.done.Store(true)
	s.metrics.IncLoads()

	s.logger.Info("lazy",
		slog.String("event", "load"),
		slog.String("name", s.name),
		slog.Duration("took", time.Since(start)))
}

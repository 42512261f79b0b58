// Package events implements the in-process toast notification channel. The
// submission workflow publishes success/error/loading/dismiss events and a UI
// layer (or the demo driver) subscribes to render them.
package events

import (
	"sync"
	"time"

	"github.com/formlab/formlab/logger"
	"github.com/formlab/formlab/types"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Config holds configuration for the Broker.
type Config struct {
	EventBufferSize int
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		EventBufferSize: 100,
	}
}

// metrics holds Prometheus metrics for the broker.
type metrics struct {
	eventCount        *prometheus.CounterVec
	droppedCount      prometheus.Counter
	activeSubscribers prometheus.Gauge
}

var (
	metricsInstance *metrics
	metricsOnce     sync.Once
	defaultRegistry = prometheus.DefaultRegisterer
)

// newMetrics initializes and registers Prometheus metrics, using a singleton
// pattern to avoid duplicate registration in tests.
func newMetrics() *metrics {
	metricsOnce.Do(func() {
		metricsInstance = &metrics{
			eventCount: promauto.With(defaultRegistry).NewCounterVec(prometheus.CounterOpts{
				Name: "toast_events_total",
				Help: "Total number of toast events published",
			}, []string{"type"}),
			droppedCount: promauto.With(defaultRegistry).NewCounter(prometheus.CounterOpts{
				Name: "toast_events_dropped_total",
				Help: "Toast events dropped because a subscriber buffer was full",
			}),
			activeSubscribers: promauto.With(defaultRegistry).NewGauge(prometheus.GaugeOpts{
				Name: "toast_active_subscribers",
				Help: "Number of active toast subscribers",
			}),
		}
	})
	return metricsInstance
}

// Broker is the in-memory types.ToastPublisher. Events fan out to every
// subscriber; sends never block (a full subscriber buffer drops the event
// for that subscriber only). Loading handles are independent; dismissing one
// handle never affects other notifications.
type Broker struct {
	log     *zap.SugaredLogger
	cfg     Config
	metrics *metrics

	mu          sync.RWMutex
	subscribers map[string]chan types.ToastEvent
	closed      bool
}

// NewBroker creates a toast broker.
func NewBroker(cfg ...Config) *Broker {
	c := DefaultConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	if c.EventBufferSize <= 0 {
		c.EventBufferSize = DefaultConfig().EventBufferSize
	}
	return &Broker{
		log:         logger.GetLogger().Named("toast_broker"),
		cfg:         c,
		metrics:     newMetrics(),
		subscribers: make(map[string]chan types.ToastEvent),
	}
}

// Subscribe registers a consumer and returns its event channel plus an
// unsubscribe function. The channel is closed on unsubscribe or Close.
func (b *Broker) Subscribe() (<-chan types.ToastEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New().String()
	ch := make(chan types.ToastEvent, b.cfg.EventBufferSize)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subscribers[id] = ch
	b.metrics.activeSubscribers.Inc()

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
			b.metrics.activeSubscribers.Dec()
		}
	}
	return ch, unsubscribe
}

// Close shuts the broker down and closes all subscriber channels.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
		b.metrics.activeSubscribers.Dec()
	}
}

func (b *Broker) publish(event types.ToastEvent) {
	event.Timestamp = time.Now().UTC()

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	b.metrics.eventCount.WithLabelValues(string(event.Type)).Inc()
	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is not keeping up; fire-and-forget semantics.
			b.metrics.droppedCount.Inc()
			b.log.Warnw("Dropped toast event", "type", event.Type, "handle", event.Handle)
		}
	}
}

// Success emits a success toast.
func (b *Broker) Success(message string) {
	b.publish(types.ToastEvent{Type: types.ToastSuccess, Message: message})
}

// Error emits an error toast.
func (b *Broker) Error(message string) {
	b.publish(types.ToastEvent{Type: types.ToastError, Message: message})
}

// Loading emits a non-expiring loading toast and returns its handle.
func (b *Broker) Loading(message string) string {
	handle := uuid.New().String()
	b.publish(types.ToastEvent{Type: types.ToastLoading, Message: message, Handle: handle})
	return handle
}

// Dismiss emits a dismiss event for the given handle. Dismissing an unknown
// or already-dismissed handle is a no-op for consumers.
func (b *Broker) Dismiss(handle string) {
	if handle == "" {
		return
	}
	b.publish(types.ToastEvent{Type: types.ToastDismiss, Handle: handle})
}

package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"match-service/internal/metrics"
)

// Payload describes one domain event and who should hear about it
type Payload struct {
	ActorID      uuid.UUID
	Recipients   []uuid.UUID
	MatchID      uuid.UUID
	MatchTitle   string
	ResourceType string
	ResourceID   uuid.UUID
	Metadata     map[string]interface{}
}

// Dispatcher accepts notification events. Emit never blocks on delivery
// and never reports delivery failures to the caller.
type Dispatcher interface {
	Emit(notificationType NotificationType, payload Payload)
}

// Sink is a named delivery target
type Sink struct {
	Name   string
	Client NotificationClient
}

// DispatcherConfig configures the asynchronous dispatcher
type DispatcherConfig struct {
	QueueSize   int
	Workers     int
	SendTimeout time.Duration
}

type dispatchJob struct {
	notificationType NotificationType
	events           []NotificationEvent
}

// AsyncDispatcher delivers events to every sink from a bounded queue.
// When the queue is full the event is dropped and counted.
type AsyncDispatcher struct {
	sinks   []Sink
	queue   chan dispatchJob
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewAsyncDispatcher starts the worker goroutines
func NewAsyncDispatcher(cfg DispatcherConfig, sinks []Sink, logger *zap.Logger, m *metrics.Metrics) *AsyncDispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &AsyncDispatcher{
		sinks:   sinks,
		queue:   make(chan dispatchJob, cfg.QueueSize),
		timeout: cfg.SendTimeout,
		logger:  logger,
		metrics: m,
	}
	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
	return d
}

// Emit queues the event for delivery
func (d *AsyncDispatcher) Emit(notificationType NotificationType, payload Payload) {
	events := BuildEvents(notificationType, payload)
	if len(events) == 0 {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(notificationType, "closed", len(events))
		return
	}
	select {
	case d.queue <- dispatchJob{notificationType: notificationType, events: events}:
	default:
		d.drop(notificationType, "queue_full", len(events))
	}
}

func (d *AsyncDispatcher) drop(notificationType NotificationType, reason string, count int) {
	d.metrics.IncrementNotificationDropped(reason)
	d.logger.Warn("Notification dropped",
		zap.String("type", string(notificationType)),
		zap.String("reason", reason),
		zap.Int("recipients", count),
	)
}

func (d *AsyncDispatcher) run() {
	defer d.wg.Done()
	for job := range d.queue {
		d.deliver(job)
	}
}

func (d *AsyncDispatcher) deliver(job dispatchJob) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Panic while delivering notification",
				zap.String("type", string(job.notificationType)),
				zap.Any("panic", r),
			)
		}
	}()

	for _, sink := range d.sinks {
		events := make([]NotificationEvent, len(job.events))
		copy(events, job.events)

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err := sink.Client.SendBulkNotifications(ctx, events)
		cancel()

		d.metrics.RecordNotificationDispatch(string(job.notificationType), sink.Name, err)
		if err != nil {
			d.logger.Warn("Failed to deliver notification",
				zap.String("sink", sink.Name),
				zap.String("type", string(job.notificationType)),
				zap.Int("count", len(events)),
				zap.Error(err),
			)
		}
	}
}

// Close stops accepting events and waits for queued events to drain
// or for ctx to expire.
func (d *AsyncDispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
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

// BuildEvents expands a payload into one event per distinct recipient
func BuildEvents(notificationType NotificationType, payload Payload) []NotificationEvent {
	resourceType := payload.ResourceType
	if resourceType == "" {
		resourceType = ResourceTypeMatch
	}
	resourceID := payload.ResourceID
	if resourceID == uuid.Nil {
		resourceID = payload.MatchID
	}

	seen := make(map[uuid.UUID]struct{}, len(payload.Recipients))
	events := make([]NotificationEvent, 0, len(payload.Recipients))
	now := time.Now().UTC().Format(time.RFC3339)
	for _, userID := range payload.Recipients {
		if userID == uuid.Nil {
			continue
		}
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}

		events = append(events, NotificationEvent{
			Type:         notificationType,
			ActorID:      payload.ActorID,
			TargetUserID: userID,
			MatchID:      payload.MatchID,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			ResourceName: payload.MatchTitle,
			Metadata:     payload.Metadata,
			OccurredAt:   now,
		})
	}
	return events
}

// NoOpDispatcher discards every event
type NoOpDispatcher struct{}

func (NoOpDispatcher) Emit(NotificationType, Payload) {}

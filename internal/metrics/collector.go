package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"match-service/internal/domain"
)

// MatchCounter counts matches grouped by lifecycle status
type MatchCounter interface {
	CountByStatus(ctx context.Context) (map[domain.MatchStatus]int64, error)
}

// PendingInvitationCounter counts invitations still awaiting a response
type PendingInvitationCounter interface {
	CountPending(ctx context.Context) (int64, error)
}

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	matches     MatchCounter
	invitations PendingInvitationCounter
	metrics     *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(matches MatchCounter, invitations PendingInvitationCounter, metrics *Metrics, logger *zap.Logger, interval time.Duration) *BusinessMetricsCollector {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &BusinessMetricsCollector{
		matches:     matches,
		invitations: invitations,
		metrics:     metrics,
		logger:      logger,
		ticker:      time.NewTicker(interval),
		done:        make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		// 즉시 한 번 수집
		c.collect()

		// 주기적 수집
		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	close(c.done)
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	counts, err := c.matches.CountByStatus(ctx)
	if err != nil {
		c.logger.Error("Failed to count matches by status", zap.Error(err))
	} else {
		for _, status := range domain.AllMatchStatuses {
			c.metrics.SetMatchesByStatus(string(status), counts[status])
		}
	}

	pending, err := c.invitations.CountPending(ctx)
	if err != nil {
		c.logger.Error("Failed to count pending invitations", zap.Error(err))
	} else {
		c.metrics.SetPendingInvitations(pending)
	}
}

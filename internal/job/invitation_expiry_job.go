package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InvitationExpirer flips lapsed pending invitations to expired
type InvitationExpirer interface {
	ExpireStaleInvitations(ctx context.Context) (int64, error)
}

// InvitationExpiryJob sweeps expired invitations on a schedule.
// Responding to an invitation also expires it lazily, so a missed run only
// delays the status change seen by listings.
type InvitationExpiryJob struct {
	expirer InvitationExpirer
	logger  *zap.Logger
	timeout time.Duration
}

// NewInvitationExpiryJob creates a new InvitationExpiryJob instance
func NewInvitationExpiryJob(expirer InvitationExpirer, logger *zap.Logger, timeout time.Duration) *InvitationExpiryJob {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &InvitationExpiryJob{
		expirer: expirer,
		logger:  logger,
		timeout: timeout,
	}
}

// Run implements cron.Job
func (j *InvitationExpiryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	n, err := j.expirer.ExpireStaleInvitations(ctx)
	if err != nil {
		j.logger.Error("Invitation expiry sweep failed", zap.Error(err))
		return
	}

	j.logger.Info("Invitation expiry sweep completed",
		zap.Int64("expired", n),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// NewScheduler registers job under spec. Overlapping runs are skipped and
// panics are recovered and logged.
func NewScheduler(spec string, job cron.Job, logger *zap.Logger) (*cron.Cron, error) {
	cl := cronLogger{logger.Sugar()}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddJob(spec, job); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return c, nil
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}

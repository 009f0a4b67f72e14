package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"match-service/internal/domain"
	"match-service/internal/repository"
	"match-service/internal/testutil"
)

func TestBusinessMetricsCollector_Collect(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	m := getTestMetrics()

	owner := uuid.New()
	statuses := []domain.MatchStatus{domain.MatchStatusOpen, domain.MatchStatusOpen, domain.MatchStatusFull, domain.MatchStatusCanceled}
	var firstMatch uuid.UUID
	for _, st := range statuses {
		match := &domain.Match{
			OwnerID:     owner,
			Title:       "collector",
			ScheduledAt: time.Now().UTC().Add(time.Hour),
			MaxPlayers:  4,
			Status:      st,
		}
		require.NoError(t, db.Create(match).Error)
		if firstMatch == uuid.Nil {
			firstMatch = match.ID
		}
	}
	for i, st := range []domain.InvitationStatus{domain.InvitationStatusPending, domain.InvitationStatusPending, domain.InvitationStatusDeclined} {
		require.NoError(t, db.Create(&domain.Invitation{
			MatchID:   firstMatch,
			InviterID: owner,
			InviteeID: uuid.New(),
			Status:    st,
			ExpiresAt: time.Now().UTC().Add(time.Duration(i+1) * time.Hour),
		}).Error)
	}

	store := repository.NewStore(db)
	collector := NewBusinessMetricsCollector(store.Matches(), store.Invitations(), m, zap.NewNop(), time.Hour)
	collector.collect()

	assert.Equal(t, 2.0, getGaugeValue(t, m.MatchesByStatus.WithLabelValues("open")))
	assert.Equal(t, 1.0, getGaugeValue(t, m.MatchesByStatus.WithLabelValues("full")))
	assert.Equal(t, 1.0, getGaugeValue(t, m.MatchesByStatus.WithLabelValues("canceled")))
	assert.Equal(t, 0.0, getGaugeValue(t, m.MatchesByStatus.WithLabelValues("in_progress")))
	assert.Equal(t, 2.0, getGaugeValue(t, m.PendingInvitations))
}

func TestBusinessMetricsCollector_FoldsLegacyLabels(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	m := getTestMetrics()

	owner := uuid.New()
	for _, label := range []string{"cancelled", "canceled", "completed"} {
		match := &domain.Match{
			OwnerID:     owner,
			Title:       "legacy",
			ScheduledAt: time.Now().UTC().Add(time.Hour),
			MaxPlayers:  4,
			Status:      domain.MatchStatusOpen,
		}
		require.NoError(t, db.Create(match).Error)
		require.NoError(t, db.Exec("UPDATE matches SET status = ? WHERE id = ?", label, match.ID).Error)
	}

	store := repository.NewStore(db)
	NewBusinessMetricsCollector(store.Matches(), store.Invitations(), m, zap.NewNop(), time.Hour).collect()

	assert.Equal(t, 2.0, getGaugeValue(t, m.MatchesByStatus.WithLabelValues("canceled")))
	assert.Equal(t, 1.0, getGaugeValue(t, m.MatchesByStatus.WithLabelValues("finished")))
	assert.Equal(t, 0.0, getGaugeValue(t, m.MatchesByStatus.WithLabelValues("open")))
	// no series for the legacy labels themselves
	assert.Equal(t, len(domain.AllMatchStatuses), promtestutil.CollectAndCount(m.MatchesByStatus))
}

type failingCounters struct{}

func (failingCounters) CountByStatus(context.Context) (map[domain.MatchStatus]int64, error) {
	return nil, errors.New("store down")
}

func (failingCounters) CountPending(context.Context) (int64, error) {
	return 0, errors.New("store down")
}

func TestBusinessMetricsCollector_StoreErrorsKeepLastValues(t *testing.T) {
	m := getTestMetrics()
	m.SetPendingInvitations(7)

	assert.NotPanics(t, func() {
		NewBusinessMetricsCollector(failingCounters{}, failingCounters{}, m, zap.NewNop(), time.Hour).collect()
	})
	assert.Equal(t, 7.0, getGaugeValue(t, m.PendingInvitations))
}

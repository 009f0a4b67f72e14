package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"match-service/internal/domain"
	"match-service/internal/dto"
	"match-service/internal/repository"
	"match-service/internal/testutil"
)

// testClock hands out strictly increasing timestamps so join order is stable
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: fixedNow}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// engineFixture wires both services to one sqlite database
type engineFixture struct {
	store       repository.Store
	clock       *testClock
	dispatcher  *recordingDispatcher
	matches     MatchService
	invitations InvitationService
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	store := repository.NewStore(db)
	clock := newTestClock()
	d := &recordingDispatcher{}

	return &engineFixture{
		store:       store,
		clock:       clock,
		dispatcher:  d,
		matches:     NewMatchService(store, d, MatchOptions{MaxPlayers: 100, Now: clock.Now}, nil, nil),
		invitations: NewInvitationService(store, d, InvitationOptions{TTL: DefaultInvitationTTL, Now: clock.Now}, nil, nil),
	}
}

// givenOpenMatch creates and publishes a match owned by ownerID
func (f *engineFixture) givenOpenMatch(t *testing.T, ownerID uuid.UUID, maxPlayers int) uuid.UUID {
	t.Helper()
	resp, err := f.matches.CreateMatch(context.Background(), ownerID, &dto.CreateMatchRequest{
		Title:      "Sunday futsal",
		Sport:      "futsal",
		Location:   "Riverside court 2",
		Date:       "2026-10-25",
		Time:       "10:00",
		MaxPlayers: maxPlayers,
		Publish:    true,
	})
	require.NoError(t, err)
	return resp.ID
}

func (f *engineFixture) loadMatch(t *testing.T, matchID uuid.UUID) *domain.Match {
	t.Helper()
	m, err := f.store.Matches().FindByID(context.Background(), matchID)
	require.NoError(t, err)
	return m
}

// requireConsistent asserts the stored counter equals the counted participations
// and never exceeds capacity
func (f *engineFixture) requireConsistent(t *testing.T, matchID uuid.UUID) *domain.Match {
	t.Helper()
	m := f.loadMatch(t, matchID)
	counted, err := f.store.Participations().CountCounted(context.Background(), matchID)
	require.NoError(t, err)
	require.Equal(t, int(counted), m.CurrentPlayers, "counter drifted from participations")
	require.LessOrEqual(t, m.CurrentPlayers, m.MaxPlayers, "capacity exceeded")
	if m.Status == domain.MatchStatusFull {
		require.Equal(t, m.MaxPlayers, m.CurrentPlayers, "full match with free slots")
	}
	return m
}

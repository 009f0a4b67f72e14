package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"match-service/internal/client"
	"match-service/internal/domain"
	"match-service/internal/repository"
)

// MockMatchRepository is a mock implementation of MatchRepository
type MockMatchRepository struct {
	CreateFunc                     func(ctx context.Context, match *domain.Match) error
	FindByIDFunc                   func(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	FindByIDForUpdateFunc          func(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	FindByIDWithParticipationsFunc func(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	UpdateStatusFunc               func(ctx context.Context, id uuid.UUID, status domain.MatchStatus, stamps map[string]interface{}) error
	SetPlayerCountFunc             func(ctx context.Context, id uuid.UUID, count int) (bool, error)
	CountByStatusFunc              func(ctx context.Context) (map[domain.MatchStatus]int64, error)
}

func (m *MockMatchRepository) Create(ctx context.Context, match *domain.Match) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, match)
	}
	return nil
}

func (m *MockMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockMatchRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	if m.FindByIDForUpdateFunc != nil {
		return m.FindByIDForUpdateFunc(ctx, id)
	}
	return m.FindByID(ctx, id)
}

func (m *MockMatchRepository) FindByIDWithParticipations(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	if m.FindByIDWithParticipationsFunc != nil {
		return m.FindByIDWithParticipationsFunc(ctx, id)
	}
	return m.FindByID(ctx, id)
}

func (m *MockMatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus, stamps map[string]interface{}) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, stamps)
	}
	return nil
}

func (m *MockMatchRepository) SetPlayerCount(ctx context.Context, id uuid.UUID, count int) (bool, error) {
	if m.SetPlayerCountFunc != nil {
		return m.SetPlayerCountFunc(ctx, id, count)
	}
	return true, nil
}

func (m *MockMatchRepository) CountByStatus(ctx context.Context) (map[domain.MatchStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[domain.MatchStatus]int64{}, nil
}

// MockParticipationRepository is a mock implementation of ParticipationRepository
type MockParticipationRepository struct {
	CreateFunc              func(ctx context.Context, participation *domain.Participation) error
	FindByMatchAndUserFunc  func(ctx context.Context, matchID, userID uuid.UUID) (*domain.Participation, error)
	FindByMatchFunc         func(ctx context.Context, matchID uuid.UUID) ([]*domain.Participation, error)
	CountCountedFunc        func(ctx context.Context, matchID uuid.UUID) (int64, error)
	FindCountedUserIDsFunc  func(ctx context.Context, matchID uuid.UUID) ([]uuid.UUID, error)
	FindFirstWaitlistedFunc func(ctx context.Context, matchID uuid.UUID) (*domain.Participation, error)
	UpdateStatusFunc        func(ctx context.Context, id uuid.UUID, status domain.ParticipationStatus) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
}

func (m *MockParticipationRepository) Create(ctx context.Context, participation *domain.Participation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participation)
	}
	if participation.ID == uuid.Nil {
		participation.ID = uuid.New()
	}
	return nil
}

func (m *MockParticipationRepository) FindByMatchAndUser(ctx context.Context, matchID, userID uuid.UUID) (*domain.Participation, error) {
	if m.FindByMatchAndUserFunc != nil {
		return m.FindByMatchAndUserFunc(ctx, matchID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockParticipationRepository) FindByMatch(ctx context.Context, matchID uuid.UUID) ([]*domain.Participation, error) {
	if m.FindByMatchFunc != nil {
		return m.FindByMatchFunc(ctx, matchID)
	}
	return nil, nil
}

func (m *MockParticipationRepository) CountCounted(ctx context.Context, matchID uuid.UUID) (int64, error) {
	if m.CountCountedFunc != nil {
		return m.CountCountedFunc(ctx, matchID)
	}
	return 0, nil
}

func (m *MockParticipationRepository) FindCountedUserIDs(ctx context.Context, matchID uuid.UUID) ([]uuid.UUID, error) {
	if m.FindCountedUserIDsFunc != nil {
		return m.FindCountedUserIDsFunc(ctx, matchID)
	}
	return nil, nil
}

func (m *MockParticipationRepository) FindFirstWaitlisted(ctx context.Context, matchID uuid.UUID) (*domain.Participation, error) {
	if m.FindFirstWaitlistedFunc != nil {
		return m.FindFirstWaitlistedFunc(ctx, matchID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockParticipationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ParticipationStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockParticipationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockInvitationRepository is a mock implementation of InvitationRepository
type MockInvitationRepository struct {
	CreateFunc                       func(ctx context.Context, invitation *domain.Invitation) error
	FindByIDFunc                     func(ctx context.Context, id uuid.UUID) (*domain.Invitation, error)
	FindByIDForUpdateFunc            func(ctx context.Context, id uuid.UUID) (*domain.Invitation, error)
	FindPendingByMatchAndInviteeFunc func(ctx context.Context, matchID, inviteeID uuid.UUID) (*domain.Invitation, error)
	FindByInviteeFunc                func(ctx context.Context, inviteeID uuid.UUID, status *domain.InvitationStatus) ([]*domain.Invitation, error)
	ResolveFunc                      func(ctx context.Context, id uuid.UUID, status domain.InvitationStatus, at time.Time) (bool, error)
	ExpirePendingFunc                func(ctx context.Context, now time.Time) (int64, error)
	CountPendingFunc                 func(ctx context.Context) (int64, error)
}

func (m *MockInvitationRepository) Create(ctx context.Context, invitation *domain.Invitation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, invitation)
	}
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}
	return nil
}

func (m *MockInvitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockInvitationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	if m.FindByIDForUpdateFunc != nil {
		return m.FindByIDForUpdateFunc(ctx, id)
	}
	return m.FindByID(ctx, id)
}

func (m *MockInvitationRepository) FindPendingByMatchAndInvitee(ctx context.Context, matchID, inviteeID uuid.UUID) (*domain.Invitation, error) {
	if m.FindPendingByMatchAndInviteeFunc != nil {
		return m.FindPendingByMatchAndInviteeFunc(ctx, matchID, inviteeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockInvitationRepository) FindByInvitee(ctx context.Context, inviteeID uuid.UUID, status *domain.InvitationStatus) ([]*domain.Invitation, error) {
	if m.FindByInviteeFunc != nil {
		return m.FindByInviteeFunc(ctx, inviteeID, status)
	}
	return nil, nil
}

func (m *MockInvitationRepository) Resolve(ctx context.Context, id uuid.UUID, status domain.InvitationStatus, at time.Time) (bool, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, id, status, at)
	}
	return true, nil
}

func (m *MockInvitationRepository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	if m.ExpirePendingFunc != nil {
		return m.ExpirePendingFunc(ctx, now)
	}
	return 0, nil
}

func (m *MockInvitationRepository) CountPending(ctx context.Context) (int64, error) {
	if m.CountPendingFunc != nil {
		return m.CountPendingFunc(ctx)
	}
	return 0, nil
}

// MockStore wires the mock repositories together. WithTx runs fn against the
// same mocks unless WithTxFunc overrides it.
type MockStore struct {
	MatchRepo         *MockMatchRepository
	ParticipationRepo *MockParticipationRepository
	InvitationRepo    *MockInvitationRepository
	WithTxFunc        func(ctx context.Context, fn func(tx repository.Store) error) error
}

func newMockStore() *MockStore {
	return &MockStore{
		MatchRepo:         &MockMatchRepository{},
		ParticipationRepo: &MockParticipationRepository{},
		InvitationRepo:    &MockInvitationRepository{},
	}
}

func (m *MockStore) Matches() repository.MatchRepository                 { return m.MatchRepo }
func (m *MockStore) Participations() repository.ParticipationRepository { return m.ParticipationRepo }
func (m *MockStore) Invitations() repository.InvitationRepository       { return m.InvitationRepo }

func (m *MockStore) WithTx(ctx context.Context, fn func(tx repository.Store) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return fn(m)
}

// recordedEvent is one Emit call captured by recordingDispatcher
type recordedEvent struct {
	Type    client.NotificationType
	Payload client.Payload
}

// recordingDispatcher captures emitted notifications
type recordingDispatcher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (d *recordingDispatcher) Emit(t client.NotificationType, p client.Payload) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, recordedEvent{Type: t, Payload: p})
}

func (d *recordingDispatcher) Types() []client.NotificationType {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]client.NotificationType, len(d.events))
	for i, e := range d.events {
		out[i] = e.Type
	}
	return out
}

func (d *recordingDispatcher) Find(t client.NotificationType) (client.Payload, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.events {
		if e.Type == t {
			return e.Payload, true
		}
	}
	return client.Payload{}, false
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-service/internal/client"
	"match-service/internal/domain"
	"match-service/internal/dto"
	"match-service/internal/response"
)

func (f *engineFixture) givenInvitation(t *testing.T, matchID, inviterID, inviteeID uuid.UUID) *dto.InvitationResponse {
	t.Helper()
	inv, err := f.invitations.CreateInvitation(context.Background(), matchID, inviterID,
		&dto.CreateInvitationRequest{InviteeID: inviteeID})
	require.NoError(t, err)
	return inv
}

func (f *engineFixture) loadInvitation(t *testing.T, id uuid.UUID) *domain.Invitation {
	t.Helper()
	inv, err := f.store.Invitations().FindByID(context.Background(), id)
	require.NoError(t, err)
	return inv
}

func TestInvitationService_AcceptSeatsInvitee(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	ownerID, invitee := uuid.New(), uuid.New()

	// Given
	matchID := f.givenOpenMatch(t, ownerID, 4)
	inv := f.givenInvitation(t, matchID, ownerID, invitee)
	assert.Equal(t, "pending", inv.Status)
	assert.WithinDuration(t, fixedNow.Add(DefaultInvitationTTL), inv.ExpiresAt, time.Minute)

	// When
	resp, err := f.invitations.RespondToInvitation(ctx, inv.ID, invitee, dto.InvitationActionAccept)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Status)
	require.NotNil(t, resp.Participation)
	assert.Equal(t, "confirmed", resp.Participation.Status)
	assert.NotNil(t, resp.RespondedAt)

	m := f.requireConsistent(t, matchID)
	assert.Equal(t, 1, m.CurrentPlayers)
	assert.Equal(t, domain.InvitationStatusAccepted, f.loadInvitation(t, inv.ID).Status)

	received, ok := f.dispatcher.Find(client.NotificationInvitationReceived)
	require.True(t, ok)
	assert.Equal(t, []uuid.UUID{invitee}, received.Recipients)
	accepted, ok := f.dispatcher.Find(client.NotificationInvitationAccepted)
	require.True(t, ok)
	assert.Equal(t, []uuid.UUID{ownerID}, accepted.Recipients)
}

func TestInvitationService_AcceptIntoFullMatchWaitlists(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	ownerID, invitee := uuid.New(), uuid.New()

	matchID := f.givenOpenMatch(t, ownerID, 2)
	inv := f.givenInvitation(t, matchID, ownerID, invitee)
	for i := 0; i < 2; i++ {
		_, err := f.matches.JoinMatch(ctx, matchID, uuid.New(), nil)
		require.NoError(t, err)
	}

	resp, err := f.invitations.RespondToInvitation(ctx, inv.ID, invitee, dto.InvitationActionAccept)

	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Status)
	require.NotNil(t, resp.Participation)
	assert.Equal(t, "waitlisted", resp.Participation.Status)
	m := f.requireConsistent(t, matchID)
	assert.Equal(t, domain.MatchStatusFull, m.Status)
}

func TestInvitationService_AcceptFillsLastSlot(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	ownerID, invitee := uuid.New(), uuid.New()

	matchID := f.givenOpenMatch(t, ownerID, 2)
	_, err := f.matches.JoinMatch(ctx, matchID, uuid.New(), nil)
	require.NoError(t, err)
	inv := f.givenInvitation(t, matchID, ownerID, invitee)

	_, err = f.invitations.RespondToInvitation(ctx, inv.ID, invitee, dto.InvitationActionAccept)

	require.NoError(t, err)
	m := f.requireConsistent(t, matchID)
	assert.Equal(t, domain.MatchStatusFull, m.Status)
	assert.Contains(t, f.dispatcher.Types(), client.NotificationMatchFull)
}

func TestInvitationService_Decline(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	ownerID, invitee := uuid.New(), uuid.New()

	matchID := f.givenOpenMatch(t, ownerID, 4)
	inv := f.givenInvitation(t, matchID, ownerID, invitee)

	resp, err := f.invitations.RespondToInvitation(ctx, inv.ID, invitee, "DECLINE")

	require.NoError(t, err)
	assert.Equal(t, "declined", resp.Status)
	assert.Nil(t, resp.Participation)
	assert.Equal(t, 0, f.requireConsistent(t, matchID).CurrentPlayers)
	assert.Contains(t, f.dispatcher.Types(), client.NotificationInvitationDeclined)

	// a resolved invitation frees the pending slot for a new one
	again := f.givenInvitation(t, matchID, ownerID, invitee)
	assert.NotEqual(t, inv.ID, again.ID)
}

func TestInvitationService_ExpiredOnResponse(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	ownerID, invitee := uuid.New(), uuid.New()

	matchID := f.givenOpenMatch(t, ownerID, 4)
	inv := f.givenInvitation(t, matchID, ownerID, invitee)

	// When the invitee answers after the deadline
	f.clock.Advance(DefaultInvitationTTL + time.Minute)
	_, err := f.invitations.RespondToInvitation(ctx, inv.ID, invitee, dto.InvitationActionAccept)

	// Then the error is returned and the expiry sticks
	assert.Equal(t, response.ErrCodeInvitationExpired, response.CodeOf(err))
	assert.Equal(t, domain.InvitationStatusExpired, f.loadInvitation(t, inv.ID).Status)
	assert.Equal(t, 0, f.requireConsistent(t, matchID).CurrentPlayers)

	_, err = f.invitations.RespondToInvitation(ctx, inv.ID, invitee, dto.InvitationActionAccept)
	assert.Equal(t, response.ErrCodeAlreadyResolved, response.CodeOf(err))
}

func TestInvitationService_RespondErrors(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	ownerID, invitee := uuid.New(), uuid.New()
	matchID := f.givenOpenMatch(t, ownerID, 4)

	t.Run("실패: 초대 없음", func(t *testing.T) {
		_, err := f.invitations.RespondToInvitation(ctx, uuid.New(), invitee, dto.InvitationActionAccept)
		assert.Equal(t, response.ErrCodeNotFound, response.CodeOf(err))
	})

	t.Run("실패: 초대받은 사람이 아님", func(t *testing.T) {
		inv := f.givenInvitation(t, matchID, ownerID, uuid.New())
		_, err := f.invitations.RespondToInvitation(ctx, inv.ID, invitee, dto.InvitationActionAccept)
		assert.Equal(t, response.ErrCodeForbidden, response.CodeOf(err))
		assert.Equal(t, domain.InvitationStatusPending, f.loadInvitation(t, inv.ID).Status)
	})

	t.Run("실패: 잘못된 action", func(t *testing.T) {
		_, err := f.invitations.RespondToInvitation(ctx, uuid.New(), invitee, "maybe")
		assert.Equal(t, response.ErrCodeValidation, response.CodeOf(err))
	})

	t.Run("실패: 이미 응답함", func(t *testing.T) {
		other := uuid.New()
		inv := f.givenInvitation(t, matchID, ownerID, other)
		_, err := f.invitations.RespondToInvitation(ctx, inv.ID, other, dto.InvitationActionDecline)
		require.NoError(t, err)

		_, err = f.invitations.RespondToInvitation(ctx, inv.ID, other, dto.InvitationActionAccept)
		assert.Equal(t, response.ErrCodeAlreadyResolved, response.CodeOf(err))
	})
}

func TestInvitationService_FailedAcceptRollsBack(t *testing.T) {
	t.Run("실패: 그 사이 직접 참가한 경우", func(t *testing.T) {
		f := newEngineFixture(t)
		ctx := context.Background()
		ownerID, invitee := uuid.New(), uuid.New()
		matchID := f.givenOpenMatch(t, ownerID, 4)
		inv := f.givenInvitation(t, matchID, ownerID, invitee)

		_, err := f.matches.JoinMatch(ctx, matchID, invitee, nil)
		require.NoError(t, err)

		_, err = f.invitations.RespondToInvitation(ctx, inv.ID, invitee, dto.InvitationActionAccept)

		assert.Equal(t, response.ErrCodeAlreadyJoined, response.CodeOf(err))
		assert.Equal(t, domain.InvitationStatusPending, f.loadInvitation(t, inv.ID).Status)
		assert.Equal(t, 1, f.requireConsistent(t, matchID).CurrentPlayers)
	})

	t.Run("실패: 경기가 취소된 경우", func(t *testing.T) {
		f := newEngineFixture(t)
		ctx := context.Background()
		ownerID, invitee := uuid.New(), uuid.New()
		matchID := f.givenOpenMatch(t, ownerID, 4)
		inv := f.givenInvitation(t, matchID, ownerID, invitee)

		_, err := f.matches.CancelMatch(ctx, matchID, ownerID)
		require.NoError(t, err)

		_, err = f.invitations.RespondToInvitation(ctx, inv.ID, invitee, dto.InvitationActionAccept)

		assert.Equal(t, response.ErrCodeInvalidState, response.CodeOf(err))
		assert.Equal(t, domain.InvitationStatusPending, f.loadInvitation(t, inv.ID).Status)
		assert.Equal(t, 0, f.requireConsistent(t, matchID).CurrentPlayers)
	})
}

func TestInvitationService_CreateErrors(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	ownerID, player, invitee := uuid.New(), uuid.New(), uuid.New()
	matchID := f.givenOpenMatch(t, ownerID, 4)
	_, err := f.matches.JoinMatch(ctx, matchID, player, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		matchID  uuid.UUID
		inviter  uuid.UUID
		invitee  uuid.UUID
		wantCode string
	}{
		{"실패: 자기 자신 초대", matchID, ownerID, ownerID, response.ErrCodeValidation},
		{"실패: 경기 없음", uuid.New(), ownerID, invitee, response.ErrCodeNotFound},
		{"실패: 참가자가 아닌 초대자", matchID, uuid.New(), invitee, response.ErrCodeForbidden},
		{"실패: 이미 참가한 사용자", matchID, ownerID, player, response.ErrCodeAlreadyParticipant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.invitations.CreateInvitation(ctx, tt.matchID, tt.inviter,
				&dto.CreateInvitationRequest{InviteeID: tt.invitee})
			assert.Equal(t, tt.wantCode, response.CodeOf(err))
		})
	}

	t.Run("성공: 참가자도 초대 가능", func(t *testing.T) {
		inv, err := f.invitations.CreateInvitation(ctx, matchID, player,
			&dto.CreateInvitationRequest{InviteeID: invitee})
		require.NoError(t, err)
		assert.Equal(t, player, inv.InviterID)
	})

	t.Run("실패: 대기 중인 초대 중복", func(t *testing.T) {
		_, err := f.invitations.CreateInvitation(ctx, matchID, ownerID,
			&dto.CreateInvitationRequest{InviteeID: invitee})
		assert.Equal(t, response.ErrCodeDuplicateInvitation, response.CodeOf(err))
	})
}

func TestInvitationService_CreateOnClosedMatch(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	matchID := f.givenOpenMatch(t, ownerID, 4)
	_, err := f.matches.CancelMatch(ctx, matchID, ownerID)
	require.NoError(t, err)

	_, err = f.invitations.CreateInvitation(ctx, matchID, ownerID, &dto.CreateInvitationRequest{InviteeID: uuid.New()})

	assert.Equal(t, response.ErrCodeInvalidState, response.CodeOf(err))
}

func TestInvitationService_StalePendingIsReplaced(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	ownerID, invitee := uuid.New(), uuid.New()
	matchID := f.givenOpenMatch(t, ownerID, 4)
	first := f.givenInvitation(t, matchID, ownerID, invitee)

	f.clock.Advance(DefaultInvitationTTL + time.Hour)
	second, err := f.invitations.CreateInvitation(ctx, matchID, ownerID, &dto.CreateInvitationRequest{InviteeID: invitee})

	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.InvitationStatusExpired, f.loadInvitation(t, first.ID).Status)
}

func TestInvitationService_ListAndExpire(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	ownerID, invitee := uuid.New(), uuid.New()

	for i := 0; i < 3; i++ {
		matchID := f.givenOpenMatch(t, ownerID, 4)
		f.givenInvitation(t, matchID, ownerID, invitee)
	}

	all, err := f.invitations.ListMyInvitations(ctx, invitee, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	f.clock.Advance(DefaultInvitationTTL + time.Hour)
	n, err := f.invitations.ExpireStaleInvitations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	pending, err := f.invitations.ListMyInvitations(ctx, invitee, "pending")
	require.NoError(t, err)
	assert.Empty(t, pending)

	expired, err := f.invitations.ListMyInvitations(ctx, invitee, "expired")
	require.NoError(t, err)
	assert.Len(t, expired, 3)

	_, err = f.invitations.ListMyInvitations(ctx, invitee, "archived")
	assert.Equal(t, response.ErrCodeValidation, response.CodeOf(err))
}

func TestInvitationService_RespondLocksMatchFirst(t *testing.T) {
	ownerID, invitee := uuid.New(), uuid.New()
	match := openMatch(ownerID, 0, 4, domain.MatchStatusOpen)
	inv := &domain.Invitation{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		MatchID:   match.ID,
		InviterID: ownerID,
		InviteeID: invitee,
		Status:    domain.InvitationStatusPending,
		ExpiresAt: fixedNow.Add(time.Hour),
	}

	var order []string
	store := newMockStore()
	store.InvitationRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
		copied := *inv
		return &copied, nil
	}
	store.MatchRepo.FindByIDForUpdateFunc = func(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
		order = append(order, "match")
		return match, nil
	}
	store.InvitationRepo.FindByIDForUpdateFunc = func(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
		order = append(order, "invitation")
		copied := *inv
		return &copied, nil
	}
	svc := NewInvitationService(store, nil, InvitationOptions{Now: func() time.Time { return fixedNow }}, nil, nil)

	_, err := svc.RespondToInvitation(context.Background(), inv.ID, invitee, dto.InvitationActionDecline)

	require.NoError(t, err)
	assert.Equal(t, []string{"match", "invitation"}, order)
}

func TestInvitationService_ResolveRaceReportsAlreadyResolved(t *testing.T) {
	ownerID, invitee := uuid.New(), uuid.New()
	match := openMatch(ownerID, 0, 4, domain.MatchStatusOpen)
	inv := &domain.Invitation{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		MatchID:   match.ID,
		InviteeID: invitee,
		Status:    domain.InvitationStatusPending,
		ExpiresAt: fixedNow.Add(time.Hour),
	}

	store := newMockStore()
	store.InvitationRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
		copied := *inv
		return &copied, nil
	}
	store.MatchRepo.FindByIDForUpdateFunc = func(ctx context.Context, id uuid.UUID) (*domain.Match, error) { return match, nil }
	store.InvitationRepo.ResolveFunc = func(ctx context.Context, id uuid.UUID, s domain.InvitationStatus, at time.Time) (bool, error) {
		return false, nil
	}
	svc := NewInvitationService(store, nil, InvitationOptions{Now: func() time.Time { return fixedNow }}, nil, nil)

	_, err := svc.RespondToInvitation(context.Background(), inv.ID, invitee, dto.InvitationActionDecline)

	assert.Equal(t, response.ErrCodeAlreadyResolved, response.CodeOf(err))
}

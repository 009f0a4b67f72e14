package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"match-service/internal/client"
	"match-service/internal/domain"
	"match-service/internal/dto"
	"match-service/internal/metrics"
	"match-service/internal/repository"
	"match-service/internal/response"
)

// DefaultInvitationTTL is how long an invitation stays answerable
const DefaultInvitationTTL = 7 * 24 * time.Hour

// InvitationService defines the interface for invitation business logic
type InvitationService interface {
	CreateInvitation(ctx context.Context, matchID, inviterID uuid.UUID, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error)
	RespondToInvitation(ctx context.Context, invitationID, inviteeID uuid.UUID, action string) (*dto.InvitationResponse, error)
	ListMyInvitations(ctx context.Context, inviteeID uuid.UUID, status string) ([]*dto.InvitationResponse, error)
	ExpireStaleInvitations(ctx context.Context) (int64, error)
}

// InvitationOptions holds tunables for InvitationService
type InvitationOptions struct {
	TTL time.Duration
	Now func() time.Time
}

// invitationServiceImpl is the implementation of InvitationService
type invitationServiceImpl struct {
	store      repository.Store
	dispatcher client.Dispatcher
	logger     *zap.Logger
	metrics    *metrics.Metrics
	ttl        time.Duration
	now        func() time.Time
}

// NewInvitationService creates a new instance of InvitationService
func NewInvitationService(
	store repository.Store,
	dispatcher client.Dispatcher,
	opts InvitationOptions,
	logger *zap.Logger,
	m *metrics.Metrics,
) InvitationService {
	if dispatcher == nil {
		dispatcher = client.NoOpDispatcher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultInvitationTTL
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &invitationServiceImpl{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    m,
		ttl:        opts.TTL,
		now:        opts.Now,
	}
}

// CreateInvitation issues a pending invitation for the invitee
func (s *invitationServiceImpl) CreateInvitation(ctx context.Context, matchID, inviterID uuid.UUID, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	if req.InviteeID == uuid.Nil {
		return nil, response.NewValidationError("Invitee is required", "")
	}
	if req.InviteeID == inviterID {
		return nil, response.NewValidationError("Cannot invite yourself", "")
	}

	var match *domain.Match
	var invitation *domain.Invitation

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		match, err = lockMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if !match.IsInvitable() {
			return response.NewAppError(response.ErrCodeInvalidState,
				"Match is no longer accepting invitations", string(match.Status))
		}

		if !match.IsOwner(inviterID) {
			if _, err := tx.Participations().FindByMatchAndUser(ctx, matchID, inviterID); err != nil {
				if isNotFound(err) {
					return response.NewForbiddenError("Only the owner or a participant can invite players", "")
				}
				return storeError("check inviter", err)
			}
		}

		_, err = tx.Participations().FindByMatchAndUser(ctx, matchID, req.InviteeID)
		if err == nil {
			return response.NewAppError(response.ErrCodeAlreadyParticipant,
				"User already participates in this match", req.InviteeID.String())
		}
		if !isNotFound(err) {
			return storeError("check invitee", err)
		}

		now := s.now()
		existing, err := tx.Invitations().FindPendingByMatchAndInvitee(ctx, matchID, req.InviteeID)
		switch {
		case err == nil:
			if !existing.IsExpiredAt(now) {
				return response.NewAppError(response.ErrCodeDuplicateInvitation,
					"A pending invitation already exists for this user", existing.ID.String())
			}
			// a lapsed invitation the sweep has not reached yet still occupies the pending slot
			if _, err := tx.Invitations().Resolve(ctx, existing.ID, domain.InvitationStatusExpired, now); err != nil {
				return storeError("expire invitation", err)
			}
		case !isNotFound(err):
			return storeError("check pending invitation", err)
		}

		invitation = &domain.Invitation{
			MatchID:   matchID,
			InviterID: inviterID,
			InviteeID: req.InviteeID,
			TeamID:    req.TeamID,
			Status:    domain.InvitationStatusPending,
			ExpiresAt: now.Add(s.ttl),
		}
		if err := tx.Invitations().Create(ctx, invitation); err != nil {
			if repository.IsDuplicate(err) {
				return response.NewAppError(response.ErrCodeDuplicateInvitation,
					"A pending invitation already exists for this user", req.InviteeID.String())
			}
			return storeError("create invitation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementInvitationCreated()
	s.dispatcher.Emit(client.NotificationInvitationReceived, client.Payload{
		ActorID:      inviterID,
		Recipients:   []uuid.UUID{invitation.InviteeID},
		MatchID:      match.ID,
		MatchTitle:   match.Title,
		ResourceType: client.ResourceTypeInvitation,
		ResourceID:   invitation.ID,
		Metadata:     map[string]interface{}{"expiresAt": invitation.ExpiresAt.Format(time.RFC3339)},
	})

	s.logger.Info("Invitation created",
		zap.String("invitation_id", invitation.ID.String()),
		zap.String("match_id", matchID.String()),
		zap.String("inviter_id", inviterID.String()),
		zap.String("invitee_id", invitation.InviteeID.String()),
	)
	return toInvitationResponse(invitation), nil
}

// RespondToInvitation accepts or declines a pending invitation.
// Accepting seats the invitee through the same admission path as a direct join.
func (s *invitationServiceImpl) RespondToInvitation(ctx context.Context, invitationID, inviteeID uuid.UUID, action string) (*dto.InvitationResponse, error) {
	action = strings.ToLower(strings.TrimSpace(action))
	if action != dto.InvitationActionAccept && action != dto.InvitationActionDecline {
		return nil, response.NewValidationError("Invalid action", "action must be accept or decline")
	}

	// unlocked read to find the match; locks are taken match first inside the transaction
	invitation, err := s.store.Invitations().FindByID(ctx, invitationID)
	if err != nil {
		if isNotFound(err) {
			return nil, response.NewNotFoundError("Invitation not found", invitationID.String())
		}
		return nil, storeError("load invitation", err)
	}
	if invitation.InviteeID != inviteeID {
		return nil, response.NewForbiddenError("Only the invitee can respond to this invitation", "")
	}

	var match *domain.Match
	var result *admission
	var expired bool

	err = s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		match, err = lockMatch(ctx, tx, invitation.MatchID)
		if err != nil {
			return err
		}

		invitation, err = tx.Invitations().FindByIDForUpdate(ctx, invitationID)
		if err != nil {
			if isNotFound(err) {
				return response.NewNotFoundError("Invitation not found", invitationID.String())
			}
			return storeError("load invitation", err)
		}
		if !invitation.IsPending() {
			return response.NewAppError(response.ErrCodeAlreadyResolved,
				"Invitation has already been resolved", string(invitation.Status))
		}

		now := s.now()
		if invitation.IsExpiredAt(now) {
			if err := s.resolve(ctx, tx, invitation, domain.InvitationStatusExpired, now); err != nil {
				return err
			}
			expired = true
			return nil
		}

		if action == dto.InvitationActionDecline {
			return s.resolve(ctx, tx, invitation, domain.InvitationStatusDeclined, now)
		}

		result, err = admit(ctx, tx, match, inviteeID, invitation.TeamID, now)
		if err != nil {
			return err
		}
		return s.resolve(ctx, tx, invitation, domain.InvitationStatusAccepted, now)
	})
	if err != nil {
		if action == dto.InvitationActionAccept && !expired {
			s.metrics.RecordInvitationResponse(metrics.JoinResultRejected)
		}
		return nil, err
	}

	if expired {
		s.metrics.AddInvitationsExpired(1)
		s.metrics.RecordInvitationResponse(string(domain.InvitationStatusExpired))
		return nil, response.NewAppError(response.ErrCodeInvitationExpired,
			"Invitation has expired", invitation.ExpiresAt.Format(time.RFC3339))
	}

	s.metrics.RecordInvitationResponse(string(invitation.Status))
	resp := toInvitationResponse(invitation)

	notification := client.NotificationInvitationDeclined
	if invitation.Status == domain.InvitationStatusAccepted {
		notification = client.NotificationInvitationAccepted
		participation := toParticipationResponse(result.participation)
		resp.Participation = &participation
		afterAdmission(s.logger, s.metrics, s.dispatcher, match, inviteeID, result)
	}

	s.dispatcher.Emit(notification, client.Payload{
		ActorID:      inviteeID,
		Recipients:   recipientsExcept(inviteeID, invitation.InviterID),
		MatchID:      match.ID,
		MatchTitle:   match.Title,
		ResourceType: client.ResourceTypeInvitation,
		ResourceID:   invitation.ID,
	})

	s.logger.Info("Invitation resolved",
		zap.String("invitation_id", invitation.ID.String()),
		zap.String("match_id", match.ID.String()),
		zap.String("status", string(invitation.Status)),
	)
	return resp, nil
}

// resolve moves a locked pending invitation to a terminal status
func (s *invitationServiceImpl) resolve(ctx context.Context, tx repository.Store, invitation *domain.Invitation, status domain.InvitationStatus, at time.Time) error {
	ok, err := tx.Invitations().Resolve(ctx, invitation.ID, status, at)
	if err != nil {
		return storeError("update invitation", err)
	}
	if !ok {
		return response.NewAppError(response.ErrCodeAlreadyResolved,
			"Invitation has already been resolved", invitation.ID.String())
	}
	invitation.Status = status
	invitation.RespondedAt = &at
	return nil
}

// ListMyInvitations returns the invitations addressed to inviteeID, newest first
func (s *invitationServiceImpl) ListMyInvitations(ctx context.Context, inviteeID uuid.UUID, status string) ([]*dto.InvitationResponse, error) {
	var filter *domain.InvitationStatus
	if status != "" {
		st := domain.InvitationStatus(strings.ToLower(status))
		if !st.IsValid() {
			return nil, response.NewValidationError("Invalid status filter", status)
		}
		filter = &st
	}

	invitations, err := s.store.Invitations().FindByInvitee(ctx, inviteeID, filter)
	if err != nil {
		return nil, storeError("list invitations", err)
	}

	resp := make([]*dto.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		resp = append(resp, toInvitationResponse(inv))
	}
	return resp, nil
}

// ExpireStaleInvitations flips every lapsed pending invitation to expired
func (s *invitationServiceImpl) ExpireStaleInvitations(ctx context.Context) (int64, error) {
	n, err := s.store.Invitations().ExpirePending(ctx, s.now())
	if err != nil {
		return 0, storeError("expire invitations", err)
	}
	if n > 0 {
		s.metrics.AddInvitationsExpired(n)
		s.logger.Info("Expired stale invitations", zap.Int64("count", n))
	}
	return n, nil
}

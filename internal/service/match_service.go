package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"match-service/internal/client"
	"match-service/internal/domain"
	"match-service/internal/dto"
	"match-service/internal/metrics"
	"match-service/internal/repository"
	"match-service/internal/response"
)

// MatchService defines the interface for match lifecycle and participation logic
type MatchService interface {
	CreateMatch(ctx context.Context, ownerID uuid.UUID, req *dto.CreateMatchRequest) (*dto.MatchResponse, error)
	GetMatch(ctx context.Context, matchID uuid.UUID) (*dto.MatchDetailResponse, error)
	ListParticipants(ctx context.Context, matchID uuid.UUID) ([]dto.ParticipationResponse, error)
	PublishMatch(ctx context.Context, matchID, callerID uuid.UUID) (*dto.MatchResponse, error)
	JoinMatch(ctx context.Context, matchID, userID uuid.UUID, teamID *uuid.UUID) (*dto.JoinMatchResponse, error)
	LeaveMatch(ctx context.Context, matchID, userID uuid.UUID) (*dto.LeaveMatchResponse, error)
	StartMatch(ctx context.Context, matchID, callerID uuid.UUID) (*dto.MatchResponse, error)
	FinishMatch(ctx context.Context, matchID, callerID uuid.UUID) (*dto.MatchResponse, error)
	CancelMatch(ctx context.Context, matchID, callerID uuid.UUID) (*dto.MatchResponse, error)
}

// MatchOptions holds tunables for MatchService
type MatchOptions struct {
	MaxPlayers int
	Now        func() time.Time
}

// matchServiceImpl is the implementation of MatchService
type matchServiceImpl struct {
	store      repository.Store
	dispatcher client.Dispatcher
	logger     *zap.Logger
	metrics    *metrics.Metrics
	maxPlayers int
	now        func() time.Time
}

// NewMatchService creates a new instance of MatchService
func NewMatchService(
	store repository.Store,
	dispatcher client.Dispatcher,
	opts MatchOptions,
	logger *zap.Logger,
	m *metrics.Metrics,
) MatchService {
	if dispatcher == nil {
		dispatcher = client.NoOpDispatcher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxPlayers < 2 {
		opts.MaxPlayers = 100
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &matchServiceImpl{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    m,
		maxPlayers: opts.MaxPlayers,
		now:        opts.Now,
	}
}

// CreateMatch validates the request and stores a draft or open match
func (s *matchServiceImpl) CreateMatch(ctx context.Context, ownerID uuid.UUID, req *dto.CreateMatchRequest) (*dto.MatchResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewValidationError("Title is required", "")
	}
	if req.MaxPlayers < 2 || req.MaxPlayers > s.maxPlayers {
		return nil, response.NewValidationError("Invalid capacity",
			fmt.Sprintf("maxPlayers must be between 2 and %d", s.maxPlayers))
	}

	scheduledAt, err := parseSchedule(req.Date, req.Time)
	if err != nil {
		return nil, response.NewValidationError("Invalid schedule", err.Error())
	}
	now := s.now()
	if scheduledAt.Before(now) {
		return nil, response.NewValidationError("Invalid schedule", "match cannot be scheduled in the past")
	}

	var details datatypes.JSON
	if len(req.Details) > 0 {
		raw, err := json.Marshal(req.Details)
		if err != nil {
			return nil, response.NewValidationError("Invalid details", err.Error())
		}
		details = datatypes.JSON(raw)
	}

	match := &domain.Match{
		OwnerID:        ownerID,
		Title:          title,
		Sport:          strings.TrimSpace(req.Sport),
		Location:       strings.TrimSpace(req.Location),
		ScheduledAt:    scheduledAt,
		MaxPlayers:     req.MaxPlayers,
		CurrentPlayers: 0,
		Status:         domain.MatchStatusDraft,
		Details:        details,
	}
	if req.Publish {
		match.Status = domain.MatchStatusOpen
		match.PublishedAt = &now
	}

	if err := s.store.Matches().Create(ctx, match); err != nil {
		s.logger.Error("Failed to create match", zap.String("owner_id", ownerID.String()), zap.Error(err))
		return nil, storeError("create match", err)
	}

	s.metrics.IncrementMatchCreated()
	s.logger.Info("Match created",
		zap.String("match_id", match.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("status", string(match.Status)),
		zap.Int("max_players", match.MaxPlayers),
	)

	resp := toMatchResponse(match)
	return &resp, nil
}

func parseSchedule(date, clock string) (time.Time, error) {
	d, err := time.Parse(dto.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be formatted as YYYY-MM-DD")
	}
	c, err := time.Parse(dto.TimeLayout, strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("time must be formatted as HH:MM")
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC), nil
}

// GetMatch returns the match together with its participations
func (s *matchServiceImpl) GetMatch(ctx context.Context, matchID uuid.UUID) (*dto.MatchDetailResponse, error) {
	match, err := s.store.Matches().FindByIDWithParticipations(ctx, matchID)
	if err != nil {
		if isNotFound(err) {
			return nil, response.NewNotFoundError("Match not found", matchID.String())
		}
		return nil, storeError("load match", err)
	}

	resp := &dto.MatchDetailResponse{
		MatchResponse: toMatchResponse(match),
		Participants:  make([]dto.ParticipationResponse, 0, len(match.Participations)),
	}
	for i := range match.Participations {
		resp.Participants = append(resp.Participants, toParticipationResponse(&match.Participations[i]))
	}
	return resp, nil
}

// ListParticipants returns every participation of a match in join order
func (s *matchServiceImpl) ListParticipants(ctx context.Context, matchID uuid.UUID) ([]dto.ParticipationResponse, error) {
	if _, err := s.store.Matches().FindByID(ctx, matchID); err != nil {
		if isNotFound(err) {
			return nil, response.NewNotFoundError("Match not found", matchID.String())
		}
		return nil, storeError("load match", err)
	}

	participations, err := s.store.Participations().FindByMatch(ctx, matchID)
	if err != nil {
		return nil, storeError("load participants", err)
	}

	resp := make([]dto.ParticipationResponse, 0, len(participations))
	for _, p := range participations {
		resp = append(resp, toParticipationResponse(p))
	}
	return resp, nil
}

// PublishMatch opens a draft. A draft that already holds a full roster goes straight on to full.
func (s *matchServiceImpl) PublishMatch(ctx context.Context, matchID, callerID uuid.UUID) (*dto.MatchResponse, error) {
	var match *domain.Match
	var changes []statusChange
	var roster []uuid.UUID

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		match, err = lockMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if !match.IsOwner(callerID) {
			return response.NewForbiddenError("Only the match owner can publish it", "")
		}

		now := s.now()
		change, err := applyTransition(ctx, tx, match, domain.MatchStatusOpen, map[string]interface{}{"published_at": now})
		if err != nil {
			return err
		}
		match.PublishedAt = &now
		changes = append(changes, change)

		if match.CurrentPlayers >= match.MaxPlayers {
			change, err := applyTransition(ctx, tx, match, domain.MatchStatusFull, nil)
			if err != nil {
				return err
			}
			changes = append(changes, change)

			roster, err = tx.Participations().FindCountedUserIDs(ctx, match.ID)
			if err != nil {
				return storeError("load participants", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordChanges(changes)
	if len(roster) > 0 {
		s.emit(client.NotificationMatchFull, match, callerID, roster, nil)
	}

	resp := toMatchResponse(match)
	return &resp, nil
}

// JoinMatch seats userID in the match or places them on its waitlist
func (s *matchServiceImpl) JoinMatch(ctx context.Context, matchID, userID uuid.UUID, teamID *uuid.UUID) (*dto.JoinMatchResponse, error) {
	var match *domain.Match
	var result *admission

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		match, err = lockMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		result, err = admit(ctx, tx, match, userID, teamID, s.now())
		return err
	})
	if err != nil {
		s.metrics.RecordJoin(metrics.JoinResultRejected)
		s.logger.Debug("Join rejected",
			zap.String("match_id", matchID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.afterAdmission(match, userID, result)

	return &dto.JoinMatchResponse{
		Participation: toParticipationResponse(result.participation),
		Match:         toMatchResponse(match),
		Waitlisted:    result.waitlisted,
	}, nil
}

// afterAdmission runs the post-commit side effects shared by joins and accepted invitations
func (s *matchServiceImpl) afterAdmission(match *domain.Match, userID uuid.UUID, result *admission) {
	afterAdmission(s.logger, s.metrics, s.dispatcher, match, userID, result)
}

func afterAdmission(logger *zap.Logger, m *metrics.Metrics, dispatcher client.Dispatcher, match *domain.Match, userID uuid.UUID, result *admission) {
	for _, c := range result.changes {
		m.RecordTransition(string(c.from), string(c.to))
	}

	if result.waitlisted {
		m.RecordJoin(metrics.JoinResultWaitlisted)
		emitMatchEvent(dispatcher, client.NotificationPlayerWaitlisted, match, userID, recipientsExcept(userID, match.OwnerID), nil)
	} else {
		m.RecordJoin(metrics.JoinResultConfirmed)
		emitMatchEvent(dispatcher, client.NotificationPlayerJoined, match, userID, recipientsExcept(userID, match.OwnerID),
			map[string]interface{}{"currentPlayers": match.CurrentPlayers, "maxPlayers": match.MaxPlayers})
	}
	if result.becameFull {
		emitMatchEvent(dispatcher, client.NotificationMatchFull, match, userID, append(result.fullRoster, match.OwnerID), nil)
	}

	logger.Info("Player joined match",
		zap.String("match_id", match.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Bool("waitlisted", result.waitlisted),
		zap.Int("current_players", match.CurrentPlayers),
		zap.String("status", string(match.Status)),
	)
}

// LeaveMatch removes userID from the match, promoting the next waitlisted user if any
func (s *matchServiceImpl) LeaveMatch(ctx context.Context, matchID, userID uuid.UUID) (*dto.LeaveMatchResponse, error) {
	var match *domain.Match
	var result *departure

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		match, err = lockMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if match.Status == domain.MatchStatusFinished {
			return response.NewAppError(response.ErrCodeInvalidState, "Cannot leave a finished match", "")
		}

		participation, err := tx.Participations().FindByMatchAndUser(ctx, matchID, userID)
		if err != nil {
			if isNotFound(err) {
				return response.NewAppError(response.ErrCodeNotParticipant, "User is not a participant of this match", userID.String())
			}
			return storeError("load participation", err)
		}

		result, err = release(ctx, tx, match, participation)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementLeave()
	s.recordChanges(result.changes)

	resp := &dto.LeaveMatchResponse{Match: toMatchResponse(match)}
	s.emit(client.NotificationPlayerLeft, match, userID, recipientsExcept(userID, match.OwnerID),
		map[string]interface{}{"currentPlayers": match.CurrentPlayers})

	if result.promoted != nil {
		promotedID := result.promoted.UserID
		resp.PromotedUserID = &promotedID
		s.metrics.IncrementPromotion()
		s.emit(client.NotificationPlayerPromoted, match, userID, []uuid.UUID{promotedID}, nil)
	}

	s.logger.Info("Player left match",
		zap.String("match_id", matchID.String()),
		zap.String("user_id", userID.String()),
		zap.Bool("promoted", result.promoted != nil),
		zap.Bool("reopened", result.reopened),
	)
	return resp, nil
}

// StartMatch moves a full match to in_progress
func (s *matchServiceImpl) StartMatch(ctx context.Context, matchID, callerID uuid.UUID) (*dto.MatchResponse, error) {
	return s.lifecycle(ctx, matchID, callerID, domain.MatchStatusInProgress, "started_at", client.NotificationMatchStarted)
}

// FinishMatch moves an in-progress match to finished
func (s *matchServiceImpl) FinishMatch(ctx context.Context, matchID, callerID uuid.UUID) (*dto.MatchResponse, error) {
	return s.lifecycle(ctx, matchID, callerID, domain.MatchStatusFinished, "finished_at", client.NotificationMatchFinished)
}

// CancelMatch cancels an open or in-progress match
func (s *matchServiceImpl) CancelMatch(ctx context.Context, matchID, callerID uuid.UUID) (*dto.MatchResponse, error) {
	return s.lifecycle(ctx, matchID, callerID, domain.MatchStatusCanceled, "canceled_at", client.NotificationMatchCanceled)
}

// lifecycle applies an owner-driven transition and notifies the participants
func (s *matchServiceImpl) lifecycle(
	ctx context.Context,
	matchID, callerID uuid.UUID,
	target domain.MatchStatus,
	stampColumn string,
	notification client.NotificationType,
) (*dto.MatchResponse, error) {
	var match *domain.Match
	var change statusChange
	var recipients []uuid.UUID

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		match, err = lockMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if !match.IsOwner(callerID) {
			return response.NewForbiddenError("Only the match owner can change its status", "")
		}

		now := s.now()
		change, err = applyTransition(ctx, tx, match, target, map[string]interface{}{stampColumn: now})
		if err != nil {
			return err
		}
		stampMatch(match, target, now)

		participations, err := tx.Participations().FindByMatch(ctx, matchID)
		if err != nil {
			return storeError("load participants", err)
		}
		for _, p := range participations {
			if p.Status.IsCounted() || target == domain.MatchStatusCanceled {
				recipients = append(recipients, p.UserID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordChanges([]statusChange{change})
	s.emit(notification, match, callerID, recipientsExcept(callerID, recipients...), nil)

	s.logger.Info("Match status changed",
		zap.String("match_id", matchID.String()),
		zap.String("from", string(change.from)),
		zap.String("to", string(change.to)),
	)

	resp := toMatchResponse(match)
	return &resp, nil
}

func stampMatch(match *domain.Match, status domain.MatchStatus, at time.Time) {
	switch status {
	case domain.MatchStatusInProgress:
		match.StartedAt = &at
	case domain.MatchStatusFinished:
		match.FinishedAt = &at
	case domain.MatchStatusCanceled:
		match.CanceledAt = &at
	}
}

func (s *matchServiceImpl) recordChanges(changes []statusChange) {
	for _, c := range changes {
		s.metrics.RecordTransition(string(c.from), string(c.to))
	}
}

func (s *matchServiceImpl) emit(t client.NotificationType, match *domain.Match, actorID uuid.UUID, recipients []uuid.UUID, metadata map[string]interface{}) {
	emitMatchEvent(s.dispatcher, t, match, actorID, recipients, metadata)
}

func emitMatchEvent(dispatcher client.Dispatcher, t client.NotificationType, match *domain.Match, actorID uuid.UUID, recipients []uuid.UUID, metadata map[string]interface{}) {
	if len(recipients) == 0 {
		return
	}
	dispatcher.Emit(t, client.Payload{
		ActorID:    actorID,
		Recipients: recipients,
		MatchID:    match.ID,
		MatchTitle: match.Title,
		Metadata:   metadata,
	})
}

// recipientsExcept returns ids without actor
func recipientsExcept(actor uuid.UUID, ids ...uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != actor {
			out = append(out, id)
		}
	}
	return out
}

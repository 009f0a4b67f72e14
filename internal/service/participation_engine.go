package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"match-service/internal/domain"
	"match-service/internal/repository"
	"match-service/internal/response"
	"match-service/internal/statemachine"
)

// statusChange records an applied transition for metrics
type statusChange struct {
	from domain.MatchStatus
	to   domain.MatchStatus
}

// admission is the outcome of seating a user in a match
type admission struct {
	participation *domain.Participation
	waitlisted    bool
	becameFull    bool
	// counted participants at commit time, loaded only when the match became full
	fullRoster []uuid.UUID
	changes    []statusChange
}

// departure is the outcome of removing a user from a match
type departure struct {
	promoted *domain.Participation
	reopened bool
	changes  []statusChange
}

// lockMatch loads the match and holds its row lock for the rest of the transaction.
// Every writer of a match's participations, counter or status goes through here first.
func lockMatch(ctx context.Context, tx repository.Store, matchID uuid.UUID) (*domain.Match, error) {
	match, err := tx.Matches().FindByIDForUpdate(ctx, matchID)
	if err != nil {
		if isNotFound(err) {
			return nil, response.NewNotFoundError("Match not found", matchID.String())
		}
		return nil, storeError("load match", err)
	}
	return match, nil
}

// applyTransition validates and persists a status change on a locked match
func applyTransition(ctx context.Context, tx repository.Store, match *domain.Match, next domain.MatchStatus, stamps map[string]interface{}) (statusChange, error) {
	if err := statemachine.ValidateTransition(match.Status, next); err != nil {
		return statusChange{}, transitionError(err)
	}
	if err := tx.Matches().UpdateStatus(ctx, match.ID, next, stamps); err != nil {
		return statusChange{}, storeError("update match status", err)
	}
	change := statusChange{from: match.Status, to: next}
	match.Status = next
	return change, nil
}

// admit seats userID in a locked match. A match without a free slot puts the
// user on the waitlist. The capacity guard on the counter write is the last
// line against overbooking.
func admit(ctx context.Context, tx repository.Store, match *domain.Match, userID uuid.UUID, teamID *uuid.UUID, now time.Time) (*admission, error) {
	if !match.IsJoinable() {
		return nil, response.NewAppError(response.ErrCodeInvalidState,
			"Match is no longer accepting players", string(match.Status))
	}

	_, err := tx.Participations().FindByMatchAndUser(ctx, match.ID, userID)
	if err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyJoined, "User already joined this match", userID.String())
	}
	if !isNotFound(err) {
		return nil, storeError("check participation", err)
	}

	counted, err := tx.Participations().CountCounted(ctx, match.ID)
	if err != nil {
		return nil, storeError("count participants", err)
	}

	participation := &domain.Participation{
		MatchID:  match.ID,
		UserID:   userID,
		TeamID:   teamID,
		JoinedAt: now,
	}
	result := &admission{participation: participation}

	// the recount, not the stored counter, decides
	match.CurrentPlayers = int(counted)
	if !match.HasFreeSlot() {
		participation.Status = domain.ParticipationStatusWaitlisted
		result.waitlisted = true
	} else {
		participation.Status = domain.ParticipationStatusConfirmed
	}

	if err := tx.Participations().Create(ctx, participation); err != nil {
		if repository.IsDuplicate(err) {
			return nil, response.NewAppError(response.ErrCodeAlreadyJoined, "User already joined this match", userID.String())
		}
		return nil, storeError("create participation", err)
	}

	if result.waitlisted {
		return result, nil
	}

	next := int(counted) + 1
	ok, err := tx.Matches().SetPlayerCount(ctx, match.ID, next)
	if err != nil {
		return nil, storeError("update player count", err)
	}
	if !ok {
		return nil, response.NewAppError(response.ErrCodeMatchFull, "Match has no free slots", match.ID.String())
	}
	match.CurrentPlayers = next

	if match.CurrentPlayers >= match.MaxPlayers && match.Status == domain.MatchStatusOpen {
		change, err := applyTransition(ctx, tx, match, domain.MatchStatusFull, nil)
		if err != nil {
			return nil, err
		}
		result.changes = append(result.changes, change)
		result.becameFull = true

		roster, err := tx.Participations().FindCountedUserIDs(ctx, match.ID)
		if err != nil {
			return nil, storeError("load participants", err)
		}
		result.fullRoster = roster
	}
	return result, nil
}

// release removes a participation from a locked match. A freed slot goes to the
// longest waiting user; if nobody is waiting a full match reopens.
func release(ctx context.Context, tx repository.Store, match *domain.Match, participation *domain.Participation) (*departure, error) {
	if err := tx.Participations().Delete(ctx, participation.ID); err != nil {
		return nil, storeError("delete participation", err)
	}

	result := &departure{}
	if !participation.Status.IsCounted() {
		return result, nil
	}

	counted, err := tx.Participations().CountCounted(ctx, match.ID)
	if err != nil {
		return nil, storeError("count participants", err)
	}
	count := int(counted)

	if match.Status != domain.MatchStatusCanceled && count < match.MaxPlayers {
		next, err := tx.Participations().FindFirstWaitlisted(ctx, match.ID)
		switch {
		case err == nil:
			if err := tx.Participations().UpdateStatus(ctx, next.ID, domain.ParticipationStatusConfirmed); err != nil {
				return nil, storeError("promote waitlisted participant", err)
			}
			next.Status = domain.ParticipationStatusConfirmed
			result.promoted = next
			count++
		case !isNotFound(err):
			return nil, storeError("load waitlist", err)
		}
	}

	if _, err := tx.Matches().SetPlayerCount(ctx, match.ID, count); err != nil {
		return nil, storeError("update player count", err)
	}
	match.CurrentPlayers = count

	if match.Status == domain.MatchStatusFull && count < match.MaxPlayers {
		change, err := applyTransition(ctx, tx, match, domain.MatchStatusOpen, nil)
		if err != nil {
			return nil, err
		}
		result.changes = append(result.changes, change)
		result.reopened = true
	}
	return result, nil
}

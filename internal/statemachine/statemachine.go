// Package statemachine holds the match lifecycle transition table.
package statemachine

import (
	"fmt"
	"strings"

	"match-service/internal/domain"
)

var transitions = map[domain.MatchStatus][]domain.MatchStatus{
	domain.MatchStatusDraft:      {domain.MatchStatusOpen},
	domain.MatchStatusOpen:       {domain.MatchStatusFull, domain.MatchStatusCanceled},
	domain.MatchStatusFull:       {domain.MatchStatusInProgress, domain.MatchStatusOpen},
	domain.MatchStatusInProgress: {domain.MatchStatusFinished, domain.MatchStatusCanceled},
	domain.MatchStatusFinished:   {},
	domain.MatchStatusCanceled:   {},
}

// TransitionError reports a status change the lifecycle does not allow
type TransitionError struct {
	From    domain.MatchStatus
	To      domain.MatchStatus
	Allowed []domain.MatchStatus
}

func (e *TransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	return fmt.Sprintf("cannot transition match from %s to %s (allowed: [%s])",
		e.From, e.To, strings.Join(allowed, ", "))
}

// CanTransition reports whether current -> next is a legal edge
func CanTransition(current, next domain.MatchStatus) bool {
	for _, s := range transitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns a *TransitionError when current -> next is illegal
func ValidateTransition(current, next domain.MatchStatus) error {
	if CanTransition(current, next) {
		return nil
	}
	return &TransitionError{
		From:    current,
		To:      next,
		Allowed: AllowedTransitions(current),
	}
}

// AllowedTransitions returns a copy of the states reachable from current.
// Unknown states have no outgoing edges.
func AllowedTransitions(current domain.MatchStatus) []domain.MatchStatus {
	next := transitions[current]
	out := make([]domain.MatchStatus, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether no transition leaves status
func IsTerminal(status domain.MatchStatus) bool {
	next, known := transitions[status]
	return known && len(next) == 0
}

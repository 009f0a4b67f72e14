package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// MatchStatus is the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusDraft      MatchStatus = "draft"
	MatchStatusOpen       MatchStatus = "open"
	MatchStatusFull       MatchStatus = "full"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusFinished   MatchStatus = "finished"
	MatchStatusCanceled   MatchStatus = "canceled"
)

// AllMatchStatuses lists every status in lifecycle order
var AllMatchStatuses = []MatchStatus{
	MatchStatusDraft,
	MatchStatusOpen,
	MatchStatusFull,
	MatchStatusInProgress,
	MatchStatusFinished,
	MatchStatusCanceled,
}

// legacyMatchStatuses maps labels written by older clients onto the lifecycle vocabulary.
var legacyMatchStatuses = map[string]MatchStatus{
	"upcoming":  MatchStatusOpen,
	"ongoing":   MatchStatusInProgress,
	"live":      MatchStatusInProgress,
	"completed": MatchStatusFinished,
	"done":      MatchStatusFinished,
	"cancelled": MatchStatusCanceled,
}

// ParseMatchStatus normalizes a stored or user supplied status label.
func ParseMatchStatus(s string) (MatchStatus, error) {
	label := strings.ToLower(strings.TrimSpace(s))
	for _, st := range AllMatchStatuses {
		if string(st) == label {
			return st, nil
		}
	}
	if st, ok := legacyMatchStatuses[label]; ok {
		return st, nil
	}
	return "", fmt.Errorf("unknown match status %q", s)
}

// IsValid reports whether s belongs to the lifecycle vocabulary
func (s MatchStatus) IsValid() bool {
	for _, st := range AllMatchStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Scan implements sql.Scanner. Legacy labels are translated on read.
func (s *MatchStatus) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*s = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into MatchStatus", value)
	}
	st, err := ParseMatchStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Value implements driver.Valuer
func (s MatchStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// ParticipationStatus is the state of a user's seat in a match
type ParticipationStatus string

const (
	ParticipationStatusPending    ParticipationStatus = "pending"
	ParticipationStatusConfirmed  ParticipationStatus = "confirmed"
	ParticipationStatusWaitlisted ParticipationStatus = "waitlisted"
	ParticipationStatusCheckedIn  ParticipationStatus = "checked_in"
	ParticipationStatusNoShow     ParticipationStatus = "no_show"
)

// CountedParticipationStatuses occupy a slot and are reflected in Match.CurrentPlayers.
var CountedParticipationStatuses = []ParticipationStatus{
	ParticipationStatusConfirmed,
	ParticipationStatusCheckedIn,
}

// IsCounted reports whether the status occupies a capacity slot
func (s ParticipationStatus) IsCounted() bool {
	for _, c := range CountedParticipationStatuses {
		if c == s {
			return true
		}
	}
	return false
}

// InvitationStatus is the state of an invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// IsValid reports whether s is a known invitation status
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusDeclined, InvitationStatusExpired:
		return true
	}
	return false
}

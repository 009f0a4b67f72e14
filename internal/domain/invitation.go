package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is a time-limited offer for a user to join a match
type Invitation struct {
	BaseModel
	MatchID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_invitations_match_id;uniqueIndex:uq_invitations_pending,where:status = 'pending'" json:"match_id"`
	InviterID   uuid.UUID        `gorm:"type:uuid;not null" json:"inviter_id"`
	InviteeID   uuid.UUID        `gorm:"type:uuid;not null;index:idx_invitations_invitee_id;uniqueIndex:uq_invitations_pending,where:status = 'pending'" json:"invitee_id"`
	TeamID      *uuid.UUID       `gorm:"type:uuid" json:"team_id"`
	Status      InvitationStatus `gorm:"type:varchar(20);not null;index:idx_invitations_status" json:"status"`
	ExpiresAt   time.Time        `gorm:"type:timestamp;not null;index:idx_invitations_expires_at" json:"expires_at"`
	RespondedAt *time.Time       `gorm:"type:timestamp" json:"responded_at"`
}

// TableName specifies the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsPending reports whether the invitation still awaits a response
func (i *Invitation) IsPending() bool {
	return i.Status == InvitationStatusPending
}

// IsExpiredAt reports whether the invitation lapsed before now
func (i *Invitation) IsExpiredAt(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

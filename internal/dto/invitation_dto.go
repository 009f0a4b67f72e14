package dto

import (
	"time"

	"github.com/google/uuid"
)

// Invitation response actions
const (
	InvitationActionAccept  = "accept"
	InvitationActionDecline = "decline"
)

// CreateInvitationRequest represents the request to invite a user to a match
type CreateInvitationRequest struct {
	InviteeID uuid.UUID  `json:"inviteeId" binding:"required" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	TeamID    *uuid.UUID `json:"teamId,omitempty"`
}

// RespondInvitationRequest represents the invitee's answer
// @Description action must be either accept or decline
type RespondInvitationRequest struct {
	Action string `json:"action" binding:"required,oneof=accept decline" example:"accept"`
}

// InvitationResponse represents the invitation response
// @Description participation is present when an accepted invitation produced a seat
type InvitationResponse struct {
	ID            uuid.UUID              `json:"invitationId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	MatchID       uuid.UUID              `json:"matchId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	InviterID     uuid.UUID              `json:"inviterId" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	InviteeID     uuid.UUID              `json:"inviteeId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	TeamID        *uuid.UUID             `json:"teamId,omitempty"`
	Status        string                 `json:"status" example:"pending"`
	ExpiresAt     time.Time              `json:"expiresAt" example:"2026-10-22T10:30:00Z"`
	RespondedAt   *time.Time             `json:"respondedAt,omitempty"`
	CreatedAt     time.Time              `json:"createdAt" example:"2026-10-15T10:30:00Z"`
	Participation *ParticipationResponse `json:"participation,omitempty"`
}

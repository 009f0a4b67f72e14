package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Request date/time layouts
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// CreateMatchRequest represents the request to create a new match
// @Description Request body for creating a match
// @Description date and time are interpreted in UTC
// @Description publish=true creates the match directly in the open state, otherwise it starts as a draft
type CreateMatchRequest struct {
	Title      string                 `json:"title" binding:"required,min=1,max=100" example:"Sunday morning futsal"`
	Sport      string                 `json:"sport" binding:"max=50" example:"futsal"`
	Location   string                 `json:"location" binding:"max=255" example:"Riverside court 2"`
	Date       string                 `json:"date" binding:"required" example:"2026-11-01"`
	Time       string                 `json:"time" binding:"required" example:"09:30"`
	MaxPlayers int                    `json:"maxPlayers" binding:"required,min=2,max=100" example:"10"`
	Publish    bool                   `json:"publish" example:"true"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// JoinMatchRequest represents the optional body of a join request
type JoinMatchRequest struct {
	TeamID *uuid.UUID `json:"teamId,omitempty" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
}

// MatchResponse represents the match response
// @Description Match with capacity and lifecycle information
// @Description allowedTransitions lists the statuses the match may move to next
type MatchResponse struct {
	ID                 uuid.UUID       `json:"matchId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	OwnerID            uuid.UUID       `json:"ownerId" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	Title              string          `json:"title" example:"Sunday morning futsal"`
	Sport              string          `json:"sport,omitempty" example:"futsal"`
	Location           string          `json:"location,omitempty" example:"Riverside court 2"`
	ScheduledAt        time.Time       `json:"scheduledAt" example:"2026-11-01T09:30:00Z"`
	MaxPlayers         int             `json:"maxPlayers" example:"10"`
	CurrentPlayers     int             `json:"currentPlayers" example:"4"`
	AvailableSlots     int             `json:"availableSlots" example:"6"`
	Status             string          `json:"status" example:"open"`
	AllowedTransitions []string        `json:"allowedTransitions"`
	Details            json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	PublishedAt        *time.Time      `json:"publishedAt,omitempty"`
	StartedAt          *time.Time      `json:"startedAt,omitempty"`
	FinishedAt         *time.Time      `json:"finishedAt,omitempty"`
	CanceledAt         *time.Time      `json:"canceledAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt" example:"2026-10-15T10:30:00Z"`
	UpdatedAt          time.Time       `json:"updatedAt" example:"2026-10-15T10:30:00Z"`
}

// MatchDetailResponse is a match together with its participations
type MatchDetailResponse struct {
	MatchResponse
	Participants []ParticipationResponse `json:"participants"`
}

// ParticipationResponse represents a participation
type ParticipationResponse struct {
	ID       uuid.UUID  `json:"participationId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	MatchID  uuid.UUID  `json:"matchId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	UserID   uuid.UUID  `json:"userId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	TeamID   *uuid.UUID `json:"teamId,omitempty"`
	Status   string     `json:"status" example:"confirmed"`
	JoinedAt time.Time  `json:"joinedAt" example:"2026-10-15T10:30:00Z"`
}

// JoinMatchResponse is returned by a successful join
// @Description waitlisted=true means the match was full and the user was placed on the waitlist
type JoinMatchResponse struct {
	Participation ParticipationResponse `json:"participation"`
	Match         MatchResponse         `json:"match"`
	Waitlisted    bool                  `json:"waitlisted" example:"false"`
}

// LeaveMatchResponse is returned by a successful leave
// @Description promotedUserId is set when a waitlisted user took over the freed slot
type LeaveMatchResponse struct {
	Match          MatchResponse `json:"match"`
	PromotedUserID *uuid.UUID    `json:"promotedUserId,omitempty"`
}

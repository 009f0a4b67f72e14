package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Match represents a scheduled game with a fixed number of player slots
type Match struct {
	BaseModel
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_matches_owner_id" json:"owner_id"`
	Title          string          `gorm:"type:varchar(100);not null" json:"title"`
	Sport          string          `gorm:"type:varchar(50)" json:"sport"`
	Location       string          `gorm:"type:varchar(255)" json:"location"`
	ScheduledAt    time.Time       `gorm:"type:timestamp;not null;index:idx_matches_scheduled_at" json:"scheduled_at"`
	MaxPlayers     int             `gorm:"not null;check:chk_matches_max_players,max_players >= 2" json:"max_players"`
	CurrentPlayers int             `gorm:"not null;default:0;check:chk_matches_current_players,current_players >= 0 AND current_players <= max_players" json:"current_players"`
	Status         MatchStatus     `gorm:"type:varchar(20);not null;index:idx_matches_status" json:"status"`
	Details        datatypes.JSON  `gorm:"type:jsonb" json:"details"`
	PublishedAt    *time.Time      `gorm:"type:timestamp" json:"published_at"`
	StartedAt      *time.Time      `gorm:"type:timestamp" json:"started_at"`
	FinishedAt     *time.Time      `gorm:"type:timestamp" json:"finished_at"`
	CanceledAt     *time.Time      `gorm:"type:timestamp" json:"canceled_at"`
	Participations []Participation `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"participations,omitempty"`
}

// TableName specifies the table name for Match
func (Match) TableName() string {
	return "matches"
}

// IsOwner reports whether userID created the match
func (m *Match) IsOwner(userID uuid.UUID) bool {
	return m.OwnerID == userID
}

// HasFreeSlot reports whether another counted participant fits
func (m *Match) HasFreeSlot() bool {
	return m.CurrentPlayers < m.MaxPlayers
}

// IsJoinable reports whether participations may still be added to the match
func (m *Match) IsJoinable() bool {
	return m.Status != MatchStatusFinished && m.Status != MatchStatusCanceled
}

// IsInvitable reports whether new invitations may be issued for the match
func (m *Match) IsInvitable() bool {
	switch m.Status {
	case MatchStatusDraft, MatchStatusOpen, MatchStatusFull:
		return true
	}
	return false
}

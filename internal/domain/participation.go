package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participation represents a user's seat in a match
type Participation struct {
	BaseModel
	MatchID  uuid.UUID           `gorm:"type:uuid;not null;index:idx_participations_match_id;uniqueIndex:uq_participations_match_user" json:"match_id"`
	UserID   uuid.UUID           `gorm:"type:uuid;not null;index:idx_participations_user_id;uniqueIndex:uq_participations_match_user" json:"user_id"`
	TeamID   *uuid.UUID          `gorm:"type:uuid" json:"team_id"`
	Status   ParticipationStatus `gorm:"type:varchar(20);not null;index:idx_participations_status" json:"status"`
	JoinedAt time.Time           `gorm:"type:timestamp;not null" json:"joined_at"`
}

// TableName specifies the table name for Participation
func (Participation) TableName() string {
	return "participations"
}

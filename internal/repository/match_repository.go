package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"match-service/internal/domain"
)

// MatchRepository defines the interface for match data access
type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	// FindByIDForUpdate loads the match and holds its row lock until the transaction ends
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	FindByIDWithParticipations(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus, stamps map[string]interface{}) error
	// SetPlayerCount writes count only when it fits within max_players.
	// It returns false when the capacity guard rejected the write.
	SetPlayerCount(ctx context.Context, id uuid.UUID, count int) (bool, error)
	CountByStatus(ctx context.Context) (map[domain.MatchStatus]int64, error)
}

// matchRepositoryImpl is the GORM implementation of MatchRepository
type matchRepositoryImpl struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepositoryImpl{db: db}
}

func (r *matchRepositoryImpl) Create(ctx context.Context, match *domain.Match) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(match).Error)
}

func (r *matchRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	var match domain.Match
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&match).Error; err != nil {
		return nil, translateError(err)
	}
	return &match, nil
}

func (r *matchRepositoryImpl) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	var match domain.Match
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&match).Error; err != nil {
		return nil, translateError(err)
	}
	return &match, nil
}

// FindByIDWithParticipations loads the match with its participations in join order
func (r *matchRepositoryImpl) FindByIDWithParticipations(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	var match domain.Match
	if err := r.db.WithContext(ctx).
		Preload("Participations", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at ASC")
		}).
		Where("id = ?", id).
		First(&match).Error; err != nil {
		return nil, translateError(err)
	}
	return &match, nil
}

func (r *matchRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus, stamps map[string]interface{}) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	for k, v := range stamps {
		updates[k] = v
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Match{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *matchRepositoryImpl) SetPlayerCount(ctx context.Context, id uuid.UUID, count int) (bool, error) {
	if count < 0 {
		count = 0
	}
	result := r.db.WithContext(ctx).
		Model(&domain.Match{}).
		Where("id = ? AND max_players >= ?", id, count).
		Updates(map[string]interface{}{
			"current_players": count,
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *matchRepositoryImpl) CountByStatus(ctx context.Context) (map[domain.MatchStatus]int64, error) {
	var rows []struct {
		Status domain.MatchStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Match{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	counts := make(map[domain.MatchStatus]int64, len(domain.AllMatchStatuses))
	for _, st := range domain.AllMatchStatuses {
		counts[st] = 0
	}
	for _, row := range rows {
		counts[row.Status] += row.Count
	}
	return counts, nil
}

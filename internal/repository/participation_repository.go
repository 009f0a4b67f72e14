package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"match-service/internal/domain"
)

// ParticipationRepository defines the interface for participation data access
type ParticipationRepository interface {
	Create(ctx context.Context, participation *domain.Participation) error
	FindByMatchAndUser(ctx context.Context, matchID, userID uuid.UUID) (*domain.Participation, error)
	FindByMatch(ctx context.Context, matchID uuid.UUID) ([]*domain.Participation, error)
	// CountCounted returns the number of participations occupying a slot
	CountCounted(ctx context.Context, matchID uuid.UUID) (int64, error)
	FindCountedUserIDs(ctx context.Context, matchID uuid.UUID) ([]uuid.UUID, error)
	// FindFirstWaitlisted returns the longest waiting participation, or gorm.ErrRecordNotFound
	FindFirstWaitlisted(ctx context.Context, matchID uuid.UUID) (*domain.Participation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ParticipationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// participationRepositoryImpl is the GORM implementation of ParticipationRepository
type participationRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipationRepository creates a new instance of ParticipationRepository
func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepositoryImpl{db: db}
}

// Create inserts a participation. A second row for the same (match, user) fails with ErrDuplicate.
func (r *participationRepositoryImpl) Create(ctx context.Context, participation *domain.Participation) error {
	return translateError(r.db.WithContext(ctx).Create(participation).Error)
}

func (r *participationRepositoryImpl) FindByMatchAndUser(ctx context.Context, matchID, userID uuid.UUID) (*domain.Participation, error) {
	var participation domain.Participation
	if err := r.db.WithContext(ctx).
		Where("match_id = ? AND user_id = ?", matchID, userID).
		First(&participation).Error; err != nil {
		return nil, translateError(err)
	}
	return &participation, nil
}

func (r *participationRepositoryImpl) FindByMatch(ctx context.Context, matchID uuid.UUID) ([]*domain.Participation, error) {
	var participations []*domain.Participation
	if err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("joined_at ASC").
		Find(&participations).Error; err != nil {
		return nil, translateError(err)
	}
	return participations, nil
}

func (r *participationRepositoryImpl) CountCounted(ctx context.Context, matchID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Participation{}).
		Where("match_id = ? AND status IN ?", matchID, domain.CountedParticipationStatuses).
		Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *participationRepositoryImpl) FindCountedUserIDs(ctx context.Context, matchID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&domain.Participation{}).
		Where("match_id = ? AND status IN ?", matchID, domain.CountedParticipationStatuses).
		Order("joined_at ASC").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, translateError(err)
	}
	return userIDs, nil
}

func (r *participationRepositoryImpl) FindFirstWaitlisted(ctx context.Context, matchID uuid.UUID) (*domain.Participation, error) {
	var participation domain.Participation
	if err := r.db.WithContext(ctx).
		Where("match_id = ? AND status = ?", matchID, domain.ParticipationStatusWaitlisted).
		Order("joined_at ASC").
		Order("created_at ASC").
		First(&participation).Error; err != nil {
		return nil, translateError(err)
	}
	return &participation, nil
}

func (r *participationRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ParticipationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Participation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *participationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Participation{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

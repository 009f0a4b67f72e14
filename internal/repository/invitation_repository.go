package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"match-service/internal/domain"
)

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	Create(ctx context.Context, invitation *domain.Invitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Invitation, error)
	FindPendingByMatchAndInvitee(ctx context.Context, matchID, inviteeID uuid.UUID) (*domain.Invitation, error)
	FindByInvitee(ctx context.Context, inviteeID uuid.UUID, status *domain.InvitationStatus) ([]*domain.Invitation, error)
	// Resolve moves a pending invitation to status. It returns false when the
	// invitation was no longer pending.
	Resolve(ctx context.Context, id uuid.UUID, status domain.InvitationStatus, at time.Time) (bool, error)
	// ExpirePending marks every pending invitation whose expires_at is before now as expired
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

// invitationRepositoryImpl is the GORM implementation of InvitationRepository
type invitationRepositoryImpl struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new instance of InvitationRepository
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

func (r *invitationRepositoryImpl) Create(ctx context.Context, invitation *domain.Invitation) error {
	return translateError(r.db.WithContext(ctx).Create(invitation).Error)
}

func (r *invitationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	var invitation domain.Invitation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&invitation).Error; err != nil {
		return nil, translateError(err)
	}
	return &invitation, nil
}

func (r *invitationRepositoryImpl) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	var invitation domain.Invitation
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&invitation).Error; err != nil {
		return nil, translateError(err)
	}
	return &invitation, nil
}

func (r *invitationRepositoryImpl) FindPendingByMatchAndInvitee(ctx context.Context, matchID, inviteeID uuid.UUID) (*domain.Invitation, error) {
	var invitation domain.Invitation
	if err := r.db.WithContext(ctx).
		Where("match_id = ? AND invitee_id = ? AND status = ?", matchID, inviteeID, domain.InvitationStatusPending).
		First(&invitation).Error; err != nil {
		return nil, translateError(err)
	}
	return &invitation, nil
}

func (r *invitationRepositoryImpl) FindByInvitee(ctx context.Context, inviteeID uuid.UUID, status *domain.InvitationStatus) ([]*domain.Invitation, error) {
	var invitations []*domain.Invitation
	query := r.db.WithContext(ctx).Where("invitee_id = ?", inviteeID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Order("created_at DESC").Find(&invitations).Error; err != nil {
		return nil, translateError(err)
	}
	return invitations, nil
}

func (r *invitationRepositoryImpl) Resolve(ctx context.Context, id uuid.UUID, status domain.InvitationStatus, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Invitation{}).
		Where("id = ? AND status = ?", id, domain.InvitationStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": at,
			"updated_at":   at,
		})
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *invitationRepositoryImpl) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Invitation{}).
		Where("status = ? AND expires_at < ?", domain.InvitationStatusPending, now).
		Updates(map[string]interface{}{
			"status":     domain.InvitationStatusExpired,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *invitationRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Invitation{}).
		Where("status = ?", domain.InvitationStatusPending).
		Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

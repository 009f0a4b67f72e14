package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that take part in one unit of work.
type Store interface {
	Matches() MatchRepository
	Participations() ParticipationRepository
	Invitations() InvitationRepository

	// WithTx runs fn inside a database transaction. The Store passed to fn is
	// bound to that transaction; returning an error rolls everything back.
	WithTx(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db             *gorm.DB
	matches        MatchRepository
	participations ParticipationRepository
	invitations    InvitationRepository
}

// NewStore creates a Store backed by db
func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:             db,
		matches:        NewMatchRepository(db),
		participations: NewParticipationRepository(db),
		invitations:    NewInvitationRepository(db),
	}
}

func (s *gormStore) Matches() MatchRepository                { return s.matches }
func (s *gormStore) Participations() ParticipationRepository { return s.participations }
func (s *gormStore) Invitations() InvitationRepository       { return s.invitations }

// WithTx wraps gorm's Transaction. Nested calls reuse the outer transaction
// through gorm's savepoint handling.
func (s *gormStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	var fnErr error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(NewStore(tx))
		return fnErr
	})
	if err != nil && fnErr == nil {
		// begin/commit failed
		return translateError(err)
	}
	return err
}

package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/example/logitrack/internal/models"
)

// CreateUser persists a new account. Duplicate external identities surface as
// ErrConflict.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

// GetUserByID fetches a single user by primary key.
func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetUserByOpenID resolves an account by its external identity key.
func (s *Store) GetUserByOpenID(ctx context.Context, openID string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "open_id = ?", openID).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetUserByEmail resolves an account by email for credential login.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpdateUserRole changes an account's role.
func (s *Store) UpdateUserRole(ctx context.Context, id uuid.UUID, role string) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return translate(s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role).Error)
}

// TouchLastSignedIn records a successful sign-in.
func (s *Store) TouchLastSignedIn(ctx context.Context, id uuid.UUID) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return translate(s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("last_signed_in", time.Now()).Error)
}

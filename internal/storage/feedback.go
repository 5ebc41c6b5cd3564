package storage

import (
	"context"

	"github.com/example/logitrack/internal/models"
)

// CreateFeedback persists a feedback entry. Rating bounds are enforced at the
// procedure boundary, not here.
func (s *Store) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return translate(s.db.WithContext(ctx).Create(feedback).Error)
}

// ListFeedback returns feedback entries, newest first.
func (s *Store) ListFeedback(ctx context.Context, limit, offset int) ([]models.Feedback, error) {
	if s.db == nil {
		return []models.Feedback{}, nil
	}

	var entries []models.Feedback
	if err := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, translate(err)
	}
	return entries, nil
}

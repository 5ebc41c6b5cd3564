package storage

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/logitrack/internal/models"
)

// CreateDriver persists a new driver profile. Duplicate licenses and duplicate
// user links surface as ErrConflict.
func (s *Store) CreateDriver(ctx context.Context, driver *models.Driver) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return translate(s.db.WithContext(ctx).Create(driver).Error)
}

// GetDriverByID fetches a single driver by primary key.
func (s *Store) GetDriverByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	var driver models.Driver
	if err := s.db.WithContext(ctx).First(&driver, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &driver, nil
}

// GetDriverByUserID resolves the driver profile behind a user account.
func (s *Store) GetDriverByUserID(ctx context.Context, userID uuid.UUID) (*models.Driver, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	var driver models.Driver
	if err := s.db.WithContext(ctx).First(&driver, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &driver, nil
}

// GetActiveDrivers returns all drivers currently marked active.
func (s *Store) GetActiveDrivers(ctx context.Context) ([]models.Driver, error) {
	if s.db == nil {
		return []models.Driver{}, nil
	}

	var drivers []models.Driver
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&drivers).Error; err != nil {
		return nil, translate(err)
	}
	return drivers, nil
}

// UpdateDriverLocation mirrors the latest reported position onto the driver.
func (s *Store) UpdateDriverLocation(ctx context.Context, id uuid.UUID, latitude, longitude string) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return translate(s.db.WithContext(ctx).Model(&models.Driver{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_latitude":  latitude,
			"current_longitude": longitude,
		}).Error)
}

// IncrementDriverDeliveries bumps the delivery counter after a terminal
// delivered shipment.
func (s *Store) IncrementDriverDeliveries(ctx context.Context, id uuid.UUID) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return translate(s.db.WithContext(ctx).Model(&models.Driver{}).
		Where("id = ?", id).
		UpdateColumn("total_deliveries", gorm.Expr("total_deliveries + 1")).Error)
}

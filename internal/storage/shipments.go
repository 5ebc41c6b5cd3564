package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/example/logitrack/internal/models"
)

// ShipmentStatusUpdate carries a status change with optional position fields.
// Nil pointers leave the stored value untouched.
type ShipmentStatusUpdate struct {
	Status    models.ShipmentStatus
	Location  *string
	Latitude  *string
	Longitude *string
}

// CreateShipment persists a new shipment. The one-per-order unique index
// surfaces duplicates as ErrConflict.
func (s *Store) CreateShipment(ctx context.Context, shipment *models.Shipment) error {
	if s.db == nil {
		return ErrUnavailable
	}
	if shipment.LastUpdated.IsZero() {
		shipment.LastUpdated = time.Now()
	}
	return translate(s.db.WithContext(ctx).Create(shipment).Error)
}

// GetShipmentByID fetches a single shipment by primary key.
func (s *Store) GetShipmentByID(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	var shipment models.Shipment
	if err := s.db.WithContext(ctx).First(&shipment, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &shipment, nil
}

// GetShipmentByOrderID returns the shipment backing an order, or ErrNotFound
// for orders that were never dispatched.
func (s *Store) GetShipmentByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Shipment, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	var shipment models.Shipment
	if err := s.db.WithContext(ctx).First(&shipment, "order_id = ?", orderID).Error; err != nil {
		return nil, translate(err)
	}
	return &shipment, nil
}

// GetShipmentsByDriverID returns a driver's shipments, newest update first.
func (s *Store) GetShipmentsByDriverID(ctx context.Context, driverID uuid.UUID) ([]models.Shipment, error) {
	if s.db == nil {
		return []models.Shipment{}, nil
	}

	var shipments []models.Shipment
	if err := s.db.WithContext(ctx).
		Preload("Order").
		Where("driver_id = ?", driverID).
		Order("last_updated desc").
		Find(&shipments).Error; err != nil {
		return nil, translate(err)
	}
	return shipments, nil
}

// UpdateShipmentStatus applies a status change and any position fields the
// update carries. Last write wins; there is no optimistic concurrency check.
func (s *Store) UpdateShipmentStatus(ctx context.Context, id uuid.UUID, update ShipmentStatusUpdate) error {
	if s.db == nil {
		return ErrUnavailable
	}

	updates := map[string]interface{}{
		"status":       update.Status,
		"last_updated": time.Now(),
	}
	if update.Location != nil {
		updates["current_location"] = *update.Location
	}
	if update.Latitude != nil {
		updates["current_latitude"] = *update.Latitude
	}
	if update.Longitude != nil {
		updates["current_longitude"] = *update.Longitude
	}

	result := s.db.WithContext(ctx).Model(&models.Shipment{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

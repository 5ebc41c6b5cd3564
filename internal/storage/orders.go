package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/logitrack/internal/models"
)

// CreateOrder persists a new order. The caller fills all required fields; the
// tracking ID unique index surfaces collisions as ErrConflict.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return translate(s.db.WithContext(ctx).Create(order).Error)
}

// GetOrderByTrackingID looks an order up by its public tracking ID. A miss is
// reported as ErrNotFound, never as a generic failure.
func (s *Store) GetOrderByTrackingID(ctx context.Context, trackingID string) (*models.Order, error) {
	if cached := s.cachedOrderByTracking(ctx, trackingID); cached != nil {
		return cached, nil
	}
	if s.db == nil {
		return nil, ErrNotFound
	}

	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "tracking_id = ?", trackingID).Error; err != nil {
		return nil, translate(err)
	}

	s.cacheOrderByTracking(ctx, &order)
	return &order, nil
}

// GetOrderByID fetches a single order by primary key.
func (s *Store) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// GetOrdersByCustomerID returns the customer's orders in insertion order.
func (s *Store) GetOrdersByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	if s.db == nil {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

// UpdateOrderStatus sets the order status. Legality of the transition is the
// caller's responsibility; stale tracking cache entries are dropped.
func (s *Store) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if s.db == nil {
		return ErrUnavailable
	}

	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"status": status}
	if status == models.OrderDelivered {
		now := time.Now()
		updates["actual_delivery"] = &now
	}

	if err := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return translate(err)
	}

	s.invalidateTracking(ctx, order.TrackingID)
	return nil
}

// DispatchOrder confirms a pending order and creates its shipment in one
// transaction, optionally assigning a driver.
func (s *Store) DispatchOrder(ctx context.Context, orderID uuid.UUID, driverID *uuid.UUID) (*models.Shipment, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	shipment := &models.Shipment{
		OrderID:         orderID,
		DriverID:        driverID,
		CurrentLocation: order.PickupLocation,
		Status:          models.ShipmentAssigned,
		LastUpdated:     time.Now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("id = ?", orderID).
			Update("status", models.OrderConfirmed).Error; err != nil {
			return err
		}
		return tx.Create(shipment).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	s.invalidateTracking(ctx, order.TrackingID)
	return shipment, nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/example/logitrack/internal/models"
)

// AnalyticsDelta carries counter increments applied to a date's snapshot row.
type AnalyticsDelta struct {
	Orders               int
	ShipOrders           int
	WarehouseOrders      int
	SuccessfulDeliveries int
	FailedDeliveries     int
	Revenue              float64
}

// GetAnalytics returns the snapshot row for a date (YYYY-MM-DD).
func (s *Store) GetAnalytics(ctx context.Context, date string) (*models.Analytics, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	var row models.Analytics
	if err := s.db.WithContext(ctx).First(&row, "date = ?", date).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// UpsertAnalytics applies a delta to the date's row, creating it on first
// touch. Read-then-write, not atomic; slight undercounting under concurrent
// updates is tolerated for a dashboard aggregate.
func (s *Store) UpsertAnalytics(ctx context.Context, date string, delta AnalyticsDelta) error {
	if s.db == nil {
		return ErrUnavailable
	}

	row, err := s.GetAnalytics(ctx, date)
	if errors.Is(err, ErrNotFound) {
		row = &models.Analytics{Date: date, TotalRevenue: "0"}
		if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
			return translate(err)
		}
	} else if err != nil {
		return err
	}

	revenue, _ := strconv.ParseFloat(row.TotalRevenue, 64)
	revenue += delta.Revenue

	return translate(s.db.WithContext(ctx).Model(&models.Analytics{}).
		Where("date = ?", date).
		Updates(map[string]interface{}{
			"total_orders":          row.TotalOrders + delta.Orders,
			"ship_orders":           row.ShipOrders + delta.ShipOrders,
			"warehouse_orders":      row.WarehouseOrders + delta.WarehouseOrders,
			"successful_deliveries": row.SuccessfulDeliveries + delta.SuccessfulDeliveries,
			"failed_deliveries":     row.FailedDeliveries + delta.FailedDeliveries,
			"total_revenue":         fmt.Sprintf("%.2f", revenue),
		}).Error)
}

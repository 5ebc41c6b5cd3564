package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/logitrack/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	for _, m := range []interface{}{
		&models.User{}, &models.Driver{}, &models.Order{}, &models.Shipment{},
		&models.Invoice{}, &models.Feedback{}, &models.Analytics{},
	} {
		require.NoError(t, db.AutoMigrate(m))
	}

	return New(db, nil)
}

func makeOrder(customerID uuid.UUID, trackingID string) *models.Order {
	return &models.Order{
		CustomerID:        customerID,
		OrderType:         models.OrderTypeShip,
		TrackingID:        trackingID,
		Status:            models.OrderPending,
		PickupLocation:    "A",
		DeliveryLocation:  "B",
		PackageWeight:     "5 kg",
		PackageDimensions: "30x20x10",
	}
}

func TestOrderCreateAndTrackingLookup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	customerID := uuid.New()

	order := makeOrder(customerID, "LTP1700000000000ABCDEFGHI")
	require.NoError(t, store.CreateOrder(ctx, order))

	got, err := store.GetOrderByTrackingID(ctx, "LTP1700000000000ABCDEFGHI")
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, customerID, got.CustomerID)
	assert.Equal(t, models.OrderPending, got.Status)

	_, err = store.GetOrderByTrackingID(ctx, "LTP0000000000000ZZZZZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderTrackingIDConflict(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateOrder(ctx, makeOrder(uuid.New(), "LTP1DUPLICATE")))
	err := store.CreateOrder(ctx, makeOrder(uuid.New(), "LTP1DUPLICATE"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestOrdersByCustomerScoping(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, store.CreateOrder(ctx, makeOrder(alice, "LTP1A")))
	require.NoError(t, store.CreateOrder(ctx, makeOrder(bob, "LTP1B")))
	require.NoError(t, store.CreateOrder(ctx, makeOrder(alice, "LTP2A")))
	require.NoError(t, store.CreateOrder(ctx, makeOrder(bob, "LTP2B")))

	orders, err := store.GetOrdersByCustomerID(ctx, alice)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, alice, o.CustomerID)
	}
	assert.Equal(t, "LTP1A", orders[0].TrackingID)
	assert.Equal(t, "LTP2A", orders[1].TrackingID)
}

func TestDispatchOrderCreatesShipmentAndConfirms(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	order := makeOrder(uuid.New(), "LTP3DISPATCH")
	require.NoError(t, store.CreateOrder(ctx, order))

	shipment, err := store.DispatchOrder(ctx, order.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, order.ID, shipment.OrderID)
	assert.Equal(t, models.ShipmentAssigned, shipment.Status)
	assert.Equal(t, "A", shipment.CurrentLocation)

	got, err := store.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderConfirmed, got.Status)

	// One shipment per order.
	_, err = store.DispatchOrder(ctx, order.ID, nil)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateShipmentStatusPartialFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	order := makeOrder(uuid.New(), "LTP4PARTIAL")
	require.NoError(t, store.CreateOrder(ctx, order))
	shipment, err := store.DispatchOrder(ctx, order.ID, nil)
	require.NoError(t, err)

	lat, lng := "41.31", "69.24"
	err = store.UpdateShipmentStatus(ctx, shipment.ID, ShipmentStatusUpdate{
		Status:   models.ShipmentPickedUp,
		Latitude: &lat, Longitude: &lng,
	})
	require.NoError(t, err)

	got, err := store.GetShipmentByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentPickedUp, got.Status)
	assert.Equal(t, "41.31", got.CurrentLatitude)
	assert.Equal(t, "69.24", got.CurrentLongitude)
	// Untouched field keeps its value.
	assert.Equal(t, "A", got.CurrentLocation)

	err = store.UpdateShipmentStatus(ctx, uuid.New(), ShipmentStatusUpdate{Status: models.ShipmentFailed})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDriverUniqueLicense(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateDriver(ctx, &models.Driver{
		UserID: uuid.New(), DriverLicense: "DL-100", IsActive: true, Rating: "0",
	}))
	err := store.CreateDriver(ctx, &models.Driver{
		UserID: uuid.New(), DriverLicense: "DL-100", IsActive: true, Rating: "0",
	})
	assert.ErrorIs(t, err, ErrConflict)

	active, err := store.GetActiveDrivers(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestAnalyticsUpsertIncrements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertAnalytics(ctx, "2026-08-29", AnalyticsDelta{Orders: 1, ShipOrders: 1, Revenue: 120.50}))
	require.NoError(t, store.UpsertAnalytics(ctx, "2026-08-29", AnalyticsDelta{Orders: 1, WarehouseOrders: 1, SuccessfulDeliveries: 1, Revenue: 80}))

	row, err := store.GetAnalytics(ctx, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 2, row.TotalOrders)
	assert.Equal(t, 1, row.ShipOrders)
	assert.Equal(t, 1, row.WarehouseOrders)
	assert.Equal(t, 1, row.SuccessfulDeliveries)
	assert.Equal(t, "200.50", row.TotalRevenue)

	_, err = store.GetAnalytics(ctx, "1999-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDegradedStoreWithoutDatabase(t *testing.T) {
	store := New(nil, nil)
	ctx := context.Background()

	// Writes fail fast.
	err := store.CreateOrder(ctx, makeOrder(uuid.New(), "LTP5DEGRADED"))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, store.CreateFeedback(ctx, &models.Feedback{Rating: 5}), ErrUnavailable)

	// Reads degrade to absent or empty.
	_, err = store.GetOrderByTrackingID(ctx, "LTP5DEGRADED")
	assert.ErrorIs(t, err, ErrNotFound)

	orders, err := store.GetOrdersByCustomerID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, orders)

	drivers, err := store.GetActiveDrivers(ctx)
	require.NoError(t, err)
	assert.Empty(t, drivers)
}

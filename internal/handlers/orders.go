package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/logitrack/internal/config"
	"github.com/example/logitrack/internal/middleware"
	"github.com/example/logitrack/internal/models"
	"github.com/example/logitrack/internal/storage"
	"github.com/example/logitrack/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	store *storage.Store
	cfg   *config.Config
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(store *storage.Store, cfg *config.Config) *OrderHandler {
	return &OrderHandler{store: store, cfg: cfg}
}

type createOrderRequest struct {
	OrderType         string `json:"order_type"`
	PickupLocation    string `json:"pickup_location"`
	DeliveryLocation  string `json:"delivery_location"`
	PackageWeight     string `json:"package_weight"`
	PackageDimensions string `json:"package_dimensions"`
	Description       string `json:"description"`
}

// Create places a new order for the authenticated customer.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	orderType := models.OrderType(req.OrderType)
	if !orderType.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "order_type must be ship or warehouse")
	}
	if req.PickupLocation == "" {
		return fiber.NewError(fiber.StatusBadRequest, "pickup_location is required")
	}
	if req.PackageWeight == "" {
		return fiber.NewError(fiber.StatusBadRequest, "package_weight is required")
	}
	if req.PackageDimensions == "" {
		return fiber.NewError(fiber.StatusBadRequest, "package_dimensions is required")
	}
	if orderType == models.OrderTypeShip && req.DeliveryLocation == "" {
		return fiber.NewError(fiber.StatusBadRequest, "delivery_location is required for ship orders")
	}

	trackingID, err := utils.NewTrackingID(h.cfg.TrackingPrefix)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate tracking id")
	}

	order := models.Order{
		CustomerID:        userID,
		OrderType:         orderType,
		TrackingID:        trackingID,
		Status:            models.OrderPending,
		PickupLocation:    req.PickupLocation,
		DeliveryLocation:  req.DeliveryLocation,
		PackageWeight:     req.PackageWeight,
		PackageDimensions: req.PackageDimensions,
		Description:       req.Description,
	}

	if err := h.store.CreateOrder(c.Context(), &order); err != nil {
		return storageStatus(err, "order not found")
	}

	h.bumpOrderAnalytics(c, orderType)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

// ListMine returns the authenticated customer's orders in insertion order.
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	orders, err := h.store.GetOrdersByCustomerID(c.Context(), userID)
	if err != nil {
		return storageStatus(err, "order not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": orders})
}

// GetByTrackingID serves the public guest-tracking lookup. A miss yields a
// null payload, not an error.
func (h *OrderHandler) GetByTrackingID(c *fiber.Ctx) error {
	order, err := h.store.GetOrderByTrackingID(c.Context(), c.Params("trackingId"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(fiber.Map{"success": true, "data": nil})
		}
		return storageStatus(err, "")
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an order through its lifecycle. Admin only; unrecognized
// values and illegal transitions are rejected.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	if _, err := requireAdmin(c, h.store); err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	var req updateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	next := models.OrderStatus(req.Status)
	if !next.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "unknown order status")
	}

	order, err := h.store.GetOrderByID(c.Context(), orderID)
	if err != nil {
		return storageStatus(err, "order not found")
	}

	if !order.Status.CanTransition(next) {
		return fiber.NewError(fiber.StatusBadRequest, "illegal status transition")
	}

	if err := h.store.UpdateOrderStatus(c.Context(), orderID, next); err != nil {
		return storageStatus(err, "order not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"id": orderID, "status": next}})
}

type dispatchOrderRequest struct {
	DriverID string `json:"driver_id"`
}

// Dispatch confirms a pending order and creates its shipment, optionally
// assigning a driver. Admin only.
func (h *OrderHandler) Dispatch(c *fiber.Ctx) error {
	if _, err := requireAdmin(c, h.store); err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	var req dispatchOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.store.GetOrderByID(c.Context(), orderID)
	if err != nil {
		return storageStatus(err, "order not found")
	}

	if !order.Status.CanTransition(models.OrderConfirmed) {
		return fiber.NewError(fiber.StatusBadRequest, "order cannot be dispatched from status "+string(order.Status))
	}

	var driverID *uuid.UUID
	if req.DriverID != "" {
		id, err := uuid.Parse(req.DriverID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid driver id")
		}
		if _, err := h.store.GetDriverByID(c.Context(), id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "unknown driver")
			}
			return storageStatus(err, "")
		}
		driverID = &id
	}

	shipment, err := h.store.DispatchOrder(c.Context(), orderID, driverID)
	if err != nil {
		return storageStatus(err, "order not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": shipment})
}

func (h *OrderHandler) bumpOrderAnalytics(c *fiber.Ctx, orderType models.OrderType) {
	delta := storage.AnalyticsDelta{Orders: 1}
	if orderType == models.OrderTypeShip {
		delta.ShipOrders = 1
	} else {
		delta.WarehouseOrders = 1
	}

	date := time.Now().Format("2006-01-02")
	if err := h.store.UpsertAnalytics(c.Context(), date, delta); err != nil {
		log.Printf("analytics update failed for %s: %v", date, err)
	}
}

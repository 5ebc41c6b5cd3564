package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/logitrack/internal/models"
	"github.com/example/logitrack/internal/storage"
)

// ShipmentHandler manages shipment endpoints.
type ShipmentHandler struct {
	store *storage.Store
}

// NewShipmentHandler constructs ShipmentHandler.
func NewShipmentHandler(store *storage.Store) *ShipmentHandler {
	return &ShipmentHandler{store: store}
}

type updateShipmentStatusRequest struct {
	Status    string  `json:"status"`
	Location  *string `json:"location"`
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

// UpdateStatus records shipment progress. The caller must be an admin or the
// assigned driver; unrecognized values and illegal transitions are rejected.
func (h *ShipmentHandler) UpdateStatus(c *fiber.Ctx) error {
	user, err := currentUser(c, h.store)
	if err != nil {
		return err
	}

	shipmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid shipment id")
	}

	var req updateShipmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	next := models.ShipmentStatus(req.Status)
	if !next.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "unknown shipment status")
	}

	shipment, err := h.store.GetShipmentByID(c.Context(), shipmentID)
	if err != nil {
		return storageStatus(err, "shipment not found")
	}

	if !user.IsAdmin() {
		driver, err := h.store.GetDriverByUserID(c.Context(), user.ID)
		if err != nil || shipment.DriverID == nil || *shipment.DriverID != driver.ID {
			return fiber.NewError(fiber.StatusForbidden, "shipment is not assigned to you")
		}
	}

	if !shipment.Status.CanTransition(next) {
		return fiber.NewError(fiber.StatusBadRequest, "illegal status transition")
	}

	update := storage.ShipmentStatusUpdate{
		Status:    next,
		Location:  req.Location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := h.store.UpdateShipmentStatus(c.Context(), shipmentID, update); err != nil {
		return storageStatus(err, "shipment not found")
	}

	h.recordProgress(c, shipment, next, req)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"id": shipmentID, "status": next}})
}

// GetByOrderID serves the public shipment lookup for an order. A miss yields
// a null payload, not an error.
func (h *ShipmentHandler) GetByOrderID(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	shipment, err := h.store.GetShipmentByOrderID(c.Context(), orderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(fiber.Map{"success": true, "data": nil})
		}
		return storageStatus(err, "")
	}

	return c.JSON(fiber.Map{"success": true, "data": shipment})
}

// ListMine returns the shipments assigned to the calling driver.
func (h *ShipmentHandler) ListMine(c *fiber.Ctx) error {
	user, err := currentUser(c, h.store)
	if err != nil {
		return err
	}

	driver, err := h.store.GetDriverByUserID(c.Context(), user.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(fiber.Map{"success": true, "data": []models.Shipment{}})
		}
		return storageStatus(err, "")
	}

	shipments, err := h.store.GetShipmentsByDriverID(c.Context(), driver.ID)
	if err != nil {
		return storageStatus(err, "")
	}

	return c.JSON(fiber.Map{"success": true, "data": shipments})
}

// recordProgress mirrors position onto the driver and bumps the dashboard
// counters on terminal states. Best effort: the status update already landed.
func (h *ShipmentHandler) recordProgress(c *fiber.Ctx, shipment *models.Shipment, next models.ShipmentStatus, req updateShipmentStatusRequest) {
	if shipment.DriverID != nil && req.Latitude != nil && req.Longitude != nil {
		if err := h.store.UpdateDriverLocation(c.Context(), *shipment.DriverID, *req.Latitude, *req.Longitude); err != nil {
			log.Printf("driver location update failed: %v", err)
		}
	}

	var delta storage.AnalyticsDelta
	switch next {
	case models.ShipmentDelivered:
		delta.SuccessfulDeliveries = 1
		if shipment.DriverID != nil {
			if err := h.store.IncrementDriverDeliveries(c.Context(), *shipment.DriverID); err != nil {
				log.Printf("driver delivery counter update failed: %v", err)
			}
		}
	case models.ShipmentFailed:
		delta.FailedDeliveries = 1
	default:
		return
	}

	date := time.Now().Format("2006-01-02")
	if err := h.store.UpsertAnalytics(c.Context(), date, delta); err != nil {
		log.Printf("analytics update failed for %s: %v", date, err)
	}
}

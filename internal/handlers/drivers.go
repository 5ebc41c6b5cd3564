package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/logitrack/internal/models"
	"github.com/example/logitrack/internal/storage"
)

// DriverHandler manages driver endpoints.
type DriverHandler struct {
	store *storage.Store
}

// NewDriverHandler constructs DriverHandler.
func NewDriverHandler(store *storage.Store) *DriverHandler {
	return &DriverHandler{store: store}
}

type createDriverRequest struct {
	UserID        string `json:"user_id"`
	DriverLicense string `json:"driver_license"`
	Phone         string `json:"phone"`
	Vehicle       string `json:"vehicle"`
}

// Create registers a driver profile for an existing account. Admin only.
func (h *DriverHandler) Create(c *fiber.Ctx) error {
	if _, err := requireAdmin(c, h.store); err != nil {
		return err
	}

	var req createDriverRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.DriverLicense == "" {
		return fiber.NewError(fiber.StatusBadRequest, "driver_license is required")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	if _, err := h.store.GetUserByID(c.Context(), userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown user")
		}
		return storageStatus(err, "")
	}

	driver := models.Driver{
		UserID:        userID,
		DriverLicense: req.DriverLicense,
		Phone:         req.Phone,
		Vehicle:       req.Vehicle,
		IsActive:      true,
		Rating:        "0",
	}

	if err := h.store.CreateDriver(c.Context(), &driver); err != nil {
		return storageStatus(err, "")
	}

	if err := h.store.UpdateUserRole(c.Context(), userID, models.RoleDriver); err != nil {
		log.Printf("role update failed for driver %s: %v", driver.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": driver})
}

// ListActive returns all active drivers. Admin only.
func (h *DriverHandler) ListActive(c *fiber.Ctx) error {
	if _, err := requireAdmin(c, h.store); err != nil {
		return err
	}

	drivers, err := h.store.GetActiveDrivers(c.Context())
	if err != nil {
		return storageStatus(err, "")
	}

	return c.JSON(fiber.Map{"success": true, "data": drivers})
}

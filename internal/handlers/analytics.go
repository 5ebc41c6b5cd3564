package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/logitrack/internal/storage"
)

// AnalyticsHandler serves the admin dashboard snapshots.
type AnalyticsHandler struct {
	store *storage.Store
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(store *storage.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: store}
}

// Get returns the snapshot row for a date (YYYY-MM-DD), or null when no
// activity was recorded. Admin only.
func (h *AnalyticsHandler) Get(c *fiber.Ctx) error {
	if _, err := requireAdmin(c, h.store); err != nil {
		return err
	}

	date := c.Params("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	row, err := h.store.GetAnalytics(c.Context(), date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(fiber.Map{"success": true, "data": nil})
		}
		return storageStatus(err, "")
	}

	return c.JSON(fiber.Map{"success": true, "data": row})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/logitrack/internal/config"
	"github.com/example/logitrack/internal/middleware"
	"github.com/example/logitrack/internal/models"
	"github.com/example/logitrack/internal/storage"
	"github.com/example/logitrack/internal/utils"
)

// FeedbackHandler manages feedback endpoints.
type FeedbackHandler struct {
	store *storage.Store
	cfg   *config.Config
}

// NewFeedbackHandler constructs FeedbackHandler.
func NewFeedbackHandler(store *storage.Store, cfg *config.Config) *FeedbackHandler {
	return &FeedbackHandler{store: store, cfg: cfg}
}

type submitFeedbackRequest struct {
	CustomerID string `json:"customer_id"`
	OrderID    string `json:"order_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// Submit records a rating. Open to guests; an authenticated caller is used as
// the customer when the request names none.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req submitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
	}

	feedback := models.Feedback{
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid customer id")
		}
		feedback.CustomerID = &id
	} else if id, ok := middleware.ResolveUserID(c, h.cfg); ok {
		feedback.CustomerID = &id
	}

	if req.OrderID != "" {
		id, err := uuid.Parse(req.OrderID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
		}
		feedback.OrderID = &id
	}

	if err := h.store.CreateFeedback(c.Context(), &feedback); err != nil {
		return storageStatus(err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": feedback})
}

// List returns recent feedback entries. Admin only.
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	if _, err := requireAdmin(c, h.store); err != nil {
		return err
	}

	pg := utils.ParsePagination(c)
	entries, err := h.store.ListFeedback(c.Context(), pg.Limit, pg.Offset)
	if err != nil {
		return storageStatus(err, "")
	}

	return c.JSON(fiber.Map{"success": true, "data": entries})
}

package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/logitrack/internal/models"
	"github.com/example/logitrack/internal/storage"
)

// InvoiceHandler manages invoice endpoints.
type InvoiceHandler struct {
	store *storage.Store
}

// NewInvoiceHandler constructs InvoiceHandler.
func NewInvoiceHandler(store *storage.Store) *InvoiceHandler {
	return &InvoiceHandler{store: store}
}

type createInvoiceRequest struct {
	OrderID       string `json:"order_id"`
	InvoiceNumber string `json:"invoice_number"`
	TotalAmount   string `json:"total_amount"`
	Tax           string `json:"tax"`
	Discount      string `json:"discount"`
	FinalAmount   string `json:"final_amount"`
	PaymentStatus string `json:"payment_status"`
}

// Create issues an invoice for an order. Admin only; one invoice per order.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	if _, err := requireAdmin(c, h.store); err != nil {
		return err
	}

	var req createInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.InvoiceNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invoice_number is required")
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	if _, err := h.store.GetOrderByID(c.Context(), orderID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown order")
		}
		return storageStatus(err, "")
	}

	paymentStatus := models.PaymentStatus(req.PaymentStatus)
	if req.PaymentStatus == "" {
		paymentStatus = models.PaymentPending
	} else if !paymentStatus.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "unknown payment status")
	}

	invoice := models.Invoice{
		OrderID:       orderID,
		InvoiceNumber: req.InvoiceNumber,
		TotalAmount:   req.TotalAmount,
		Tax:           req.Tax,
		Discount:      req.Discount,
		FinalAmount:   req.FinalAmount,
		PaymentStatus: paymentStatus,
	}
	if invoice.Discount == "" {
		invoice.Discount = "0"
	}

	if err := h.store.CreateInvoice(c.Context(), &invoice); err != nil {
		return storageStatus(err, "")
	}

	if revenue, err := strconv.ParseFloat(invoice.FinalAmount, 64); err == nil && revenue > 0 {
		date := time.Now().Format("2006-01-02")
		if err := h.store.UpsertAnalytics(c.Context(), date, storage.AnalyticsDelta{Revenue: revenue}); err != nil {
			log.Printf("analytics update failed for %s: %v", date, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": invoice})
}

// GetByOrderID returns the invoice for an order. The caller must own the
// order or be an admin.
func (h *InvoiceHandler) GetByOrderID(c *fiber.Ctx) error {
	user, err := currentUser(c, h.store)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	order, err := h.store.GetOrderByID(c.Context(), orderID)
	if err != nil {
		return storageStatus(err, "order not found")
	}

	if !user.IsAdmin() && order.CustomerID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "not your order")
	}

	invoice, err := h.store.GetInvoiceByOrderID(c.Context(), orderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(fiber.Map{"success": true, "data": nil})
		}
		return storageStatus(err, "")
	}

	return c.JSON(fiber.Map{"success": true, "data": invoice})
}

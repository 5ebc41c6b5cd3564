package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/logitrack/internal/models"
)

// CreateInvoice persists a new invoice. The one-per-order and invoice-number
// unique indexes surface duplicates as ErrConflict.
func (s *Store) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return translate(s.db.WithContext(ctx).Create(invoice).Error)
}

// GetInvoiceByOrderID returns the invoice for an order, or ErrNotFound when
// none was issued.
func (s *Store) GetInvoiceByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Invoice, error) {
	if s.db == nil {
		return nil, ErrNotFound
	}

	var invoice models.Invoice
	if err := s.db.WithContext(ctx).First(&invoice, "order_id = ?", orderID).Error; err != nil {
		return nil, translate(err)
	}
	return &invoice, nil
}

// Package handlers is the procedure layer: the sole validation and
// authorization boundary between transport and storage.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/logitrack/internal/middleware"
	"github.com/example/logitrack/internal/models"
	"github.com/example/logitrack/internal/storage"
)

// currentUser loads the full account behind the authenticated request.
func currentUser(c *fiber.Ctx, store *storage.Store) (*models.User, error) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := store.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "unknown account")
		}
		return nil, err
	}
	return user, nil
}

// requireAdmin loads the caller and rejects non-admin accounts.
func requireAdmin(c *fiber.Ctx, store *storage.Store) (*models.User, error) {
	user, err := currentUser(c, store)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, fiber.NewError(fiber.StatusForbidden, "admin access required")
	}
	return user, nil
}

// storageStatus maps storage sentinel errors onto HTTP errors. Unknown errors
// pass through to fiber's default handler as 500s.
func storageStatus(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, storage.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, "constraint violation")
	case errors.Is(err, storage.ErrUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, "storage not available")
	}
	return err
}

package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/logitrack/internal/config"
	"github.com/example/logitrack/internal/middleware"
	"github.com/example/logitrack/internal/models"
	"github.com/example/logitrack/internal/storage"
	"github.com/example/logitrack/internal/utils"
)

// AuthHandler bundles dependencies for identity endpoints.
type AuthHandler struct {
	store *storage.Store
	cfg   *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(store *storage.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: store, cfg: cfg}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new local account and signs the caller in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and password are required")
	}

	if _, err := h.store.GetUserByEmail(c.Context(), req.Email); err == nil {
		return fiber.NewError(fiber.StatusConflict, "account already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return storageStatus(err, "")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		OpenID:       "local:" + uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		LoginMethod:  "password",
		Role:         models.RoleUser,
		PasswordHash: passwordHash,
		LastSignedIn: time.Now(),
	}

	if err := h.store.CreateUser(c.Context(), &user); err != nil {
		return storageStatus(err, "")
	}

	return h.issueSession(c, &user, fiber.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and signs the caller in.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	user, err := h.store.GetUserByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return storageStatus(err, "")
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := h.store.TouchLastSignedIn(c.Context(), user.ID); err != nil {
		return storageStatus(err, "")
	}

	return h.issueSession(c, user, fiber.StatusOK)
}

// Me returns the current identity, or null for guests. Never 401.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := middleware.ResolveUserID(c, h.cfg)
	if !ok {
		return c.JSON(fiber.Map{"success": true, "data": nil})
	}

	user, err := h.store.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(fiber.Map{"success": true, "data": nil})
		}
		return storageStatus(err, "")
	}

	return c.JSON(fiber.Map{"success": true, "data": identityPayload(user)})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) issueSession(c *fiber.Ctx, user *models.User, status int) error {
	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.TokenExpires),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token": token,
			"user":  identityPayload(user),
		},
	})
}

func identityPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"role":         user.Role,
		"login_method": user.LoginMethod,
	}
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/logitrack/internal/config"
	"github.com/example/logitrack/internal/handlers"
	"github.com/example/logitrack/internal/middleware"
	"github.com/example/logitrack/internal/storage"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, store *storage.Store, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(store, cfg)
	orderHandler := handlers.NewOrderHandler(store, cfg)
	shipmentHandler := handlers.NewShipmentHandler(store)
	driverHandler := handlers.NewDriverHandler(store)
	invoiceHandler := handlers.NewInvoiceHandler(store)
	feedbackHandler := handlers.NewFeedbackHandler(store, cfg)
	analyticsHandler := handlers.NewAnalyticsHandler(store)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authHandler.Me)
	auth.Post("/logout", authHandler.Logout)

	// Public tracking and feedback. Guest tracking by tracking ID is
	// intentionally unauthenticated.
	api.Get("/orders/track/:trackingId", orderHandler.GetByTrackingID)
	api.Get("/shipments/order/:orderId", shipmentHandler.GetByOrderID)
	api.Post("/feedback", feedbackHandler.Submit)

	// Protected routes
	protected := api.Group("", middleware.RequireAuth(cfg))

	protected.Post("/orders", orderHandler.Create)
	protected.Get("/orders", orderHandler.ListMine)
	protected.Put("/orders/:id/status", orderHandler.UpdateStatus)
	protected.Post("/orders/:id/dispatch", orderHandler.Dispatch)

	protected.Get("/shipments/mine", shipmentHandler.ListMine)
	protected.Put("/shipments/:id/status", shipmentHandler.UpdateStatus)

	protected.Post("/drivers", driverHandler.Create)
	protected.Get("/drivers/active", driverHandler.ListActive)

	protected.Post("/invoices", invoiceHandler.Create)
	protected.Get("/invoices/order/:orderId", invoiceHandler.GetByOrderID)

	protected.Get("/feedback", feedbackHandler.List)
	protected.Get("/analytics/:date", analyticsHandler.Get)
}

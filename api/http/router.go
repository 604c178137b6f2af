package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiftstream/site/api/http/handlers"
)

// Handlers groups everything Register mounts. Console handlers are optional:
// when Shipments is nil the operator endpoints are not exposed.
type Handlers struct {
	Health    *handlers.HealthHandler
	Content   *handlers.ContentHandler
	Quote     *handlers.QuoteHandler
	Tracking  *handlers.TrackingHandler
	Chat      *handlers.ChatHandler
	Auth      *handlers.AuthHandler
	Shipments *handlers.ShipmentsHandler
	AuthMW    fiber.Handler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	content := v1.Group("/content")
	content.Get("/home", h.Content.Home)
	content.Get("/services", h.Content.Services)
	content.Get("/services/:slug", h.Content.Service)

	v1.Get("/quotes/defaults", h.Quote.Defaults)
	v1.Post("/quotes", h.Quote.Create)
	v1.Get("/tracking/:id", h.Tracking.Get)
	v1.Post("/chat", h.Chat.Send)

	if h.Shipments == nil || h.Auth == nil || h.AuthMW == nil {
		return
	}
	v1.Post("/auth/login", h.Auth.Login)
	sg := v1.Group("/shipments", h.AuthMW)
	sg.Put("/:id", h.Shipments.Put)
	sg.Delete("/:id", h.Shipments.Delete)
}

package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers, rateLimiter *RateLimiter) {
	// Static assets
	app.Static("/static", "./static")

	app.Use(ClientTokenMiddleware())
	app.Get("/", handlers.Home)

	// HTMX partials
	app.Post("/wallet/connect", handlers.ConnectWallet)
	app.Post("/wallet/disconnect", handlers.DisconnectWallet)
	app.Get("/tip/state", handlers.TipState)
	app.Post("/tip", rateLimiter.Middleware(handlers.TipLimited), handlers.Tip)
	app.Post("/claim", handlers.Claim)
	app.Get("/preview", handlers.Preview)

	api := app.Group("/api")
	api.Get("/wallet", handlers.APIWallet)
	api.Post("/wallet/connect", handlers.APIConnectWallet)
	api.Post("/wallet/disconnect", handlers.APIDisconnectWallet)
	api.Get("/resolve", handlers.APIResolve)
	api.Post("/tip", rateLimiter.Middleware(handlers.APITipLimited), handlers.APITip)
	api.Post("/claim", handlers.APIClaim)
}

package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/cargolink/freight-backend/internal/handler"
	"github.com/cargolink/freight-backend/internal/middleware"
	"github.com/cargolink/freight-backend/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes. Unauthenticated
// operations live under /v1/auth and carry the rate limiter so credential
// stuffing burns the bucket, not the database. Logout-all needs a valid
// access token and lives on the protected group.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/auth")
	if limiter != nil {
		g.Use(limiter)
	}
	g.POST("/signup", a.Signup)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1/auth")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.POST("/logout-all", a.LogoutAll)
}

// RegisterMarketplace registers the quote, bid and shipment routes. All of
// them require a bearer access token; role middleware narrows the writes to
// the side of the marketplace they belong to.
func RegisterMarketplace(e *echo.Echo, q *handler.QuoteHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	ownerOnly := middleware.RequireRole(model.RoleCargoOwner)
	transporterOnly := middleware.RequireRole(model.RoleTransporter)
	anyRole := middleware.RequireRole(model.RoleCargoOwner, model.RoleTransporter, model.RoleAdmin)

	g.POST("/quotes", q.CreateQuote, ownerOnly)
	g.GET("/quotes", q.ListQuotes, anyRole)
	g.GET("/quotes/active", q.ActiveQuotes, ownerOnly)
	g.GET("/quotes/:id", q.GetQuote, anyRole)
	g.DELETE("/quotes/:id", q.CancelQuote, ownerOnly)
	g.GET("/quotes/:id/shipment", q.GetQuoteShipment, ownerOnly)
	g.POST("/quotes/:id/bids", q.CreateBid, transporterOnly)
	g.POST("/quotes/:quoteId/bids/:bidId/accept", q.AcceptBid, ownerOnly)
}

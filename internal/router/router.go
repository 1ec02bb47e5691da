package router // route registration for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/classtrack/occupancy-tracker/internal/config"
	"github.com/classtrack/occupancy-tracker/internal/handler"
	"github.com/classtrack/occupancy-tracker/internal/middleware"
	"github.com/classtrack/occupancy-tracker/internal/session"
)

// Register wires every route of the service onto the Echo instance.
//
// Three tiers: /healthz is open; /v1/auth/* needs no session but sits
// behind the rate limiter; everything else requires authentication via
// session cookie or bearer token. POST /api/update_seat keeps its
// historical path outside /v1 because its request and response shapes
// are a fixed contract with existing clients.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client,
	sessions session.Store, auth *handler.AuthHandler, rooms *handler.RoomHandler, seats *handler.SeatHandler) {

	e.GET("/healthz", handler.Health)

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Unauthenticated auth operations. Logout only needs the cookie it
	// is about to revoke, so it lives here too.
	g := e.Group("/v1/auth", limiter)
	g.POST("/register", auth.Register)
	g.POST("/login", auth.Login)
	g.POST("/logout", auth.Logout)

	authed := middleware.Auth(sessions, cfg.JWTSecret)

	v1 := e.Group("/v1", authed)
	v1.GET("/me", auth.Me)
	v1.GET("/dashboard", rooms.Dashboard)
	v1.GET("/rooms", rooms.ListRooms)
	v1.GET("/rooms/:id", rooms.GetRoom)
	v1.GET("/rooms/:id/seats", rooms.ListSeats)
	v1.GET("/rooms/:id/prediction", rooms.Predict)
	v1.GET("/seats/:id", rooms.GetSeat)
	v1.GET("/seats/:id/history", rooms.History)

	// Fixed-contract seat update route.
	api := e.Group("/api", authed)
	api.POST("/update_seat", seats.UpdateSeat)
}

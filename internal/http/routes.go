package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "todo-api.com/todo-api/internal/http/middlewares"
	"todo-api.com/todo-api/internal/ratelimit"
)

// Register wires the route table. The users collection accepts both the
// bare and trailing-slash forms, and GET tolerates a trailing id, matching
// the original URL scheme.
func Register(e *echo.Echo, h *Handler, limiter ratelimit.Limiter, rateLimitPerMinute int) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RateLimiter(limiter, rateLimitPerMinute, time.Minute))

	e.GET("/getby/:id", h.GetByID)
	e.POST("/predict", h.Predict)
	e.GET("/info", h.Info)

	e.GET("/user/:username", h.GetUserTasks)
	e.POST("/user/:username", h.CreateUserTask)

	e.GET("/users", h.ListUsers)
	e.GET("/users/", h.ListUsers)
	e.GET("/users/:id", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.POST("/users/", h.CreateUser)
	e.DELETE("/users/:id", h.DeleteUser)
}

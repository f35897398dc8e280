package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "todo-api.com/todo-api/internal/errors"
	"todo-api.com/todo-api/internal/http/validators"
	"todo-api.com/todo-api/internal/services"
)

// noUserSentinel is returned, with status 200, when a task lookup names an
// unknown user. Kept verbatim (typo included) because clients match on it.
const noUserSentinel = "No data availeble by this username!"

type Handler struct {
	userService *services.UserService
	taskService *services.TaskService
}

func NewHandler(userService *services.UserService, taskService *services.TaskService) *Handler {
	return &Handler{
		userService: userService,
		taskService: taskService,
	}
}

// GetUserTasks answers GET /user/:username with the user's tasks, or the
// sentinel payload when the username is unknown.
func (h *Handler) GetUserTasks(c echo.Context) error {
	username := c.Param("username")

	user, tasks, err := h.taskService.TasksForUser(c.Request().Context(), username)
	if err != nil {
		return httpError(err)
	}

	if user == nil {
		return c.JSON(http.StatusOK, echo.Map{
			"username": username,
			"tasks":    noUserSentinel,
		})
	}

	serialized := make([]map[string]interface{}, 0, len(tasks))
	for i := range tasks {
		serialized = append(serialized, tasks[i].AsMap())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"username": user.Username,
		"tasks":    serialized,
	})
}

// CreateUserTask answers POST /user/:username. Unknown usernames get 404.
func (h *Handler) CreateUserTask(c echo.Context) error {
	form, err := validators.ParseCreateTaskForm(c)
	if err != nil {
		return err
	}

	_, err = h.taskService.CreateTask(
		c.Request().Context(),
		c.Param("username"),
		form.Name,
		form.Note,
		form.DueDate,
		form.Completed,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"msg": "posted"})
}

// ListUsers answers GET /users and GET /users/:id. The id is accepted but
// ignored; every user row is returned with all columns, passwords included.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	serialized := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		serialized = append(serialized, users[i].AsMap())
	}

	return c.JSON(http.StatusOK, echo.Map{"users": serialized})
}

// CreateUser answers POST /users. The insert is committed before
// responding so the generated id is part of the payload.
func (h *Handler) CreateUser(c echo.Context) error {
	form, err := validators.ParseCreateUserForm(c)
	if err != nil {
		return err
	}

	user, err := h.userService.CreateUser(c.Request().Context(), form.Name, form.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"Created user": user.AsMap(),
	})
}

// DeleteUser answers DELETE /users/:id with 204, or 404 for unknown ids.
// Tasks owned by the user are deleted with it.
func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return httpError(apperrors.ErrInvalidUserID)
	}

	if err := h.userService.DeleteUser(c.Request().Context(), uint(id)); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Info answers GET /info with the documented route table. Several listed
// routes (login, logout, profile and task editing) are not implemented;
// the table is served as documented.
func (h *Handler) Info(c echo.Context) error {
	routes := map[string]string{
		"info":                  "GET /api/v1",
		"register":              "POST /api/v1/accounts",
		"single profile detail": "GET /api/v1/accounts/<username>",
		"edit profile":          "PUT /api/v1/accounts/<username>",
		"delete profile":        "DELETE /api/v1/accounts/<username>",
		"login":                 "POST /api/v1/accounts/login",
		"logout":                "GET /api/v1/accounts/logout",
		"user's tasks":          "GET /api/v1/accounts/<username>/tasks",
		"create task":           "POST /api/v1/accounts/<username>/tasks",
		"task detail":           "GET /api/v1/accounts/<username>/tasks/<id>",
		"task update":           "PUT /api/v1/accounts/<username>/tasks/<id>",
		"delete task":           "DELETE /api/v1/accounts/<username>/tasks/<id>",
	}

	return c.JSON(http.StatusOK, routes)
}

// GetByID answers GET /getby/:id by echoing the path parameter.
func (h *Handler) GetByID(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"id": c.Param("id")})
}

// Predict answers POST /predict by echoing the parsed form data, first
// value per field.
func (h *Handler) Predict(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form data")
	}

	data := make(map[string]string, len(params))
	for key, values := range params {
		if len(values) > 0 {
			data[key] = values[0]
		}
	}

	return c.JSON(http.StatusCreated, data)
}

// httpError maps application errors to JSON HTTP errors. Unexpected
// failures are logged and answered with a generic 500 so internals never
// leak into response bodies.
func httpError(err error) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}

	log.Printf("internal error: %v", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

package validators

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	model "todo-api.com/todo-api/internal/models"
)

type CreateTaskForm struct {
	Name      string
	Note      string
	DueDate   *time.Time
	Completed bool
}

// ParseCreateTaskForm reads the task creation fields from the form body.
// note is optional, an empty due_date means no due date, and completed
// follows strconv.ParseBool with empty treated as false.
func ParseCreateTaskForm(c echo.Context) (*CreateTaskForm, error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "malformed form data")
	}

	form := &CreateTaskForm{
		Name: params.Get("name"),
		Note: params.Get("note"),
	}

	if form.Name == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	if raw := params.Get("due_date"); raw != "" {
		dueDate, err := time.Parse(model.DueDateLayout, raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "due_date must match DD/MM/YYYY HH:MM:SS")
		}
		form.DueDate = &dueDate
	}

	if raw := params.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "completed must be a boolean")
		}
		form.Completed = completed
	}

	return form, nil
}

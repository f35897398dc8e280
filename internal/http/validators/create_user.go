package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type CreateUserForm struct {
	Name     string
	Password string
}

// ParseCreateUserForm reads the user creation fields from the form body.
// The field is "name" on the wire but becomes the username.
func ParseCreateUserForm(c echo.Context) (*CreateUserForm, error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "malformed form data")
	}

	form := &CreateUserForm{
		Name:     params.Get("name"),
		Password: params.Get("password"),
	}

	if form.Name == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if form.Password == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}

	return form, nil
}

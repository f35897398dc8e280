package errors

import "net/http"

var ErrInvalidUserID = &Exception{
	Message:    "user id must be an integer",
	StatusCode: http.StatusBadRequest,
}

package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// ErrorHandler renders every unhandled error as a JSON envelope so clients
// never see echo's default HTML page.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	body := errorBody{
		Error:  "internal server error",
		Status: http.StatusInternalServerError,
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		body.Status = he.Code
		if msg, ok := he.Message.(string); ok {
			body.Error = msg
		} else {
			body.Error = fmt.Sprintf("%v", he.Message)
		}
	}

	_ = c.JSON(body.Status, body)
}

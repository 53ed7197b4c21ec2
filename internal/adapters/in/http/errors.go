package http

import (
	"errors"
	"fmt"
	"net/http"

	"salesorders/internal/generated/servers"
	"salesorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusOf maps a use case error to its HTTP status:
//
//	validation errors (required, invalid, out of range) -> 400
//	errs.ErrObjectNotFound                              -> 404
//	errs.ErrObjectConflict                              -> 409
//	anything else                                       -> 500
func statusOf(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error body for err. Internal errors are logged and their
// details are not exposed to the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()

	if code == http.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("route", ctx.Path()),
			zap.Error(err),
		)
		message = "Transaction failed, all changes were rolled back"
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// NewHTTPErrorHandler renders errors returned to echo (unknown routes,
// malformed parameters, rejected by request validation) with the same
// {code, message} body the handlers use.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			log.Error("unhandled error", zap.String("route", ctx.Path()), zap.Error(err))
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			log.Warn("write error response", zap.Error(err))
		}
	}
}

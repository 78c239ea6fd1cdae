// Package apiutil holds what every resource handler shares: translating
// application errors into HTTP errors, the session cookie and the middleware
// that authenticates it.
package apiutil

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/logging"
)

// Error converts err into a huma error. Classified errors keep their message;
// anything else is logged with the request and answered with fallback.
func Error(ctx context.Context, err error, fallback string) error {
	msg, ok := apperr.Message(err)
	if !ok {
		msg = fallback
	}

	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		return huma.NewError(http.StatusBadRequest, msg)
	case apperr.KindAuth:
		return huma.NewError(http.StatusUnauthorized, msg)
	case apperr.KindNotFound:
		return huma.NewError(http.StatusNotFound, msg)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddError(err)
	}
	return huma.NewError(http.StatusInternalServerError, fallback)
}

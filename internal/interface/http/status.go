package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jpsalviano/todolists/internal/application"
	"github.com/jpsalviano/todolists/pkg/response"
)

// writeError maps the domain error taxonomy onto HTTP statuses and writes
// the failure envelope. The kind switch is exhaustive; anything outside
// the taxonomy is a hard 500, never silently swallowed.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var appErr *application.Error
	if !errors.As(err, &appErr) {
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("unexpected error")
		}
		response.Error(c, http.StatusInternalServerError, "Unexpected error.", nil)
		return
	}

	var status int
	switch appErr.Kind {
	case application.KindValidation, application.KindVerification:
		status = http.StatusForbidden
	case application.KindDuplicateEmail, application.KindDuplicateTitle:
		status = http.StatusConflict
	case application.KindEmailNotRegistered, application.KindWrongPassword,
		application.KindEmailNotVerified, application.KindBadToken,
		application.KindUnknownToken:
		status = http.StatusUnauthorized
	case application.KindNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}
	response.Error(c, status, appErr.Message, nil)
}

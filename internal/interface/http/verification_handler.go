package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jpsalviano/todolists/internal/application"
	"github.com/jpsalviano/todolists/pkg/helpers"
	"github.com/jpsalviano/todolists/pkg/response"
)

type VerificationHandler struct {
	Svc     *application.VerificationService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewVerificationHandler(svc *application.VerificationService, logger *logrus.Logger, cookies *helpers.CookieManager) *VerificationHandler {
	return &VerificationHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

type verifyRequest struct {
	Token string `form:"token" binding:"required,len=6,numeric"`
}

// Verify POST /email_verification. A good code logs the user straight in:
// the response sets the session-token cookie.
func (h *VerificationHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBind(&req); err != nil {
		// A code of the wrong shape is indistinguishable from a wrong code.
		writeError(c, h.Logger, application.ErrCodeWrongOrExpired)
		return
	}
	token, err := h.Svc.Verify(c.Request.Context(), req.Token)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetSession(c, token)
	response.Success[any](c, http.StatusOK, gin.H{"verified": true}, "Your email was successfully verified!")
}

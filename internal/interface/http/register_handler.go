package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jpsalviano/todolists/internal/application"
	"github.com/jpsalviano/todolists/pkg/helpers"
	"github.com/jpsalviano/todolists/pkg/response"
	"github.com/jpsalviano/todolists/pkg/validation"
)

type RegisterHandler struct {
	Svc     *application.RegistrationService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewRegisterHandler(svc *application.RegistrationService, logger *logrus.Logger, cookies *helpers.CookieManager) *RegisterHandler {
	return &RegisterHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

type registerRequest struct {
	Name      string `form:"name" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Password1 string `form:"password_1" binding:"required"`
	Password2 string `form:"password_2" binding:"required"`
}

// Form GET /register. Rendering is the front end's job; this just tells
// it which page to show.
func (h *RegisterHandler) Form(c *gin.Context) {
	response.Success[any](c, http.StatusOK, gin.H{"page": "register"}, "registration form")
}

// Register POST /register.
func (h *RegisterHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password1, req.Password2); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	// A stale session from another account must not survive a signup.
	h.Cookies.ClearSession(c)
	response.Success[any](c, http.StatusOK, gin.H{"email": req.Email}, "Check your email to finish your registration on TodoLists!")
}

type resendRequest struct {
	Email string `form:"email" binding:"required,email"`
}

// Resend POST /email_reverification.
func (h *RegisterHandler) Resend(c *gin.Context) {
	var req resendRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResendCode(c.Request.Context(), req.Email); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"email": req.Email}, "Check your email to finish your registration on TodoLists!")
}

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

type SessionHandler struct {
	Sessions  *application.SessionService
	Dashboard *application.DashboardService
	Logger    *logrus.Logger
	Cookies   *helpers.CookieManager
}

func NewSessionHandler(sessions *application.SessionService, dashboard *application.DashboardService, logger *logrus.Logger, cookies *helpers.CookieManager) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Dashboard: dashboard, Logger: logger, Cookies: cookies}
}

type loginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// LoginForm GET /login. A request already carrying a valid session goes
// straight to the dashboard view; otherwise 401 with the login page hint.
func (h *SessionHandler) LoginForm(c *gin.Context) {
	token, err := c.Cookie(helpers.SessionCookie)
	if err == nil && token != "" {
		if userID, aerr := h.Sessions.Authorize(c.Request.Context(), token); aerr == nil {
			h.renderDashboard(c, userID)
			return
		}
	}
	response.Error(c, http.StatusUnauthorized, "login required", gin.H{"page": "login"})
}

// Login POST /login.
func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	token, err := h.Sessions.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetSession(c, token)
	userID, err := h.Sessions.Authorize(c.Request.Context(), token)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.renderDashboard(c, userID)
}

// Logout GET|POST /logout. Deletes the server-side token and unsets the
// cookie; an invalid or absent token is a 401.
func (h *SessionHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(helpers.SessionCookie)
	if err != nil || token == "" {
		response.Error(c, http.StatusUnauthorized, "Unauthorized.", nil)
		return
	}
	if _, err := h.Sessions.Authorize(c.Request.Context(), token); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if err := h.Sessions.Logout(c.Request.Context(), token); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.ClearSession(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "You have been logged out.")
}

func (h *SessionHandler) renderDashboard(c *gin.Context, userID int) {
	vm, err := h.Dashboard.UserView(c.Request.Context(), userID, nil)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, vm, "dashboard")
}

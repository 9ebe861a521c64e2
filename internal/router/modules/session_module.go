package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jpsalviano/todolists/internal/container"
	handlers "github.com/jpsalviano/todolists/internal/interface/http"
	"github.com/jpsalviano/todolists/internal/interface/middleware"
)

// SessionModule covers login and logout.
type SessionModule struct {
	Handler *handlers.SessionHandler
}

func NewSessionModule(h *handlers.SessionHandler) *SessionModule {
	return &SessionModule{Handler: h}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/login", m.Handler.LoginForm)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.GET("/logout", m.Handler.Logout)
	rg.POST("/logout", m.Handler.Logout)
}

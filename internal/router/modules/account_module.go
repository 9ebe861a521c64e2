package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jpsalviano/todolists/internal/container"
	handlers "github.com/jpsalviano/todolists/internal/interface/http"
	"github.com/jpsalviano/todolists/internal/interface/middleware"
)

// AccountModule covers signup, email verification, and code resending.
// All endpoints are public and carry per-IP rate limits.
type AccountModule struct {
	Signup *handlers.RegisterHandler
	Verify *handlers.VerificationHandler
}

func NewAccountModule(signup *handlers.RegisterHandler, verify *handlers.VerificationHandler) *AccountModule {
	return &AccountModule{Signup: signup, Verify: verify}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	verifyLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	resendLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.GET("/register", m.Signup.Form)
	rg.POST("/register", registerLimiter, m.Signup.Register)
	rg.POST("/email_verification", verifyLimiter, m.Verify.Verify)
	rg.POST("/email_reverification", resendLimiter, m.Signup.Resend)
}

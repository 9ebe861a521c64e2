package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jpsalviano/todolists/internal/application"
	"github.com/jpsalviano/todolists/internal/container"
	"github.com/jpsalviano/todolists/internal/infrastructure/postgres"
	"github.com/jpsalviano/todolists/internal/infrastructure/redisstore"
	handlers "github.com/jpsalviano/todolists/internal/interface/http"
	"github.com/jpsalviano/todolists/internal/router/modules"
	"github.com/jpsalviano/todolists/pkg/helpers"
)

// Init builds repositories, services, and handlers from the container
// singletons and registers every feature module on the engine.
func Init(engine *gin.Engine) *Registry {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	rdb := container.GetRedis()

	users := postgres.NewUserRepository(pool)
	lists := postgres.NewTodoListRepository(pool)
	tokens := redisstore.NewTokenStore(rdb)
	cookies := helpers.NewCookieManager(cfg.CookieDomain, cfg.CookieSecure, cfg.SessionTTL)

	var pub application.EmailPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	registration := application.NewRegistrationService(users, tokens, pub, logger, cfg.VerifyCodeTTL, cfg.MailSendEnabled)
	sessions := application.NewSessionService(users, tokens, cfg.SessionTTL, logger)
	verification := application.NewVerificationService(users, tokens, sessions, logger)
	dashboard := application.NewDashboardService(users, lists, logger)

	registry := NewRegistry(engine)
	registry.Add(modules.NewAccountModule(
		handlers.NewRegisterHandler(registration, logger, cookies),
		handlers.NewVerificationHandler(verification, logger, cookies),
	))
	registry.Add(modules.NewSessionModule(
		handlers.NewSessionHandler(sessions, dashboard, logger, cookies),
	))
	registry.Add(modules.NewDashboardModule(
		handlers.NewDashboardHandler(dashboard, logger),
		sessions,
	))
	registry.Add(modules.NewHealthModule(
		handlers.NewHealthHandler(pool, rdb),
	))
	registry.RegisterAll()
	return registry
}

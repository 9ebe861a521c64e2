package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jpsalviano/todolists/internal/application"
	"github.com/jpsalviano/todolists/internal/container"
	handlers "github.com/jpsalviano/todolists/internal/interface/http"
	"github.com/jpsalviano/todolists/internal/interface/middleware"
)

// DashboardModule covers the dashboard and all list/task CRUD routes.
// Everything here requires a valid session.
type DashboardModule struct {
	Handler  *handlers.DashboardHandler
	Sessions *application.SessionService
}

func NewDashboardModule(h *handlers.DashboardHandler, sessions *application.SessionService) *DashboardModule {
	return &DashboardModule{Handler: h, Sessions: sessions}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("/dashboard", m.Handler.Dashboard)
		auth.POST("/create-todolist", m.Handler.CreateList)
		auth.POST("/get-todolist", m.Handler.GetList)
		auth.POST("/update-todolist", m.Handler.UpdateList)
		auth.POST("/delete-todolist", m.Handler.DeleteList)
		auth.POST("/create-task", m.Handler.CreateTask)
		auth.POST("/update-task", m.Handler.UpdateTask)
		auth.POST("/delete-task", m.Handler.DeleteTask)
	}
}

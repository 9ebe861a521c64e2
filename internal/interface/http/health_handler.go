package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/jpsalviano/todolists/pkg/response"
)

// HealthHandler reports liveness of the two stores the app depends on.
type HealthHandler struct {
	Pool *pgxpool.Pool
	RDB  *redis.Client
}

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{Pool: pool, RDB: rdb}
}

// Health GET /healthz.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"postgres": "ok", "redis": "ok"}
	healthy := true

	if h.Pool != nil {
		if err := h.Pool.Ping(ctx); err != nil {
			status["postgres"] = err.Error()
			healthy = false
		}
	}
	if h.RDB != nil {
		if err := h.RDB.Ping(ctx).Err(); err != nil {
			status["redis"] = err.Error()
			healthy = false
		}
	}

	if !healthy {
		response.Error(c, http.StatusServiceUnavailable, "degraded", status)
		return
	}
	response.Success[any](c, http.StatusOK, status, "ok")
}

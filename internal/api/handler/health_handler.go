package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const probeTimeout = 2 * time.Second

// HealthHandler answers liveness probes.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is up.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  Envelope
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return respond(c, http.StatusOK, "ok", nil)
}

// HealthDependenciesHandler answers readiness probes by pinging the
// datastores the API cannot serve without.
type HealthDependenciesHandler struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

func NewHealthDependenciesHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{pool: pool, rdb: rdb}
}

// Readiness pings Postgres and Redis and reports per-dependency status.
// Any failing dependency degrades the probe to 503.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      503  {object}  Envelope
// @Router       /health/ready [get]
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	deps := map[string]string{"postgres": "up", "redis": "up"}
	healthy := true

	if err := h.pool.Ping(ctx); err != nil {
		deps["postgres"] = "down"
		healthy = false
	}
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		deps["redis"] = "down"
		healthy = false
	}

	status := http.StatusOK
	message := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		message = "degraded"
	}
	return c.JSON(status, Envelope{Success: healthy, Message: message, Data: deps})
}

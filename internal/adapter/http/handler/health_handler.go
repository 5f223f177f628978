package handler

import (
	"net/http"

	"marketplace-integrations/internal/adapter/http/dto"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/response"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports PostgreSQL and Redis connectivity. Any failing
// dependency turns the whole answer into 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps := make(map[string]dto.DependencyState, len(checkers))
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = dto.DependencyState{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = dto.DependencyState{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, dto.InfraHealthResponse{Status: status, Dependencies: deps})
	}
}

// ProviderHealth handles GET /api/v1/health/providers. Provider failures
// are part of the answer, so the status is always 200.
func ProviderHealth(prober ports.HealthProber) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, dto.ProviderHealthResponse(prober.Probe(c.Request.Context())))
	}
}

package handlers

import (
	"net/http"

	"planner/internal/logger"
)

type HealthHandler struct {
	checker HealthChecker
}

func NewHealthHandler(checker HealthChecker) HealthHandler {
	return HealthHandler{checker: checker}
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: health check")

	if err := h.checker.HealthCheck(r.Context()); err != nil {
		responseWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "down"})
		return
	}
	responseWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

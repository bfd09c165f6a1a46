package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
)

const (
	statusOK       = "ok"
	statusDegraded = "unavailable"

	checkTimeout = 2 * time.Second
)

// Response состояние сервиса и его зависимостей
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	checks map[string]Checker
	logger Logger
}

func NewHandler(checks map[string]Checker, logger Logger) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Handle GET /health
// 200 если все зависимости доступны, иначе 503
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := Response{Status: statusOK, Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.checks[name].Check(ctx); err != nil {
			h.logger.Warn("GET /health - %s check failed: %v", name, err)
			resp.Checks[name] = statusDegraded
			resp.Status = statusDegraded
			continue
		}
		resp.Checks[name] = statusOK
	}

	status := http.StatusOK
	if resp.Status != statusOK {
		status = http.StatusServiceUnavailable
	}
	handlers.RespondJSON(w, status, resp)
}

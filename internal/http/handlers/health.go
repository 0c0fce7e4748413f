package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/just-nibble/codehost/internal/http/dtos"
	"github.com/just-nibble/codehost/pkg/response"
	"github.com/rs/zerolog"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	log zerolog.Logger
}

func NewHealthHandler(db Pinger, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

// Health godoc
//
//	@Summary	Liveness and database check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	dtos.HealthResponse
//	@Failure	503	{object}	dtos.HealthResponse
//	@Router		/healthz [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("health check: database unreachable")
		response.SuccessResponse(w, http.StatusServiceUnavailable, dtos.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.HealthResponse{Status: "ok", Database: "ok"})
}

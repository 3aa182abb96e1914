package consentdata

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "oba/pkg/domain-errors"
	audit "oba/pkg/platform/audit"
	"oba/pkg/platform/httputil"
	"oba/pkg/requestcontext"
)

// Purger removes stored session data.
type Purger interface {
	Purge(ctx context.Context, encryptedIDs ...string) error
}

// PurgeRequest lists the sessions whose data is dropped.
type PurgeRequest struct {
	EncryptedIDs []string `json:"encryptedIds"`
}

// AdminHandler exposes operator maintenance of consent data. Mount it behind
// the admin token middleware.
type AdminHandler struct {
	data   Purger
	audit  audit.Emitter
	logger *slog.Logger
}

func NewAdminHandler(data Purger, emitter audit.Emitter, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{data: data, audit: emitter, logger: logger}
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Post("/consent-data/purge", h.handlePurge)
}

func (h *AdminHandler) handlePurge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeJSON[PurgeRequest](w, r)
	if !ok {
		return
	}
	if len(req.EncryptedIDs) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "encryptedIds must not be empty"))
		return
	}
	if err := h.data.Purge(ctx, req.EncryptedIDs...); err != nil {
		h.logger.ErrorContext(ctx, "consent data purge failed",
			"request_id", requestcontext.RequestID(ctx),
			"count", len(req.EncryptedIDs),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if h.audit != nil {
		for _, id := range req.EncryptedIDs {
			event := audit.NewRequestEvent(ctx, audit.EventConsentDataPurged)
			event.Resource = id
			if err := h.audit.Emit(ctx, event); err != nil {
				h.logger.WarnContext(ctx, "failed to emit audit event", "error", err)
			}
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

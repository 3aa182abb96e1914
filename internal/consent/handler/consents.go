package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"oba/internal/consent/models"
	dErrors "oba/pkg/domain-errors"
	"oba/pkg/platform/httputil"
	"oba/pkg/platform/middleware/auth"
	"oba/pkg/requestcontext"
)

//go:generate mockgen -source=consents.go -destination=mocks/consents-mocks.go -package=mocks

// ConsentService defines the online banking consent operations.
type ConsentService interface {
	List(ctx context.Context, psuLogin string) ([]models.ObaAisConsent, error)
	ListPaged(ctx context.Context, psuLogin string, page, size int) (models.Page[models.ObaAisConsent], error)
	Revoke(ctx context.Context, consentID string) (bool, error)
	ConfirmAisConsentDecoupled(ctx context.Context, psuLogin, encryptedConsentID, authorisationID, tan string) error
	CreatePiisConsent(ctx context.Context, psuID string, req models.CreatePiisConsentRequest) error
}

// ConsentsHandler serves /api/v1/consents for the online banking frontend.
type ConsentsHandler struct {
	service ConsentService
	logger  *slog.Logger
	authn   func(http.Handler) http.Handler
}

// NewConsentsHandler creates the handler. authn guards every route; nil
// falls back to auth.Authenticate, which forwards the token unchecked.
func NewConsentsHandler(service ConsentService, logger *slog.Logger, authn func(http.Handler) http.Handler) *ConsentsHandler {
	if authn == nil {
		authn = auth.Authenticate
	}
	return &ConsentsHandler{service: service, logger: logger, authn: authn}
}

func (h *ConsentsHandler) Register(r chi.Router) {
	r.Route("/api/v1/consents", func(r chi.Router) {
		r.Use(h.authn)
		r.Get("/confirm/{userLogin}/{consentId}/{authorizationId}/{tan}", h.handleConfirm)
		r.Post("/piis", h.handleCreatePiis)
		// {id} is the PSU login for reads and the consent id for revocation.
		r.Get("/{id}", h.handleList)
		r.Get("/{id}/paged", h.handleListPaged)
		r.Put("/{id}", h.handleRevoke)
	})
}

func (h *ConsentsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	consents, err := h.service.List(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.logFailure(ctx, "consent listing failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, consents)
}

func (h *ConsentsHandler) handleListPaged(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	page, err := optionalInt(q.Get("page"), 0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	size, err := optionalInt(q.Get("size"), 0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.ListPaged(ctx, chi.URLParam(r, "id"), page, size)
	if err != nil {
		h.logFailure(ctx, "paged consent listing failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *ConsentsHandler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	revoked, err := h.service.Revoke(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.logFailure(ctx, "consent revocation failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, revoked)
}

func (h *ConsentsHandler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	err := h.service.ConfirmAisConsentDecoupled(ctx,
		chi.URLParam(r, "userLogin"),
		chi.URLParam(r, "consentId"),
		chi.URLParam(r, "authorizationId"),
		chi.URLParam(r, "tan"),
	)
	if err != nil {
		h.logFailure(ctx, "decoupled consent confirmation failed", err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ConsentsHandler) handleCreatePiis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	psuID := requestcontext.PSULogin(ctx)
	if psuID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "PSU login is required"))
		return
	}
	req, ok := httputil.DecodeJSON[models.CreatePiisConsentRequest](w, r)
	if !ok {
		return
	}
	if req.Account.IBAN == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "account iban is required"))
		return
	}

	if err := h.service.CreatePiisConsent(ctx, psuID, *req); err != nil {
		h.logFailure(ctx, "piis consent creation failed", err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ConsentsHandler) logFailure(ctx context.Context, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"psu_id", requestcontext.PSULogin(ctx),
		"error", err,
	)
}

func optionalInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.Newf(dErrors.CodeBadRequest, "invalid integer %q", raw)
	}
	return v, nil
}

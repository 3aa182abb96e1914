// Package handler serves the AIS redirect flow and the online banking
// consent API.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"oba/internal/consent/models"
	"oba/internal/ledgers"
	"oba/internal/reference"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
	"oba/pkg/platform/httputil"
	"oba/pkg/platform/middleware/auth"
	"oba/pkg/platform/middleware/session"
	"oba/pkg/requestcontext"
)

//go:generate mockgen -source=ais.go -destination=mocks/ais-mocks.go -package=mocks

// RedirectService defines the AIS SCA operations the redirect routes drive.
type RedirectService interface {
	Login(ctx context.Context, encryptedConsentID, authorisationID, login, pin string) (*models.ConsentWorkflow, error)
	StartConsent(ctx context.Context, encryptedConsentID, authorisationID, psuID string, requested ledgers.AisAccountAccess, bearer *sca.BearerToken) (*models.ConsentWorkflow, error)
	SelectScaMethod(ctx context.Context, encryptedConsentID, authorisationID, scaMethodID, psuID string, bearer *sca.BearerToken) (*models.ConsentWorkflow, error)
	AuthorizeConsent(ctx context.Context, encryptedConsentID, authorisationID, authCode, psuID string, bearer *sca.BearerToken) (*models.ConsentWorkflow, error)
	ResolveRedirectURL(ctx context.Context, encryptedConsentID, authorisationID string, oauth2 bool, psuID string, bearer *sca.BearerToken, authConfirmationCode string) (string, error)
}

// ReferenceIssuer signs the consent reference cookie at redirect entry.
type ReferenceIssuer interface {
	FromURL(redirectID string, consentType reference.ConsentType, encryptedConsentID string) (*reference.ConsentReference, error)
}

// RedirectResponse carries the TPP URI the frontend navigates to.
type RedirectResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

const aisBasePath = "/ais"

// AisHandler serves the browser redirect flow for AIS consents.
type AisHandler struct {
	service       RedirectService
	issuer        ReferenceIssuer
	logger        *slog.Logger
	loginPage     string
	cookieMaxAge  int
	secureCookies bool
}

type Option func(*AisHandler)

// WithCookies sets the reference cookie lifetime and Secure flag.
func WithCookies(maxAgeSeconds int, secure bool) Option {
	return func(h *AisHandler) {
		h.cookieMaxAge = maxAgeSeconds
		h.secureCookies = secure
	}
}

func NewAisHandler(service RedirectService, issuer ReferenceIssuer, loginPage string, logger *slog.Logger, opts ...Option) *AisHandler {
	h := &AisHandler{
		service:      service,
		issuer:       issuer,
		logger:       logger,
		loginPage:    loginPage,
		cookieMaxAge: 1800,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers the AIS routes under /ais.
func (h *AisHandler) Register(r chi.Router) {
	r.Route(aisBasePath, func(r chi.Router) {
		r.Use(session.ConsentCookie)
		r.Use(auth.Authenticate)
		r.Get("/auth", h.handleRedirectEntry)
		r.Route("/{encryptedConsentId}/authorisation/{authorisationId}", func(r chi.Router) {
			r.Post("/login", h.handleLogin)
			r.Post("/start", h.handleStart)
			r.Post("/methods/{scaMethodId}", h.handleSelectMethod)
			r.Post("/authCode", h.handleAuthCode)
			r.Get("/done", h.handleDone)
		})
	})
}

func (h *AisHandler) handleRedirectEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	link, err := reference.ParseRedirectLink(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ref, err := h.issuer.FromURL(link.RedirectID, reference.TypeAIS, link.EncryptedID)
	if err != nil {
		h.logFailure(ctx, "failed to issue consent reference", link.RedirectID, err)
		httputil.WriteError(w, err)
		return
	}
	session.SetConsentCookie(w, ref.Cookie, aisBasePath, h.cookieMaxAge, h.secureCookies)

	target, err := reference.LoginPageURL(h.loginPage, ref)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *AisHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	encryptedID, authorisationID := pathIDs(r)
	q := r.URL.Query()

	workflow, err := h.service.Login(ctx, encryptedID, authorisationID, q.Get("login"), q.Get("pin"))
	if err != nil {
		h.logFailure(ctx, "consent login failed", authorisationID, err)
		httputil.WriteError(w, err)
		return
	}
	h.writeAuthorizeResponse(w, workflow)
}

func (h *AisHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	encryptedID, authorisationID := pathIDs(r)
	requested, ok := httputil.DecodeJSON[ledgers.AisAccountAccess](w, r)
	if !ok {
		return
	}

	workflow, err := h.service.StartConsent(ctx, encryptedID, authorisationID,
		requestcontext.PSULogin(ctx), *requested, sca.BearerFromContext(ctx))
	if err != nil {
		h.logFailure(ctx, "consent start failed", authorisationID, err)
		httputil.WriteError(w, err)
		return
	}
	h.writeAuthorizeResponse(w, workflow)
}

func (h *AisHandler) handleSelectMethod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	encryptedID, authorisationID := pathIDs(r)

	workflow, err := h.service.SelectScaMethod(ctx, encryptedID, authorisationID,
		chi.URLParam(r, "scaMethodId"), requestcontext.PSULogin(ctx), sca.BearerFromContext(ctx))
	if err != nil {
		h.logFailure(ctx, "sca method selection failed", authorisationID, err)
		httputil.WriteError(w, err)
		return
	}
	h.writeAuthorizeResponse(w, workflow)
}

func (h *AisHandler) handleAuthCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	encryptedID, authorisationID := pathIDs(r)
	authCode := r.URL.Query().Get("authCode")
	if authCode == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing authCode"))
		return
	}

	workflow, err := h.service.AuthorizeConsent(ctx, encryptedID, authorisationID, authCode,
		requestcontext.PSULogin(ctx), sca.BearerFromContext(ctx))
	if err != nil {
		h.logFailure(ctx, "consent authorisation failed", authorisationID, err)
		httputil.WriteError(w, err)
		return
	}
	h.writeAuthorizeResponse(w, workflow)
}

func (h *AisHandler) handleDone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	encryptedID, authorisationID := pathIDs(r)
	q := r.URL.Query()
	oauth2, _ := strconv.ParseBool(q.Get("oauth2"))

	uri, err := h.service.ResolveRedirectURL(ctx, encryptedID, authorisationID, oauth2,
		requestcontext.PSULogin(ctx), sca.BearerFromContext(ctx), q.Get("authConfirmationCode"))
	if err != nil {
		h.logFailure(ctx, "redirect resolution failed", authorisationID, err)
		httputil.WriteError(w, err)
		return
	}
	w.Header().Set("Location", uri)
	httputil.WriteJSON(w, http.StatusOK, RedirectResponse{RedirectURL: uri})
}

func (h *AisHandler) writeAuthorizeResponse(w http.ResponseWriter, workflow *models.ConsentWorkflow) {
	if token := workflow.BearerToken().Token(); token != "" {
		auth.SetAccessToken(w, token, aisBasePath, h.secureCookies)
	}
	httputil.WriteJSON(w, http.StatusOK, workflow.AuthResponse)
}

func (h *AisHandler) logFailure(ctx context.Context, msg, authorisationID string, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"authorisation_id", authorisationID,
		"flow", "ais",
		"error", err,
	)
}

func pathIDs(r *http.Request) (string, string) {
	return chi.URLParam(r, "encryptedConsentId"), chi.URLParam(r, "authorisationId")
}

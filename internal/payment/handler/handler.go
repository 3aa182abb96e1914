package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"oba/internal/payment/models"
	"oba/internal/reference"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
	"oba/pkg/platform/httputil"
	"oba/pkg/platform/middleware/auth"
	"oba/pkg/platform/middleware/session"
	"oba/pkg/requestcontext"
)

// Service defines the payment SCA operations the routes drive.
type Service interface {
	IdentifyPayment(ctx context.Context, encryptedPaymentID, authorisationID string, bearer *sca.BearerToken) (*models.PaymentWorkflow, error)
	Login(ctx context.Context, encryptedPaymentID, authorisationID, login, pin string, opType sca.OpType) (*models.PaymentWorkflow, error)
	SelectScaForPayment(ctx context.Context, encryptedPaymentID, authorisationID, scaMethodID, psuID string, bearer *sca.BearerToken) (*models.PaymentWorkflow, error)
	AuthorizePaymentOpr(ctx context.Context, workflow *models.PaymentWorkflow, psuID, authCode string, opType sca.OpType) (*models.PaymentWorkflow, error)
	ResolveRedirectURL(ctx context.Context, encryptedPaymentID, authorisationID string, oauth2 bool, psuID string, bearer *sca.BearerToken, authConfirmationCode string) (string, error)
}

// ReferenceIssuer signs the consent reference cookie at redirect entry.
type ReferenceIssuer interface {
	FromURL(redirectID string, consentType reference.ConsentType, encryptedConsentID string) (*reference.ConsentReference, error)
}

// RedirectResponse carries the TPP URI the frontend navigates to.
type RedirectResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

// Handler serves one payment flow: PIS or PIS cancellation.
type Handler struct {
	flow          reference.ConsentType
	service       Service
	issuer        ReferenceIssuer
	logger        *slog.Logger
	loginPage     string
	cookieMaxAge  int
	secureCookies bool
}

type Option func(*Handler)

// WithCookies sets the reference cookie lifetime and Secure flag.
func WithCookies(maxAgeSeconds int, secure bool) Option {
	return func(h *Handler) {
		h.cookieMaxAge = maxAgeSeconds
		h.secureCookies = secure
	}
}

// New creates a handler for flow, which must be reference.TypePIS or
// reference.TypePISCancellation.
func New(flow reference.ConsentType, service Service, issuer ReferenceIssuer, loginPage string, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		flow:         flow,
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

// BasePath is the mount point of the flow.
func (h *Handler) BasePath() string {
	if h.flow == reference.TypePISCancellation {
		return "/pis-cancellation"
	}
	return "/pis"
}

func (h *Handler) opType() sca.OpType {
	if h.flow == reference.TypePISCancellation {
		return sca.OpCancelPayment
	}
	return sca.OpPayment
}

// Register registers the flow routes under BasePath.
func (h *Handler) Register(r chi.Router) {
	r.Route(h.BasePath(), func(r chi.Router) {
		r.Use(session.ConsentCookie)
		r.Use(auth.Authenticate)
		r.Get("/auth", h.handleRedirectEntry)
		r.Route("/{encryptedPaymentId}/authorisation/{authorisationId}", func(r chi.Router) {
			r.Post("/login", h.handleLogin)
			r.Post("/methods/{scaMethodId}", h.handleSelectMethod)
			r.Post("/authCode", h.handleAuthCode)
			r.Get("/done", h.handleDone)
		})
	})
}

// handleRedirectEntry is where the TPP sends the PSU. It pins the session to
// the redirect id in a signed cookie and forwards to the login page.
func (h *Handler) handleRedirectEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	link, err := reference.ParseRedirectLink(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ref, err := h.issuer.FromURL(link.RedirectID, h.flow, link.EncryptedID)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to issue consent reference",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	session.SetConsentCookie(w, ref.Cookie, h.BasePath(), h.cookieMaxAge, h.secureCookies)

	target, err := reference.LoginPageURL(h.loginPage, ref)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	encryptedID, authorisationID := pathIDs(r)
	q := r.URL.Query()
	login := q.Get("login")

	workflow, err := h.service.Login(ctx, encryptedID, authorisationID, login, q.Get("pin"), h.opType())
	if err != nil {
		h.logFailure(ctx, "payment login failed", authorisationID, err)
		httputil.WriteError(w, err)
		return
	}
	h.writeAuthorizeResponse(w, workflow)
}

func (h *Handler) handleSelectMethod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	encryptedID, authorisationID := pathIDs(r)

	workflow, err := h.service.SelectScaForPayment(ctx, encryptedID, authorisationID,
		chi.URLParam(r, "scaMethodId"), requestcontext.PSULogin(ctx), sca.BearerFromContext(ctx))
	if err != nil {
		h.logFailure(ctx, "sca method selection failed", authorisationID, err)
		httputil.WriteError(w, err)
		return
	}
	h.writeAuthorizeResponse(w, workflow)
}

func (h *Handler) handleAuthCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	encryptedID, authorisationID := pathIDs(r)
	authCode := r.URL.Query().Get("authCode")
	if authCode == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing authCode"))
		return
	}

	workflow, err := h.service.IdentifyPayment(ctx, encryptedID, authorisationID, sca.BearerFromContext(ctx))
	if err != nil {
		h.logFailure(ctx, "payment identification failed", authorisationID, err)
		httputil.WriteError(w, err)
		return
	}
	workflow, err = h.service.AuthorizePaymentOpr(ctx, workflow, requestcontext.PSULogin(ctx), authCode, h.opType())
	if err != nil {
		h.logFailure(ctx, "payment authorisation failed", authorisationID, err)
		httputil.WriteError(w, err)
		return
	}
	h.writeAuthorizeResponse(w, workflow)
}

func (h *Handler) handleDone(w http.ResponseWriter, r *http.Request) {
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

// writeAuthorizeResponse returns the authorize view and hands the current
// bearer token back to the browser for the next step.
func (h *Handler) writeAuthorizeResponse(w http.ResponseWriter, workflow *models.PaymentWorkflow) {
	if token := workflow.BearerToken().Token(); token != "" {
		auth.SetAccessToken(w, token, h.BasePath(), h.secureCookies)
	}
	httputil.WriteJSON(w, http.StatusOK, workflow.AuthResponse)
}

func (h *Handler) logFailure(ctx context.Context, msg, authorisationID string, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"authorisation_id", authorisationID,
		"flow", string(h.flow),
		"error", err,
	)
}

func pathIDs(r *http.Request) (string, string) {
	return chi.URLParam(r, "encryptedPaymentId"), chi.URLParam(r, "authorisationId")
}

// Package service drives the AIS and PIIS consent flows and the online
// banking consent management API.
package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"oba/internal/cms"
	"oba/internal/consent/models"
	"oba/internal/ledgers"
	"oba/internal/platform/metrics"
	"oba/internal/platform/restclient"
	"oba/internal/ports"
	dErrors "oba/pkg/domain-errors"
	audit "oba/pkg/platform/audit"
	"oba/pkg/platform/sentinel"
	"oba/pkg/requestcontext"
)

const (
	responseErrorMsg    = "Error in response from CMS, please contact admin."
	notFoundMsg         = "Consent %s could not be found"
	confirmFailedMsg    = "Failed to confirm the consent %s msg: %s"
	updateFailedMsg     = "Update %s failed msg: %s"
	noConsentDataMsg    = "Could not retrieve ASPSP consent data."
	noAccessTokenMsg    = "No AccessToken present in ASPSP consent data"
	decryptFailedMsg    = "Error decrypting consent id"
	defaultPageSize     = 25
	piisFrequencyPerDay = 100
)

// Option configures the consent services.
type Option func(*common)

type common struct {
	audit   ports.AuditPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *common) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *common) {
		c.metrics = m
	}
}

func WithAuditPublisher(p ports.AuditPublisher) Option {
	return func(c *common) {
		c.audit = p
	}
}

func newCommon(opts []Option) common {
	c := common{
		logger: slog.Default(),
		tracer: otel.Tracer("oba/consent"),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Service backs the online banking consent API: listing, revocation,
// decoupled confirmation and PIIS creation.
type Service struct {
	common
	ledgers ports.Ledgers
	ais     ports.AisCMS
	data    ports.ConsentData
	cipher  ports.IDCipher
}

func New(ledgersClient ports.Ledgers, ais ports.AisCMS, data ports.ConsentData, cipher ports.IDCipher, opts ...Option) (*Service, error) {
	if ledgersClient == nil {
		return nil, errors.New("ledgers client is required")
	}
	if ais == nil {
		return nil, errors.New("ais cms client is required")
	}
	if data == nil {
		return nil, errors.New("consent data service is required")
	}
	if cipher == nil {
		return nil, errors.New("id cipher is required")
	}
	return &Service{
		common:  newCommon(opts),
		ledgers: ledgersClient,
		ais:     ais,
		data:    data,
		cipher:  cipher,
	}, nil
}

// List returns every consent of the PSU.
func (s *Service) List(ctx context.Context, psuLogin string) ([]models.ObaAisConsent, error) {
	consents, err := s.ais.GetConsentsForPsu(ctx, psuLogin)
	if err != nil {
		s.logListFailure(ctx, psuLogin, err)
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, responseErrorMsg)
	}
	return s.toObaConsents(ctx, consents), nil
}

// ListPaged returns one page of the PSU's consents. A non-positive size
// falls back to the default page size.
func (s *Service) ListPaged(ctx context.Context, psuLogin string, page, size int) (models.Page[models.ObaAisConsent], error) {
	if size <= 0 {
		size = defaultPageSize
	}
	page = max(page, 0)
	result, err := s.ais.GetConsentsForPsuPaged(ctx, psuLogin, page, size)
	if err != nil {
		s.logListFailure(ctx, psuLogin, err)
		return models.Page[models.ObaAisConsent]{}, dErrors.Wrap(err, dErrors.CodeBadRequest, responseErrorMsg)
	}
	return models.NewPage(page, size, result.TotalItems, s.toObaConsents(ctx, result.Consents)), nil
}

// Revoke revokes the consent at the CMS. It reports false when the CMS did
// not revoke it.
func (s *Service) Revoke(ctx context.Context, consentID string) (bool, error) {
	revoked, err := s.ais.RevokeConsent(ctx, consentID)
	if err != nil {
		return false, err
	}
	if revoked {
		s.emit(ctx, audit.EventConsentRevoked, requestcontext.PSULogin(ctx), consentID)
	}
	return revoked, nil
}

// ConfirmAisConsentDecoupled completes a decoupled AIS authorisation with a
// TAN entered out of band. The bearer token comes from the consent data
// stored when the authorisation was started.
func (s *Service) ConfirmAisConsentDecoupled(ctx context.Context, psuLogin, encryptedConsentID, authorisationID, tan string) (err error) {
	ctx, span := s.start(ctx, "consent.confirm_decoupled", authorisationID)
	defer func() { endSpan(span, err) }()

	consentID, err := s.cipher.Decrypt(encryptedConsentID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, decryptFailedMsg)
	}
	token, err := s.accessTokenFromConsentData(ctx, encryptedConsentID)
	if err != nil {
		return err
	}

	validated, err := s.ledgers.ValidateScaCode(restclient.WithAccessToken(ctx, token), authorisationID, tan)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, restclient.DevMessageOf(err))
	}
	if err := s.confirmAtCMS(ctx, consentID); err != nil {
		return err
	}
	err = s.ais.UpdateAuthorisationStatus(ctx, cms.AuthorisationStatusRequest{
		ResourceID:      consentID,
		AuthorisationID: authorisationID,
		Status:          cms.ScaFinalised,
		PSU:             cms.PsuIDData{PsuID: psuLogin},
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to finalise consent authorisation",
			"authorisation_id", authorisationID,
			"error", err,
		)
		return dErrors.Wrapf(err, dErrors.CodeBadRequest, updateFailedMsg, "authorization", err.Error())
	}
	if err := s.data.Save(ctx, encryptedConsentID, validated); err != nil {
		return dErrors.Wrapf(err, dErrors.CodeBadRequest, updateFailedMsg, "aspsp consent data", err.Error())
	}
	s.metrics.IncScaTransition("ais-decoupled", "authorisation", string(cms.ScaFinalised))
	s.emit(ctx, audit.EventConsentConfirmed, psuLogin, encryptedConsentID)
	return nil
}

func (s *Service) accessTokenFromConsentData(ctx context.Context, encryptedConsentID string) (string, error) {
	resp, err := s.data.Load(ctx, encryptedConsentID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return "", dErrors.Wrap(err, dErrors.CodeBadRequest, noConsentDataMsg)
	case dErrors.HasCode(err, dErrors.CodeConversion):
		return "", dErrors.Wrap(err, dErrors.CodeBadRequest, "Could not parse ASPSP consent data")
	case err != nil:
		return "", err
	}
	token := resp.Token()
	if token == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, noAccessTokenMsg)
	}
	return token, nil
}

func (s *Service) confirmAtCMS(ctx context.Context, consentID string) error {
	if _, err := s.ais.ConfirmConsent(ctx, consentID); err != nil {
		s.logger.ErrorContext(ctx, "failed to confirm consent", "error", err)
		if status, ok := restclient.StatusOf(err); ok && status == http.StatusNotFound {
			return dErrors.Wrapf(err, dErrors.CodeNotFound, notFoundMsg, consentID)
		}
		return dErrors.Wrapf(err, dErrors.CodeConnection, confirmFailedMsg, consentID, err.Error())
	}
	return nil
}

// CreatePiisConsent creates a funds-confirmation consent at the CMS and
// mirrors it at the ledgers service with access to the single requested
// account.
func (s *Service) CreatePiisConsent(ctx context.Context, psuID string, req models.CreatePiisConsentRequest) (err error) {
	ctx, span := s.start(ctx, "consent.create_piis", "")
	defer func() { endSpan(span, err) }()

	cmsReq := req.ToCMS()
	consentID, err := s.ais.CreatePiisConsent(ctx, psuID, cmsReq)
	if err != nil {
		return err
	}

	resp, err := s.ledgers.InitiatePiisConsent(tokenContext(ctx), ledgers.AisConsent{
		ID:                 consentID,
		Login:              psuID,
		TppID:              cmsReq.TppAuthorisationNumber,
		FrequencyPerDay:    piisFrequencyPerDay,
		RecurringIndicator: true,
		ValidUntil:         cmsReq.ValidUntil,
		Access:             ledgers.AisAccountAccess{Accounts: []string{cmsReq.Account.IBAN}},
	})
	if err != nil {
		return err
	}
	if err := s.data.Save(ctx, consentID, resp); err != nil {
		return dErrors.Wrapf(err, dErrors.CodeBadRequest, updateFailedMsg, "aspsp consent data", err.Error())
	}
	s.emit(ctx, audit.EventPiisConsentCreated, psuID, consentID)
	return nil
}

func (s *Service) toObaConsents(ctx context.Context, consents []cms.AisConsent) []models.ObaAisConsent {
	out := make([]models.ObaAisConsent, 0, len(consents))
	for _, c := range consents {
		encrypted, err := s.cipher.Encrypt(c.ID)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to encrypt consent id", "error", err)
			encrypted = ""
		}
		out = append(out, models.ObaAisConsent{EncryptedConsentID: encrypted, AisAccountConsent: c})
	}
	return out
}

func (s *Service) logListFailure(ctx context.Context, psuLogin string, err error) {
	status, _ := restclient.StatusOf(err)
	s.logger.ErrorContext(ctx, "failed to retrieve consents",
		"psu_id", psuLogin,
		"status", status,
		"error", err,
	)
}

func (c *common) emit(ctx context.Context, action audit.AuditEvent, subject, resource string) {
	c.emitEvent(ctx, action, subject, resource, func(*audit.Event) {})
}

func (c *common) emitEvent(ctx context.Context, action audit.AuditEvent, subject, resource string, fill func(*audit.Event)) {
	if c.audit == nil {
		return
	}
	event := audit.NewRequestEvent(ctx, action)
	event.Subject = subject
	event.Resource = resource
	fill(&event)
	if err := c.audit.Emit(ctx, event); err != nil {
		c.logger.WarnContext(ctx, "failed to emit audit event", "action", action, "error", err)
	}
}

func (c *common) start(ctx context.Context, name, authorisationID string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("oba.authorisation_id", authorisationID),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// tokenContext scopes the PSU token forwarded by the browser to ledgers calls.
func tokenContext(ctx context.Context) context.Context {
	return restclient.WithAccessToken(ctx, requestcontext.PSUToken(ctx))
}

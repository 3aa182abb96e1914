// Package service drives the payment and payment-cancellation SCA flows.
//
// Every operation rebuilds the workflow from the CMS, calls the ledgers
// service with a request-scoped access token and persists the resulting
// state back to the CMS and consent data.
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"oba/internal/cms"
	"oba/internal/ledgers"
	"oba/internal/loginattempt"
	"oba/internal/payment/models"
	"oba/internal/platform/metrics"
	"oba/internal/platform/restclient"
	"oba/internal/ports"
	"oba/internal/reference"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
	audit "oba/pkg/platform/audit"
	"oba/pkg/platform/sentinel"
	"oba/pkg/requestcontext"
)

type Service struct {
	policy   ports.ReferencePolicy
	ledgers  ports.Ledgers
	pis      ports.PisCMS
	data     ports.ConsentData
	attempts ports.LoginAttempts
	audit    ports.AuditPublisher
	metrics  *metrics.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(p ports.AuditPublisher) Option {
	return func(s *Service) {
		s.audit = p
	}
}

func New(
	policy ports.ReferencePolicy,
	ledgersClient ports.Ledgers,
	pis ports.PisCMS,
	data ports.ConsentData,
	attempts ports.LoginAttempts,
	opts ...Option,
) (*Service, error) {
	if policy == nil {
		return nil, errors.New("reference policy is required")
	}
	if ledgersClient == nil {
		return nil, errors.New("ledgers client is required")
	}
	if pis == nil {
		return nil, errors.New("pis cms client is required")
	}
	if data == nil {
		return nil, errors.New("consent data service is required")
	}
	if attempts == nil {
		return nil, errors.New("login attempts service is required")
	}
	s := &Service{
		policy:   policy,
		ledgers:  ledgersClient,
		pis:      pis,
		data:     data,
		attempts: attempts,
		logger:   slog.Default(),
		tracer:   otel.Tracer("oba/payment"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// IdentifyPayment rebuilds the workflow for the payment behind the consent
// reference. A non-nil bearer from an earlier step is attached so later
// calls are authenticated.
func (s *Service) IdentifyPayment(ctx context.Context, encryptedPaymentID, authorisationID string, bearer *sca.BearerToken) (_ *models.PaymentWorkflow, err error) {
	ctx, span := s.start(ctx, "payment.identify", authorisationID)
	defer func() { endSpan(span, err) }()

	return s.identify(ctx, encryptedPaymentID, authorisationID, bearer)
}

func (s *Service) identify(ctx context.Context, encryptedPaymentID, authorisationID string, bearer *sca.BearerToken) (*models.PaymentWorkflow, error) {
	ref, err := s.policy.FromRequest(encryptedPaymentID, authorisationID, requestcontext.ConsentCookie(ctx))
	if err != nil {
		return nil, err
	}
	resp, err := s.loadPaymentByRedirectID(ctx, ref)
	if err != nil {
		return nil, err
	}
	workflow, err := models.NewPaymentWorkflow(resp, ref)
	if err != nil {
		return nil, err
	}
	workflow.AttachBearer(bearer)
	return workflow, nil
}

// Login authenticates the PSU for the payment and initiates the operation.
// A rejected login consumes one attempt of the session budget.
func (s *Service) Login(ctx context.Context, encryptedPaymentID, authorisationID, login, pin string, opType sca.OpType) (_ *models.PaymentWorkflow, err error) {
	ctx, span := s.start(ctx, "payment.login", authorisationID)
	defer func() { endSpan(span, err) }()

	if err := s.attempts.CheckFailedCount(ctx, encryptedPaymentID); err != nil {
		return nil, err
	}
	workflow, err := s.identify(ctx, encryptedPaymentID, authorisationID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.ledgers.Login(ctx, ledgers.LoginRequest{
		Login:           login,
		Pin:             pin,
		OperationID:     workflow.PaymentID(),
		AuthorisationID: workflow.AuthID(),
		OpType:          opType,
	})
	if loginattempt.IsRejected(err) {
		return nil, s.attempts.ResolveFailedLoginAttempt(ctx, encryptedPaymentID, workflow.PaymentID(), login, workflow.AuthID(), opType)
	}
	if err != nil {
		return nil, err
	}
	workflow.ProcessSCAResponse(resp)
	s.emit(ctx, audit.EventLoginSucceeded, workflow, login)

	return s.initiatePaymentOpr(ctx, workflow, login, opType)
}

// SelectScaForPayment opens the SCA operation at the ledgers service and
// selects scaMethodID in it.
func (s *Service) SelectScaForPayment(ctx context.Context, encryptedPaymentID, authorisationID, scaMethodID, psuID string, bearer *sca.BearerToken) (_ *models.PaymentWorkflow, err error) {
	ctx, span := s.start(ctx, "payment.select_method", authorisationID)
	defer func() { endSpan(span, err) }()

	workflow, err := s.identify(ctx, encryptedPaymentID, authorisationID, bearer)
	if err != nil {
		return nil, err
	}
	if err := s.selectMethodAndUpdateWorkflow(ctx, scaMethodID, encryptedPaymentID, workflow); err != nil {
		return nil, err
	}
	if err := s.doUpdateAuthData(ctx, psuID, workflow); err != nil {
		return nil, err
	}
	s.emit(ctx, audit.EventScaMethodSelected, workflow, psuID)
	return workflow, nil
}

func (s *Service) selectMethodAndUpdateWorkflow(ctx context.Context, scaMethodID, externalID string, workflow *models.PaymentWorkflow) error {
	tokenCtx, err := withBearer(ctx, workflow.BearerToken())
	if err != nil {
		return err
	}
	started, err := s.ledgers.StartSca(tokenCtx, ledgers.StartScaOpr{
		OperationObjectID: workflow.PaymentID(),
		ExternalID:        externalID,
		AuthorisationID:   workflow.AuthID(),
		OpType:            workflow.OpType(),
	})
	if err != nil {
		return err
	}
	if started == nil {
		return dErrors.New(dErrors.CodeConversion, "empty response from sca start")
	}
	selected, err := s.ledgers.SelectMethod(tokenCtx, started.AuthorisationID, scaMethodID)
	if err != nil {
		return err
	}
	if selected == nil {
		return dErrors.New(dErrors.CodeConversion, "empty response from sca method selection")
	}
	workflow.ProcessSCAResponse(selected)
	return nil
}

// InitiatePaymentOpr starts the payment or its cancellation at the ledgers
// service using the workflow's bearer token.
func (s *Service) InitiatePaymentOpr(ctx context.Context, workflow *models.PaymentWorkflow, psuID string, opType sca.OpType) (_ *models.PaymentWorkflow, err error) {
	ctx, span := s.start(ctx, "payment.initiate", workflow.AuthID())
	defer func() { endSpan(span, err) }()

	return s.initiatePaymentOpr(ctx, workflow, psuID, opType)
}

func (s *Service) initiatePaymentOpr(ctx context.Context, workflow *models.PaymentWorkflow, psuID string, opType sca.OpType) (*models.PaymentWorkflow, error) {
	tokenCtx, err := withBearer(ctx, workflow.BearerToken())
	if err != nil {
		return nil, err
	}

	var resp *sca.GlobalScaResponse
	if opType == sca.OpPayment {
		resp, err = s.ledgers.InitiatePayment(tokenCtx, workflow.AuthResponse.Payment)
	} else {
		resp, err = s.ledgers.InitiatePmtCancellation(tokenCtx, workflow.PaymentID())
	}
	if err != nil {
		return nil, err
	}
	if resp != nil {
		workflow.ProcessSCAResponse(resp)
		workflow.PaymentStatus = resp.TransactionStatus
	}

	if err := s.doUpdateAuthData(ctx, psuID, workflow); err != nil {
		return nil, err
	}
	return workflow, nil
}

// AuthorizePaymentOpr validates the TAN and executes the operation. The
// execution call uses the token returned by the validation, not the one
// the validation was requested with.
//
// Payments take their status from the execution result. Cancellations are
// set to CANC without reading it.
func (s *Service) AuthorizePaymentOpr(ctx context.Context, workflow *models.PaymentWorkflow, psuID, authCode string, opType sca.OpType) (_ *models.PaymentWorkflow, err error) {
	ctx, span := s.start(ctx, "payment.authorize", workflow.AuthID())
	defer func() { endSpan(span, err) }()

	validateCtx, err := withBearer(ctx, workflow.BearerToken())
	if err != nil {
		return nil, err
	}
	validated, err := s.ledgers.ValidateScaCode(validateCtx, workflow.AuthID(), authCode)
	if err != nil {
		s.emit(ctx, audit.EventScaCodeRejected, workflow, psuID)
		return nil, err
	}
	if validated == nil {
		return nil, dErrors.New(dErrors.CodeConversion, "empty response from sca code validation")
	}

	executeCtx, err := withBearer(ctx, validated.Bearer)
	if err != nil {
		return nil, err
	}
	executed, err := s.ledgers.Execution(executeCtx, opType, workflow.PaymentID())
	if err != nil {
		return nil, err
	}

	workflow.ProcessSCAResponse(validated)
	if opType == sca.OpPayment {
		if executed == nil {
			return nil, dErrors.New(dErrors.CodeConversion, "empty response from payment execution")
		}
		workflow.PaymentStatus = executed.TransactionStatus
	} else {
		workflow.PaymentStatus = sca.TxCancelled
	}

	if err := s.doUpdateAuthData(ctx, psuID, workflow); err != nil {
		return nil, err
	}
	s.emit(ctx, audit.EventScaCodeValidated, workflow, psuID)
	if opType == sca.OpPayment {
		s.emit(ctx, audit.EventPaymentAuthorised, workflow, psuID)
	} else {
		s.emit(ctx, audit.EventCancellationCreated, workflow, psuID)
	}
	return workflow, nil
}

// doUpdateAuthData pushes the workflow state to the CMS and consent data in
// three independent steps. A failure stops the sequence; earlier steps are
// not rolled back.
func (s *Service) doUpdateAuthData(ctx context.Context, psuID string, workflow *models.PaymentWorkflow) error {
	if err := s.updateAuthorisationStatus(ctx, workflow, psuID); err != nil {
		return err
	}
	if err := s.updatePaymentStatus(ctx, workflow); err != nil {
		return err
	}
	return s.data.Save(ctx, workflow.Reference.EncryptedConsentID, workflow.ScaResponse)
}

func (s *Service) updateAuthorisationStatus(ctx context.Context, workflow *models.PaymentWorkflow, psuID string) error {
	scaStatus := workflow.AuthResponse.ScaStatus
	status, err := cms.FromScaStatus(scaStatus)
	if err != nil {
		return err
	}
	authorisationID := workflow.Response.AuthorisationID
	psu := cms.PsuIDData{PsuID: psuID}

	if scaStatus == sca.StatusPSUAuthenticated {
		if err := s.pis.UpdatePsuInPayment(ctx, authorisationID, psu); err != nil {
			return authExpired(err)
		}
	}

	var confirmation string
	if workflow.ScaResponse != nil {
		confirmation = workflow.ScaResponse.AuthConfirmationCode
	}
	err = s.pis.UpdateAuthorisationStatus(ctx, cms.AuthorisationStatusRequest{
		ResourceID:           workflow.PaymentID(),
		AuthorisationID:      authorisationID,
		Status:               status,
		PSU:                  psu,
		AuthConfirmationCode: confirmation,
	})
	if err != nil {
		return authExpired(err)
	}
	s.metrics.IncScaTransition(flowName(workflow), "authorisation", string(scaStatus))
	return nil
}

func (s *Service) updatePaymentStatus(ctx context.Context, workflow *models.PaymentWorkflow) error {
	status, err := cms.FromTransactionStatus(workflow.PaymentStatus)
	if err != nil {
		return err
	}
	if err := s.pis.UpdatePaymentStatus(ctx, workflow.PaymentID(), status); err != nil {
		return err
	}
	workflow.AuthResponse.Payment.TransactionStatus = workflow.PaymentStatus
	return nil
}

func (s *Service) loadPaymentByRedirectID(ctx context.Context, ref *reference.ConsentReference) (*cms.PaymentResponse, error) {
	var (
		resp *cms.PaymentResponse
		err  error
	)
	if ref.ConsentType == reference.TypePISCancellation {
		resp, err = s.pis.CheckRedirectAndGetCancellation(ctx, ref.RedirectID)
	} else {
		resp, err = s.pis.CheckRedirectAndGetPayment(ctx, ref.RedirectID)
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Newf(dErrors.CodeNotFound, "Could not retrieve payment %s from CMS", ref.RedirectID)
	case errors.Is(err, sentinel.ErrExpired):
		return nil, dErrors.Newf(dErrors.CodeResourceExpired, "Could not retrieve payment %s from CMS", ref.RedirectID)
	case err != nil:
		return nil, err
	case resp == nil:
		return nil, dErrors.Newf(dErrors.CodeNotFound, "Could not retrieve payment %s from CMS", ref.RedirectID)
	}
	return resp, nil
}

func (s *Service) emit(ctx context.Context, action audit.AuditEvent, workflow *models.PaymentWorkflow, psuID string) {
	if s.audit == nil {
		return
	}
	event := audit.NewRequestEvent(ctx, action)
	event.Subject = psuID
	event.Resource = workflow.Reference.EncryptedConsentID
	event.OpType = string(workflow.OpType())
	event.ScaStatus = string(workflow.AuthResponse.ScaStatus)
	event.Decision = string(workflow.PaymentStatus)
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", action, "error", err)
	}
}

func (s *Service) start(ctx context.Context, name, authorisationID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
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

// withBearer scopes token to the returned context only. The caller's ctx
// never carries it, so nothing leaks past the call sequence.
func withBearer(ctx context.Context, bearer *sca.BearerToken) (context.Context, error) {
	token := bearer.Token()
	if token == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "PSU is not authenticated for this authorisation")
	}
	return restclient.WithAccessToken(ctx, token), nil
}

func authExpired(err error) error {
	if errors.Is(err, sentinel.ErrExpired) {
		return dErrors.Wrap(err, dErrors.CodeAuthExpired, "Authorization for your payment has expired!")
	}
	return err
}

func flowName(workflow *models.PaymentWorkflow) string {
	if workflow.OpType() == sca.OpCancelPayment {
		return "pis-cancellation"
	}
	return "pis"
}

// Package loginattempt enforces the per-session PSU login budget.
//
// The remaining attempt count lives in the session's consent-data blob. When
// it reaches zero the CMS authorisation is moved to FAILED so the TPP sees
// the session as terminated, not merely the PSU.
package loginattempt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"oba/internal/cms"
	"oba/internal/platform/metrics"
	"oba/internal/ports"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
	audit "oba/pkg/platform/audit"
)

const (
	attemptsLeftMsg = "Login Failed!\n You have %d attempts left"
	exceededMsg     = "Login Failed!\n You've exceeded login attempts limit for current session. Please open new Authorization session"
)

type Service struct {
	data    ports.ConsentData
	pis     ports.PisCMS
	ais     ports.AisCMS
	audit   ports.AuditPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
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

func New(data ports.ConsentData, pis ports.PisCMS, ais ports.AisCMS, opts ...Option) (*Service, error) {
	if data == nil {
		return nil, errors.New("consent data service is required")
	}
	if pis == nil || ais == nil {
		return nil, errors.New("cms clients are required")
	}
	s := &Service{data: data, pis: pis, ais: ais, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CheckFailedCount rejects a login for a session whose budget is spent.
func (s *Service) CheckFailedCount(ctx context.Context, encryptedID string) error {
	failed, err := s.data.IsFailedLogin(ctx, encryptedID)
	if err != nil {
		return err
	}
	if failed {
		return dErrors.New(dErrors.CodeLoginFailed, exceededMsg)
	}
	return nil
}

// ResolveFailedLoginAttempt consumes one attempt after a rejected login and
// always returns a LoginFailed error. On the last attempt the authorisation
// is failed at the CMS first; a CMS error is kept as the cause.
func (s *Service) ResolveFailedLoginAttempt(ctx context.Context, encryptedID, resourceID, login, authorisationID string, opType sca.OpType) error {
	left, err := s.data.UpdateLoginFailedCount(ctx, encryptedID)
	if err != nil {
		return err
	}

	exhausted := left <= 0
	s.metrics.IncLoginFailure(string(opType), exhausted)
	s.emit(ctx, encryptedID, login, opType, exhausted)

	if !exhausted {
		return dErrors.Newf(dErrors.CodeLoginFailed, attemptsLeftMsg, left)
	}

	req := cms.AuthorisationStatusRequest{
		ResourceID:      resourceID,
		AuthorisationID: authorisationID,
		Status:          cms.ScaFailed,
		PSU:             cms.PsuIDData{PsuID: login},
	}
	if err := s.failAuthorisation(ctx, opType, req); err != nil {
		s.logger.ErrorContext(ctx, "failed to cancel authorisation after exhausted logins",
			"authorisation_id", authorisationID,
			"op_type", opType,
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeLoginFailed, exceededMsg)
	}
	return dErrors.New(dErrors.CodeLoginFailed, exceededMsg)
}

func (s *Service) failAuthorisation(ctx context.Context, opType sca.OpType, req cms.AuthorisationStatusRequest) error {
	switch opType {
	case sca.OpPayment, sca.OpCancelPayment:
		return s.pis.UpdateAuthorisationStatus(ctx, req)
	case sca.OpConsent:
		return s.ais.UpdateAuthorisationStatus(ctx, req)
	default:
		return fmt.Errorf("no authorisation to cancel for operation %s", opType)
	}
}

func (s *Service) emit(ctx context.Context, encryptedID, login string, opType sca.OpType, exhausted bool) {
	if s.audit == nil {
		return
	}
	action := audit.EventLoginFailed
	severity := audit.SeverityWarning
	if exhausted {
		action = audit.EventLoginAttemptsUsed
		severity = audit.SeverityCritical
	}
	event := audit.NewRequestEvent(ctx, action)
	event.Subject = login
	event.Resource = encryptedID
	event.OpType = string(opType)
	event.Severity = severity
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", action, "error", err)
	}
}

package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"oba/internal/sca"
	audit "oba/pkg/platform/audit"
	"oba/pkg/platform/sentinel"
)

// ResolveRedirectURL picks the TPP redirect for a finished session. The
// authorisation status is re-read from the CMS rather than taken from the
// rebuilt workflow, so a side-channel finalisation between the two reads is
// honoured. A missing authorisation resolves to the nok URI.
func (s *Service) ResolveRedirectURL(ctx context.Context, encryptedPaymentID, authorisationID string, oauth2 bool, psuID string, bearer *sca.BearerToken, authConfirmationCode string) (_ string, err error) {
	ctx, span := s.start(ctx, "payment.resolve_redirect", authorisationID)
	defer func() { endSpan(span, err) }()

	workflow, err := s.identify(ctx, encryptedPaymentID, authorisationID, bearer)
	if err != nil {
		return "", err
	}

	var (
		okURI     string
		scaStatus sca.ScaStatus
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if !oauth2 {
			uri, err := sca.AuthConfirmationRedirectURI(workflow.Response.TppOkRedirectURI, authConfirmationCode)
			okURI = uri
			return err
		}
		tokenCtx, err := withBearer(gctx, workflow.BearerToken())
		if err != nil {
			return err
		}
		okURI, err = s.ledgers.OauthCode(tokenCtx, workflow.Response.TppOkRedirectURI)
		return err
	})
	g.Go(func() error {
		status, err := s.loadAuthorisationStatus(gctx, workflow.AuthID())
		scaStatus = status
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	ok := scaStatus.AllowsOkRedirect()
	s.metrics.IncRedirectOutcome(flowName(workflow), ok)
	s.emit(ctx, audit.EventPaymentRedirectBack, workflow, psuID)
	if ok {
		return okURI, nil
	}
	return workflow.Response.TppNokRedirectURI, nil
}

func (s *Service) loadAuthorisationStatus(ctx context.Context, authorisationID string) (sca.ScaStatus, error) {
	authorisation, err := s.pis.GetAuthorisationByAuthorisationID(ctx, authorisationID)
	if errors.Is(err, sentinel.ErrNotFound) || (err == nil && authorisation == nil) {
		s.logger.WarnContext(ctx, "authorisation for payment not found", "authorisation_id", authorisationID)
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return authorisation.ScaStatus.ToSca()
}

package service

import (
	"context"
	"errors"
	"slices"

	"golang.org/x/sync/errgroup"

	"oba/internal/cms"
	"oba/internal/consent/models"
	"oba/internal/ledgers"
	"oba/internal/loginattempt"
	"oba/internal/platform/restclient"
	"oba/internal/ports"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
	audit "oba/pkg/platform/audit"
	"oba/pkg/platform/sentinel"
	pstrings "oba/pkg/platform/strings"
	"oba/pkg/requestcontext"
)

const flowAIS = "ais"

// RedirectService drives the browser-redirect AIS flow: login, account
// selection, SCA method selection, TAN entry and the redirect back to the TPP.
type RedirectService struct {
	common
	policy   ports.ReferencePolicy
	ledgers  ports.Ledgers
	ais      ports.AisCMS
	data     ports.ConsentData
	attempts ports.LoginAttempts
}

func NewRedirectService(
	policy ports.ReferencePolicy,
	ledgersClient ports.Ledgers,
	ais ports.AisCMS,
	data ports.ConsentData,
	attempts ports.LoginAttempts,
	opts ...Option,
) (*RedirectService, error) {
	if policy == nil {
		return nil, errors.New("reference policy is required")
	}
	if ledgersClient == nil {
		return nil, errors.New("ledgers client is required")
	}
	if ais == nil {
		return nil, errors.New("ais cms client is required")
	}
	if data == nil {
		return nil, errors.New("consent data service is required")
	}
	if attempts == nil {
		return nil, errors.New("login attempts service is required")
	}
	return &RedirectService{
		common:   newCommon(opts),
		policy:   policy,
		ledgers:  ledgersClient,
		ais:      ais,
		data:     data,
		attempts: attempts,
	}, nil
}

// IdentifyConsent rebuilds the workflow for the consent behind the
// consent reference.
func (s *RedirectService) IdentifyConsent(ctx context.Context, encryptedConsentID, authorisationID string, bearer *sca.BearerToken) (_ *models.ConsentWorkflow, err error) {
	ctx, span := s.start(ctx, "consent.identify", authorisationID)
	defer func() { endSpan(span, err) }()

	return s.identify(ctx, encryptedConsentID, authorisationID, bearer)
}

func (s *RedirectService) identify(ctx context.Context, encryptedConsentID, authorisationID string, bearer *sca.BearerToken) (*models.ConsentWorkflow, error) {
	ref, err := s.policy.FromRequest(encryptedConsentID, authorisationID, requestcontext.ConsentCookie(ctx))
	if err != nil {
		return nil, err
	}
	resp, err := s.ais.GetConsentIDByRedirectID(ctx, ref.RedirectID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Newf(dErrors.CodeNotFound, "Could not retrieve consent %s from CMS", ref.RedirectID)
	case errors.Is(err, sentinel.ErrExpired):
		return nil, dErrors.Newf(dErrors.CodeResourceExpired, "Could not retrieve consent %s from CMS", ref.RedirectID)
	case err != nil:
		return nil, err
	case resp == nil:
		return nil, dErrors.Newf(dErrors.CodeNotFound, "Could not retrieve consent %s from CMS", ref.RedirectID)
	}
	workflow, err := models.NewConsentWorkflow(resp, ref)
	if err != nil {
		return nil, err
	}
	workflow.AttachBearer(bearer)
	return workflow, nil
}

// Login authenticates the PSU for the consent and returns the PSU's accounts
// so the frontend can offer them for selection.
func (s *RedirectService) Login(ctx context.Context, encryptedConsentID, authorisationID, login, pin string) (_ *models.ConsentWorkflow, err error) {
	ctx, span := s.start(ctx, "consent.login", authorisationID)
	defer func() { endSpan(span, err) }()

	if err := s.attempts.CheckFailedCount(ctx, encryptedConsentID); err != nil {
		return nil, err
	}
	workflow, err := s.identify(ctx, encryptedConsentID, authorisationID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.ledgers.Login(ctx, ledgers.LoginRequest{
		Login:           login,
		Pin:             pin,
		OperationID:     workflow.ConsentID(),
		AuthorisationID: workflow.AuthID(),
		OpType:          sca.OpConsent,
	})
	if loginattempt.IsRejected(err) {
		return nil, s.attempts.ResolveFailedLoginAttempt(ctx, encryptedConsentID, workflow.ConsentID(), login, workflow.AuthID(), sca.OpConsent)
	}
	if err != nil {
		return nil, err
	}
	workflow.ProcessSCAResponse(resp)

	tokenCtx, err := withBearer(ctx, workflow.BearerToken())
	if err != nil {
		return nil, err
	}
	accounts, err := s.ledgers.ListAccounts(tokenCtx)
	if err != nil {
		return nil, err
	}
	workflow.AuthResponse.Accounts = accounts

	if err := s.UpdateScaStatusAndConsentData(ctx, login, workflow); err != nil {
		return nil, err
	}
	s.emitWorkflow(ctx, audit.EventLoginSucceeded, login, workflow)
	return workflow, nil
}

// StartConsent applies the PSU's account selection to the consent at the
// CMS and opens the consent at the ledgers service.
func (s *RedirectService) StartConsent(ctx context.Context, encryptedConsentID, authorisationID, psuID string, requested ledgers.AisAccountAccess, bearer *sca.BearerToken) (_ *models.ConsentWorkflow, err error) {
	ctx, span := s.start(ctx, "consent.start", authorisationID)
	defer func() { endSpan(span, err) }()

	workflow, err := s.identify(ctx, encryptedConsentID, authorisationID, bearer)
	if err != nil {
		return nil, err
	}
	tokenCtx, err := withBearer(ctx, workflow.BearerToken())
	if err != nil {
		return nil, err
	}

	accounts, err := s.ledgers.ListAccounts(tokenCtx)
	if err != nil {
		return nil, err
	}

	access, err := UpdateAccessByConsentType(workflow, requested, accounts)
	if err != nil {
		return nil, err
	}
	if err := s.ais.PutAccountAccessInConsent(ctx, workflow.ConsentID(), access); err != nil {
		return nil, err
	}
	workflow.Response.Consent.Access = access.AccountAccess
	workflow.AuthResponse.Consent = models.ToLedgersConsent(workflow.Response.Consent)
	workflow.AuthResponse.Consent.Login = psuID
	workflow.AuthResponse.Accounts = accounts
	s.emitWorkflow(ctx, audit.EventAccountAccessUpdated, psuID, workflow)

	resp, err := s.ledgers.InitiateAisConsent(tokenCtx, workflow.AuthResponse.Consent)
	if err != nil {
		return nil, err
	}
	workflow.ProcessSCAResponse(resp)
	if err := s.UpdateScaStatusAndConsentData(ctx, psuID, workflow); err != nil {
		return nil, err
	}
	return workflow, nil
}

// UpdateAccessByConsentType builds the account access for the consent's
// request type. GLOBAL and ALL_AVAILABLE_ACCOUNTS grant every PSU account.
//
// For dedicated consents the access the TPP stored at the CMS must belong to
// the PSU, otherwise the whole request fails with LoginFailed. An empty PSU
// selection grants the stored access; a non-empty one narrows it per list and
// may not name an account the TPP did not ask for.
func UpdateAccessByConsentType(workflow *models.ConsentWorkflow, requested ledgers.AisAccountAccess, accounts []ledgers.AccountDetails) (cms.AccountAccessRequest, error) {
	consent := workflow.Response.Consent
	req := cms.AccountAccessRequest{
		ValidUntil:      consent.ValidUntil,
		FrequencyPerDay: consent.FrequencyPerDay,
		Recurring:       consent.RecurringIndicator,
	}

	switch consent.RequestType {
	case cms.RequestGlobal:
		all := accountRefs(accounts)
		req.AccountAccess = cms.AccountAccess{
			Accounts:     all,
			Balances:     all,
			Transactions: all,
			AllPsd2:      ledgers.AllAccounts,
		}
	case cms.RequestAllAvailableAccounts:
		req.AccountAccess = cms.AccountAccess{
			Accounts:          accountRefs(accounts),
			AvailableAccounts: ledgers.AllAccounts,
		}
	default:
		stored, err := dedicatedAccess(consent.Access, accounts)
		if err != nil {
			return cms.AccountAccessRequest{}, err
		}
		if len(requested.Accounts)+len(requested.Balances)+len(requested.Transactions) == 0 {
			req.AccountAccess = stored
			break
		}
		if req.AccountAccess.Accounts, err = narrowAccess(requested.Accounts, stored.Accounts, accounts); err != nil {
			return cms.AccountAccessRequest{}, err
		}
		if req.AccountAccess.Balances, err = narrowAccess(requested.Balances, stored.Balances, accounts); err != nil {
			return cms.AccountAccessRequest{}, err
		}
		if req.AccountAccess.Transactions, err = narrowAccess(requested.Transactions, stored.Transactions, accounts); err != nil {
			return cms.AccountAccessRequest{}, err
		}
	}
	return req, nil
}

// dedicatedAccess resolves the TPP-requested access against the PSU's
// accounts.
func dedicatedAccess(stored cms.AccountAccess, accounts []ledgers.AccountDetails) (cms.AccountAccess, error) {
	var (
		out cms.AccountAccess
		err error
	)
	if out.Accounts, err = matchIBANs(ibansOf(stored.Accounts), accounts); err != nil {
		return cms.AccountAccess{}, err
	}
	if out.Balances, err = matchIBANs(ibansOf(stored.Balances), accounts); err != nil {
		return cms.AccountAccess{}, err
	}
	if out.Transactions, err = matchIBANs(ibansOf(stored.Transactions), accounts); err != nil {
		return cms.AccountAccess{}, err
	}
	return out, nil
}

// narrowAccess matches the PSU selection and keeps it within allowed.
func narrowAccess(selected []string, allowed []cms.AccountReference, accounts []ledgers.AccountDetails) ([]cms.AccountReference, error) {
	refs, err := matchIBANs(selected, accounts)
	if err != nil {
		return nil, err
	}
	for _, ref := range refs {
		if !slices.ContainsFunc(allowed, func(a cms.AccountReference) bool {
			return pstrings.CompactIBAN(a.IBAN) == pstrings.CompactIBAN(ref.IBAN)
		}) {
			return nil, dErrors.Newf(dErrors.CodeBadRequest, "Account %s is not part of the consent", ref.IBAN)
		}
	}
	return refs, nil
}

func ibansOf(refs []cms.AccountReference) []string {
	if refs == nil {
		return nil
	}
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.IBAN)
	}
	return out
}

func accountRefs(accounts []ledgers.AccountDetails) []cms.AccountReference {
	out := make([]cms.AccountReference, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, cms.AccountReference{IBAN: a.IBAN, Currency: a.Currency})
	}
	return out
}

func matchIBANs(ibans []string, accounts []ledgers.AccountDetails) ([]cms.AccountReference, error) {
	if ibans == nil {
		return nil, nil
	}
	ibans = pstrings.DedupeIBANs(ibans)
	out := make([]cms.AccountReference, 0, len(ibans))
	for _, iban := range ibans {
		i := slices.IndexFunc(accounts, func(a ledgers.AccountDetails) bool { return pstrings.CompactIBAN(a.IBAN) == iban })
		if i < 0 {
			return nil, dErrors.Newf(dErrors.CodeLoginFailed, "Account %s is not accessible for the PSU", iban)
		}
		out = append(out, cms.AccountReference{IBAN: accounts[i].IBAN, Currency: accounts[i].Currency})
	}
	return out, nil
}

// SelectScaMethod opens the consent SCA operation and selects scaMethodID.
func (s *RedirectService) SelectScaMethod(ctx context.Context, encryptedConsentID, authorisationID, scaMethodID, psuID string, bearer *sca.BearerToken) (_ *models.ConsentWorkflow, err error) {
	ctx, span := s.start(ctx, "consent.select_method", authorisationID)
	defer func() { endSpan(span, err) }()

	workflow, err := s.identify(ctx, encryptedConsentID, authorisationID, bearer)
	if err != nil {
		return nil, err
	}
	tokenCtx, err := withBearer(ctx, workflow.BearerToken())
	if err != nil {
		return nil, err
	}
	started, err := s.ledgers.StartSca(tokenCtx, ledgers.StartScaOpr{
		OperationObjectID: workflow.ConsentID(),
		ExternalID:        encryptedConsentID,
		AuthorisationID:   workflow.AuthID(),
		OpType:            sca.OpConsent,
	})
	if err != nil {
		return nil, err
	}
	if started == nil {
		return nil, dErrors.New(dErrors.CodeConversion, "empty response from sca start")
	}
	selected, err := s.ledgers.SelectMethod(tokenCtx, started.AuthorisationID, scaMethodID)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		return nil, dErrors.New(dErrors.CodeConversion, "empty response from sca method selection")
	}
	workflow.ProcessSCAResponse(selected)

	if err := s.UpdateScaStatusAndConsentData(ctx, psuID, workflow); err != nil {
		return nil, err
	}
	s.emitWorkflow(ctx, audit.EventScaMethodSelected, psuID, workflow)
	return workflow, nil
}

// AuthorizeConsent validates the TAN. A finalised or exempted authorisation
// confirms the consent at the CMS, which makes it valid.
func (s *RedirectService) AuthorizeConsent(ctx context.Context, encryptedConsentID, authorisationID, authCode, psuID string, bearer *sca.BearerToken) (_ *models.ConsentWorkflow, err error) {
	ctx, span := s.start(ctx, "consent.authorize", authorisationID)
	defer func() { endSpan(span, err) }()

	workflow, err := s.identify(ctx, encryptedConsentID, authorisationID, bearer)
	if err != nil {
		return nil, err
	}
	tokenCtx, err := withBearer(ctx, workflow.BearerToken())
	if err != nil {
		return nil, err
	}
	validated, err := s.ledgers.ValidateScaCode(tokenCtx, workflow.AuthID(), authCode)
	if err != nil {
		s.emitWorkflow(ctx, audit.EventScaCodeRejected, psuID, workflow)
		return nil, err
	}
	workflow.ProcessSCAResponse(validated)

	if status := workflow.AuthResponse.ScaStatus; status == sca.StatusFinalised || status == sca.StatusExempted {
		if _, err := s.ais.ConfirmConsent(ctx, workflow.ConsentID()); err != nil {
			return nil, err
		}
		workflow.ConsentStatus = sca.ConsentValid
	}
	if err := s.UpdateScaStatusAndConsentData(ctx, psuID, workflow); err != nil {
		return nil, err
	}
	s.emitWorkflow(ctx, audit.EventScaCodeValidated, psuID, workflow)
	if workflow.ConsentStatus == sca.ConsentValid {
		s.emitWorkflow(ctx, audit.EventConsentAuthorised, psuID, workflow)
	}
	return workflow, nil
}

// UpdateScaStatusAndConsentData pushes the authorisation status to the CMS
// and stores the SCA response. The steps are not rolled back on failure.
func (s *RedirectService) UpdateScaStatusAndConsentData(ctx context.Context, psuID string, workflow *models.ConsentWorkflow) error {
	scaStatus := workflow.AuthResponse.ScaStatus
	status, err := cms.FromScaStatus(scaStatus)
	if err != nil {
		return err
	}
	var confirmation string
	if workflow.ScaResponse != nil {
		confirmation = workflow.ScaResponse.AuthConfirmationCode
	}
	err = s.ais.UpdateAuthorisationStatus(ctx, cms.AuthorisationStatusRequest{
		ResourceID:           workflow.ConsentID(),
		AuthorisationID:      workflow.Response.AuthorisationID,
		Status:               status,
		PSU:                  cms.PsuIDData{PsuID: psuID},
		AuthConfirmationCode: confirmation,
	})
	if errors.Is(err, sentinel.ErrExpired) {
		return dErrors.Wrap(err, dErrors.CodeAuthExpired, "Authorization for your consent has expired!")
	}
	if err != nil {
		return err
	}
	s.metrics.IncScaTransition(flowAIS, "authorisation", string(scaStatus))
	return s.data.Save(ctx, workflow.Reference.EncryptedConsentID, workflow.ScaResponse)
}

// ResolveRedirectURL picks the TPP redirect for a finished consent session
// from the authorisation status re-read at the CMS. A missing authorisation
// resolves to the nok URI.
func (s *RedirectService) ResolveRedirectURL(ctx context.Context, encryptedConsentID, authorisationID string, oauth2 bool, psuID string, bearer *sca.BearerToken, authConfirmationCode string) (_ string, err error) {
	ctx, span := s.start(ctx, "consent.resolve_redirect", authorisationID)
	defer func() { endSpan(span, err) }()

	workflow, err := s.identify(ctx, encryptedConsentID, authorisationID, bearer)
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
		authorisation, err := s.ais.GetAuthorisationByAuthorisationID(gctx, workflow.AuthID())
		if errors.Is(err, sentinel.ErrNotFound) || (err == nil && authorisation == nil) {
			s.logger.WarnContext(gctx, "authorisation for consent not found", "authorisation_id", workflow.AuthID())
			return nil
		}
		if err != nil {
			return err
		}
		scaStatus, err = authorisation.ScaStatus.ToSca()
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	ok := scaStatus.AllowsOkRedirect()
	s.metrics.IncRedirectOutcome(flowAIS, ok)
	s.emitWorkflow(ctx, audit.EventConsentRedirectBack, psuID, workflow)
	if ok {
		return okURI, nil
	}
	return workflow.Response.TppNokRedirectURI, nil
}

func (s *RedirectService) emitWorkflow(ctx context.Context, action audit.AuditEvent, psuID string, workflow *models.ConsentWorkflow) {
	s.emitEvent(ctx, action, psuID, workflow.Reference.EncryptedConsentID, func(e *audit.Event) {
		e.OpType = string(sca.OpConsent)
		e.ScaStatus = string(workflow.AuthResponse.ScaStatus)
		e.Decision = string(workflow.ConsentStatus)
	})
}

// withBearer scopes the token to the returned context only.
func withBearer(ctx context.Context, bearer *sca.BearerToken) (context.Context, error) {
	token := bearer.Token()
	if token == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "PSU is not authenticated for this authorisation")
	}
	return restclient.WithAccessToken(ctx, token), nil
}

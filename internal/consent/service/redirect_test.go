package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"oba/internal/cms"
	"oba/internal/consent/models"
	"oba/internal/ledgers"
	"oba/internal/platform/restclient"
	"oba/internal/ports/mocks"
	"oba/internal/reference"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
	"oba/pkg/platform/sentinel"
	"oba/pkg/requestcontext"
)

type RedirectServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPolicy   *mocks.MockReferencePolicy
	mockLedgers  *mocks.MockLedgers
	mockAis      *mocks.MockAisCMS
	mockData     *mocks.MockConsentData
	mockAttempts *mocks.MockLoginAttempts
	service      *RedirectService
	ctx          context.Context
}

func TestRedirectServiceSuite(t *testing.T) {
	suite.Run(t, new(RedirectServiceSuite))
}

func (s *RedirectServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPolicy = mocks.NewMockReferencePolicy(s.ctrl)
	s.mockLedgers = mocks.NewMockLedgers(s.ctrl)
	s.mockAis = mocks.NewMockAisCMS(s.ctrl)
	s.mockData = mocks.NewMockConsentData(s.ctrl)
	s.mockAttempts = mocks.NewMockLoginAttempts(s.ctrl)
	mockAudit := mocks.NewMockAuditPublisher(s.ctrl)
	mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc, err := NewRedirectService(s.mockPolicy, s.mockLedgers, s.mockAis, s.mockData, s.mockAttempts,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(mockAudit),
	)
	s.Require().NoError(err)
	s.service = svc
	s.ctx = requestcontext.WithConsentCookie(context.Background(), cookie)
}

func (s *RedirectServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// tppAccess is the access a TPP stores with a dedicated consent.
func tppAccess(accounts, balances, transactions []string) cms.AccountAccess {
	refs := func(ibans []string) []cms.AccountReference {
		var out []cms.AccountReference
		for _, iban := range ibans {
			out = append(out, cms.AccountReference{IBAN: iban})
		}
		return out
	}
	return cms.AccountAccess{Accounts: refs(accounts), Balances: refs(balances), Transactions: refs(transactions)}
}

func consentRedirect(requestType cms.AisConsentRequestType) *cms.ConsentRedirect {
	redirect := &cms.ConsentRedirect{
		Consent: cms.AisConsent{
			ID:                 consentID,
			Status:             cms.ConsentReceived,
			RequestType:        requestType,
			FrequencyPerDay:    4,
			RecurringIndicator: true,
			ValidUntil:         "2027-01-01",
			TppInfo:            cms.TppInfo{AuthorisationNumber: "PSDDE-1"},
		},
		AuthorisationID:   authID,
		TppOkRedirectURI:  okURI,
		TppNokRedirectURI: nokURI,
	}
	if requestType == cms.RequestDedicatedAccounts {
		both := []string{ibanMain, ibanSavings}
		redirect.Consent.Access = tppAccess(both, both, []string{ibanMain})
	}
	return redirect
}

func psuAccounts() []ledgers.AccountDetails {
	return []ledgers.AccountDetails{
		{ID: "A1", IBAN: ibanMain, Currency: "EUR"},
		{ID: "A2", IBAN: ibanSavings, Currency: "EUR"},
	}
}

func bearer(token string) *sca.BearerToken {
	return &sca.BearerToken{AccessToken: token, Claims: &sca.AccessTokenClaims{Login: psuLogin}}
}

func (s *RedirectServiceSuite) expectIdentify(requestType cms.AisConsentRequestType) {
	s.mockPolicy.EXPECT().FromRequest(encryptedID, authID, cookie).Return(&reference.ConsentReference{
		EncryptedConsentID: encryptedID,
		AuthorizationID:    authID,
		RedirectID:         redirectID,
		ConsentType:        reference.TypeAIS,
		Cookie:             cookie,
	}, nil)
	s.mockAis.EXPECT().GetConsentIDByRedirectID(gomock.Any(), redirectID).Return(consentRedirect(requestType), nil)
}

func (s *RedirectServiceSuite) expectPersist(status cms.ScaStatus) {
	gomock.InOrder(
		s.mockAis.EXPECT().UpdateAuthorisationStatus(tokenCtx(""), gomock.Any()).
			DoAndReturn(func(_ context.Context, req cms.AuthorisationStatusRequest) error {
				s.Equal(status, req.Status)
				s.Equal(consentID, req.ResourceID)
				s.Equal(authID, req.AuthorisationID)
				return nil
			}),
		s.mockData.EXPECT().Save(tokenCtx(""), encryptedID, gomock.Any()).Return(nil),
	)
}

func (s *RedirectServiceSuite) TestIdentifyConsent() {
	s.Run("seeds consent status from cms", func() {
		s.expectIdentify(cms.RequestDedicatedAccounts)

		workflow, err := s.service.IdentifyConsent(s.ctx, encryptedID, authID, bearer("tok-1"))
		s.Require().NoError(err)
		s.Equal(sca.ConsentReceived, workflow.ConsentStatus)
		s.Equal("tok-1", workflow.BearerToken().Token())
		s.Equal("PSDDE-1", workflow.AuthResponse.Consent.TppID)
	})

	s.Run("expired redirect", func() {
		s.mockPolicy.EXPECT().FromRequest(encryptedID, authID, cookie).
			Return(&reference.ConsentReference{EncryptedConsentID: encryptedID, RedirectID: redirectID}, nil)
		s.mockAis.EXPECT().GetConsentIDByRedirectID(gomock.Any(), redirectID).Return(nil, sentinel.ErrExpired)

		_, err := s.service.IdentifyConsent(s.ctx, encryptedID, authID, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeResourceExpired))
	})

	s.Run("unknown redirect", func() {
		s.mockPolicy.EXPECT().FromRequest(encryptedID, authID, cookie).
			Return(&reference.ConsentReference{EncryptedConsentID: encryptedID, RedirectID: redirectID}, nil)
		s.mockAis.EXPECT().GetConsentIDByRedirectID(gomock.Any(), redirectID).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.IdentifyConsent(s.ctx, encryptedID, authID, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Contains(err.Error(), "Could not retrieve consent REDIRECT_1 from CMS")
	})
}

func (s *RedirectServiceSuite) TestLoginListsAccounts() {
	s.mockAttempts.EXPECT().CheckFailedCount(gomock.Any(), encryptedID).Return(nil)
	s.expectIdentify(cms.RequestDedicatedAccounts)
	s.mockLedgers.EXPECT().Login(tokenCtx(""), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ledgers.LoginRequest) (*sca.GlobalScaResponse, error) {
			s.Equal(sca.OpConsent, req.OpType)
			s.Equal(consentID, req.OperationID)
			return &sca.GlobalScaResponse{AuthorisationID: authID, ScaStatus: sca.StatusPSUIdentified, Bearer: bearer("tok-1")}, nil
		})
	s.mockLedgers.EXPECT().ListAccounts(tokenCtx("tok-1")).Return(psuAccounts(), nil)
	s.expectPersist(cms.ScaPSUIdentified)

	workflow, err := s.service.Login(s.ctx, encryptedID, authID, psuLogin, "12345")
	s.Require().NoError(err)
	s.Len(workflow.AuthResponse.Accounts, 2)
	s.Equal(sca.StatusPSUIdentified, workflow.AuthResponse.ScaStatus)
}

func (s *RedirectServiceSuite) TestLoginRejectedConsumesAttempt() {
	budgetSpent := dErrors.New(dErrors.CodeLoginFailed, "Login Failed!\n You have 2 attempts left")
	s.mockAttempts.EXPECT().CheckFailedCount(gomock.Any(), encryptedID).Return(nil)
	s.expectIdentify(cms.RequestDedicatedAccounts)
	s.mockLedgers.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, &restclient.Error{Service: "ledgers", Status: http.StatusUnauthorized})
	s.mockAttempts.EXPECT().ResolveFailedLoginAttempt(gomock.Any(), encryptedID, consentID, psuLogin, authID, sca.OpConsent).
		Return(budgetSpent)

	_, err := s.service.Login(s.ctx, encryptedID, authID, psuLogin, "bad")
	s.Equal(budgetSpent, err)
}

func (s *RedirectServiceSuite) TestStartConsentDedicated() {
	s.expectIdentify(cms.RequestDedicatedAccounts)
	s.mockLedgers.EXPECT().ListAccounts(tokenCtx("tok-1")).Return(psuAccounts(), nil)
	s.mockAis.EXPECT().PutAccountAccessInConsent(gomock.Any(), consentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req cms.AccountAccessRequest) error {
			s.Equal([]cms.AccountReference{{IBAN: ibanMain, Currency: "EUR"}}, req.AccountAccess.Accounts)
			s.Equal([]cms.AccountReference{{IBAN: ibanSavings, Currency: "EUR"}}, req.AccountAccess.Balances)
			s.Nil(req.AccountAccess.Transactions)
			s.Equal(4, req.FrequencyPerDay)
			s.True(req.Recurring)
			return nil
		})
	s.mockLedgers.EXPECT().InitiateAisConsent(tokenCtx("tok-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, c ledgers.AisConsent) (*sca.GlobalScaResponse, error) {
			s.Equal(psuLogin, c.Login)
			s.Equal([]string{ibanMain}, c.Access.Accounts)
			return &sca.GlobalScaResponse{AuthorisationID: authID, ScaStatus: sca.StatusPSUAuthenticated, Bearer: bearer("tok-2")}, nil
		})
	s.expectPersist(cms.ScaPSUAuthenticated)

	workflow, err := s.service.StartConsent(s.ctx, encryptedID, authID, psuLogin, ledgers.AisAccountAccess{
		Accounts: []string{ibanMain},
		Balances: []string{ibanSavings},
	}, bearer("tok-1"))
	s.Require().NoError(err)
	s.Equal("tok-2", workflow.BearerToken().Token())
}

func (s *RedirectServiceSuite) TestStartConsentForeignIBAN() {
	s.expectIdentify(cms.RequestDedicatedAccounts)
	s.mockLedgers.EXPECT().ListAccounts(gomock.Any()).Return(psuAccounts(), nil)

	_, err := s.service.StartConsent(s.ctx, encryptedID, authID, psuLogin, ledgers.AisAccountAccess{
		Accounts: []string{ibanMain, "DE00999999999999999999"},
	}, bearer("tok-1"))
	s.True(dErrors.HasCode(err, dErrors.CodeLoginFailed))
}

func (s *RedirectServiceSuite) TestStartConsentRequiresBearer() {
	s.expectIdentify(cms.RequestGlobal)

	_, err := s.service.StartConsent(s.ctx, encryptedID, authID, psuLogin, ledgers.AisAccountAccess{}, nil)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *RedirectServiceSuite) TestUpdateAccessByConsentType() {
	ref := &reference.ConsentReference{EncryptedConsentID: encryptedID}
	foreign := ledgers.AisAccountAccess{Accounts: []string{"DE00999999999999999999"}}

	s.Run("global grants every account", func() {
		workflow, err := models.NewConsentWorkflow(consentRedirect(cms.RequestGlobal), ref)
		s.Require().NoError(err)

		req, err := UpdateAccessByConsentType(workflow, foreign, psuAccounts())
		s.Require().NoError(err)
		s.Len(req.AccountAccess.Accounts, 2)
		s.Len(req.AccountAccess.Balances, 2)
		s.Len(req.AccountAccess.Transactions, 2)
		s.Equal(ledgers.AllAccounts, req.AccountAccess.AllPsd2)
	})

	s.Run("all available accounts", func() {
		workflow, err := models.NewConsentWorkflow(consentRedirect(cms.RequestAllAvailableAccounts), ref)
		s.Require().NoError(err)

		req, err := UpdateAccessByConsentType(workflow, foreign, psuAccounts())
		s.Require().NoError(err)
		s.Len(req.AccountAccess.Accounts, 2)
		s.Empty(req.AccountAccess.Balances)
		s.Equal(ledgers.AllAccounts, req.AccountAccess.AvailableAccounts)
	})

	s.Run("dedicated rejects a foreign iban in any list", func() {
		workflow, err := models.NewConsentWorkflow(consentRedirect(cms.RequestDedicatedAccounts), ref)
		s.Require().NoError(err)

		_, err = UpdateAccessByConsentType(workflow, ledgers.AisAccountAccess{
			Accounts:     []string{ibanMain},
			Transactions: []string{"DE00999999999999999999"},
		}, psuAccounts())
		s.True(dErrors.HasCode(err, dErrors.CodeLoginFailed))
	})

	s.Run("dedicated accepts paper format and duplicates", func() {
		workflow, err := models.NewConsentWorkflow(consentRedirect(cms.RequestDedicatedAccounts), ref)
		s.Require().NoError(err)

		req, err := UpdateAccessByConsentType(workflow, ledgers.AisAccountAccess{
			Accounts: []string{"de89 3704 0044 0532 0130 00", ibanMain},
		}, psuAccounts())
		s.Require().NoError(err)
		s.Require().Len(req.AccountAccess.Accounts, 1)
		s.Equal(ibanMain, req.AccountAccess.Accounts[0].IBAN)
		s.Nil(req.AccountAccess.Balances)
	})

	foreignConsent := func() *models.ConsentWorkflow {
		redirect := consentRedirect(cms.RequestDedicatedAccounts)
		redirect.Consent.Access = tppAccess([]string{"FR7630006000011234567890189"}, nil, nil)
		workflow, err := models.NewConsentWorkflow(redirect, ref)
		s.Require().NoError(err)
		return workflow
	}

	s.Run("dedicated rejects a foreign iban stored by the tpp", func() {
		_, err := UpdateAccessByConsentType(foreignConsent(), ledgers.AisAccountAccess{}, psuAccounts())
		s.True(dErrors.HasCode(err, dErrors.CodeLoginFailed))
	})

	s.Run("dedicated rejects a foreign tpp iban the psu left out", func() {
		_, err := UpdateAccessByConsentType(foreignConsent(), ledgers.AisAccountAccess{
			Accounts:     []string{ibanMain},
			Balances:     []string{ibanMain},
			Transactions: []string{ibanMain},
		}, psuAccounts())
		s.True(dErrors.HasCode(err, dErrors.CodeLoginFailed))
	})

	s.Run("dedicated without selection grants the tpp access", func() {
		workflow, err := models.NewConsentWorkflow(consentRedirect(cms.RequestDedicatedAccounts), ref)
		s.Require().NoError(err)

		req, err := UpdateAccessByConsentType(workflow, ledgers.AisAccountAccess{}, psuAccounts())
		s.Require().NoError(err)
		s.Len(req.AccountAccess.Accounts, 2)
		s.Len(req.AccountAccess.Balances, 2)
		s.Equal([]cms.AccountReference{{IBAN: ibanMain, Currency: "EUR"}}, req.AccountAccess.Transactions)
	})

	s.Run("dedicated selection may not widen the tpp access", func() {
		workflow, err := models.NewConsentWorkflow(consentRedirect(cms.RequestDedicatedAccounts), ref)
		s.Require().NoError(err)

		_, err = UpdateAccessByConsentType(workflow, ledgers.AisAccountAccess{
			Transactions: []string{ibanSavings},
		}, psuAccounts())
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *RedirectServiceSuite) TestSelectScaMethod() {
	s.expectIdentify(cms.RequestDedicatedAccounts)
	gomock.InOrder(
		s.mockLedgers.EXPECT().StartSca(tokenCtx("tok-2"), gomock.Any()).
			DoAndReturn(func(_ context.Context, opr ledgers.StartScaOpr) (*sca.GlobalScaResponse, error) {
				s.Equal(sca.OpConsent, opr.OpType)
				s.Equal(consentID, opr.OperationObjectID)
				s.Equal(encryptedID, opr.ExternalID)
				return &sca.GlobalScaResponse{AuthorisationID: authID, ScaStatus: sca.StatusPSUAuthenticated}, nil
			}),
		s.mockLedgers.EXPECT().SelectMethod(tokenCtx("tok-2"), authID, methodID).
			Return(&sca.GlobalScaResponse{AuthorisationID: authID, ScaStatus: sca.StatusScaMethodSelected, Bearer: bearer("tok-3")}, nil),
	)
	s.expectPersist(cms.ScaScaMethodSelected)

	workflow, err := s.service.SelectScaMethod(s.ctx, encryptedID, authID, methodID, psuLogin, bearer("tok-2"))
	s.Require().NoError(err)
	s.Equal(sca.StatusScaMethodSelected, workflow.AuthResponse.ScaStatus)
}

func (s *RedirectServiceSuite) TestSelectScaMethodEmptyResponseIsNotPersisted() {
	s.expectIdentify(cms.RequestDedicatedAccounts)
	s.mockLedgers.EXPECT().StartSca(gomock.Any(), gomock.Any()).
		Return(&sca.GlobalScaResponse{AuthorisationID: authID, ScaStatus: sca.StatusPSUAuthenticated}, nil)
	s.mockLedgers.EXPECT().SelectMethod(gomock.Any(), authID, methodID).Return(nil, nil)
	s.mockAis.EXPECT().UpdateAuthorisationStatus(gomock.Any(), gomock.Any()).Times(0)
	s.mockData.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.SelectScaMethod(s.ctx, encryptedID, authID, methodID, psuLogin, bearer("tok-2"))
	s.True(dErrors.HasCode(err, dErrors.CodeConversion))
}

func (s *RedirectServiceSuite) TestAuthorizeConsent() {
	s.Run("finalised confirms the consent", func() {
		s.expectIdentify(cms.RequestDedicatedAccounts)
		s.mockLedgers.EXPECT().ValidateScaCode(tokenCtx("tok-3"), authID, "123456").
			Return(&sca.GlobalScaResponse{AuthorisationID: authID, ScaStatus: sca.StatusFinalised, Bearer: bearer("tok-4")}, nil)
		s.mockAis.EXPECT().ConfirmConsent(tokenCtx(""), consentID).Return(true, nil)
		s.expectPersist(cms.ScaFinalised)

		workflow, err := s.service.AuthorizeConsent(s.ctx, encryptedID, authID, "123456", psuLogin, bearer("tok-3"))
		s.Require().NoError(err)
		s.Equal(sca.ConsentValid, workflow.ConsentStatus)
	})

	s.Run("non-terminal status leaves the consent untouched", func() {
		s.expectIdentify(cms.RequestDedicatedAccounts)
		s.mockLedgers.EXPECT().ValidateScaCode(gomock.Any(), authID, "123456").
			Return(&sca.GlobalScaResponse{AuthorisationID: authID, ScaStatus: sca.StatusScaMethodSelected, Bearer: bearer("tok-4")}, nil)
		s.expectPersist(cms.ScaScaMethodSelected)

		workflow, err := s.service.AuthorizeConsent(s.ctx, encryptedID, authID, "123456", psuLogin, bearer("tok-3"))
		s.Require().NoError(err)
		s.Equal(sca.ConsentReceived, workflow.ConsentStatus)
	})

	s.Run("expired authorisation", func() {
		s.expectIdentify(cms.RequestDedicatedAccounts)
		s.mockLedgers.EXPECT().ValidateScaCode(gomock.Any(), authID, "123456").
			Return(&sca.GlobalScaResponse{AuthorisationID: authID, ScaStatus: sca.StatusScaMethodSelected}, nil)
		s.mockAis.EXPECT().UpdateAuthorisationStatus(gomock.Any(), gomock.Any()).Return(sentinel.ErrExpired)

		_, err := s.service.AuthorizeConsent(s.ctx, encryptedID, authID, "123456", psuLogin, bearer("tok-3"))
		s.True(dErrors.HasCode(err, dErrors.CodeAuthExpired))
	})
}

func (s *RedirectServiceSuite) TestResolveRedirectURL() {
	s.Run("finalised goes to ok uri", func() {
		s.expectIdentify(cms.RequestDedicatedAccounts)
		s.mockAis.EXPECT().GetAuthorisationByAuthorisationID(gomock.Any(), authID).
			Return(&cms.Authorisation{AuthorisationID: authID, ScaStatus: cms.ScaFinalised}, nil)

		uri, err := s.service.ResolveRedirectURL(s.ctx, encryptedID, authID, false, psuLogin, nil, "")
		s.Require().NoError(err)
		s.Equal(okURI, uri)
	})

	s.Run("failed goes to nok uri", func() {
		s.expectIdentify(cms.RequestDedicatedAccounts)
		s.mockAis.EXPECT().GetAuthorisationByAuthorisationID(gomock.Any(), authID).
			Return(&cms.Authorisation{AuthorisationID: authID, ScaStatus: cms.ScaFailed}, nil)

		uri, err := s.service.ResolveRedirectURL(s.ctx, encryptedID, authID, false, psuLogin, nil, "")
		s.Require().NoError(err)
		s.Equal(nokURI, uri)
	})

	s.Run("missing authorisation goes to nok uri", func() {
		s.expectIdentify(cms.RequestDedicatedAccounts)
		s.mockAis.EXPECT().GetAuthorisationByAuthorisationID(gomock.Any(), authID).Return(nil, sentinel.ErrNotFound)

		uri, err := s.service.ResolveRedirectURL(s.ctx, encryptedID, authID, false, psuLogin, nil, "")
		s.Require().NoError(err)
		s.Equal(nokURI, uri)
	})

	s.Run("oauth2 asks ledgers for the code", func() {
		s.expectIdentify(cms.RequestDedicatedAccounts)
		s.mockLedgers.EXPECT().OauthCode(tokenCtx("tok-4"), okURI).Return(okURI+"?code=abc", nil)
		s.mockAis.EXPECT().GetAuthorisationByAuthorisationID(gomock.Any(), authID).
			Return(&cms.Authorisation{AuthorisationID: authID, ScaStatus: cms.ScaExempted}, nil)

		uri, err := s.service.ResolveRedirectURL(s.ctx, encryptedID, authID, true, psuLogin, bearer("tok-4"), "")
		s.Require().NoError(err)
		s.Equal(okURI+"?code=abc", uri)
	})
}

package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"oba/internal/cms"
	"oba/internal/consent/handler/mocks"
	"oba/internal/consent/models"
	"oba/internal/ledgers"
	"oba/internal/reference"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
	"oba/pkg/platform/middleware/session"
	"oba/pkg/testutil"
)

const loginPage = "https://bank.example/login"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func psuToken(t *testing.T, login string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"login": login}).
		SignedString([]byte("ledgers-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func consentWorkflow(token string, status sca.ScaStatus) *models.ConsentWorkflow {
	w, _ := models.NewConsentWorkflow(&cms.ConsentRedirect{
		Consent:         cms.AisConsent{ID: "CONSENT_1", Status: cms.ConsentReceived},
		AuthorisationID: "AUTH_1",
	}, &reference.ConsentReference{EncryptedConsentID: "ENC_C1", AuthorizationID: "AUTH_1", ConsentType: reference.TypeAIS})
	w.ProcessSCAResponse(&sca.GlobalScaResponse{
		AuthorisationID: "AUTH_1",
		ScaStatus:       status,
		Bearer:          &sca.BearerToken{AccessToken: token},
	})
	return w
}

type AisHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRedirectService
	mockIssuer  *mocks.MockReferenceIssuer
	router      chi.Router
}

func TestAisHandlerSuite(t *testing.T) {
	suite.Run(t, new(AisHandlerSuite))
}

func (s *AisHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockRedirectService(s.ctrl)
	s.mockIssuer = mocks.NewMockReferenceIssuer(s.ctrl)
	s.router = chi.NewRouter()
	NewAisHandler(s.mockService, s.mockIssuer, loginPage, discardLogger(), WithCookies(600, false)).Register(s.router)
}

func (s *AisHandlerSuite) TestRedirectEntry() {
	s.mockIssuer.EXPECT().FromURL("RED_1", reference.TypeAIS, "ENC_C1").Return(&reference.ConsentReference{
		EncryptedConsentID: "ENC_C1",
		AuthorizationID:    "RED_1",
		RedirectID:         "RED_1",
		ConsentType:        reference.TypeAIS,
		Cookie:             "signed-ref",
	}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/ais/auth?redirectId=RED_1&encryptedConsentId=ENC_C1"))

	testutil.AssertStatus(s.T(), rr, http.StatusFound)
	s.Contains(rr.Header().Get("Location"), "encryptedConsentId=ENC_C1")
	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieConsent {
			found = true
			s.Equal("/ais", c.Path)
			s.False(c.Secure)
		}
	}
	s.True(found)
}

func (s *AisHandlerSuite) TestLoginReturnsAccounts() {
	w := consentWorkflow("tok-1", sca.StatusPSUIdentified)
	w.AuthResponse.Accounts = []ledgers.AccountDetails{{IBAN: "DE89370400440532013000", Currency: "EUR"}}
	s.mockService.EXPECT().Login(gomock.Any(), "ENC_C1", "AUTH_1", "anton.brueckner", "12345").Return(w, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost,
		"/ais/ENC_C1/authorisation/AUTH_1/login?login=anton.brueckner&pin=12345"))

	testutil.AssertStatusOK(s.T(), rr)
	s.Equal("Bearer tok-1", rr.Header().Get("Authorization"))
	resp := testutil.UnmarshalResponse[models.ConsentAuthorizeResponse](s.T(), rr)
	s.Len(resp.Accounts, 1)
	s.Equal("ENC_C1", resp.EncryptedConsentID)
}

func (s *AisHandlerSuite) TestStart() {
	s.Run("forwards the requested access", func() {
		token := psuToken(s.T(), "anton.brueckner")
		s.mockService.EXPECT().StartConsent(gomock.Any(), "ENC_C1", "AUTH_1", "anton.brueckner", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, access ledgers.AisAccountAccess, bearer *sca.BearerToken) (*models.ConsentWorkflow, error) {
				s.Equal([]string{"DE89370400440532013000"}, access.Accounts)
				s.Equal(token, bearer.Token())
				return consentWorkflow("tok-2", sca.StatusPSUAuthenticated), nil
			})

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/ais/ENC_C1/authorisation/AUTH_1/start",
			ledgers.AisAccountAccess{Accounts: []string{"DE89370400440532013000"}})
		rr := testutil.DoRequest(s.router, testutil.WithBearer(req, token))

		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "scaStatus", string(sca.StatusPSUAuthenticated))
	})

	s.Run("malformed body", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/ais/ENC_C1/authorisation/AUTH_1/start", "{")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("foreign iban is login failed", func() {
		s.mockService.EXPECT().StartConsent(gomock.Any(), "ENC_C1", "AUTH_1", "", gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeLoginFailed, "Account DE00 is not accessible for the PSU"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/ais/ENC_C1/authorisation/AUTH_1/start",
			ledgers.AisAccountAccess{Accounts: []string{"DE00"}})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, string(dErrors.CodeLoginFailed))
	})
}

func (s *AisHandlerSuite) TestAuthCode() {
	s.Run("missing code", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost, "/ais/ENC_C1/authorisation/AUTH_1/authCode"))
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})

	s.Run("expired authorisation", func() {
		s.mockService.EXPECT().AuthorizeConsent(gomock.Any(), "ENC_C1", "AUTH_1", "123456", "", gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeAuthExpired, "Authorization for your consent has expired!"))

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost, "/ais/ENC_C1/authorisation/AUTH_1/authCode?authCode=123456"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, string(dErrors.CodeAuthExpired))
	})
}

func (s *AisHandlerSuite) TestSelectMethodAndDone() {
	s.mockService.EXPECT().SelectScaMethod(gomock.Any(), "ENC_C1", "AUTH_1", "SCA_1", "", gomock.Any()).
		Return(consentWorkflow("tok-3", sca.StatusScaMethodSelected), nil)
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost, "/ais/ENC_C1/authorisation/AUTH_1/methods/SCA_1"))
	testutil.AssertStatusOK(s.T(), rr)

	s.mockService.EXPECT().ResolveRedirectURL(gomock.Any(), "ENC_C1", "AUTH_1", false, "", gomock.Any(), "").
		Return("https://tpp.example/nok", nil)
	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/ais/ENC_C1/authorisation/AUTH_1/done"))
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "redirectUrl", "https://tpp.example/nok")
}

type ConsentsHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockConsentService
	router      chi.Router
}

func TestConsentsHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConsentsHandlerSuite))
}

func (s *ConsentsHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockConsentService(s.ctrl)
	s.router = chi.NewRouter()
	NewConsentsHandler(s.mockService, discardLogger(), nil).Register(s.router)
}

func (s *ConsentsHandlerSuite) TestList() {
	s.mockService.EXPECT().List(gomock.Any(), "anton.brueckner").
		Return([]models.ObaAisConsent{{EncryptedConsentID: "E1", AisAccountConsent: cms.AisConsent{ID: "C1"}}}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/v1/consents/anton.brueckner"))

	testutil.AssertStatusOK(s.T(), rr)
	consents := testutil.UnmarshalResponse[[]models.ObaAisConsent](s.T(), rr)
	s.Require().Len(*consents, 1)
	s.Equal("E1", (*consents)[0].EncryptedConsentID)
}

func (s *ConsentsHandlerSuite) TestListPaged() {
	s.Run("passes page and size", func() {
		s.mockService.EXPECT().ListPaged(gomock.Any(), "anton.brueckner", 2, 10).
			Return(models.NewPage[models.ObaAisConsent](2, 10, 25, nil), nil)

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/v1/consents/anton.brueckner/paged?page=2&size=10"))

		testutil.AssertStatusOK(s.T(), rr)
		page := testutil.UnmarshalResponse[models.Page[models.ObaAisConsent]](s.T(), rr)
		s.Equal(3, page.TotalPages)
		s.True(page.LastPage)
	})

	s.Run("non-numeric page", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/v1/consents/anton.brueckner/paged?page=x"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}

func (s *ConsentsHandlerSuite) TestRevoke() {
	s.mockService.EXPECT().Revoke(gomock.Any(), "C1").Return(true, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPut, "/api/v1/consents/C1"))

	testutil.AssertStatusOK(s.T(), rr)
	s.JSONEq("true", rr.Body.String())
}

func (s *ConsentsHandlerSuite) TestConfirm() {
	s.Run("success", func() {
		s.mockService.EXPECT().ConfirmAisConsentDecoupled(gomock.Any(), "anton.brueckner", "ENC_C1", "AUTH_1", "123456").Return(nil)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/v1/consents/confirm/anton.brueckner/ENC_C1/AUTH_1/123456"))
		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("unknown consent", func() {
		s.mockService.EXPECT().ConfirmAisConsentDecoupled(gomock.Any(), "anton.brueckner", "ENC_C1", "AUTH_1", "123456").
			Return(dErrors.New(dErrors.CodeNotFound, "Consent C1 could not be found"))
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/v1/consents/confirm/anton.brueckner/ENC_C1/AUTH_1/123456"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})
}

func (s *ConsentsHandlerSuite) TestCreatePiis() {
	body := models.CreatePiisConsentRequest{
		Account:                cms.AccountReference{IBAN: "DE89370400440532013000", Currency: "EUR"},
		TppAuthorisationNumber: "PSDDE-1",
	}

	s.Run("uses the token login as psu", func() {
		s.mockService.EXPECT().CreatePiisConsent(gomock.Any(), "anton.brueckner", body).Return(nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/v1/consents/piis", body)
		rr := testutil.DoRequest(s.router, testutil.WithSessionCookies(req, "", psuToken(s.T(), "anton.brueckner")))

		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("anonymous request", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/v1/consents/piis", body))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, string(dErrors.CodeUnauthorized))
	})

	s.Run("missing iban", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/v1/consents/piis", models.CreatePiisConsentRequest{})
		rr := testutil.DoRequest(s.router, testutil.WithBearer(req, psuToken(s.T(), "anton.brueckner")))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}

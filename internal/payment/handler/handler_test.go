package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"oba/internal/cms"
	"oba/internal/payment/handler/mocks"
	"oba/internal/payment/models"
	"oba/internal/reference"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
	"oba/pkg/platform/middleware/auth"
	"oba/pkg/platform/middleware/session"
	"oba/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/payment-mocks.go -package=mocks

const loginPage = "https://bank.example/login"

type PaymentHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockService
	mockIssuer  *mocks.MockReferenceIssuer
	router      chi.Router
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerSuite))
}

func (s *PaymentHandlerSuite) SetupTest() {
	s.newRouter(reference.TypePIS)
}

func (s *PaymentHandlerSuite) newRouter(flow reference.ConsentType) {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.ctrl)
	s.mockIssuer = mocks.NewMockReferenceIssuer(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(flow, s.mockService, s.mockIssuer, loginPage, logger, WithCookies(600, true))
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func workflow(token string, status sca.ScaStatus) *models.PaymentWorkflow {
	w, _ := models.NewPaymentWorkflow(&cms.PaymentResponse{
		Payment:         cms.Payment{PaymentID: "PMT_123", PaymentType: sca.PaymentSingle},
		AuthorisationID: "AUTH_1",
	}, &reference.ConsentReference{EncryptedConsentID: "ENC_123", AuthorizationID: "AUTH_1", ConsentType: reference.TypePIS})
	w.ProcessSCAResponse(&sca.GlobalScaResponse{
		AuthorisationID: "AUTH_1",
		ScaStatus:       status,
		Bearer:          &sca.BearerToken{AccessToken: token},
	})
	return w
}

func cookieNamed(rr interface{ Result() *http.Response }, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *PaymentHandlerSuite) TestRedirectEntry() {
	s.Run("sets reference cookie and redirects to login page", func() {
		s.mockIssuer.EXPECT().FromURL("RED_1", reference.TypePIS, "ENC_123").Return(&reference.ConsentReference{
			EncryptedConsentID: "ENC_123",
			AuthorizationID:    "RED_1",
			RedirectID:         "RED_1",
			ConsentType:        reference.TypePIS,
			Cookie:             "signed-ref",
		}, nil)

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/pis/auth?redirectId=RED_1&encryptedPaymentId=ENC_123"))

		testutil.AssertStatus(s.T(), rr, http.StatusFound)
		location, err := url.Parse(rr.Header().Get("Location"))
		s.Require().NoError(err)
		s.Equal("bank.example", location.Host)
		s.Equal("ENC_123", location.Query().Get("encryptedConsentId"))
		s.Equal("RED_1", location.Query().Get("authorisationId"))

		c := cookieNamed(rr, session.CookieConsent)
		s.Require().NotNil(c)
		s.Equal("signed-ref", c.Value)
		s.Equal("/pis", c.Path)
		s.True(c.HttpOnly)
		s.True(c.Secure)
	})

	s.Run("missing redirect id is a bad request", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/pis/auth?encryptedPaymentId=ENC_123"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}

func (s *PaymentHandlerSuite) TestLogin() {
	s.Run("success returns authorize response and bearer", func() {
		s.mockService.EXPECT().Login(gomock.Any(), "ENC_123", "AUTH_1", "anton.brueckner", "12345", sca.OpPayment).
			Return(workflow("tok-1", sca.StatusPSUIdentified), nil)

		req := testutil.NewRequest(s.T(), http.MethodPost, "/pis/ENC_123/authorisation/AUTH_1/login?login=anton.brueckner&pin=12345")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		s.Equal("Bearer tok-1", rr.Header().Get("Authorization"))
		c := cookieNamed(rr, auth.CookieAccessToken)
		s.Require().NotNil(c)
		s.Equal("tok-1", c.Value)

		resp := testutil.UnmarshalResponse[models.PaymentAuthorizeResponse](s.T(), rr)
		s.Equal(sca.StatusPSUIdentified, resp.ScaStatus)
		s.Equal("ENC_123", resp.EncryptedConsentID)
		s.Equal("PMT_123", resp.Payment.PaymentID)
	})

	s.Run("failed login maps to 401", func() {
		s.mockService.EXPECT().Login(gomock.Any(), "ENC_123", "AUTH_1", "anton.brueckner", "bad", sca.OpPayment).
			Return(nil, dErrors.New(dErrors.CodeLoginFailed, "Login Failed!\n You have 2 attempts left"))

		req := testutil.NewRequest(s.T(), http.MethodPost, "/pis/ENC_123/authorisation/AUTH_1/login?login=anton.brueckner&pin=bad")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, string(dErrors.CodeLoginFailed))
		s.Empty(rr.Header().Get("Authorization"))
	})
}

func (s *PaymentHandlerSuite) TestSelectMethodForwardsCookies() {
	s.mockService.EXPECT().SelectScaForPayment(gomock.Any(), "ENC_123", "AUTH_1", "SCA_1", "", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _, _, _ string, bearer *sca.BearerToken) (*models.PaymentWorkflow, error) {
			s.Equal("tok-1", bearer.Token())
			return workflow("tok-2", sca.StatusScaMethodSelected), nil
		})

	req := testutil.NewRequest(s.T(), http.MethodPost, "/pis/ENC_123/authorisation/AUTH_1/methods/SCA_1")
	rr := testutil.DoRequest(s.router, testutil.WithSessionCookies(req, "signed-ref", "tok-1"))

	testutil.AssertStatusOK(s.T(), rr)
	s.Equal("Bearer tok-2", rr.Header().Get("Authorization"))
}

func (s *PaymentHandlerSuite) TestAuthCode() {
	s.Run("missing code is rejected before the service", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost, "/pis/ENC_123/authorisation/AUTH_1/authCode"))
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})

	s.Run("identifies then authorises", func() {
		identified := workflow("tok-2", sca.StatusScaMethodSelected)
		gomock.InOrder(
			s.mockService.EXPECT().IdentifyPayment(gomock.Any(), "ENC_123", "AUTH_1", gomock.Any()).Return(identified, nil),
			s.mockService.EXPECT().AuthorizePaymentOpr(gomock.Any(), identified, "", "123456", sca.OpPayment).
				Return(workflow("tok-3", sca.StatusFinalised), nil),
		)

		req := testutil.NewRequest(s.T(), http.MethodPost, "/pis/ENC_123/authorisation/AUTH_1/authCode?authCode=123456")
		rr := testutil.DoRequest(s.router, testutil.WithBearer(req, "tok-2"))

		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "scaStatus", string(sca.StatusFinalised))
	})
}

func (s *PaymentHandlerSuite) TestDone() {
	s.mockService.EXPECT().ResolveRedirectURL(gomock.Any(), "ENC_123", "AUTH_1", true, "", gomock.Any(), "c0de").
		Return("https://tpp.example/ok?code=1", nil)

	req := testutil.NewRequest(s.T(), http.MethodGet, "/pis/ENC_123/authorisation/AUTH_1/done?oauth2=true&authConfirmationCode=c0de")
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatusOK(s.T(), rr)
	s.Equal("https://tpp.example/ok?code=1", rr.Header().Get("Location"))
	testutil.AssertJSONContains(s.T(), rr, "redirectUrl", "https://tpp.example/ok?code=1")
}

func (s *PaymentHandlerSuite) TestCancellationFlow() {
	s.newRouter(reference.TypePISCancellation)

	s.mockService.EXPECT().Login(gomock.Any(), "ENC_123", "AUTH_1", "anton.brueckner", "12345", sca.OpCancelPayment).
		Return(workflow("tok-1", sca.StatusPSUIdentified), nil)

	req := testutil.NewRequest(s.T(), http.MethodPost, "/pis-cancellation/ENC_123/authorisation/AUTH_1/login?login=anton.brueckner&pin=12345")
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatusOK(s.T(), rr)
	c := cookieNamed(rr, auth.CookieAccessToken)
	s.Require().NotNil(c)
	s.Equal("/pis-cancellation", c.Path)
}

package cms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oba/internal/platform/restclient"
	"oba/pkg/platform/sentinel"
)

type capture struct {
	method, path, query string
	body                map[string]any
}

func newRest(t *testing.T, status int, resp any) (*restclient.Client, *capture) {
	t.Helper()
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.method, c.path, c.query = r.Method, r.URL.Path, r.URL.RawQuery
		_ = json.NewDecoder(r.Body).Decode(&c.body)
		w.WriteHeader(status)
		if resp != nil {
			_ = json.NewEncoder(w).Encode(resp)
		}
	}))
	t.Cleanup(srv.Close)
	return restclient.New("cms", srv.URL, time.Second), c
}

func TestCheckRedirect_NotFoundAndExpired(t *testing.T) {
	rest, _ := newRest(t, http.StatusNotFound, map[string]string{"devMessage": "gone"})
	_, err := NewPisClient(rest).CheckRedirectAndGetPayment(context.Background(), "R1")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	rest, _ = newRest(t, http.StatusRequestTimeout, nil)
	_, err = NewPisClient(rest).CheckRedirectAndGetPayment(context.Background(), "R1")
	assert.ErrorIs(t, err, sentinel.ErrExpired)
	status, ok := restclient.StatusOf(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusRequestTimeout, status)
}

func TestCheckRedirect_Decodes(t *testing.T) {
	rest, c := newRest(t, http.StatusOK, PaymentResponse{
		Payment:          Payment{PaymentID: "PMT_123", TransactionStatus: "RCVD"},
		AuthorisationID:  "AUTH_1",
		TppOkRedirectURI: "https://tpp/ok",
	})
	resp, err := NewPisClient(rest).CheckRedirectAndGetPayment(context.Background(), "R1")
	require.NoError(t, err)
	assert.Equal(t, "/psu-api/v1/payment/redirect/R1", c.path)
	assert.Equal(t, "PMT_123", resp.Payment.PaymentID)
	assert.Equal(t, TransactionStatus("RCVD"), resp.Payment.TransactionStatus)
}

func TestUpdateAuthorisationStatus_Path(t *testing.T) {
	rest, c := newRest(t, http.StatusOK, nil)
	err := NewPisClient(rest).UpdateAuthorisationStatus(context.Background(), AuthorisationStatusRequest{
		ResourceID:           "PMT_123",
		AuthorisationID:      "AUTH_1",
		Status:               ScaFinalised,
		PSU:                  PsuIDData{PsuID: "anton"},
		AuthConfirmationCode: "code-1",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, c.method)
	assert.Equal(t, "/psu-api/v1/payment/PMT_123/authorisation/AUTH_1/status/finalised", c.path)
	assert.Equal(t, "anton", c.body["psuId"])
	assert.Equal(t, "code-1", c.body["authConfirmationCode"])
}

func TestUpdateAuthorisationStatus_Expired(t *testing.T) {
	rest, _ := newRest(t, http.StatusRequestTimeout, nil)
	err := NewAisClient(rest).UpdateAuthorisationStatus(context.Background(), AuthorisationStatusRequest{
		ResourceID: "C1", AuthorisationID: "AUTH_1", Status: ScaFailed,
	})
	assert.True(t, errors.Is(err, sentinel.ErrExpired))
}

func TestGetConsentsForPsu_Unpaged(t *testing.T) {
	rest, c := newRest(t, http.StatusOK, ConsentPage{Consents: []AisConsent{{ID: "C1"}}, TotalItems: 1})
	consents, err := NewAisClient(rest).GetConsentsForPsu(context.Background(), "anton")
	require.NoError(t, err)
	assert.Len(t, consents, 1)
	assert.Contains(t, c.query, "itemsPerPage=9999")
	assert.Contains(t, c.query, "pageIndex=0")
}

func TestConsentData_RoundTripPaths(t *testing.T) {
	rest, c := newRest(t, http.StatusOK, map[string]string{"aspspConsentData": "e30="})
	client := NewConsentDataClient(rest)

	require.NoError(t, client.UpdateAspspConsentData(context.Background(), "ENC_123", "e30="))
	assert.Equal(t, "/api/v1/aspsp-consent-data/consents/ENC_123", c.path)
	assert.Equal(t, "e30=", c.body["aspspConsentData"])

	blob, err := client.ReadAspspConsentData(context.Background(), "ENC_123")
	require.NoError(t, err)
	assert.Equal(t, "e30=", blob)
}

func TestAisGetAuthorisation(t *testing.T) {
	rest, c := newRest(t, http.StatusOK, Authorisation{AuthorisationID: "AUTH_1", ScaStatus: ScaFinalised})
	auth, err := NewAisClient(rest).GetAuthorisationByAuthorisationID(context.Background(), "AUTH_1")
	require.NoError(t, err)
	assert.Equal(t, "/psu-api/v1/ais/consent/authorisation/AUTH_1", c.path)
	assert.Equal(t, ScaFinalised, auth.ScaStatus)

	rest, _ = newRest(t, http.StatusNotFound, nil)
	_, err = NewAisClient(rest).GetAuthorisationByAuthorisationID(context.Background(), "AUTH_1")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

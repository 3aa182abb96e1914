// Package cms is the client for the consent management system that stores
// payments, consents, authorisations and ASPSP consent data.
package cms

import (
	"context"
	"net/url"

	"oba/internal/platform/restclient"
)

const psuAPI = "/psu-api/v1"

// PisClient is the CMS PSU API for payments and payment cancellations.
type PisClient struct {
	rest *restclient.Client
}

// NewPisClient wraps a configured REST client.
func NewPisClient(rest *restclient.Client) *PisClient {
	return &PisClient{rest: rest}
}

// CheckRedirectAndGetPayment loads the payment for a redirect session.
// Returns sentinel.ErrNotFound or sentinel.ErrExpired when the session is gone.
func (c *PisClient) CheckRedirectAndGetPayment(ctx context.Context, redirectID string) (*PaymentResponse, error) {
	var out PaymentResponse
	if err := c.rest.Get(ctx, psuAPI+"/payment/redirect/"+url.PathEscape(redirectID), nil, &out); err != nil {
		return nil, classify("check redirect", err)
	}
	return &out, nil
}

// CheckRedirectAndGetCancellation loads the payment for a cancellation redirect session.
func (c *PisClient) CheckRedirectAndGetCancellation(ctx context.Context, redirectID string) (*PaymentResponse, error) {
	var out PaymentResponse
	if err := c.rest.Get(ctx, psuAPI+"/payment/cancellation/redirect/"+url.PathEscape(redirectID), nil, &out); err != nil {
		return nil, classify("check cancellation redirect", err)
	}
	return &out, nil
}

// GetAuthorisationByAuthorisationID reads the authoritative authorisation state.
func (c *PisClient) GetAuthorisationByAuthorisationID(ctx context.Context, authorisationID string) (*Authorisation, error) {
	var out Authorisation
	if err := c.rest.Get(ctx, psuAPI+"/payment/authorisation/"+url.PathEscape(authorisationID), nil, &out); err != nil {
		return nil, classify("get authorisation", err)
	}
	return &out, nil
}

// UpdateAuthorisationStatus moves a payment authorisation to a new status.
// Returns sentinel.ErrExpired when the authorisation has expired.
func (c *PisClient) UpdateAuthorisationStatus(ctx context.Context, req AuthorisationStatusRequest) error {
	path := psuAPI + "/payment/" + url.PathEscape(req.ResourceID) +
		"/authorisation/" + url.PathEscape(req.AuthorisationID) +
		"/status/" + url.PathEscape(string(req.Status))
	body := authenticationDataHolder{PsuID: req.PSU.PsuID, AuthConfirmationCode: req.AuthConfirmationCode}
	if err := c.rest.Put(ctx, path, nil, body, nil); err != nil {
		return classify("update authorisation status", err)
	}
	return nil
}

// UpdatePaymentStatus sets the payment transaction status.
func (c *PisClient) UpdatePaymentStatus(ctx context.Context, paymentID string, status TransactionStatus) error {
	path := psuAPI + "/payment/" + url.PathEscape(paymentID) + "/status/" + url.PathEscape(string(status))
	if err := c.rest.Put(ctx, path, nil, nil, nil); err != nil {
		return classify("update payment status", err)
	}
	return nil
}

// UpdatePsuInPayment records the authenticated PSU on the authorisation.
func (c *PisClient) UpdatePsuInPayment(ctx context.Context, authorisationID string, psu PsuIDData) error {
	path := psuAPI + "/payment/authorisation/" + url.PathEscape(authorisationID) + "/psu-data"
	if err := c.rest.Put(ctx, path, nil, psu, nil); err != nil {
		return classify("update psu in payment", err)
	}
	return nil
}

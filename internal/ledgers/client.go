// Package ledgers is the client for the core banking service that creates
// payments and consents and runs SCA.
package ledgers

import (
	"context"
	"fmt"
	"net/url"

	"oba/internal/platform/restclient"
	"oba/internal/sca"
)

// Client calls the ledgers REST API. Calls authenticate with the token
// carried by ctx (restclient.WithAccessToken).
type Client struct {
	rest *restclient.Client
}

// New wraps a configured REST client.
func New(rest *restclient.Client) *Client {
	return &Client{rest: rest}
}

// Healthy reports whether the ledgers circuit is closed.
func (c *Client) Healthy() bool {
	return c.rest.Healthy()
}

// Login authenticates the PSU for an operation.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*sca.GlobalScaResponse, error) {
	var out sca.GlobalScaResponse
	if err := c.rest.Post(ctx, "/sca/login", nil, req, &out); err != nil {
		return nil, fmt.Errorf("ledgers: login: %w", err)
	}
	return &out, nil
}

// ValidateToken resolves a bearer token into its claims.
func (c *Client) ValidateToken(ctx context.Context, token string) (*sca.BearerToken, error) {
	var out sca.BearerToken
	if err := c.rest.Get(restclient.WithAccessToken(ctx, token), "/users/validate", url.Values{"accessToken": {token}}, &out); err != nil {
		return nil, fmt.Errorf("ledgers: validate token: %w", err)
	}
	return &out, nil
}

func (c *Client) InitiatePayment(ctx context.Context, payment Payment) (*sca.GlobalScaResponse, error) {
	var out sca.GlobalScaResponse
	if err := c.rest.Post(ctx, "/operation/payment", nil, payment, &out); err != nil {
		return nil, fmt.Errorf("ledgers: initiate payment: %w", err)
	}
	return &out, nil
}

func (c *Client) InitiatePmtCancellation(ctx context.Context, paymentID string) (*sca.GlobalScaResponse, error) {
	var out sca.GlobalScaResponse
	if err := c.rest.Post(ctx, "/operation/cancellation/"+url.PathEscape(paymentID), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("ledgers: initiate cancellation: %w", err)
	}
	return &out, nil
}

// Execution runs the authorised operation (payment execution or cancellation).
func (c *Client) Execution(ctx context.Context, opType sca.OpType, paymentID string) (*sca.GlobalScaResponse, error) {
	var out sca.GlobalScaResponse
	q := url.Values{"opType": {string(opType)}, "operationObjectId": {paymentID}}
	if err := c.rest.Post(ctx, "/operation/execution", q, nil, &out); err != nil {
		return nil, fmt.Errorf("ledgers: execution: %w", err)
	}
	return &out, nil
}

func (c *Client) StartSca(ctx context.Context, opr StartScaOpr) (*sca.GlobalScaResponse, error) {
	var out sca.GlobalScaResponse
	if err := c.rest.Post(ctx, "/sca/start", nil, opr, &out); err != nil {
		return nil, fmt.Errorf("ledgers: start sca: %w", err)
	}
	return &out, nil
}

func (c *Client) SelectMethod(ctx context.Context, authorisationID, methodID string) (*sca.GlobalScaResponse, error) {
	var out sca.GlobalScaResponse
	path := "/sca/" + url.PathEscape(authorisationID) + "/method/" + url.PathEscape(methodID)
	if err := c.rest.Put(ctx, path, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("ledgers: select method: %w", err)
	}
	return &out, nil
}

func (c *Client) ValidateScaCode(ctx context.Context, authorisationID, authCode string) (*sca.GlobalScaResponse, error) {
	var out sca.GlobalScaResponse
	path := "/sca/" + url.PathEscape(authorisationID) + "/authCode"
	if err := c.rest.Put(ctx, path, url.Values{"authCode": {authCode}}, nil, &out); err != nil {
		return nil, fmt.Errorf("ledgers: validate sca code: %w", err)
	}
	return &out, nil
}

func (c *Client) InitiateAisConsent(ctx context.Context, consent AisConsent) (*sca.GlobalScaResponse, error) {
	var out sca.GlobalScaResponse
	if err := c.rest.Post(ctx, "/operation/consent/ais", nil, consent, &out); err != nil {
		return nil, fmt.Errorf("ledgers: initiate ais consent: %w", err)
	}
	return &out, nil
}

func (c *Client) InitiatePiisConsent(ctx context.Context, consent AisConsent) (*sca.GlobalScaResponse, error) {
	var out sca.GlobalScaResponse
	if err := c.rest.Post(ctx, "/operation/consent/piis", nil, consent, &out); err != nil {
		return nil, fmt.Errorf("ledgers: initiate piis consent: %w", err)
	}
	return &out, nil
}

// ListAccounts returns the accounts of the PSU owning the token.
func (c *Client) ListAccounts(ctx context.Context) ([]AccountDetails, error) {
	var out []AccountDetails
	if err := c.rest.Get(ctx, "/accounts", nil, &out); err != nil {
		return nil, fmt.Errorf("ledgers: list accounts: %w", err)
	}
	return out, nil
}

// OauthCode exchanges the session for an OAuth2 code and returns the TPP
// redirect URI with the code attached.
func (c *Client) OauthCode(ctx context.Context, redirectURI string) (string, error) {
	var out oauthResponse
	if err := c.rest.Post(ctx, "/oauth/authorise", url.Values{"redirect_uri": {redirectURI}}, nil, &out); err != nil {
		return "", fmt.Errorf("ledgers: oauth code: %w", err)
	}
	return out.RedirectURI, nil
}

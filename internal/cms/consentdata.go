package cms

import (
	"context"
	"net/url"

	"oba/internal/platform/restclient"
)

const consentDataAPI = "/api/v1/aspsp-consent-data/consents/"

// ConsentDataClient stores opaque ASPSP consent data keyed by encrypted id.
type ConsentDataClient struct {
	rest *restclient.Client
}

// NewConsentDataClient wraps a configured REST client.
func NewConsentDataClient(rest *restclient.Client) *ConsentDataClient {
	return &ConsentDataClient{rest: rest}
}

// UpdateAspspConsentData replaces the base64 blob for encryptedID.
func (c *ConsentDataClient) UpdateAspspConsentData(ctx context.Context, encryptedID, base64Blob string) error {
	body := aspspConsentData{AspspConsentData: base64Blob}
	if err := c.rest.Put(ctx, consentDataAPI+url.PathEscape(encryptedID), nil, body, nil); err != nil {
		return classify("update aspsp consent data", err)
	}
	return nil
}

// ReadAspspConsentData returns the base64 blob for encryptedID.
// Returns sentinel.ErrNotFound when nothing is stored.
func (c *ConsentDataClient) ReadAspspConsentData(ctx context.Context, encryptedID string) (string, error) {
	var out aspspConsentData
	if err := c.rest.Get(ctx, consentDataAPI+url.PathEscape(encryptedID), nil, &out); err != nil {
		return "", classify("read aspsp consent data", err)
	}
	return out.AspspConsentData, nil
}

// DeleteAspspConsentData removes the blob for encryptedID.
func (c *ConsentDataClient) DeleteAspspConsentData(ctx context.Context, encryptedID string) error {
	if err := c.rest.Delete(ctx, consentDataAPI+url.PathEscape(encryptedID), nil); err != nil {
		return classify("delete aspsp consent data", err)
	}
	return nil
}

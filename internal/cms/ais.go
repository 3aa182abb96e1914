package cms

import (
	"context"
	"net/url"
	"strconv"

	"oba/internal/platform/restclient"
)

// unpagedSize is the page size used to read a PSU's full consent list.
const unpagedSize = 9999

// AisClient is the CMS PSU API for AIS and PIIS consents.
type AisClient struct {
	rest *restclient.Client
}

// NewAisClient wraps a configured REST client.
func NewAisClient(rest *restclient.Client) *AisClient {
	return &AisClient{rest: rest}
}

// GetConsentIDByRedirectID loads the consent for a redirect session.
func (c *AisClient) GetConsentIDByRedirectID(ctx context.Context, redirectID string) (*ConsentRedirect, error) {
	var out ConsentRedirect
	if err := c.rest.Get(ctx, psuAPI+"/ais/consent/redirect/"+url.PathEscape(redirectID), nil, &out); err != nil {
		return nil, classify("get consent by redirect", err)
	}
	return &out, nil
}

// GetAuthorisationByAuthorisationID loads the authoritative consent authorisation.
func (c *AisClient) GetAuthorisationByAuthorisationID(ctx context.Context, authorisationID string) (*Authorisation, error) {
	var out Authorisation
	if err := c.rest.Get(ctx, psuAPI+"/ais/consent/authorisation/"+url.PathEscape(authorisationID), nil, &out); err != nil {
		return nil, classify("get consent authorisation", err)
	}
	return &out, nil
}

// PutAccountAccessInConsent replaces the consent's account access.
func (c *AisClient) PutAccountAccessInConsent(ctx context.Context, consentID string, req AccountAccessRequest) error {
	if err := c.rest.Put(ctx, psuAPI+"/ais/consent/"+url.PathEscape(consentID)+"/save-access", nil, req, nil); err != nil {
		return classify("put account access", err)
	}
	return nil
}

// UpdateAuthorisationStatus moves a consent authorisation to a new status.
func (c *AisClient) UpdateAuthorisationStatus(ctx context.Context, req AuthorisationStatusRequest) error {
	path := psuAPI + "/ais/consent/" + url.PathEscape(req.ResourceID) +
		"/authorisation/" + url.PathEscape(req.AuthorisationID) +
		"/status/" + url.PathEscape(string(req.Status))
	body := authenticationDataHolder{PsuID: req.PSU.PsuID, AuthConfirmationCode: req.AuthConfirmationCode}
	if err := c.rest.Put(ctx, path, nil, body, nil); err != nil {
		return classify("update consent authorisation status", err)
	}
	return nil
}

// ConfirmConsent marks the consent valid.
func (c *AisClient) ConfirmConsent(ctx context.Context, consentID string) (bool, error) {
	var ok bool
	if err := c.rest.Put(ctx, psuAPI+"/ais/consent/"+url.PathEscape(consentID)+"/confirm-consent", nil, nil, &ok); err != nil {
		return false, classify("confirm consent", err)
	}
	return ok, nil
}

// RevokeConsent marks the consent revoked by the PSU.
func (c *AisClient) RevokeConsent(ctx context.Context, consentID string) (bool, error) {
	var ok bool
	if err := c.rest.Put(ctx, psuAPI+"/ais/consent/"+url.PathEscape(consentID)+"/revoke-consent", nil, nil, &ok); err != nil {
		return false, classify("revoke consent", err)
	}
	return ok, nil
}

// GetConsentsForPsu lists all consents of a PSU.
func (c *AisClient) GetConsentsForPsu(ctx context.Context, psuID string) ([]AisConsent, error) {
	page, err := c.GetConsentsForPsuPaged(ctx, psuID, 0, unpagedSize)
	if err != nil {
		return nil, err
	}
	return page.Consents, nil
}

// GetConsentsForPsuPaged lists one page of a PSU's consents.
func (c *AisClient) GetConsentsForPsuPaged(ctx context.Context, psuID string, page, size int) (*ConsentPage, error) {
	q := url.Values{
		"psu-id":       {psuID},
		"pageIndex":    {strconv.Itoa(page)},
		"itemsPerPage": {strconv.Itoa(size)},
	}
	var out ConsentPage
	if err := c.rest.Get(ctx, psuAPI+"/ais/consent/consents", q, &out); err != nil {
		return nil, classify("get consents", err)
	}
	return &out, nil
}

// CreatePiisConsent creates a PIIS consent for psuID and returns its id.
func (c *AisClient) CreatePiisConsent(ctx context.Context, psuID string, req CreatePiisConsentRequest) (string, error) {
	var out createPiisConsentResponse
	if err := c.rest.Post(ctx, psuAPI+"/piis/consent", url.Values{"psu-id": {psuID}}, req, &out); err != nil {
		return "", classify("create piis consent", err)
	}
	return out.ConsentID, nil
}

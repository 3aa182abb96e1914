// Package models holds the consent SCA workflow aggregate and the online
// banking consent views.
package models

import (
	"math"

	"oba/internal/cms"
	"oba/internal/ledgers"
	"oba/internal/reference"
	"oba/internal/sca"
)

// ConsentAuthorizeResponse is the view returned to the online banking frontend.
type ConsentAuthorizeResponse struct {
	sca.AuthorizeState
	EncryptedConsentID string                   `json:"encryptedConsentId"`
	Consent            ledgers.AisConsent       `json:"consent"`
	Accounts           []ledgers.AccountDetails `json:"accounts,omitempty"`
	PsuMessages        []string                 `json:"psuMessages,omitempty"`
}

// ConsentWorkflow is rebuilt on every request from the CMS consent and the
// consent reference.
type ConsentWorkflow struct {
	Response      *cms.ConsentRedirect
	Reference     *reference.ConsentReference
	ScaResponse   *sca.GlobalScaResponse
	AuthResponse  *ConsentAuthorizeResponse
	ConsentStatus sca.ConsentStatus
}

// NewConsentWorkflow builds the workflow from a CMS consent. The consent
// status defaults to RECEIVED.
func NewConsentWorkflow(resp *cms.ConsentRedirect, ref *reference.ConsentReference) (*ConsentWorkflow, error) {
	status := sca.ConsentReceived
	if resp.Consent.Status != "" {
		s, err := resp.Consent.Status.ToSca()
		if err != nil {
			return nil, err
		}
		status = s
	}
	return &ConsentWorkflow{
		Response:  resp,
		Reference: ref,
		AuthResponse: &ConsentAuthorizeResponse{
			AuthorizeState:     sca.AuthorizeState{AuthorisationID: resp.AuthorisationID},
			EncryptedConsentID: ref.EncryptedConsentID,
			Consent:            ToLedgersConsent(resp.Consent),
		},
		ConsentStatus: status,
	}, nil
}

// ProcessSCAResponse replaces the SCA state with resp.
func (w *ConsentWorkflow) ProcessSCAResponse(resp *sca.GlobalScaResponse) {
	if resp == nil {
		return
	}
	w.ScaResponse = resp
	w.AuthResponse.AuthorizeState = sca.Reduce(w.AuthResponse.AuthorizeState, resp)
}

// AttachBearer seeds the SCA response with a token from an earlier request.
func (w *ConsentWorkflow) AttachBearer(token *sca.BearerToken) {
	if token == nil {
		return
	}
	if w.ScaResponse == nil {
		w.ScaResponse = &sca.GlobalScaResponse{}
	}
	w.ScaResponse.Bearer = token
}

func (w *ConsentWorkflow) ConsentID() string {
	return w.Response.Consent.ID
}

// AuthID is the authorisation the workflow is currently acting on.
func (w *ConsentWorkflow) AuthID() string {
	if id := w.AuthResponse.AuthorisationID; id != "" {
		return id
	}
	return w.Reference.AuthorizationID
}

func (w *ConsentWorkflow) BearerToken() *sca.BearerToken {
	if w.ScaResponse == nil {
		return nil
	}
	return w.ScaResponse.Bearer
}

func (w *ConsentWorkflow) RequestType() cms.AisConsentRequestType {
	return w.Response.Consent.RequestType
}

// ToLedgersConsent maps a CMS consent onto the ledgers model. The first
// PSU of the consent becomes its owner.
func ToLedgersConsent(c cms.AisConsent) ledgers.AisConsent {
	out := ledgers.AisConsent{
		ID:                 c.ID,
		TppID:              c.TppInfo.AuthorisationNumber,
		FrequencyPerDay:    c.FrequencyPerDay,
		RecurringIndicator: c.RecurringIndicator,
		ValidUntil:         c.ValidUntil,
		Access: ledgers.AisAccountAccess{
			Accounts:          ibans(c.Access.Accounts),
			Balances:          ibans(c.Access.Balances),
			Transactions:      ibans(c.Access.Transactions),
			AvailableAccounts: c.Access.AvailableAccounts,
			AllPsd2:           c.Access.AllPsd2,
		},
	}
	if len(c.PsuIDDatas) > 0 {
		out.Login = c.PsuIDDatas[0].PsuID
	}
	return out
}

func ibans(refs []cms.AccountReference) []string {
	if refs == nil {
		return nil
	}
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.IBAN)
	}
	return out
}

// ObaAisConsent is a PSU consent as listed in online banking. The id is
// encrypted so it can be used in URLs.
type ObaAisConsent struct {
	EncryptedConsentID string         `json:"encryptedConsentId"`
	AisAccountConsent  cms.AisConsent `json:"aisAccountConsent"`
}

// Page is one page of a listing with navigation flags.
type Page[T any] struct {
	Number           int  `json:"number"`
	Size             int  `json:"size"`
	TotalPages       int  `json:"totalPages"`
	NumberOfElements int  `json:"numberOfElements"`
	TotalElements    int  `json:"totalElements"`
	PreviousPage     bool `json:"previousPage"`
	FirstPage        bool `json:"firstPage"`
	NextPage         bool `json:"nextPage"`
	LastPage         bool `json:"lastPage"`
	Content          []T  `json:"content"`
}

// NewPage computes navigation for page index of size over total items.
func NewPage[T any](index, size, total int, content []T) Page[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(size)))
	}
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Number:           index,
		Size:             size,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		TotalElements:    total,
		PreviousPage:     index > 0,
		FirstPage:        index == 0,
		NextPage:         totalPages > index+1,
		LastPage:         totalPages == index+1,
		Content:          content,
	}
}

// CreatePiisConsentRequest is the online banking request for a funds
// confirmation consent.
type CreatePiisConsentRequest struct {
	Account                cms.AccountReference `json:"account"`
	TppAuthorisationNumber string               `json:"tppAuthorisationNumber"`
	ValidUntil             string               `json:"validUntil,omitempty"`
	CardNumber             string               `json:"cardNumber,omitempty"`
	CardExpiryDate         string               `json:"cardExpiryDate,omitempty"`
	CardInformation        string               `json:"cardInformation,omitempty"`
	RegistrationInfo       string               `json:"registrationInformation,omitempty"`
}

// ToCMS maps the request onto the CMS create request.
func (r CreatePiisConsentRequest) ToCMS() cms.CreatePiisConsentRequest {
	return cms.CreatePiisConsentRequest{
		Account:                r.Account,
		TppAuthorisationNumber: r.TppAuthorisationNumber,
		ValidUntil:             r.ValidUntil,
		CardNumber:             r.CardNumber,
		CardExpiryDate:         r.CardExpiryDate,
		CardInformation:        r.CardInformation,
		RegistrationInfo:       r.RegistrationInfo,
	}
}

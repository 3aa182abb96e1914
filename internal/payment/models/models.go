// Package models holds the payment SCA workflow aggregate.
package models

import (
	"oba/internal/cms"
	"oba/internal/ledgers"
	"oba/internal/reference"
	"oba/internal/sca"
)

// PaymentAuthorizeResponse is the view returned to the online banking frontend.
type PaymentAuthorizeResponse struct {
	sca.AuthorizeState
	EncryptedConsentID string          `json:"encryptedConsentId"`
	Payment            ledgers.Payment `json:"payment"`
	PsuMessages        []string        `json:"psuMessages,omitempty"`
}

// PaymentWorkflow is rebuilt on every request from the CMS payment and the
// consent reference. Only ScaResponse outlives the request, via consent data.
type PaymentWorkflow struct {
	Response      *cms.PaymentResponse
	Reference     *reference.ConsentReference
	ScaResponse   *sca.GlobalScaResponse
	AuthResponse  *PaymentAuthorizeResponse
	PaymentStatus sca.TransactionStatus
}

// NewPaymentWorkflow builds the workflow and its authorize view from a CMS
// payment. The transaction status defaults to RCVD.
func NewPaymentWorkflow(resp *cms.PaymentResponse, ref *reference.ConsentReference) (*PaymentWorkflow, error) {
	payment, err := ToLedgersPayment(resp.Payment)
	if err != nil {
		return nil, err
	}
	status := payment.TransactionStatus
	if status == "" {
		status = sca.TxReceived
		payment.TransactionStatus = status
	}
	return &PaymentWorkflow{
		Response:  resp,
		Reference: ref,
		AuthResponse: &PaymentAuthorizeResponse{
			AuthorizeState:     sca.AuthorizeState{AuthorisationID: resp.AuthorisationID},
			EncryptedConsentID: ref.EncryptedConsentID,
			Payment:            payment,
		},
		PaymentStatus: status,
	}, nil
}

// ProcessSCAResponse replaces the SCA state with resp.
func (w *PaymentWorkflow) ProcessSCAResponse(resp *sca.GlobalScaResponse) {
	if resp == nil {
		return
	}
	w.ScaResponse = resp
	w.AuthResponse.AuthorizeState = sca.Reduce(w.AuthResponse.AuthorizeState, resp)
}

// AttachBearer seeds the SCA response with a token from an earlier request.
func (w *PaymentWorkflow) AttachBearer(token *sca.BearerToken) {
	if token == nil {
		return
	}
	if w.ScaResponse == nil {
		w.ScaResponse = &sca.GlobalScaResponse{}
	}
	w.ScaResponse.Bearer = token
}

func (w *PaymentWorkflow) PaymentID() string {
	return w.Response.Payment.PaymentID
}

// AuthID is the authorisation the workflow is currently acting on.
func (w *PaymentWorkflow) AuthID() string {
	if id := w.AuthResponse.AuthorisationID; id != "" {
		return id
	}
	return w.Reference.AuthorizationID
}

func (w *PaymentWorkflow) BearerToken() *sca.BearerToken {
	if w.ScaResponse == nil {
		return nil
	}
	return w.ScaResponse.Bearer
}

func (w *PaymentWorkflow) PaymentType() sca.PaymentType {
	return w.Response.Payment.PaymentType
}

// OpType derives the ledgers operation from the reference type.
func (w *PaymentWorkflow) OpType() sca.OpType {
	if w.Reference.ConsentType == reference.TypePISCancellation {
		return sca.OpCancelPayment
	}
	return sca.OpPayment
}

// ToLedgersPayment maps a CMS payment onto the ledgers model.
func ToLedgersPayment(p cms.Payment) (ledgers.Payment, error) {
	out := ledgers.Payment{
		PaymentID:      p.PaymentID,
		PaymentType:    p.PaymentType,
		PaymentProduct: p.PaymentProduct,
		DebtorAccount:  ledgers.AccountReference{IBAN: p.DebtorAccount.IBAN, Currency: p.DebtorAccount.Currency},
		Targets: []ledgers.PaymentTarget{{
			EndToEndIdentification: p.EndToEndIdentification,
			InstructedAmount:       ledgers.Amount{Currency: p.InstructedAmount.Currency, Amount: p.InstructedAmount.Amount},
			CreditorAccount:        ledgers.AccountReference{IBAN: p.CreditorAccount.IBAN, Currency: p.CreditorAccount.Currency},
			CreditorName:           p.CreditorName,
		}},
	}
	if p.TransactionStatus != "" {
		status, err := p.TransactionStatus.ToSca()
		if err != nil {
			return ledgers.Payment{}, err
		}
		out.TransactionStatus = status
	}
	return out, nil
}

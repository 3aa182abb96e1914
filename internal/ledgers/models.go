package ledgers

import "oba/internal/sca"

// StartScaOpr opens an SCA operation context at the ledgers service.
type StartScaOpr struct {
	OperationObjectID string     `json:"oprId"`
	ExternalID        string     `json:"externalId"`
	AuthorisationID   string     `json:"authorisationId"`
	OpType            sca.OpType `json:"opType"`
}

// LoginRequest authenticates a PSU for a specific SCA operation.
type LoginRequest struct {
	Login           string     `json:"login"`
	Pin             string     `json:"pin"`
	OperationID     string     `json:"operationId"`
	AuthorisationID string     `json:"authorisationId"`
	OpType          sca.OpType `json:"opType"`
}

// AccountReference identifies an account by IBAN and currency.
type AccountReference struct {
	IBAN     string `json:"iban"`
	Currency string `json:"currency,omitempty"`
}

// AccountDetails is one PSU account as the ledgers service lists it.
type AccountDetails struct {
	ID            string `json:"id"`
	IBAN          string `json:"iban"`
	Currency      string `json:"currency"`
	Name          string `json:"name,omitempty"`
	Product       string `json:"product,omitempty"`
	AccountStatus string `json:"accountStatus,omitempty"`
}

// Amount is a decimal amount kept as text to avoid float rounding.
type Amount struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// PaymentTarget is one credit transfer within a payment.
type PaymentTarget struct {
	EndToEndIdentification string           `json:"endToEndIdentification,omitempty"`
	InstructedAmount       Amount           `json:"instructedAmount"`
	CreditorAccount        AccountReference `json:"creditorAccount"`
	CreditorName           string           `json:"creditorName,omitempty"`
}

// Payment is the ledgers representation of a payment order.
type Payment struct {
	PaymentID         string                `json:"paymentId"`
	PaymentType       sca.PaymentType       `json:"paymentType"`
	PaymentProduct    string                `json:"paymentProduct,omitempty"`
	DebtorAccount     AccountReference      `json:"debtorAccount"`
	Targets           []PaymentTarget       `json:"targets"`
	TransactionStatus sca.TransactionStatus `json:"transactionStatus,omitempty"`
}

// AllAccounts marks an access list that covers every PSU account.
const AllAccounts = "ALL_ACCOUNTS"

// AisAccountAccess lists the IBANs a consent grants access to.
type AisAccountAccess struct {
	Accounts          []string `json:"accounts,omitempty"`
	Balances          []string `json:"balances,omitempty"`
	Transactions      []string `json:"transactions,omitempty"`
	AvailableAccounts string   `json:"availableAccounts,omitempty"`
	AllPsd2           string   `json:"allPsd2,omitempty"`
}

// AisConsent is the ledgers representation of an AIS or PIIS consent.
type AisConsent struct {
	ID                 string           `json:"id"`
	Login              string           `json:"userId,omitempty"`
	TppID              string           `json:"tppId,omitempty"`
	FrequencyPerDay    int              `json:"frequencyPerDay"`
	RecurringIndicator bool             `json:"recurringIndicator"`
	ValidUntil         string           `json:"validUntil,omitempty"`
	Access             AisAccountAccess `json:"access"`
}

type oauthResponse struct {
	RedirectURI string `json:"redirectUri"`
	Code        string `json:"code,omitempty"`
}

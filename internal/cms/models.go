package cms

import "oba/internal/sca"

// PsuIDData identifies the PSU at the CMS.
type PsuIDData struct {
	PsuID              string `json:"psuId"`
	PsuIDType          string `json:"psuIdType,omitempty"`
	PsuCorporateID     string `json:"psuCorporateId,omitempty"`
	PsuCorporateIDType string `json:"psuCorporateIdType,omitempty"`
}

// TppInfo describes the TPP that created the resource.
type TppInfo struct {
	AuthorisationNumber string `json:"authorisationNumber"`
	TppName             string `json:"tppName,omitempty"`
}

// AccountReference identifies an account by IBAN and currency.
type AccountReference struct {
	IBAN     string `json:"iban"`
	Currency string `json:"currency,omitempty"`
}

// Amount is a decimal amount kept as text.
type Amount struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// Payment is a single payment as stored at the CMS.
type Payment struct {
	PaymentID              string            `json:"paymentId"`
	PaymentProduct         string            `json:"paymentProduct,omitempty"`
	PaymentType            sca.PaymentType   `json:"paymentType"`
	TransactionStatus      TransactionStatus `json:"transactionStatus,omitempty"`
	DebtorAccount          AccountReference  `json:"debtorAccount"`
	CreditorAccount        AccountReference  `json:"creditorAccount"`
	CreditorName           string            `json:"creditorName,omitempty"`
	InstructedAmount       Amount            `json:"instructedAmount"`
	EndToEndIdentification string            `json:"endToEndIdentification,omitempty"`
	PsuIDDatas             []PsuIDData       `json:"psuIdDatas,omitempty"`
	TppInfo                TppInfo           `json:"tppInfo"`
}

// PaymentResponse is a payment found by redirect id, with the TPP redirect links.
type PaymentResponse struct {
	Payment           Payment `json:"payment"`
	AuthorisationID   string  `json:"authorisationId"`
	TppOkRedirectURI  string  `json:"tppOkRedirectUri"`
	TppNokRedirectURI string  `json:"tppNokRedirectUri"`
}

// Authorisation is the authoritative CMS view of one SCA session.
type Authorisation struct {
	AuthorisationID   string    `json:"authorisationId"`
	ScaStatus         ScaStatus `json:"scaStatus"`
	PsuID             string    `json:"psuId,omitempty"`
	AuthorisationType string    `json:"authorisationType,omitempty"`
	TppOkRedirectURI  string    `json:"tppOkRedirectUri,omitempty"`
	TppNokRedirectURI string    `json:"tppNokRedirectUri,omitempty"`
}

// AuthorisationStatusRequest moves an authorisation to Status.
type AuthorisationStatusRequest struct {
	ResourceID           string
	AuthorisationID      string
	Status               ScaStatus
	PSU                  PsuIDData
	AuthConfirmationCode string
}

type authenticationDataHolder struct {
	PsuID                string `json:"psuId,omitempty"`
	AuthConfirmationCode string `json:"authConfirmationCode,omitempty"`
}

// AisConsentRequestType selects how account access is granted.
type AisConsentRequestType string

const (
	RequestGlobal               AisConsentRequestType = "GLOBAL"
	RequestAllAvailableAccounts AisConsentRequestType = "ALL_AVAILABLE_ACCOUNTS"
	RequestDedicatedAccounts    AisConsentRequestType = "DEDICATED_ACCOUNTS"
	RequestBankOffered          AisConsentRequestType = "BANK_OFFERED"
)

// AccountAccess is the access granted by a consent, as stored at the CMS.
type AccountAccess struct {
	Accounts          []AccountReference `json:"accounts,omitempty"`
	Balances          []AccountReference `json:"balances,omitempty"`
	Transactions      []AccountReference `json:"transactions,omitempty"`
	AvailableAccounts string             `json:"availableAccounts,omitempty"`
	AllPsd2           string             `json:"allPsd2,omitempty"`
}

// AisConsent is an AIS or PIIS consent as stored at the CMS.
type AisConsent struct {
	ID                 string                `json:"id"`
	Status             ConsentStatus         `json:"consentStatus"`
	RequestType        AisConsentRequestType `json:"aisConsentRequestType,omitempty"`
	Access             AccountAccess         `json:"access"`
	FrequencyPerDay    int                   `json:"frequencyPerDay"`
	RecurringIndicator bool                  `json:"recurringIndicator"`
	ValidUntil         string                `json:"validUntil,omitempty"`
	LastActionDate     string                `json:"lastActionDate,omitempty"`
	CreationTimestamp  string                `json:"creationTimestamp,omitempty"`
	PsuIDDatas         []PsuIDData           `json:"psuIdDataList,omitempty"`
	TppInfo            TppInfo               `json:"tppInfo"`
}

// ConsentRedirect is a consent found by redirect id, with the TPP redirect links.
type ConsentRedirect struct {
	Consent           AisConsent `json:"consent"`
	AuthorisationID   string     `json:"authorisationId"`
	TppOkRedirectURI  string     `json:"tppOkRedirectUri"`
	TppNokRedirectURI string     `json:"tppNokRedirectUri"`
}

// AccountAccessRequest replaces a consent's access after the PSU chose accounts.
type AccountAccessRequest struct {
	AccountAccess   AccountAccess `json:"accountAccess"`
	ValidUntil      string        `json:"validUntil,omitempty"`
	FrequencyPerDay int           `json:"frequencyPerDay"`
	Combined        bool          `json:"combinedServiceIndicator,omitempty"`
	Recurring       bool          `json:"recurringIndicator"`
}

// ConsentPage is one page of a PSU's consents.
type ConsentPage struct {
	Consents   []AisConsent `json:"consents"`
	TotalItems int          `json:"totalItems"`
}

// CreatePiisConsentRequest creates a funds-confirmation consent.
type CreatePiisConsentRequest struct {
	Account                AccountReference `json:"account"`
	TppAuthorisationNumber string           `json:"tppAuthorisationNumber,omitempty"`
	ValidUntil             string           `json:"validUntil,omitempty"`
	CardNumber             string           `json:"cardNumber,omitempty"`
	CardExpiryDate         string           `json:"cardExpiryDate,omitempty"`
	CardInformation        string           `json:"cardInformation,omitempty"`
	RegistrationInfo       string           `json:"registrationInformation,omitempty"`
}

type createPiisConsentResponse struct {
	ConsentID string `json:"consentId"`
}

type aspspConsentData struct {
	ConsentID        string `json:"consentId,omitempty"`
	AspspConsentData string `json:"aspspConsentData"`
}

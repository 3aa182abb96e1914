// Package ports defines the collaborator interfaces the authorisation
// services depend on. Concrete clients live in internal/ledgers, internal/cms
// and internal/consentdata; tests use the generated mocks.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"oba/internal/cms"
	"oba/internal/ledgers"
	"oba/internal/reference"
	"oba/internal/sca"
	audit "oba/pkg/platform/audit"
)

// Ledgers is the core-banking collaborator. Every call authenticates with the
// access token carried by ctx (see restclient.WithAccessToken).
type Ledgers interface {
	Login(ctx context.Context, req ledgers.LoginRequest) (*sca.GlobalScaResponse, error)
	InitiatePayment(ctx context.Context, payment ledgers.Payment) (*sca.GlobalScaResponse, error)
	InitiatePmtCancellation(ctx context.Context, paymentID string) (*sca.GlobalScaResponse, error)
	Execution(ctx context.Context, opType sca.OpType, paymentID string) (*sca.GlobalScaResponse, error)
	StartSca(ctx context.Context, opr ledgers.StartScaOpr) (*sca.GlobalScaResponse, error)
	SelectMethod(ctx context.Context, authorisationID, methodID string) (*sca.GlobalScaResponse, error)
	ValidateScaCode(ctx context.Context, authorisationID, authCode string) (*sca.GlobalScaResponse, error)
	InitiateAisConsent(ctx context.Context, consent ledgers.AisConsent) (*sca.GlobalScaResponse, error)
	InitiatePiisConsent(ctx context.Context, consent ledgers.AisConsent) (*sca.GlobalScaResponse, error)
	ListAccounts(ctx context.Context) ([]ledgers.AccountDetails, error)
	OauthCode(ctx context.Context, redirectURI string) (string, error)
}

// PisCMS is the payment side of the CMS PSU API.
type PisCMS interface {
	CheckRedirectAndGetPayment(ctx context.Context, redirectID string) (*cms.PaymentResponse, error)
	CheckRedirectAndGetCancellation(ctx context.Context, redirectID string) (*cms.PaymentResponse, error)
	GetAuthorisationByAuthorisationID(ctx context.Context, authorisationID string) (*cms.Authorisation, error)
	UpdateAuthorisationStatus(ctx context.Context, req cms.AuthorisationStatusRequest) error
	UpdatePaymentStatus(ctx context.Context, paymentID string, status cms.TransactionStatus) error
	UpdatePsuInPayment(ctx context.Context, authorisationID string, psu cms.PsuIDData) error
}

// AisCMS is the consent side of the CMS PSU API.
type AisCMS interface {
	GetConsentIDByRedirectID(ctx context.Context, redirectID string) (*cms.ConsentRedirect, error)
	GetAuthorisationByAuthorisationID(ctx context.Context, authorisationID string) (*cms.Authorisation, error)
	PutAccountAccessInConsent(ctx context.Context, consentID string, req cms.AccountAccessRequest) error
	UpdateAuthorisationStatus(ctx context.Context, req cms.AuthorisationStatusRequest) error
	ConfirmConsent(ctx context.Context, consentID string) (bool, error)
	RevokeConsent(ctx context.Context, consentID string) (bool, error)
	GetConsentsForPsu(ctx context.Context, psuID string) ([]cms.AisConsent, error)
	GetConsentsForPsuPaged(ctx context.Context, psuID string, page, size int) (*cms.ConsentPage, error)
	CreatePiisConsent(ctx context.Context, psuID string, req cms.CreatePiisConsentRequest) (string, error)
}

// ConsentData persists the latest SCA response and the failed-login counter
// between browser round trips.
type ConsentData interface {
	Save(ctx context.Context, encryptedID string, resp *sca.GlobalScaResponse) error
	Load(ctx context.Context, encryptedID string) (*sca.GlobalScaResponse, error)
	IsFailedLogin(ctx context.Context, encryptedID string) (bool, error)
	UpdateLoginFailedCount(ctx context.Context, encryptedID string) (int, error)
}

// LoginAttempts enforces the per-session PSU login budget.
type LoginAttempts interface {
	CheckFailedCount(ctx context.Context, encryptedID string) error
	ResolveFailedLoginAttempt(ctx context.Context, encryptedID, resourceID, login, authorisationID string, opType sca.OpType) error
}

// IDCipher obfuscates CMS ids in URLs.
type IDCipher interface {
	Encrypt(id string) (string, error)
	Decrypt(encrypted string) (string, error)
}

// ReferencePolicy validates the correlation cookie against request ids.
type ReferencePolicy interface {
	FromRequest(encryptedID, authorisationID, cookie string) (*reference.ConsentReference, error)
}

// AuditPublisher records SCA events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

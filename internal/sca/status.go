// Package sca holds the strong customer authentication protocol types
// exchanged with the ledgers service, and the reducer that folds an SCA
// response into the authorize view.
package sca

// ScaStatus follows protocol progression
// RECEIVED -> PSUIDENTIFIED -> PSUAUTHENTICATED -> SCAMETHODSELECTED -> terminal.
type ScaStatus string

const (
	StatusReceived          ScaStatus = "RECEIVED"
	StatusPSUIdentified     ScaStatus = "PSUIDENTIFIED"
	StatusPSUAuthenticated  ScaStatus = "PSUAUTHENTICATED"
	StatusScaMethodSelected ScaStatus = "SCAMETHODSELECTED"
	StatusStarted           ScaStatus = "STARTED"
	StatusFinalised         ScaStatus = "FINALISED"
	StatusFailed            ScaStatus = "FAILED"
	StatusExempted          ScaStatus = "EXEMPTED"
	StatusUnconfirmed       ScaStatus = "UNCONFIRMED"
)

// ScaStatuses lists every known status.
var ScaStatuses = []ScaStatus{
	StatusReceived, StatusPSUIdentified, StatusPSUAuthenticated, StatusScaMethodSelected,
	StatusStarted, StatusFinalised, StatusFailed, StatusExempted, StatusUnconfirmed,
}

// IsTerminal reports FINALISED, FAILED or EXEMPTED.
func (s ScaStatus) IsTerminal() bool {
	switch s {
	case StatusFinalised, StatusFailed, StatusExempted:
		return true
	}
	return false
}

// AllowsOkRedirect reports whether the TPP ok redirect applies.
func (s ScaStatus) AllowsOkRedirect() bool {
	switch s {
	case StatusFinalised, StatusUnconfirmed, StatusExempted:
		return true
	}
	return false
}

// TransactionStatus is the ISO 20022 payment status.
type TransactionStatus string

const (
	TxAccepted                   TransactionStatus = "ACCP"
	TxAcceptedCreditSettled      TransactionStatus = "ACCC"
	TxAcceptedSettlement         TransactionStatus = "ACSP"
	TxAcceptedSettlementDone     TransactionStatus = "ACSC"
	TxAcceptedTechnical          TransactionStatus = "ACTC"
	TxAcceptedWithChange         TransactionStatus = "ACWC"
	TxAcceptedWithoutPosting     TransactionStatus = "ACWP"
	TxAcceptedFundsChecked       TransactionStatus = "ACFC"
	TxReceived                   TransactionStatus = "RCVD"
	TxPending                    TransactionStatus = "PDNG"
	TxRejected                   TransactionStatus = "RJCT"
	TxCancelled                  TransactionStatus = "CANC"
	TxPartiallyAccepted          TransactionStatus = "PART"
	TxPartiallyAcceptedTechnical TransactionStatus = "PATC"
)

// TransactionStatuses lists every known transaction status.
var TransactionStatuses = []TransactionStatus{
	TxAccepted, TxAcceptedCreditSettled, TxAcceptedSettlement, TxAcceptedSettlementDone,
	TxAcceptedTechnical, TxAcceptedWithChange, TxAcceptedWithoutPosting, TxAcceptedFundsChecked,
	TxReceived, TxPending, TxRejected, TxCancelled, TxPartiallyAccepted, TxPartiallyAcceptedTechnical,
}

// ConsentStatus is the lifecycle status of an AIS or PIIS consent.
type ConsentStatus string

const (
	ConsentReceived            ConsentStatus = "RECEIVED"
	ConsentRejected            ConsentStatus = "REJECTED"
	ConsentValid               ConsentStatus = "VALID"
	ConsentRevokedByPSU        ConsentStatus = "REVOKED_BY_PSU"
	ConsentExpired             ConsentStatus = "EXPIRED"
	ConsentTerminatedByTPP     ConsentStatus = "TERMINATED_BY_TPP"
	ConsentTerminatedByASPSP   ConsentStatus = "TERMINATED_BY_ASPSP"
	ConsentPartiallyAuthorised ConsentStatus = "PARTIALLY_AUTHORISED"
)

// ConsentStatuses lists every known consent status.
var ConsentStatuses = []ConsentStatus{
	ConsentReceived, ConsentRejected, ConsentValid, ConsentRevokedByPSU, ConsentExpired,
	ConsentTerminatedByTPP, ConsentTerminatedByASPSP, ConsentPartiallyAuthorised,
}

// OpType is the operation an SCA session authorises.
type OpType string

const (
	OpPayment       OpType = "PAYMENT"
	OpCancelPayment OpType = "CANCEL_PAYMENT"
	OpConsent       OpType = "CONSENT"
	OpLogin         OpType = "LOGIN"
)

// PaymentType is the payment shape held by the CMS.
type PaymentType string

const (
	PaymentSingle   PaymentType = "SINGLE"
	PaymentPeriodic PaymentType = "PERIODIC"
	PaymentBulk     PaymentType = "BULK"
)

package cms

import (
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
)

// ScaStatus is the CMS wire form of an authorisation status.
type ScaStatus string

const (
	ScaReceived          ScaStatus = "received"
	ScaPSUIdentified     ScaStatus = "psuIdentified"
	ScaPSUAuthenticated  ScaStatus = "psuAuthenticated"
	ScaScaMethodSelected ScaStatus = "scaMethodSelected"
	ScaStarted           ScaStatus = "started"
	ScaFinalised         ScaStatus = "finalised"
	ScaFailed            ScaStatus = "failed"
	ScaExempted          ScaStatus = "exempted"
	ScaUnconfirmed       ScaStatus = "unconfirmed"
)

// TransactionStatus is the CMS wire form of a payment status.
type TransactionStatus string

// ConsentStatus is the CMS wire form of a consent status.
type ConsentStatus string

const (
	ConsentReceived            ConsentStatus = "received"
	ConsentRejected            ConsentStatus = "rejected"
	ConsentValid               ConsentStatus = "valid"
	ConsentRevokedByPSU        ConsentStatus = "revokedByPsu"
	ConsentExpired             ConsentStatus = "expired"
	ConsentTerminatedByTPP     ConsentStatus = "terminatedByTpp"
	ConsentTerminatedByASPSP   ConsentStatus = "terminatedByAspsp"
	ConsentPartiallyAuthorised ConsentStatus = "partiallyAuthorised"
)

var scaToCms = map[sca.ScaStatus]ScaStatus{
	sca.StatusReceived:          ScaReceived,
	sca.StatusPSUIdentified:     ScaPSUIdentified,
	sca.StatusPSUAuthenticated:  ScaPSUAuthenticated,
	sca.StatusScaMethodSelected: ScaScaMethodSelected,
	sca.StatusStarted:           ScaStarted,
	sca.StatusFinalised:         ScaFinalised,
	sca.StatusFailed:            ScaFailed,
	sca.StatusExempted:          ScaExempted,
	sca.StatusUnconfirmed:       ScaUnconfirmed,
}

var txToCms = map[sca.TransactionStatus]TransactionStatus{
	sca.TxAccepted:                   "ACCP",
	sca.TxAcceptedCreditSettled:      "ACCC",
	sca.TxAcceptedSettlement:         "ACSP",
	sca.TxAcceptedSettlementDone:     "ACSC",
	sca.TxAcceptedTechnical:          "ACTC",
	sca.TxAcceptedWithChange:         "ACWC",
	sca.TxAcceptedWithoutPosting:     "ACWP",
	sca.TxAcceptedFundsChecked:       "ACFC",
	sca.TxReceived:                   "RCVD",
	sca.TxPending:                    "PDNG",
	sca.TxRejected:                   "RJCT",
	sca.TxCancelled:                  "CANC",
	sca.TxPartiallyAccepted:          "PART",
	sca.TxPartiallyAcceptedTechnical: "PATC",
}

var consentToCms = map[sca.ConsentStatus]ConsentStatus{
	sca.ConsentReceived:            ConsentReceived,
	sca.ConsentRejected:            ConsentRejected,
	sca.ConsentValid:               ConsentValid,
	sca.ConsentRevokedByPSU:        ConsentRevokedByPSU,
	sca.ConsentExpired:             ConsentExpired,
	sca.ConsentTerminatedByTPP:     ConsentTerminatedByTPP,
	sca.ConsentTerminatedByASPSP:   ConsentTerminatedByASPSP,
	sca.ConsentPartiallyAuthorised: ConsentPartiallyAuthorised,
}

var (
	scaFromCms     = invert(scaToCms)
	txFromCms      = invert(txToCms)
	consentFromCms = invert(consentToCms)
)

func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// FromScaStatus translates a ledgers SCA status to the CMS form.
func FromScaStatus(s sca.ScaStatus) (ScaStatus, error) {
	if v, ok := scaToCms[s]; ok {
		return v, nil
	}
	return "", dErrors.Newf(dErrors.CodeConversion, "unmapped sca status %q", s)
}

// ToSca translates a CMS authorisation status to the ledgers form.
func (s ScaStatus) ToSca() (sca.ScaStatus, error) {
	if v, ok := scaFromCms[s]; ok {
		return v, nil
	}
	return "", dErrors.Newf(dErrors.CodeConversion, "unmapped cms sca status %q", s)
}

// FromTransactionStatus translates a ledgers transaction status to the CMS form.
func FromTransactionStatus(s sca.TransactionStatus) (TransactionStatus, error) {
	if v, ok := txToCms[s]; ok {
		return v, nil
	}
	return "", dErrors.Newf(dErrors.CodeConversion, "unmapped transaction status %q", s)
}

// ToSca translates a CMS transaction status to the ledgers form.
func (s TransactionStatus) ToSca() (sca.TransactionStatus, error) {
	if v, ok := txFromCms[s]; ok {
		return v, nil
	}
	return "", dErrors.Newf(dErrors.CodeConversion, "unmapped cms transaction status %q", s)
}

// FromConsentStatus translates a consent status to the CMS form.
func FromConsentStatus(s sca.ConsentStatus) (ConsentStatus, error) {
	if v, ok := consentToCms[s]; ok {
		return v, nil
	}
	return "", dErrors.Newf(dErrors.CodeConversion, "unmapped consent status %q", s)
}

// ToSca translates a CMS consent status to the ledgers form.
func (s ConsentStatus) ToSca() (sca.ConsentStatus, error) {
	if v, ok := consentFromCms[s]; ok {
		return v, nil
	}
	return "", dErrors.Newf(dErrors.CodeConversion, "unmapped cms consent status %q", s)
}

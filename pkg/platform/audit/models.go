package audit

import (
	"context"
	"time"

	"oba/pkg/requestcontext"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategoryCompliance covers PSD2-relevant outcomes: authorised payments and
	// consents, revocations and confirmations.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers failed logins, exhausted attempt budgets and
	// rejected SCA codes.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine flow steps.
	CategoryOperations EventCategory = "operations"
)

// Severity levels for security events.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Event is emitted from the authorisation flows. Keep it transport-agnostic
// so stores and sinks can fan out.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	// Subject is the PSU login when known.
	Subject string `json:"subject,omitempty"`
	Action  string `json:"action"`
	// Resource is the encrypted payment or consent id. Raw CMS ids never
	// leave the service.
	Resource  string   `json:"resource,omitempty"`
	OpType    string   `json:"opType,omitempty"`
	ScaStatus string   `json:"scaStatus,omitempty"`
	Decision  string   `json:"decision,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	IP        string   `json:"ip,omitempty"`
	RequestID string   `json:"requestId,omitempty"`
	Severity  Severity `json:"severity,omitempty"`
}

type AuditEvent string

const (
	// Login events
	EventLoginSucceeded    AuditEvent = "login_succeeded"
	EventLoginFailed       AuditEvent = "login_failed"
	EventLoginAttemptsUsed AuditEvent = "login_attempts_exhausted"

	// SCA events
	EventScaMethodSelected AuditEvent = "sca_method_selected"
	EventScaCodeValidated  AuditEvent = "sca_code_validated"
	EventScaCodeRejected   AuditEvent = "sca_code_rejected"

	// Payment events
	EventPaymentAuthorised    AuditEvent = "payment_authorised"
	EventCancellationCreated  AuditEvent = "payment_cancellation_authorised"
	EventPaymentRedirectBack  AuditEvent = "payment_redirect_resolved"
	EventConsentRedirectBack  AuditEvent = "consent_redirect_resolved"
	EventConsentAuthorised    AuditEvent = "consent_authorised"
	EventConsentRevoked       AuditEvent = "consent_revoked"
	EventConsentConfirmed     AuditEvent = "consent_confirmed"
	EventPiisConsentCreated   AuditEvent = "piis_consent_created"
	EventConsentDataPurged    AuditEvent = "consent_data_purged"
	EventAccountAccessUpdated AuditEvent = "account_access_updated"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventPaymentAuthorised:   CategoryCompliance,
	EventCancellationCreated: CategoryCompliance,
	EventConsentAuthorised:   CategoryCompliance,
	EventConsentRevoked:      CategoryCompliance,
	EventConsentConfirmed:    CategoryCompliance,
	EventPiisConsentCreated:  CategoryCompliance,
	EventConsentDataPurged:   CategoryCompliance,

	EventLoginFailed:       CategorySecurity,
	EventLoginAttemptsUsed: CategorySecurity,
	EventScaCodeRejected:   CategorySecurity,

	EventLoginSucceeded:       CategoryOperations,
	EventScaMethodSelected:    CategoryOperations,
	EventScaCodeValidated:     CategoryOperations,
	EventPaymentRedirectBack:  CategoryOperations,
	EventConsentRedirectBack:  CategoryOperations,
	EventAccountAccessUpdated: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// NewEvent builds an event with its category filled in.
func NewEvent(action AuditEvent) Event {
	return Event{Category: action.Category(), Action: string(action)}
}

// NewRequestEvent is NewEvent plus the request id, client IP and request time
// carried by ctx. Outside a request the publisher stamps the time.
func NewRequestEvent(ctx context.Context, action AuditEvent) Event {
	event := NewEvent(action)
	event.IP = requestcontext.ClientIP(ctx)
	event.RequestID = requestcontext.RequestID(ctx)
	if t, ok := requestcontext.RequestTime(ctx); ok {
		event.Timestamp = t
	}
	return event
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Lister is implemented by stores that can read events back.
type Lister interface {
	ListBySubject(ctx context.Context, subject string) ([]Event, error)
}

// Emitter is the narrow interface services depend on.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// Package reference correlates an inbound browser redirect with the SCA
// session the TPP opened for it.
//
// At redirect entry the ids from the TPP link are signed into a short-lived
// cookie. Every later request names the encrypted resource id and the
// authorisation id in its path; they are accepted only if the cookie was
// issued for the same encrypted id, which prevents one session's redirect
// link being replayed against another.
package reference

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	dErrors "oba/pkg/domain-errors"
)

// ConsentType is the kind of resource an SCA session authorises.
type ConsentType string

const (
	TypeAIS             ConsentType = "AIS"
	TypePIIS            ConsentType = "PIIS"
	TypePIS             ConsentType = "PIS"
	TypePISCancellation ConsentType = "PIS_CANCELLATION"
)

func (t ConsentType) valid() bool {
	switch t {
	case TypeAIS, TypePIIS, TypePIS, TypePISCancellation:
		return true
	}
	return false
}

// ConsentReference identifies one pending SCA session.
type ConsentReference struct {
	EncryptedConsentID string
	AuthorizationID    string
	RedirectID         string
	ConsentType        ConsentType
	Cookie             string
}

type claims struct {
	RedirectID         string      `json:"red"`
	EncryptedConsentID string      `json:"eci"`
	ConsentType        ConsentType `json:"ct"`
	jwt.RegisteredClaims
}

// Policy issues and verifies consent reference cookies.
type Policy struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// Option configures a Policy.
type Option func(*Policy)

// WithClock sets the clock for testability.
func WithClock(now func() time.Time) Option {
	return func(p *Policy) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPolicy creates a policy signing cookies with key, valid for ttl.
func NewPolicy(key string, ttl time.Duration, opts ...Option) *Policy {
	p := &Policy{key: []byte(key), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TTL is the cookie lifetime.
func (p *Policy) TTL() time.Duration {
	return p.ttl
}

// FromURL builds the reference for a redirect entry and signs it into a cookie.
// The redirect id doubles as the authorisation id until the CMS reports another.
func (p *Policy) FromURL(redirectID string, consentType ConsentType, encryptedConsentID string) (*ConsentReference, error) {
	if redirectID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "missing redirect id")
	}
	if encryptedConsentID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "missing encrypted consent id")
	}
	if !consentType.valid() {
		return nil, dErrors.Newf(dErrors.CodeBadRequest, "unknown consent type %q", consentType)
	}

	now := p.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RedirectID:         redirectID,
		EncryptedConsentID: encryptedConsentID,
		ConsentType:        consentType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	})
	signed, err := token.SignedString(p.key)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign consent reference")
	}

	return &ConsentReference{
		EncryptedConsentID: encryptedConsentID,
		AuthorizationID:    redirectID,
		RedirectID:         redirectID,
		ConsentType:        consentType,
		Cookie:             signed,
	}, nil
}

// FromRequest verifies cookie against the ids named by the request.
//
// Missing or malformed input and a cookie issued for another encrypted id
// are bad requests; an expired cookie is a resource-expired error.
func (p *Policy) FromRequest(encryptedConsentID, authorisationID, cookie string) (*ConsentReference, error) {
	if encryptedConsentID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "missing encrypted consent id")
	}
	if authorisationID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "missing authorisation id")
	}
	if cookie == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "missing consent reference cookie")
	}

	var c claims
	_, err := jwt.ParseWithClaims(cookie, &c, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return p.key, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.Wrap(err, dErrors.CodeResourceExpired, "consent reference has expired")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid consent reference")
	}

	if c.EncryptedConsentID != encryptedConsentID {
		return nil, dErrors.New(dErrors.CodeBadRequest, "wrong consent id")
	}
	if c.RedirectID == "" || !c.ConsentType.valid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid consent reference")
	}

	return &ConsentReference{
		EncryptedConsentID: c.EncryptedConsentID,
		AuthorizationID:    authorisationID,
		RedirectID:         c.RedirectID,
		ConsentType:        c.ConsentType,
		Cookie:             cookie,
	}, nil
}

// RedirectLink holds the correlation ids carried by a TPP redirect link.
type RedirectLink struct {
	RedirectID  string
	EncryptedID string
}

// ParseRedirectLink reads redirectId and the encrypted resource id from a
// redirect query. Payment links carry encryptedPaymentId, consent links
// encryptedConsentId.
func ParseRedirectLink(q url.Values) (RedirectLink, error) {
	link := RedirectLink{RedirectID: strings.TrimSpace(q.Get("redirectId"))}
	link.EncryptedID = strings.TrimSpace(q.Get("encryptedConsentId"))
	if link.EncryptedID == "" {
		link.EncryptedID = strings.TrimSpace(q.Get("encryptedPaymentId"))
	}
	if link.RedirectID == "" {
		return RedirectLink{}, dErrors.New(dErrors.CodeBadRequest, "missing redirectId")
	}
	if link.EncryptedID == "" {
		return RedirectLink{}, dErrors.New(dErrors.CodeBadRequest, "missing encrypted resource id")
	}
	return link, nil
}

// LoginPageURL is the online banking login page for ref.
func LoginPageURL(page string, ref *ConsentReference) (string, error) {
	u, err := url.Parse(page)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "invalid login page url")
	}
	q := u.Query()
	q.Set("encryptedConsentId", ref.EncryptedConsentID)
	q.Set("authorisationId", ref.AuthorizationID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

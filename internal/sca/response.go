package sca

// AccessTokenClaims are the claims the ledgers service embeds in a bearer token.
type AccessTokenClaims struct {
	ID              string `json:"sub,omitempty"`
	Login           string `json:"login,omitempty"`
	Role            string `json:"role,omitempty"`
	TokenUsage      string `json:"token_usage,omitempty"`
	ScaID           string `json:"sca_id,omitempty"`
	AuthorisationID string `json:"authorisation_id,omitempty"`
	ConsentID       string `json:"consent_id,omitempty"`
	IssuedAt        int64  `json:"iat,omitempty"`
	ExpiresAt       int64  `json:"exp,omitempty"`
}

// BearerToken is an access/refresh token pair issued by the ledgers service.
type BearerToken struct {
	AccessToken  string             `json:"access_token"`
	TokenType    string             `json:"token_type,omitempty"`
	ExpiresIn    int                `json:"expires_in,omitempty"`
	RefreshToken string             `json:"refresh_token,omitempty"`
	Claims       *AccessTokenClaims `json:"accessTokenObject,omitempty"`
	Scopes       []string           `json:"scopes,omitempty"`
}

// Token returns the raw access token, or "" for a nil bearer.
func (b *BearerToken) Token() string {
	if b == nil {
		return ""
	}
	return b.AccessToken
}

// Login returns the PSU login embedded in the token claims.
func (b *BearerToken) Login() string {
	if b == nil || b.Claims == nil {
		return ""
	}
	return b.Claims.Login
}

// ScaUserData is one SCA method available to the PSU.
type ScaUserData struct {
	ID          string `json:"id"`
	ScaMethod   string `json:"scaMethod"`
	MethodValue string `json:"methodValue,omitempty"`
	Decoupled   bool   `json:"decoupled,omitempty"`
}

// ChallengeData describes the challenge presented for the selected method.
type ChallengeData struct {
	Image                 []byte   `json:"image,omitempty"`
	Data                  []string `json:"data,omitempty"`
	ImageLink             string   `json:"imageLink,omitempty"`
	OtpMaxLength          int      `json:"otpMaxLength,omitempty"`
	OtpFormat             string   `json:"otpFormat,omitempty"`
	AdditionalInformation string   `json:"additionalInformation,omitempty"`
}

// GlobalScaResponse is the payload every ledgers SCA operation returns.
type GlobalScaResponse struct {
	OpType                OpType            `json:"operationType,omitempty"`
	OperationObjectID     string            `json:"operationObjectId,omitempty"`
	AuthorisationID       string            `json:"authorisationId,omitempty"`
	ScaStatus             ScaStatus         `json:"scaStatus,omitempty"`
	TransactionStatus     TransactionStatus `json:"transactionStatus,omitempty"`
	ExpiresInSeconds      int               `json:"expiresInSeconds,omitempty"`
	MultilevelScaRequired bool              `json:"multilevelScaRequired,omitempty"`
	PartiallyAuthorised   bool              `json:"partiallyAuthorised,omitempty"`
	ScaMethods            []ScaUserData     `json:"scaMethods,omitempty"`
	ChallengeData         *ChallengeData    `json:"challengeData,omitempty"`
	PsuMessage            string            `json:"psuMessage,omitempty"`
	Bearer                *BearerToken      `json:"bearerToken,omitempty"`
	AuthConfirmationCode  string            `json:"authConfirmationCode,omitempty"`
}

// Token returns the bearer access token, or "".
func (r *GlobalScaResponse) Token() string {
	if r == nil {
		return ""
	}
	return r.Bearer.Token()
}

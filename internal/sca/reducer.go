package sca

// AuthorizeState is the SCA portion of the authorize view returned to the
// online banking frontend.
type AuthorizeState struct {
	OpType          OpType         `json:"operationType,omitempty"`
	AuthorisationID string         `json:"authorisationId,omitempty"`
	ScaStatus       ScaStatus      `json:"scaStatus,omitempty"`
	ScaMethods      []ScaUserData  `json:"scaMethods,omitempty"`
	ChallengeData   *ChallengeData `json:"challengeData,omitempty"`
	PsuMessage      string         `json:"psuMessage,omitempty"`
}

// Reduce folds resp into state. Every SCA field is replaced by the
// response's value, including zero values; nothing from the previous state
// survives. The result depends only on resp, so applying the same response
// twice yields the same state. A nil response leaves state unchanged.
func Reduce(state AuthorizeState, resp *GlobalScaResponse) AuthorizeState {
	if resp == nil {
		return state
	}
	return AuthorizeState{
		OpType:          resp.OpType,
		AuthorisationID: resp.AuthorisationID,
		ScaStatus:       resp.ScaStatus,
		ScaMethods:      resp.ScaMethods,
		ChallengeData:   resp.ChallengeData,
		PsuMessage:      resp.PsuMessage,
	}
}

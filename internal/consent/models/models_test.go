package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oba/internal/cms"
	"oba/internal/reference"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name                          string
		index, size, total            int
		wantPages                     int
		wantPrev, wantNext, wantFirst bool
		wantLast                      bool
	}{
		{name: "single partial page", index: 0, size: 25, total: 3, wantPages: 1, wantFirst: true, wantLast: true},
		{name: "middle page", index: 1, size: 2, total: 5, wantPages: 3, wantPrev: true, wantNext: true},
		{name: "last exact page", index: 1, size: 2, total: 4, wantPages: 2, wantPrev: true, wantLast: true},
		{name: "empty listing", index: 0, size: 25, total: 0, wantPages: 0, wantFirst: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage[string](tt.index, tt.size, tt.total, nil)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantPrev, page.PreviousPage)
			assert.Equal(t, tt.wantNext, page.NextPage)
			assert.Equal(t, tt.wantFirst, page.FirstPage)
			assert.Equal(t, tt.wantLast, page.LastPage)
			assert.NotNil(t, page.Content)
		})
	}
}

func TestNewConsentWorkflow(t *testing.T) {
	ref := &reference.ConsentReference{EncryptedConsentID: "ENC", AuthorizationID: "AUTH_REF"}

	t.Run("defaults to received", func(t *testing.T) {
		w, err := NewConsentWorkflow(&cms.ConsentRedirect{Consent: cms.AisConsent{ID: "C1"}}, ref)
		require.NoError(t, err)
		assert.Equal(t, sca.ConsentReceived, w.ConsentStatus)
		assert.Equal(t, "AUTH_REF", w.AuthID())
		assert.Nil(t, w.BearerToken())
	})

	t.Run("maps cms status", func(t *testing.T) {
		w, err := NewConsentWorkflow(&cms.ConsentRedirect{Consent: cms.AisConsent{ID: "C1", Status: cms.ConsentValid}}, ref)
		require.NoError(t, err)
		assert.Equal(t, sca.ConsentValid, w.ConsentStatus)
	})

	t.Run("unknown status is a conversion error", func(t *testing.T) {
		_, err := NewConsentWorkflow(&cms.ConsentRedirect{Consent: cms.AisConsent{Status: "bogus"}}, ref)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConversion))
	})
}

func TestProcessSCAResponseReplacesState(t *testing.T) {
	w, err := NewConsentWorkflow(&cms.ConsentRedirect{Consent: cms.AisConsent{ID: "C1"}, AuthorisationID: "AUTH_1"}, &reference.ConsentReference{})
	require.NoError(t, err)
	w.AttachBearer(&sca.BearerToken{AccessToken: "old"})

	w.ProcessSCAResponse(&sca.GlobalScaResponse{
		AuthorisationID: "AUTH_2",
		ScaStatus:       sca.StatusPSUIdentified,
		Bearer:          &sca.BearerToken{AccessToken: "new"},
	})
	assert.Equal(t, "new", w.BearerToken().Token())
	assert.Equal(t, "AUTH_2", w.AuthID())
	assert.Equal(t, sca.StatusPSUIdentified, w.AuthResponse.ScaStatus)

	w.ProcessSCAResponse(nil)
	assert.Equal(t, "new", w.BearerToken().Token())
}

func TestToLedgersConsent(t *testing.T) {
	c := ToLedgersConsent(cms.AisConsent{
		ID:         "C1",
		PsuIDDatas: []cms.PsuIDData{{PsuID: "anton.brueckner"}, {PsuID: "other"}},
		TppInfo:    cms.TppInfo{AuthorisationNumber: "PSDDE-1"},
		Access: cms.AccountAccess{
			Accounts: []cms.AccountReference{{IBAN: "DE1"}, {IBAN: "DE2"}},
			AllPsd2:  "ALL_ACCOUNTS",
		},
	})
	assert.Equal(t, "anton.brueckner", c.Login)
	assert.Equal(t, "PSDDE-1", c.TppID)
	assert.Equal(t, []string{"DE1", "DE2"}, c.Access.Accounts)
	assert.Nil(t, c.Access.Balances)
	assert.Equal(t, "ALL_ACCOUNTS", c.Access.AllPsd2)
}

package sca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "oba/pkg/domain-errors"
)

func TestAuthConfirmationRedirectURI(t *testing.T) {
	t.Run("no code keeps uri", func(t *testing.T) {
		got, err := AuthConfirmationRedirectURI("https://tpp.example/ok?state=1", "")
		require.NoError(t, err)
		assert.Equal(t, "https://tpp.example/ok?state=1", got)
	})

	t.Run("code appended to existing query", func(t *testing.T) {
		got, err := AuthConfirmationRedirectURI("https://tpp.example/ok?state=1", "c0de")
		require.NoError(t, err)
		assert.Equal(t, "https://tpp.example/ok?authConfirmationCode=c0de&state=1", got)
	})

	t.Run("unparsable uri is bad request", func(t *testing.T) {
		_, err := AuthConfirmationRedirectURI("http://[::1", "c0de")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

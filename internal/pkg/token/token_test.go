//go:build unit

package token_test

import (
	"encoding/base64"
	"testing"
	"time"

	"ferias-api/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tok := token.Issue("maria.silva", issued)
	require.NotEmpty(t, tok)

	raw, err := base64.StdEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Equal(t, "maria.silva:1717243200000", string(raw))
}

func TestParse(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("round trip", func(t *testing.T) {
		username, at, err := token.Parse(token.Issue("maria.silva", issued))
		require.NoError(t, err)
		assert.Equal(t, "maria.silva", username)
		assert.True(t, at.Equal(issued))
	})

	t.Run("username containing colon", func(t *testing.T) {
		username, _, err := token.Parse(token.Issue("dom:admin", issued))
		require.NoError(t, err)
		assert.Equal(t, "dom:admin", username)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, tok := range []string{"", "not base64!!", base64.StdEncoding.EncodeToString([]byte("no-separator"))} {
			_, _, err := token.Parse(tok)
			require.ErrorIs(t, err, token.ErrMalformedToken)
		}
	})
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	signed, err := Sign("sess-123", time.Hour)
	require.NoError(t, err)

	claims, err := Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "sess-123", claims.SessionID)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token")
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	signed, err := Sign("sess-123", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(signed)
	assert.Error(t, err)
}

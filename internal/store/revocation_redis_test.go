package store

import (
	"context"
	"testing"
	"time"

	"github.com/Schmolo/nhplus-umsetzung/internal/config"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRevocationList(t *testing.T) (RevocationList, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	list, err := NewRedisRevocationList(context.Background(), config.Redis{Address: mr.Addr()}, logger.Nop())
	require.NoError(t, err)

	return list, mr
}

func TestRevoke_TokenBecomesRevoked(t *testing.T) {
	list, _ := newTestRevocationList(t)
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "token-1", time.Now().Add(time.Hour)))

	revoked, err := list.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestIsRevoked_UnknownTokenIsNotRevoked(t *testing.T) {
	list, _ := newTestRevocationList(t)

	revoked, err := list.IsRevoked(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevoke_ExpiredTokenIsNotRecorded(t *testing.T) {
	list, mr := newTestRevocationList(t)
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "stale", time.Now().Add(-time.Minute)))

	if mr.Exists(revocationKeyPrefix + "stale") {
		t.Error("expired token must not be written to the revocation list")
	}
}

func TestRevoke_EntryExpiresWithToken(t *testing.T) {
	list, mr := newTestRevocationList(t)
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "short-lived", time.Now().Add(time.Minute)))

	mr.FastForward(2 * time.Minute)

	revoked, err := list.IsRevoked(ctx, "short-lived")
	require.NoError(t, err)
	assert.False(t, revoked, "revocation entry must expire together with the token")
}

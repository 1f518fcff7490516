package crypto

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAndVerify_RoundTrip(t *testing.T) {
	plaintexts := []string{"secret123", "pässwörd", "a", strings.Repeat("x", 256)}

	for _, plaintext := range plaintexts {
		stored, err := Derive(plaintext)
		require.NoError(t, err)

		ok, err := Verify(plaintext, stored)
		require.NoError(t, err)
		assert.True(t, ok, "derived credential must verify for %q", plaintext)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	stored, err := Derive("secret123")
	require.NoError(t, err)

	ok, err := Verify("secret124", stored)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDerive_SaltRandomness(t *testing.T) {
	first, err := Derive("secret123")
	require.NoError(t, err)

	second, err := Derive("secret123")
	require.NoError(t, err)

	if first == second {
		t.Fatalf("two derivations of the same plaintext produced identical credentials: %s", first)
	}

	for _, stored := range []string{first, second} {
		ok, err := Verify("secret123", stored)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestDerive_EncodedShape(t *testing.T) {
	stored, err := Derive("secret123")
	require.NoError(t, err)

	parts := strings.Split(stored, ":")
	require.Len(t, parts, 2, "credential must be exactly salt:hash")
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])
}

func TestVerify_MalformedCredential(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{name: "no delimiter", stored: "b25seW9uZXBhcnQ="},
		{name: "empty salt part", stored: ":c29tZWhhc2g="},
		{name: "empty hash part", stored: "c29tZXNhbHQ=:"},
		{name: "salt not base64", stored: "not-base64!!:c29tZWhhc2g="},
		{name: "extra delimiter", stored: "c29tZXNhbHQ=:c29tZWhhc2g=:dHJhaWxlcg=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Verify("secret123", tt.stored)
			assert.False(t, ok)
			if !errors.Is(err, ErrMalformedCredential) {
				t.Errorf("expected ErrMalformedCredential, got %v", err)
			}
		})
	}
}

func TestVerify_EmptyInputsAreFailuresNotErrors(t *testing.T) {
	stored, err := Derive("secret123")
	require.NoError(t, err)

	ok, err := Verify("", stored)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Verify("secret123", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

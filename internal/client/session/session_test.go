package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsLoggedOutSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Load(path)

	require.NoError(t, err)
	assert.False(t, s.LoggedIn())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	s.Token = "issued-token"
	s.CaregiverID = 42
	s.DisplayName = "Alice Schmidt"
	s.Admin = true
	require.NoError(t, s.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.LoggedIn())
	assert.Equal(t, "issued-token", loaded.Token)
	assert.Equal(t, int64(42), loaded.CaregiverID)
	assert.Equal(t, "Alice Schmidt", loaded.DisplayName)
	assert.True(t, loaded.Admin)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	s.Token = "issued-token"
	require.NoError(t, s.Save())

	require.NoError(t, s.Clear())
	assert.False(t, s.LoggedIn())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.False(t, loaded.LoggedIn())
}

func TestClear_NoFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	require.NoError(t, s.Clear())
}

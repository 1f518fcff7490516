package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Schmolo/nhplus-umsetzung/internal/audit"
	"github.com/Schmolo/nhplus-umsetzung/internal/crypto"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "nhplus-test"
)

func newTestAuthService(t *testing.T, repo *fakeCaregiverRepo, revoked *fakeRevocationList) AuthService {
	t.Helper()
	return NewAuthService(repo, revoked, audit.NopTrail(), testSignKey, testIssuer, time.Hour, logger.Nop())
}

func seedCaregiver(t *testing.T, repo *fakeCaregiverRepo, username, password string, admin bool) models.Caregiver {
	t.Helper()

	hash, err := crypto.Derive(password)
	require.NoError(t, err)

	caregiver := models.Caregiver{
		PersonName:   models.PersonName{FirstName: "Alice", Surname: "Schmidt"},
		Username:     username,
		PasswordHash: hash,
		Admin:        admin,
	}
	created, err := repo.CreateCaregiver(context.Background(), caregiver)
	require.NoError(t, err)
	return created
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeCaregiverRepo()
	caregiver := seedCaregiver(t, repo, "alice", "secret123", true)
	svc := newTestAuthService(t, repo, newFakeRevocationList())

	identity, err := svc.Login(context.Background(), "alice", "secret123")

	require.NoError(t, err)
	assert.Equal(t, caregiver.CaregiverID, identity.CaregiverID)
	assert.Equal(t, "Alice Schmidt", identity.DisplayName)
	assert.True(t, identity.Admin)
}

func TestLogin_UnknownUsernameAndWrongPasswordAreIndistinguishable(t *testing.T) {
	repo := newFakeCaregiverRepo()
	seedCaregiver(t, repo, "alice", "secret123", false)
	svc := newTestAuthService(t, repo, newFakeRevocationList())

	_, errUnknown := svc.Login(context.Background(), "nobody", "secret123")
	_, errWrongPW := svc.Login(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, errUnknown, ErrAuthenticationFailed)
	assert.ErrorIs(t, errWrongPW, ErrAuthenticationFailed)
	assert.Equal(t, errUnknown.Error(), errWrongPW.Error())
}

func TestLogin_EmptyInputs(t *testing.T) {
	repo := newFakeCaregiverRepo()
	seedCaregiver(t, repo, "alice", "secret123", false)
	svc := newTestAuthService(t, repo, newFakeRevocationList())

	_, err := svc.Login(context.Background(), "", "secret123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_LockedAccount(t *testing.T) {
	repo := newFakeCaregiverRepo()
	caregiver := seedCaregiver(t, repo, "alice", "secret123", false)
	caregiver.Locked = true
	require.NoError(t, repo.UpdateCaregiver(context.Background(), caregiver))
	svc := newTestAuthService(t, repo, newFakeRevocationList())

	_, err := svc.Login(context.Background(), "alice", "secret123")

	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_MalformedStoredCredential(t *testing.T) {
	repo := newFakeCaregiverRepo()
	repo.byUsername["alice"] = models.Caregiver{
		CaregiverID:  1,
		PersonName:   models.PersonName{FirstName: "Alice", Surname: "Schmidt"},
		Username:     "alice",
		PasswordHash: "not-a-credential",
	}
	svc := newTestAuthService(t, repo, newFakeRevocationList())

	_, err := svc.Login(context.Background(), "alice", "secret123")

	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_RepositoryFailureIsNotAnAuthVerdict(t *testing.T) {
	repo := newFakeCaregiverRepo()
	repo.findErr = store.ErrExecutingQuery
	svc := newTestAuthService(t, repo, newFakeRevocationList())

	_, err := svc.Login(context.Background(), "alice", "secret123")

	// A storage outage must stay distinguishable from a rejected login so
	// callers can retry instead of reporting bad credentials.
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuthenticationFailed)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestCreateToken_And_ParseToken(t *testing.T) {
	repo := newFakeCaregiverRepo()
	svc := newTestAuthService(t, repo, newFakeRevocationList())
	identity := models.Identity{CaregiverID: 42, DisplayName: "Alice Schmidt", Admin: true}

	token, err := svc.CreateToken(context.Background(), identity)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)

	caregiverID, err := parsed.GetCaregiverID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), caregiverID)
	assert.True(t, parsed.Admin)
	assert.NotEmpty(t, parsed.ID)
}

func TestLogout_RevokesToken(t *testing.T) {
	repo := newFakeCaregiverRepo()
	revoked := newFakeRevocationList()
	svc := newTestAuthService(t, repo, revoked)

	token, err := svc.CreateToken(context.Background(), models.Identity{CaregiverID: 42})
	require.NoError(t, err)
	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), parsed))

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(t, newFakeCaregiverRepo(), newFakeRevocationList())

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestRegisterCaregiver_AdminOnly(t *testing.T) {
	repo := newFakeCaregiverRepo()
	svc := newTestAuthService(t, repo, newFakeRevocationList())

	_, err := svc.RegisterCaregiver(context.Background(), models.Identity{Admin: false}, models.Caregiver{Username: "bob"}, "pw")
	assert.ErrorIs(t, err, ErrForbidden)

	created, err := svc.RegisterCaregiver(context.Background(), models.Identity{Admin: true}, models.Caregiver{
		PersonName: models.PersonName{FirstName: "Bob", Surname: "Meyer"},
		Username:   "bob",
	}, "hunter22")
	require.NoError(t, err)
	assert.NotZero(t, created.CaregiverID)

	// The stored credential must verify against the chosen password and
	// never be the plaintext itself.
	assert.NotEqual(t, "hunter22", created.PasswordHash)
	ok, err := crypto.Verify("hunter22", created.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChangePassword_Authorization(t *testing.T) {
	repo := newFakeCaregiverRepo()
	svc := newTestAuthService(t, repo, newFakeRevocationList())

	err := svc.ChangePassword(context.Background(), models.Identity{CaregiverID: 1}, 2, "newpw")
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.ChangePassword(context.Background(), models.Identity{CaregiverID: 1}, 1, "newpw"))
	require.NoError(t, svc.ChangePassword(context.Background(), models.Identity{CaregiverID: 1, Admin: true}, 2, "newpw"))

	hash := repo.updatedPW[1]
	ok, err := crypto.Verify("newpw", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChangePassword_EmptyPassword(t *testing.T) {
	svc := newTestAuthService(t, newFakeCaregiverRepo(), newFakeRevocationList())

	err := svc.ChangePassword(context.Background(), models.Identity{CaregiverID: 1}, 1, "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

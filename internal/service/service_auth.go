package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Schmolo/nhplus-umsetzung/internal/audit"
	"github.com/Schmolo/nhplus-umsetzung/internal/crypto"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
	"github.com/Schmolo/nhplus-umsetzung/internal/utils"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// authService implements AuthService over the caregiver repository, the
// session revocation list and the audit trail.
type authService struct {
	caregivers    store.CaregiverRepository
	revoked       store.RevocationList
	trail         *audit.Trail
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	logger        *logger.Logger
}

// NewAuthService assembles an AuthService. Token parameters come from the
// application config.
func NewAuthService(caregivers store.CaregiverRepository, revoked store.RevocationList, trail *audit.Trail, signKey, issuer string, duration time.Duration, log *logger.Logger) AuthService {
	return &authService{
		caregivers:    caregivers,
		revoked:       revoked,
		trail:         trail,
		tokenSignKey:  signKey,
		tokenIssuer:   issuer,
		tokenDuration: duration,
		logger:        log,
	}
}

// Login authenticates a caregiver by username and password.
//
// The account lookup happens first; only when an account exists is the
// stored credential read and verified. An unknown username, a wrong
// password, a locked account and a malformed stored credential all return
// the same ErrAuthenticationFailed, so a caller cannot probe which
// usernames exist.
func (s *authService) Login(ctx context.Context, username, password string) (models.Identity, error) {
	log := s.logger

	if username == "" || password == "" {
		return models.Identity{}, ErrAuthenticationFailed
	}

	caregiver, err := s.caregivers.FindCaregiverByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return models.Identity{}, ErrAuthenticationFailed
		}
		// A persistence failure is not an authentication verdict; it
		// surfaces as-is so callers can distinguish outage from rejection.
		log.Err(err).Str("func", "Login").Msg("caregiver lookup failed")
		return models.Identity{}, fmt.Errorf("finding caregiver account: %w", err)
	}

	if caregiver.Locked {
		return models.Identity{}, ErrAuthenticationFailed
	}

	ok, err := crypto.Verify(password, caregiver.PasswordHash)
	if err != nil {
		if errors.Is(err, crypto.ErrMalformedCredential) {
			// Stored credential is corrupt. That is a data-integrity
			// problem worth surfacing in the logs, but the caller still
			// only sees a failed login.
			log.Error().Str("func", "Login").Int64("caregiver_id", caregiver.CaregiverID).Msg("stored credential is malformed")
			return models.Identity{}, ErrAuthenticationFailed
		}
		log.Err(err).Str("func", "Login").Msg("credential verification failed")
		return models.Identity{}, fmt.Errorf("verifying credential: %w", err)
	}
	if !ok {
		return models.Identity{}, ErrAuthenticationFailed
	}

	identity := models.Identity{
		CaregiverID: caregiver.CaregiverID,
		DisplayName: caregiver.FullName(),
		Admin:       caregiver.Admin,
	}
	s.trail.Record(identity, audit.ActionLogin, models.KindCaregiver, caregiver.CaregiverID)

	return identity, nil
}

// CreateToken issues a signed session token for the identity.
func (s *authService) CreateToken(_ context.Context, identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateSessionToken(s.tokenIssuer, identity.CaregiverID, identity.Admin, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		s.logger.Err(err).Str("func", "CreateToken").Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return token, nil
}

// ParseToken validates the raw token string and rejects revoked sessions.
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	revoked, err := s.revoked.IsRevoked(ctx, token.ID)
	if err != nil {
		s.logger.Err(err).Str("func", "ParseToken").Msg("revocation check failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	if revoked {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Logout puts the token's jti on the revocation list until the token would
// have expired anyway.
func (s *authService) Logout(ctx context.Context, token models.Token) error {
	var expiresAt time.Time
	if token.ExpiresAt != nil {
		expiresAt = token.ExpiresAt.Time
	}
	if err := s.revoked.Revoke(ctx, token.ID, expiresAt); err != nil {
		s.logger.Err(err).Str("func", "Logout").Msg("token revocation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	caregiverID, _ := token.GetCaregiverID()
	s.trail.Record(models.Identity{CaregiverID: caregiverID, Admin: token.Admin}, audit.ActionLogout, models.KindCaregiver, caregiverID)
	return nil
}

// RegisterCaregiver creates a new caregiver account. Only administrators may
// register accounts.
func (s *authService) RegisterCaregiver(ctx context.Context, actor models.Identity, caregiver models.Caregiver, password string) (models.Caregiver, error) {
	if !actor.Admin {
		return models.Caregiver{}, ErrForbidden
	}
	if caregiver.Username == "" || password == "" {
		return models.Caregiver{}, ErrInvalidDataProvided
	}

	hash, err := crypto.Derive(password)
	if err != nil {
		s.logger.Err(err).Str("func", "RegisterCaregiver").Msg("credential derivation failed")
		return models.Caregiver{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	caregiver.PasswordHash = hash

	created, err := s.caregivers.CreateCaregiver(ctx, caregiver)
	if err != nil {
		return models.Caregiver{}, err
	}

	s.trail.Record(actor, audit.ActionRegister, models.KindCaregiver, created.CaregiverID)
	return created, nil
}

// ChangePassword replaces the stored credential of a caregiver account.
func (s *authService) ChangePassword(ctx context.Context, actor models.Identity, caregiverID int64, newPassword string) error {
	if actor.CaregiverID != caregiverID && !actor.Admin {
		return ErrForbidden
	}
	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	hash, err := crypto.Derive(newPassword)
	if err != nil {
		s.logger.Err(err).Str("func", "ChangePassword").Msg("credential derivation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.caregivers.UpdatePasswordHash(ctx, caregiverID, hash); err != nil {
		return err
	}

	s.trail.Record(actor, audit.ActionPassChange, models.KindCaregiver, caregiverID)
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// caregiverRepository is the SQL-backed implementation of
// [CaregiverRepository]. Besides ordinary record keeping it serves as the
// credential lookup collaborator for authentication: the stored
// password_hash column carries the encoded "salt:hash" credential.
type caregiverRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCaregiverRepository constructs a [CaregiverRepository] backed by the
// provided database connection and logger.
func NewCaregiverRepository(db *DB, log *logger.Logger) CaregiverRepository {
	log.Debug().Msg("creating caregiver repository")
	return &caregiverRepository{
		db:     db,
		logger: log,
	}
}

var caregiverColumns = []string{"caregiver_id", "username", "firstname", "surname", "date_of_birth", "phone_number", "password_hash", "is_admin", "locked", "lock_expiry"}

// CreateCaregiver persists a new caregiver account and returns it with the
// server-assigned CaregiverID.
//
// Error handling:
//   - unique-constraint violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped as ErrExecutingStatement.
func (r *caregiverRepository) CreateCaregiver(ctx context.Context, caregiver models.Caregiver) (models.Caregiver, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert("caregiver").
		Columns("username", "firstname", "surname", "date_of_birth", "phone_number", "password_hash", "is_admin").
		Values(caregiver.Username, caregiver.FirstName, caregiver.Surname, caregiver.DateOfBirth, caregiver.PhoneNumber, caregiver.PasswordHash, caregiver.Admin).
		Suffix("RETURNING caregiver_id").
		ToSql()
	if err != nil {
		return models.Caregiver{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&caregiver.CaregiverID); err != nil {
		log.Err(err).Str("func", "*caregiverRepository.CreateCaregiver").Msg("error: inserting caregiver")

		if isUniqueViolation(err) {
			return models.Caregiver{}, ErrUsernameAlreadyExists
		}
		return models.Caregiver{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return caregiver, nil
}

// FindCaregiverByUsername retrieves the caregiver account whose username
// matches exactly. It is the credential lookup used by the login flow and
// therefore returns locked accounts too; the caller decides what a locked
// account means for authentication.
//
// Returns ErrRecordNotFound when no account with that username exists.
func (r *caregiverRepository) FindCaregiverByUsername(ctx context.Context, username string) (models.Caregiver, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(caregiverColumns...).
		From("caregiver").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.Caregiver{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	caregiver, err := scanCaregiver(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Caregiver{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*caregiverRepository.FindCaregiverByUsername").Msg("error: scanning caregiver")
		return models.Caregiver{}, err
	}

	return caregiver, nil
}

// ListCaregivers returns all caregiver records that are not retention-locked.
func (r *caregiverRepository) ListCaregivers(ctx context.Context) ([]models.Caregiver, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(caregiverColumns...).
		From("caregiver").
		Where(sq.Eq{"locked": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*caregiverRepository.ListCaregivers").Msg("error: querying caregivers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var caregivers []models.Caregiver
	for rows.Next() {
		caregiver, err := scanCaregiver(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		caregivers = append(caregivers, caregiver)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return caregivers, nil
}

// UpdateCaregiver overwrites the editable fields of an existing caregiver
// record. Credential and lock columns are managed by dedicated operations
// and stay untouched here.
func (r *caregiverRepository) UpdateCaregiver(ctx context.Context, caregiver models.Caregiver) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update("caregiver").
		Set("firstname", caregiver.FirstName).
		Set("surname", caregiver.Surname).
		Set("date_of_birth", caregiver.DateOfBirth).
		Set("phone_number", caregiver.PhoneNumber).
		Set("is_admin", caregiver.Admin).
		Where(sq.Eq{"caregiver_id": caregiver.CaregiverID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*caregiverRepository.UpdateCaregiver").Msg("error: updating caregiver")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// UpdatePasswordHash replaces the stored credential of an account. The new
// value must already be the encoded "salt:hash" form produced by the crypto
// package; plaintext never reaches this layer.
func (r *caregiverRepository) UpdatePasswordHash(ctx context.Context, caregiverID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update("caregiver").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"caregiver_id": caregiverID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*caregiverRepository.UpdatePasswordHash").Msg("error: updating password hash")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func scanCaregiver(row rowScanner) (models.Caregiver, error) {
	var caregiver models.Caregiver
	var lockExpiry sql.NullTime

	err := row.Scan(
		&caregiver.CaregiverID,
		&caregiver.Username,
		&caregiver.FirstName,
		&caregiver.Surname,
		&caregiver.DateOfBirth,
		&caregiver.PhoneNumber,
		&caregiver.PasswordHash,
		&caregiver.Admin,
		&caregiver.Locked,
		&lockExpiry,
	)
	if err != nil {
		return models.Caregiver{}, err
	}

	if lockExpiry.Valid {
		caregiver.LockExpiry = &lockExpiry.Time
	}

	return caregiver, nil
}

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Schmolo/nhplus-umsetzung/internal/clock"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// RetentionYears is the fixed retention period applied when a record is
// locked: the lock expiry is set to the lock date plus this many years.
const RetentionYears = 10

// lockStore is the generic [LockStore] implementation shared by all three
// entity kinds. It is parameterised by table and id column instead of being
// duplicated per kind.
type lockStore struct {
	db       *DB
	clock    clock.Clock
	logger   *logger.Logger
	kind     string
	table    string
	idColumn string
}

func newLockStore(db *DB, clk clock.Clock, log *logger.Logger, kind, table, idColumn string) *lockStore {
	log.Debug().Str("kind", kind).Msg("creating lock store")
	return &lockStore{
		db:       db,
		clock:    clk,
		logger:   log,
		kind:     kind,
		table:    table,
		idColumn: idColumn,
	}
}

// NewPatientLockStore constructs the [LockStore] for patient records.
func NewPatientLockStore(db *DB, clk clock.Clock, log *logger.Logger) LockStore {
	return newLockStore(db, clk, log, models.KindPatient, "patient", "patient_id")
}

// NewCaregiverLockStore constructs the [LockStore] for caregiver records.
func NewCaregiverLockStore(db *DB, clk clock.Clock, log *logger.Logger) LockStore {
	return newLockStore(db, clk, log, models.KindCaregiver, "caregiver", "caregiver_id")
}

// NewTreatmentLockStore constructs the [LockStore] for treatment records.
func NewTreatmentLockStore(db *DB, clk clock.Clock, log *logger.Logger) LockStore {
	return newLockStore(db, clk, log, models.KindTreatment, "treatment", "treatment_id")
}

// Kind implements [LockStore].
func (s *lockStore) Kind() string {
	return s.kind
}

// Lock implements [LockStore]. It runs one atomic UPDATE that sets the locked
// flag and the expiry date; re-locking an already-locked record refreshes the
// expiry to the full retention period from the current date.
func (s *lockStore) Lock(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	expiry := clock.Date(s.clock.Now()).AddDate(RetentionYears, 0, 0)

	query, args, err := s.db.Builder().
		Update(s.table).
		Set("locked", true).
		Set("lock_expiry", expiry).
		Where(sq.Eq{s.idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("kind", s.kind).Int64("id", id).Msg("error locking record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	log.Info().Str("kind", s.kind).Int64("id", id).Time("lock_expiry", expiry).Msg("record locked")
	return nil
}

// ListLocked implements [LockStore].
func (s *lockStore) ListLocked(ctx context.Context) ([]models.LockedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.Builder().
		Select(s.idColumn, "lock_expiry").
		From(s.table).
		Where(sq.Eq{"locked": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("kind", s.kind).Msg("error listing locked records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var locked []models.LockedRecord
	for rows.Next() {
		var record models.LockedRecord
		if err := rows.Scan(&record.ID, &record.LockExpiry); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		locked = append(locked, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return locked, nil
}

// DeleteByID implements [LockStore]. The delete is permanent; there is no
// soft-delete or recovery path once it returns.
func (s *lockStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.Builder().
		Delete(s.table).
		Where(sq.Eq{s.idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("kind", s.kind).Int64("id", id).Msg("error deleting record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	log.Info().Str("kind", s.kind).Int64("id", id).Msg("record permanently deleted")
	return nil
}

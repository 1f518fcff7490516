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

// patientRepository is the SQL-backed implementation of [PatientRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type patientRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPatientRepository constructs a [PatientRepository] backed by the
// provided database connection and logger.
func NewPatientRepository(db *DB, log *logger.Logger) PatientRepository {
	log.Debug().Msg("creating patient repository")
	return &patientRepository{
		db:     db,
		logger: log,
	}
}

var patientColumns = []string{"patient_id", "firstname", "surname", "date_of_birth", "care_level", "room_number", "locked", "lock_expiry"}

// CreatePatient persists a new patient record and returns it with the
// server-assigned PatientID.
func (r *patientRepository) CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert("patient").
		Columns("firstname", "surname", "date_of_birth", "care_level", "room_number").
		Values(patient.FirstName, patient.Surname, patient.DateOfBirth, patient.CareLevel, patient.RoomNumber).
		Suffix("RETURNING patient_id").
		ToSql()
	if err != nil {
		return models.Patient{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&patient.PatientID); err != nil {
		log.Err(err).Str("func", "*patientRepository.CreatePatient").Msg("error: inserting patient")
		return models.Patient{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return patient, nil
}

// FindPatientByID retrieves a single patient record, locked or not.
// Returns ErrRecordNotFound when no row matches.
func (r *patientRepository) FindPatientByID(ctx context.Context, id int64) (models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(patientColumns...).
		From("patient").
		Where(sq.Eq{"patient_id": id}).
		ToSql()
	if err != nil {
		return models.Patient{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	patient, err := scanPatient(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Patient{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*patientRepository.FindPatientByID").Msg("error: scanning patient")
		return models.Patient{}, err
	}

	return patient, nil
}

// ListPatients returns all patient records that are not retention-locked.
// Locked records are invisible to normal listing until the sweeper erases
// them.
func (r *patientRepository) ListPatients(ctx context.Context) ([]models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(patientColumns...).
		From("patient").
		Where(sq.Eq{"locked": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.ListPatients").Msg("error: querying patients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var patients []models.Patient
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return patients, nil
}

// UpdatePatient overwrites the editable fields of an existing patient record.
// The locked/lock_expiry columns are owned by the lock store and are never
// touched here.
func (r *patientRepository) UpdatePatient(ctx context.Context, patient models.Patient) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update("patient").
		Set("firstname", patient.FirstName).
		Set("surname", patient.Surname).
		Set("date_of_birth", patient.DateOfBirth).
		Set("care_level", patient.CareLevel).
		Set("room_number", patient.RoomNumber).
		Where(sq.Eq{"patient_id": patient.PatientID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.UpdatePatient").Msg("error: updating patient")
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

// rowScanner is the shared subset of *sql.Row and *sql.Rows used by the
// per-entity scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (models.Patient, error) {
	var patient models.Patient
	var lockExpiry sql.NullTime

	err := row.Scan(
		&patient.PatientID,
		&patient.FirstName,
		&patient.Surname,
		&patient.DateOfBirth,
		&patient.CareLevel,
		&patient.RoomNumber,
		&patient.Locked,
		&lockExpiry,
	)
	if err != nil {
		return models.Patient{}, err
	}

	if lockExpiry.Valid {
		patient.LockExpiry = &lockExpiry.Time
	}

	return patient, nil
}

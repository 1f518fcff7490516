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

// treatmentRepository is the SQL-backed implementation of
// [TreatmentRepository].
type treatmentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTreatmentRepository constructs a [TreatmentRepository] backed by the
// provided database connection and logger.
func NewTreatmentRepository(db *DB, log *logger.Logger) TreatmentRepository {
	log.Debug().Msg("creating treatment repository")
	return &treatmentRepository{
		db:     db,
		logger: log,
	}
}

var treatmentColumns = []string{"treatment_id", "patient_id", "treatment_date", "begin_time", "end_time", "description", "remarks", "locked", "lock_expiry"}

// CreateTreatment persists a new treatment record and returns it with the
// server-assigned TreatmentID.
func (r *treatmentRepository) CreateTreatment(ctx context.Context, treatment models.Treatment) (models.Treatment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert("treatment").
		Columns("patient_id", "treatment_date", "begin_time", "end_time", "description", "remarks").
		Values(treatment.PatientID, treatment.Date, treatment.Begin, treatment.End, treatment.Description, treatment.Remarks).
		Suffix("RETURNING treatment_id").
		ToSql()
	if err != nil {
		return models.Treatment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&treatment.TreatmentID); err != nil {
		log.Err(err).Str("func", "*treatmentRepository.CreateTreatment").Msg("error: inserting treatment")
		return models.Treatment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return treatment, nil
}

// FindTreatmentByID retrieves a single treatment record, locked or not.
// Returns ErrRecordNotFound when no row matches.
func (r *treatmentRepository) FindTreatmentByID(ctx context.Context, id int64) (models.Treatment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(treatmentColumns...).
		From("treatment").
		Where(sq.Eq{"treatment_id": id}).
		ToSql()
	if err != nil {
		return models.Treatment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	treatment, err := scanTreatment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Treatment{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*treatmentRepository.FindTreatmentByID").Msg("error: scanning treatment")
		return models.Treatment{}, err
	}

	return treatment, nil
}

// ListTreatments returns all treatment records that are not retention-locked.
func (r *treatmentRepository) ListTreatments(ctx context.Context) ([]models.Treatment, error) {
	return r.listTreatments(ctx, sq.Eq{"locked": false})
}

// ListTreatmentsByPatient returns all unlocked treatments of one patient.
func (r *treatmentRepository) ListTreatmentsByPatient(ctx context.Context, patientID int64) ([]models.Treatment, error) {
	return r.listTreatments(ctx, sq.Eq{"locked": false, "patient_id": patientID})
}

func (r *treatmentRepository) listTreatments(ctx context.Context, where sq.Eq) ([]models.Treatment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(treatmentColumns...).
		From("treatment").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*treatmentRepository.listTreatments").Msg("error: querying treatments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var treatments []models.Treatment
	for rows.Next() {
		treatment, err := scanTreatment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		treatments = append(treatments, treatment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return treatments, nil
}

// UpdateTreatment overwrites the editable fields of an existing treatment
// record. The locked/lock_expiry columns are owned by the lock store and are
// never touched here.
func (r *treatmentRepository) UpdateTreatment(ctx context.Context, treatment models.Treatment) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update("treatment").
		Set("treatment_date", treatment.Date).
		Set("begin_time", treatment.Begin).
		Set("end_time", treatment.End).
		Set("description", treatment.Description).
		Set("remarks", treatment.Remarks).
		Where(sq.Eq{"treatment_id": treatment.TreatmentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*treatmentRepository.UpdateTreatment").Msg("error: updating treatment")
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

func scanTreatment(row rowScanner) (models.Treatment, error) {
	var treatment models.Treatment
	var lockExpiry sql.NullTime

	err := row.Scan(
		&treatment.TreatmentID,
		&treatment.PatientID,
		&treatment.Date,
		&treatment.Begin,
		&treatment.End,
		&treatment.Description,
		&treatment.Remarks,
		&treatment.Locked,
		&lockExpiry,
	)
	if err != nil {
		return models.Treatment{}, err
	}

	if lockExpiry.Valid {
		treatment.LockExpiry = &lockExpiry.Time
	}

	return treatment, nil
}

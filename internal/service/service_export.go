package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Schmolo/nhplus-umsetzung/internal/audit"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// exportService implements ExportService. Exports only ever see unlocked
// records because they read through the same filtered repository listings as
// the rest of the application.
type exportService struct {
	patients store.PatientRepository
	trail    *audit.Trail
	logger   *logger.Logger
}

// NewExportService assembles an ExportService over the patient repository.
func NewExportService(patients store.PatientRepository, trail *audit.Trail, log *logger.Logger) ExportService {
	return &exportService{patients: patients, trail: trail, logger: log}
}

var patientCSVHeader = []string{"patient_id", "firstname", "surname", "date_of_birth", "care_level", "room_number"}

// ExportPatientsCSV implements [ExportService].
func (s *exportService) ExportPatientsCSV(ctx context.Context, actor models.Identity, w io.Writer) error {
	patients, err := s.patients.ListPatients(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "ExportPatientsCSV").Msg("listing patients for export failed")
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(patientCSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, p := range patients {
		row := []string{
			strconv.FormatInt(p.PatientID, 10),
			p.FirstName,
			p.Surname,
			p.DateOfBirth.Format("2006-01-02"),
			p.CareLevel,
			p.RoomNumber,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	s.trail.Record(actor, audit.ActionExport, models.KindPatient, 0)
	return nil
}

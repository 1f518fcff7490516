package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Schmolo/nhplus-umsetzung/internal/audit"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

func TestExportPatientsCSV(t *testing.T) {
	repo := &fakePatientRepo{patients: []models.Patient{
		{
			PatientID:   1,
			PersonName:  models.PersonName{FirstName: "Hans", Surname: "Huber"},
			DateOfBirth: time.Date(1952, time.June, 3, 0, 0, 0, 0, time.UTC),
			CareLevel:   "3",
			RoomNumber:  "202",
		},
		{
			PatientID:   2,
			PersonName:  models.PersonName{FirstName: "Erna", Surname: "Vogel"},
			DateOfBirth: time.Date(1949, time.December, 11, 0, 0, 0, 0, time.UTC),
			CareLevel:   "1",
			RoomNumber:  "103",
		},
	}}
	svc := NewExportService(repo, audit.NopTrail(), logger.Nop())

	var buf bytes.Buffer
	err := svc.ExportPatientsCSV(context.Background(), models.Identity{CaregiverID: 1}, &buf)

	require.NoError(t, err)
	want := "patient_id,firstname,surname,date_of_birth,care_level,room_number\n" +
		"1,Hans,Huber,1952-06-03,3,202\n" +
		"2,Erna,Vogel,1949-12-11,1,103\n"
	assert.Equal(t, want, buf.String())
}

func TestExportPatientsCSV_EmptyListing(t *testing.T) {
	svc := NewExportService(&fakePatientRepo{}, audit.NopTrail(), logger.Nop())

	var buf bytes.Buffer
	err := svc.ExportPatientsCSV(context.Background(), models.Identity{}, &buf)

	require.NoError(t, err)
	assert.Equal(t, "patient_id,firstname,surname,date_of_birth,care_level,room_number\n", buf.String())
}

func TestExportPatientsCSV_ListingFailure(t *testing.T) {
	boom := errors.New("connection lost")
	svc := NewExportService(&fakePatientRepo{listErr: boom}, audit.NopTrail(), logger.Nop())

	var buf bytes.Buffer
	err := svc.ExportPatientsCSV(context.Background(), models.Identity{}, &buf)

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, buf.String())
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Schmolo/nhplus-umsetzung/internal/audit"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

func newTestLockService(patientStore, treatmentStore *fakeLockStore) LockService {
	repos := &store.Repositories{
		LockStores: []store.LockStore{patientStore, treatmentStore},
	}
	return NewLockService(repos, audit.NopTrail(), logger.Nop())
}

func TestLock_DispatchesOnKind(t *testing.T) {
	patients := &fakeLockStore{kind: models.KindPatient}
	treatments := &fakeLockStore{kind: models.KindTreatment}
	svc := newTestLockService(patients, treatments)
	actor := models.Identity{CaregiverID: 1, Admin: true}

	require.NoError(t, svc.Lock(context.Background(), actor, models.KindPatient, 7))
	require.NoError(t, svc.Lock(context.Background(), actor, models.KindTreatment, 9))

	assert.Equal(t, []int64{7}, patients.locked)
	assert.Equal(t, []int64{9}, treatments.locked)
}

func TestLock_UnknownKind(t *testing.T) {
	svc := newTestLockService(&fakeLockStore{kind: models.KindPatient}, &fakeLockStore{kind: models.KindTreatment})

	err := svc.Lock(context.Background(), models.Identity{}, "room", 7)

	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLock_PropagatesStoreError(t *testing.T) {
	patients := &fakeLockStore{kind: models.KindPatient, lockErr: store.ErrRecordNotFound}
	svc := newTestLockService(patients, &fakeLockStore{kind: models.KindTreatment})

	err := svc.Lock(context.Background(), models.Identity{}, models.KindPatient, 404)

	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestDelete_DispatchesOnKind(t *testing.T) {
	patients := &fakeLockStore{kind: models.KindPatient}
	treatments := &fakeLockStore{kind: models.KindTreatment}
	svc := newTestLockService(patients, treatments)

	require.NoError(t, svc.Delete(context.Background(), models.Identity{}, models.KindTreatment, 13))

	assert.Empty(t, patients.deleted)
	assert.Equal(t, []int64{13}, treatments.deleted)
}

func TestDelete_UnknownKind(t *testing.T) {
	svc := newTestLockService(&fakeLockStore{kind: models.KindPatient}, &fakeLockStore{kind: models.KindTreatment})

	err := svc.Delete(context.Background(), models.Identity{}, "ward", 1)

	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDelete_PropagatesStoreError(t *testing.T) {
	boom := errors.New("disk on fire")
	patients := &fakeLockStore{kind: models.KindPatient, deleteErr: boom}
	svc := newTestLockService(patients, &fakeLockStore{kind: models.KindTreatment})

	err := svc.Delete(context.Background(), models.Identity{}, models.KindPatient, 1)

	assert.ErrorIs(t, err, boom)
}

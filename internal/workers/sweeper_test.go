package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Schmolo/nhplus-umsetzung/internal/clock"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// sweepStore is an in-memory LockStore tracking deletions.
type sweepStore struct {
	kind      string
	records   []models.LockedRecord
	deleted   []int64
	listErr   error
	deleteErr map[int64]error
}

func (f *sweepStore) Kind() string { return f.kind }

func (f *sweepStore) Lock(context.Context, int64) error { return nil }

func (f *sweepStore) ListLocked(context.Context) ([]models.LockedRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *sweepStore) DeleteByID(_ context.Context, id int64) error {
	if err, ok := f.deleteErr[id]; ok {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTestSweeper(now time.Time, stores ...store.LockStore) *RetentionSweeper {
	return NewRetentionSweeper(stores, &clock.Fixed{Instant: now}, time.Hour, logger.Nop())
}

func TestSweep_DeletesOnlyExpiredRecords(t *testing.T) {
	patients := &sweepStore{kind: models.KindPatient, records: []models.LockedRecord{
		{ID: 1, LockExpiry: date(2030, time.January, 1)},
		{ID: 2, LockExpiry: date(2042, time.June, 15)},
	}}
	sweeper := newTestSweeper(date(2030, time.January, 2), patients)

	sweeper.Sweep(context.Background())

	assert.Equal(t, []int64{1}, patients.deleted)
}

func TestSweep_ExpiryBoundary(t *testing.T) {
	// A record locked on 2020-01-01 carries expiry 2030-01-01. It must
	// survive every sweep through 2030-01-01 itself and be erased by the
	// first sweep on 2030-01-02.
	cases := []struct {
		now     time.Time
		deleted bool
	}{
		{date(2029, time.December, 31), false},
		{date(2030, time.January, 1), false},
		{date(2030, time.January, 2), true},
	}

	for _, tc := range cases {
		patients := &sweepStore{kind: models.KindPatient, records: []models.LockedRecord{
			{ID: 1, LockExpiry: date(2030, time.January, 1)},
		}}
		sweeper := newTestSweeper(tc.now, patients)

		sweeper.Sweep(context.Background())

		if tc.deleted {
			assert.Equal(t, []int64{1}, patients.deleted, "sweep at %s", tc.now)
		} else {
			assert.Empty(t, patients.deleted, "sweep at %s", tc.now)
		}
	}
}

func TestSweep_IgnoresTimeOfDay(t *testing.T) {
	patients := &sweepStore{kind: models.KindPatient, records: []models.LockedRecord{
		{ID: 1, LockExpiry: date(2030, time.January, 1)},
	}}
	// Late in the evening of expiry day is still expiry day.
	now := time.Date(2030, time.January, 1, 23, 59, 59, 0, time.UTC)
	sweeper := newTestSweeper(now, patients)

	sweeper.Sweep(context.Background())

	assert.Empty(t, patients.deleted)
}

func TestSweep_KindIsolation(t *testing.T) {
	patients := &sweepStore{kind: models.KindPatient, listErr: errors.New("connection lost")}
	treatments := &sweepStore{kind: models.KindTreatment, records: []models.LockedRecord{
		{ID: 5, LockExpiry: date(2025, time.March, 1)},
	}}
	sweeper := newTestSweeper(date(2030, time.January, 2), patients, treatments)

	sweeper.Sweep(context.Background())

	assert.Equal(t, []int64{5}, treatments.deleted)
}

func TestSweep_RecordFailureIsolation(t *testing.T) {
	patients := &sweepStore{
		kind: models.KindPatient,
		records: []models.LockedRecord{
			{ID: 1, LockExpiry: date(2025, time.January, 1)},
			{ID: 2, LockExpiry: date(2025, time.January, 1)},
			{ID: 3, LockExpiry: date(2025, time.January, 1)},
		},
		deleteErr: map[int64]error{2: errors.New("row locked")},
	}
	sweeper := newTestSweeper(date(2030, time.January, 2), patients)

	sweeper.Sweep(context.Background())

	assert.Equal(t, []int64{1, 3}, patients.deleted)
}

func TestStart_RunsImmediateFirstPass(t *testing.T) {
	patients := &sweepStore{kind: models.KindPatient, records: []models.LockedRecord{
		{ID: 1, LockExpiry: date(2025, time.January, 1)},
	}}
	sweeper := newTestSweeper(date(2030, time.January, 2), patients)

	sweeper.Start(context.Background())
	sweeper.Stop()

	assert.Equal(t, []int64{1}, patients.deleted)
}

// blockingStore holds its single delete open until released, recording the
// context state the delete observed once it resumed.
type blockingStore struct {
	records []models.LockedRecord
	started chan struct{}
	release chan struct{}
	ctxErr  error
	deleted []int64
}

func (f *blockingStore) Kind() string { return models.KindPatient }

func (f *blockingStore) Lock(context.Context, int64) error { return nil }

func (f *blockingStore) ListLocked(context.Context) ([]models.LockedRecord, error) {
	return f.records, nil
}

func (f *blockingStore) DeleteByID(ctx context.Context, id int64) error {
	close(f.started)
	<-f.release
	f.ctxErr = ctx.Err()
	f.deleted = append(f.deleted, id)
	return nil
}

func TestStop_LetsInFlightDeleteFinish(t *testing.T) {
	patients := &blockingStore{
		records: []models.LockedRecord{{ID: 1, LockExpiry: date(2025, time.January, 1)}},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	sweeper := newTestSweeper(date(2030, time.January, 2), patients)

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.Start(ctx)

	// Wait until the pass is inside the delete, then cancel the context the
	// sweeper was started with, exactly as a stop signal would.
	<-patients.started
	cancel()

	close(patients.release)
	sweeper.Stop()

	require.NoError(t, patients.ctxErr, "in-flight delete must not see a cancelled context")
	assert.Equal(t, []int64{1}, patients.deleted)
}

func TestStop_Unstarted(t *testing.T) {
	sweeper := newTestSweeper(date(2030, time.January, 2))

	// Stop before Start must not panic or block.
	sweeper.Stop()
}

func TestWorkers_StartStopAll(t *testing.T) {
	patients := &sweepStore{kind: models.KindPatient, records: []models.LockedRecord{
		{ID: 9, LockExpiry: date(2020, time.January, 1)},
	}}
	sweeper := newTestSweeper(date(2030, time.January, 2), patients)

	ws := NewWorkers(sweeper)
	ws.Start(context.Background())
	ws.Stop()

	require.Equal(t, []int64{9}, patients.deleted)
}

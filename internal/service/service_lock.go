package service

import (
	"context"
	"fmt"

	"github.com/Schmolo/nhplus-umsetzung/internal/audit"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// lockService implements LockService by dispatching on record kind to the
// matching retention-lock store.
type lockService struct {
	repos  *store.Repositories
	trail  *audit.Trail
	logger *logger.Logger
}

// NewLockService assembles a LockService over the repository set.
func NewLockService(repos *store.Repositories, trail *audit.Trail, log *logger.Logger) LockService {
	return &lockService{repos: repos, trail: trail, logger: log}
}

// Lock implements [LockService].
func (s *lockService) Lock(ctx context.Context, actor models.Identity, kind string, id int64) error {
	lockStore := s.repos.LockStoreFor(kind)
	if lockStore == nil {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if err := lockStore.Lock(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "Lock").Str("kind", kind).Int64("id", id).Msg("locking record failed")
		return err
	}

	s.trail.Record(actor, audit.ActionLock, kind, id)
	return nil
}

// Delete implements [LockService].
func (s *lockService) Delete(ctx context.Context, actor models.Identity, kind string, id int64) error {
	lockStore := s.repos.LockStoreFor(kind)
	if lockStore == nil {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if err := lockStore.DeleteByID(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "Delete").Str("kind", kind).Int64("id", id).Msg("deleting record failed")
		return err
	}

	s.trail.Record(actor, audit.ActionDelete, kind, id)
	return nil
}

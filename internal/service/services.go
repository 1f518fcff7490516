// Package service holds the application's business rules: authentication
// with uniform failure semantics, record CRUD that hides retention-locked
// rows, retention locking and deletion with audit recording, and CSV export.
package service

import (
	"time"

	"github.com/Schmolo/nhplus-umsetzung/internal/audit"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
)

// Services bundles every application service behind one value so handlers
// and workers receive a single dependency.
type Services struct {
	Auth    AuthService
	Records RecordsService
	Locks   LockService
	Export  ExportService
}

// NewServices wires all services over the shared repository set, revocation
// list and audit trail.
func NewServices(repos *store.Repositories, revoked store.RevocationList, trail *audit.Trail, tokenSignKey, tokenIssuer string, tokenDuration time.Duration, log *logger.Logger) *Services {
	return &Services{
		Auth:    NewAuthService(repos.Caregivers, revoked, trail, tokenSignKey, tokenIssuer, tokenDuration, log),
		Records: NewRecordsService(repos, log),
		Locks:   NewLockService(repos, trail, log),
		Export:  NewExportService(repos.Patients, trail, log),
	}
}

// Package audit records who did what to which record. Entries are structured
// zerolog events written to a dedicated sink (a file in production, stdout
// when no file is configured), kept separate from the operational logs so
// they can be retained and reviewed independently.
package audit

import (
	"fmt"
	"os"

	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// Action names recorded in the audit trail.
const (
	ActionLogin      = "login"
	ActionLogout     = "logout"
	ActionLock       = "lock"
	ActionDelete     = "delete"
	ActionExport     = "export"
	ActionRegister   = "register"
	ActionPassChange = "password_change"
)

// Trail appends audit entries to its sink. The zero value is not usable;
// construct via NewTrail or NopTrail.
type Trail struct {
	logger *logger.Logger
}

// NewTrail opens (or creates) the audit file at path and returns a Trail
// appending to it. An empty path falls back to stdout.
func NewTrail(path string) (*Trail, error) {
	if path == "" {
		return &Trail{logger: logger.NewLogger("audit")}, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening audit log file: %w", err)
	}

	return &Trail{logger: logger.NewWriterLogger("audit", file)}, nil
}

// NopTrail returns a Trail that discards all entries. Intended for tests.
func NopTrail() *Trail {
	return &Trail{logger: logger.Nop()}
}

// Record writes one audit entry. actor is the authenticated caregiver
// performing the action; kind and targetID identify the affected record and
// may be empty/zero for actions without a single target (e.g. export).
func (t *Trail) Record(actor models.Identity, action, kind string, targetID int64) {
	event := t.logger.Info().
		Int64("actor_id", actor.CaregiverID).
		Str("actor", actor.DisplayName).
		Str("action", action)

	if kind != "" {
		event = event.Str("kind", kind)
	}
	if targetID != 0 {
		event = event.Int64("target_id", targetID)
	}

	event.Msg("audit")
}

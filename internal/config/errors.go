package config

import "errors"

var (
	// ErrNoTokenSignKey is reported when no JWT signing key was supplied by
	// any configuration source. The server refuses to start without one.
	ErrNoTokenSignKey = errors.New("no token sign key provided")

	// ErrUnknownDBDriver is reported when the configured database driver is
	// neither "pgx" nor "sqlite3".
	ErrUnknownDBDriver = errors.New("unknown database driver")

	// ErrNoDatabaseDSN is reported when the database DSN resolved to empty
	// after defaults were applied.
	ErrNoDatabaseDSN = errors.New("no database DSN provided")
)

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

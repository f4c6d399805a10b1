package session

import (
	"errors"
	"fmt"

	"scan-verifier/core/reconcile"
)

var (
	// ErrScanningActive is returned when the manifest is replaced while scanning.
	ErrScanningActive = errors.New("stop scanning before loading a new manifest")
	// ErrEmptyManifest is returned when scanning is started without a manifest.
	ErrEmptyManifest = errors.New("no manifest loaded")
	// ErrRowConsumed is returned when an event tries to consume a row twice.
	ErrRowConsumed = errors.New("manifest row already consumed")
	// ErrCorrupt is returned when a stored snapshot cannot be used.
	ErrCorrupt = errors.New("stored session is corrupt")
	// ErrChanged is returned by ClearAt when the session was modified after the given revision.
	ErrChanged = errors.New("session changed since snapshot")
)

// PersistError reports that a mutation was applied in memory but the
// snapshot could not be written to the store.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("session %s not persisted: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// Is lets callers match a PersistError against reconcile.ErrNotPersisted.
func (e *PersistError) Is(target error) bool {
	return target == reconcile.ErrNotPersisted
}

// Package session holds the scanning session: the loaded manifest, the
// append-only scan history, the set of consumed manifest rows and the scan
// mode flag.
//
// A Session is the only writer of that state. Every mutation writes a full
// snapshot to a Store before it returns, so a restarted process can Restore
// exactly where it left off.
//
// # Stores
//
// Two Store implementations are provided: MemoryStore for tests and
// ephemeral runs, and BadgerStore which keeps the snapshot in an embedded
// Badger key-value database on local disk.
//
// # Persistence failures
//
// When a snapshot cannot be written, the in-memory change is kept and a
// *PersistError is returned. The session stays dirty and the next mutation,
// or an explicit Flush, rewrites the snapshot.
//
// # Usage
//
//	store, err := session.OpenBadger(cfg.Session.Path)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	s := session.New(store, logger)
//	if err := s.Restore(); err != nil {
//	    return err
//	}
package session

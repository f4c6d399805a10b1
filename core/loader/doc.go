// Package loader registers features and mounts their routes.
//
// A feature is anything satisfying
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The start command registers the scanning and archive features with a
// Manager and calls LoadAll once. Disabled features are logged and skipped;
// the archive reports itself disabled when neither storage nor a database is
// configured. Loading stops at the first feature that fails.
package loader

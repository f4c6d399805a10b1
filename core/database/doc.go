// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL, PostgreSQL or SQLite connections based on the application's configuration.
//
// # Connect
//
// The Connect function picks the dialector from Config.Driver, opens the
// connection and pings it. SQLite connections are limited to one open
// connection because the database file is locked per writer.
//
// # Schema Inspection
//
// GetTableColumns returns the columns of a table in a driver-neutral shape and
// MissingColumns lists the expected columns a table lacks. The report archive
// uses both to verify its tables against the models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "archived_sessions")
package database

// Package config provides configuration management for the scan verifier.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file and an optional config.yaml in the working directory.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key and body limit
//   - Log: Logging level and format
//   - Session: Badger directory for the session snapshot
//   - Scanner: keystroke gate thresholds for the listen command
//   - Manifest: header rules per manifest field (config.yaml only)
//   - Export: output directory for CLI exports
//   - Storage: S3/MinIO credentials and the report archive bucket
//   - Database: SQL report archive connection
//
// Scalar keys map to environment variables by joining the path with
// underscores, e.g. SESSION_PATH or STORAGE_ENABLED.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

package session

// Config holds configuration for session persistence.
type Config struct {
	// Path is the directory of the Badger database holding the session snapshot.
	Path string `mapstructure:"path" default:"data/session"`
	// InMemory keeps the session in process memory only.
	InMemory bool `mapstructure:"in_memory" default:"false"`
}

package manifest

// Config holds manifest ingestion settings.
type Config struct {
	// Columns overrides header rules per field, e.g. barcode: [["ean"], ["штрих"]].
	// It is read from the config file only; environment variables cannot express it.
	Columns map[string][][]string `mapstructure:"columns"`
}

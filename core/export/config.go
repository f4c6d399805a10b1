package export

// Config holds export settings.
type Config struct {
	// Dir is where the CLI writes exported workbooks.
	Dir string `mapstructure:"dir" default:"exports"`
}

package types

// OutputFormat selects the table format written by the convert stage.
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatXLSX OutputFormat = "xlsx"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Extension returns the file extension (with dot) for the format.
func (f OutputFormat) Extension() string {
	return "." + string(f)
}

// ConvertConfig holds settings for the convert stage.
type ConvertConfig struct {
	// Input is an RTF file or a directory containing RTF files.
	Input string `json:"input" yaml:"input"`

	// Output is a file or directory. Empty writes next to each input.
	Output string `json:"output" yaml:"output"`

	// Merge writes all rows from all inputs into a single table.
	Merge bool `json:"merge" yaml:"merge"`

	// Format selects csv, xlsx, json or yaml (default csv).
	Format OutputFormat `json:"format" yaml:"format"`

	// Workers is the number of documents converted in parallel (default 1).
	Workers int `json:"workers" yaml:"workers"`

	// TaxonomyFile optionally overrides the built-in region, industry and
	// corporate-suffix tables.
	TaxonomyFile string `json:"taxonomy_file,omitempty" yaml:"taxonomy_file,omitempty"`
}

// ArchiveConfig holds settings for the article archive.
type ArchiveConfig struct {
	// Dir is the directory holding articles.db and exports.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is debug, info, warn or error (default info).
	Level string `json:"level" yaml:"level"`

	// Development disables sampling and uses the console encoder.
	Development bool `json:"development" yaml:"development"`
}

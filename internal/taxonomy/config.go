// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config holds the lookup tables behind the classifier and the company
// extractor. An empty list falls back to the built-in table.
type Config struct {
	// Regions are geography names matched exactly.
	Regions []string `json:"regions" yaml:"regions"`

	// IndustryHints are matched case-insensitively as substrings.
	IndustryHints []string `json:"industry_hints" yaml:"industry_hints"`

	// CorporateSuffixes end a company name (e.g. "Inc.", "Group").
	CorporateSuffixes []string `json:"corporate_suffixes" yaml:"corporate_suffixes"`
}

var defaultRegions = []string{
	"Asia", "China", "Hong Kong", "Macau", "Macao", "Taiwan", "United States", "U.S.", "US", "UK", "Europe",
	"Beijing", "Shanghai", "Japan", "Korea", "South Korea", "North Korea", "Germany", "France", "Netherlands",
	"Ireland", "Switzerland", "Latin America", "Australia", "Canada", "Singapore", "India", "Russia", "Africa", "Middle East",
}

var defaultIndustryHints = []string{
	"Finance", "Investment", "Materials", "Technology", "Energy", "Healthcare", "Pharmaceutical",
	"Mining", "Metals", "Oil", "Gas", "Shipping", "Logistics", "Automotive", "Real Estate", "Telecom", "AI", "Chip",
}

var defaultCorporateSuffixes = []string{
	"Inc.", "Corp.", "Corporation", "Ltd.", "Limited", "Group", "Company", "Co.", "PLC", "LLC", "S.A.", "AG",
}

// DefaultConfig returns a copy of the built-in tables.
func DefaultConfig() Config {
	return Config{
		Regions:           append([]string(nil), defaultRegions...),
		IndustryHints:     append([]string(nil), defaultIndustryHints...),
		CorporateSuffixes: append([]string(nil), defaultCorporateSuffixes...),
	}
}

// LoadConfig reads a YAML taxonomy file. Lists missing from the file keep
// their built-in values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading taxonomy %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing taxonomy %s: %w", path, err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	def := DefaultConfig()
	if len(c.Regions) == 0 {
		c.Regions = def.Regions
	}
	if len(c.IndustryHints) == 0 {
		c.IndustryHints = def.IndustryHints
	}
	if len(c.CorporateSuffixes) == 0 {
		c.CorporateSuffixes = def.CorporateSuffixes
	}
}

package config

// SearchTool describes how the external phrase-search binary is invoked.
// Program and Subcommand are passed through as the first two argv elements.
type SearchTool struct {
	Program    string `yaml:"program" json:"program"`
	Subcommand string `yaml:"subcommand" json:"subcommand"`
	Fuzziness  *int   `yaml:"fuzziness" json:"fuzziness,omitempty"`
}

// Fuzz returns the configured edit distance for the phrase query, defaulting
// to zero (exact phrase).
func (t SearchTool) Fuzz() int {
	if t.Fuzziness == nil {
		return 0
	}
	return *t.Fuzziness
}

type Config struct {
	Search SearchTool `yaml:"search" json:"search"`
}

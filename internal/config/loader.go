package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var current Config

func Get() Config { return current }

// LoadFromFiles merges all YAML files in sorted order; later files override
// earlier ones field by field, empty fields never override.
func LoadFromFiles(files []string) (Config, error) {
	combined := Config{}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		combined.Search = mergeSearchTool(combined.Search, part.Search)
	}
	current = combined
	return combined, nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeSearchTool(a, b SearchTool) SearchTool {
	out := a
	if b.Program != "" {
		out.Program = b.Program
	}
	if b.Subcommand != "" {
		out.Subcommand = b.Subcommand
	}
	if b.Fuzziness != nil {
		out.Fuzziness = b.Fuzziness
	}
	return out
}

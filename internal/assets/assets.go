package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

//go:embed default-config.yaml
var defaultConfig []byte

// ConfigSchema is the JSON Schema the merged configuration is checked against.
//
//go:embed config-schema.json
var ConfigSchema []byte

// QueriesSchema is the JSON Schema a queries file is checked against before
// decoding.
//
//go:embed queries-schema.json
var QueriesSchema []byte

// WriteDefaultConfigIfMissing writes config.yaml to targetDir if it does not exist.
func WriteDefaultConfigIfMissing(targetDir string) error {
	if targetDir == "" {
		return errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}
	p := filepath.Join(targetDir, "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(p, defaultConfig, 0o644)
}

package assets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDefaultConfigIfMissing(t *testing.T) {
	dir := t.TempDir()

	// First call should create config.yaml with embedded contents
	if err := WriteDefaultConfigIfMissing(dir); err != nil {
		t.Fatalf("WriteDefaultConfigIfMissing: %v", err)
	}
	p := filepath.Join(dir, "config.yaml")
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("empty config.yaml written")
	}
	if string(b) != string(defaultConfig) {
		t.Fatalf("unexpected contents written")
	}

	// If file exists, it must not overwrite
	if err := os.WriteFile(p, []byte("modified"), 0o644); err != nil {
		t.Fatalf("pre-write: %v", err)
	}
	if err := WriteDefaultConfigIfMissing(dir); err != nil {
		t.Fatalf("second call: %v", err)
	}
	b2, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read2: %v", err)
	}
	if string(b2) != "modified" {
		t.Fatalf("existing file was overwritten")
	}
}

func TestWriteDefaultConfigIfMissing_EmptyDir(t *testing.T) {
	if err := WriteDefaultConfigIfMissing(""); err == nil {
		t.Fatalf("expected error for empty target dir")
	}
}

func TestEmbeddedSchemasAreJSON(t *testing.T) {
	for name, b := range map[string][]byte{
		"config-schema.json":  ConfigSchema,
		"queries-schema.json": QueriesSchema,
	} {
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			t.Fatalf("%s is not valid JSON: %v", name, err)
		}
	}
}

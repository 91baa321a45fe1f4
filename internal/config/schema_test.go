package config

import "testing"

func TestValidateAgainstSchema_Valid(t *testing.T) {
	fuzz := 0
	cfg := Config{
		Search: SearchTool{
			Program:    "litt",
			Subcommand: "two-words",
			Fuzziness:  &fuzz,
		},
	}
	if err := ValidateAgainstSchema(cfg); err != nil {
		t.Fatalf("expected valid schema, got error: %v", err)
	}
}

func TestValidateAgainstSchema_MissingProgram(t *testing.T) {
	cfg := Config{
		Search: SearchTool{Subcommand: "two-words"},
	}
	if err := ValidateAgainstSchema(cfg); err == nil {
		t.Fatalf("expected schema error for empty program")
	}
}

func TestValidateAgainstSchema_OmittedFuzzinessIsValid(t *testing.T) {
	cfg := Config{
		Search: SearchTool{Program: "litt", Subcommand: "two-words"},
	}
	if err := ValidateAgainstSchema(cfg); err != nil {
		t.Fatalf("expected valid schema without fuzziness, got: %v", err)
	}
}

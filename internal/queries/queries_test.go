package queries

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeQueries(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "two_words.json")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestLoad_OrderPreserved(t *testing.T) {
	p := writeQueries(t, `[
		{"word1": "quick", "word2": "fox"},
		{"word1": "lazy", "word2": "dog"},
		{"word1": "red", "word2": "wine"}
	]`)
	qs, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("want 3 queries, got %d", len(qs))
	}
	want := []Query{
		{Word1: "quick", Word2: "fox"},
		{Word1: "lazy", Word2: "dog"},
		{Word1: "red", Word2: "wine"},
	}
	for i, q := range qs {
		if q != want[i] {
			t.Fatalf("query %d: want %+v, got %+v", i, want[i], q)
		}
	}
}

func TestLoad_EmptyArray(t *testing.T) {
	p := writeQueries(t, `[]`)
	qs, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(qs) != 0 {
		t.Fatalf("want 0 queries, got %d", len(qs))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat for missing file, got %v", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	p := writeQueries(t, `[{"word1": "a",`)
	if _, err := Load(p); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat for malformed json, got %v", err)
	}
}

func TestLoad_MissingField(t *testing.T) {
	p := writeQueries(t, `[{"word1": "quick"}]`)
	if _, err := Load(p); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat for missing word2, got %v", err)
	}
}

func TestLoad_WrongFieldType(t *testing.T) {
	p := writeQueries(t, `[{"word1": "quick", "word2": 7}]`)
	if _, err := Load(p); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat for non-string word2, got %v", err)
	}
}

func TestLoad_NotAnArray(t *testing.T) {
	p := writeQueries(t, `{"word1": "quick", "word2": "fox"}`)
	if _, err := Load(p); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat for non-array document, got %v", err)
	}
}

func TestLoad_EmbeddedQuotesPassThrough(t *testing.T) {
	p := writeQueries(t, `[{"word1": "qu\"ick", "word2": "fox"}]`)
	qs, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if qs[0].Word1 != `qu"ick` {
		t.Fatalf("want verbatim word with quote, got %q", qs[0].Word1)
	}
}

func TestPhrase(t *testing.T) {
	q := Query{Word1: "quick", Word2: "fox"}
	if q.Phrase() != "quick fox" {
		t.Fatalf("want %q, got %q", "quick fox", q.Phrase())
	}
}

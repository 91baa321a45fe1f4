package queries

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"twocheck/internal/assets"
)

// ErrFormat marks a queries file that is missing, unreadable or structurally
// invalid.
var ErrFormat = errors.New("invalid queries file")

// Query is one word pair whose combined phrase is checked for a unique hit
// in the search index.
type Query struct {
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
}

func (q Query) Phrase() string { return q.Word1 + " " + q.Word2 }

// Load reads a JSON array of {"word1": ..., "word2": ...} objects and returns
// the pairs in file order. The document is validated against the embedded
// schema before decoding, so a malformed file fails here and nothing gets
// executed for it. Word contents are passed through verbatim, embedded quotes
// included.
func Load(path string) ([]Query, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if err := validate(b); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
	}
	qs := []Query{}
	if err := json.Unmarshal(b, &qs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
	}
	return qs, nil
}

func validate(doc []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(assets.QueriesSchema)
	docLoader := gojsonschema.NewBytesLoader(doc)
	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}

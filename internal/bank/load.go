package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

//go:embed data/questions.json
var defaultBankJSON []byte

// Default returns the question bank compiled into the binary.
func Default() (*Bank, error) {
	b, err := Parse(defaultBankJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded bank: %w", err)
	}
	return b, nil
}

// Load reads a question bank from a JSON file on disk.
func Load(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw JSON against the bank schema, then decodes it.
// Categories come back sorted by identifier so menus stay stable across
// runs regardless of map iteration order.
func Parse(raw []byte) (*Bank, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc struct {
		Categories map[string]struct {
			Name      string     `json:"name"`
			Questions []Question `json:"questions"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	ids := make([]string, 0, len(doc.Categories))
	for id := range doc.Categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	b := &Bank{Categories: make([]Category, 0, len(ids))}
	for _, id := range ids {
		cat := doc.Categories[id]
		for i, q := range cat.Questions {
			if err := q.check(); err != nil {
				return nil, &ValidationError{Category: id, Index: i, Err: err}
			}
		}
		b.Categories = append(b.Categories, Category{
			ID:        id,
			Name:      cat.Name,
			Questions: cat.Questions,
		})
	}
	return b, nil
}

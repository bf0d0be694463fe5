// Package faq provides the keyed FAQ text-search collaborator.
package faq

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry is a single question/answer pair.
type Entry struct {
	ID       int64  `yaml:"-"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Store is a keyed text-search capability over FAQ entries. Search matches
// the given text as a case-insensitive substring of the question field and
// returns entries in insertion order; callers use the first result.
type Store interface {
	Search(ctx context.Context, text string) ([]Entry, error)
	Add(ctx context.Context, question, answer string) error
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

//go:embed seed.yaml
var seedYAML []byte

// SeedEntries returns the embedded default FAQ entries.
func SeedEntries() ([]Entry, error) {
	var doc struct {
		FAQs []Entry `yaml:"faqs"`
	}
	if err := yaml.Unmarshal(seedYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse faq seed: %w", err)
	}
	return doc.FAQs, nil
}

// SeedIfEmpty inserts the embedded default entries when the store holds no
// FAQs yet. Returns the number of entries inserted.
func SeedIfEmpty(ctx context.Context, store Store) (int, error) {
	count, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count faqs: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	entries, err := SeedEntries()
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if err := store.Add(ctx, e.Question, e.Answer); err != nil {
			return 0, fmt.Errorf("seed faq %q: %w", e.Question, err)
		}
	}
	return len(entries), nil
}

package bot

import (
	"strings"

	"github.com/jumpstart/style-assistant/internal/domain"
)

// Fixed entity vocabularies. Matching is substring containment against
// normalized text, not word-boundary tokenization, and for each kind the
// last vocabulary entry found in iteration order wins. Both behaviors are
// load-bearing; callers depend on them for test parity.
var entityVocabularies = []struct {
	kind   string
	values []string
}{
	{domain.EntityCategory, []string{"jackets", "dresses", "footwear", "accessories", "shoes", "bags"}},
	{domain.EntitySize, []string{"xs", "s", "m", "l", "xl", "xxl"}},
	{domain.EntityColor, []string{"black", "white", "red", "blue", "green", "yellow", "brown", "pink", "purple"}},
}

// ExtractEntities scans normalized text for known category, size and color
// vocabulary. Pure function of its input.
func ExtractEntities(text string) map[string]string {
	entities := make(map[string]string)
	for _, vocab := range entityVocabularies {
		for _, value := range vocab.values {
			if strings.Contains(text, value) {
				entities[vocab.kind] = value
			}
		}
	}
	return entities
}

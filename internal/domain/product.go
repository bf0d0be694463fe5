package domain

// Product is an immutable catalog record.
type Product struct {
	ID       int      `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Price    float64  `json:"price" yaml:"price"`
	Image    string   `json:"image" yaml:"image"`
	URL      string   `json:"url" yaml:"url"`
	Category string   `json:"category" yaml:"category"`
	Tags     []string `json:"tags" yaml:"tags"`
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SharesAny reports whether two products share a category or any tag.
func (p Product) SharesAny(other Product) bool {
	if p.Category == other.Category {
		return true
	}
	for _, t := range other.Tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

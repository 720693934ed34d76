// Package catalog holds the conference's static collections: committees,
// FAQs, key dates, experience levels and the "about" highlights.
//
// The default catalog is embedded. A YAML file with the same shape can
// replace it, and a directory of markdown FAQ documents can extend it.
// Every load runs the entries through [validation] rule tables so a bad
// override fails early instead of rendering an empty section.
package catalog

import (
	_ "embed"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/filter"
	"github.com/thoreinstein/munconf/pkg/fileutil"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Text fields searched by the committee and FAQ filters.
var (
	CommitteeTextFields = []string{"name", "description", filter.FieldCategory}
	FAQTextFields       = []string{"question", "answer", filter.FieldCategory}
)

// Committee is one simulated UN body delegates can choose.
type Committee struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Difficulty  string `yaml:"difficulty" json:"difficulty"`
	// Category is the committee type (Political, Economic, ...).
	Category  string `yaml:"type" json:"type"`
	Delegates int    `yaml:"delegates" json:"delegates"`
}

// Field implements filter.Item.
func (c Committee) Field(name string) string {
	switch name {
	case "id":
		return c.ID
	case "name":
		return c.Name
	case "description":
		return c.Description
	case "difficulty":
		return c.Difficulty
	case filter.FieldCategory, "type":
		return c.Category
	default:
		return ""
	}
}

// FAQ is one question on the FAQ page.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
	Category string `yaml:"category" json:"category"`
}

// Field implements filter.Item.
func (f FAQ) Field(name string) string {
	switch name {
	case "question":
		return f.Question
	case "answer":
		return f.Answer
	case filter.FieldCategory:
		return f.Category
	default:
		return ""
	}
}

// Event is a dated milestone on the timeline.
type Event struct {
	Date        string `yaml:"date" json:"date"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Highlight is a card in the about section.
type Highlight struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Catalog is the full set of static collections.
type Catalog struct {
	CommitteeCategories []string    `yaml:"committee_categories" json:"committee_categories"`
	Difficulties        []string    `yaml:"difficulties" json:"difficulties"`
	Committees          []Committee `yaml:"committees" json:"committees"`
	FAQCategories       []string    `yaml:"faq_categories" json:"faq_categories"`
	FAQs                []FAQ       `yaml:"faqs" json:"faqs"`
	Timeline            []Event     `yaml:"timeline" json:"timeline"`
	ExperienceLevels    []string    `yaml:"experience_levels" json:"experience_levels"`
	Highlights          []Highlight `yaml:"highlights" json:"highlights"`
}

// LoadOptions selects where the catalog comes from.
type LoadOptions struct {
	// File replaces the embedded catalog when set.
	File string
	// FAQDir holds extra FAQ markdown documents. A missing directory is ignored.
	FAQDir string
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "parsing catalog: %s", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load builds a catalog from opts.
func Load(opts LoadOptions) (*Catalog, error) {
	var (
		c   *Catalog
		err error
	)
	if opts.File != "" {
		data, readErr := fileutil.ReadLimited(opts.File)
		if readErr != nil {
			return nil, errors.Wrap(readErr, "reading catalog file")
		}
		c, err = Parse(data)
	} else {
		c, err = Default()
	}
	if err != nil {
		return nil, err
	}

	if opts.FAQDir != "" {
		extra, err := LoadFAQDir(opts.FAQDir)
		if err != nil {
			return nil, err
		}
		if len(extra) > 0 {
			c.FAQs = append(c.FAQs, extra...)
			if err := c.Validate(); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// CommitteeFilterOptions returns All followed by the committee categories.
func (c *Catalog) CommitteeFilterOptions() []string {
	return append([]string{filter.All}, c.CommitteeCategories...)
}

// FAQFilterOptions returns All followed by the FAQ categories.
func (c *Catalog) FAQFilterOptions() []string {
	return append([]string{filter.All}, c.FAQCategories...)
}

// ValidCommitteeCategory reports whether category is All, empty or known.
func (c *Catalog) ValidCommitteeCategory(category string) bool {
	return category == "" || slices.Contains(c.CommitteeFilterOptions(), category)
}

// ValidFAQCategory reports whether category is All, empty or known.
func (c *Catalog) ValidFAQCategory(category string) bool {
	return category == "" || slices.Contains(c.FAQFilterOptions(), category)
}

// SearchCommittees narrows committees by category, then by query over
// name, description and category.
func (c *Catalog) SearchCommittees(category, query string) []Committee {
	return filter.Apply(c.Committees,
		filter.Category(category),
		filter.Text(query, CommitteeTextFields...))
}

// SearchFAQs narrows FAQs by category, then by query over question, answer
// and category.
func (c *Catalog) SearchFAQs(category, query string) []FAQ {
	return filter.Apply(c.FAQs,
		filter.Category(category),
		filter.Text(query, FAQTextFields...))
}

// Committee returns the committee with the given id or name.
func (c *Catalog) Committee(key string) (Committee, bool) {
	for _, cm := range c.Committees {
		if cm.ID == key || cm.Name == key {
			return cm, true
		}
	}
	return Committee{}, false
}

// CommitteeNames lists committee names in catalog order.
func (c *Catalog) CommitteeNames() []string {
	names := make([]string, len(c.Committees))
	for i, cm := range c.Committees {
		names[i] = cm.Name
	}
	return names
}

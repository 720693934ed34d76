package catalog

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/validation"
)

// CommitteeRules is the rule table every committee entry must pass.
func (c *Catalog) CommitteeRules() validation.RuleSet {
	return validation.RuleSet{
		validation.Required("id", "id is required"),
		validation.Required("name", "name is required"),
		validation.Required("description", "description is required"),
		validation.Required("category", "type is required"),
		validation.In("category", "type must be one of: "+strings.Join(c.CommitteeCategories, ", "), c.CommitteeCategories...),
		validation.In("difficulty", "difficulty must be one of: "+strings.Join(c.Difficulties, ", "), c.Difficulties...),
	}
}

// FAQRules is the rule table every FAQ entry must pass.
func (c *Catalog) FAQRules() validation.RuleSet {
	return validation.RuleSet{
		validation.Required("question", "question is required"),
		validation.Required("answer", "answer is required"),
		validation.Required("category", "category is required"),
		validation.In("category", "category must be one of: "+strings.Join(c.FAQCategories, ", "), c.FAQCategories...),
	}
}

func (cm Committee) record() validation.Record {
	return validation.Record{
		"id":          cm.ID,
		"name":        cm.Name,
		"description": cm.Description,
		"difficulty":  cm.Difficulty,
		"category":    cm.Category,
	}
}

func (f FAQ) record() validation.Record {
	return validation.Record{
		"question": f.Question,
		"answer":   f.Answer,
		"category": f.Category,
	}
}

// Validate checks every committee and FAQ against the catalog rule tables
// and rejects duplicate committee ids. The returned error wraps
// errors.ErrInvalidConfig and lists each failing entry.
func (c *Catalog) Validate() error {
	var problems []string

	committeeRules := c.CommitteeRules()
	seen := make(map[string]bool, len(c.Committees))
	for i, cm := range c.Committees {
		label := fmt.Sprintf("committee[%d]", i)
		if cm.ID != "" {
			label = fmt.Sprintf("committee %q", cm.ID)
			if seen[cm.ID] {
				problems = append(problems, label+": duplicate id")
			}
			seen[cm.ID] = true
		}
		problems = appendIssues(problems, label, validation.Validate(cm.record(), committeeRules), committeeRules)
	}

	faqRules := c.FAQRules()
	for i, f := range c.FAQs {
		label := fmt.Sprintf("faq[%d]", i)
		problems = appendIssues(problems, label, validation.Validate(f.record(), faqRules), faqRules)
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidConfig, "catalog: %s", strings.Join(problems, "; "))
}

func appendIssues(problems []string, label string, res validation.Result, rules validation.RuleSet) []string {
	for _, issue := range res.Issues(rules) {
		problems = append(problems, label+": "+issue.String())
	}
	return problems
}

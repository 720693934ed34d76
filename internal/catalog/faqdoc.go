package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/validation"
	"github.com/thoreinstein/munconf/pkg/fileutil"
	"github.com/thoreinstein/munconf/pkg/frontmatter"
)

// ErrMissingFrontmatter is returned for FAQ documents without a YAML header.
var ErrMissingFrontmatter = frontmatter.ErrMissingFrontmatter

// faqHeader is the frontmatter of an FAQ document. The markdown body is the answer.
type faqHeader struct {
	Question string `yaml:"question"`
	Category string `yaml:"category"`
}

// ParseFAQDoc reads an FAQ from markdown with YAML frontmatter:
//
//	---
//	question: Is there a refund policy?
//	category: Registration
//	---
//	Refunds are available until February 1.
func ParseFAQDoc(content []byte) (FAQ, error) {
	var h faqHeader
	body, err := frontmatter.Parse(bytes.NewReader(content), &h)
	if err != nil {
		return FAQ{}, err
	}

	return FAQ{
		Question: strings.TrimSpace(h.Question),
		Answer:   strings.TrimSpace(string(body)),
		Category: strings.TrimSpace(h.Category),
	}, nil
}

// FormatFAQDoc renders f in the layout ParseFAQDoc reads.
func FormatFAQDoc(f FAQ) ([]byte, error) {
	return frontmatter.Format(faqHeader{Question: f.Question, Category: f.Category}, strings.TrimSpace(f.Answer))
}

// FAQDocName derives a markdown file name from a question, e.g.
// "Où est le déjeuner ?" becomes "ou-est-le-dejeuner.md". Accents are
// folded and every run of other characters becomes a single dash.
func FAQDocName(question string) string {
	folded, _, err := transform.String(foldAccents(), question)
	if err != nil {
		folded = question
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	if b.Len() == 0 {
		return "faq.md"
	}
	return b.String() + ".md"
}

func foldAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// ValidateFAQ checks a single entry against FAQRules.
func (c *Catalog) ValidateFAQ(f FAQ) validation.Result {
	return validation.Validate(f.record(), c.FAQRules())
}

// LoadFAQDir parses every *.md file in dir, in file name order.
// A missing directory yields no documents.
func LoadFAQDir(dir string) ([]FAQ, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading FAQ directory %s", dir)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)

	faqs := make([]FAQ, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := fileutil.ReadLimited(path)
		if err != nil {
			return nil, err
		}
		faq, err := ParseFAQDoc(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		faqs = append(faqs, faq)
	}

	return faqs, nil
}

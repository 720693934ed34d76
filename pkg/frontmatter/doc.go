// Package frontmatter reads and writes Markdown documents that carry a YAML
// header, the format munconf uses for FAQ entries kept outside the catalog.
//
// The header is delimited by lines containing only "---". Everything after
// the closing delimiter is the body:
//
//	---
//	question: Is there a refund policy?
//	category: Registration
//	---
//	Refunds are available until February 1.
//
// [Parse] unmarshals the header into any yaml.v3 target and returns the body.
// Documents without a header fail with [ErrMissingFrontmatter]; a header
// without a closing delimiter fails with [ErrUnterminated]. Both LF and CRLF
// line endings are accepted. [Format] produces the same layout.
package frontmatter

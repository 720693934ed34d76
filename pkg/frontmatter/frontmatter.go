package frontmatter

import (
	"bytes"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/munconf/internal/errors"
)

const delimiter = "---"

var (
	// ErrMissingFrontmatter is returned when a document does not open with "---".
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrUnterminated is returned when the header has no closing "---" line.
	ErrUnterminated = errors.New("missing closing frontmatter delimiter")
)

// Parse splits r into header and body, unmarshals the header into matter and
// returns the body with its leading blank lines removed.
func Parse[T any](r io.Reader, matter *T) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(content, []byte(delimiter+"\n")) {
		return nil, ErrMissingFrontmatter
	}
	rest := content[len(delimiter)+1:]

	var header, body []byte
	switch {
	case bytes.HasPrefix(rest, []byte(delimiter+"\n")), bytes.Equal(rest, []byte(delimiter)):
		// empty header
		body = bytes.TrimPrefix(rest, []byte(delimiter))
	default:
		var found bool
		header, body, found = bytes.Cut(rest, []byte("\n"+delimiter+"\n"))
		if !found {
			header, found = bytes.CutSuffix(rest, []byte("\n"+delimiter))
			if !found {
				return nil, ErrUnterminated
			}
			body = nil
		}
	}

	if err := yaml.Unmarshal(header, matter); err != nil {
		return nil, errors.Wrap(err, "parsing frontmatter")
	}

	return bytes.TrimLeft(body, "\n"), nil
}

// Format renders matter as a YAML header followed by body. A non-empty body
// is separated from the header by a blank line and ends with a newline.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}

	buf.WriteString(delimiter + "\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}

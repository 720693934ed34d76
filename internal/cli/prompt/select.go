// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thoreinstein/munconf/internal/errors"
)

// Sentinel errors for selection.
var (
	ErrNoChoices          = errors.New("nothing to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector asks the user to pick one entry from a numbered list.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector reads answers from r and writes the list and prompt to w.
func NewSelector(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// Select prints labels as a numbered list under title and returns the
// zero-based index chosen.
//
// Returns:
//   - ErrNoChoices if labels is empty
//   - 0 without prompting if there is a single label
//   - 0 on empty input
//   - ErrInvalidSelection if the input is not a number in range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) Select(title string, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, ErrNoChoices
	}
	if len(labels) == 1 {
		return 0, nil
	}

	fmt.Fprintf(s.writer, "%s:\n", title)
	for i, label := range labels {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, label)
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(input) == "" {
			return 0, ErrSelectionCancelled
		}
		if !errors.Is(err, io.EOF) {
			return 0, errors.Wrap(err, "reading selection")
		}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > len(labels) {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(labels))
	}

	return selection - 1, nil
}

package commands

import (
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"
	"golang.org/x/term"

	"github.com/thoreinstein/munconf/internal/catalog"
	"github.com/thoreinstein/munconf/internal/cli/prompt"
	"github.com/thoreinstein/munconf/internal/errors"
)

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	if f, ok := r.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// find lets the user pick one of items. On a terminal it runs the fuzzy
// finder; otherwise it falls back to a numbered prompt read from in.
// ok is false when the user aborts.
func find[T any](in io.Reader, w io.Writer, title string, items []T, label, preview func(T) string) (item T, ok bool, err error) {
	if !isTerminal(in) {
		labels := make([]string, len(items))
		for i, it := range items {
			labels[i] = label(it)
		}
		idx, err := prompt.NewSelector(in, w).Select(title, labels)
		if err != nil {
			if errors.Is(err, prompt.ErrSelectionCancelled) {
				return item, false, nil
			}
			return item, false, errors.NewUserError(err, "Enter the number of an entry")
		}
		fmt.Fprintln(w)
		return items[idx], true, nil
	}

	idx, err := fuzzyfinder.Find(
		items,
		func(i int) string { return label(items[i]) },
		fuzzyfinder.WithPromptString(title+"> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(items[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return item, false, nil
		}
		return item, false, errors.Wrap(err, "interactive search failed")
	}
	return items[idx], true, nil
}

func pickCommittee(in io.Reader, w io.Writer, committees []catalog.Committee) error {
	if len(committees) == 0 {
		_, err := fmt.Fprintln(w, noCommittees)
		return err
	}

	cm, ok, err := find(in, w, "Committees", committees,
		func(cm catalog.Committee) string { return fmt.Sprintf("%s (%s)", cm.Name, cm.Category) },
		describeCommittee)
	if err != nil || !ok {
		return err
	}
	_, err = fmt.Fprint(w, describeCommittee(cm))
	return err
}

func pickFAQ(in io.Reader, w io.Writer, faqs []catalog.FAQ) error {
	if len(faqs) == 0 {
		_, err := fmt.Fprintln(w, noFAQs)
		return err
	}

	f, ok, err := find(in, w, "Questions", faqs,
		func(f catalog.FAQ) string { return fmt.Sprintf("%s: %s", f.Category, f.Question) },
		describeFAQ)
	if err != nil || !ok {
		return err
	}
	_, err = fmt.Fprint(w, describeFAQ(f))
	return err
}

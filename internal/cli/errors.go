package cli

import (
	"errors"
	"strings"
)

// Causes splits an error chain into one message per wrapping level, outermost
// first. Each level keeps only the text it added on top of its cause.
// Errors built by errors.Join contribute the causes of each joined error.
func Causes(err error) []string {
	var msgs []string
	for err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			return append(msgs, joinedCauses(err, joined.Unwrap())...)
		}

		msg := err.Error()
		next := errors.Unwrap(err)
		if next != nil {
			msg = strings.TrimSuffix(msg, ": "+next.Error())
		}
		if msg != "" {
			msgs = append(msgs, msg)
		}
		err = next
	}
	return msgs
}

func joinedCauses(err error, errs []error) []string {
	var msgs, texts []string
	for _, e := range errs {
		if e == nil {
			continue
		}
		texts = append(texts, e.Error())
		msgs = append(msgs, Causes(e)...)
	}
	// A multi-%w fmt.Errorf carries text of its own
	if msg := err.Error(); msg != strings.Join(texts, "\n") {
		msgs = append([]string{msg}, msgs...)
	}
	return msgs
}

// FormatError renders err as "  error: ..." followed by " due to: ..." lines
func FormatError(err error) string {
	causes := Causes(err)
	if len(causes) == 0 {
		return "  error: unknown error\n"
	}

	var b strings.Builder
	b.WriteString("  error: " + causes[0] + "\n")
	for _, cause := range causes[1:] {
		b.WriteString(" due to: " + cause + "\n")
	}
	return b.String()
}

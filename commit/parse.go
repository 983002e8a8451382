package commit

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Ref is a pull request reference parsed from a merge commit subject.
type Ref struct {
	Number int
	Owner  string
}

// ParseError is returned when a line isn't a recognizable merge commit
// subject.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("commit: unable to parse %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errNoMatch       = errors.New("not a merge pull request subject")
	mergeSubjectRE   = regexp.MustCompile(`^Merge pull request #(\d+) from (.+)/.*$`)
	mergeSubjectDesc = "Merge pull request #<number> from <owner>/<branch>"
)

// ParseTitle parses a subject like "Merge pull request #2424 from
// desktop/fix-shrinkwrap-file".
func ParseTitle(line string) (Ref, error) {
	m := mergeSubjectRE.FindStringSubmatch(line)
	if len(m) != 3 {
		return Ref{}, &ParseError{Line: line, Err: fmt.Errorf("%w (want %q)", errNoMatch, mergeSubjectDesc)}
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Ref{}, &ParseError{Line: line, Err: fmt.Errorf("pull request number %q: %w", m[1], err)}
	}
	return Ref{Number: n, Owner: m[2]}, nil
}

package commit

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeffrom/changelog/model"
)

var fixesRE = regexp.MustCompile(`(?i)Fixes #(\d+)`)

// Classify returns the change type of a pull request along with the issue
// references its body closes, each formatted as " #<n>".
func Classify(pr *model.PullRequest) (ChangeType, []string) {
	var refs []string
	for _, m := range fixesRE.FindAllStringSubmatch(pr.Body, -1) {
		refs = append(refs, " #"+m[1])
	}
	if len(refs) == 0 {
		return ChangeUnknown, nil
	}
	return ChangeFixed, refs
}

// FormatEntry renders a changelog line for the pull request with the given
// number:
//
//	[Fixed] Fix the thing - #10 #20
//
// When the body doesn't close any issues the pull request number is
// referenced instead, and the type is Placeholder.
func FormatEntry(number int, pr *model.PullRequest) string {
	typ, refs := Classify(pr)
	issueRef := strings.Join(refs, "")
	if typ != ChangeFixed {
		issueRef = fmt.Sprintf(" #%d", number)
	}
	return fmt.Sprintf("[%s] %s -%s", typ, capitalize(pr.Title), issueRef)
}

// PlaceholderEntry is the entry used for a line that couldn't be resolved.
func PlaceholderEntry(line string) string {
	return fmt.Sprintf("[%s] %s", Placeholder, line)
}

// capitalize uppercases the first character only. The rest of the string is
// left alone.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

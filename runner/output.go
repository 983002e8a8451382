package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"text/template"

	"github.com/jeffrom/changelog/config"
)

const defaultTextTemplate = `{{ range .Entries }}{{ . }}
{{ end }}`

type textData struct {
	Since   string
	Entries []string
	Results []Result
}

func newTemplate(s string) (*template.Template, error) {
	if s == "" {
		s = defaultTextTemplate
	}
	return template.New("changelog").Parse(s)
}

// Write writes the changelog in the configured format.
func (r *Runner) Write(ctx context.Context, w io.Writer, cl *Changelog) error {
	if r.cfg.Format == config.FormatText {
		return r.tmpl.Execute(w, textData{Since: cl.Since, Entries: cl.Entries(), Results: cl.Results})
	}
	return WriteJSON(w, cl.Entries())
}

// WriteJSON writes entries as a single JSON array followed by a newline.
func WriteJSON(w io.Writer, entries []string) error {
	if entries == nil {
		entries = []string{}
	}
	b := &bytes.Buffer{}
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	_, err := w.Write(b.Bytes())
	return err
}

// ReadLines reads commit subjects from r. Subjects are NUL-separated, as
// written by git log -z, or newline-separated when there are no NULs.
func ReadLines(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := string(b)
	sep := "\n"
	if strings.Contains(s, "\x00") {
		sep = "\x00"
	}
	s = strings.TrimSuffix(s, sep)
	if sep == "\n" {
		s = strings.TrimSuffix(s, "\r")
	}
	if s == "" {
		return nil, nil
	}

	lines := strings.Split(s, sep)
	if sep == "\n" {
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines, nil
}

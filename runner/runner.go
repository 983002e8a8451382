// Package runner turns merge commits into changelog entries.
package runner

import (
	"context"
	"fmt"
	"text/template"

	"github.com/jeffrom/changelog/commit"
	"github.com/jeffrom/changelog/config"
	"github.com/jeffrom/changelog/model"
	"github.com/jeffrom/changelog/tracker"
	"github.com/jeffrom/changelog/vcs"
)

type Runner struct {
	cfg     config.Config
	vcs     vcs.Interface
	tracker tracker.Interface
	tmpl    *template.Template
}

func New(cfg config.Config, vcs vcs.Interface, tracker tracker.Interface) (*Runner, error) {
	tmpl, err := newTemplate(cfg.Template)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:     cfg,
		vcs:     vcs,
		tracker: tracker,
		tmpl:    tmpl,
	}, nil
}

// Result is the outcome for one log line. Entry is always set; when Err is
// non-nil it's the placeholder entry for Line.
type Result struct {
	Line  string
	Ref   commit.Ref
	Type  commit.ChangeType
	Entry string
	Err   error
}

func (r Result) OK() bool { return r.Err == nil }

// Changelog is a complete run over a log range.
type Changelog struct {
	Since   string
	Results []Result
}

// Entries returns one entry per result, in order.
func (cl *Changelog) Entries() []string {
	entries := make([]string, len(cl.Results))
	for i, res := range cl.Results {
		entries[i] = res.Entry
	}
	return entries
}

// Changelog reads the merge commits in HEAD...rc and resolves each one. When
// rc is empty the latest release tag is used.
func (r *Runner) Changelog(ctx context.Context, rc string) (*Changelog, error) {
	if r.cfg.Fetch {
		r.cfg.Printf("Fetching tags from %s...", r.cfg.Upstream)
		if err := r.vcs.Fetch(ctx, r.cfg.Upstream, vcs.TagsRefSpec); err != nil {
			return nil, err
		}
	}

	since, err := r.Since(ctx, rc)
	if err != nil {
		return nil, err
	}
	commits, err := r.vcs.ReadMergeCommits(ctx, since)
	if err != nil {
		return nil, err
	}
	r.cfg.Debugf("%d merge commits since %s", len(commits), since)
	for _, c := range commits {
		r.cfg.Debugf("  %s %s", c.ShortID(), c.Subject)
	}

	return &Changelog{
		Since:   since,
		Results: r.Entries(ctx, model.Subjects(commits)),
	}, nil
}

// Since returns rc, or the latest release tag matching the configured tag
// query when rc is empty.
func (r *Runner) Since(ctx context.Context, rc string) (string, error) {
	if rc != "" {
		return rc, nil
	}
	tags, err := r.vcs.ReadTags(ctx, r.cfg.TagQuery)
	if err != nil {
		return "", err
	}
	tag, v, err := commit.LatestRelease(tags, commit.TagPrefix(r.cfg.TagQuery))
	if err != nil {
		return "", fmt.Errorf("%w matching %q, pass the previous version explicitly", err, r.cfg.TagQuery)
	}
	r.cfg.Debugf("latest release is %s (%s)", tag, v)
	return tag, nil
}

// Entries resolves each line in order, one pull request at a time. Lines that
// can't be parsed or resolved get a placeholder entry, so there is always
// exactly one result per line.
func (r *Runner) Entries(ctx context.Context, lines []string) []Result {
	results := make([]Result, len(lines))
	for i, line := range lines {
		res := r.entry(ctx, line)
		if res.Err != nil {
			r.cfg.Warnf("Unable to parse line, using the full message: %v", res.Err)
		}
		results[i] = res
	}
	return results
}

func (r *Runner) entry(ctx context.Context, line string) Result {
	res := Result{Line: line, Type: commit.ChangeUnknown}
	ref, err := commit.ParseTitle(line)
	if err != nil {
		return res.fail(err)
	}
	res.Ref = ref

	pr, err := r.tracker.PullRequest(ctx, ref.Number)
	if err == nil && pr == nil {
		err = tracker.NotFoundError{Number: ref.Number}
	}
	if err != nil {
		return res.fail(err)
	}

	res.Type, _ = commit.Classify(pr)
	res.Entry = commit.FormatEntry(ref.Number, pr)
	return res
}

func (r Result) fail(err error) Result {
	r.Err = err
	r.Type = commit.ChangeUnknown
	r.Entry = commit.PlaceholderEntry(r.Line)
	return r
}

// ResolveRepository returns the configured repository, or reads it from the
// upstream remote's URL.
func ResolveRepository(ctx context.Context, cfg config.Config, v vcs.Interface) (string, error) {
	if cfg.Repository != "" {
		return cfg.Repository, nil
	}
	name, err := v.ReadNameFromRemoteURL(ctx, cfg.Upstream)
	if err != nil {
		return "", fmt.Errorf("could not determine the repository from remote %q, set --repo: %w", cfg.Upstream, err)
	}
	cfg.Debugf("repository is %s (from %s)", name, cfg.Upstream)
	return name, nil
}

// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jeffrom/changelog/config"
	"github.com/jeffrom/changelog/model"
	"github.com/jeffrom/changelog/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

func (g *Git) Fetch(ctx context.Context, upstream, refspec string) error {
	if upstream == "" {
		upstream = "origin"
	}
	args := []string{"fetch", "--quiet", upstream}
	if refspec != "" {
		args = append(args, refspec)
	}
	_, err := g.call(ctx, args)
	return err
}

const expectedLogParts = 4

func (g *Git) ReadMergeCommits(ctx context.Context, since string) ([]*model.Commit, error) {
	if since == "" {
		return nil, errors.New("gitcli: a lower bound for the log range is required")
	}
	args := []string{
		"log", "..." + since,
		"--merges",
		"--grep=" + vcs.MergeGrep,
		"--format=format:%H%x1f%aN%x1f%ci%x1f%s",
		"-z",
		"--",
	}
	b, err := g.call(ctx, args)
	if err != nil {
		var ce *callError
		if errors.As(err, &ce) && ce.unknownRevision() {
			return nil, vcs.NotFoundError{Ref: since}
		}
		return nil, err
	}

	var commits []*model.Commit
	for _, rec := range bytes.Split(b, []byte{0}) {
		if len(rec) == 0 {
			continue
		}
		parts := strings.SplitN(string(rec), "\x1f", expectedLogParts)
		if len(parts) != expectedLogParts {
			return nil, fmt.Errorf("gitcli: expected %d parts from git log, got %d: %q", expectedLogParts, len(parts), rec)
		}

		committerDate, err := ParseGitISO8601(parts[2])
		if err != nil {
			return nil, err
		}
		commits = append(commits, &model.Commit{
			ID:            parts[0],
			Author:        parts[1],
			CommitterDate: committerDate,
			Subject:       parts[3],
		})
	}
	return commits, nil
}

func (g *Git) ReadTags(ctx context.Context, query string) ([]string, error) {
	args := []string{
		"tag",
	}
	if query != "" {
		args = append(args, "-l", query)
	}
	b, err := g.call(ctx, args)
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, line := range strings.Split(string(b), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			tags = append(tags, line)
		}
	}
	return tags, nil
}

func (g *Git) ReadNameFromRemoteURL(ctx context.Context, upstream string) (string, error) {
	b, err := g.call(ctx, []string{"remote", "get-url", upstream})
	if err != nil {
		return "", vcs.NotFoundError{Ref: upstream}
	}
	return vcs.ParseRemoteURL(strings.TrimSuffix(string(b), "\n"))
}

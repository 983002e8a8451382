// Package vcs abstracts version control systems. There are two git
// implementations: vcs/gitcli, which runs the git binary, and vcs/gogit.
package vcs

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jeffrom/changelog/model"
)

// MergeGrep is matched against commit messages to find pull request merges.
const MergeGrep = "Merge pull request"

// TagsRefSpec fetches all tags from a remote.
const TagsRefSpec = "+refs/tags/*:refs/tags/*"

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

type Interface interface {
	Fetch(ctx context.Context, upstream, refspec string) error

	// ReadMergeCommits returns the pull request merge commits in the
	// symmetric range HEAD...since, in log order.
	ReadMergeCommits(ctx context.Context, since string) ([]*model.Commit, error)
	ReadTags(ctx context.Context, query string) ([]string, error)
	ReadNameFromRemoteURL(ctx context.Context, upstream string) (string, error)
}

// ParseRemoteURL returns owner/name from a GitHub remote URL. Both
// https://github.com/owner/name.git and git@github.com:owner/name.git forms
// are accepted.
func ParseRemoteURL(remote string) (string, error) {
	remote = strings.TrimSpace(remote)
	var p string
	if u, err := url.Parse(remote); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	} else if i := strings.Index(remote, ":"); i >= 0 && !strings.Contains(remote[:i], "/") {
		// scp-like syntax
		p = remote[i+1:]
	} else {
		return "", fmt.Errorf("vcs: unrecognized remote url %q", remote)
	}

	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	parts := strings.Split(p, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", fmt.Errorf("vcs: no owner/name in remote url %q", remote)
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1], nil
}

// Subject returns the first paragraph of a commit message joined onto one
// line, the same way git's %s does.
func Subject(message string) string {
	message = strings.TrimLeft(message, "\n")
	if i := strings.Index(message, "\n\n"); i >= 0 {
		message = message[:i]
	}
	lines := strings.Split(strings.TrimSpace(message), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}

// Package gogit implements vcs.Interface on top of go-git, so no git binary
// is needed.
package gogit

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/jeffrom/changelog/config"
	"github.com/jeffrom/changelog/model"
	"github.com/jeffrom/changelog/vcs"
)

type Git struct {
	cfg  config.Config
	repo *git.Repository
}

// New opens the repository containing wd.
func New(cfg config.Config, wd string) (*Git, error) {
	if wd == "" {
		wd = "."
	}
	repo, err := git.PlainOpenWithOptions(wd, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("gogit: open %s: %w", wd, err)
	}
	return NewFromRepository(cfg, repo), nil
}

func NewFromRepository(cfg config.Config, repo *git.Repository) *Git {
	return &Git{cfg: cfg, repo: repo}
}

func (g *Git) Fetch(ctx context.Context, upstream, refspec string) error {
	if upstream == "" {
		upstream = git.DefaultRemoteName
	}
	opts := &git.FetchOptions{RemoteName: upstream}
	if refspec != "" {
		opts.RefSpecs = []gitconfig.RefSpec{gitconfig.RefSpec(refspec)}
	}
	g.cfg.Debugf("fetching %s from %s", refspec, upstream)
	err := g.repo.FetchContext(ctx, opts)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}

// ReadMergeCommits walks both sides of HEAD...since and keeps the merge
// commits whose message mentions a pull request. Commits are ordered by
// committer date, newest first, which is git log's default order for
// unrelated histories.
func (g *Git) ReadMergeCommits(ctx context.Context, since string) ([]*model.Commit, error) {
	if since == "" {
		return nil, errors.New("gogit: a lower bound for the log range is required")
	}
	head, err := g.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("gogit: resolve HEAD: %w", err)
	}
	sinceHash, err := g.repo.ResolveRevision(plumbing.Revision(since))
	if err != nil {
		return nil, vcs.NotFoundError{Ref: since}
	}

	headSet, err := g.ancestors(ctx, head.Hash())
	if err != nil {
		return nil, err
	}
	sinceSet, err := g.ancestors(ctx, *sinceHash)
	if err != nil {
		return nil, err
	}

	var found []*object.Commit
	for _, pair := range [][2]map[plumbing.Hash]*object.Commit{{headSet, sinceSet}, {sinceSet, headSet}} {
		for h, c := range pair[0] {
			if _, ok := pair[1][h]; ok {
				continue
			}
			if c.NumParents() < 2 || !strings.Contains(c.Message, vcs.MergeGrep) {
				continue
			}
			found = append(found, c)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		a, b := found[i].Committer.When, found[j].Committer.When
		if !a.Equal(b) {
			return a.After(b)
		}
		return found[i].Hash.String() < found[j].Hash.String()
	})

	commits := make([]*model.Commit, len(found))
	for i, c := range found {
		commits[i] = &model.Commit{
			ID:            c.Hash.String(),
			Author:        c.Author.Name,
			CommitterDate: c.Committer.When,
			Subject:       vcs.Subject(c.Message),
		}
	}
	return commits, nil
}

func (g *Git) ancestors(ctx context.Context, from plumbing.Hash) (map[plumbing.Hash]*object.Commit, error) {
	iter, err := g.repo.Log(&git.LogOptions{From: from})
	if err != nil {
		return nil, fmt.Errorf("gogit: log %s: %w", from, err)
	}
	defer iter.Close()

	set := make(map[plumbing.Hash]*object.Commit)
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		set[c.Hash] = c
		return nil
	})
	return set, err
}

func (g *Git) ReadTags(ctx context.Context, query string) ([]string, error) {
	iter, err := g.repo.Tags()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if query != "" {
			ok, err := path.Match(query, name)
			if err != nil {
				return fmt.Errorf("gogit: bad tag query %q: %w", query, err)
			}
			if !ok {
				return nil
			}
		}
		tags = append(tags, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(tags)
	return tags, nil
}

func (g *Git) ReadNameFromRemoteURL(ctx context.Context, upstream string) (string, error) {
	remote, err := g.repo.Remote(upstream)
	if err != nil {
		return "", vcs.NotFoundError{Ref: upstream}
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", vcs.NotFoundError{Ref: upstream}
	}
	return vcs.ParseRemoteURL(urls[0])
}

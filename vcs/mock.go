package vcs

import (
	"context"
	"strings"
	"time"

	"github.com/jeffrom/changelog/model"
)

type Mock struct {
	t         time.Time
	tags      []string
	commits   []*model.Commit
	remoteURL string

	Fetches   int
	LastSince string
	ReadErr   error
}

func NewMock() *Mock {
	return &Mock{
		t: time.Now(),
	}
}

func (m *Mock) SetTags(tags ...string) *Mock {
	m.tags = tags
	return m
}

func (m *Mock) SetRemoteURL(u string) *Mock {
	m.remoteURL = u
	return m
}

// SetSubjects sets merge commits with the given subjects, newest first.
func (m *Mock) SetSubjects(subjects ...string) *Mock {
	commits := make([]*model.Commit, len(subjects))
	for i, s := range subjects {
		commits[i] = &model.Commit{Subject: s}
	}
	return m.SetCommits(commits...)
}

func (m *Mock) SetCommits(commits ...*model.Commit) *Mock {
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		if c.CommitterDate.IsZero() {
			c.CommitterDate = m.t
			m.t = m.t.Add(-time.Minute)
		}
		finalCommits[i] = &c
	}
	m.commits = finalCommits
	return m
}

func (m *Mock) Fetch(ctx context.Context, upstream, refspec string) error {
	m.Fetches++
	return nil
}

func (m *Mock) ReadTags(ctx context.Context, query string) ([]string, error) {
	var tags []string
	for _, t := range m.tags {
		if globMatches(t, query) {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

func (m *Mock) ReadMergeCommits(ctx context.Context, since string) ([]*model.Commit, error) {
	m.LastSince = since
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return m.commits, nil
}

func (m *Mock) ReadNameFromRemoteURL(ctx context.Context, upstream string) (string, error) {
	if m.remoteURL == "" {
		return "", NotFoundError{Ref: upstream}
	}
	return ParseRemoteURL(m.remoteURL)
}

func globMatches(s string, glob string) bool {
	parts := strings.Split(glob, "*")
	remaining := s
	for {
		if len(parts) == 0 {
			break
		}
		part := parts[0]
		parts = parts[1:]

		if !strings.HasPrefix(remaining, part) {
			return false
		}
		remaining = strings.TrimPrefix(remaining, part)
	}
	if len(glob) > 0 && glob[len(glob)-1] == '*' {
		return true
	}
	return remaining == ""
}

// Package tracker abstracts the issue tracker pull request metadata is read
// from. tracker/githubapi implements it for GitHub.
package tracker

import (
	"context"
	"fmt"

	"github.com/jeffrom/changelog/model"
)

// Interface for testing purposes.
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o trackerfakes/fake_interface.go . Interface
type Interface interface {
	// PullRequest returns the pull request with the given number. It returns
	// NotFoundError when there isn't one, and *FetchError when the request
	// failed or the response was malformed.
	PullRequest(ctx context.Context, number int) (*model.PullRequest, error)
}

type NotFoundError struct {
	Number int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("tracker: pull request #%d not found", e.Number)
}

type FetchError struct {
	Number int
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("tracker: failed to fetch pull request #%d: %v", e.Number, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

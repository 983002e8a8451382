// Package githubapi implements tracker.Interface with the GitHub V3 (REST)
// and V4 (GraphQL) APIs.
package githubapi

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/jeffrom/changelog/config"
	"github.com/jeffrom/changelog/tracker"
)

// New returns the client selected by cfg.API, authenticated with cfg.Token.
func New(ctx context.Context, cfg config.Config) (tracker.Interface, error) {
	owner, repository, err := config.ParseRepository(cfg.Repository)
	if err != nil {
		return nil, err
	}
	client := NewHTTPClient(ctx, cfg.Token)

	switch cfg.API {
	case config.APIGraphQL:
		return NewGraphQLClient(client, cfg.APIURL, owner, repository)
	default:
		return NewRESTClient(client, cfg.APIURL, owner, repository)
	}
}

// NewHTTPClient returns an http client that sends token with each request.
func NewHTTPClient(ctx context.Context, token string) *http.Client {
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}

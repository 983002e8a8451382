package githubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/github"

	"github.com/jeffrom/changelog/model"
	"github.com/jeffrom/changelog/tracker"
)

// RESTClient reads pull requests with the V3 API.
type RESTClient struct {
	V3         *github.Client
	Owner      string
	Repository string
}

func NewRESTClient(client *http.Client, endpoint, owner, repository string) (*RESTClient, error) {
	var v3 *github.Client
	if endpoint != "" {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to parse v3 endpoint: %s", err)
		}
		v3, err = github.NewEnterpriseClient(u.String(), u.String(), client)
		if err != nil {
			return nil, err
		}
	} else {
		v3 = github.NewClient(client)
	}
	return &RESTClient{
		V3:         v3,
		Owner:      owner,
		Repository: repository,
	}, nil
}

func (c *RESTClient) PullRequest(ctx context.Context, number int) (*model.PullRequest, error) {
	pr, resp, err := c.V3.PullRequests.Get(ctx, c.Owner, c.Repository, number)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, tracker.NotFoundError{Number: number}
		}
		return nil, &tracker.FetchError{Number: number, Err: err}
	}
	if pr == nil {
		return nil, tracker.NotFoundError{Number: number}
	}
	if pr.Title == nil {
		return nil, &tracker.FetchError{Number: number, Err: errors.New("response has no title")}
	}

	return &model.PullRequest{
		Number: number,
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
	}, nil
}

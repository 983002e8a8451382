package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shurcooL/githubv4"

	"github.com/jeffrom/changelog/model"
	"github.com/jeffrom/changelog/tracker"
)

// GraphQLClient reads pull requests with the V4 API.
type GraphQLClient struct {
	V4         *githubv4.Client
	Owner      string
	Repository string
}

func NewGraphQLClient(client *http.Client, endpoint, owner, repository string) (*GraphQLClient, error) {
	var v4 *githubv4.Client
	if endpoint != "" {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to parse v4 endpoint: %s", err)
		}
		v4 = githubv4.NewEnterpriseClient(u.String(), client)
	} else {
		v4 = githubv4.NewClient(client)
	}
	return &GraphQLClient{
		V4:         v4,
		Owner:      owner,
		Repository: repository,
	}, nil
}

// PullRequestObject represents the GraphQL pull request node.
// https://developer.github.com/v4/object/pullrequest/
type PullRequestObject struct {
	Number int
	Title  string
	Body   string
}

func (c *GraphQLClient) PullRequest(ctx context.Context, number int) (*model.PullRequest, error) {
	var query struct {
		Repository struct {
			PullRequest *PullRequestObject `graphql:"pullRequest(number:$prNumber)"`
		} `graphql:"repository(owner:$repositoryOwner,name:$repositoryName)"`
	}

	vars := map[string]interface{}{
		"repositoryOwner": githubv4.String(c.Owner),
		"repositoryName":  githubv4.String(c.Repository),
		"prNumber":        githubv4.Int(number),
	}
	if err := c.V4.Query(ctx, &query, vars); err != nil {
		if strings.Contains(err.Error(), "Could not resolve to a PullRequest") {
			return nil, tracker.NotFoundError{Number: number}
		}
		return nil, &tracker.FetchError{Number: number, Err: err}
	}

	pr := query.Repository.PullRequest
	if pr == nil {
		return nil, tracker.NotFoundError{Number: number}
	}
	return &model.PullRequest{
		Number: number,
		Title:  pr.Title,
		Body:   pr.Body,
	}, nil
}

package model

// PullRequest is the issue tracker metadata an entry is rendered from.
type PullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

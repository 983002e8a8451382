// Package model contains the data shared between the vcs, tracker and runner
// packages.
package model

import "time"

// Commit is a merge commit read from version control. Subject is the only
// field the changelog is built from.
type Commit struct {
	ID            string `json:"commit"`
	Author        string `json:"author,omitempty"`
	CommitterDate time.Time
	Subject       string `json:"subject"`
}

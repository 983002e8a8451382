// Package changelog generates release notes from the pull requests merged
// since a previous release.
//
// Related packages: config, commit, runner, model, tracker, tracker/githubapi,
// vcs, vcs/gitcli, vcs/gogit
package changelog

import "github.com/jeffrom/changelog/config"

// Config holds the configuration for a changelog run.
//
// See "go doc github.com/jeffrom/changelog/config Config" for more information.
type Config = config.Config

// Package config holds the changelog configuration and the terminal helpers
// used for diagnostics.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/imdario/mergo"
)

// TokenEnv names the environment variable holding the GitHub access token.
const TokenEnv = "GITHUB_ACCESS_TOKEN"

var ErrMissingToken = fmt.Errorf("You need to provide a %s environment variable", TokenEnv)

const (
	APIREST    = "rest"
	APIGraphQL = "graphql"

	VCSGit   = "git"
	VCSGoGit = "go-git"

	FormatJSON = "json"
	FormatText = "text"
)

// Config holds the configuration for a changelog run. It's read from
// changelog.yaml and command-line flags, so fields carry json tags (ghodss/yaml
// uses them too).
type Config struct {
	Verbose bool `json:"verbose,omitempty"`
	Quiet   bool `json:"quiet,omitempty"`

	// Repository is the GitHub repository in owner/name form. When empty it's
	// read from the Upstream remote URL.
	Repository string `json:"repository,omitempty"`

	// API selects the GitHub API used to read pull requests: rest or graphql.
	API string `json:"api,omitempty"`

	// APIURL is the GitHub Enterprise endpoint. For rest this is the base URL
	// (https://host/api/v3/), for graphql the full endpoint
	// (https://host/api/graphql).
	APIURL string `json:"api_url,omitempty"`

	// VCS selects the log reader: git (the git binary) or go-git.
	VCS      string `json:"vcs,omitempty"`
	Upstream string `json:"upstream,omitempty"`
	Fetch    bool   `json:"fetch,omitempty"`

	// TagQuery is the glob used to find the previous release when no range
	// bound is given.
	TagQuery string `json:"tag_query,omitempty"`

	// Format is the output format: json (an array of entries) or text (one
	// entry per line, rendered with Template when it's set).
	Format   string `json:"format,omitempty"`
	Template string `json:"template,omitempty"`

	Token string     `json:"-"`
	Term  TerminalIO `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

// Validate checks the configuration before any work is done.
func (c Config) Validate() error {
	switch c.API {
	case APIREST, APIGraphQL:
	default:
		return fmt.Errorf("config: invalid api %q (want %s or %s)", c.API, APIREST, APIGraphQL)
	}
	switch c.VCS {
	case VCSGit, VCSGoGit:
	default:
		return fmt.Errorf("config: invalid vcs %q (want %s or %s)", c.VCS, VCSGit, VCSGoGit)
	}
	switch c.Format {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("config: invalid format %q (want %s or %s)", c.Format, FormatJSON, FormatText)
	}
	if c.Template != "" && c.Format != FormatText {
		return fmt.Errorf("config: template requires the %s format", FormatText)
	}
	if c.Repository != "" {
		if _, _, err := ParseRepository(c.Repository); err != nil {
			return err
		}
	}
	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil {
			return fmt.Errorf("config: failed to parse api url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config: api url %q must be absolute", c.APIURL)
		}
	}
	if c.Upstream == "" {
		return errors.New("config: upstream is required")
	}
	return nil
}

// ReadToken sets Token from the environment.
func (c *Config) ReadToken() error {
	c.Token = os.Getenv(TokenEnv)
	if c.Token == "" {
		return ErrMissingToken
	}
	return nil
}

// ParseRepository splits owner/name.
func ParseRepository(s string) (string, string, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("config: malformed repository %q (want owner/name)", s)
	}
	return parts[0], parts[1], nil
}

// Printf writes a diagnostic line. stdout is reserved for the changelog so
// everything goes to stderr.
func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Printf(msg, args...)
}

// Warnf reports a recoverable problem.
func (c Config) Warnf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	prefix := "warning:"
	if c.Term.StderrIsTerminal() && os.Getenv("NO_COLOR") == "" {
		yellow := color.New(color.FgYellow)
		yellow.EnableColor()
		prefix = yellow.Sprint(prefix)
	}
	fmt.Fprintf(c.Term.Stderr, prefix+" "+msg+"\n", args...)
}

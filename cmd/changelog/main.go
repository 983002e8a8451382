package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/spf13/pflag"

	"github.com/jeffrom/changelog/config"
	"github.com/jeffrom/changelog/runner"
	"github.com/jeffrom/changelog/tracker/githubapi"
	"github.com/jeffrom/changelog/vcs"
	"github.com/jeffrom/changelog/vcs/gitcli"
	"github.com/jeffrom/changelog/vcs/gogit"
)

var (
	// overridden by go build -X
	Version string
)

const configFileName = "changelog.yaml"

func main() {
	if err := run(os.Args, nil); err != nil {
		if errors.Is(err, config.ErrMissingToken) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(rawArgs []string, termio *config.TerminalIO) error {
	cfg := config.NewWithTerminalIO(nil, termio)
	flagCfg := &config.Config{}

	var help bool
	var version bool
	var cfgFile string
	var wd string
	var printConfig bool
	var printStats bool
	flags := pflag.NewFlagSet("changelog", pflag.ContinueOnError)
	flags.SetOutput(cfg.Term.Stderr)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringVarP(&flagCfg.Repository, "repo", "r", "", "GitHub repository as `owner/name` (default: read from the upstream remote)")
	flags.StringVar(&flagCfg.API, "api", "", "GitHub `api` to read pull requests with: rest or graphql (default rest)")
	flags.StringVar(&flagCfg.APIURL, "api-url", "", "GitHub Enterprise API `url`")
	flags.StringVar(&flagCfg.VCS, "vcs", "", "read the log with `backend` git or go-git (default git)")
	flags.StringVarP(&flagCfg.Upstream, "upstream", "u", "", "upstream remote `name` (default origin)")
	flags.BoolVarP(&flagCfg.Fetch, "fetch", "f", false, "fetch tags from the upstream remote first")
	flags.StringVarP(&flagCfg.TagQuery, "tags", "t", "", "release tag `glob` used when no previous version is given (default v*)")
	flags.StringVar(&flagCfg.Format, "format", "", "output `format`: json or text (default json)")
	flags.StringVar(&flagCfg.Template, "template", "", "go text/template for the text `format`")
	flags.BoolVarP(&printStats, "stats", "S", false, "print a summary of the changelog to stderr")
	flags.StringVarP(&wd, "dir", "C", "", "run as if started in `dir`")
	flags.BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&flagCfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "print the configuration and exit")

	if err := flags.Parse(rawArgs[1:]); err != nil {
		return err
	}
	args := flags.Args()

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Term.Printf("%s\n", Version)
		return nil
	}

	fileCfg, err := readConfigYAML(cfgFile, wd)
	if err != nil {
		return err
	}
	if fileCfg != nil {
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return err
		}
	}
	if err := mergo.Merge(&cfg, flagCfg, mergo.WithOverride); err != nil {
		return err
	}
	if cfg.Verbose {
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		cfg.Debugf("config: %s", string(b))
	}
	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Term.Printf("%s", string(b))
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("expected at most one argument, the previous version, got %d", len(args))
	}
	if err := cfg.ReadToken(); err != nil {
		return err
	}
	// done setting up config

	var rc string
	if len(args) > 0 {
		rc = args[0]
	}
	fromStdin := rc == "-" && cfg.Term.StdinIsPipe()
	ctx := context.Background()

	var v vcs.Interface
	if !fromStdin || cfg.Repository == "" {
		v, err = newVCS(cfg, wd)
		if err != nil {
			return err
		}
	}
	cfg.Repository, err = runner.ResolveRepository(ctx, cfg, v)
	if err != nil {
		return err
	}

	tr, err := githubapi.New(ctx, cfg)
	if err != nil {
		return err
	}
	rnr, err := runner.New(cfg, v, tr)
	if err != nil {
		return err
	}

	var cl *runner.Changelog
	if fromStdin {
		lines, err := runner.ReadLines(cfg.Term.Stdin)
		if err != nil {
			return err
		}
		cfg.Debugf("read %d lines from stdin", len(lines))
		cl = &runner.Changelog{Since: rc, Results: rnr.Entries(ctx, lines)}
	} else {
		cl, err = rnr.Changelog(ctx, rc)
		if err != nil {
			return err
		}
	}

	if err := rnr.Write(ctx, cfg.Term.Stdout, cl); err != nil {
		return err
	}
	if printStats && !cfg.Quiet {
		return cl.Stats().TextSummary(cfg.Term.Stderr)
	}
	return nil
}

func newVCS(cfg config.Config, wd string) (vcs.Interface, error) {
	switch cfg.VCS {
	case config.VCSGoGit:
		g, err := gogit.New(cfg, wd)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return gitcli.New(cfg, wd), nil
	}
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	fmt.Fprintf(cfg.Term.Stdout, `%s [flags] [previous-version]

Generates changelog entries from the pull requests merged since
previous-version, printed as a JSON array. When previous-version is omitted
the latest release tag is used. Pass - to read merge commit subjects from
stdin instead of git.

The %s environment variable must be set.

FLAGS
%s

EXAMPLES

# entries for everything merged since release-1.6.2
$ changelog release-1.6.2

# entries since the latest v* tag, fetching tags first
$ changelog --fetch

# read subjects from another log
$ git log --merges --format=%%s -z v1.0.0... | changelog -
`, filepath.Base(os.Args[0]), config.TokenEnv, flags.FlagUsages())
}

func readConfigYAML(p, wd string) (*config.Config, error) {
	if p != "" {
		b, err := ioutil.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if wd == "" {
		var err error
		wd, err = os.Getwd()
		if err != nil {
			return nil, err
		}
	}
	wd, err := filepath.Abs(wd)
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, configFileName)
		b, err := ioutil.ReadFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				parent := filepath.Dir(wd)
				if parent == wd {
					break
				}
				wd = parent
				continue
			}
			return nil, err
		}

		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", candPath, err)
		}
		return cfg, nil
	}
	return nil, nil
}

package commit

import (
	"errors"
	"sort"
	"strings"

	"github.com/blang/semver/v4"
)

var ErrNoTags = errors.New("commit: no release tags found")

type taggedVersion struct {
	tag string
	v   semver.Version
}

// LatestRelease returns the tag of the highest released version among tags.
// prefix is removed from each tag before it's parsed as a semantic version, so
// "release-" matches tags like release-1.6.2. Prereleases and tags that don't
// parse are skipped.
func LatestRelease(tags []string, prefix string) (string, semver.Version, error) {
	var versions []taggedVersion
	for _, tag := range tags {
		if !strings.HasPrefix(tag, prefix) {
			continue
		}
		v, err := semver.Parse(strings.TrimPrefix(tag, prefix))
		if err != nil {
			continue
		}
		if len(v.Pre) > 0 {
			continue
		}
		versions = append(versions, taggedVersion{tag: tag, v: v})
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].v.LT(versions[j].v)
	})
	if len(versions) == 0 {
		return "", semver.Version{}, ErrNoTags
	}
	latest := versions[len(versions)-1]
	return latest.tag, latest.v, nil
}

// TagPrefix returns the literal prefix of a tag glob such as "v*".
func TagPrefix(query string) string {
	if i := strings.IndexAny(query, "*?["); i >= 0 {
		return query[:i]
	}
	return query
}

package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeffrom/changelog/commit"
	"github.com/jeffrom/changelog/tracker"
)

// Stats counts merge commits by change type, source owner and failure kind.
type Stats struct {
	Commits int64
	Counts  map[string][]*statCount
}

func (s *Stats) Add(bucket, name string, n int64) {
	counts := s.Counts[bucket]
	count, found := s.findCount(name, counts)
	if !found {
		counts = append(counts, count)
	}
	count.Add(n)

	s.Counts[bucket] = counts
}

func (s *Stats) findCount(name string, counts []*statCount) (*statCount, bool) {
	for _, c := range counts {
		if c.label == name {
			return c, true
		}
	}
	return &statCount{label: name}, false
}

func (s *Stats) sortedBuckets() []string {
	buckets := make([]string, 0, len(s.Counts))
	for name := range s.Counts {
		buckets = append(buckets, name)
	}
	sort.Strings(buckets)
	return buckets
}

type statCount struct {
	label string
	n     int64
}

func (c *statCount) Add(n int64) {
	c.n += n
}

// Count returns the count for name in bucket.
func (s *Stats) Count(bucket, name string) int64 {
	if c, ok := s.findCount(name, s.Counts[bucket]); ok {
		return c.n
	}
	return 0
}

func (s *Stats) TextSummary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d merge commits\n\n", s.Commits)

	for _, name := range s.sortedBuckets() {
		counts := s.Counts[name]
		sort.SliceStable(counts, func(i, j int) bool {
			if counts[i].n != counts[j].n {
				return counts[i].n > counts[j].n
			}
			return counts[i].label < counts[j].label
		})
		fmt.Fprintf(bw, "%s:\n", toTitle(name))
		for _, count := range counts {
			label := count.label
			if label == "" {
				label = "n/a"
			}
			fmt.Fprintf(bw, "  %20s\t\t%d\n", label, count.n)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Stats summarizes an already resolved changelog. It makes no further calls.
func (cl *Changelog) Stats() *Stats {
	stats := &Stats{
		Commits: int64(len(cl.Results)),
		Counts:  make(map[string][]*statCount),
	}
	for _, res := range cl.Results {
		stats.Add("type", res.Type.String(), 1)
		stats.Add("owner", res.Ref.Owner, 1)
		if res.Err != nil {
			stats.Add("unresolved", failureKind(res.Err), 1)
		}
	}
	return stats
}

func failureKind(err error) string {
	var parseErr *commit.ParseError
	var fetchErr *tracker.FetchError
	var nfErr tracker.NotFoundError
	switch {
	case errors.As(err, &parseErr):
		return "unparsable"
	case errors.As(err, &nfErr):
		return "not found"
	case errors.As(err, &fetchErr):
		return "fetch failed"
	}
	return "other"
}

var nonAlphaRE = regexp.MustCompile(`[^A-Za-z]`)

func toTitle(s string) string {
	s = nonAlphaRE.ReplaceAllLiteralString(s, " ")
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

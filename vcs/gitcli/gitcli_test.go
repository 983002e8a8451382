package gitcli

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"os/exec"
	"reflect"
	"testing"
	"time"

	"github.com/sosedoff/gitkit"

	"github.com/jeffrom/changelog/config"
	"github.com/jeffrom/changelog/vcs"
)

var testEpoch = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

type testRepo struct {
	t   *testing.T
	dir string
	n   int
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	if testing.Short() {
		t.Skip("-short")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found")
	}
	r := &testRepo{t: t, dir: t.TempDir()}
	r.git("init", "-q")
	r.git("symbolic-ref", "HEAD", "refs/heads/master")
	return r
}

func (r *testRepo) git(args ...string) string {
	r.t.Helper()
	r.n++
	date := testEpoch.Add(time.Duration(r.n) * time.Minute).Format(time.RFC3339)

	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	cmd.Env = append(os.Environ(),
		"HOME="+r.dir,
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_AUTHOR_NAME=changelog-test",
		"GIT_AUTHOR_EMAIL=changelog-test@example.com",
		"GIT_COMMITTER_NAME=changelog-test",
		"GIT_COMMITTER_EMAIL=changelog-test@example.com",
		"GIT_AUTHOR_DATE="+date,
		"GIT_COMMITTER_DATE="+date,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("+ git %s: %v\n%s", ArgsString(args), err, out)
	}
	return string(out)
}

func (r *testRepo) commit(msg string) {
	r.t.Helper()
	r.git("commit", "-q", "--allow-empty", "-m", msg)
}

func (r *testRepo) mergePR(n int, owner, branch, title string) {
	r.t.Helper()
	r.git("checkout", "-q", "-b", branch)
	r.commit("work on " + branch)
	r.git("checkout", "-q", "master")
	msg := fmt.Sprintf("Merge pull request #%d from %s/%s\n\n%s", n, owner, branch, title)
	r.git("merge", "-q", "--no-ff", "-m", msg, branch)
}

func (r *testRepo) mergeBranch(branch string) {
	r.t.Helper()
	r.git("checkout", "-q", "-b", branch)
	r.commit("work on " + branch)
	r.git("checkout", "-q", "master")
	r.git("merge", "-q", "--no-ff", "-m", "Merge branch '"+branch+"'", branch)
}

func newTestGit(dir string) *Git {
	return New(config.New(nil), dir)
}

func TestReadMergeCommits(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	repo.commit("initial commit")
	repo.mergePR(1, "desktop", "old-feature", "before the release")
	repo.git("tag", "v0.1.0")
	repo.mergePR(2, "desktop", "fix-shrinkwrap-file", "fix the shrinkwrap file")
	repo.commit("direct commit")
	repo.mergeBranch("not-a-pr")
	repo.mergePR(3, "someone", "feature/nested", "add feature")

	git := newTestGit(repo.dir)
	commits, err := git.ReadMergeCommits(ctx, "v0.1.0")
	if err != nil {
		t.Fatal(err)
	}

	var subjects []string
	for _, c := range commits {
		subjects = append(subjects, c.Subject)
		if len(c.ID) != 40 {
			t.Errorf("expected full commit id, got %q", c.ID)
		}
		if c.Author != "changelog-test" {
			t.Errorf("expected author changelog-test, got %q", c.Author)
		}
		if c.CommitterDate.IsZero() {
			t.Error("expected committer date to be set")
		}
	}
	expect := []string{
		"Merge pull request #3 from someone/feature/nested",
		"Merge pull request #2 from desktop/fix-shrinkwrap-file",
	}
	if !reflect.DeepEqual(subjects, expect) {
		t.Fatalf("expected %q, got %q", expect, subjects)
	}
}

func TestReadMergeCommitsEmpty(t *testing.T) {
	repo := newTestRepo(t)
	repo.commit("initial commit")
	repo.git("tag", "v0.1.0")

	commits, err := newTestGit(repo.dir).ReadMergeCommits(context.Background(), "v0.1.0")
	if err != nil {
		t.Fatal(err)
	}
	if len(commits) != 0 {
		t.Fatalf("expected no commits, got %d", len(commits))
	}
}

func TestReadMergeCommitsUnknownRef(t *testing.T) {
	repo := newTestRepo(t)
	repo.commit("initial commit")

	_, err := newTestGit(repo.dir).ReadMergeCommits(context.Background(), "v9.9.9")
	var nf vcs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Ref != "v9.9.9" {
		t.Fatalf("expected ref v9.9.9, got %q", nf.Ref)
	}
}

func TestReadTagsAndRemote(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	repo.commit("initial commit")
	repo.git("tag", "v0.1.0")
	repo.git("tag", "v0.2.0")
	repo.git("tag", "release-1")
	repo.git("remote", "add", "origin", "git@github.com:desktop/desktop.git")

	git := newTestGit(repo.dir)
	tags, err := git.ReadTags(ctx, "v*")
	if err != nil {
		t.Fatal(err)
	}
	if expect := []string{"v0.1.0", "v0.2.0"}; !reflect.DeepEqual(tags, expect) {
		t.Fatalf("expected %q, got %q", expect, tags)
	}

	name, err := git.ReadNameFromRemoteURL(ctx, "origin")
	if err != nil {
		t.Fatal(err)
	}
	if name != "desktop/desktop" {
		t.Fatalf("expected desktop/desktop, got %q", name)
	}

	_, err = git.ReadNameFromRemoteURL(ctx, "upstream")
	var nf vcs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	src := newTestRepo(t)
	src.commit("initial commit")
	src.git("tag", "v1.0.0")

	svc := gitkit.New(gitkit.Config{
		Dir:        t.TempDir(),
		AutoCreate: true,
	})
	if err := svc.Setup(); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(svc)
	defer srv.Close()
	remote := srv.URL + "/myrepo.git"
	t.Logf("Test git server listening: %s", remote)

	src.git("push", "-q", remote, "master", "--tags")

	dst := newTestRepo(t)
	dst.git("remote", "add", "origin", remote)
	git := newTestGit(dst.dir)
	if err := git.Fetch(ctx, "origin", vcs.TagsRefSpec); err != nil {
		t.Fatal(err)
	}

	tags, err := git.ReadTags(ctx, "v*")
	if err != nil {
		t.Fatal(err)
	}
	if expect := []string{"v1.0.0"}; !reflect.DeepEqual(tags, expect) {
		t.Fatalf("expected %q, got %q", expect, tags)
	}
}

func TestArgsString(t *testing.T) {
	got := ArgsString([]string{"log", "--grep=Merge pull request", "-z"})
	expect := `log "--grep=Merge pull request" -z`
	if got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

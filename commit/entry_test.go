package commit

import (
	"testing"

	"github.com/jeffrom/changelog/model"
)

func TestFormatEntry(t *testing.T) {
	tcs := []struct {
		name   string
		number int
		pr     *model.PullRequest
		expect string
	}{
		{
			name:   "fixed-multi",
			number: 1,
			pr:     &model.PullRequest{Title: "fix bug", Body: "Fixes #10\n\nand also fixes #20"},
			expect: "[Fixed] Fix bug - #10 #20",
		},
		{
			name:   "unclassified",
			number: 42,
			pr:     &model.PullRequest{Title: "add feature", Body: "nothing to see here"},
			expect: "[???] Add feature - #42",
		},
		{
			name:   "empty-body",
			number: 3,
			pr:     &model.PullRequest{Title: "Already capitalized"},
			expect: "[???] Already capitalized - #3",
		},
		{
			name:   "mixed-case",
			number: 5,
			pr:     &model.PullRequest{Title: "tweak", Body: "FIXES #1 fIxEs #2"},
			expect: "[Fixed] Tweak - #1 #2",
		},
		{
			name:   "fixes-without-number",
			number: 8,
			pr:     &model.PullRequest{Title: "docs", Body: "Fixes #abc, fixes # 9"},
			expect: "[???] Docs - #8",
		},
		{
			name:   "prefix-match",
			number: 9,
			pr:     &model.PullRequest{Title: "x", Body: "Prefixes #77"},
			expect: "[Fixed] X - #77",
		},
		{
			name:   "whitespace-preserved",
			number: 10,
			pr:     &model.PullRequest{Title: "  spaced  title.", Body: ""},
			expect: "[???]   spaced  title. - #10",
		},
		{
			name:   "empty-title",
			number: 11,
			pr:     &model.PullRequest{},
			expect: "[???]  - #11",
		},
		{
			name:   "unicode",
			number: 12,
			pr:     &model.PullRequest{Title: "élan vital"},
			expect: "[???] Élan vital - #12",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatEntry(tc.number, tc.pr)
			if got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	typ, refs := Classify(&model.PullRequest{Body: "fixes #3"})
	if typ != ChangeFixed {
		t.Fatalf("expected %s, got %s", ChangeFixed, typ)
	}
	if len(refs) != 1 || refs[0] != " #3" {
		t.Fatalf("unexpected refs: %q", refs)
	}

	typ, refs = Classify(&model.PullRequest{Body: "closes #3"})
	if typ != ChangeUnknown {
		t.Fatalf("expected %s, got %s", ChangeUnknown, typ)
	}
	if refs != nil {
		t.Fatalf("expected no refs, got %q", refs)
	}
}

func TestPlaceholderEntry(t *testing.T) {
	line := "Merge branch 'master' into feature"
	expect := "[???] Merge branch 'master' into feature"
	if got := PlaceholderEntry(line); got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

func TestChangeType(t *testing.T) {
	for _, typ := range []ChangeType{ChangeUnknown, ChangeFixed} {
		if got := ChangeTypeFromString(typ.String()); got != typ {
			t.Errorf("expected %s, got %s", typ, got)
		}
	}
	if s := ChangeType(0).String(); s != "<INVALID>" {
		t.Errorf("expected <INVALID>, got %s", s)
	}
}

package output

import (
	"strings"
	"testing"
	"time"

	"github.com/criteo/git-review/scm"
)

func testRequest() *scm.Request {
	return &scm.Request{
		Number:       42,
		Title:        "Add feature",
		State:        scm.StateOpen,
		SourceBranch: "feature/new",
		TargetBranch: "master",
		SourceRepo:   scm.Repo{Owner: "org", Name: "repo"},
		TargetRepo:   scm.Repo{Owner: "org", Name: "repo"},
		Comments:     2,
		CreatedAt:    time.Date(2026, time.July, 14, 10, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, time.July, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestRequestLinePlain(t *testing.T) {
	styles := NewStyles(StylePlain)

	line := styles.RequestLine(testRequest())

	if line != "#42  Add feature  (2 comments, 14-Jul)" {
		t.Errorf("Unexpected list line %q", line)
	}
}

func TestRequestDetailPlain(t *testing.T) {
	styles := NewStyles(StylePlain)

	detail := styles.RequestDetail(testRequest(), 5)

	for _, want := range []string{
		"#42 Add feature",
		"org/repo:feature/new -> org/repo:master",
		"state: open",
		"comments: 5",
		"created: 2026-07-14 10:00",
	} {
		if !strings.Contains(detail, want) {
			t.Errorf("Expected detail to contain %q, got:\n%s", want, detail)
		}
	}
}

func TestAvailableStyles(t *testing.T) {
	if len(AvailableStyles) != 2 {
		t.Errorf("Expected 2 styles, got %v", AvailableStyles)
	}
}

func TestPickerItem(t *testing.T) {
	item := pickerItem{req: testRequest()}

	if item.Title() != "#42 Add feature" {
		t.Errorf("Unexpected picker title %q", item.Title())
	}

	if item.FilterValue() != "Add feature" {
		t.Errorf("Unexpected filter value %q", item.FilterValue())
	}

	if !strings.Contains(item.Description(), "feature/new -> master") {
		t.Errorf("Unexpected picker description %q", item.Description())
	}
}

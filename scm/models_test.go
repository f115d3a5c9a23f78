package scm

import (
	"testing"
	"time"
)

func date(day int) time.Time {
	return time.Date(2026, time.July, day, 12, 0, 0, 0, time.UTC)
}

func TestSortByDate(t *testing.T) {
	requests := []*Request{
		{Number: 23, CreatedAt: date(13)},
		{Number: 42, CreatedAt: date(14)},
		{Number: 7, CreatedAt: date(2)},
	}

	SortByDate(requests, false)

	want := []int{42, 23, 7}
	for i, req := range requests {
		if req.Number != want[i] {
			t.Errorf("position %d: expected #%d, got #%d", i, want[i], req.Number)
		}
	}

	SortByDate(requests, true)

	want = []int{7, 23, 42}
	for i, req := range requests {
		if req.Number != want[i] {
			t.Errorf("reversed position %d: expected #%d, got #%d", i, want[i], req.Number)
		}
	}
}

func TestLatestNumber(t *testing.T) {
	tests := []struct {
		name     string
		requests []*Request
		want     int
	}{
		{
			name:     "empty repository",
			requests: nil,
			want:     0,
		},
		{
			name:     "single request",
			requests: []*Request{{Number: 5}},
			want:     5,
		},
		{
			name:     "unordered requests",
			requests: []*Request{{Number: 17}, {Number: 42}, {Number: 3}},
			want:     42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LatestNumber(tt.requests); got != tt.want {
				t.Errorf("LatestNumber() = %d, want %d", got, tt.want)
			}

			// the latest number bounds every individual identifier
			for _, req := range tt.requests {
				if req.Number > LatestNumber(tt.requests) {
					t.Errorf("latest number %d is below request #%d", LatestNumber(tt.requests), req.Number)
				}
			}
		})
	}
}

func TestRepoString(t *testing.T) {
	repo := Repo{Owner: "org", Name: "repo"}

	if repo.String() != "org/repo" {
		t.Errorf("expected org/repo, got %s", repo.String())
	}

	if repo.IsZero() {
		t.Error("populated repo should not be zero")
	}

	if !(Repo{}).IsZero() {
		t.Error("empty repo should be zero")
	}
}

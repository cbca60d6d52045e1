package service

import (
	"testing"

	"eco-quiz-backend/internal/models"
)

func TestPassScore(t *testing.T) {
	testCases := []struct {
		total int
		want  int
	}{
		{10, 7},
		{2, 2},
		{3, 3},  // ceil(2.1)
		{5, 4},  // ceil(3.5)
		{1, 1},
		{0, 0},
	}

	for _, tc := range testCases {
		if got := passScore(tc.total); got != tc.want {
			t.Errorf("passScore(%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestRecomputeProgression(t *testing.T) {
	testCases := []struct {
		name       string
		results    []models.Result
		wantPoints int
		wantLevel  int
	}{
		{
			name:       "no results",
			results:    nil,
			wantPoints: 0,
			wantLevel:  0,
		},
		{
			name: "single passing result",
			results: []models.Result{
				{Score: 2, Total: 2},
			},
			wantPoints: 20,
			wantLevel:  1,
		},
		{
			name: "score seven of ten passes",
			results: []models.Result{
				{Score: 7, Total: 10},
			},
			wantPoints: 70,
			wantLevel:  1,
		},
		{
			name: "score six of ten does not pass",
			results: []models.Result{
				{Score: 6, Total: 10},
			},
			wantPoints: 60,
			wantLevel:  0,
		},
		{
			name: "mixed history",
			results: []models.Result{
				{Score: 7, Total: 10},
				{Score: 6, Total: 10},
				{Score: 3, Total: 3},
			},
			wantPoints: 160,
			wantLevel:  2,
		},
		{
			name: "zero score",
			results: []models.Result{
				{Score: 0, Total: 5},
			},
			wantPoints: 0,
			wantLevel:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			points, level := recomputeProgression(tc.results)
			if points != tc.wantPoints {
				t.Errorf("expected %d points, got %d", tc.wantPoints, points)
			}
			if level != tc.wantLevel {
				t.Errorf("expected level %d, got %d", tc.wantLevel, level)
			}
		})
	}
}

func TestRecomputeProgressionIdempotent(t *testing.T) {
	// Because latest-attempt storage keeps one result per (student, quiz),
	// replaying an identical submission hands recompute the same history and
	// therefore the same progression.
	history := []models.Result{
		{Score: 4, Total: 5},
		{Score: 1, Total: 2},
	}

	p1, l1 := recomputeProgression(history)
	p2, l2 := recomputeProgression(history)

	if p1 != p2 || l1 != l2 {
		t.Errorf("recompute is not idempotent: (%d,%d) vs (%d,%d)", p1, l1, p2, l2)
	}
	if p1 != 50 {
		t.Errorf("expected 50 points, got %d", p1)
	}
	if l1 != 2 {
		t.Errorf("expected level 2, got %d", l1)
	}
}

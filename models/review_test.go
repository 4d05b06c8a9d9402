package models

import (
	"testing"
)

func TestReviewRatingClamp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 1.0},
		{0.5, 1.0},
		{1.0, 1.0},
		{3.5, 3.5},
		{5.0, 5.0},
		{6.0, 5.0},
	}

	for _, tc := range cases {
		r := Review{Rating: tc.in}
		if err := r.BeforeCreate(nil); err != nil {
			t.Fatalf("BeforeCreate returned error: %v", err)
		}
		if r.Rating != tc.want {
			t.Errorf("rating %v clamped to %v, want %v", tc.in, r.Rating, tc.want)
		}
	}
}

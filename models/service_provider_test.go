package models

import (
	"math"
	"testing"
)

func TestServiceProviderApplyRating(t *testing.T) {
	sp := ServiceProvider{AverageRating: 4.0, TotalReviews: 2}
	sp.ApplyRating(5)

	want := (4.0*2 + 5) / 3
	if math.Abs(sp.AverageRating-want) > 1e-9 {
		t.Errorf("AverageRating = %v, want %v", sp.AverageRating, want)
	}
	if sp.TotalReviews != 3 {
		t.Errorf("TotalReviews = %d, want 3", sp.TotalReviews)
	}
}

func TestServiceProviderApplyRatingFirstReview(t *testing.T) {
	sp := ServiceProvider{}
	sp.ApplyRating(4)

	if sp.AverageRating != 4.0 {
		t.Errorf("AverageRating = %v, want 4.0", sp.AverageRating)
	}
	if sp.TotalReviews != 1 {
		t.Errorf("TotalReviews = %d, want 1", sp.TotalReviews)
	}
}

func TestProviderServiceApplyRating(t *testing.T) {
	ps := ProviderService{AverageRating: 3.0, TotalReviews: 4}
	ps.ApplyRating(5)

	want := (3.0*4 + 5) / 5
	if math.Abs(ps.AverageRating-want) > 1e-9 {
		t.Errorf("AverageRating = %v, want %v", ps.AverageRating, want)
	}
	if ps.TotalReviews != 5 {
		t.Errorf("TotalReviews = %d, want 5", ps.TotalReviews)
	}
}

package controllers

import (
	"testing"
	"time"

	"github.com/sudharlo/sapzap/models"
)

func TestCatalogFetchIsIdempotent(t *testing.T) {
	categories := []models.ServiceCategory{
		{Name: "Cleaning", Active: true},
		{Name: "Plumbing", Active: true},
	}
	load := func() (interface{}, error) {
		return categories, nil
	}

	// Without a Redis connection every call takes the loader path; with no
	// mutation in between, the payloads must still be byte-identical.
	first, err := fetchWithCache(categoriesCacheKey, time.Minute, load)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := fetchWithCache(categoriesCacheKey, time.Minute, load)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if first != second {
		t.Errorf("payloads differ across calls:\n%s\n%s", first, second)
	}
	if first == "" || first == "null" {
		t.Errorf("unexpected payload %q", first)
	}
}

func TestCatalogCacheKeys(t *testing.T) {
	keys := catalogCacheKeys(3, 7)
	want := []string{
		"catalog:categories",
		"catalog:category:3:services",
		"catalog:category:7:services",
	}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	// A mutation with no category scope still drops the category list.
	if keys := catalogCacheKeys(); len(keys) != 1 || keys[0] != "catalog:categories" {
		t.Errorf("catalogCacheKeys() = %v", keys)
	}
}

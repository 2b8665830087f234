package seed

import (
	"strings"
	"testing"

	"github.com/mmynk/housepoints/internal/models"
)

func TestSeedUsersAreUniqueAndValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, u := range Users() {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if seen[email] {
			t.Errorf("duplicate seed email %q", email)
		}
		seen[email] = true
		if !u.Role.Valid() {
			t.Errorf("user %s has invalid role %q", u.ID, u.Role)
		}
		if u.Password == "" {
			t.Errorf("user %s has no password", u.ID)
		}
	}
}

func TestSeedHousesHaveDistinctIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, h := range Houses() {
		if seen[h.ID] {
			t.Errorf("duplicate house id %q", h.ID)
		}
		seen[h.ID] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 houses, got %d", len(seen))
	}
}

func TestSeedCategoriesMixCreditsAndDebits(t *testing.T) {
	var credits, debits int
	for _, c := range Categories() {
		if c.DefaultPoints >= 0 {
			credits++
		} else {
			debits++
		}
	}
	if credits != 3 || debits != 3 {
		t.Errorf("credits=%d debits=%d, want 3/3", credits, debits)
	}
}

func TestSeedReturnsFreshSlices(t *testing.T) {
	a := Houses()
	a[0] = models.House{ID: "changed"}
	if Houses()[0].ID != "st" {
		t.Error("seed houses must not share backing storage between calls")
	}
}

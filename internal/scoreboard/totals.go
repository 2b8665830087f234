// Package scoreboard derives standings, trends and filtered views from the
// point-event log. Every function is pure: same houses and events in, same
// result out, so callers recompute on every change instead of caching.
package scoreboard

import (
	"sort"

	"github.com/mmynk/housepoints/internal/models"
)

// Standing is one house's position on the scoreboard.
type Standing struct {
	House models.House `json:"house"`
	Total int          `json:"total"`
	Rank  int          `json:"rank"`
}

// Totals sums event points per house and ranks houses by total, highest first.
//
// Houses with no events total zero. Ties keep the order of houses, so the
// ranking is stable for equal totals. Events whose house no longer exists
// contribute to nobody.
func Totals(houses []models.House, events []models.PointEvent) []Standing {
	sums := make(map[string]int, len(houses))
	for _, e := range events {
		sums[e.HouseID] += e.Points
	}

	standings := make([]Standing, 0, len(houses))
	for _, h := range houses {
		standings = append(standings, Standing{House: h, Total: sums[h.ID]})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Total > standings[j].Total
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// HouseTotal returns the sum of points for a single house.
func HouseTotal(houseID string, events []models.PointEvent) int {
	total := 0
	for _, e := range events {
		if e.HouseID == houseID {
			total += e.Points
		}
	}
	return total
}

package scoreboard

import (
	"sort"
	"time"

	"github.com/mmynk/housepoints/internal/models"
)

const (
	// maxSnapshots is the number of stride-aligned rows the series aims for.
	// The final event adds at most one more.
	maxSnapshots = 10

	// DateLayout labels snapshot rows with the event's calendar date.
	DateLayout = "02/01/2006"
)

// Snapshot is one row of the progression chart: cumulative totals per house
// (keyed by house id) after the event at that point of the sorted log.
type Snapshot struct {
	Label     string         `json:"label"`
	Timestamp int64          `json:"timestamp"`
	Totals    map[string]int `json:"totals"`
}

// Progression builds the cumulative series over events sorted by time.
//
// A row is emitted every ceil(n/10) events and always for the last event,
// so the series never exceeds 11 rows. The stride is ceil rather than
// max(1, floor(n/10)), which yields up to 19 rows for n=19. Events for houses that no longer
// exist are skipped when accumulating. Labels use loc; nil means UTC.
func Progression(houses []models.House, events []models.PointEvent, loc *time.Location) []Snapshot {
	n := len(events)
	if n == 0 {
		return []Snapshot{}
	}
	if loc == nil {
		loc = time.UTC
	}

	sorted := make([]models.PointEvent, n)
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	running := make(map[string]int, len(houses))
	for _, h := range houses {
		running[h.ID] = 0
	}

	stride := Stride(n)
	series := make([]Snapshot, 0, maxSnapshots+1)
	for i, e := range sorted {
		if _, ok := running[e.HouseID]; ok {
			running[e.HouseID] += e.Points
		}
		if i%stride != 0 && i != n-1 {
			continue
		}

		row := Snapshot{
			Label:     e.Time().In(loc).Format(DateLayout),
			Timestamp: e.Timestamp,
			Totals:    make(map[string]int, len(running)),
		}
		for id, total := range running {
			row.Totals[id] = total
		}
		series = append(series, row)
	}
	return series
}

// Stride returns how many events separate two snapshot rows for a log of
// n events.
func Stride(n int) int {
	if n <= maxSnapshots {
		return 1
	}
	return (n + maxSnapshots - 1) / maxSnapshots
}

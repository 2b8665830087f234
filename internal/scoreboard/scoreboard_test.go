package scoreboard

import (
	"math/rand"
	"testing"
	"time"

	"github.com/mmynk/housepoints/internal/models"
)

var testHouses = []models.House{
	{ID: "st", Name: "Casa Santa Teresinha", Icon: "🌹"},
	{ID: "sf", Name: "Casa São Francisco", Icon: "🐺"},
	{ID: "sa", Name: "Casa Santo Agostinho", Icon: "🔥"},
	{ID: "sr", Name: "Casa Santa Rita", Icon: "🐝"},
}

func event(id, house string, points int, ts int64) models.PointEvent {
	return models.PointEvent{ID: id, HouseID: house, Points: points, Reason: "motivo " + id, Timestamp: ts}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name      string
		events    []models.PointEvent
		wantOrder []string
		wantTotal map[string]int
	}{
		{
			name:      "no events keeps house order",
			events:    nil,
			wantOrder: []string{"st", "sf", "sa", "sr"},
			wantTotal: map[string]int{"st": 0, "sf": 0, "sa": 0, "sr": 0},
		},
		{
			name: "sorted descending",
			events: []models.PointEvent{
				event("1", "sr", 50, 1),
				event("2", "sf", 10, 2),
				event("3", "sr", -20, 3),
				event("4", "st", -5, 4),
			},
			wantOrder: []string{"sr", "sf", "sa", "st"},
			wantTotal: map[string]int{"sr": 30, "sf": 10, "sa": 0, "st": -5},
		},
		{
			name: "ties keep input order",
			events: []models.PointEvent{
				event("1", "sr", 10, 1),
				event("2", "sa", 10, 2),
			},
			wantOrder: []string{"sa", "sr", "st", "sf"},
			wantTotal: map[string]int{"sa": 10, "sr": 10},
		},
		{
			name: "dangling house is ignored",
			events: []models.PointEvent{
				event("1", "gone", 100, 1),
				event("2", "sf", 1, 2),
			},
			wantOrder: []string{"sf", "st", "sa", "sr"},
			wantTotal: map[string]int{"sf": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			standings := Totals(testHouses, tt.events)
			if len(standings) != len(testHouses) {
				t.Fatalf("expected %d standings, got %d", len(testHouses), len(standings))
			}
			for i, s := range standings {
				if s.House.ID != tt.wantOrder[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.wantOrder[i], s.House.ID)
				}
				if s.Rank != i+1 {
					t.Errorf("position %d: expected rank %d, got %d", i, i+1, s.Rank)
				}
				if s.Total != tt.wantTotal[s.House.ID] {
					t.Errorf("%s total = %d, want %d", s.House.ID, s.Total, tt.wantTotal[s.House.ID])
				}
			}
		})
	}
}

func TestTotals_Empty(t *testing.T) {
	standings := Totals(nil, []models.PointEvent{event("1", "st", 5, 1)})
	if len(standings) != 0 {
		t.Errorf("expected no standings, got %d", len(standings))
	}
}

func TestTotals_StableForAllPermutations(t *testing.T) {
	// Every house ties at zero; whatever order goes in must come out.
	perms := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}
	for _, p := range perms {
		houses := make([]models.House, len(p))
		for i, idx := range p {
			houses[i] = testHouses[idx]
		}
		standings := Totals(houses, nil)
		for i := range houses {
			if standings[i].House.ID != houses[i].ID {
				t.Errorf("perm %v: position %d expected %s, got %s", p, i, houses[i].ID, standings[i].House.ID)
			}
		}
	}
}

func TestTotals_SumInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"st", "sf", "sa", "sr", "deleted"}

	for round := 0; round < 50; round++ {
		var events []models.PointEvent
		want := 0
		n := rng.Intn(40)
		for i := 0; i < n; i++ {
			house := ids[rng.Intn(len(ids))]
			points := rng.Intn(201) - 100
			events = append(events, event("e", house, points, int64(i)))
			if house != "deleted" {
				want += points
			}
		}

		got := 0
		for _, s := range Totals(testHouses, events) {
			got += s.Total
		}
		if got != want {
			t.Fatalf("round %d: sum of totals = %d, want %d", round, got, want)
		}
	}
}

func TestHouseTotal(t *testing.T) {
	events := []models.PointEvent{event("1", "st", 10, 1), event("2", "st", -3, 2), event("3", "sf", 8, 3)}
	if got := HouseTotal("st", events); got != 7 {
		t.Errorf("HouseTotal(st) = %d, want 7", got)
	}
	if got := HouseTotal("sr", events); got != 0 {
		t.Errorf("HouseTotal(sr) = %d, want 0", got)
	}
}

func TestStride(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{10, 1},
		{11, 2},
		{19, 2},
		{20, 2},
		{21, 3},
		{1000, 100},
	}
	for _, tt := range tests {
		if got := Stride(tt.n); got != tt.want {
			t.Errorf("Stride(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestProgression_Bounds(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli()

	for n := 1; n <= 250; n++ {
		events := make([]models.PointEvent, n)
		for i := range events {
			// Newest first, as the log stores them.
			events[i] = event("e", testHouses[i%len(testHouses)].ID, 1, base+int64(n-i)*1000)
		}

		series := Progression(testHouses, events, time.UTC)
		if len(series) == 0 || len(series) > 11 {
			t.Fatalf("n=%d: series length %d out of range", n, len(series))
		}

		last := series[len(series)-1]
		if last.Timestamp != base+int64(n)*1000 {
			t.Fatalf("n=%d: last snapshot is not the latest event", n)
		}
		sum := 0
		for _, v := range last.Totals {
			sum += v
		}
		if sum != n {
			t.Fatalf("n=%d: last snapshot sums to %d, want %d", n, sum, n)
		}
	}
}

func TestProgression_Cumulative(t *testing.T) {
	day := int64(24 * time.Hour / time.Millisecond)
	start := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC).UnixMilli()
	events := []models.PointEvent{
		event("3", "sf", 7, start+2*day),
		event("2", "gone", 99, start+day),
		event("1", "st", 10, start),
	}

	series := Progression(testHouses, events, time.UTC)
	if len(series) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(series))
	}

	if series[0].Label != "01/03/2025" {
		t.Errorf("label = %q, want 01/03/2025", series[0].Label)
	}
	if series[0].Totals["st"] != 10 || series[0].Totals["sf"] != 0 {
		t.Errorf("first snapshot = %v", series[0].Totals)
	}
	if _, ok := series[1].Totals["gone"]; ok {
		t.Error("deleted house should not appear in the series")
	}
	if series[1].Totals["st"] != 10 {
		t.Errorf("dangling event changed totals: %v", series[1].Totals)
	}
	if series[2].Totals["sf"] != 7 || series[2].Totals["st"] != 10 {
		t.Errorf("last snapshot = %v", series[2].Totals)
	}
	for _, row := range series {
		if len(row.Totals) != len(testHouses) {
			t.Errorf("snapshot %q has %d houses, want %d", row.Label, len(row.Totals), len(testHouses))
		}
	}
}

func TestProgression_Timezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	// 02:00 UTC on the 2nd is still the 1st in São Paulo.
	ts := time.Date(2025, 3, 2, 2, 0, 0, 0, time.UTC).UnixMilli()
	series := Progression(testHouses, []models.PointEvent{event("1", "st", 1, ts)}, loc)
	if series[0].Label != "01/03/2025" {
		t.Errorf("label = %q, want 01/03/2025", series[0].Label)
	}
}

func TestProgression_Empty(t *testing.T) {
	series := Progression(testHouses, nil, nil)
	if series == nil || len(series) != 0 {
		t.Errorf("expected empty non-nil series, got %v", series)
	}
}

func TestResolve(t *testing.T) {
	e := models.PointEvent{ID: "1", HouseID: "sr", Points: -5}
	entry := Resolve(testHouses, e)
	if entry.HouseName != "Casa Santa Rita" {
		t.Errorf("HouseName = %q", entry.HouseName)
	}
	if entry.Beneficiary != WholeHouse {
		t.Errorf("Beneficiary = %q, want %q", entry.Beneficiary, WholeHouse)
	}
	if entry.Class != ClassDebit {
		t.Errorf("Class = %q, want debit", entry.Class)
	}

	dangling := Resolve(testHouses, models.PointEvent{HouseID: "gone", StudentName: "Ana"})
	if dangling.HouseName != UnknownHouse {
		t.Errorf("HouseName = %q, want %q", dangling.HouseName, UnknownHouse)
	}
	if dangling.Beneficiary != "Ana" {
		t.Errorf("Beneficiary = %q, want Ana", dangling.Beneficiary)
	}
	if dangling.Class != ClassCredit {
		t.Errorf("zero points should be a credit, got %q", dangling.Class)
	}
}

func TestRecent(t *testing.T) {
	var events []models.PointEvent
	for i := 0; i < 8; i++ {
		events = append(events, event(string(rune('a'+i)), "st", 1, int64(100-i)))
	}
	recent := Recent(testHouses, events)
	if len(recent) != RecentLimit {
		t.Fatalf("expected %d entries, got %d", RecentLimit, len(recent))
	}
	if recent[0].ID != "a" || recent[4].ID != "e" {
		t.Errorf("unexpected order: %s..%s", recent[0].ID, recent[4].ID)
	}

	if got := Recent(testHouses, events[:2]); len(got) != 2 {
		t.Errorf("expected 2 entries, got %d", len(got))
	}
}

func TestAudit(t *testing.T) {
	events := []models.PointEvent{
		{ID: "1", HouseID: "st", TeacherName: "Prof. Marta", Reason: "Ajudou colega", Points: 10},
		{ID: "2", HouseID: "sf", TeacherName: "Prof. João", StudentName: "Lucas Silva", Reason: "Atraso", Points: -5},
		{ID: "3", HouseID: "st", TeacherName: "Prof. João", Reason: "Organização", Points: 5},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty filter", Filter{}, []string{"1", "2", "3"}},
		{"all houses", Filter{HouseID: AllHouses}, []string{"1", "2", "3"}},
		{"by house", Filter{HouseID: "st"}, []string{"1", "3"}},
		{"search teacher", Filter{Search: "joão"}, []string{"2", "3"}},
		{"search student case-insensitive", Filter{Search: "LUCAS"}, []string{"2"}},
		{"search reason", Filter{Search: "ajudou"}, []string{"1"}},
		{"house and search", Filter{HouseID: "st", Search: "joão"}, []string{"3"}},
		{"no match", Filter{Search: "xyz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Audit(testHouses, events, tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d entries, got %d", len(tt.want), len(got))
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("entry %d: expected %s, got %s", i, tt.want[i], e.ID)
				}
			}
		})
	}
}

func TestRecentReasons(t *testing.T) {
	events := []models.PointEvent{
		{HouseID: "st", Reason: "b", Timestamp: 2},
		{HouseID: "sf", Reason: "x", Timestamp: 9},
		{HouseID: "st", Reason: "d", Timestamp: 4},
		{HouseID: "st", Reason: "a", Timestamp: 1},
		{HouseID: "st", Reason: "c", Timestamp: 3},
	}
	got := RecentReasons("st", events, 3)
	want := []string{"d", "c", "b"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reason %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if got := RecentReasons("sr", events, 3); len(got) != 0 {
		t.Errorf("expected no reasons, got %v", got)
	}
}

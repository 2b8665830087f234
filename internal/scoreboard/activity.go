package scoreboard

import (
	"sort"
	"strings"

	"github.com/mmynk/housepoints/internal/models"
)

const (
	// RecentLimit is how many events the dashboard feed shows.
	RecentLimit = 5

	// AllHouses selects every house in an audit filter.
	AllHouses = "all"

	UnknownHouse = "Casa desconhecida"
	WholeHouse   = "Toda a Casa"
)

// Class is the display class of an event, derived from the sign of its points.
type Class string

const (
	ClassCredit Class = "credit"
	ClassDebit  Class = "debit"
)

// ClassOf returns the display class of e.
func ClassOf(e models.PointEvent) Class {
	if e.IsCredit() {
		return ClassCredit
	}
	return ClassDebit
}

// Entry is a point event with its references resolved for display.
type Entry struct {
	models.PointEvent
	HouseName   string `json:"houseName"`
	HouseIcon   string `json:"houseIcon,omitempty"`
	HouseColor  string `json:"houseColor,omitempty"`
	Beneficiary string `json:"beneficiary"`
	Class       Class  `json:"class"`
}

// Resolve attaches house labels to e. A dangling house reference renders as
// UnknownHouse rather than failing.
func Resolve(houses []models.House, e models.PointEvent) Entry {
	entry := Entry{
		PointEvent:  e,
		HouseName:   UnknownHouse,
		Beneficiary: e.StudentName,
		Class:       ClassOf(e),
	}
	if entry.Beneficiary == "" {
		entry.Beneficiary = WholeHouse
	}
	if h, ok := FindHouse(houses, e.HouseID); ok {
		entry.HouseName = h.Name
		entry.HouseIcon = h.Icon
		entry.HouseColor = h.Color
	}
	return entry
}

// FindHouse looks a house up by id.
func FindHouse(houses []models.House, id string) (models.House, bool) {
	for _, h := range houses {
		if h.ID == id {
			return h, true
		}
	}
	return models.House{}, false
}

// Recent returns the first RecentLimit events of a newest-first log, resolved.
func Recent(houses []models.House, events []models.PointEvent) []Entry {
	limit := min(RecentLimit, len(events))
	entries := make([]Entry, 0, limit)
	for _, e := range events[:limit] {
		entries = append(entries, Resolve(houses, e))
	}
	return entries
}

// Filter narrows the audit log.
type Filter struct {
	// HouseID restricts to one house; empty or AllHouses means any.
	HouseID string `json:"houseId"`

	// Search is matched case-insensitively against the teacher name, the
	// student name and the reason.
	Search string `json:"search"`
}

// Matches reports whether e passes the filter.
func (f Filter) Matches(e models.PointEvent) bool {
	if f.HouseID != "" && f.HouseID != AllHouses && e.HouseID != f.HouseID {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.TeacherName), term) ||
		strings.Contains(strings.ToLower(e.StudentName), term) ||
		strings.Contains(strings.ToLower(e.Reason), term)
}

// Audit returns the events that pass f, in log order, resolved for display.
func Audit(houses []models.House, events []models.PointEvent, f Filter) []Entry {
	entries := []Entry{}
	for _, e := range events {
		if f.Matches(e) {
			entries = append(entries, Resolve(houses, e))
		}
	}
	return entries
}

// RecentReasons returns up to limit reasons for a house, most recent first.
func RecentReasons(houseID string, events []models.PointEvent, limit int) []string {
	var picked []models.PointEvent
	for _, e := range events {
		if e.HouseID == houseID {
			picked = append(picked, e)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Timestamp > picked[j].Timestamp
	})

	reasons := make([]string, 0, min(limit, len(picked)))
	for _, e := range picked {
		if len(reasons) == limit {
			break
		}
		reasons = append(reasons, e.Reason)
	}
	return reasons
}

package app

import (
	"slices"

	"github.com/mmynk/housepoints/internal/models"
	"github.com/mmynk/housepoints/internal/scoreboard"
)

// AwaitingSummary is shown for a house whose summary is not ready.
const AwaitingSummary = "Aguardando atividades..."

// Dashboard is everything the public scoreboard shows.
type Dashboard struct {
	Houses      []models.House        `json:"houses"`
	Standings   []scoreboard.Standing `json:"standings"`
	Progression []scoreboard.Snapshot `json:"progression"`
	Recent      []scoreboard.Entry    `json:"recent"`
	Summaries   map[string]string     `json:"summaries"`
	TotalEvents int                   `json:"totalEvents"`
	NoHouses    bool                  `json:"noHouses"`
	NoEvents    bool                  `json:"noEvents"`
}

// Dashboard computes the scoreboard from the current collections. It needs
// no session.
func (a *App) Dashboard() Dashboard {
	a.mu.Lock()
	houses := slices.Clone(a.houses)
	events := slices.Clone(a.events)
	a.mu.Unlock()

	var ready map[string]string
	if a.refresher != nil {
		ready = a.refresher.Summaries()
	}
	summaries := make(map[string]string, len(houses))
	for _, h := range houses {
		if s, ok := ready[h.ID]; ok {
			summaries[h.ID] = s
		} else {
			summaries[h.ID] = AwaitingSummary
		}
	}

	return Dashboard{
		Houses:      houses,
		Standings:   scoreboard.Totals(houses, events),
		Progression: scoreboard.Progression(houses, events, a.loc),
		Recent:      scoreboard.Recent(houses, events),
		Summaries:   summaries,
		TotalEvents: len(events),
		NoHouses:    len(houses) == 0,
		NoEvents:    len(events) == 0,
	}
}

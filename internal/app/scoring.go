package app

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/mmynk/housepoints/internal/auth"
	"github.com/mmynk/housepoints/internal/models"
	"github.com/mmynk/housepoints/internal/scoreboard"
	"github.com/mmynk/housepoints/internal/storage"
	"github.com/mmynk/housepoints/internal/validate"
)

// PointInput is the scoring form.
type PointInput struct {
	HouseID     string `json:"houseId" validate:"required"`
	StudentName string `json:"studentName"`
	Points      int    `json:"points"`
	Reason      string `json:"reason" validate:"notblank"`
}

// Draft is a pre-filled scoring form.
type Draft struct {
	Reason string `json:"reason"`
	Points int    `json:"points"`
}

// SubmitPoints records a point event on behalf of the logged-in user.
//
// The reason goes through the advisory check first; the lock is not held
// while it runs, and a second submission during that time is refused with
// ErrSubmissionInProgress. A failed check accepts the reason.
func (a *App) SubmitPoints(ctx context.Context, in PointInput) (models.PointEvent, error) {
	if err := validate.Struct(in); err != nil {
		return models.PointEvent{}, err
	}

	if !a.submitting.CompareAndSwap(false, true) {
		return models.PointEvent{}, ErrSubmissionInProgress
	}
	defer a.submitting.Store(false)

	if _, err := a.checkSubmission(in.HouseID); err != nil {
		return models.PointEvent{}, err
	}

	reason := strings.TrimSpace(in.Reason)
	if !a.advisor.Validate(ctx, reason) {
		slog.Info("Point submission rejected by content check", "house_id", in.HouseID)
		return models.PointEvent{}, ErrInappropriateReason
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// The session or the house may have changed while the check ran.
	teacher, err := a.checkSubmissionLocked(in.HouseID)
	if err != nil {
		return models.PointEvent{}, err
	}

	event := models.PointEvent{
		ID:          a.newID(),
		HouseID:     in.HouseID,
		StudentName: strings.TrimSpace(in.StudentName),
		Points:      in.Points,
		Reason:      reason,
		TeacherName: teacher.Name,
		TeacherRole: teacher.Role,
		Timestamp:   a.now().UnixMilli(),
	}

	events := append([]models.PointEvent{event}, a.events...)
	if err := storage.Save(ctx, a.store, storage.KeyEvents, events); err != nil {
		return models.PointEvent{}, err
	}
	a.events = events
	a.metrics.PointEvent(event.HouseID, event.Points)
	a.refreshSummaries()

	slog.Info("Point event recorded",
		"event_id", event.ID,
		"house_id", event.HouseID,
		"points", event.Points,
		"user_id", teacher.ID,
	)
	return event, nil
}

func (a *App) checkSubmission(houseID string) (models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.checkSubmissionLocked(houseID)
}

func (a *App) checkSubmissionLocked(houseID string) (models.User, error) {
	teacher, err := a.authorize(auth.ViewScoring)
	if err != nil {
		return models.User{}, err
	}
	if len(a.houses) == 0 {
		return models.User{}, ErrNoHouses
	}
	if _, ok := scoreboard.FindHouse(a.houses, houseID); !ok {
		return models.User{}, ErrHouseNotFound
	}
	return teacher, nil
}

// ApplyCategory returns the form pre-filled from a category.
func (a *App) ApplyCategory(id string) (Draft, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.authorize(auth.ViewScoring); err != nil {
		return Draft{}, err
	}

	idx := slices.IndexFunc(a.categories, func(c models.Category) bool { return c.ID == id })
	if idx < 0 {
		return Draft{}, ErrCategoryNotFound
	}
	c := a.categories[idx]
	return Draft{Reason: c.Label, Points: c.DefaultPoints}, nil
}

// DeleteEvent removes a point event from the log. It requires confirm.
func (a *App) DeleteEvent(ctx context.Context, id string, confirm bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	user, err := a.authorize(auth.ViewAudit)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(a.events, func(e models.PointEvent) bool { return e.ID == id })
	if idx < 0 {
		return ErrEventNotFound
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	events := slices.Delete(slices.Clone(a.events), idx, idx+1)
	if err := storage.Save(ctx, a.store, storage.KeyEvents, events); err != nil {
		return err
	}
	a.events = events
	a.refreshSummaries()

	slog.Info("Point event deleted", "event_id", id, "user_id", user.ID)
	return nil
}

// AuditLog returns the newest-first event log narrowed by f.
func (a *App) AuditLog(f scoreboard.Filter) ([]scoreboard.Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.authorize(auth.ViewAudit); err != nil {
		return nil, err
	}
	return scoreboard.Audit(a.houses, a.events, f), nil
}

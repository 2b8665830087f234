// Package app is the application context: the loaded collections, the
// current session and the collaborators every action needs. Handlers receive
// an *App explicitly; there is no package-level state.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/housepoints/internal/advisory"
	"github.com/mmynk/housepoints/internal/auth"
	"github.com/mmynk/housepoints/internal/metrics"
	"github.com/mmynk/housepoints/internal/models"
	"github.com/mmynk/housepoints/internal/seed"
	"github.com/mmynk/housepoints/internal/storage"
)

// Options configures an App. Store is required; the rest have defaults.
type Options struct {
	Store storage.BlobStore

	// Verifier checks passwords; nil means plaintext comparison.
	Verifier auth.CredentialVerifier

	// Advisor runs the advisory calls; nil means an unconfigured service.
	Advisor *advisory.Service

	// Refresher regenerates house summaries; nil disables summaries.
	Refresher *advisory.Refresher

	Metrics *metrics.Metrics

	// Location is used for dashboard date labels; nil means UTC.
	Location *time.Location

	Now   func() time.Time
	NewID func() string
}

// App owns the four collections and the session. All methods are safe for
// concurrent use; a single mutex serializes access.
type App struct {
	store     storage.BlobStore
	auth      *auth.Authenticator
	advisor   *advisory.Service
	refresher *advisory.Refresher
	metrics   *metrics.Metrics
	loc       *time.Location
	now       func() time.Time
	newID     func() string

	// submitting is set while a point submission waits on the advisory call.
	submitting atomic.Bool

	mu         sync.Mutex
	users      []models.User
	houses     []models.House
	categories []models.Category
	events     []models.PointEvent
	session    *models.User
}

// New loads every collection from the store, falling back to the seed
// collections for keys that were never written, and restores the session.
func New(ctx context.Context, opts Options) (*App, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("app: store is required")
	}
	if opts.Verifier == nil {
		opts.Verifier = auth.PlaintextVerifier{}
	}
	if opts.Advisor == nil {
		opts.Advisor = advisory.NewService(advisory.Unconfigured{}, nil, opts.Metrics)
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	a := &App{
		store:     opts.Store,
		auth:      auth.NewAuthenticator(opts.Verifier),
		advisor:   opts.Advisor,
		refresher: opts.Refresher,
		metrics:   opts.Metrics,
		loc:       opts.Location,
		now:       opts.Now,
		newID:     opts.NewID,
	}

	var err error
	if a.users, err = storage.Load(ctx, a.store, storage.KeyUsers, seed.Users); err != nil {
		return nil, err
	}
	if a.houses, err = storage.Load(ctx, a.store, storage.KeyHouses, seed.Houses); err != nil {
		return nil, err
	}
	if a.categories, err = storage.Load(ctx, a.store, storage.KeyCategories, seed.Categories); err != nil {
		return nil, err
	}
	if a.events, err = storage.Load(ctx, a.store, storage.KeyEvents, seed.Events); err != nil {
		return nil, err
	}
	noSession := func() *models.User { return nil }
	if a.session, err = storage.Load(ctx, a.store, storage.KeySession, noSession); err != nil {
		return nil, err
	}

	if err := a.upgradeCredentials(ctx); err != nil {
		return nil, err
	}

	slog.Info("Application state loaded",
		"users", len(a.users),
		"houses", len(a.houses),
		"categories", len(a.categories),
		"events", len(a.events),
		"logged_in", a.session != nil,
	)

	a.refreshSummaries()
	return a, nil
}

// upgradeCredentials hashes plaintext passwords in place when the verifier
// stores bcrypt hashes, and saves the directory if anything changed.
func (a *App) upgradeCredentials(ctx context.Context) error {
	if _, ok := a.auth.Verifier().(auth.BcryptVerifier); !ok {
		return nil
	}

	users := slices.Clone(a.users)
	changed := 0
	for i, u := range users {
		if u.Password == "" || auth.IsBcryptHash(u.Password) {
			continue
		}
		hashed, err := a.auth.Verifier().Prepare(u.Password)
		if err != nil {
			return err
		}
		users[i].Password = hashed
		changed++
	}
	if changed == 0 {
		return nil
	}

	if err := storage.Save(ctx, a.store, storage.KeyUsers, users); err != nil {
		return err
	}
	a.users = users
	slog.Info("Stored passwords hashed", "count", changed)
	return nil
}

// refreshSummaries restarts the background summary run. Callers hold a.mu
// or own a exclusively.
func (a *App) refreshSummaries() {
	if a.refresher == nil {
		return
	}
	a.refresher.Refresh(a.houses, a.events)
}

// Location returns the time zone used for date labels.
func (a *App) Location() *time.Location {
	return a.loc
}

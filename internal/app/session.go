package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/housepoints/internal/auth"
	"github.com/mmynk/housepoints/internal/models"
	"github.com/mmynk/housepoints/internal/storage"
)

// Login authenticates a credential pair from the gate of view. A valid user
// whose role is outside the view's policy gets auth.ErrRoleNotPermitted and
// is not logged in.
func (a *App) Login(ctx context.Context, email, password string, view auth.View) (models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := a.auth.Authenticate(a.users, email, password)
	if err != nil {
		a.metrics.Login("invalid_credentials")
		slog.Info("Login rejected", "email", auth.NormalizeEmail(email))
		return models.User{}, err
	}

	if policy, gated := view.Policy(); gated && !auth.Authorize(user, policy) {
		a.metrics.Login("role_not_permitted")
		slog.Info("Login rejected for view", "user_id", user.ID, "role", user.Role, "view", view)
		return models.User{}, auth.ErrRoleNotPermitted
	}

	session := sanitize(user)
	if err := storage.Save(ctx, a.store, storage.KeySession, &session); err != nil {
		return models.User{}, err
	}
	a.session = &session
	a.metrics.Login("success")

	slog.Info("User logged in", "user_id", user.ID, "role", user.Role)
	return session, nil
}

// Logout clears the session. Logging out twice is not an error.
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.Delete(ctx, storage.KeySession); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if a.session != nil {
		slog.Info("User logged out", "user_id", a.session.ID)
	}
	a.session = nil
	return nil
}

// Session returns the logged-in user, or nil.
func (a *App) Session() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return nil
	}
	u := *a.session
	return &u
}

// EnterView checks the session against view. It never changes the session.
func (a *App) EnterView(view auth.View) (auth.Decision, *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	decision := auth.Check(a.session, view)
	if a.session == nil {
		return decision, nil
	}
	u := *a.session
	return decision, &u
}

// Authorize returns the session user when it may enter view, or
// auth.ErrLoginRequired / auth.ErrAccessDenied.
func (a *App) Authorize(view auth.View) (models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authorize(view)
}

func (a *App) authorize(view auth.View) (models.User, error) {
	switch auth.Check(a.session, view) {
	case auth.LoginRequired:
		return models.User{}, auth.ErrLoginRequired
	case auth.AccessDenied:
		return *a.session, auth.ErrAccessDenied
	}
	if a.session == nil {
		return models.User{}, nil
	}
	return *a.session, nil
}

// sanitize drops the stored credential from a user.
func sanitize(u models.User) models.User {
	u.Password = ""
	return u
}

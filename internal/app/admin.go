package app

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/mmynk/housepoints/internal/auth"
	"github.com/mmynk/housepoints/internal/models"
	"github.com/mmynk/housepoints/internal/storage"
	"github.com/mmynk/housepoints/internal/validate"
)

// HouseInput is the form for a new house.
type HouseInput struct {
	Name  string `json:"name" validate:"notblank,max=60"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Icon  string `json:"icon" validate:"omitempty,max=16"`
}

// CategoryInput is the form for a new scoring category.
type CategoryInput struct {
	Label         string `json:"label" validate:"notblank,max=60"`
	DefaultPoints int    `json:"defaultPoints"`
}

// UserInput is the form for a new staff member.
type UserInput struct {
	Name     string      `json:"name" validate:"notblank"`
	Email    string      `json:"email" validate:"notblank,contains=@"`
	Password string      `json:"password" validate:"notblank"`
	Role     models.Role `json:"role" validate:"omitempty,role"`
}

// Houses returns the house list in display order.
func (a *App) Houses() []models.House {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.houses)
}

// Categories returns the scoring categories.
func (a *App) Categories() []models.Category {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.categories)
}

// Users returns the staff directory without stored credentials.
func (a *App) Users() ([]models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.authorize(auth.ViewSettings); err != nil {
		return nil, err
	}
	users := make([]models.User, len(a.users))
	for i, u := range a.users {
		users[i] = sanitize(u)
	}
	return users, nil
}

// CreateHouse adds a house whose id is the slug of its name. A slug that
// collides with an existing house is rejected and the list is unchanged.
func (a *App) CreateHouse(ctx context.Context, in HouseInput) (models.House, error) {
	if err := validate.Struct(in); err != nil {
		return models.House{}, err
	}

	house := models.House{
		ID:    models.Slug(in.Name, models.HouseIDLength),
		Name:  strings.TrimSpace(in.Name),
		Color: in.Color,
		Icon:  strings.TrimSpace(in.Icon),
	}
	if house.Color == "" {
		house.Color = models.DefaultHouseColor
	}
	if house.Icon == "" {
		house.Icon = models.DefaultHouseIcon
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.authorize(auth.ViewSettings); err != nil {
		return models.House{}, err
	}

	if slices.ContainsFunc(a.houses, func(h models.House) bool { return h.ID == house.ID }) {
		return models.House{}, ErrHouseExists
	}

	houses := append(slices.Clone(a.houses), house)
	if err := storage.Save(ctx, a.store, storage.KeyHouses, houses); err != nil {
		return models.House{}, err
	}
	a.houses = houses
	a.refreshSummaries()

	slog.Info("House created", "house_id", house.ID, "name", house.Name)
	return house, nil
}

// DeleteHouse removes a house. Its point events stay in the log.
func (a *App) DeleteHouse(ctx context.Context, id string, confirm bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.authorize(auth.ViewSettings); err != nil {
		return err
	}

	idx := slices.IndexFunc(a.houses, func(h models.House) bool { return h.ID == id })
	if idx < 0 {
		return ErrHouseNotFound
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	houses := slices.Delete(slices.Clone(a.houses), idx, idx+1)
	if err := storage.Save(ctx, a.store, storage.KeyHouses, houses); err != nil {
		return err
	}
	a.houses = houses
	a.refreshSummaries()

	slog.Info("House deleted", "house_id", id)
	return nil
}

// CreateCategory adds a category whose id is the slug of its label.
func (a *App) CreateCategory(ctx context.Context, in CategoryInput) (models.Category, error) {
	if err := validate.Struct(in); err != nil {
		return models.Category{}, err
	}

	category := models.Category{
		ID:            models.Slug(in.Label, models.CategoryIDLength),
		Label:         strings.TrimSpace(in.Label),
		DefaultPoints: in.DefaultPoints,
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.authorize(auth.ViewSettings); err != nil {
		return models.Category{}, err
	}

	if slices.ContainsFunc(a.categories, func(c models.Category) bool { return c.ID == category.ID }) {
		return models.Category{}, ErrCategoryExists
	}

	categories := append(slices.Clone(a.categories), category)
	if err := storage.Save(ctx, a.store, storage.KeyCategories, categories); err != nil {
		return models.Category{}, err
	}
	a.categories = categories

	slog.Info("Category created", "category_id", category.ID, "default_points", category.DefaultPoints)
	return category, nil
}

// DeleteCategory removes a category. Events created from it are unaffected.
func (a *App) DeleteCategory(ctx context.Context, id string, confirm bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.authorize(auth.ViewSettings); err != nil {
		return err
	}

	idx := slices.IndexFunc(a.categories, func(c models.Category) bool { return c.ID == id })
	if idx < 0 {
		return ErrCategoryNotFound
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	categories := slices.Delete(slices.Clone(a.categories), idx, idx+1)
	if err := storage.Save(ctx, a.store, storage.KeyCategories, categories); err != nil {
		return err
	}
	a.categories = categories

	slog.Info("Category deleted", "category_id", id)
	return nil
}

// CreateUser registers a staff member. The email is stored case-folded and
// must be unique; the role defaults to Professor.
func (a *App) CreateUser(ctx context.Context, in UserInput) (models.User, error) {
	if err := validate.Struct(in); err != nil {
		return models.User{}, err
	}
	if in.Role == "" {
		in.Role = models.RoleTeacher
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.authorize(auth.ViewSettings); err != nil {
		return models.User{}, err
	}

	email := auth.NormalizeEmail(in.Email)
	if slices.ContainsFunc(a.users, func(u models.User) bool { return auth.NormalizeEmail(u.Email) == email }) {
		return models.User{}, ErrUserExists
	}

	password, err := a.auth.Verifier().Prepare(strings.TrimSpace(in.Password))
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:       a.newID(),
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Role:     in.Role,
		Password: password,
	}

	users := append(slices.Clone(a.users), user)
	if err := storage.Save(ctx, a.store, storage.KeyUsers, users); err != nil {
		return models.User{}, err
	}
	a.users = users

	slog.Info("User created", "user_id", user.ID, "role", user.Role)
	return sanitize(user), nil
}

// DeleteUser removes a staff member. The logged-in user cannot delete
// themselves; their point events keep the recorded teacher name.
func (a *App) DeleteUser(ctx context.Context, id string, confirm bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	current, err := a.authorize(auth.ViewSettings)
	if err != nil {
		return err
	}

	if current.ID == id {
		return ErrSelfDelete
	}
	idx := slices.IndexFunc(a.users, func(u models.User) bool { return u.ID == id })
	if idx < 0 {
		return ErrUserNotFound
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	users := slices.Delete(slices.Clone(a.users), idx, idx+1)
	if err := storage.Save(ctx, a.store, storage.KeyUsers, users); err != nil {
		return err
	}
	a.users = users

	slog.Info("User deleted", "user_id", id, "by", current.ID)
	return nil
}

package service

import (
	"github.com/mmynk/housepoints/internal/app"
	"github.com/mmynk/housepoints/internal/models"
	"github.com/mmynk/housepoints/internal/scoreboard"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// View is the gate the login form was shown on; empty means dashboard.
	View string `json:"view,omitempty"`
}

type LoginResponse struct {
	User models.User `json:"user"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetSessionRequest struct{}

type GetSessionResponse struct {
	// User is null when nobody is logged in.
	User *models.User `json:"user"`
}

type EnterViewRequest struct {
	View string `json:"view"`
}

type EnterViewResponse struct {
	View         string        `json:"view"`
	Title        string        `json:"title"`
	Decision     string        `json:"decision"`
	AllowedRoles []models.Role `json:"allowedRoles,omitempty"`
	User         *models.User  `json:"user"`
}

type SubmitPointsRequest struct {
	app.PointInput
}

type SubmitPointsResponse struct {
	Event models.PointEvent `json:"event"`
}

type ListHousesRequest struct{}

type ListHousesResponse struct {
	Houses []models.House `json:"houses"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

type ApplyCategoryRequest struct {
	CategoryID string `json:"categoryId"`
}

type ApplyCategoryResponse struct {
	Draft app.Draft `json:"draft"`
}

type ListEventsRequest struct {
	scoreboard.Filter
}

type ListEventsResponse struct {
	Entries []scoreboard.Entry `json:"entries"`
}

type DeleteEventRequest struct {
	EventID string `json:"eventId"`
	Confirm bool   `json:"confirm"`
}

type DeleteEventResponse struct{}

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []models.User `json:"users"`
}

type CreateUserRequest struct {
	app.UserInput
}

type CreateUserResponse struct {
	User models.User `json:"user"`
}

type DeleteUserRequest struct {
	UserID  string `json:"userId"`
	Confirm bool   `json:"confirm"`
}

type DeleteUserResponse struct{}

type CreateHouseRequest struct {
	app.HouseInput
}

type CreateHouseResponse struct {
	House models.House `json:"house"`
}

type DeleteHouseRequest struct {
	HouseID string `json:"houseId"`
	Confirm bool   `json:"confirm"`
}

type DeleteHouseResponse struct{}

type CreateCategoryRequest struct {
	app.CategoryInput
}

type CreateCategoryResponse struct {
	Category models.Category `json:"category"`
}

type DeleteCategoryRequest struct {
	CategoryID string `json:"categoryId"`
	Confirm    bool   `json:"confirm"`
}

type DeleteCategoryResponse struct{}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Dashboard app.Dashboard `json:"dashboard"`
}

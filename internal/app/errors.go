package app

import "errors"

var (
	ErrConfirmationRequired = errors.New("this action is permanent and must be confirmed")

	ErrHouseExists    = errors.New("a house with this name already exists")
	ErrCategoryExists = errors.New("a category with this name already exists")
	ErrUserExists     = errors.New("this email is already registered")

	ErrHouseNotFound    = errors.New("house not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEventNotFound    = errors.New("point event not found")

	ErrSelfDelete           = errors.New("you cannot delete your own account while logged in")
	ErrNoHouses             = errors.New("create at least one house before scoring")
	ErrInappropriateReason  = errors.New("the reason looks inappropriate; please review it")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
)

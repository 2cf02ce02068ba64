package userservice

import "errors"

const (
	// Error messages for user service operations
	ErrMsgUserNotFound      = "user not found"
	ErrMsgUserAlreadyExists = "user already exists"
	ErrMsgMalformedUser     = "could not create user" // #nosec G101

	// Placeholder record seeded at startup
	PlaceholderUsernamePrefix = "User"
	PlaceholderDisplayName    = "Test"
	PlaceholderPassword       = "12345" // #nosec G101

	// Gauge kept in line with the registry size
	RegisteredUsers     = "registered_users"
	RegisteredUsersHelp = "Number of user records currently held in the registry"

	// Accepted values of the list order parameter
	OrderAscending  = "asc"
	OrderDescending = "desc"
)

var (
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrUserAlreadyExists = errors.New(ErrMsgUserAlreadyExists)
	ErrMalformedUser     = errors.New(ErrMsgMalformedUser)
)

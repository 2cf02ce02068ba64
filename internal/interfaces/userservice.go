package interfaces

import (
	"context"

	"github.com/haguru/userdirectory/internal/models"
)

// SortOrder selects how ListUsers orders its result.
type SortOrder int

const (
	// Unsorted keeps the registry's own iteration order.
	Unsorted SortOrder = iota
	Ascending
	Descending
)

type UserService interface {
	ListUsers(ctx context.Context, order SortOrder) []models.User
	GetUser(ctx context.Context, username string) (*models.User, error)
	ReplaceUser(ctx context.Context, username string, data []byte) error
	CreateUser(ctx context.Context, username, displayName, password string) error
	ModifyUser(ctx context.Context, username, displayName, password string) error
	DeleteUser(ctx context.Context, username string) error
}

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

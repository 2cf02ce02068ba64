package userservice

import (
	"slices"
	"strings"

	"github.com/haguru/userdirectory/internal/interfaces"
	"github.com/haguru/userdirectory/internal/models"
)

// ParseSortOrder maps the list query parameter onto a SortOrder.
// Empty means unsorted, "desc" means descending and anything else ascending.
func ParseSortOrder(order string) interfaces.SortOrder {
	switch order {
	case "":
		return interfaces.Unsorted
	case OrderDescending:
		return interfaces.Descending
	default:
		return interfaces.Ascending
	}
}

// compareByUsername orders users by username in the given direction.
// Users without a username come first in both directions.
func compareByUsername(order interfaces.SortOrder) func(a, b models.User) int {
	return func(a, b models.User) int {
		switch {
		case a.Username == "" && b.Username == "":
			return 0
		case a.Username == "":
			return -1
		case b.Username == "":
			return 1
		}

		c := strings.Compare(a.Username, b.Username)
		if order == interfaces.Descending {
			return -c
		}
		return c
	}
}

// SortUsers sorts users in place. Unsorted leaves the slice untouched.
func SortUsers(users []models.User, order interfaces.SortOrder) {
	if order == interfaces.Unsorted {
		return
	}
	slices.SortStableFunc(users, compareByUsername(order))
}

package interfaces

import "github.com/haguru/userdirectory/internal/models"

// UserRegistry is a concurrency-safe mapping from a key (normally the
// username) to a user record. Every single call is atomic; sequences of
// calls are not.
type UserRegistry interface {
	// List returns a copy of every stored record in no particular order.
	List() []models.User
	// Get returns a copy of the record stored under key.
	Get(key string) (models.User, bool)
	// Put stores user under key, overwriting whatever was there. The key
	// does not have to match user.Username.
	Put(key string, user models.User)
	// PutIfAbsent stores user under key only if the key is free and
	// reports whether it did.
	PutIfAbsent(key string, user models.User) bool
	// Update applies fn to the record under key while holding the entry
	// and reports whether the key existed.
	Update(key string, fn func(user *models.User)) bool
	// Remove deletes key. Missing keys are ignored.
	Remove(key string)
	// ContainsKey reports whether key is present.
	ContainsKey(key string) bool
	// Len returns the number of stored records.
	Len() int
}

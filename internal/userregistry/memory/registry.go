package memory

import (
	"sync"

	"github.com/haguru/userdirectory/internal/interfaces"
	"github.com/haguru/userdirectory/internal/models"
)

// UserRegistry keeps user records in a map guarded by a RWMutex.
// Records are stored by value so no caller shares memory with the map.
type UserRegistry struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRegistry creates an empty registry.
func NewUserRegistry() interfaces.UserRegistry {
	return &UserRegistry{
		users: make(map[string]models.User),
	}
}

func (r *UserRegistry) List() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users
}

func (r *UserRegistry) Get(key string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[key]
	return user, ok
}

func (r *UserRegistry) Put(key string, user models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[key] = user
}

func (r *UserRegistry) PutIfAbsent(key string, user models.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[key]; exists {
		return false
	}
	r.users[key] = user
	return true
}

func (r *UserRegistry) Update(key string, fn func(user *models.User)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[key]
	if !ok {
		return false
	}
	fn(&user)
	r.users[key] = user
	return true
}

func (r *UserRegistry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, key)
}

func (r *UserRegistry) ContainsKey(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[key]
	return ok
}

func (r *UserRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

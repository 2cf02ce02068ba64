package memory

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/haguru/userdirectory/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegistry_PutGet(t *testing.T) {
	r := NewUserRegistry()

	_, ok := r.Get("alice")
	assert.False(t, ok)

	r.Put("alice", *models.NewUser("someone-else", "A", "p"))

	got, ok := r.Get("alice")
	require.True(t, ok)
	assert.Equal(t, "someone-else", got.Username)
	assert.True(t, r.ContainsKey("alice"))
	assert.False(t, r.ContainsKey("someone-else"))
}

func TestUserRegistry_PutOverwrites(t *testing.T) {
	r := NewUserRegistry()
	r.Put("alice", *models.NewUser("alice", "A", "p"))
	r.Put("alice", *models.NewUser("alice", "B", "q"))

	got, _ := r.Get("alice")
	assert.Equal(t, "B", got.DisplayName)
	assert.Equal(t, 1, r.Len())
}

func TestUserRegistry_GetReturnsCopy(t *testing.T) {
	r := NewUserRegistry()
	r.Put("alice", *models.NewUser("alice", "A", "p"))

	got, _ := r.Get("alice")
	got.DisplayName = "changed"

	again, _ := r.Get("alice")
	assert.Equal(t, "A", again.DisplayName)
}

func TestUserRegistry_PutIfAbsent(t *testing.T) {
	r := NewUserRegistry()
	assert.True(t, r.PutIfAbsent("carol", *models.NewUser("carol", "Carol", "x")))
	assert.False(t, r.PutIfAbsent("carol", *models.NewUser("carol", "Other", "y")))

	got, _ := r.Get("carol")
	assert.Equal(t, "Carol", got.DisplayName)
}

func TestUserRegistry_Update(t *testing.T) {
	r := NewUserRegistry()
	assert.False(t, r.Update("carol", func(u *models.User) { u.Password = "y" }))

	r.Put("carol", *models.NewUser("carol", "Carol", "x"))
	assert.True(t, r.Update("carol", func(u *models.User) { u.Password = "y" }))

	got, _ := r.Get("carol")
	assert.Equal(t, "y", got.Password)
	assert.Equal(t, "carol", got.Username)
}

func TestUserRegistry_Remove(t *testing.T) {
	r := NewUserRegistry()
	r.Put("carol", *models.NewUser("carol", "Carol", "x"))

	r.Remove("carol")
	r.Remove("carol")

	assert.False(t, r.ContainsKey("carol"))
	assert.Equal(t, 0, r.Len())
}

func TestUserRegistry_List(t *testing.T) {
	r := NewUserRegistry()
	assert.NotNil(t, r.List())
	assert.Empty(t, r.List())

	r.Put("a", *models.NewUser("a", "", ""))
	r.Put("b", *models.NewUser("b", "", ""))

	assert.ElementsMatch(t, []models.User{
		*models.NewUser("a", "", ""),
		*models.NewUser("b", "", ""),
	}, r.List())
}

func TestUserRegistry_ConcurrentPutIfAbsent(t *testing.T) {
	r := NewUserRegistry()
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if r.PutIfAbsent("dave", *models.NewUser("dave", fmt.Sprintf("D%d", i), "p")) {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 1, r.Len())
}

package session

import (
	"sync"
	"testing"

	jwtpkg "github.com/piresc/tiffinhub/internal/pkg/jwt"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetAndClear(t *testing.T) {
	store := NewMemoryStore()
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())

	store.SetSession("tok", &models.User{ID: "u-1", ServiceType: models.ServiceTypeTiffinProvider})

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok", store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, "u-1", store.User().ID)

	store.ClearSession()

	assert.Equal(t, models.Session{}, store.Snapshot())
}

func TestMemoryStore_UserIsCopied(t *testing.T) {
	store := NewMemoryStore()
	user := &models.User{ID: "u-1"}
	store.SetSession("tok", user)

	user.ID = "mutated"
	got := store.User()
	got.ID = "mutated-again"

	assert.Equal(t, "u-1", store.User().ID)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.SetSession("tok", &models.User{ID: "u"})
		}()
		go func() {
			defer wg.Done()
			_ = store.Token()
			store.ClearSession()
		}()
	}
	wg.Wait()
}

func TestSetSessionFromToken(t *testing.T) {
	token, _, err := jwtpkg.GenerateToken(&models.User{
		ID:          "u-7",
		ServiceType: models.ServiceTypeHostelOwner,
	}, models.JWTConfig{Secret: "s", Expiration: 10})
	require.NoError(t, err)

	store := NewMemoryStore()
	user, err := SetSessionFromToken(store, token)

	require.NoError(t, err)
	assert.Equal(t, "u-7", user.ID)
	assert.Equal(t, token, store.Token())
	assert.Equal(t, models.ServiceTypeHostelOwner, store.User().ServiceType)

	_, err = SetSessionFromToken(store, "garbage")
	assert.Error(t, err)
	assert.Equal(t, token, store.Token())
}

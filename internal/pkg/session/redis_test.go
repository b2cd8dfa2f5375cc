package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "tiffinhub:session:test"

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func TestRedisPersister_RoundTrip(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	p := NewRedisPersister(client, testKey)
	ctx := context.Background()

	loaded, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	err = p.Save(ctx, models.Session{
		Token:           "tok",
		IsAuthenticated: true,
		User:            &models.User{ID: "u-1", ServiceType: models.ServiceTypeHostelOwner},
	})
	require.NoError(t, err)
	assert.True(t, mr.Exists(testKey))

	loaded, err = p.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok", loaded.Token)
	assert.Equal(t, "u-1", loaded.User.ID)

	require.NoError(t, p.Delete(ctx))
	assert.False(t, mr.Exists(testKey))
}

func TestRedisPersister_CorruptValue(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	require.NoError(t, mr.Set(testKey, "{not json"))

	_, err := NewRedisPersister(client, testKey).Load(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode session")
}

func TestPersistentStore_RestoresAndClears(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	ctx := context.Background()
	p := NewRedisPersister(client, testKey)

	first, err := NewPersistentStore(ctx, p)
	require.NoError(t, err)
	assert.False(t, first.IsAuthenticated())

	first.SetSession("tok", &models.User{ID: "u-1"})

	// a later process picks the session back up
	second, err := NewPersistentStore(ctx, p)
	require.NoError(t, err)
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "tok", second.Token())
	assert.Equal(t, "u-1", second.User().ID)

	second.ClearSession()
	assert.False(t, second.IsAuthenticated())
	assert.False(t, mr.Exists(testKey))
}

func TestPersistentStore_ClearSurvivesBackendOutage(t *testing.T) {
	mr, client := setupMiniredis(t)

	store, err := NewPersistentStore(context.Background(), NewRedisPersister(client, testKey))
	require.NoError(t, err)
	store.SetSession("tok", &models.User{ID: "u-1"})

	mr.Close()
	store.ClearSession()

	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}

package storage_test

import (
	"context"
	"testing"
	"time"

	"foodcourt-web/internal/cart"
	"foodcourt-web/internal/domain"
	"foodcourt-web/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*storage.RedisCartRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return storage.NewRedisCartRepository(client, time.Hour), mr
}

func TestRedisCartRepository_RoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	restaurant := domain.Restaurant{ID: 1, Name: "Pizzeria Uno"}
	saved := &cart.Cart{
		Restaurant: &restaurant,
		Lines: []cart.Line{
			{MenuItemID: 10, ItemName: "Margherita", Price: 100, Quantity: 2},
		},
	}
	require.NoError(t, repo.Save(ctx, "s1", saved))

	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded.Restaurant)
	assert.Equal(t, "Pizzeria Uno", loaded.Restaurant.Name)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, 200.0, loaded.Total())
}

func TestRedisCartRepository_LoadMissingReturnsEmptyCart(t *testing.T) {
	repo, _ := newRepo(t)

	c, err := repo.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.True(t, c.Empty())
	assert.Nil(t, c.Restaurant)
}

func TestRedisCartRepository_Delete(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	restaurant := domain.Restaurant{ID: 1}
	require.NoError(t, repo.Save(ctx, "s1", &cart.Cart{
		Restaurant: &restaurant,
		Lines:      []cart.Line{{MenuItemID: 10, Quantity: 1}},
	}))
	require.NoError(t, repo.Delete(ctx, "s1"))

	c, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, c.Empty())
}

func TestRedisCartRepository_SetsTTL(t *testing.T) {
	repo, mr := newRepo(t)

	restaurant := domain.Restaurant{ID: 1}
	require.NoError(t, repo.Save(context.Background(), "s1", &cart.Cart{Restaurant: &restaurant}))

	assert.Greater(t, mr.TTL("cart:s1"), time.Duration(0))
}

func TestRedisCartRepository_WorksBehindStore(t *testing.T) {
	repo, _ := newRepo(t)
	store := cart.NewStore(repo)
	ctx := context.Background()

	item := domain.MenuItem{ID: 10, ItemName: "Margherita", Price: 100, Available: true}
	restaurant := domain.Restaurant{ID: 1, Name: "Pizzeria Uno"}

	_, err := store.AddItem(ctx, "s1", item, restaurant)
	require.NoError(t, err)
	c, err := store.AddItem(ctx, "s1", item, restaurant)
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

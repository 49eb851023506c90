package services

import (
	"testing"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBlockAndUnblock(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)

	var vErr *ValidationError
	err := e.Rest.Block(rest.ID, "  ")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "reason", vErr.Field)

	require.NoError(t, e.Rest.Block(rest.ID, "payment overdue"))
	got, err := e.Rest.Get(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RestaurantBlocked, got.Status)
	require.NotNil(t, got.BlockReason)
	assert.Equal(t, "payment overdue", *got.BlockReason)
	assert.False(t, got.Orderable())

	require.NoError(t, e.Rest.Unblock(rest.ID))
	got, err = e.Rest.Get(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RestaurantActive, got.Status)
	assert.Nil(t, got.BlockReason)
	assert.True(t, got.Orderable())

	assert.ErrorIs(t, e.Rest.Block(999, "whatever"), gorm.ErrRecordNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)

	city := "Mumbai"
	got, err := e.Rest.UpdateProfile(rest.ID, &UpdateProfileIn{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", got.City)
	// untouched fields keep their values
	assert.Equal(t, "Spice Garden", got.Name)
	assert.Equal(t, "spice-garden", got.Slug)

	// a blank name is ignored rather than wiping the field
	blank := "  "
	got, err = e.Rest.UpdateProfile(rest.ID, &UpdateProfileIn{Name: &blank})
	require.NoError(t, err)
	assert.Equal(t, "Spice Garden", got.Name)
}

func TestPlatformStats(t *testing.T) {
	e := newTestEnv(t)
	stats := NewStatsService(e.RestRepo, e.RegRepo, e.OrderRepo)

	e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	e.seedRestaurant(t, "on-trial", entity.RestaurantTrial)
	e.seedRestaurant(t, "blocked-place", entity.RestaurantBlocked)

	_, err := e.Reg.Apply(applyIn())
	require.NoError(t, err)

	got, err := stats.Platform()
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ActiveRestaurants, "trial counts as active, blocked does not")
	assert.Equal(t, int64(1), got.PendingRequests)
	assert.Zero(t, got.TotalOrders)
}

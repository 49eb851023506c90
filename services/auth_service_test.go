package services

import (
	"testing"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	e.seedUser(t, rest.ID, "owner@spicegarden.in", "s3cretpass")

	out, err := e.Auth.Login("owner@spicegarden.in", "s3cretpass")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, rest.ID, out.Restaurant.ID)
	assert.False(t, out.TempPassword)

	// email lookup is case-insensitive
	_, err = e.Auth.Login("  Owner@SpiceGarden.in ", "s3cretpass")
	assert.NoError(t, err)

	_, err = e.Auth.Login("owner@spicegarden.in", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = e.Auth.Login("nobody@example.in", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDistinguishesPendingRegistration(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.Reg.Apply(applyIn())
	require.NoError(t, err)

	// no account yet, but the email sits in the pending queue
	_, err = e.Auth.Login("ravi@example.in", "anything")
	assert.ErrorIs(t, err, ErrRegistrationPending)
}

func TestLoginBlockedRestaurant(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantBlocked)
	e.seedUser(t, rest.ID, "owner@spicegarden.in", "s3cretpass")

	_, err := e.Auth.Login("owner@spicegarden.in", "s3cretpass")
	assert.ErrorIs(t, err, ErrRestaurantBlocked)

	// unblocking restores access
	require.NoError(t, e.Rest.Unblock(rest.ID))
	_, err = e.Auth.Login("owner@spicegarden.in", "s3cretpass")
	assert.NoError(t, err)
}

func TestAdminLogin(t *testing.T) {
	e := newTestEnv(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, e.DB.Create(&entity.AdminUser{
		Email:    "admin@platform.in",
		Password: string(hash),
		Name:     "Platform Admin",
	}).Error)

	out, err := e.Auth.AdminLogin("admin@platform.in", "adminpass")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	require.NotNil(t, out.Admin)
	assert.Nil(t, out.User)

	_, err = e.Auth.AdminLogin("admin@platform.in", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// a restaurant user cannot come in through the admin door
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	e.seedUser(t, rest.ID, "owner@spicegarden.in", "s3cretpass")
	_, err = e.Auth.AdminLogin("owner@spicegarden.in", "s3cretpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	user := e.seedUser(t, rest.ID, "owner@spicegarden.in", "s3cretpass")
	require.NoError(t, e.DB.Model(user).Update("temp_password", true).Error)

	var vErr *ValidationError
	err := e.Auth.ChangePassword(user.ID, "s3cretpass", "short")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "newPassword", vErr.Field)

	err = e.Auth.ChangePassword(user.ID, "wrong-current", "newpassword1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, e.Auth.ChangePassword(user.ID, "s3cretpass", "newpassword1"))

	out, err := e.Auth.Login("owner@spicegarden.in", "newpassword1")
	require.NoError(t, err)
	assert.False(t, out.TempPassword, "temporary-password flag should clear")

	_, err = e.Auth.Login("owner@spicegarden.in", "s3cretpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

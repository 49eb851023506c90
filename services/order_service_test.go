package services

import (
	"testing"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitIn(items ...SubmittedLine) *SubmitOrderIn {
	return &SubmitOrderIn{
		OrderType:     entity.OrderTypeTable,
		TableNumber:   "4",
		CustomerName:  "Asha",
		CustomerPhone: "9876543210",
		Items:         items,
	}
}

func TestSubmitRepricesAgainstLiveMenu(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	pizza := e.seedMenuItem(t, rest.ID, entity.MenuItem{
		Name: "Margherita",
		Sizes: []entity.SizeOption{
			{Name: "Regular", Price: 250},
			{Name: "Large", Price: 300},
		},
		Addons: []entity.AddonOption{{Name: "Extra Cheese", Price: 20}},
	})

	out, err := e.Order.Submit("spice-garden", submitIn(SubmittedLine{
		MenuItemID: pizza.ID,
		Quantity:   2,
		Size:       "Large",
		Addons:     []string{"Extra Cheese"},
	}))
	require.NoError(t, err)

	assert.Equal(t, 640.0, out.Subtotal)
	assert.Equal(t, 32.0, out.Tax)
	assert.Equal(t, 672.0, out.Total)
	assert.Regexp(t, `^ORD\d{9}$`, out.OrderNumber)
	assert.NotEmpty(t, out.TrackToken)

	order, err := e.OrderRepo.GetForRestaurant(rest.ID, out.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Margherita", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 320.0, order.Items[0].UnitPrice)
}

func TestSubmitMergesDuplicateLines(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	lassi := e.seedMenuItem(t, rest.ID, entity.MenuItem{Name: "Sweet Lassi", BasePrice: 80})

	out, err := e.Order.Submit("spice-garden", submitIn(
		SubmittedLine{MenuItemID: lassi.ID, Quantity: 1},
		SubmittedLine{MenuItemID: lassi.ID, Quantity: 2},
	))
	require.NoError(t, err)

	order, err := e.OrderRepo.GetForRestaurant(rest.ID, out.OrderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, 240.0, order.Subtotal)
}

func TestSubmitValidation(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	lassi := e.seedMenuItem(t, rest.ID, entity.MenuItem{Name: "Sweet Lassi", BasePrice: 80})
	line := SubmittedLine{MenuItemID: lassi.ID, Quantity: 1}

	var vErr *ValidationError

	in := submitIn(line)
	in.CustomerName = "  "
	_, err := e.Order.Submit("spice-garden", in)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "customerName", vErr.Field)

	in = submitIn(line)
	in.CustomerPhone = "12345"
	_, err = e.Order.Submit("spice-garden", in)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "customerPhone", vErr.Field)

	in = submitIn(line)
	in.TableNumber = ""
	_, err = e.Order.Submit("spice-garden", in)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "tableNumber", vErr.Field)

	// takeaway does not need a table
	in = submitIn(line)
	in.OrderType = entity.OrderTypeTakeaway
	in.TableNumber = ""
	_, err = e.Order.Submit("spice-garden", in)
	assert.NoError(t, err)

	_, err = e.Order.Submit("spice-garden", submitIn())
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "items", vErr.Field)
}

func TestSubmitRejectsUnknownAndUnavailableItems(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	dosa := e.seedMenuItem(t, rest.ID, entity.MenuItem{Name: "Masala Dosa", BasePrice: 120})

	var vErr *ValidationError

	_, err := e.Order.Submit("spice-garden", submitIn(SubmittedLine{MenuItemID: 999, Quantity: 1}))
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "items", vErr.Field)

	require.NoError(t, e.DB.Model(dosa).Update("is_available", false).Error)
	_, err = e.Order.Submit("spice-garden", submitIn(SubmittedLine{MenuItemID: dosa.ID, Quantity: 1}))
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Msg, "no longer available")

	// an item belonging to another restaurant is invisible here
	other := e.seedRestaurant(t, "other-place", entity.RestaurantActive)
	theirs := e.seedMenuItem(t, other.ID, entity.MenuItem{Name: "Their Dish", BasePrice: 100})
	_, err = e.Order.Submit("spice-garden", submitIn(SubmittedLine{MenuItemID: theirs.ID, Quantity: 1}))
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "items", vErr.Field)
}

func TestSubmitBlockedRestaurant(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantBlocked)
	lassi := e.seedMenuItem(t, rest.ID, entity.MenuItem{Name: "Sweet Lassi", BasePrice: 80})

	_, err := e.Order.Submit("spice-garden", submitIn(SubmittedLine{MenuItemID: lassi.ID, Quantity: 1}))
	assert.ErrorIs(t, err, ErrRestaurantBlocked)
}

func TestTrackByToken(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	lassi := e.seedMenuItem(t, rest.ID, entity.MenuItem{Name: "Sweet Lassi", BasePrice: 80})

	out, err := e.Order.Submit("spice-garden", submitIn(SubmittedLine{MenuItemID: lassi.ID, Quantity: 1}))
	require.NoError(t, err)

	order, err := e.Order.Track("spice-garden", out.TrackToken)
	require.NoError(t, err)
	assert.Equal(t, out.OrderNumber, order.OrderNumber)

	_, err = e.Order.Track("spice-garden", "bogus-token")
	assert.Error(t, err)

	// a valid token does not work under another restaurant's slug
	e.seedRestaurant(t, "other-place", entity.RestaurantActive)
	_, err = e.Order.Track("other-place", out.TrackToken)
	assert.Error(t, err)
}

func TestOrderTransitions(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	lassi := e.seedMenuItem(t, rest.ID, entity.MenuItem{Name: "Sweet Lassi", BasePrice: 80})

	place := func() uint {
		out, err := e.Order.Submit("spice-garden", submitIn(SubmittedLine{MenuItemID: lassi.ID, Quantity: 1}))
		require.NoError(t, err)
		return out.OrderID
	}

	// happy path: pending -> accepted -> completed, timestamps stamped
	id := place()
	require.NoError(t, e.Order.Accept(rest.ID, id))
	order, err := e.Order.Detail(rest.ID, id)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderAccepted, order.Status)
	assert.NotNil(t, order.AcceptedAt)

	require.NoError(t, e.Order.Complete(rest.ID, id))
	order, err = e.Order.Detail(rest.ID, id)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, order.Status)
	assert.NotNil(t, order.CompletedAt)

	// completed is terminal
	assert.ErrorIs(t, e.Order.Accept(rest.ID, id), ErrInvalidTransition)
	assert.ErrorIs(t, e.Order.Cancel(rest.ID, id, ""), ErrInvalidTransition)

	// pending cannot skip to completed
	id = place()
	assert.ErrorIs(t, e.Order.Complete(rest.ID, id), ErrInvalidTransition)

	// reject from pending
	require.NoError(t, e.Order.Reject(rest.ID, id))
	order, err = e.Order.Detail(rest.ID, id)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderRejected, order.Status)
	assert.NotNil(t, order.RejectedAt)

	// cancel with a reason from accepted
	id = place()
	require.NoError(t, e.Order.Accept(rest.ID, id))
	require.NoError(t, e.Order.Cancel(rest.ID, id, "customer left"))
	order, err = e.Order.Detail(rest.ID, id)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, order.Status)
	assert.NotNil(t, order.CancelledAt)
	require.NotNil(t, order.CancelReason)
	assert.Equal(t, "customer left", *order.CancelReason)
}

func TestTransitionsAreTenantScoped(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	other := e.seedRestaurant(t, "other-place", entity.RestaurantActive)
	lassi := e.seedMenuItem(t, rest.ID, entity.MenuItem{Name: "Sweet Lassi", BasePrice: 80})

	out, err := e.Order.Submit("spice-garden", submitIn(SubmittedLine{MenuItemID: lassi.ID, Quantity: 1}))
	require.NoError(t, err)

	// another restaurant's staff cannot touch the order
	assert.Error(t, e.Order.Accept(other.ID, out.OrderID))

	order, err := e.Order.Detail(rest.ID, out.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
}

func TestListForRestaurantStatusFilter(t *testing.T) {
	e := newTestEnv(t)
	rest := e.seedRestaurant(t, "spice-garden", entity.RestaurantActive)
	lassi := e.seedMenuItem(t, rest.ID, entity.MenuItem{Name: "Sweet Lassi", BasePrice: 80})

	first, err := e.Order.Submit("spice-garden", submitIn(SubmittedLine{MenuItemID: lassi.ID, Quantity: 1}))
	require.NoError(t, err)
	_, err = e.Order.Submit("spice-garden", submitIn(SubmittedLine{MenuItemID: lassi.ID, Quantity: 1}))
	require.NoError(t, err)
	require.NoError(t, e.Order.Accept(rest.ID, first.OrderID))

	pending, err := e.Order.ListForRestaurant(rest.ID, entity.OrderPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := e.Order.ListForRestaurant(rest.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	var vErr *ValidationError
	_, err = e.Order.ListForRestaurant(rest.ID, "shipped")
	assert.ErrorAs(t, err, &vErr)
}

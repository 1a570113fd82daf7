package tests

import (
	"context"
	"testing"

	"syncpos/internal/domain"
	"syncpos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSavedOrderFixture(t *testing.T) (*service.SavedOrderService, *service.CartService) {
	t.Helper()
	cart, kv := newTestCart(t)
	return service.NewSavedOrderService(kv, cart), cart
}

func TestSaveOrderParksCart(t *testing.T) {
	saved, cart := newSavedOrderFixture(t)
	ctx := context.Background()

	require.NoError(t, cart.AddPlainItem(ctx, "burger_classic"))
	require.NoError(t, cart.AddPlainItem(ctx, "bev_lime_soda"))
	require.NoError(t, cart.SetDiscountPercent(ctx, dec(t, "5")))

	order, err := saved.Save(ctx, "T2", "Window table")

	require.NoError(t, err)
	assert.Regexp(t, `^ORD\d{6}$`, order.OrderNumber)
	assert.Equal(t, domain.OrderStatusSaved, order.Status)
	assert.Equal(t, "T2", order.Table)
	assert.Len(t, order.Items, 2)
	assertDecimal(t, "338", order.Subtotal)

	// Saving consumes the live cart.
	assert.Empty(t, cart.Lines())

	pending, err := saved.List(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestSaveOrderEmptyCart(t *testing.T) {
	saved, _ := newSavedOrderFixture(t)

	_, err := saved.Save(context.Background(), "T1", "")

	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestResumeRestoresCartAndUnparks(t *testing.T) {
	saved, cart := newSavedOrderFixture(t)
	ctx := context.Background()

	require.NoError(t, cart.AddCustomizedItem(ctx, "pizza_margherita",
		domain.SelectedCustomization{"size": {"Medium"}}, 2, ""))
	require.NoError(t, cart.SetDiscountPercent(ctx, dec(t, "10")))
	parked, err := saved.Save(ctx, "T3", "")
	require.NoError(t, err)

	// Something else happens in between.
	require.NoError(t, cart.AddPlainItem(ctx, "burger_classic"))

	require.NoError(t, saved.Resume(ctx, parked.ID))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "pizza_margherita", lines[0].MenuItemID)
	assert.Equal(t, 2, lines[0].Quantity)
	assertDecimal(t, "10", cart.Totals().DiscountPercent)

	pending, err := saved.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDeleteSavedOrder(t *testing.T) {
	saved, cart := newSavedOrderFixture(t)
	ctx := context.Background()

	require.NoError(t, cart.AddPlainItem(ctx, "burger_classic"))
	parked, err := saved.Save(ctx, "T1", "")
	require.NoError(t, err)

	require.NoError(t, saved.Delete(ctx, parked.ID))

	pending, err := saved.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, saved.Delete(ctx, parked.ID), service.ErrNotFound)
	assert.ErrorIs(t, saved.Resume(ctx, "missing"), service.ErrNotFound)
}

package tests

import (
	"context"
	"testing"

	"syncpos/internal/domain"
	"syncpos/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStoreCartRoundTrip(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	state := domain.CartState{
		Items: []domain.LineItem{
			{
				CartEntryID:        "e1",
				MenuItemID:         "pizza_margherita",
				Name:               "Margherita Pizza",
				BasePrice:          dec(t, "299"),
				UnitPrice:          dec(t, "389"),
				Quantity:           2,
				Customizations:     domain.SelectedCustomization{"size": {"Medium"}, "toppings": {"Extra Cheese"}},
				CustomizationLabel: "Medium • Extra Cheese",
			},
		},
		DiscountPercent: dec(t, "10"),
	}
	require.NoError(t, kv.SaveCart(ctx, state))

	got, err := kv.LoadCart(ctx)

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Medium • Extra Cheese", got.Items[0].CustomizationLabel)
	assert.Equal(t, []string{"Medium"}, got.Items[0].Customizations["size"])
	assertDecimal(t, "389", got.Items[0].UnitPrice)
	assertDecimal(t, "10", got.DiscountPercent)
}

func TestKVStoreLoadCartEmptyKey(t *testing.T) {
	kv, _ := newTestKV(t)

	state, err := kv.LoadCart(context.Background())

	require.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestKVStoreMalformedPayloadFailsClosed(t *testing.T) {
	kv, mr := newTestKV(t)
	require.NoError(t, mr.Set(storage.KeyCart, "{not json"))

	state, err := kv.LoadCart(context.Background())

	require.NoError(t, err)
	assert.Empty(t, state.Items)
	assertDecimal(t, "0", state.DiscountPercent)
}

func TestKVStoreOrdersAppendOnly(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	first := domain.Order{ID: "o1", OrderNumber: "ORD000001", Total: dec(t, "100")}
	second := domain.Order{ID: "o2", OrderNumber: "ORD000002", Total: dec(t, "200")}
	require.NoError(t, kv.AppendOrder(ctx, first))
	require.NoError(t, kv.AppendOrder(ctx, second))

	orders, err := kv.ListOrders(ctx)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD000001", orders[0].OrderNumber)
	assert.Equal(t, "ORD000002", orders[1].OrderNumber)
}

func TestKVStoreQRCode(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	missing, err := kv.QRCode(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, kv.SaveQRCode(ctx, "o1", []byte("png")))
	png, err := kv.QRCode(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestKVStoreSettings(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	_, ok, err := kv.LoadSettings(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := domain.Settings{RestaurantName: "SyncPOS Restaurant", TaxRatePercent: dec(t, "12")}
	require.NoError(t, kv.SaveSettings(ctx, want))

	got, ok, err := kv.LoadSettings(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "SyncPOS Restaurant", got.RestaurantName)
	assertDecimal(t, "12", got.TaxRatePercent)
}

func TestKVStoreSession(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	user, err := kv.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, kv.SetUser(ctx, domain.User{Username: "admin", Role: "admin"}))
	user, err = kv.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin", user.Username)

	require.NoError(t, kv.ClearUser(ctx))
	user, err = kv.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

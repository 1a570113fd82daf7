package tests

import (
	"context"
	"testing"

	"syncpos/internal/domain"
	"syncpos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartPlainItemsMerge(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddPlainItem(ctx, "burger_classic"))
	require.NoError(t, cart.AddPlainItem(ctx, "burger_classic"))
	require.NoError(t, cart.AddPlainItem(ctx, "burger_classic"))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assertDecimal(t, "249", lines[0].UnitPrice)
	assertDecimal(t, "747", cart.Totals().Subtotal)
}

func TestCartCustomizedLinesNeverMerge(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	selections := domain.SelectedCustomization{"size": {"Medium"}}
	require.NoError(t, cart.AddCustomizedItem(ctx, "pizza_margherita", selections, 1, ""))
	require.NoError(t, cart.AddCustomizedItem(ctx, "pizza_margherita", selections, 1, ""))
	require.NoError(t, cart.AddPlainItem(ctx, "pizza_margherita"))
	require.NoError(t, cart.AddPlainItem(ctx, "pizza_margherita"))

	lines := cart.Lines()
	require.Len(t, lines, 3)

	customized := 0
	for _, line := range lines {
		if line.Customized() {
			customized++
			assert.Equal(t, "Medium", line.CustomizationLabel)
			assertDecimal(t, "349", line.UnitPrice)
		}
	}
	assert.Equal(t, 2, customized)
}

func TestCartCustomizedQuantityIsOneLine(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	selections := domain.SelectedCustomization{
		"size":     {"Medium"},
		"toppings": {"Extra Cheese"},
	}
	require.NoError(t, cart.AddCustomizedItem(ctx, "pizza_margherita", selections, 2, "extra crispy"))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "extra crispy", lines[0].SpecialInstructions)
	assertDecimal(t, "389", lines[0].UnitPrice)
	assertDecimal(t, "778", cart.Totals().Subtotal)
}

func TestCartAddUnknownItem(t *testing.T) {
	cart, _ := newTestCart(t)

	err := cart.AddPlainItem(context.Background(), "no_such_item")

	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Empty(t, cart.Lines())
}

func TestCartAddCustomizedRejectsBadQuantity(t *testing.T) {
	cart, _ := newTestCart(t)

	err := cart.AddCustomizedItem(context.Background(), "pizza_margherita", nil, 0, "")

	assert.ErrorIs(t, err, service.ErrInvalidQuantity)
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddPlainItem(ctx, "bev_lime_soda"))
	require.NoError(t, cart.AddPlainItem(ctx, "burger_classic"))
	lines := cart.Lines()
	require.Len(t, lines, 2)

	require.NoError(t, cart.SetQuantity(ctx, lines[0].CartEntryID, 0))

	lines = cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "burger_classic", lines[0].MenuItemID)
}

func TestCartRemoveLine(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddPlainItem(ctx, "bev_cold_coffee"))
	entry := cart.Lines()[0].CartEntryID

	require.NoError(t, cart.RemoveLine(ctx, entry))

	assert.Empty(t, cart.Lines())
	assertDecimal(t, "0", cart.Totals().Total)
}

func TestCartClearResetsDiscount(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddPlainItem(ctx, "burger_classic"))
	require.NoError(t, cart.SetDiscountPercent(ctx, dec(t, "25")))
	require.NoError(t, cart.Clear(ctx))

	assert.Empty(t, cart.Lines())
	totals := cart.Totals()
	assertDecimal(t, "0", totals.DiscountPercent)
	assertDecimal(t, "0", totals.Total)
}

func TestCartDiscountClampedOnWrite(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddPlainItem(ctx, "burger_classic"))
	require.NoError(t, cart.SetDiscountPercent(ctx, dec(t, "150")))

	totals := cart.Totals()
	assertDecimal(t, "100", totals.DiscountPercent)
	assertDecimal(t, "0", totals.Total)
}

func TestCartRehydratesFromStore(t *testing.T) {
	cart, kv := newTestCart(t)
	ctx := context.Background()

	selections := domain.SelectedCustomization{"size": {"Medium"}, "toppings": {"Extra Cheese"}}
	require.NoError(t, cart.AddCustomizedItem(ctx, "pizza_margherita", selections, 1, ""))
	require.NoError(t, cart.AddPlainItem(ctx, "burger_classic"))
	require.NoError(t, cart.SetDiscountPercent(ctx, dec(t, "10")))
	want := cart.Totals()

	// A fresh service over the same store picks up where the first left off.
	revived := service.NewCartService(ctx, kv, kv, service.DefaultTaxPolicy())

	require.Len(t, revived.Lines(), 2)
	got := revived.Totals()
	assert.True(t, want.Total.Equal(got.Total), "expected %s, got %s", want.Total, got.Total)
	assertDecimal(t, "10", got.DiscountPercent)
}

func TestCartStateReturnsCopies(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddCustomizedItem(ctx, "pizza_margherita",
		domain.SelectedCustomization{"size": {"Medium"}}, 1, ""))

	lines := cart.Lines()
	lines[0].Quantity = 99
	lines[0].Customizations["size"][0] = "Large"

	fresh := cart.Lines()
	assert.Equal(t, 1, fresh[0].Quantity)
	assert.Equal(t, "Medium", fresh[0].Customizations["size"][0])
}

package tests

import (
	"testing"

	"syncpos/internal/domain"
	"syncpos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func margherita(t *testing.T) domain.MenuItem {
	t.Helper()
	for _, item := range service.DefaultMenu() {
		if item.ID == "pizza_margherita" {
			return item
		}
	}
	t.Fatal("seed catalog is missing pizza_margherita")
	return domain.MenuItem{}
}

func TestResolveCustomization(t *testing.T) {
	item := margherita(t)

	tests := []struct {
		name       string
		selections domain.SelectedCustomization
		wantPrice  string
		wantLabel  string
	}{
		{
			name:       "no selections price the base item",
			selections: nil,
			wantPrice:  "299",
			wantLabel:  "",
		},
		{
			name: "single group",
			selections: domain.SelectedCustomization{
				"size": {"Large"},
			},
			wantPrice: "399",
			wantLabel: "Large",
		},
		{
			name: "deltas stack across groups, label in group name order",
			selections: domain.SelectedCustomization{
				"toppings": {"Extra Cheese"},
				"size":     {"Medium"},
			},
			wantPrice: "389",
			wantLabel: "Medium • Extra Cheese",
		},
		{
			name: "multiple options within a group join with comma",
			selections: domain.SelectedCustomization{
				"toppings": {"Extra Cheese", "Olives"},
			},
			wantPrice: "364",
			wantLabel: "Extra Cheese, Olives",
		},
		{
			name: "empty group is skipped",
			selections: domain.SelectedCustomization{
				"size":     {"Regular"},
				"toppings": {},
			},
			wantPrice: "299",
			wantLabel: "Regular",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, label, err := service.ResolveCustomization(item, tt.selections)

			require.NoError(t, err)
			assertDecimal(t, tt.wantPrice, price)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestResolveCustomizationRejectsUnknown(t *testing.T) {
	item := margherita(t)

	tests := []struct {
		name       string
		selections domain.SelectedCustomization
	}{
		{
			name:       "unknown group",
			selections: domain.SelectedCustomization{"spice_level": {"Hot"}},
		},
		{
			name:       "unknown option in a declared group",
			selections: domain.SelectedCustomization{"size": {"Gigantic"}},
		},
		{
			name: "one bad option poisons the whole selection",
			selections: domain.SelectedCustomization{
				"size":     {"Medium"},
				"toppings": {"Pineapple"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.ResolveCustomization(item, tt.selections)
			assert.ErrorIs(t, err, service.ErrUnknownOption)
		})
	}
}

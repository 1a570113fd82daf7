package service

import (
	"syncpos/internal/domain"

	"github.com/shopspring/decimal"
)

func rupees(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// DefaultMenu is the starter catalog installed on first run.
func DefaultMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID:          "pizza_margherita",
			Name:        "Margherita Pizza",
			Category:    "pizzas",
			BasePrice:   rupees(299),
			Description: "Classic pizza with tomato sauce, mozzarella, and fresh basil",
			Available:   true,
			Customizations: map[string][]domain.CustomizationOption{
				"size": {
					{Name: "Regular", PriceDelta: rupees(0)},
					{Name: "Medium", PriceDelta: rupees(50)},
					{Name: "Large", PriceDelta: rupees(100)},
				},
				"crust": {
					{Name: "Thin Crust", PriceDelta: rupees(0)},
					{Name: "Thick Crust", PriceDelta: rupees(30)},
				},
				"toppings": {
					{Name: "Extra Cheese", PriceDelta: rupees(40)},
					{Name: "Mushrooms", PriceDelta: rupees(30)},
					{Name: "Olives", PriceDelta: rupees(25)},
					{Name: "Bell Peppers", PriceDelta: rupees(20)},
				},
			},
		},
		{
			ID:          "pizza_pepperoni",
			Name:        "Pepperoni Pizza",
			Category:    "pizzas",
			BasePrice:   rupees(399),
			Description: "Loaded with pepperoni and extra cheese",
			Available:   true,
			Customizations: map[string][]domain.CustomizationOption{
				"size": {
					{Name: "Regular", PriceDelta: rupees(0)},
					{Name: "Medium", PriceDelta: rupees(60)},
					{Name: "Large", PriceDelta: rupees(120)},
				},
				"toppings": {
					{Name: "Extra Cheese", PriceDelta: rupees(40)},
					{Name: "Jalapenos", PriceDelta: rupees(25)},
				},
			},
		},
		{
			ID:          "burger_classic",
			Name:        "Classic Burger",
			Category:    "burgers",
			BasePrice:   rupees(249),
			Description: "Juicy patty with lettuce, tomato and house sauce",
			Available:   true,
			Customizations: map[string][]domain.CustomizationOption{
				"patty": {
					{Name: "Single", PriceDelta: rupees(0)},
					{Name: "Double", PriceDelta: rupees(80)},
				},
				"extras": {
					{Name: "Cheese Slice", PriceDelta: rupees(25)},
					{Name: "Bacon", PriceDelta: rupees(50)},
				},
			},
		},
		{
			ID:          "burger_veggie",
			Name:        "Veggie Burger",
			Category:    "burgers",
			BasePrice:   rupees(199),
			Description: "Grilled vegetable patty with fresh greens",
			Available:   true,
		},
		{
			ID:          "bev_cold_coffee",
			Name:        "Cold Coffee",
			Category:    "beverages",
			BasePrice:   rupees(149),
			Description: "Chilled coffee blended with ice cream",
			Available:   true,
			Customizations: map[string][]domain.CustomizationOption{
				"size": {
					{Name: "Regular", PriceDelta: rupees(0)},
					{Name: "Large", PriceDelta: rupees(40)},
				},
			},
		},
		{
			ID:          "bev_lime_soda",
			Name:        "Fresh Lime Soda",
			Category:    "beverages",
			BasePrice:   rupees(89),
			Description: "Sweet and salty lime soda",
			Available:   true,
		},
		{
			ID:          "dessert_brownie",
			Name:        "Chocolate Brownie",
			Category:    "desserts",
			BasePrice:   rupees(129),
			Description: "Warm brownie with chocolate sauce",
			Available:   true,
			Customizations: map[string][]domain.CustomizationOption{
				"extras": {
					{Name: "Ice Cream Scoop", PriceDelta: rupees(49)},
				},
			},
		},
		{
			ID:          "dessert_gulab_jamun",
			Name:        "Gulab Jamun",
			Category:    "desserts",
			BasePrice:   rupees(99),
			Description: "Soft milk dumplings in rose syrup",
			Available:   true,
		},
	}
}

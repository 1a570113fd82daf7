package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Persisted collections keep plain JSON numbers for money fields.
	decimal.MarshalJSONWithoutQuotes = true
}

type CustomizationOption struct {
	Name       string          `json:"name"`
	PriceDelta decimal.Decimal `json:"price"`
}

type MenuItem struct {
	ID             string                           `json:"id"`
	Name           string                           `json:"name"`
	Category       string                           `json:"category"`
	BasePrice      decimal.Decimal                  `json:"base_price"`
	Description    string                           `json:"description"`
	Image          string                           `json:"image,omitempty"`
	Customizations map[string][]CustomizationOption `json:"customizations,omitempty"`
	Available      bool                             `json:"available"`
}

// SelectedCustomization maps a customization group name to the chosen
// option names within that group. Multi-select per group.
type SelectedCustomization map[string][]string

type LineItem struct {
	CartEntryID         string                `json:"cart_entry_id"`
	MenuItemID          string                `json:"menu_item_id"`
	Name                string                `json:"name"`
	BasePrice           decimal.Decimal       `json:"base_price"`
	UnitPrice           decimal.Decimal       `json:"unit_price"`
	Quantity            int                   `json:"quantity"`
	Customizations      SelectedCustomization `json:"customizations,omitempty"`
	CustomizationLabel  string                `json:"customization_label,omitempty"`
	SpecialInstructions string                `json:"special_instructions,omitempty"`
}

func (l LineItem) Customized() bool {
	for _, opts := range l.Customizations {
		if len(opts) > 0 {
			return true
		}
	}
	return false
}

func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

const (
	OrderStatusCompleted = "completed"
	OrderStatusSaved     = "saved"
)

// Order is an immutable checkout snapshot. Monetary fields are copied from
// the cart totals at payment time and never recomputed afterwards.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	Timestamp       time.Time       `json:"timestamp"`
	Items           []LineItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
	Customer        Customer        `json:"customer"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Table           string          `json:"table"`
	Status          string          `json:"status"`
}

// SavedOrder is a cart snapshot parked without payment.
type SavedOrder struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	Table           string          `json:"table"`
	TableName       string          `json:"table_name,omitempty"`
	Items           []LineItem      `json:"items"`
	ItemCount       int             `json:"item_count"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	SavedAt         time.Time       `json:"saved_at"`
}

type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"current_stock"`
	MinStock     int             `json:"min_stock"`
	MaxStock     int             `json:"max_stock"`
	Unit         string          `json:"unit"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Supplier     string          `json:"supplier"`
	LastUpdated  time.Time       `json:"last_updated"`
}

type Settings struct {
	RestaurantName string          `json:"restaurant_name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	Email          string          `json:"email"`
	GSTIN          string          `json:"gstin"`
	TaxRatePercent decimal.Decimal `json:"tax_rate"`
}

type User struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Shift     string    `json:"shift"`
	LoginTime time.Time `json:"login_time"`
}

type SaleEvent struct {
	Type      string    `json:"type"`
	Order     Order     `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}

const SaleEventType = "order_completed"

// Totals are derived from cart contents on every mutation and never stored.
type Totals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxableAmount   decimal.Decimal `json:"taxable_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
	ItemCount       int             `json:"item_count"`
}

// Rounded applies two-decimal half-up rounding for display and responses.
// All intermediate arithmetic stays exact.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:        t.Subtotal.Round(2),
		DiscountPercent: t.DiscountPercent,
		DiscountAmount:  t.DiscountAmount.Round(2),
		TaxableAmount:   t.TaxableAmount.Round(2),
		TaxAmount:       t.TaxAmount.Round(2),
		Total:           t.Total.Round(2),
		ItemCount:       t.ItemCount,
	}
}

// TaxSplit returns the presentational CGST/SGST halves of the tax amount.
func (t Totals) TaxSplit() (cgst, sgst decimal.Decimal) {
	half := t.TaxAmount.Div(decimal.NewFromInt(2))
	return half, half
}

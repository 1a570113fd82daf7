package service

import (
	"context"

	"syncpos/internal/domain"

	"github.com/shopspring/decimal"
)

// Repositories over the persisted key-value collections. Every write replaces
// the whole collection; reads fail closed to empty defaults on corrupt data.

type CartRepository interface {
	LoadCart(ctx context.Context) (domain.CartState, error)
	SaveCart(ctx context.Context, state domain.CartState) error
}

type MenuRepository interface {
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
	ReplaceMenu(ctx context.Context, items []domain.MenuItem) error
}

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	AppendOrder(ctx context.Context, order domain.Order) error
	SaveQRCode(ctx context.Context, orderID string, png []byte) error
	QRCode(ctx context.Context, orderID string) ([]byte, error)
}

type SavedOrderRepository interface {
	ListSavedOrders(ctx context.Context) ([]domain.SavedOrder, error)
	ReplaceSavedOrders(ctx context.Context, orders []domain.SavedOrder) error
}

type InventoryRepository interface {
	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)
	ReplaceInventory(ctx context.Context, items []domain.InventoryItem) error
}

type SettingsRepository interface {
	LoadSettings(ctx context.Context) (domain.Settings, bool, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

type SessionRepository interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetUser(ctx context.Context, user domain.User) error
	ClearUser(ctx context.Context) error
}

type SalePublisher interface {
	PublishSale(ctx context.Context, event domain.SaleEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// SalesStoreInterface is the reporting side of a committed sale, applied by
// the sales worker, never by the checkout path.
type SalesStoreInterface interface {
	ArchiveOrder(order domain.Order) error
	UpdateLeaderboards(order domain.Order) error
}

type InventoryApplier interface {
	ApplySale(ctx context.Context, order domain.Order) error
}

// Service interfaces consumed by the HTTP handlers.

type CartServiceInterface interface {
	AddPlainItem(ctx context.Context, menuItemID string) error
	AddCustomizedItem(ctx context.Context, menuItemID string, selections domain.SelectedCustomization, quantity int, instructions string) error
	RemoveLine(ctx context.Context, cartEntryID string) error
	SetQuantity(ctx context.Context, cartEntryID string, quantity int) error
	SetDiscountPercent(ctx context.Context, percent decimal.Decimal) error
	Clear(ctx context.Context) error
	RestoreState(ctx context.Context, state domain.CartState) error
	Lines() []domain.LineItem
	Totals() domain.Totals
	State() domain.CartState
}

// CartAccess is the read/clear slice of the cart needed at checkout and
// save-for-later time.
type CartAccess interface {
	Lines() []domain.LineItem
	Totals() domain.Totals
	State() domain.CartState
	Clear(ctx context.Context) error
	RestoreState(ctx context.Context, state domain.CartState) error
}

type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, customer domain.Customer, method domain.PaymentMethod, table string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ReceiptQR(ctx context.Context, orderID string) ([]byte, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id string) error
}

type SavedOrderServiceInterface interface {
	Save(ctx context.Context, table, tableName string) (*domain.SavedOrder, error)
	List(ctx context.Context) ([]domain.SavedOrder, error)
	Delete(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
}

type InventoryServiceInterface interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Create(ctx context.Context, item *domain.InventoryItem) error
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id string) error
	LowStock(ctx context.Context) ([]domain.InventoryItem, error)
	ApplySale(ctx context.Context, order domain.Order) error
}

type SettingsServiceInterface interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, settings domain.Settings) error
	TaxPolicy(ctx context.Context) TaxPolicy
}

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.User, error)
}

type ReportsServiceInterface interface {
	Summary(ctx context.Context, period string) (SalesSummary, error)
	TopItems(ctx context.Context, period string, limit int) ([]ItemSales, error)
}

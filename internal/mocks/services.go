package mocks

import (
	"context"

	"syncpos/internal/domain"
	"syncpos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type CartServiceInterface struct {
	mock.Mock
}

func NewCartServiceInterface(t constructorT) *CartServiceInterface {
	m := &CartServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CartServiceInterface) AddPlainItem(ctx context.Context, menuItemID string) error {
	ret := _m.Called(ctx, menuItemID)
	return ret.Error(0)
}

func (_m *CartServiceInterface) AddCustomizedItem(ctx context.Context, menuItemID string, selections domain.SelectedCustomization, quantity int, instructions string) error {
	ret := _m.Called(ctx, menuItemID, selections, quantity, instructions)
	return ret.Error(0)
}

func (_m *CartServiceInterface) RemoveLine(ctx context.Context, cartEntryID string) error {
	ret := _m.Called(ctx, cartEntryID)
	return ret.Error(0)
}

func (_m *CartServiceInterface) SetQuantity(ctx context.Context, cartEntryID string, quantity int) error {
	ret := _m.Called(ctx, cartEntryID, quantity)
	return ret.Error(0)
}

func (_m *CartServiceInterface) SetDiscountPercent(ctx context.Context, percent decimal.Decimal) error {
	ret := _m.Called(ctx, percent)
	return ret.Error(0)
}

func (_m *CartServiceInterface) Clear(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *CartServiceInterface) RestoreState(ctx context.Context, state domain.CartState) error {
	ret := _m.Called(ctx, state)
	return ret.Error(0)
}

func (_m *CartServiceInterface) Lines() []domain.LineItem {
	ret := _m.Called()
	var r0 []domain.LineItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.LineItem)
	}
	return r0
}

func (_m *CartServiceInterface) Totals() domain.Totals {
	ret := _m.Called()
	return ret.Get(0).(domain.Totals)
}

func (_m *CartServiceInterface) State() domain.CartState {
	ret := _m.Called()
	return ret.Get(0).(domain.CartState)
}

type CheckoutServiceInterface struct {
	mock.Mock
}

func NewCheckoutServiceInterface(t constructorT) *CheckoutServiceInterface {
	m := &CheckoutServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CheckoutServiceInterface) Checkout(ctx context.Context, customer domain.Customer, method domain.PaymentMethod, table string) (*domain.Order, error) {
	ret := _m.Called(ctx, customer, method, table)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *CheckoutServiceInterface) ListOrders(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *CheckoutServiceInterface) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *CheckoutServiceInterface) ReceiptQR(ctx context.Context, orderID string) ([]byte, error) {
	ret := _m.Called(ctx, orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t constructorT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuServiceInterface) List(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Create(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *MenuServiceInterface) Update(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *MenuServiceInterface) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

type SavedOrderServiceInterface struct {
	mock.Mock
}

func NewSavedOrderServiceInterface(t constructorT) *SavedOrderServiceInterface {
	m := &SavedOrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *SavedOrderServiceInterface) Save(ctx context.Context, table, tableName string) (*domain.SavedOrder, error) {
	ret := _m.Called(ctx, table, tableName)
	var r0 *domain.SavedOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.SavedOrder)
	}
	return r0, ret.Error(1)
}

func (_m *SavedOrderServiceInterface) List(ctx context.Context) ([]domain.SavedOrder, error) {
	ret := _m.Called(ctx)
	var r0 []domain.SavedOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.SavedOrder)
	}
	return r0, ret.Error(1)
}

func (_m *SavedOrderServiceInterface) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *SavedOrderServiceInterface) Resume(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

type AuthServiceInterface struct {
	mock.Mock
}

func NewAuthServiceInterface(t constructorT) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AuthServiceInterface) Login(ctx context.Context, username, password string) (*domain.User, error) {
	ret := _m.Called(ctx, username, password)
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *AuthServiceInterface) Logout(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *AuthServiceInterface) Current(ctx context.Context) (*domain.User, error) {
	ret := _m.Called(ctx)
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

type ReportsServiceInterface struct {
	mock.Mock
}

func NewReportsServiceInterface(t constructorT) *ReportsServiceInterface {
	m := &ReportsServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ReportsServiceInterface) Summary(ctx context.Context, period string) (service.SalesSummary, error) {
	ret := _m.Called(ctx, period)
	return ret.Get(0).(service.SalesSummary), ret.Error(1)
}

func (_m *ReportsServiceInterface) TopItems(ctx context.Context, period string, limit int) ([]service.ItemSales, error) {
	ret := _m.Called(ctx, period, limit)
	var r0 []service.ItemSales
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]service.ItemSales)
	}
	return r0, ret.Error(1)
}

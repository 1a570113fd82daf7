package mocks

import (
	"context"

	"syncpos/internal/domain"

	"github.com/stretchr/testify/mock"
)

type constructorT interface {
	mock.TestingT
	Cleanup(func())
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t constructorT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) AppendOrder(ctx context.Context, order domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderRepository) SaveQRCode(ctx context.Context, orderID string, png []byte) error {
	ret := _m.Called(ctx, orderID, png)
	return ret.Error(0)
}

func (_m *OrderRepository) QRCode(ctx context.Context, orderID string) ([]byte, error) {
	ret := _m.Called(ctx, orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

type SalePublisher struct {
	mock.Mock
}

func NewSalePublisher(t constructorT) *SalePublisher {
	m := &SalePublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *SalePublisher) PublishSale(ctx context.Context, event domain.SaleEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t constructorT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *QRGenerator) Generate(orderID string) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

type SalesStoreInterface struct {
	mock.Mock
}

func NewSalesStoreInterface(t constructorT) *SalesStoreInterface {
	m := &SalesStoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *SalesStoreInterface) ArchiveOrder(order domain.Order) error {
	ret := _m.Called(order)
	return ret.Error(0)
}

func (_m *SalesStoreInterface) UpdateLeaderboards(order domain.Order) error {
	ret := _m.Called(order)
	return ret.Error(0)
}

type InventoryApplier struct {
	mock.Mock
}

func NewInventoryApplier(t constructorT) *InventoryApplier {
	m := &InventoryApplier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *InventoryApplier) ApplySale(ctx context.Context, order domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

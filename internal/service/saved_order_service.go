package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"syncpos/internal/domain"

	"github.com/google/uuid"
)

// SavedOrderService parks cart snapshots for later resumption, without
// payment or customer details.
type SavedOrderService struct {
	mu   sync.Mutex
	repo SavedOrderRepository
	cart CartAccess
	seq  int64
	now  func() time.Time
}

func NewSavedOrderService(repo SavedOrderRepository, cart CartAccess) *SavedOrderService {
	return &SavedOrderService{
		repo: repo,
		cart: cart,
		seq:  time.Now().Unix() % 1000000,
		now:  time.Now,
	}
}

func (s *SavedOrderService) Save(ctx context.Context, table, tableName string) (*domain.SavedOrder, error) {
	state := s.cart.State()
	if len(state.Items) == 0 {
		return nil, ErrEmptyCart
	}
	totals := s.cart.Totals()

	s.mu.Lock()
	s.seq++
	number := fmt.Sprintf("ORD%06d", s.seq)
	s.mu.Unlock()

	saved := domain.SavedOrder{
		ID:              uuid.NewString(),
		OrderNumber:     number,
		Table:           table,
		TableName:       tableName,
		Items:           state.Items,
		ItemCount:       totals.ItemCount,
		Subtotal:        totals.Subtotal,
		DiscountPercent: totals.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		TaxAmount:       totals.TaxAmount,
		Total:           totals.Total,
		Status:          domain.OrderStatusSaved,
		SavedAt:         s.now().UTC(),
	}

	existing, err := s.repo.ListSavedOrders(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceSavedOrders(ctx, append(existing, saved)); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if err := s.cart.Clear(ctx); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *SavedOrderService) List(ctx context.Context) ([]domain.SavedOrder, error) {
	return s.repo.ListSavedOrders(ctx)
}

func (s *SavedOrderService) Delete(ctx context.Context, id string) error {
	orders, err := s.repo.ListSavedOrders(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.SavedOrder, 0, len(orders))
	for _, order := range orders {
		if order.ID != id {
			kept = append(kept, order)
		}
	}
	if len(kept) == len(orders) {
		return fmt.Errorf("%w: saved order %q", ErrNotFound, id)
	}
	return s.repo.ReplaceSavedOrders(ctx, kept)
}

// Resume loads a saved snapshot back into the live cart and removes it from
// the pending list. Current cart contents are replaced.
func (s *SavedOrderService) Resume(ctx context.Context, id string) error {
	orders, err := s.repo.ListSavedOrders(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range orders {
		if orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: saved order %q", ErrNotFound, id)
	}

	state := domain.CartState{
		Items:           orders[idx].Items,
		DiscountPercent: orders[idx].DiscountPercent,
	}
	if err := s.cart.RestoreState(ctx, state); err != nil {
		return err
	}
	return s.repo.ReplaceSavedOrders(ctx, append(orders[:idx], orders[idx+1:]...))
}

var _ SavedOrderServiceInterface = (*SavedOrderService)(nil)

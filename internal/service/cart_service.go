package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"syncpos/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService owns the live cart. All mutations run under one mutex (the
// single-writer queue for the persisted cart key), recompute derived totals
// synchronously, and mirror the state to the cart repository. A failed mirror
// degrades to in-memory operation for the session instead of failing the
// mutation.
type CartService struct {
	mu     sync.Mutex
	state  domain.CartState
	totals domain.Totals

	menu  MenuRepository
	store CartRepository
	tax   TaxPolicy
}

func NewCartService(ctx context.Context, menu MenuRepository, store CartRepository, tax TaxPolicy) *CartService {
	s := &CartService{
		state: domain.CartState{Items: []domain.LineItem{}},
		menu:  menu,
		store: store,
		tax:   tax,
	}
	s.rehydrate(ctx)
	s.totals = ComputeTotals(s.state, s.tax)
	return s
}

// rehydrate replays the persisted snapshot through the normal transition so
// merge semantics apply identically to a live session.
func (s *CartService) rehydrate(ctx context.Context) {
	saved, err := s.store.LoadCart(ctx)
	if err != nil {
		log.Printf("[cart] rehydrate skipped: %v", err)
		return
	}
	s.state = replay(saved)
}

func replay(saved domain.CartState) domain.CartState {
	state := domain.CartState{Items: []domain.LineItem{}}
	for _, line := range saved.Items {
		if line.Quantity <= 0 {
			continue
		}
		if line.CartEntryID == "" {
			line.CartEntryID = uuid.NewString()
		}
		state = domain.ApplyCartCommand(state, domain.AddItem{Line: line})
	}
	return domain.ApplyCartCommand(state, domain.SetDiscount{Percent: saved.DiscountPercent})
}

func (s *CartService) apply(ctx context.Context, cmd domain.CartCommand) {
	s.state = domain.ApplyCartCommand(s.state, cmd)
	s.totals = ComputeTotals(s.state, s.tax)
	if err := s.store.SaveCart(ctx, s.state); err != nil {
		log.Printf("[cart] state not persisted, continuing in memory: %v", err)
	}
}

func (s *CartService) AddPlainItem(ctx context.Context, menuItemID string) error {
	item, err := s.findMenuItem(ctx, menuItemID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(ctx, domain.AddItem{Line: domain.LineItem{
		CartEntryID: uuid.NewString(),
		MenuItemID:  item.ID,
		Name:        item.Name,
		BasePrice:   item.BasePrice,
		UnitPrice:   item.BasePrice,
		Quantity:    1,
	}})
	return nil
}

// AddCustomizedItem appends one line holding the whole quantity. Two distinct
// customizations of the same base item stay independent lines and never merge.
func (s *CartService) AddCustomizedItem(ctx context.Context, menuItemID string, selections domain.SelectedCustomization, quantity int, instructions string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	item, err := s.findMenuItem(ctx, menuItemID)
	if err != nil {
		return err
	}
	unitPrice, label, err := ResolveCustomization(*item, selections)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(ctx, domain.AddItem{Line: domain.LineItem{
		CartEntryID:         uuid.NewString(),
		MenuItemID:          item.ID,
		Name:                item.Name,
		BasePrice:           item.BasePrice,
		UnitPrice:           unitPrice,
		Quantity:            quantity,
		Customizations:      selections,
		CustomizationLabel:  label,
		SpecialInstructions: instructions,
	}})
	return nil
}

func (s *CartService) RemoveLine(ctx context.Context, cartEntryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(ctx, domain.RemoveItem{CartEntryID: cartEntryID})
	return nil
}

func (s *CartService) SetQuantity(ctx context.Context, cartEntryID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(ctx, domain.SetQuantity{CartEntryID: cartEntryID, Quantity: quantity})
	return nil
}

func (s *CartService) SetDiscountPercent(ctx context.Context, percent decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(ctx, domain.SetDiscount{Percent: percent})
	return nil
}

func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(ctx, domain.ClearCart{})
	return nil
}

// RestoreState loads a snapshot (resumed saved order) into the cart,
// replacing current contents.
func (s *CartService) RestoreState(ctx context.Context, state domain.CartState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = replay(state)
	s.totals = ComputeTotals(s.state, s.tax)
	if err := s.store.SaveCart(ctx, s.state); err != nil {
		log.Printf("[cart] state not persisted, continuing in memory: %v", err)
	}
	return nil
}

func (s *CartService) Lines() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneLines(s.state.Items)
}

func (s *CartService) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

func (s *CartService) State() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartState{
		Items:           domain.CloneLines(s.state.Items),
		DiscountPercent: s.state.DiscountPercent,
	}
}

func (s *CartService) findMenuItem(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	items, err := s.menu.ListMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	for i := range items {
		if items[i].ID == menuItemID {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: menu item %q", ErrNotFound, menuItemID)
}

var _ CartServiceInterface = (*CartService)(nil)
var _ CartAccess = (*CartService)(nil)

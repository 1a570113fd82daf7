package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"syncpos/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuService is the menu-management collaborator. The cart only ever reads
// the catalog; this service owns the writes.
type MenuService struct {
	repo MenuRepository
}

// NewMenuService installs the seed catalog when the persisted menu is empty.
func NewMenuService(ctx context.Context, repo MenuRepository) *MenuService {
	s := &MenuService{repo: repo}
	items, err := repo.ListMenu(ctx)
	if err == nil && len(items) == 0 {
		if err := repo.ReplaceMenu(ctx, DefaultMenu()); err != nil {
			// Seed failure is not fatal; the catalog stays empty.
			log.Printf("[menu] seed failed: %v", err)
		}
	}
	return s
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListMenu(ctx)
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	items, err := s.repo.ListMenu(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: menu item %q", ErrNotFound, id)
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	items, err := s.repo.ListMenu(ctx)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.ID == item.ID {
			return &ValidationError{Fields: map[string]string{"id": "menu item id already exists"}}
		}
	}
	return s.repo.ReplaceMenu(ctx, append(items, *item))
}

func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	items, err := s.repo.ListMenu(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return s.repo.ReplaceMenu(ctx, items)
		}
	}
	return fmt.Errorf("%w: menu item %q", ErrNotFound, item.ID)
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	items, err := s.repo.ListMenu(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("%w: menu item %q", ErrNotFound, id)
	}
	return s.repo.ReplaceMenu(ctx, kept)
}

func validateMenuItem(item *domain.MenuItem) error {
	fields := map[string]string{}
	if strings.TrimSpace(item.Name) == "" {
		fields["name"] = "name is required"
	}
	if item.BasePrice.LessThan(decimal.Zero) {
		fields["base_price"] = "base price cannot be negative"
	}
	for group, opts := range item.Customizations {
		for _, opt := range opts {
			if opt.PriceDelta.LessThan(decimal.Zero) {
				fields["customizations"] = fmt.Sprintf("option %q in group %q has a negative price", opt.Name, group)
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)

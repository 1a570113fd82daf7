package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"syncpos/internal/domain"

	"github.com/google/uuid"
)

// InventoryService is the stock collaborator. The cart/pricing core never
// touches it; stock decrements arrive via sale events in the worker.
type InventoryService struct {
	repo InventoryRepository
	now  func() time.Time
}

func NewInventoryService(repo InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo, now: time.Now}
}

func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.repo.ListInventory(ctx)
}

func (s *InventoryService) Create(ctx context.Context, item *domain.InventoryItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return &ValidationError{Fields: map[string]string{"name": "name is required"}}
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.LastUpdated = s.now().UTC()
	items, err := s.repo.ListInventory(ctx)
	if err != nil {
		return err
	}
	return s.repo.ReplaceInventory(ctx, append(items, *item))
}

func (s *InventoryService) Update(ctx context.Context, item *domain.InventoryItem) error {
	items, err := s.repo.ListInventory(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			item.LastUpdated = s.now().UTC()
			items[i] = *item
			return s.repo.ReplaceInventory(ctx, items)
		}
	}
	return fmt.Errorf("%w: inventory item %q", ErrNotFound, item.ID)
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	items, err := s.repo.ListInventory(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("%w: inventory item %q", ErrNotFound, id)
	}
	return s.repo.ReplaceInventory(ctx, kept)
}

func (s *InventoryService) LowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.repo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]domain.InventoryItem, 0)
	for _, item := range items {
		if item.CurrentStock <= item.MinStock {
			low = append(low, item)
		}
	}
	return low, nil
}

// ApplySale decrements stock for sold line items, matching by name. Items
// without a stock record are skipped; stock floors at zero.
func (s *InventoryService) ApplySale(ctx context.Context, order domain.Order) error {
	items, err := s.repo.ListInventory(ctx)
	if err != nil {
		return err
	}
	changed := false
	for _, line := range order.Items {
		for i := range items {
			if !strings.EqualFold(items[i].Name, line.Name) {
				continue
			}
			items[i].CurrentStock -= line.Quantity
			if items[i].CurrentStock < 0 {
				items[i].CurrentStock = 0
			}
			items[i].LastUpdated = s.now().UTC()
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.repo.ReplaceInventory(ctx, items)
}

var _ InventoryServiceInterface = (*InventoryService)(nil)
var _ InventoryApplier = (*InventoryService)(nil)

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"syncpos/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Collection keys, carried over from the front end's local store.
const (
	KeyCart          = "syncpos_cart"
	KeyOrders        = "syncpos_orders"
	KeyPendingOrders = "syncpos_pending_orders"
	KeyMenu          = "syncpos_menu"
	KeyInventory     = "syncpos_inventory"
	KeySettings      = "syncpos_settings"
	KeyUser          = "syncpos_user"

	qrKeyPrefix = "syncpos_order_qr:"
)

// KVStore persists every collection as one JSON document per key, replaced
// whole on every write. A document that no longer parses is treated as
// absent so one corrupt key cannot block the UI.
type KVStore struct {
	Client *redis.Client
}

func NewKVStore(client *redis.Client) *KVStore {
	return &KVStore{Client: client}
}

// load unmarshals the document at key into dest. Returns false when the key
// is missing or holds malformed JSON.
func (s *KVStore) load(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("[store] malformed document at %s, treating as empty: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *KVStore) save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, raw, 0).Err()
}

func (s *KVStore) LoadCart(ctx context.Context) (domain.CartState, error) {
	var state domain.CartState
	ok, err := s.load(ctx, KeyCart, &state)
	if err != nil {
		return domain.CartState{Items: []domain.LineItem{}}, err
	}
	if !ok || state.Items == nil {
		state.Items = []domain.LineItem{}
	}
	return state, nil
}

func (s *KVStore) SaveCart(ctx context.Context, state domain.CartState) error {
	return s.save(ctx, KeyCart, state)
}

func (s *KVStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	if _, err := s.load(ctx, KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AppendOrder is a whole-collection read-modify-write; callers serialize
// writes to the key.
func (s *KVStore) AppendOrder(ctx context.Context, order domain.Order) error {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, KeyOrders, append(orders, order))
}

func (s *KVStore) SaveQRCode(ctx context.Context, orderID string, png []byte) error {
	return s.Client.Set(ctx, qrKeyPrefix+orderID, png, 0).Err()
}

func (s *KVStore) QRCode(ctx context.Context, orderID string) ([]byte, error) {
	png, err := s.Client.Get(ctx, qrKeyPrefix+orderID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return png, err
}

func (s *KVStore) ListSavedOrders(ctx context.Context) ([]domain.SavedOrder, error) {
	orders := []domain.SavedOrder{}
	if _, err := s.load(ctx, KeyPendingOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *KVStore) ReplaceSavedOrders(ctx context.Context, orders []domain.SavedOrder) error {
	return s.save(ctx, KeyPendingOrders, orders)
}

func (s *KVStore) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	if _, err := s.load(ctx, KeyMenu, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *KVStore) ReplaceMenu(ctx context.Context, items []domain.MenuItem) error {
	return s.save(ctx, KeyMenu, items)
}

func (s *KVStore) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	items := []domain.InventoryItem{}
	if _, err := s.load(ctx, KeyInventory, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *KVStore) ReplaceInventory(ctx context.Context, items []domain.InventoryItem) error {
	return s.save(ctx, KeyInventory, items)
}

func (s *KVStore) LoadSettings(ctx context.Context) (domain.Settings, bool, error) {
	var settings domain.Settings
	ok, err := s.load(ctx, KeySettings, &settings)
	return settings, ok, err
}

func (s *KVStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.save(ctx, KeySettings, settings)
}

func (s *KVStore) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	ok, err := s.load(ctx, KeyUser, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (s *KVStore) SetUser(ctx context.Context, user domain.User) error {
	return s.save(ctx, KeyUser, user)
}

func (s *KVStore) ClearUser(ctx context.Context) error {
	return s.Client.Del(ctx, KeyUser).Err()
}

package storage

import (
	"context"
	"database/sql"
	"time"

	"syncpos/internal/domain"

	"github.com/redis/go-redis/v9"
)

// SalesStore maintains the reporting archive: committed orders in Postgres,
// item revenue leaderboards in Redis. Written only by the sales worker.
type SalesStore struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewSalesStore(db *sql.DB, rdb *redis.Client) *SalesStore {
	return &SalesStore{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *SalesStore) ArchiveOrder(order domain.Order) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO pos_orders (id, order_number, subtotal, discount_amount, tax_amount, total,
			payment_method, table_ref, customer_name, customer_phone, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING
	`, order.ID, order.OrderNumber, order.Subtotal, order.DiscountAmount, order.TaxAmount,
		order.Total, string(order.PaymentMethod), order.Table, order.Customer.Name,
		order.Customer.Phone, order.Status, order.Timestamp)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		_, err = tx.Exec(`
			INSERT INTO pos_order_items (order_id, menu_item_id, name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.MenuItemID, item.Name, item.Quantity, item.UnitPrice)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SalesStore) UpdateLeaderboards(order domain.Order) error {
	day := order.Timestamp.Format("2006-01-02")
	dailyKey := "reports:items:daily:" + day
	allTimeKey := "reports:items:alltime"

	for _, item := range order.Items {
		revenue, _ := item.LineTotal().Float64()
		s.rdb.ZIncrBy(s.ctx, dailyKey, revenue, item.Name)
		s.rdb.ZIncrBy(s.ctx, allTimeKey, revenue, item.Name)
	}
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)
	return nil
}

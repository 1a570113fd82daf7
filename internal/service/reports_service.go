package service

import (
	"context"
	"database/sql"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type SalesSummary struct {
	Period        string          `json:"period"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalOrders   int             `json:"total_orders"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

type ItemSales struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ReportsService reads the sales archive the worker maintains: Redis
// leaderboards for hot paths, Postgres as the fallback and for date-ranged
// summaries.
type ReportsService struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewReportsService(db *sql.DB, rdb *redis.Client) *ReportsService {
	return &ReportsService{db: db, rdb: rdb, now: time.Now}
}

func periodStart(now time.Time, period string) (time.Time, bool) {
	switch period {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	default: // "all"
		return time.Time{}, false
	}
}

func (s *ReportsService) Summary(ctx context.Context, period string) (SalesSummary, error) {
	query := `SELECT COALESCE(SUM(total), 0), COUNT(*) FROM pos_orders`
	args := []interface{}{}
	if start, bounded := periodStart(s.now(), period); bounded {
		query += ` WHERE created_at >= $1`
		args = append(args, start)
	}

	var totalSales decimal.Decimal
	var totalOrders int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&totalSales, &totalOrders); err != nil {
		return SalesSummary{}, err
	}

	summary := SalesSummary{Period: period, TotalSales: totalSales, TotalOrders: totalOrders}
	if totalOrders > 0 {
		summary.AvgOrderValue = totalSales.Div(decimal.NewFromInt(int64(totalOrders))).Round(2)
	}
	return summary, nil
}

func (s *ReportsService) TopItems(ctx context.Context, period string, limit int) ([]ItemSales, error) {
	if limit <= 0 {
		limit = 5
	}
	if period == "today" || period == "all" {
		if items, ok := s.topItemsFromRedis(ctx, period, limit); ok {
			return items, nil
		}
	}
	return s.topItemsFromDB(ctx, period, limit)
}

func (s *ReportsService) topItemsFromRedis(ctx context.Context, period string, limit int) ([]ItemSales, bool) {
	key := "reports:items:alltime"
	if period == "today" {
		key = "reports:items:daily:" + s.now().Format("2006-01-02")
	}
	results, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil || len(results) == 0 {
		return nil, false
	}

	items := make([]ItemSales, 0, len(results))
	for _, member := range results {
		name, ok := member.Member.(string)
		if !ok {
			continue
		}
		items = append(items, ItemSales{
			Name:    name,
			Revenue: decimal.NewFromFloat(member.Score).Round(2),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Revenue.GreaterThan(items[j].Revenue) })
	return items, true
}

func (s *ReportsService) topItemsFromDB(ctx context.Context, period string, limit int) ([]ItemSales, error) {
	query := `
		SELECT i.name, SUM(i.quantity), SUM(i.unit_price * i.quantity)
		FROM pos_order_items i
		JOIN pos_orders o ON o.id = i.order_id`
	args := []interface{}{}
	if start, bounded := periodStart(s.now(), period); bounded {
		query += ` WHERE o.created_at >= $1`
		args = append(args, start)
	}
	query += `
		GROUP BY i.name
		ORDER BY 3 DESC
		LIMIT ` + strconv.Itoa(limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []ItemSales{}
	for rows.Next() {
		var item ItemSales
		if err := rows.Scan(&item.Name, &item.Quantity, &item.Revenue); err != nil {
			continue
		}
		item.Revenue = item.Revenue.Round(2)
		items = append(items, item)
	}
	return items, rows.Err()
}

var _ ReportsServiceInterface = (*ReportsService)(nil)

package service

import (
	"context"
	"encoding/json"
	"log"

	"syncpos/internal/domain"

	"github.com/segmentio/kafka-go"
)

// SalesConsumer applies the post-checkout side effects the pricing core
// stays out of: archiving the order for reporting and decrementing stock.
type SalesConsumer struct {
	Reader    *kafka.Reader
	Store     SalesStoreInterface
	Inventory InventoryApplier
}

func NewSalesConsumer(reader *kafka.Reader, store SalesStoreInterface, inventory InventoryApplier) *SalesConsumer {
	return &SalesConsumer{
		Reader:    reader,
		Store:     store,
		Inventory: inventory,
	}
}

func (c *SalesConsumer) Start(ctx context.Context) {
	log.Println("Starting sales worker consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.SaleEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == domain.SaleEventType {
			c.ProcessSale(ctx, event)
		}
	}
}

func (c *SalesConsumer) ProcessSale(ctx context.Context, event domain.SaleEvent) {
	if event.Type != domain.SaleEventType {
		return
	}
	order := event.Order
	log.Printf("Processing sale: order=%s total=%s items=%d",
		order.OrderNumber, order.Total.StringFixed(2), len(order.Items))

	if err := c.Store.ArchiveOrder(order); err != nil {
		log.Printf("Error archiving order %s: %v", order.OrderNumber, err)
		return
	}

	if err := c.Store.UpdateLeaderboards(order); err != nil {
		log.Printf("Error updating leaderboards for %s: %v", order.OrderNumber, err)
		return
	}

	if c.Inventory != nil {
		if err := c.Inventory.ApplySale(ctx, order); err != nil {
			log.Printf("Error applying stock decrement for %s: %v", order.OrderNumber, err)
			return
		}
	}

	log.Printf("Successfully processed sale %s", order.OrderNumber)
}

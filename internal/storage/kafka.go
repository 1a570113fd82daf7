package storage

import (
	"context"
	"encoding/json"

	"syncpos/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaSalePublisher struct {
	Writer *kafka.Writer
}

func NewKafkaSalePublisher(writer *kafka.Writer) *KafkaSalePublisher {
	return &KafkaSalePublisher{Writer: writer}
}

func (p *KafkaSalePublisher) PublishSale(ctx context.Context, event domain.SaleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Order.ID),
		Value: payload,
	})
}

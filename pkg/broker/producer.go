package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/alpenbill/qrbill/internal/entity"
)

// Producer publishes reference-issued events so the external store tracking
// reference uniqueness can pick them up. Writes are async and fire-and-forget;
// failures are logged, never surfaced to the request path.
type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type ReferenceIssuedEvent struct {
	InvoiceID     uuid.UUID `json:"invoiceId"`
	Reference     string    `json:"reference"`
	ReferenceType string    `json:"referenceType"`
	IssuedAt      time.Time `json:"issuedAt"`
}

func (p *Producer) SendReferenceIssued(ctx context.Context, invoiceID uuid.UUID, ref entity.PaymentReference) {
	event := ReferenceIssuedEvent{
		InvoiceID:     invoiceID,
		Reference:     ref.Value,
		ReferenceType: ref.Type.String(),
		IssuedAt:      time.Now().UTC(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   invoiceID.Bytes(),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
)

const (
	ticketQueueName = "ingresso.emitido"
	saleQueueName   = "venda.concluida"
)

// Publisher sends domain events to RabbitMQ. It dials per publish so a
// broker outage never holds a stale connection; any failure is logged and
// swallowed, the request flow is never interrupted.
type Publisher struct {
	url string
	log *zap.Logger
}

// NewPublisher builds a Publisher for the given broker URL.
func NewPublisher(url string, log *zap.Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// TicketIssued publishes a TicketIssuedEvent to the ingresso.emitido queue.
func (p *Publisher) TicketIssued(ctx context.Context, t repository.Ticket) {
	ev := TicketIssuedEvent{
		EventID:    uuid.NewString(),
		TicketID:   t.ID,
		Codigo:     t.Codigo,
		Valor:      t.Valor,
		DataHora:   t.DataHora,
		SessaoID:   t.SessaoID,
		PoltronaID: t.PoltronaID,
		IssuedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	p.publish(ctx, ticketQueueName, ev)
}

// SaleCompleted publishes a SaleCompletedEvent to the venda.concluida queue.
func (p *Publisher) SaleCompleted(ctx context.Context, s repository.Sale) {
	ev := SaleCompletedEvent{
		EventID:        uuid.NewString(),
		SaleID:         s.ID,
		Valor:          s.Valor,
		DataHora:       s.DataHora,
		FormaPagamento: s.FormaPagamento,
		Situacao:       s.Situacao,
		IngressoID:     s.IngressoID,
		ClienteID:      s.ClienteID,
		CompletedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	p.publish(ctx, saleQueueName, ev)
}

func (p *Publisher) publish(ctx context.Context, queueName string, event any) {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("rabbitmq: dial failed", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("rabbitmq: channel open failed", zap.Error(err))
		return
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts. Declare is idempotent.
	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		p.log.Warn("rabbitmq: queue declare failed", zap.String("queue", queueName), zap.Error(err))
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("rabbitmq: marshal event failed", zap.Error(err))
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		p.log.Warn("rabbitmq: publish failed", zap.String("queue", queueName), zap.Error(err))
	}
}

package service

import (
	"context"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
)

// EventSink receives domain events after a successful write. Sinks must
// never fail the request flow; implementations log and swallow broker
// errors. A nil sink disables publishing.
type EventSink interface {
	TicketIssued(ctx context.Context, t repository.Ticket)
	SaleCompleted(ctx context.Context, s repository.Sale)
}

// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into an audit trail.
package queue

// TicketIssuedEvent is published when an ingresso is successfully created.
// It carries enough information for downstream consumers to log or trigger
// analytics without querying the primary database.
type TicketIssuedEvent struct {
	EventID    string  `json:"event_id"`
	TicketID   uint64  `json:"id_ing"`
	Codigo     string  `json:"codigo"`
	Valor      float64 `json:"valor"`
	DataHora   string  `json:"data_hora"`
	SessaoID   uint64  `json:"sessao_id"`
	PoltronaID uint64  `json:"poltrona_id"`
	IssuedAt   string  `json:"issued_at"`
}

// SaleCompletedEvent is published when a venda is successfully created.
type SaleCompletedEvent struct {
	EventID        string  `json:"event_id"`
	SaleID         uint64  `json:"id_ven"`
	Valor          float64 `json:"valor"`
	DataHora       string  `json:"data_hora"`
	FormaPagamento string  `json:"forma_pagamento"`
	Situacao       string  `json:"situacao"`
	IngressoID     uint64  `json:"ingresso_id"`
	ClienteID      uint64  `json:"cliente_id"`
	CompletedAt    string  `json:"completed_at"`
}

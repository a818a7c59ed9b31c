package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/validate"
)

// TicketStore is the slice of the storage layer the ingresso service
// needs. *repository.TicketRepo satisfies it.
type TicketStore interface {
	GetByID(ctx context.Context, id uint64) (*repository.Ticket, error)
	GetView(ctx context.Context, id uint64) (*repository.TicketView, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	CodeTaken(ctx context.Context, codigo string) (bool, error)
	SeatBooked(ctx context.Context, poltronaID, sessaoID, excludeID uint64) (bool, error)
	List(ctx context.Context) ([]repository.TicketView, error)
	Create(ctx context.Context, t *repository.Ticket) error
	Update(ctx context.Context, t *repository.Ticket) error
	Delete(ctx context.Context, id uint64) error
}

// TicketInput is the typed request body for ingresso create and update.
type TicketInput struct {
	Codigo     string  `json:"codigo"`
	Valor      Number  `json:"valor"`
	DataHora   string  `json:"data_hora"`
	SessaoID   *uint64 `json:"sessao_id"`
	PoltronaID *uint64 `json:"poltrona_id"`
}

func (in TicketInput) values() validate.Values {
	v := validate.Values{"codigo": in.Codigo, "data_hora": in.DataHora}
	if in.Valor.Present() {
		v["valor"] = in.Valor.fieldValue()
	}
	if in.SessaoID != nil {
		v["sessao_id"] = *in.SessaoID
	}
	if in.PoltronaID != nil {
		v["poltrona_id"] = *in.PoltronaID
	}
	return v
}

var ticketRules = []validate.Rule{
	{Field: "codigo", Required: true, Kind: validate.String, Max: validate.N(20)},
	{Field: "valor", Required: true, Kind: validate.Numeric, Min: validate.N(0.01)},
	{Field: "data_hora", Required: true, Kind: validate.Date},
	{Field: "sessao_id", Required: true, Kind: validate.Integer},
	{Field: "poltrona_id", Required: true, Kind: validate.Integer},
}

// TicketService implements the ingresso operations.
type TicketService struct {
	tickets  TicketStore
	sessions SessionStore
	seats    SeatStore
	events   EventSink
}

// NewTicketService constructs a TicketService. events may be nil.
func NewTicketService(tickets TicketStore, sessions SessionStore, seats SeatStore, events EventSink) *TicketService {
	return &TicketService{tickets: tickets, sessions: sessions, seats: seats, events: events}
}

// Show returns the joined projection of an ingresso by id.
func (s *TicketService) Show(ctx context.Context, id uint64) (*repository.TicketView, error) {
	v, err := s.tickets.GetView(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, apperr.NotFoundf(fmt.Sprintf("O código #%d não foi encontrado!", id))
		}
		return nil, apperr.Unavailable("Ocorreram erros ao tentar buscar a informação", err)
	}
	return v, nil
}

// List returns the joined projection of every ingresso.
func (s *TicketService) List(ctx context.Context) ([]repository.TicketView, error) {
	out, err := s.tickets.List(ctx)
	if err != nil {
		return nil, apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	return out, nil
}

// Create validates the input, then runs the consistency sequence in
// order: codigo free → sessao exists → poltrona exists → the
// (poltrona, sessao) pair has no ingresso yet. The first failure wins.
func (s *TicketService) Create(ctx context.Context, in TicketInput) (uint64, error) {
	if v := validate.Check(in.values(), ticketRules); len(v) > 0 {
		return 0, apperr.Invalid(v)
	}
	taken, err := s.tickets.CodeTaken(ctx, in.Codigo)
	if err != nil {
		return 0, apperr.Unavailable("Ocorreram erros ao verificar o código", err)
	}
	if taken {
		return 0, apperr.Inconsistent("O código já está em uso. Escolha outro.")
	}
	if err := s.checkReferences(ctx, in); err != nil {
		return 0, err
	}
	booked, err := s.tickets.SeatBooked(ctx, *in.PoltronaID, *in.SessaoID, 0)
	if err != nil {
		return 0, apperr.Unavailable("Ocorreram erros ao verificar a poltrona na sessão", err)
	}
	if booked {
		return 0, apperr.Inconsistent("A poltrona já está associada à sessão. Escolha outra poltrona.")
	}
	t := in.record(0)
	if err := s.tickets.Create(ctx, t); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return 0, apperr.Inconsistent("A poltrona já está associada à sessão. Escolha outra poltrona.")
		case errors.Is(err, repository.ErrNoEffect):
			return 0, apperr.Unpersisted("Ocorreram erros ao tentar salvar a informação")
		}
		return 0, apperr.Unavailable("Ocorreram erros ao tentar salvar a informação", err)
	}
	if s.events != nil {
		s.events.TicketIssued(ctx, *t)
	}
	return t.ID, nil
}

// Update validates the input, requires the ingresso to exist, re-runs
// the reference checks and the pair check excluding the record itself,
// then rewrites the record. The codigo is never rewritten.
func (s *TicketService) Update(ctx context.Context, id uint64, in TicketInput) error {
	if v := validate.Check(in.values(), ticketRules); len(v) > 0 {
		return apperr.Invalid(v)
	}
	if _, err := s.tickets.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return apperr.NotFoundf("Não foi possível encontrar o ingresso")
		}
		return apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	if err := s.checkReferences(ctx, in); err != nil {
		return err
	}
	booked, err := s.tickets.SeatBooked(ctx, *in.PoltronaID, *in.SessaoID, id)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao verificar a poltrona na sessão", err)
	}
	if booked {
		return apperr.Inconsistent("A poltrona já está associada à sessão informada. Não é possível atualizar o ingresso.")
	}
	if err := s.tickets.Update(ctx, in.record(id)); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return apperr.Inconsistent("A poltrona já está associada à sessão informada. Não é possível atualizar o ingresso.")
		case errors.Is(err, repository.ErrNoEffect):
			return apperr.Unpersisted("Nenhum ingresso foi atualizado")
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar atualizar o ingresso", err)
	}
	return nil
}

// Destroy deletes an ingresso by id.
func (s *TicketService) Destroy(ctx context.Context, id uint64) error {
	if err := s.tickets.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return apperr.NotFoundf(fmt.Sprintf("Ingresso #%d não foi encontrado", id))
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar excluir o ingresso", err)
	}
	return nil
}

// checkReferences verifies the sessao and poltrona foreign keys, in that
// order.
func (s *TicketService) checkReferences(ctx context.Context, in TicketInput) error {
	ok, err := s.sessions.Exists(ctx, *in.SessaoID)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao verificar a sessão", err)
	}
	if !ok {
		return apperr.Inconsistent("O sessao_id informado não existe")
	}
	ok, err = s.seats.Exists(ctx, *in.PoltronaID)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao verificar a poltrona", err)
	}
	if !ok {
		return apperr.Inconsistent("O poltrona_id informado não existe")
	}
	return nil
}

func (in TicketInput) record(id uint64) *repository.Ticket {
	t := &repository.Ticket{ID: id, Codigo: in.Codigo, Valor: in.Valor.Float(), DataHora: in.DataHora}
	if in.SessaoID != nil {
		t.SessaoID = *in.SessaoID
	}
	if in.PoltronaID != nil {
		t.PoltronaID = *in.PoltronaID
	}
	return t
}

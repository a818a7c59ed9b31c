package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/validate"
)

// SaleStore is the slice of the storage layer the venda service needs.
// *repository.SaleRepo satisfies it.
type SaleStore interface {
	GetView(ctx context.Context, id uint64) (*repository.SaleView, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	TicketSold(ctx context.Context, ingressoID, excludeID uint64) (bool, error)
	List(ctx context.Context) ([]repository.SaleView, error)
	Create(ctx context.Context, s *repository.Sale) error
	Update(ctx context.Context, s *repository.Sale) error
	Delete(ctx context.Context, id uint64) error
}

// SaleInput is the typed request body for venda create and update.
// Situacao is the caller-supplied payment status; the service never
// derives it.
type SaleInput struct {
	Valor          Number  `json:"valor"`
	DataHora       string  `json:"data_hora"`
	FormaPagamento string  `json:"forma_pagamento"`
	Situacao       string  `json:"situacao"`
	IngressoID     *uint64 `json:"ingresso_id"`
	ClienteID      *uint64 `json:"cliente_id"`
}

func (in SaleInput) values() validate.Values {
	v := validate.Values{
		"data_hora":       in.DataHora,
		"forma_pagamento": in.FormaPagamento,
		"situacao":        in.Situacao,
	}
	if in.Valor.Present() {
		v["valor"] = in.Valor.fieldValue()
	}
	if in.IngressoID != nil {
		v["ingresso_id"] = *in.IngressoID
	}
	if in.ClienteID != nil {
		v["cliente_id"] = *in.ClienteID
	}
	return v
}

var saleRules = []validate.Rule{
	{Field: "valor", Required: true, Kind: validate.Numeric, Min: validate.N(0.01)},
	{Field: "data_hora", Required: true, Kind: validate.Date},
	{Field: "forma_pagamento", Required: true, Kind: validate.String, Max: validate.N(200)},
	{Field: "situacao", Required: true, Kind: validate.String, Max: validate.N(20)},
	{Field: "ingresso_id", Required: true, Kind: validate.Integer},
	{Field: "cliente_id", Required: true, Kind: validate.Integer},
}

// SaleService implements the venda operations. Each ingresso maps to at
// most one venda system-wide.
type SaleService struct {
	sales     SaleStore
	customers CustomerStore
	tickets   TicketStore
	events    EventSink
}

// NewSaleService constructs a SaleService. events may be nil.
func NewSaleService(sales SaleStore, customers CustomerStore, tickets TicketStore, events EventSink) *SaleService {
	return &SaleService{sales: sales, customers: customers, tickets: tickets, events: events}
}

// Show returns the joined projection of a venda by id.
func (s *SaleService) Show(ctx context.Context, id uint64) (*repository.SaleView, error) {
	v, err := s.sales.GetView(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, apperr.NotFoundf(fmt.Sprintf("O código #%d não foi encontrado!", id))
		}
		return nil, apperr.Unavailable("Ocorreram erros ao tentar buscar a informação", err)
	}
	return v, nil
}

// List returns the joined projection of every venda.
func (s *SaleService) List(ctx context.Context) ([]repository.SaleView, error) {
	out, err := s.sales.List(ctx)
	if err != nil {
		return nil, apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	return out, nil
}

// Create validates the input, then runs the consistency sequence in
// order: cliente exists → ingresso exists → ingresso not yet sold. The
// first failure wins.
func (s *SaleService) Create(ctx context.Context, in SaleInput) (uint64, error) {
	if v := validate.Check(in.values(), saleRules); len(v) > 0 {
		return 0, apperr.Invalid(v)
	}
	if err := s.checkConsistency(ctx, in, 0); err != nil {
		return 0, err
	}
	rec := in.record(0)
	if err := s.sales.Create(ctx, rec); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return 0, apperr.Inconsistent("Já existe uma venda com o ingresso_id informado")
		case errors.Is(err, repository.ErrNoEffect):
			return 0, apperr.Unpersisted("Ocorreram erros ao tentar salvar a informação")
		}
		return 0, apperr.Unavailable("Ocorreram erros ao tentar salvar a informação", err)
	}
	if s.events != nil {
		s.events.SaleCompleted(ctx, *rec)
	}
	return rec.ID, nil
}

// Update validates the input, requires the venda to exist, re-runs the
// consistency sequence excluding the record itself, then rewrites it.
func (s *SaleService) Update(ctx context.Context, id uint64, in SaleInput) error {
	if v := validate.Check(in.values(), saleRules); len(v) > 0 {
		return apperr.Invalid(v)
	}
	ok, err := s.sales.Exists(ctx, id)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	if !ok {
		return apperr.NotFoundf("Não foi possível encontrar a venda")
	}
	if err := s.checkConsistency(ctx, in, id); err != nil {
		return err
	}
	if err := s.sales.Update(ctx, in.record(id)); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return apperr.Inconsistent("Já existe uma venda com o ingresso_id informado")
		case errors.Is(err, repository.ErrNoEffect):
			return apperr.Unpersisted("Nenhuma venda foi atualizada")
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar atualizar a venda", err)
	}
	return nil
}

// Destroy deletes a venda by id.
func (s *SaleService) Destroy(ctx context.Context, id uint64) error {
	if err := s.sales.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return apperr.NotFoundf(fmt.Sprintf("Venda #%d não foi encontrada", id))
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar excluir a venda", err)
	}
	return nil
}

func (s *SaleService) checkConsistency(ctx context.Context, in SaleInput, excludeID uint64) error {
	ok, err := s.customers.Exists(ctx, *in.ClienteID)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao tentar verificar o cliente", err)
	}
	if !ok {
		return apperr.Inconsistent("O cliente_id informado não existe")
	}
	ok, err = s.tickets.Exists(ctx, *in.IngressoID)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao tentar verificar o ingresso", err)
	}
	if !ok {
		return apperr.Inconsistent("O ingresso_id informado não existe")
	}
	sold, err := s.sales.TicketSold(ctx, *in.IngressoID, excludeID)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao tentar verificar a venda", err)
	}
	if sold {
		return apperr.Inconsistent("Já existe uma venda com o ingresso_id informado")
	}
	return nil
}

func (in SaleInput) record(id uint64) *repository.Sale {
	rec := &repository.Sale{
		ID:             id,
		Valor:          in.Valor.Float(),
		DataHora:       in.DataHora,
		FormaPagamento: in.FormaPagamento,
		Situacao:       in.Situacao,
	}
	if in.IngressoID != nil {
		rec.IngressoID = *in.IngressoID
	}
	if in.ClienteID != nil {
		rec.ClienteID = *in.ClienteID
	}
	return rec
}

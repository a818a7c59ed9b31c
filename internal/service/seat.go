package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/validate"
)

// SeatStore is the slice of the storage layer the poltrona service
// needs. *repository.SeatRepo satisfies it.
type SeatStore interface {
	GetByID(ctx context.Context, id uint64) (*repository.Seat, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	PositionTaken(ctx context.Context, numero int64, fileira string, excludeID uint64) (bool, error)
	List(ctx context.Context) ([]repository.Seat, error)
	Create(ctx context.Context, s *repository.Seat) error
	Update(ctx context.Context, s *repository.Seat) error
	Delete(ctx context.Context, id uint64) error
}

// SeatInput is the typed request body for poltrona create and update.
// Status is an opaque caller-supplied string; no transitions are
// enforced.
type SeatInput struct {
	Numero  *int64  `json:"numero"`
	Fileira string  `json:"fileira"`
	Status  string  `json:"status"`
	SalaID  *uint64 `json:"sala_id"`
}

func (in SeatInput) values() validate.Values {
	v := validate.Values{"fileira": in.Fileira, "status": in.Status}
	if in.Numero != nil {
		v["numero"] = *in.Numero
	}
	if in.SalaID != nil {
		v["sala_id"] = *in.SalaID
	}
	return v
}

var seatRules = []validate.Rule{
	{Field: "numero", Required: true, Kind: validate.Integer},
	{Field: "fileira", Required: true, Kind: validate.String, Max: validate.N(1)},
	{Field: "status", Required: true, Kind: validate.String, Max: validate.N(100)},
	{Field: "sala_id", Required: true, Kind: validate.Integer},
}

// SeatService implements the poltrona operations. The (numero, fileira)
// pair is unique across the whole table, not per sala.
type SeatService struct {
	seats SeatStore
	rooms RoomStore
}

// NewSeatService constructs a SeatService.
func NewSeatService(seats SeatStore, rooms RoomStore) *SeatService {
	return &SeatService{seats: seats, rooms: rooms}
}

// Show returns a single poltrona by id.
func (s *SeatService) Show(ctx context.Context, id uint64) (*repository.Seat, error) {
	p, err := s.seats.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return nil, apperr.NotFoundf(fmt.Sprintf("O código #%d não foi encontrado!", id))
		}
		return nil, apperr.Unavailable("Ocorreram erros ao tentar buscar a informação", err)
	}
	return p, nil
}

// List returns every poltrona.
func (s *SeatService) List(ctx context.Context) ([]repository.Seat, error) {
	out, err := s.seats.List(ctx)
	if err != nil {
		return nil, apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	return out, nil
}

// Create validates the input, then runs the consistency sequence:
// sala exists → (numero, fileira) free. The first failure wins.
func (s *SeatService) Create(ctx context.Context, in SeatInput) (uint64, error) {
	if v := validate.Check(in.values(), seatRules); len(v) > 0 {
		return 0, apperr.Invalid(v)
	}
	if err := s.checkConsistency(ctx, in, 0); err != nil {
		return 0, err
	}
	p := in.record(0)
	if err := s.seats.Create(ctx, p); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return 0, apperr.Inconsistent("Essa poltrona já existe na fileira. Escolha um número único para a fileira.")
		case errors.Is(err, repository.ErrNoEffect):
			return 0, apperr.Unpersisted("Ocorreram erros ao tentar salvar a informação")
		}
		return 0, apperr.Unavailable("Ocorreram erros ao tentar salvar a informação", err)
	}
	return p.ID, nil
}

// Update validates the input, requires the poltrona to exist, re-runs
// the consistency sequence excluding the record itself, then rewrites it.
func (s *SeatService) Update(ctx context.Context, id uint64, in SeatInput) error {
	if v := validate.Check(in.values(), seatRules); len(v) > 0 {
		return apperr.Invalid(v)
	}
	if _, err := s.seats.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return apperr.NotFoundf("Não foi possível encontrar a poltrona")
		}
		return apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	if err := s.checkConsistency(ctx, in, id); err != nil {
		return err
	}
	if err := s.seats.Update(ctx, in.record(id)); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return apperr.Inconsistent("Essa poltrona já existe na fileira. Escolha um número único para a fileira.")
		case errors.Is(err, repository.ErrNoEffect):
			return apperr.Unpersisted("Nenhuma poltrona foi atualizada")
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar atualizar a poltrona", err)
	}
	return nil
}

// Destroy deletes a poltrona by id.
func (s *SeatService) Destroy(ctx context.Context, id uint64) error {
	if err := s.seats.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return apperr.NotFoundf(fmt.Sprintf("Poltrona #%d não foi encontrada", id))
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar excluir a poltrona", err)
	}
	return nil
}

func (s *SeatService) checkConsistency(ctx context.Context, in SeatInput, excludeID uint64) error {
	ok, err := s.rooms.Exists(ctx, *in.SalaID)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao tentar verificar a sala", err)
	}
	if !ok {
		return apperr.Inconsistent("O sala_id informado não existe")
	}
	taken, err := s.seats.PositionTaken(ctx, *in.Numero, in.Fileira, excludeID)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao verificar a duplicidade da poltrona na fileira", err)
	}
	if taken {
		return apperr.Inconsistent("Essa poltrona já existe na fileira. Escolha um número único para a fileira.")
	}
	return nil
}

func (in SeatInput) record(id uint64) *repository.Seat {
	p := &repository.Seat{ID: id, Fileira: in.Fileira, Status: in.Status}
	if in.Numero != nil {
		p.Numero = *in.Numero
	}
	if in.SalaID != nil {
		p.SalaID = *in.SalaID
	}
	return p
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/validate"
)

// RoomStore is the slice of the storage layer the sala service needs.
// *repository.RoomRepo satisfies it.
type RoomStore interface {
	GetByID(ctx context.Context, id uint64) (*repository.Room, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	List(ctx context.Context) ([]repository.Room, error)
	Create(ctx context.Context, r *repository.Room) error
	Update(ctx context.Context, r *repository.Room) error
	Delete(ctx context.Context, id uint64) error
}

// RoomInput is the typed request body for sala create and update.
type RoomInput struct {
	Nome       string `json:"nome"`
	Numero     *int64 `json:"numero"`
	Capacidade *int64 `json:"capacidade"`
}

func (in RoomInput) values() validate.Values {
	v := validate.Values{"nome": in.Nome}
	if in.Numero != nil {
		v["numero"] = *in.Numero
	}
	if in.Capacidade != nil {
		v["capacidade"] = *in.Capacidade
	}
	return v
}

var roomRules = []validate.Rule{
	{Field: "nome", Required: true, Kind: validate.String, Min: validate.N(5), Max: validate.N(300)},
	{Field: "numero", Required: true, Kind: validate.Integer},
	{Field: "capacidade", Required: true, Kind: validate.Integer, Max: validate.N(300)},
}

// RoomService implements the sala operations. Salas have no foreign keys
// or uniqueness rules.
type RoomService struct {
	rooms RoomStore
}

// NewRoomService constructs a RoomService.
func NewRoomService(rooms RoomStore) *RoomService {
	return &RoomService{rooms: rooms}
}

// Show returns a single sala by id.
func (s *RoomService) Show(ctx context.Context, id uint64) (*repository.Room, error) {
	r, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, apperr.NotFoundf(fmt.Sprintf("O código #%d não foi encontrado!", id))
		}
		return nil, apperr.Unavailable("Ocorreram erros ao tentar buscar a informação", err)
	}
	return r, nil
}

// List returns every sala.
func (s *RoomService) List(ctx context.Context) ([]repository.Room, error) {
	out, err := s.rooms.List(ctx)
	if err != nil {
		return nil, apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	return out, nil
}

// Create validates the input and inserts a new sala.
func (s *RoomService) Create(ctx context.Context, in RoomInput) (uint64, error) {
	if v := validate.Check(in.values(), roomRules); len(v) > 0 {
		return 0, apperr.Invalid(v)
	}
	r := in.record(0)
	if err := s.rooms.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrNoEffect) {
			return 0, apperr.Unpersisted("Ocorreram erros ao tentar salvar a informação")
		}
		return 0, apperr.Unavailable("Ocorreram erros ao tentar salvar a informação", err)
	}
	return r.ID, nil
}

// Update validates the input, requires the sala to exist, then rewrites
// every field.
func (s *RoomService) Update(ctx context.Context, id uint64, in RoomInput) error {
	if v := validate.Check(in.values(), roomRules); len(v) > 0 {
		return apperr.Invalid(v)
	}
	if _, err := s.rooms.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return apperr.NotFoundf("Não foi possível encontrar a sala")
		}
		return apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	if err := s.rooms.Update(ctx, in.record(id)); err != nil {
		if errors.Is(err, repository.ErrNoEffect) {
			return apperr.Unpersisted("Nenhuma sala foi atualizada")
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar atualizar a sala", err)
	}
	return nil
}

// Destroy deletes a sala by id. Poltronas referencing the sala are not
// cascaded; foreign keys are weak references in this design.
func (s *RoomService) Destroy(ctx context.Context, id uint64) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return apperr.NotFoundf(fmt.Sprintf("Sala #%d não foi encontrada", id))
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar excluir a sala", err)
	}
	return nil
}

func (in RoomInput) record(id uint64) *repository.Room {
	r := &repository.Room{ID: id, Nome: in.Nome}
	if in.Numero != nil {
		r.Numero = *in.Numero
	}
	if in.Capacidade != nil {
		r.Capacidade = *in.Capacidade
	}
	return r
}

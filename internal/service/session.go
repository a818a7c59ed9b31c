package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/validate"
)

// SessionStore is the slice of the storage layer the sessao service
// needs. *repository.SessionRepo satisfies it.
type SessionStore interface {
	GetView(ctx context.Context, id uint64) (*repository.SessionView, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	List(ctx context.Context) ([]repository.SessionView, error)
	Create(ctx context.Context, s *repository.Session) error
	Update(ctx context.Context, s *repository.Session) error
	Delete(ctx context.Context, id uint64) error
}

// SessionInput is the typed request body for sessao create and update.
type SessionInput struct {
	Data          string  `json:"data"`
	HorarioInicio string  `json:"horario_inicio"`
	HorarioFim    string  `json:"horario_fim"`
	SalaID        *uint64 `json:"sala_id"`
	FilmeID       *uint64 `json:"filme_id"`
}

func (in SessionInput) values() validate.Values {
	v := validate.Values{
		"data":           in.Data,
		"horario_inicio": in.HorarioInicio,
		"horario_fim":    in.HorarioFim,
	}
	if in.SalaID != nil {
		v["sala_id"] = *in.SalaID
	}
	if in.FilmeID != nil {
		v["filme_id"] = *in.FilmeID
	}
	return v
}

var sessionRules = []validate.Rule{
	{Field: "data", Required: true, Kind: validate.Date},
	{Field: "horario_inicio", Required: true},
	{Field: "horario_fim", Required: true},
	{Field: "sala_id", Required: true, Kind: validate.Integer},
	{Field: "filme_id", Required: true, Kind: validate.Integer},
}

// SessionService implements the sessao operations. Overlapping sessoes
// in the same sala are allowed; no schedule conflict check exists.
type SessionService struct {
	sessions SessionStore
	rooms    RoomStore
	movies   MovieStore
}

// NewSessionService constructs a SessionService.
func NewSessionService(sessions SessionStore, rooms RoomStore, movies MovieStore) *SessionService {
	return &SessionService{sessions: sessions, rooms: rooms, movies: movies}
}

// Show returns the joined projection of a sessao by id.
func (s *SessionService) Show(ctx context.Context, id uint64) (*repository.SessionView, error) {
	v, err := s.sessions.GetView(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, apperr.NotFoundf(fmt.Sprintf("O código #%d não foi encontrado!", id))
		}
		return nil, apperr.Unavailable("Ocorreram erros ao tentar buscar a informação", err)
	}
	return v, nil
}

// List returns the joined projection of every sessao.
func (s *SessionService) List(ctx context.Context) ([]repository.SessionView, error) {
	out, err := s.sessions.List(ctx)
	if err != nil {
		return nil, apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	return out, nil
}

// Create validates the input, then runs the consistency sequence:
// sala exists → filme exists. The first failure wins.
func (s *SessionService) Create(ctx context.Context, in SessionInput) (uint64, error) {
	if v := validate.Check(in.values(), sessionRules); len(v) > 0 {
		return 0, apperr.Invalid(v)
	}
	if err := s.checkConsistency(ctx, in); err != nil {
		return 0, err
	}
	rec := in.record(0)
	if err := s.sessions.Create(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrNoEffect) {
			return 0, apperr.Unpersisted("Ocorreram erros ao tentar salvar a informação")
		}
		return 0, apperr.Unavailable("Ocorreram erros ao tentar salvar a informação", err)
	}
	return rec.ID, nil
}

// Update validates the input, requires the sessao to exist, re-runs the
// consistency sequence, then rewrites every field.
func (s *SessionService) Update(ctx context.Context, id uint64, in SessionInput) error {
	if v := validate.Check(in.values(), sessionRules); len(v) > 0 {
		return apperr.Invalid(v)
	}
	ok, err := s.sessions.Exists(ctx, id)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao buscar os dados da sessão", err)
	}
	if !ok {
		return apperr.NotFoundf("Não foi possível encontrar a sessão")
	}
	if err := s.checkConsistency(ctx, in); err != nil {
		return err
	}
	if err := s.sessions.Update(ctx, in.record(id)); err != nil {
		if errors.Is(err, repository.ErrNoEffect) {
			return apperr.Unpersisted("Nenhuma sessão foi atualizada")
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar atualizar a sessão", err)
	}
	return nil
}

// Destroy deletes a sessao by id.
func (s *SessionService) Destroy(ctx context.Context, id uint64) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return apperr.NotFoundf(fmt.Sprintf("Sessão #%d não foi encontrada", id))
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar excluir a sessão", err)
	}
	return nil
}

func (s *SessionService) checkConsistency(ctx context.Context, in SessionInput) error {
	ok, err := s.rooms.Exists(ctx, *in.SalaID)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao tentar verificar a sala", err)
	}
	if !ok {
		return apperr.Inconsistent("Sala não encontrada")
	}
	ok, err = s.movies.Exists(ctx, *in.FilmeID)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao tentar verificar o filme", err)
	}
	if !ok {
		return apperr.Inconsistent("Filme não encontrado")
	}
	return nil
}

func (in SessionInput) record(id uint64) *repository.Session {
	rec := &repository.Session{
		ID:            id,
		Data:          in.Data,
		HorarioInicio: in.HorarioInicio,
		HorarioFim:    in.HorarioFim,
	}
	if in.SalaID != nil {
		rec.SalaID = *in.SalaID
	}
	if in.FilmeID != nil {
		rec.FilmeID = *in.FilmeID
	}
	return rec
}

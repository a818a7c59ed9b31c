package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/validate"
)

// MovieStore is the slice of the storage layer the filme service needs.
// *repository.MovieRepo satisfies it.
type MovieStore interface {
	GetByID(ctx context.Context, id uint64) (*repository.Movie, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	TitleTaken(ctx context.Context, titulo string, excludeID uint64) (bool, error)
	List(ctx context.Context) ([]repository.Movie, error)
	Create(ctx context.Context, m *repository.Movie) error
	Update(ctx context.Context, m *repository.Movie) error
	Delete(ctx context.Context, id uint64) error
}

// MovieInput is the typed request body for filme create and update.
type MovieInput struct {
	Titulo                  string `json:"titulo"`
	Sinopse                 string `json:"sinopse"`
	Atores                  string `json:"atores"`
	Diretor                 string `json:"diretor"`
	Genero                  string `json:"genero"`
	ClassificacaoIndicativa string `json:"classificacao_indicativa"`
	Duracao                 Number `json:"duracao"`
}

func (in MovieInput) values() validate.Values {
	v := validate.Values{
		"titulo":                   in.Titulo,
		"sinopse":                  in.Sinopse,
		"atores":                   in.Atores,
		"diretor":                  in.Diretor,
		"genero":                   in.Genero,
		"classificacao_indicativa": in.ClassificacaoIndicativa,
	}
	if in.Duracao.Present() {
		v["duracao"] = in.Duracao.fieldValue()
	}
	return v
}

var movieRules = []validate.Rule{
	{Field: "titulo", Required: true, Kind: validate.String, Max: validate.N(300)},
	{Field: "sinopse", Required: true, Kind: validate.String, Max: validate.N(500)},
	{Field: "atores", Required: true, Kind: validate.String, Max: validate.N(300)},
	{Field: "diretor", Required: true, Kind: validate.String, Max: validate.N(300)},
	{Field: "genero", Required: true, Kind: validate.String, Max: validate.N(300)},
	{Field: "classificacao_indicativa", Required: true, Kind: validate.String, Max: validate.N(300)},
	{Field: "duracao", Required: true, Kind: validate.Numeric},
}

// MovieService implements the filme operations.
type MovieService struct {
	movies MovieStore
}

// NewMovieService constructs a MovieService.
func NewMovieService(movies MovieStore) *MovieService {
	return &MovieService{movies: movies}
}

// Show returns a single filme by id.
func (s *MovieService) Show(ctx context.Context, id uint64) (*repository.Movie, error) {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, apperr.NotFoundf(fmt.Sprintf("O código #%d não foi encontrado!", id))
		}
		return nil, apperr.Unavailable("Ocorreram erros ao tentar buscar a informação", err)
	}
	return m, nil
}

// List returns every filme.
func (s *MovieService) List(ctx context.Context) ([]repository.Movie, error) {
	out, err := s.movies.List(ctx)
	if err != nil {
		return nil, apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	return out, nil
}

// Create validates the input, requires the title to be unique, then
// inserts the filme.
func (s *MovieService) Create(ctx context.Context, in MovieInput) (uint64, error) {
	if v := validate.Check(in.values(), movieRules); len(v) > 0 {
		return 0, apperr.Invalid(v)
	}
	taken, err := s.movies.TitleTaken(ctx, in.Titulo, 0)
	if err != nil {
		return 0, apperr.Unavailable("Ocorreram erros ao verificar a existência do filme", err)
	}
	if taken {
		return 0, apperr.Inconsistent("Este filme já existe no sistema. Escolha um título único.")
	}
	m := in.record(0)
	if err := s.movies.Create(ctx, m); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return 0, apperr.Inconsistent("Este filme já existe no sistema. Escolha um título único.")
		case errors.Is(err, repository.ErrNoEffect):
			return 0, apperr.Unpersisted("Ocorreram erros ao tentar salvar a informação")
		}
		return 0, apperr.Unavailable("Ocorreram erros ao tentar salvar a informação", err)
	}
	return m.ID, nil
}

// Update validates the input, requires the title to be unique among the
// other filmes, requires the record to exist, then rewrites it. The
// uniqueness check runs before the existence lookup, preserving the
// original check order.
func (s *MovieService) Update(ctx context.Context, id uint64, in MovieInput) error {
	if v := validate.Check(in.values(), movieRules); len(v) > 0 {
		return apperr.Invalid(v)
	}
	taken, err := s.movies.TitleTaken(ctx, in.Titulo, id)
	if err != nil {
		return apperr.Unavailable("Ocorreram erros ao verificar a existência do filme", err)
	}
	if taken {
		return apperr.Inconsistent("Já existe um filme com este título. Escolha um título único.")
	}
	if _, err := s.movies.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return apperr.NotFoundf("Não foi possível encontrar o filme")
		}
		return apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	if err := s.movies.Update(ctx, in.record(id)); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return apperr.Inconsistent("Já existe um filme com este título. Escolha um título único.")
		case errors.Is(err, repository.ErrNoEffect):
			return apperr.Unpersisted("Nenhum filme foi atualizado")
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar atualizar o filme", err)
	}
	return nil
}

// Destroy deletes a filme by id.
func (s *MovieService) Destroy(ctx context.Context, id uint64) error {
	if err := s.movies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return apperr.NotFoundf(fmt.Sprintf("Filme #%d não foi encontrado", id))
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar excluir o filme", err)
	}
	return nil
}

func (in MovieInput) record(id uint64) *repository.Movie {
	return &repository.Movie{
		ID:                      id,
		Titulo:                  in.Titulo,
		Sinopse:                 in.Sinopse,
		Atores:                  in.Atores,
		Diretor:                 in.Diretor,
		Genero:                  in.Genero,
		ClassificacaoIndicativa: in.ClassificacaoIndicativa,
		Duracao:                 in.Duracao.Float(),
	}
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

func validMovie(titulo string) service.MovieInput {
	return service.MovieInput{
		Titulo:                  titulo,
		Sinopse:                 "Um cowboy de brinquedo enfrenta a chegada de um rival.",
		Atores:                  "Tom Hanks, Tim Allen",
		Diretor:                 "John Lasseter",
		Genero:                  "Animação",
		ClassificacaoIndicativa: "Livre",
		Duracao:                 service.Num(81),
	}
}

func TestMovieCreateRejectsDuplicateTitle(t *testing.T) {
	store := newFakeMovies()
	svc := service.NewMovieService(store)

	_, err := svc.Create(context.Background(), validMovie("Toy Story"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validMovie("Toy Story"))

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.Consistency, ae.Kind)
	require.Equal(t, "Este filme já existe no sistema. Escolha um título único.", ae.Message)
	require.Len(t, store.byID, 1)
}

func TestMovieUpdateKeepingOwnTitle(t *testing.T) {
	store := newFakeMovies()
	svc := service.NewMovieService(store)

	id, err := svc.Create(context.Background(), validMovie("Toy Story"))
	require.NoError(t, err)

	// Re-submitting the record's own title is not a collision.
	in := validMovie("Toy Story")
	in.Diretor = "Josh Cooley"
	require.NoError(t, svc.Update(context.Background(), id, in))

	m, err := svc.Show(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Josh Cooley", m.Diretor)
}

func TestMovieUpdateRejectsOtherMoviesTitle(t *testing.T) {
	svc := service.NewMovieService(newFakeMovies())

	_, err := svc.Create(context.Background(), validMovie("Toy Story"))
	require.NoError(t, err)
	id, err := svc.Create(context.Background(), validMovie("Toy Story 2"))
	require.NoError(t, err)

	err = svc.Update(context.Background(), id, validMovie("Toy Story"))

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.Consistency, ae.Kind)
	require.Equal(t, "Já existe um filme com este título. Escolha um título único.", ae.Message)
}

func TestMovieUpdateTitleCheckRunsBeforeLookup(t *testing.T) {
	svc := service.NewMovieService(newFakeMovies())

	_, err := svc.Create(context.Background(), validMovie("Toy Story"))
	require.NoError(t, err)

	// The id does not exist, but the colliding title is reported first.
	err = svc.Update(context.Background(), 99, validMovie("Toy Story"))

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.Consistency, ae.Kind)
}

func TestMovieCreateMissingFields(t *testing.T) {
	store := newFakeMovies()
	svc := service.NewMovieService(store)

	_, err := svc.Create(context.Background(), service.MovieInput{})

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.Validation, ae.Kind)
	require.Contains(t, ae.Fields, "titulo")
	require.Contains(t, ae.Fields, "duracao")
	require.Empty(t, store.byID)
}

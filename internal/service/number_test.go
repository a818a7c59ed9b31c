package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

// Clients of the original API sent numbers both bare and quoted; both
// shapes must decode and persist.
func TestNumberAcceptsQuotedNumerics(t *testing.T) {
	var in service.MovieInput
	require.NoError(t, json.Unmarshal([]byte(`{"duracao": "136"}`), &in))
	require.True(t, in.Duracao.Present())
	require.Equal(t, 136.0, in.Duracao.Float())

	in = service.MovieInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"duracao": 97.5}`), &in))
	require.Equal(t, 97.5, in.Duracao.Float())
}

func TestNumberAbsentAndNullStayUnset(t *testing.T) {
	var in service.MovieInput
	require.NoError(t, json.Unmarshal([]byte(`{}`), &in))
	require.False(t, in.Duracao.Present())

	require.NoError(t, json.Unmarshal([]byte(`{"duracao": null}`), &in))
	require.False(t, in.Duracao.Present())
}

func TestNumberGarbageBecomesFieldViolation(t *testing.T) {
	in := validMovie("Toy Story")
	require.NoError(t, json.Unmarshal([]byte(`{"duracao": "longa"}`), &in))

	_, err := service.NewMovieService(newFakeMovies()).Create(context.Background(), in)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.Validation, ae.Kind)
	require.Equal(t, []string{"O campo duracao deve ser um número."}, ae.Fields["duracao"])
}

func TestNumberRoundTripsInResponses(t *testing.T) {
	b, err := json.Marshal(service.Num(25.5))
	require.NoError(t, err)
	require.Equal(t, "25.5", string(b))

	b, err = json.Marshal(service.Number{})
	require.NoError(t, err)
	require.Equal(t, "null", string(b))
}

// Package handler maps HTTP requests onto the entity services. Handlers
// only bind typed input structs, delegate, and translate service errors
// into status codes and the API's Portuguese error bodies.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
)

// parseID extracts the :codigo path parameter as a record id.
func parseID(c echo.Context) (uint64, *apperr.Error) {
	raw := strings.TrimSpace(c.Param("codigo"))
	if raw == "" {
		return 0, apperr.MissingID("Identificador não fornecido")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperr.MissingID("Identificador inválido")
	}
	return id, nil
}

// fail converts a service error into the matching HTTP response.
// Validation failures carry the full field→messages map under "erros";
// every other failure carries a single "erro" message.
func fail(c echo.Context, err error) error {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "Ocorreu um erro inesperado"})
	}
	if ae.Kind == apperr.Validation {
		return c.JSON(http.StatusBadRequest, echo.Map{"erros": ae.Fields})
	}
	return c.JSON(statusOf(ae.Kind), echo.Map{"erro": ae.Message})
}

func statusOf(k apperr.Kind) int {
	switch k {
	case apperr.MissingIdentifier, apperr.Validation, apperr.Consistency:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	}
	// Persistence and Storage.
	return http.StatusInternalServerError
}

// badBody is the response for a request body echo could not bind.
func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"erro": "Corpo da requisição inválido"})
}

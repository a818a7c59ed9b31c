package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

// MovieHandler serves the /filme resource.
type MovieHandler struct {
	svc *service.MovieService
}

// NewMovieHandler constructs a MovieHandler.
func NewMovieHandler(svc *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

type movieResponse struct {
	service.MovieInput
	ID uint64 `json:"id"`
}

// Show handles GET /filme/:codigo.
func (h *MovieHandler) Show(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	rec, err := h.svc.Show(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// List handles GET /filme.
func (h *MovieHandler) List(c echo.Context) error {
	recs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"dados": recs})
}

// Create handles POST /filme.
func (h *MovieHandler) Create(c echo.Context) error {
	var in service.MovieInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	id, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, movieResponse{MovieInput: in, ID: id})
}

// Update handles PUT /filme/:codigo.
func (h *MovieHandler) Update(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	var in service.MovieInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	if err := h.svc.Update(c.Request().Context(), id, in); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, movieResponse{MovieInput: in, ID: id})
}

// Destroy handles DELETE /filme/:codigo.
func (h *MovieHandler) Destroy(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	if err := h.svc.Destroy(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": fmt.Sprintf("Filme %d foi deletado com sucesso", id)})
}

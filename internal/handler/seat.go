package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

// SeatHandler serves the /poltrona resource.
type SeatHandler struct {
	svc *service.SeatService
}

// NewSeatHandler constructs a SeatHandler.
func NewSeatHandler(svc *service.SeatService) *SeatHandler {
	return &SeatHandler{svc: svc}
}

type seatResponse struct {
	service.SeatInput
	ID uint64 `json:"id"`
}

// Show handles GET /poltrona/:codigo.
func (h *SeatHandler) Show(c echo.Context) error {
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

// List handles GET /poltrona.
func (h *SeatHandler) List(c echo.Context) error {
	recs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"dados": recs})
}

// Create handles POST /poltrona.
func (h *SeatHandler) Create(c echo.Context) error {
	var in service.SeatInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	id, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, seatResponse{SeatInput: in, ID: id})
}

// Update handles PUT /poltrona/:codigo.
func (h *SeatHandler) Update(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	var in service.SeatInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	if err := h.svc.Update(c.Request().Context(), id, in); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, seatResponse{SeatInput: in, ID: id})
}

// Destroy handles DELETE /poltrona/:codigo.
func (h *SeatHandler) Destroy(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	if err := h.svc.Destroy(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": fmt.Sprintf("Poltrona %d foi deletada com sucesso", id)})
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

// RoomHandler serves the /sala resource.
type RoomHandler struct {
	svc *service.RoomService
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

type roomResponse struct {
	service.RoomInput
	ID uint64 `json:"id"`
}

// Show handles GET /sala/:codigo.
func (h *RoomHandler) Show(c echo.Context) error {
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

// List handles GET /sala.
func (h *RoomHandler) List(c echo.Context) error {
	recs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"dados": recs})
}

// Create handles POST /sala.
func (h *RoomHandler) Create(c echo.Context) error {
	var in service.RoomInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	id, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, roomResponse{RoomInput: in, ID: id})
}

// Update handles PUT /sala/:codigo.
func (h *RoomHandler) Update(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	var in service.RoomInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	if err := h.svc.Update(c.Request().Context(), id, in); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, roomResponse{RoomInput: in, ID: id})
}

// Destroy handles DELETE /sala/:codigo.
func (h *RoomHandler) Destroy(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	if err := h.svc.Destroy(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": fmt.Sprintf("Sala %d foi deletada com sucesso", id)})
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

// CustomerHandler serves the /cliente resource.
type CustomerHandler struct {
	svc *service.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

type customerResponse struct {
	service.CustomerInput
	ID uint64 `json:"id"`
}

// Show handles GET /cliente/:codigo.
func (h *CustomerHandler) Show(c echo.Context) error {
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

// List handles GET /cliente.
func (h *CustomerHandler) List(c echo.Context) error {
	recs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"dados": recs})
}

// Create handles POST /cliente.
func (h *CustomerHandler) Create(c echo.Context) error {
	var in service.CustomerInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	id, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, customerResponse{CustomerInput: in, ID: id})
}

// Update handles PUT /cliente/:codigo.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	var in service.CustomerInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	if err := h.svc.Update(c.Request().Context(), id, in); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, customerResponse{CustomerInput: in, ID: id})
}

// Destroy handles DELETE /cliente/:codigo.
func (h *CustomerHandler) Destroy(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	if err := h.svc.Destroy(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": fmt.Sprintf("Cliente %d foi deletado com sucesso", id)})
}

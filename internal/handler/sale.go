package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

// SaleHandler serves the /venda resource.
type SaleHandler struct {
	svc *service.SaleService
}

// NewSaleHandler constructs a SaleHandler.
func NewSaleHandler(svc *service.SaleService) *SaleHandler {
	return &SaleHandler{svc: svc}
}

type saleResponse struct {
	service.SaleInput
	ID uint64 `json:"id"`
}

// Show handles GET /venda/:codigo.
func (h *SaleHandler) Show(c echo.Context) error {
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

// List handles GET /venda.
func (h *SaleHandler) List(c echo.Context) error {
	recs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"dados": recs})
}

// Create handles POST /venda.
func (h *SaleHandler) Create(c echo.Context) error {
	var in service.SaleInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	id, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, saleResponse{SaleInput: in, ID: id})
}

// Update handles PUT /venda/:codigo.
func (h *SaleHandler) Update(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	var in service.SaleInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	if err := h.svc.Update(c.Request().Context(), id, in); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, saleResponse{SaleInput: in, ID: id})
}

// Destroy handles DELETE /venda/:codigo.
func (h *SaleHandler) Destroy(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	if err := h.svc.Destroy(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": fmt.Sprintf("Venda %d foi deletada com sucesso", id)})
}

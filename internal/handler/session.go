package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

// SessionHandler serves the /sessao resource.
type SessionHandler struct {
	svc *service.SessionService
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// sessionResponse keeps the original wire format, which names the
// assigned identifier id_sessao rather than id.
type sessionResponse struct {
	service.SessionInput
	ID uint64 `json:"id_sessao"`
}

// Show handles GET /sessao/:codigo.
func (h *SessionHandler) Show(c echo.Context) error {
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

// List handles GET /sessao.
func (h *SessionHandler) List(c echo.Context) error {
	recs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"dados": recs})
}

// Create handles POST /sessao.
func (h *SessionHandler) Create(c echo.Context) error {
	var in service.SessionInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	id, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, sessionResponse{SessionInput: in, ID: id})
}

// Update handles PUT /sessao/:codigo.
func (h *SessionHandler) Update(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	var in service.SessionInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	if err := h.svc.Update(c.Request().Context(), id, in); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, sessionResponse{SessionInput: in, ID: id})
}

// Destroy handles DELETE /sessao/:codigo.
func (h *SessionHandler) Destroy(c echo.Context) error {
	id, aerr := parseID(c)
	if aerr != nil {
		return fail(c, aerr)
	}
	if err := h.svc.Destroy(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": fmt.Sprintf("Sessão %d foi deletada com sucesso", id)})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const aboutText = "A API de Gestão Cinematográfica simplifica o gerenciamento de cinemas, " +
	"oferecendo funcionalidades como reservas de ingressos, programação de sessões, " +
	"acompanhamento de vendas e análise de desempenho. Intuitiva e flexível, essa " +
	"ferramenta permite que operadores de cinemas otimizem processos, proporcionando " +
	"uma experiência cinematográfica sem complicações para seus clientes."

// Root handles GET / with the API's banner.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "API de Gestão Cinematográfica")
}

// Author handles GET /Autor.
func Author(c echo.Context) error {
	return c.String(http.StatusOK, "Autor: Katielly")
}

// About handles GET /sobre.
func About(c echo.Context) error {
	return c.String(http.StatusOK, aboutText)
}

// Health responds to GET /healthz so load balancers can verify the
// service is up.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

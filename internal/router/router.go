// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/handler"
)

// Handlers bundles the per-resource handlers the router wires up.
type Handlers struct {
	Customers *handler.CustomerHandler
	Movies    *handler.MovieHandler
	Rooms     *handler.RoomHandler
	Seats     *handler.SeatHandler
	Sessions  *handler.SessionHandler
	Tickets   *handler.TicketHandler
	Sales     *handler.SaleHandler
}

// RegisterRoutes registers every route of the API on the provided Echo
// instance. cache is applied to the read endpoints only; pass nil to
// disable response caching.
func RegisterRoutes(e *echo.Echo, h Handlers, cache echo.MiddlewareFunc) {
	var read []echo.MiddlewareFunc
	if cache != nil {
		read = append(read, cache)
	}

	e.GET("/", handler.Root)
	e.GET("/Autor", handler.Author)
	e.GET("/sobre", handler.About)
	e.GET("/healthz", handler.Health)

	register(e, "/cliente", resource{
		show: h.Customers.Show, list: h.Customers.List,
		create: h.Customers.Create, update: h.Customers.Update, destroy: h.Customers.Destroy,
	}, read)
	register(e, "/filme", resource{
		show: h.Movies.Show, list: h.Movies.List,
		create: h.Movies.Create, update: h.Movies.Update, destroy: h.Movies.Destroy,
	}, read)
	register(e, "/sala", resource{
		show: h.Rooms.Show, list: h.Rooms.List,
		create: h.Rooms.Create, update: h.Rooms.Update, destroy: h.Rooms.Destroy,
	}, read)
	register(e, "/poltrona", resource{
		show: h.Seats.Show, list: h.Seats.List,
		create: h.Seats.Create, update: h.Seats.Update, destroy: h.Seats.Destroy,
	}, read)
	register(e, "/sessao", resource{
		show: h.Sessions.Show, list: h.Sessions.List,
		create: h.Sessions.Create, update: h.Sessions.Update, destroy: h.Sessions.Destroy,
	}, read)
	register(e, "/ingresso", resource{
		show: h.Tickets.Show, list: h.Tickets.List,
		create: h.Tickets.Create, update: h.Tickets.Update, destroy: h.Tickets.Destroy,
	}, read)
	register(e, "/venda", resource{
		show: h.Sales.Show, list: h.Sales.List,
		create: h.Sales.Create, update: h.Sales.Update, destroy: h.Sales.Destroy,
	}, read)
}

type resource struct {
	show    echo.HandlerFunc
	list    echo.HandlerFunc
	create  echo.HandlerFunc
	update  echo.HandlerFunc
	destroy echo.HandlerFunc
}

func register(e *echo.Echo, path string, r resource, read []echo.MiddlewareFunc) {
	e.GET(path, r.list, read...)
	e.GET(path+"/:codigo", r.show, read...)
	e.POST(path, r.create)
	e.PUT(path+"/:codigo", r.update)
	e.DELETE(path+"/:codigo", r.destroy)
}

package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/handler"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

// ticketStore is a minimal in-memory TicketStore for handler tests.
type ticketStore struct {
	byID   map[uint64]repository.Ticket
	nextID uint64
}

func newTicketStore() *ticketStore {
	return &ticketStore{byID: map[uint64]repository.Ticket{}}
}

func (f *ticketStore) GetByID(_ context.Context, id uint64) (*repository.Ticket, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}
	return &t, nil
}

func (f *ticketStore) GetView(_ context.Context, id uint64) (*repository.TicketView, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}
	return &repository.TicketView{ID: t.ID, Codigo: t.Codigo, Valor: t.Valor, DataHora: t.DataHora, SessaoID: t.SessaoID, Numero: 10, Fileira: "B"}, nil
}

func (f *ticketStore) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *ticketStore) CodeTaken(_ context.Context, codigo string) (bool, error) {
	for _, t := range f.byID {
		if t.Codigo == codigo {
			return true, nil
		}
	}
	return false, nil
}

func (f *ticketStore) SeatBooked(_ context.Context, poltronaID, sessaoID, excludeID uint64) (bool, error) {
	for _, t := range f.byID {
		if t.PoltronaID == poltronaID && t.SessaoID == sessaoID && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *ticketStore) List(_ context.Context) ([]repository.TicketView, error) {
	out := make([]repository.TicketView, 0, len(f.byID))
	for _, t := range f.byID {
		v, _ := f.GetView(context.Background(), t.ID)
		out = append(out, *v)
	}
	return out, nil
}

func (f *ticketStore) Create(_ context.Context, t *repository.Ticket) error {
	f.nextID++
	t.ID = f.nextID
	f.byID[t.ID] = *t
	return nil
}

func (f *ticketStore) Update(_ context.Context, t *repository.Ticket) error {
	if _, ok := f.byID[t.ID]; !ok {
		return repository.ErrTicketNotFound
	}
	f.byID[t.ID] = *t
	return nil
}

func (f *ticketStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrTicketNotFound
	}
	delete(f.byID, id)
	return nil
}

// existsSet satisfies the Exists-only needs of SessionStore and SeatStore.
type existsSet map[uint64]bool

func (s existsSet) Exists(_ context.Context, id uint64) (bool, error) { return s[id], nil }

type sessionStoreStub struct{ existsSet }

func (sessionStoreStub) GetView(context.Context, uint64) (*repository.SessionView, error) {
	return nil, repository.ErrSessionNotFound
}
func (sessionStoreStub) List(context.Context) ([]repository.SessionView, error) { return nil, nil }
func (sessionStoreStub) Create(context.Context, *repository.Session) error      { return nil }
func (sessionStoreStub) Update(context.Context, *repository.Session) error      { return nil }
func (sessionStoreStub) Delete(context.Context, uint64) error                   { return nil }

type seatStoreStub struct{ existsSet }

func (seatStoreStub) GetByID(context.Context, uint64) (*repository.Seat, error) {
	return nil, repository.ErrSeatNotFound
}
func (seatStoreStub) PositionTaken(context.Context, int64, string, uint64) (bool, error) {
	return false, nil
}
func (seatStoreStub) List(context.Context) ([]repository.Seat, error) { return nil, nil }
func (seatStoreStub) Create(context.Context, *repository.Seat) error  { return nil }
func (seatStoreStub) Update(context.Context, *repository.Seat) error  { return nil }
func (seatStoreStub) Delete(context.Context, uint64) error            { return nil }

func newTicketHandler() (*handler.TicketHandler, *ticketStore) {
	store := newTicketStore()
	sessions := sessionStoreStub{existsSet{1: true}}
	seats := seatStoreStub{existsSet{1: true}}
	return handler.NewTicketHandler(service.NewTicketService(store, sessions, seats, nil)), store
}

const ticketBody = `{
	"codigo": "ING-001",
	"valor": 25.50,
	"data_hora": "2024-06-15 19:30:00",
	"sessao_id": 1,
	"poltrona_id": 1
}`

func TestTicketCreateCreated(t *testing.T) {
	e := echo.New()
	h, store := newTicketHandler()

	c, rec := postJSON(e, "/ingresso", ticketBody)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "ING-001", got["codigo"])
	require.Equal(t, float64(1), got["id"])
	require.Len(t, store.byID, 1)
}

func TestTicketCreateUnknownSession(t *testing.T) {
	e := echo.New()
	h, store := newTicketHandler()

	c, rec := postJSON(e, "/ingresso", `{
		"codigo": "ING-001",
		"valor": 25.50,
		"data_hora": "2024-06-15 19:30:00",
		"sessao_id": 99,
		"poltrona_id": 1
	}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "O sessao_id informado não existe")
	require.Empty(t, store.byID)
}

func TestTicketCreateDoubleBooking(t *testing.T) {
	e := echo.New()
	h, _ := newTicketHandler()

	c, _ := postJSON(e, "/ingresso", ticketBody)
	require.NoError(t, h.Create(c))

	c, rec := postJSON(e, "/ingresso", `{
		"codigo": "ING-002",
		"valor": 25.50,
		"data_hora": "2024-06-15 19:30:00",
		"sessao_id": 1,
		"poltrona_id": 1
	}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "A poltrona já está associada à sessão. Escolha outra poltrona.")
}

func TestTicketShowServesJoinedView(t *testing.T) {
	e := echo.New()
	h, _ := newTicketHandler()

	c, _ := postJSON(e, "/ingresso", ticketBody)
	require.NoError(t, h.Create(c))

	req := httptest.NewRequest(http.MethodGet, "/ingresso/1", nil)
	rec := httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("codigo")
	c.SetParamValues("1")

	require.NoError(t, h.Show(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, float64(10), got["numero"])
	require.Equal(t, "B", got["fileira"])
	require.NotContains(t, got, "poltrona_id")
}

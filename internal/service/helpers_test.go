package service_test

// In-memory store fakes backing the service tests. Each fake keeps
// records in a map and mirrors the not-found and affected-rows
// semantics of the real repositories.

import (
	"context"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
)

func u64(v uint64) *uint64  { return &v }
func i64(v int64) *int64    { return &v }
func strp(s string) *string { return &s }

type fakeCustomers struct {
	byID   map[uint64]repository.Customer
	nextID uint64
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{byID: map[uint64]repository.Customer{}}
}

func (f *fakeCustomers) GetByID(_ context.Context, id uint64) (*repository.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	return &c, nil
}

func (f *fakeCustomers) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeCustomers) List(_ context.Context) ([]repository.Customer, error) {
	out := make([]repository.Customer, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomers) Create(_ context.Context, c *repository.Customer) error {
	f.nextID++
	c.ID = f.nextID
	f.byID[c.ID] = *c
	return nil
}

func (f *fakeCustomers) Update(_ context.Context, c *repository.Customer) error {
	if _, ok := f.byID[c.ID]; !ok {
		return repository.ErrCustomerNotFound
	}
	f.byID[c.ID] = *c
	return nil
}

func (f *fakeCustomers) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrCustomerNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeMovies struct {
	byID   map[uint64]repository.Movie
	nextID uint64
}

func newFakeMovies() *fakeMovies {
	return &fakeMovies{byID: map[uint64]repository.Movie{}}
}

func (f *fakeMovies) GetByID(_ context.Context, id uint64) (*repository.Movie, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrMovieNotFound
	}
	return &m, nil
}

func (f *fakeMovies) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeMovies) TitleTaken(_ context.Context, titulo string, excludeID uint64) (bool, error) {
	for _, m := range f.byID {
		if m.Titulo == titulo && m.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMovies) List(_ context.Context) ([]repository.Movie, error) {
	out := make([]repository.Movie, 0, len(f.byID))
	for _, m := range f.byID {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovies) Create(_ context.Context, m *repository.Movie) error {
	f.nextID++
	m.ID = f.nextID
	f.byID[m.ID] = *m
	return nil
}

func (f *fakeMovies) Update(_ context.Context, m *repository.Movie) error {
	if _, ok := f.byID[m.ID]; !ok {
		return repository.ErrMovieNotFound
	}
	f.byID[m.ID] = *m
	return nil
}

func (f *fakeMovies) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrMovieNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRooms struct {
	byID   map[uint64]repository.Room
	nextID uint64
}

func newFakeRooms() *fakeRooms {
	return &fakeRooms{byID: map[uint64]repository.Room{}}
}

func (f *fakeRooms) GetByID(_ context.Context, id uint64) (*repository.Room, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrRoomNotFound
	}
	return &r, nil
}

func (f *fakeRooms) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeRooms) List(_ context.Context) ([]repository.Room, error) {
	out := make([]repository.Room, 0, len(f.byID))
	for _, r := range f.byID {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRooms) Create(_ context.Context, r *repository.Room) error {
	f.nextID++
	r.ID = f.nextID
	f.byID[r.ID] = *r
	return nil
}

func (f *fakeRooms) Update(_ context.Context, r *repository.Room) error {
	if _, ok := f.byID[r.ID]; !ok {
		return repository.ErrRoomNotFound
	}
	f.byID[r.ID] = *r
	return nil
}

func (f *fakeRooms) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrRoomNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeSeats struct {
	byID   map[uint64]repository.Seat
	nextID uint64
}

func newFakeSeats() *fakeSeats {
	return &fakeSeats{byID: map[uint64]repository.Seat{}}
}

func (f *fakeSeats) GetByID(_ context.Context, id uint64) (*repository.Seat, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrSeatNotFound
	}
	return &s, nil
}

func (f *fakeSeats) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeSeats) PositionTaken(_ context.Context, numero int64, fileira string, excludeID uint64) (bool, error) {
	for _, s := range f.byID {
		if s.Numero == numero && s.Fileira == fileira && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSeats) List(_ context.Context) ([]repository.Seat, error) {
	out := make([]repository.Seat, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSeats) Create(_ context.Context, s *repository.Seat) error {
	f.nextID++
	s.ID = f.nextID
	f.byID[s.ID] = *s
	return nil
}

func (f *fakeSeats) Update(_ context.Context, s *repository.Seat) error {
	if _, ok := f.byID[s.ID]; !ok {
		return repository.ErrSeatNotFound
	}
	f.byID[s.ID] = *s
	return nil
}

func (f *fakeSeats) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrSeatNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeSessions struct {
	byID   map[uint64]repository.Session
	nextID uint64
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byID: map[uint64]repository.Session{}}
}

func (f *fakeSessions) GetView(_ context.Context, id uint64) (*repository.SessionView, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return &repository.SessionView{
		ID:            s.ID,
		Data:          s.Data,
		HorarioInicio: s.HorarioInicio,
		HorarioFim:    s.HorarioFim,
		Sala:          "Sala de teste",
		Filme:         "Filme de teste",
	}, nil
}

func (f *fakeSessions) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeSessions) List(_ context.Context) ([]repository.SessionView, error) {
	out := make([]repository.SessionView, 0, len(f.byID))
	for _, s := range f.byID {
		v, _ := f.GetView(context.Background(), s.ID)
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeSessions) Create(_ context.Context, s *repository.Session) error {
	f.nextID++
	s.ID = f.nextID
	f.byID[s.ID] = *s
	return nil
}

func (f *fakeSessions) Update(_ context.Context, s *repository.Session) error {
	if _, ok := f.byID[s.ID]; !ok {
		return repository.ErrSessionNotFound
	}
	f.byID[s.ID] = *s
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeTickets struct {
	byID   map[uint64]repository.Ticket
	nextID uint64
}

func newFakeTickets() *fakeTickets {
	return &fakeTickets{byID: map[uint64]repository.Ticket{}}
}

func (f *fakeTickets) GetByID(_ context.Context, id uint64) (*repository.Ticket, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}
	return &t, nil
}

func (f *fakeTickets) GetView(_ context.Context, id uint64) (*repository.TicketView, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}
	return &repository.TicketView{
		ID:       t.ID,
		Codigo:   t.Codigo,
		Valor:    t.Valor,
		DataHora: t.DataHora,
		SessaoID: t.SessaoID,
		Numero:   1,
		Fileira:  "A",
	}, nil
}

func (f *fakeTickets) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeTickets) CodeTaken(_ context.Context, codigo string) (bool, error) {
	for _, t := range f.byID {
		if t.Codigo == codigo {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTickets) SeatBooked(_ context.Context, poltronaID, sessaoID, excludeID uint64) (bool, error) {
	for _, t := range f.byID {
		if t.PoltronaID == poltronaID && t.SessaoID == sessaoID && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTickets) List(_ context.Context) ([]repository.TicketView, error) {
	out := make([]repository.TicketView, 0, len(f.byID))
	for _, t := range f.byID {
		v, _ := f.GetView(context.Background(), t.ID)
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeTickets) Create(_ context.Context, t *repository.Ticket) error {
	f.nextID++
	t.ID = f.nextID
	f.byID[t.ID] = *t
	return nil
}

func (f *fakeTickets) Update(_ context.Context, t *repository.Ticket) error {
	cur, ok := f.byID[t.ID]
	if !ok {
		return repository.ErrTicketNotFound
	}
	t.Codigo = cur.Codigo // codigo is never rewritten
	f.byID[t.ID] = *t
	return nil
}

func (f *fakeTickets) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrTicketNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeSales struct {
	byID   map[uint64]repository.Sale
	nextID uint64
}

func newFakeSales() *fakeSales {
	return &fakeSales{byID: map[uint64]repository.Sale{}}
}

func (f *fakeSales) GetView(_ context.Context, id uint64) (*repository.SaleView, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrSaleNotFound
	}
	return &repository.SaleView{
		ID:               s.ID,
		Valor:            s.Valor,
		DataHora:         s.DataHora,
		FormaPagamento:   s.FormaPagamento,
		Situacao:         s.Situacao,
		Cliente:          "Cliente de teste",
		Codigo:           "ING-1",
		DataHoraIngresso: s.DataHora,
	}, nil
}

func (f *fakeSales) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeSales) TicketSold(_ context.Context, ingressoID, excludeID uint64) (bool, error) {
	for _, s := range f.byID {
		if s.IngressoID == ingressoID && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSales) List(_ context.Context) ([]repository.SaleView, error) {
	out := make([]repository.SaleView, 0, len(f.byID))
	for _, s := range f.byID {
		v, _ := f.GetView(context.Background(), s.ID)
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeSales) Create(_ context.Context, s *repository.Sale) error {
	f.nextID++
	s.ID = f.nextID
	f.byID[s.ID] = *s
	return nil
}

func (f *fakeSales) Update(_ context.Context, s *repository.Sale) error {
	if _, ok := f.byID[s.ID]; !ok {
		return repository.ErrSaleNotFound
	}
	f.byID[s.ID] = *s
	return nil
}

func (f *fakeSales) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrSaleNotFound
	}
	delete(f.byID, id)
	return nil
}

// recordingSink captures published events for assertions.
type recordingSink struct {
	tickets []repository.Ticket
	sales   []repository.Sale
}

func (r *recordingSink) TicketIssued(_ context.Context, t repository.Ticket) {
	r.tickets = append(r.tickets, t)
}

func (r *recordingSink) SaleCompleted(_ context.Context, s repository.Sale) {
	r.sales = append(r.sales, s)
}

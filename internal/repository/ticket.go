package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Ticket mirrors the ingresso table: one seat sold for one session.
// Codigo is unique, and so is the (poltrona, sessao) pair.
type Ticket struct {
	ID         uint64  `json:"id_ing"`
	Codigo     string  `json:"codigo"`
	Valor      float64 `json:"valor"`
	DataHora   string  `json:"data_hora"`
	SessaoID   uint64  `json:"sessao_id"`
	PoltronaID uint64  `json:"poltrona_id"`
}

// TicketView is the joined projection served by list and show: the seat
// position is surfaced instead of the raw poltrona id.
type TicketView struct {
	ID       uint64  `json:"id_ing"`
	Codigo   string  `json:"codigo"`
	Valor    float64 `json:"valor"`
	DataHora string  `json:"data_hora"`
	SessaoID uint64  `json:"id_ses"`
	Numero   int64   `json:"numero"`
	Fileira  string  `json:"fileira"`
}

// ErrTicketNotFound is returned when an ingresso lookup yields no rows.
var ErrTicketNotFound = errors.New("ingresso not found")

// TicketRepo provides persistence for ingressos.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// GetByID retrieves the raw ingresso row by primary key.
func (r *TicketRepo) GetByID(ctx context.Context, id uint64) (*Ticket, error) {
	const q = `SELECT id_ing, codigo, valor, data_hora, sessao_id, poltrona_id
	           FROM ingresso WHERE id_ing = ?`
	var t Ticket
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Codigo, &t.Valor, &t.DataHora, &t.SessaoID, &t.PoltronaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetView retrieves the joined projection of an ingresso by primary key.
func (r *TicketRepo) GetView(ctx context.Context, id uint64) (*TicketView, error) {
	const q = `SELECT i.id_ing, i.codigo, i.valor, i.data_hora, s.id_ses, p.numero, p.fileira
	           FROM ingresso i
	           JOIN sessao s ON s.id_ses = i.sessao_id
	           JOIN poltrona p ON p.id_pol = i.poltrona_id
	           WHERE i.id_ing = ?`
	var v TicketView
	err := r.db.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Codigo, &v.Valor, &v.DataHora, &v.SessaoID, &v.Numero, &v.Fileira)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Exists reports whether an ingresso with the given id is present.
func (r *TicketRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM ingresso WHERE id_ing = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// CodeTaken reports whether any ingresso already carries the given code.
func (r *TicketRepo) CodeTaken(ctx context.Context, codigo string) (bool, error) {
	const q = `SELECT COUNT(*) FROM ingresso WHERE codigo = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, codigo).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// SeatBooked reports whether the poltrona is already bound to the sessao
// by another ingresso. excludeID skips the record itself during updates;
// pass 0 on create.
func (r *TicketRepo) SeatBooked(ctx context.Context, poltronaID, sessaoID, excludeID uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM ingresso WHERE poltrona_id = ? AND sessao_id = ? AND id_ing <> ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, poltronaID, sessaoID, excludeID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns the joined projection of every ingresso.
func (r *TicketRepo) List(ctx context.Context) ([]TicketView, error) {
	const q = `SELECT i.id_ing, i.codigo, i.valor, i.data_hora, s.id_ses, p.numero, p.fileira
	           FROM ingresso i
	           JOIN sessao s ON s.id_ses = i.sessao_id
	           JOIN poltrona p ON p.id_pol = i.poltrona_id
	           ORDER BY i.id_ing`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TicketView{}
	for rows.Next() {
		var v TicketView
		if err := rows.Scan(&v.ID, &v.Codigo, &v.Valor, &v.DataHora, &v.SessaoID, &v.Numero, &v.Fileira); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new ingresso. Races on the codigo or
// (poltrona, sessao) unique indexes come back as ErrDuplicate.
func (r *TicketRepo) Create(ctx context.Context, t *Ticket) error {
	const q = `INSERT INTO ingresso (codigo, valor, data_hora, sessao_id, poltrona_id)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.Codigo, t.Valor, t.DataHora, t.SessaoID, t.PoltronaID)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEffect
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// Update rewrites an existing ingresso. The codigo is immutable once
// issued and is deliberately left out of the statement.
func (r *TicketRepo) Update(ctx context.Context, t *Ticket) error {
	const q = `UPDATE ingresso SET valor = ?, data_hora = ?, sessao_id = ?, poltrona_id = ? WHERE id_ing = ?`
	res, err := r.db.ExecContext(ctx, q, t.Valor, t.DataHora, t.SessaoID, t.PoltronaID, t.ID)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEffect
	}
	return nil
}

// Delete removes an ingresso by id.
func (r *TicketRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM ingresso WHERE id_ing = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTicketNotFound
	}
	return nil
}

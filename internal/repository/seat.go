package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Seat mirrors the poltrona table. The (numero, fileira) pair is unique
// across the whole table, not per sala; schema.sql carries the matching
// unique index.
type Seat struct {
	ID      uint64 `json:"id_pol"`
	Numero  int64  `json:"numero"`
	Fileira string `json:"fileira"`
	Status  string `json:"status"`
	SalaID  uint64 `json:"sala_id"`
}

// ErrSeatNotFound is returned when a poltrona lookup yields no rows.
var ErrSeatNotFound = errors.New("poltrona not found")

// SeatRepo provides persistence for poltronas.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// GetByID retrieves a poltrona by primary key.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*Seat, error) {
	const q = `SELECT id_pol, numero, fileira, status, sala_id FROM poltrona WHERE id_pol = ?`
	var s Seat
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Numero, &s.Fileira, &s.Status, &s.SalaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Exists reports whether a poltrona with the given id is present.
func (r *SeatRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM poltrona WHERE id_pol = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// PositionTaken reports whether another poltrona already occupies the
// (numero, fileira) position. excludeID skips the record itself during
// updates; pass 0 on create.
func (r *SeatRepo) PositionTaken(ctx context.Context, numero int64, fileira string, excludeID uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM poltrona WHERE numero = ? AND fileira = ? AND id_pol <> ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, numero, fileira, excludeID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns every poltrona ordered by id.
func (r *SeatRepo) List(ctx context.Context) ([]Seat, error) {
	const q = `SELECT id_pol, numero, fileira, status, sala_id FROM poltrona ORDER BY id_pol`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Seat{}
	for rows.Next() {
		var s Seat
		if err := rows.Scan(&s.ID, &s.Numero, &s.Fileira, &s.Status, &s.SalaID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new poltrona. A race on the (numero, fileira) unique
// index comes back as ErrDuplicate.
func (r *SeatRepo) Create(ctx context.Context, s *Seat) error {
	const q = `INSERT INTO poltrona (numero, fileira, status, sala_id) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Numero, s.Fileira, s.Status, s.SalaID)
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
	s.ID = uint64(id)
	return nil
}

// Update replaces every field of an existing poltrona.
func (r *SeatRepo) Update(ctx context.Context, s *Seat) error {
	const q = `UPDATE poltrona SET numero = ?, fileira = ?, status = ?, sala_id = ? WHERE id_pol = ?`
	res, err := r.db.ExecContext(ctx, q, s.Numero, s.Fileira, s.Status, s.SalaID, s.ID)
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

// Delete removes a poltrona by id.
func (r *SeatRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM poltrona WHERE id_pol = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatNotFound
	}
	return nil
}

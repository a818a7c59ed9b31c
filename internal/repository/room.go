package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Room mirrors the sala table.
type Room struct {
	ID         uint64 `json:"id_sal"`
	Nome       string `json:"nome"`
	Numero     int64  `json:"numero"`
	Capacidade int64  `json:"capacidade"`
}

// ErrRoomNotFound is returned when a sala lookup yields no rows.
var ErrRoomNotFound = errors.New("sala not found")

// RoomRepo provides persistence for salas.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// GetByID retrieves a sala by primary key.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*Room, error) {
	const q = `SELECT id_sal, nome, numero, capacidade FROM sala WHERE id_sal = ?`
	var s Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Nome, &s.Numero, &s.Capacidade)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Exists reports whether a sala with the given id is present.
func (r *RoomRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM sala WHERE id_sal = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns every sala ordered by id.
func (r *RoomRepo) List(ctx context.Context) ([]Room, error) {
	const q = `SELECT id_sal, nome, numero, capacidade FROM sala ORDER BY id_sal`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Room{}
	for rows.Next() {
		var s Room
		if err := rows.Scan(&s.ID, &s.Nome, &s.Numero, &s.Capacidade); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new sala. On success the ID field is populated.
func (r *RoomRepo) Create(ctx context.Context, s *Room) error {
	const q = `INSERT INTO sala (nome, numero, capacidade) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Nome, s.Numero, s.Capacidade)
	if err != nil {
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

// Update replaces every field of an existing sala.
func (r *RoomRepo) Update(ctx context.Context, s *Room) error {
	const q = `UPDATE sala SET nome = ?, numero = ?, capacidade = ? WHERE id_sal = ?`
	res, err := r.db.ExecContext(ctx, q, s.Nome, s.Numero, s.Capacidade, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEffect
	}
	return nil
}

// Delete removes a sala by id.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM sala WHERE id_sal = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

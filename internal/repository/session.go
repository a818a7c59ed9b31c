package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Session mirrors the sessao table: a movie scheduled in a room for a
// date and time range.
type Session struct {
	ID            uint64 `json:"id_ses"`
	Data          string `json:"data"`
	HorarioInicio string `json:"horario_inicio"`
	HorarioFim    string `json:"horario_fim"`
	SalaID        uint64 `json:"sala_id"`
	FilmeID       uint64 `json:"filme_id"`
}

// SessionView is the joined projection served by list and show: the raw
// sala and filme ids are replaced with their human-readable labels.
type SessionView struct {
	ID            uint64 `json:"id_ses"`
	Data          string `json:"data"`
	HorarioInicio string `json:"horario_inicio"`
	HorarioFim    string `json:"horario_fim"`
	Sala          string `json:"nome"`
	Filme         string `json:"titulo"`
}

// ErrSessionNotFound is returned when a sessao lookup yields no rows.
var ErrSessionNotFound = errors.New("sessao not found")

// SessionRepo provides persistence for sessoes.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo constructs a SessionRepo with the given DB handle.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// GetView retrieves the joined projection of a sessao by primary key.
func (r *SessionRepo) GetView(ctx context.Context, id uint64) (*SessionView, error) {
	const q = `SELECT s.id_ses, s.data, s.horario_inicio, s.horario_fim, sa.nome, f.titulo
	           FROM sessao s
	           JOIN sala sa ON sa.id_sal = s.sala_id
	           JOIN filme f ON f.id_fil = s.filme_id
	           WHERE s.id_ses = ?`
	var v SessionView
	err := r.db.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Data, &v.HorarioInicio, &v.HorarioFim, &v.Sala, &v.Filme)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Exists reports whether a sessao with the given id is present.
func (r *SessionRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM sessao WHERE id_ses = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns the joined projection of every sessao.
func (r *SessionRepo) List(ctx context.Context) ([]SessionView, error) {
	const q = `SELECT s.id_ses, s.data, s.horario_inicio, s.horario_fim, sa.nome, f.titulo
	           FROM sessao s
	           JOIN sala sa ON sa.id_sal = s.sala_id
	           JOIN filme f ON f.id_fil = s.filme_id
	           ORDER BY s.id_ses`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SessionView{}
	for rows.Next() {
		var v SessionView
		if err := rows.Scan(&v.ID, &v.Data, &v.HorarioInicio, &v.HorarioFim, &v.Sala, &v.Filme); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new sessao. On success the ID field is populated.
func (r *SessionRepo) Create(ctx context.Context, s *Session) error {
	const q = `INSERT INTO sessao (data, horario_inicio, horario_fim, sala_id, filme_id)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Data, s.HorarioInicio, s.HorarioFim, s.SalaID, s.FilmeID)
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

// Update replaces every field of an existing sessao.
func (r *SessionRepo) Update(ctx context.Context, s *Session) error {
	const q = `UPDATE sessao
	           SET data = ?, horario_inicio = ?, horario_fim = ?, sala_id = ?, filme_id = ?
	           WHERE id_ses = ?`
	res, err := r.db.ExecContext(ctx, q, s.Data, s.HorarioInicio, s.HorarioFim, s.SalaID, s.FilmeID, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEffect
	}
	return nil
}

// Delete removes a sessao by id.
func (r *SessionRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM sessao WHERE id_ses = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

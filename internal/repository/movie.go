package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Movie mirrors the filme table. Titulo is unique across the catalog.
type Movie struct {
	ID                      uint64  `json:"id_fil"`
	Titulo                  string  `json:"titulo"`
	Sinopse                 string  `json:"sinopse"`
	Atores                  string  `json:"atores"`
	Diretor                 string  `json:"diretor"`
	Genero                  string  `json:"genero"`
	ClassificacaoIndicativa string  `json:"classificacao_indicativa"`
	Duracao                 float64 `json:"duracao"`
}

// ErrMovieNotFound is returned when a filme lookup yields no rows.
var ErrMovieNotFound = errors.New("filme not found")

// MovieRepo provides persistence for filmes.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// GetByID retrieves a filme by primary key.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*Movie, error) {
	const q = `SELECT id_fil, titulo, sinopse, atores, diretor, genero, classificacao_indicativa, duracao
	           FROM filme WHERE id_fil = ?`
	var m Movie
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&m.ID, &m.Titulo, &m.Sinopse, &m.Atores, &m.Diretor,
		&m.Genero, &m.ClassificacaoIndicativa, &m.Duracao,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Exists reports whether a filme with the given id is present.
func (r *MovieRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM filme WHERE id_fil = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// TitleTaken reports whether another filme already uses the given title.
// excludeID skips the record itself during updates; pass 0 on create.
func (r *MovieRepo) TitleTaken(ctx context.Context, titulo string, excludeID uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM filme WHERE titulo = ? AND id_fil <> ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, titulo, excludeID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns every filme ordered by id.
func (r *MovieRepo) List(ctx context.Context) ([]Movie, error) {
	const q = `SELECT id_fil, titulo, sinopse, atores, diretor, genero, classificacao_indicativa, duracao
	           FROM filme ORDER BY id_fil`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Movie{}
	for rows.Next() {
		var m Movie
		if err := rows.Scan(
			&m.ID, &m.Titulo, &m.Sinopse, &m.Atores, &m.Diretor,
			&m.Genero, &m.ClassificacaoIndicativa, &m.Duracao,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new filme. A race on the titulo unique index comes
// back as ErrDuplicate.
func (r *MovieRepo) Create(ctx context.Context, m *Movie) error {
	const q = `INSERT INTO filme (titulo, sinopse, atores, diretor, genero, classificacao_indicativa, duracao)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		m.Titulo, m.Sinopse, m.Atores, m.Diretor,
		m.Genero, m.ClassificacaoIndicativa, m.Duracao,
	)
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
	m.ID = uint64(id)
	return nil
}

// Update replaces every field of an existing filme.
func (r *MovieRepo) Update(ctx context.Context, m *Movie) error {
	const q = `UPDATE filme
	           SET titulo = ?, sinopse = ?, atores = ?, diretor = ?, genero = ?, classificacao_indicativa = ?, duracao = ?
	           WHERE id_fil = ?`
	res, err := r.db.ExecContext(ctx, q,
		m.Titulo, m.Sinopse, m.Atores, m.Diretor,
		m.Genero, m.ClassificacaoIndicativa, m.Duracao, m.ID,
	)
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

// Delete removes a filme by id.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM filme WHERE id_fil = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}

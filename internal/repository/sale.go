package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Sale mirrors the venda table: one ingresso sold to one cliente. Each
// ingresso can be sold at most once. Situacao is the caller-supplied
// payment status; the service never derives or transitions it.
type Sale struct {
	ID             uint64  `json:"id_ven"`
	Valor          float64 `json:"valor"`
	DataHora       string  `json:"data_hora"`
	FormaPagamento string  `json:"forma_pagamento"`
	Situacao       string  `json:"situacao"`
	IngressoID     uint64  `json:"ingresso_id"`
	ClienteID      uint64  `json:"cliente_id"`
}

// SaleView is the joined projection served by list and show: cliente
// name and ingresso code replace the raw ids. The ingresso timestamp is
// surfaced as data_hora_ingresso so it cannot collide with the sale's
// own data_hora.
type SaleView struct {
	ID               uint64  `json:"id_ven"`
	Valor            float64 `json:"valor"`
	DataHora         string  `json:"data_hora"`
	FormaPagamento   string  `json:"forma_pagamento"`
	Situacao         string  `json:"situacao"`
	Cliente          string  `json:"nome"`
	Codigo           string  `json:"codigo"`
	DataHoraIngresso string  `json:"data_hora_ingresso"`
}

// ErrSaleNotFound is returned when a venda lookup yields no rows.
var ErrSaleNotFound = errors.New("venda not found")

// SaleRepo provides persistence for vendas.
type SaleRepo struct {
	db *sql.DB
}

// NewSaleRepo constructs a SaleRepo with the given DB handle.
func NewSaleRepo(db *sql.DB) *SaleRepo {
	return &SaleRepo{db: db}
}

// GetView retrieves the joined projection of a venda by primary key.
func (r *SaleRepo) GetView(ctx context.Context, id uint64) (*SaleView, error) {
	const q = `SELECT v.id_ven, v.valor, v.data_hora, v.forma_pagamento, v.situacao, c.nome, i.codigo, i.data_hora
	           FROM venda v
	           JOIN cliente c ON c.id_cli = v.cliente_id
	           JOIN ingresso i ON i.id_ing = v.ingresso_id
	           WHERE v.id_ven = ?`
	var v SaleView
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Valor, &v.DataHora, &v.FormaPagamento, &v.Situacao,
		&v.Cliente, &v.Codigo, &v.DataHoraIngresso,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Exists reports whether a venda with the given id is present.
func (r *SaleRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM venda WHERE id_ven = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// TicketSold reports whether another venda already covers the ingresso.
// excludeID skips the record itself during updates; pass 0 on create.
func (r *SaleRepo) TicketSold(ctx context.Context, ingressoID, excludeID uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM venda WHERE ingresso_id = ? AND id_ven <> ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, ingressoID, excludeID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns the joined projection of every venda.
func (r *SaleRepo) List(ctx context.Context) ([]SaleView, error) {
	const q = `SELECT v.id_ven, v.valor, v.data_hora, v.forma_pagamento, v.situacao, c.nome, i.codigo, i.data_hora
	           FROM venda v
	           JOIN cliente c ON c.id_cli = v.cliente_id
	           JOIN ingresso i ON i.id_ing = v.ingresso_id
	           ORDER BY v.id_ven`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SaleView{}
	for rows.Next() {
		var v SaleView
		if err := rows.Scan(
			&v.ID, &v.Valor, &v.DataHora, &v.FormaPagamento, &v.Situacao,
			&v.Cliente, &v.Codigo, &v.DataHoraIngresso,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new venda. A race on the ingresso_id unique index
// comes back as ErrDuplicate.
func (r *SaleRepo) Create(ctx context.Context, s *Sale) error {
	const q = `INSERT INTO venda (valor, data_hora, forma_pagamento, situacao, ingresso_id, cliente_id)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Valor, s.DataHora, s.FormaPagamento, s.Situacao, s.IngressoID, s.ClienteID)
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

// Update replaces every field of an existing venda.
func (r *SaleRepo) Update(ctx context.Context, s *Sale) error {
	const q = `UPDATE venda
	           SET valor = ?, data_hora = ?, forma_pagamento = ?, situacao = ?, ingresso_id = ?, cliente_id = ?
	           WHERE id_ven = ?`
	res, err := r.db.ExecContext(ctx, q, s.Valor, s.DataHora, s.FormaPagamento, s.Situacao, s.IngressoID, s.ClienteID, s.ID)
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

// Delete removes a venda by id.
func (r *SaleRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM venda WHERE id_ven = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSaleNotFound
	}
	return nil
}

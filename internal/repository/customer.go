// Package repository holds the data access layer. Each entity gets one
// repo over an injected *sql.DB; all statements are parameterized and
// scoped to a context.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Customer mirrors the cliente table. Telefone, TipagemSanguinea and
// FatorRh are optional columns and may be NULL.
type Customer struct {
	ID               uint64  `json:"id_cli"`
	Nome             string  `json:"nome"`
	Sexo             string  `json:"sexo"`
	DataNascimento   string  `json:"data_nascimento"`
	CPF              string  `json:"cpf"`
	RG               string  `json:"rg"`
	Email            string  `json:"email"`
	Telefone         *string `json:"telefone"`
	TipagemSanguinea *string `json:"tipagem_sanguinea"`
	FatorRh          *string `json:"fator_rh"`
}

// ErrCustomerNotFound is returned when a cliente lookup yields no rows.
var ErrCustomerNotFound = errors.New("cliente not found")

// CustomerRepo provides persistence for clientes.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo constructs a CustomerRepo with the given DB handle.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// GetByID retrieves a cliente by primary key.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*Customer, error) {
	const q = `SELECT id_cli, nome, sexo, data_nascimento, cpf, rg, email, telefone, tipagem_sanguinea, fator_rh
	           FROM cliente WHERE id_cli = ?`
	var c Customer
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&c.ID, &c.Nome, &c.Sexo, &c.DataNascimento, &c.CPF, &c.RG,
		&c.Email, &c.Telefone, &c.TipagemSanguinea, &c.FatorRh,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Exists reports whether a cliente with the given id is present.
func (r *CustomerRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	const q = `SELECT COUNT(*) FROM cliente WHERE id_cli = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns every cliente ordered by id.
func (r *CustomerRepo) List(ctx context.Context) ([]Customer, error) {
	const q = `SELECT id_cli, nome, sexo, data_nascimento, cpf, rg, email, telefone, tipagem_sanguinea, fator_rh
	           FROM cliente ORDER BY id_cli`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Customer{}
	for rows.Next() {
		var c Customer
		if err := rows.Scan(
			&c.ID, &c.Nome, &c.Sexo, &c.DataNascimento, &c.CPF, &c.RG,
			&c.Email, &c.Telefone, &c.TipagemSanguinea, &c.FatorRh,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new cliente. On success the ID field is populated.
func (r *CustomerRepo) Create(ctx context.Context, c *Customer) error {
	const q = `INSERT INTO cliente (nome, sexo, data_nascimento, cpf, rg, email, telefone, tipagem_sanguinea, fator_rh)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		c.Nome, c.Sexo, c.DataNascimento, c.CPF, c.RG,
		c.Email, c.Telefone, c.TipagemSanguinea, c.FatorRh,
	)
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
	c.ID = uint64(id)
	return nil
}

// Update replaces every field of an existing cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *Customer) error {
	const q = `UPDATE cliente
	           SET nome = ?, sexo = ?, data_nascimento = ?, cpf = ?, rg = ?, email = ?, telefone = ?, tipagem_sanguinea = ?, fator_rh = ?
	           WHERE id_cli = ?`
	res, err := r.db.ExecContext(ctx, q,
		c.Nome, c.Sexo, c.DataNascimento, c.CPF, c.RG,
		c.Email, c.Telefone, c.TipagemSanguinea, c.FatorRh, c.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEffect
	}
	return nil
}

// Delete removes a cliente by id. ErrCustomerNotFound is returned when
// no row matched.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM cliente WHERE id_cli = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

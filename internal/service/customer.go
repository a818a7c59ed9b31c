// Package service contains the entity services. Every operation runs the
// same pipeline: field validation (exhaustive) → consistency checks
// (short-circuit, fixed order) → one storage statement → response
// shaping. Services depend on small store interfaces so the storage
// layer can be swapped out in tests.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/validate"
)

// CustomerStore is the slice of the storage layer the cliente service
// needs. *repository.CustomerRepo satisfies it.
type CustomerStore interface {
	GetByID(ctx context.Context, id uint64) (*repository.Customer, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	List(ctx context.Context) ([]repository.Customer, error)
	Create(ctx context.Context, c *repository.Customer) error
	Update(ctx context.Context, c *repository.Customer) error
	Delete(ctx context.Context, id uint64) error
}

// CustomerInput is the typed request body for cliente create and update.
type CustomerInput struct {
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

func (in CustomerInput) values() validate.Values {
	v := validate.Values{
		"nome":            in.Nome,
		"sexo":            in.Sexo,
		"data_nascimento": in.DataNascimento,
		"cpf":             in.CPF,
		"rg":              in.RG,
		"email":           in.Email,
	}
	if in.Telefone != nil {
		v["telefone"] = *in.Telefone
	}
	if in.TipagemSanguinea != nil {
		v["tipagem_sanguinea"] = *in.TipagemSanguinea
	}
	if in.FatorRh != nil {
		v["fator_rh"] = *in.FatorRh
	}
	return v
}

var customerRules = []validate.Rule{
	{Field: "nome", Required: true, Kind: validate.String, Min: validate.N(5)},
	{Field: "sexo", Required: true, Kind: validate.String, Min: validate.N(5)},
	{Field: "data_nascimento", Required: true, Kind: validate.Date},
	{Field: "cpf", Required: true, Kind: validate.String, Max: validate.N(100)},
	{Field: "rg", Required: true, Kind: validate.String, Max: validate.N(100)},
	{Field: "email", Required: true, Kind: validate.Email, Max: validate.N(300)},
	{Field: "telefone", Kind: validate.String, Max: validate.N(300)},
	{Field: "tipagem_sanguinea", Max: validate.N(2)},
	{Field: "fator_rh", Max: validate.N(1)},
}

// CustomerService implements the cliente operations.
type CustomerService struct {
	customers CustomerStore
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(customers CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

// Show returns a single cliente by id.
func (s *CustomerService) Show(ctx context.Context, id uint64) (*repository.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, apperr.NotFoundf(fmt.Sprintf("O código #%d não foi encontrado!", id))
		}
		return nil, apperr.Unavailable("Ocorreram erros ao tentar buscar a informação", err)
	}
	return c, nil
}

// List returns every cliente.
func (s *CustomerService) List(ctx context.Context) ([]repository.Customer, error) {
	out, err := s.customers.List(ctx)
	if err != nil {
		return nil, apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	return out, nil
}

// Create validates the input and inserts a new cliente. Clientes have no
// foreign keys or uniqueness rules, so there are no consistency checks.
func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (uint64, error) {
	if v := validate.Check(in.values(), customerRules); len(v) > 0 {
		return 0, apperr.Invalid(v)
	}
	c := in.record(0)
	if err := s.customers.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNoEffect) {
			return 0, apperr.Unpersisted("Ocorreram erros ao tentar salvar a informação")
		}
		return 0, apperr.Unavailable("Ocorreram erros ao tentar salvar a informação", err)
	}
	return c.ID, nil
}

// Update validates the input, requires the cliente to exist, then
// rewrites every field.
func (s *CustomerService) Update(ctx context.Context, id uint64, in CustomerInput) error {
	if v := validate.Check(in.values(), customerRules); len(v) > 0 {
		return apperr.Invalid(v)
	}
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return apperr.NotFoundf("Não foi possível encontrar o cliente")
		}
		return apperr.Unavailable("Ocorreram erros ao buscar os dados", err)
	}
	if err := s.customers.Update(ctx, in.record(id)); err != nil {
		if errors.Is(err, repository.ErrNoEffect) {
			return apperr.Unpersisted("Nenhum cliente foi atualizado")
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar atualizar o cliente", err)
	}
	return nil
}

// Destroy deletes a cliente by id.
func (s *CustomerService) Destroy(ctx context.Context, id uint64) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return apperr.NotFoundf(fmt.Sprintf("Cliente #%d não foi encontrado", id))
		}
		return apperr.Unavailable("Ocorreu um erro ao tentar excluir o cliente", err)
	}
	return nil
}

func (in CustomerInput) record(id uint64) *repository.Customer {
	return &repository.Customer{
		ID:               id,
		Nome:             in.Nome,
		Sexo:             in.Sexo,
		DataNascimento:   in.DataNascimento,
		CPF:              in.CPF,
		RG:               in.RG,
		Email:            in.Email,
		Telefone:         in.Telefone,
		TipagemSanguinea: in.TipagemSanguinea,
		FatorRh:          in.FatorRh,
	}
}

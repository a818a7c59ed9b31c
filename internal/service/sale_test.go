package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/apperr"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

func saleFixtures(t *testing.T) (*fakeSales, *fakeCustomers, *fakeTickets, uint64, uint64) {
	t.Helper()
	customers := newFakeCustomers()
	cliente := &repository.Customer{Nome: "Maria Aparecida", Email: "maria@example.com"}
	require.NoError(t, customers.Create(context.Background(), cliente))

	tickets := newFakeTickets()
	ingresso := &repository.Ticket{Codigo: "ING-001", Valor: 25.50, DataHora: "2024-06-15 19:30:00", SessaoID: 1, PoltronaID: 1}
	require.NoError(t, tickets.Create(context.Background(), ingresso))

	return newFakeSales(), customers, tickets, cliente.ID, ingresso.ID
}

func validSale(clienteID, ingressoID uint64) service.SaleInput {
	return service.SaleInput{
		Valor:          service.Num(25.50),
		DataHora:       "2024-06-15 19:35:00",
		FormaPagamento: "cartão de crédito",
		Situacao:       "paga",
		IngressoID:     u64(ingressoID),
		ClienteID:      u64(clienteID),
	}
}

func TestSaleCreatePublishesEvent(t *testing.T) {
	sales, customers, tickets, clienteID, ingressoID := saleFixtures(t)
	sink := &recordingSink{}
	svc := service.NewSaleService(sales, customers, tickets, sink)

	id, err := svc.Create(context.Background(), validSale(clienteID, ingressoID))
	require.NoError(t, err)
	require.NotZero(t, id)

	require.Len(t, sink.sales, 1)
	require.Equal(t, ingressoID, sink.sales[0].IngressoID)
}

func TestSaleCreateRejectsUnknownCustomer(t *testing.T) {
	sales, customers, tickets, _, ingressoID := saleFixtures(t)
	svc := service.NewSaleService(sales, customers, tickets, nil)

	_, err := svc.Create(context.Background(), validSale(99, ingressoID))

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.Consistency, ae.Kind)
	require.Equal(t, "O cliente_id informado não existe", ae.Message)
	require.Empty(t, sales.byID)
}

func TestSaleCreateRejectsUnknownTicket(t *testing.T) {
	sales, customers, tickets, clienteID, _ := saleFixtures(t)
	svc := service.NewSaleService(sales, customers, tickets, nil)

	_, err := svc.Create(context.Background(), validSale(clienteID, 99))

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.Consistency, ae.Kind)
	require.Equal(t, "O ingresso_id informado não existe", ae.Message)
}

func TestSaleTicketSoldOnlyOnce(t *testing.T) {
	sales, customers, tickets, clienteID, ingressoID := saleFixtures(t)
	outro := &repository.Customer{Nome: "José Carlos", Email: "jose@example.com"}
	require.NoError(t, customers.Create(context.Background(), outro))
	svc := service.NewSaleService(sales, customers, tickets, nil)

	_, err := svc.Create(context.Background(), validSale(clienteID, ingressoID))
	require.NoError(t, err)

	// Another cliente cannot buy the same ingresso.
	_, err = svc.Create(context.Background(), validSale(outro.ID, ingressoID))

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.Consistency, ae.Kind)
	require.Equal(t, "Já existe uma venda com o ingresso_id informado", ae.Message)
	require.Len(t, sales.byID, 1)
}

func TestSaleUpdateKeepsOwnTicket(t *testing.T) {
	sales, customers, tickets, clienteID, ingressoID := saleFixtures(t)
	svc := service.NewSaleService(sales, customers, tickets, nil)

	id, err := svc.Create(context.Background(), validSale(clienteID, ingressoID))
	require.NoError(t, err)

	// Re-submitting the sale's own ingresso is not a collision.
	in := validSale(clienteID, ingressoID)
	in.Situacao = "estornada"
	require.NoError(t, svc.Update(context.Background(), id, in))

	v, err := svc.Show(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "estornada", v.Situacao)
}

func TestSaleUpdateMissing(t *testing.T) {
	sales, customers, tickets, clienteID, ingressoID := saleFixtures(t)
	svc := service.NewSaleService(sales, customers, tickets, nil)

	err := svc.Update(context.Background(), 7, validSale(clienteID, ingressoID))

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.NotFound, ae.Kind)
	require.Equal(t, "Não foi possível encontrar a venda", ae.Message)
}

func TestSaleCreateInvalid(t *testing.T) {
	sales, customers, tickets, _, _ := saleFixtures(t)
	svc := service.NewSaleService(sales, customers, tickets, nil)

	_, err := svc.Create(context.Background(), service.SaleInput{Situacao: "uma situação longa demais"})

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.Validation, ae.Kind)
	require.Contains(t, ae.Fields, "valor")
	require.Contains(t, ae.Fields, "forma_pagamento")
	require.Contains(t, ae.Fields, "situacao")
	require.Empty(t, sales.byID)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gigwell/scheduled-tasks/clients/domain"
)

type Clients struct {
	mock.Mock
}

func (m *Clients) GetClient(ctx context.Context, companyID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, companyID, clientID)

	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}

	return client, args.Error(1)
}

func (m *Clients) ListClients(ctx context.Context, companyID string) ([]*domain.Client, error) {
	args := m.Called(ctx, companyID)

	var clients []*domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]*domain.Client)
	}

	return clients, args.Error(1)
}

func (m *Clients) CreateClient(ctx context.Context, companyID string, client *domain.Client) (string, error) {
	args := m.Called(ctx, companyID, client)
	return args.String(0), args.Error(1)
}

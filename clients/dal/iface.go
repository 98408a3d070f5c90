//go:generate mockery --name Clients --output ./mocks
package dal

import (
	"context"
	"errors"

	"github.com/gigwell/scheduled-tasks/clients/domain"
)

// ErrNotFound is returned when a client does not exist or belongs to a
// different company than the one asked for.
var ErrNotFound = errors.New("client not found")

type Clients interface {
	GetClient(ctx context.Context, companyID, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, companyID string) ([]*domain.Client, error)
	CreateClient(ctx context.Context, companyID string, client *domain.Client) (string, error)
}

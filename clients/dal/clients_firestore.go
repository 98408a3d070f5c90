package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gigwell/scheduled-tasks/clients/domain"
	"github.com/gigwell/scheduled-tasks/framework/connection"
)

const (
	clientsCollection = "clients"
)

// ClientsFirestore is used to interact with clients stored on Firestore.
type ClientsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewClientsFirestoreWithClient returns a new ClientsFirestore using given client function.
func NewClientsFirestoreWithClient(fun connection.FirestoreFromContextFun) *ClientsFirestore {
	return &ClientsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *ClientsFirestore) clientsCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(clientsCollection)
}

func (d *ClientsFirestore) GetClient(ctx context.Context, companyID, clientID string) (*domain.Client, error) {
	docSnap, err := d.clientsCollection(ctx).Doc(clientID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var client domain.Client
	if err := docSnap.DataTo(&client); err != nil {
		return nil, err
	}

	// another company's client is indistinguishable from a missing one
	if client.CompanyID != companyID {
		return nil, ErrNotFound
	}

	client.ID = docSnap.Ref.ID

	return &client, nil
}

func (d *ClientsFirestore) ListClients(ctx context.Context, companyID string) ([]*domain.Client, error) {
	iter := d.clientsCollection(ctx).
		Where("companyId", "==", companyID).
		Documents(ctx)

	var clients []*domain.Client

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var client domain.Client
		if err := docSnap.DataTo(&client); err != nil {
			return nil, err
		}

		client.ID = docSnap.Ref.ID

		clients = append(clients, &client)
	}

	return clients, nil
}

func (d *ClientsFirestore) CreateClient(ctx context.Context, companyID string, client *domain.Client) (string, error) {
	client.CompanyID = companyID

	docRef, _, err := d.clientsCollection(ctx).Add(ctx, client)
	if err != nil {
		return "", err
	}

	return docRef.ID, nil
}

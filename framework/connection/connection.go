package connection

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"

	"github.com/gigwell/scheduled-tasks/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"

	// CtxCloudStorageKey is how cloud storage connections are stored/retrieved.
	CtxCloudStorageKey = "app-cloud-storage"
)

// FirestoreFromContextFun resolves a firestore client for the given context.
type FirestoreFromContextFun func(ctx context.Context) *firestore.Client

type Connection struct {
	*FirestoreClient
	*CloudStorageClient
}

// NewConnection initializes db connections necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	fs, err := NewFirestore(ctx, log)
	if err != nil {
		return nil, err
	}

	cs, err := NewCloudStorage(ctx, log)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
		cs,
	}, nil
}

// Firestore returns a firestore connection that was stored in context.
// it returns by default a firestore connection, if there was not on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}

// CloudStorage returns a cloud storage connection that was stored in context.
// it returns by default a cloud storage connection, if there was not on context.
func (c *Connection) CloudStorage(ctx context.Context) *storage.Client {
	if cs, ok := ctx.Value(CtxCloudStorageKey).(*storage.Client); ok {
		return cs
	}

	return c.cs
}

package service

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/gigwell/scheduled-tasks/framework/connection"
)

// AttachmentsStorage deletes gig attachments from the cloud storage bucket.
// Uploads themselves happen from the client through signed urls; the backend
// only cleans up after discarded drafts.
type AttachmentsStorage struct {
	conn   *connection.Connection
	bucket string
}

func NewAttachmentsStorage(conn *connection.Connection, bucket string) *AttachmentsStorage {
	return &AttachmentsStorage{
		conn:   conn,
		bucket: bucket,
	}
}

func (a *AttachmentsStorage) DeleteGigAttachments(ctx context.Context, companyID, gigID string) error {
	bucket := a.conn.CloudStorage(ctx).Bucket(a.bucket)

	prefix := fmt.Sprintf("%s/gigs/%s/", companyID, gigID)

	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return err
		}

		if err := bucket.Object(attrs.Name).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
			return err
		}
	}

	return nil
}

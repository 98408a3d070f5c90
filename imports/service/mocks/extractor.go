package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gigwell/scheduled-tasks/imports/domain"
)

type Extractor struct {
	mock.Mock
}

func (m *Extractor) Extract(ctx context.Context, file domain.FileUpload) (*domain.ExtractedDocument, error) {
	args := m.Called(ctx, file)

	var doc *domain.ExtractedDocument
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.ExtractedDocument)
	}

	return doc, args.Error(1)
}

package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/gigwell/scheduled-tasks/imports/domain"
)

// ExtractionClient talks to the document extraction backend: one multipart
// upload per file, one extracted document back.
type ExtractionClient struct {
	client *resty.Client
}

func NewExtractionClient(baseURL string) *ExtractionClient {
	return &ExtractionClient{
		client: resty.New().SetBaseURL(baseURL),
	}
}

func (c *ExtractionClient) Extract(ctx context.Context, file domain.FileUpload) (*domain.ExtractedDocument, error) {
	var doc domain.ExtractedDocument

	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", file.Name, bytes.NewReader(file.Content)).
		SetResult(&doc).
		Post("/v1/extract")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("document extraction request failed: %s", resp.Status())
	}

	return &doc, nil
}

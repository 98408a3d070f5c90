package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gigwell/scheduled-tasks/clients/dal/mocks"
	"github.com/gigwell/scheduled-tasks/clients/domain"
	"github.com/gigwell/scheduled-tasks/logger"
)

func TestMatchByName(t *testing.T) {
	ctx := context.Background()

	stored := []*domain.Client{
		{ID: "c1", Name: "Stockholm Konserthus"},
		{ID: "c2", Name: "Berwaldhallen"},
		{ID: "c3", Name: "Konserthus"},
	}

	testCases := []struct {
		name               string
		candidate          string
		expectedClientID   string
		expectedConfidence float64
		expectSuggestions  int
	}{
		{name: "exact match", candidate: "Berwaldhallen", expectedClientID: "c2", expectedConfidence: 1.0, expectSuggestions: 1},
		{name: "exact after normalization", candidate: "  stockholm   KONSERTHUS ", expectedClientID: "c1", expectedConfidence: 1.0, expectSuggestions: 2},
		{name: "containment ranks partial below exact", candidate: "Konserthus", expectedClientID: "c3", expectedConfidence: 1.0, expectSuggestions: 2},
		{name: "no match", candidate: "Cirkus Arena", expectedClientID: "", expectedConfidence: 0, expectSuggestions: 0},
		{name: "empty candidate", candidate: "   ", expectedClientID: "", expectedConfidence: 0, expectSuggestions: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clientsDAL := &mocks.Clients{}
			clientsDAL.On("ListClients", ctx, "company-1").Return(stored, nil)

			s := NewClientsServiceWithDAL(logger.FromContext, clientsDAL)

			result, err := s.MatchByName(ctx, "company-1", tc.candidate)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedClientID, result.ClientID)
			assert.Equal(t, tc.expectedConfidence, result.Confidence)
			assert.Len(t, result.Suggestions, tc.expectSuggestions)
		})
	}
}

func TestNameSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, nameSimilarity("acme", "acme"))
	assert.InDelta(t, 0.5, nameSimilarity("acme acme", "acme"), 0.06)
	assert.Equal(t, 0.0, nameSimilarity("acme", "globex"))
	assert.Equal(t, 0.0, nameSimilarity("acme", ""))
}

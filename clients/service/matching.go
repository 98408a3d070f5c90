package service

import (
	"context"
	"sort"
	"strings"

	clientsDal "github.com/gigwell/scheduled-tasks/clients/dal"
	"github.com/gigwell/scheduled-tasks/clients/domain"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/logger"
)

const maxSuggestions = 5

type ClientsService struct {
	loggerProvider logger.Provider
	clientsDAL     clientsDal.Clients
}

func NewClientsService(log logger.Provider, conn *connection.Connection) *ClientsService {
	return &ClientsService{
		loggerProvider: log,
		clientsDAL:     clientsDal.NewClientsFirestoreWithClient(conn.Firestore),
	}
}

func NewClientsServiceWithDAL(log logger.Provider, clientsDAL clientsDal.Clients) *ClientsService {
	return &ClientsService{
		loggerProvider: log,
		clientsDAL:     clientsDAL,
	}
}

func (s *ClientsService) GetClient(ctx context.Context, companyID, clientID string) (*domain.Client, error) {
	return s.clientsDAL.GetClient(ctx, companyID, clientID)
}

func (s *ClientsService) ListClients(ctx context.Context, companyID string) ([]*domain.Client, error) {
	return s.clientsDAL.ListClients(ctx, companyID)
}

// MatchByName scores the extracted counterparty name against the company's
// clients and returns the best candidate plus ranked suggestions. The caller
// decides whether the confidence clears its auto-select threshold.
func (s *ClientsService) MatchByName(ctx context.Context, companyID, name string) (*domain.MatchResult, error) {
	clients, err := s.clientsDAL.ListClients(ctx, companyID)
	if err != nil {
		return nil, err
	}

	candidate := normalizeName(name)
	if candidate == "" {
		return &domain.MatchResult{}, nil
	}

	suggestions := make([]domain.Suggestion, 0, len(clients))

	for _, client := range clients {
		score := nameSimilarity(candidate, normalizeName(client.Name))
		if score == 0 {
			continue
		}

		suggestions = append(suggestions, domain.Suggestion{
			ClientID:   client.ID,
			Name:       client.Name,
			Confidence: score,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	result := &domain.MatchResult{
		Suggestions: suggestions,
	}

	if len(suggestions) > 0 {
		result.ClientID = suggestions[0].ClientID
		result.Confidence = suggestions[0].Confidence
	}

	return result, nil
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")
}

// nameSimilarity scores two normalized names: 1.0 for equality, a length
// ratio for containment either way, 0 otherwise.
func nameSimilarity(candidate, known string) float64 {
	if known == "" {
		return 0
	}

	if candidate == known {
		return 1.0
	}

	if strings.Contains(candidate, known) {
		return float64(len(known)) / float64(len(candidate))
	}

	if strings.Contains(known, candidate) {
		return float64(len(candidate)) / float64(len(known))
	}

	return 0
}

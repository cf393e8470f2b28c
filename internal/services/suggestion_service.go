package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type SuggestionServiceInterface interface {
	SuggestDestinations(ctx context.Context, query string) ([]response_models.DestinationSuggestion, error)
}

type SuggestionService struct {
	planner         utils.PlannerClientInterface
	destinationRepo repositories.DestinationRepository
	logger          *zap.Logger
}

func NewSuggestionService(
	planner utils.PlannerClientInterface,
	destinationRepo repositories.DestinationRepository,
	logger *zap.Logger,
) SuggestionServiceInterface {
	return &SuggestionService{
		planner:         planner,
		destinationRepo: destinationRepo,
		logger:          logger,
	}
}

// SuggestDestinations embeds the free-text interests and returns the
// closest seeded destinations by cosine similarity.
func (s *SuggestionService) SuggestDestinations(ctx context.Context, query string) ([]response_models.DestinationSuggestion, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}

	vector, err := s.planner.GetEmbedding(ctx, query)
	if err != nil {
		s.logger.Warn("embedding failed for suggestion query", zap.Error(err))
		return nil, utils.ErrPlannerUnavailable
	}

	destinations, err := s.destinationRepo.ListByVector(ctx, vector, 10)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DestinationSuggestion, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, response_models.DestinationSuggestion{
			Name:        d.Name,
			Country:     d.Country,
			Description: d.Description,
		})
	}
	return out, nil
}

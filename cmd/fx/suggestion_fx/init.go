package suggestion_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"roamio/internal/api/controllers"
	"roamio/internal/repositories"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

var Module = fx.Provide(
	provideDestinationRepo,
	provideSuggestionService,
	provideSuggestionController)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideSuggestionService(
	planner utils.PlannerClientInterface,
	destinationRepo repositories.DestinationRepository,
	logger *zap.Logger,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(planner, destinationRepo, logger)
}

func provideSuggestionController(suggestionService services.SuggestionServiceInterface) *controllers.SuggestionController {
	return controllers.NewSuggestionController(suggestionService)
}

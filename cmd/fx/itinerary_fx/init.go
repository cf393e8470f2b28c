package itinerary_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"roamio/internal/api/controllers"
	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideNoteStore,
	provideItineraryService,
	provideItineraryController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideNoteStore(client *redis.Client) repositories.NoteStore {
	return repositories.NewRedisNoteStore(client)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	noteStore repositories.NoteStore,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, noteStore, logger)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}

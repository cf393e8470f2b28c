package sharelink_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"roamio/internal/api/controllers"
	"roamio/internal/services"
)

var Module = fx.Provide(
	provideShareLinkService,
	provideShareController)

func provideShareLinkService(logger *zap.Logger) services.ShareLinkServiceInterface {
	baseURL := os.Getenv("SHARE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return services.NewShareLinkService(baseURL, logger)
}

func provideShareController(
	shareLinkService services.ShareLinkServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *controllers.ShareController {
	return controllers.NewShareController(shareLinkService, itineraryService)
}

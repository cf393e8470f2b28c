package export_fx

import (
	"go.uber.org/fx"
	"roamio/internal/api/controllers"
	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	provideExportService,
	provideExportController)

func provideExportService(
	itineraryRepo repositories.ItineraryRepository,
	shareLinks services.ShareLinkServiceInterface,
) services.ExportServiceInterface {
	return services.NewExportService(itineraryRepo, shareLinks)
}

func provideExportController(exportService services.ExportServiceInterface) *controllers.ExportController {
	return controllers.NewExportController(exportService)
}
